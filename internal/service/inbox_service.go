package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/Fatenkh7/CODSOFT-T2-Backend/internal/domain"
	"github.com/Fatenkh7/CODSOFT-T2-Backend/internal/events"
	"github.com/Fatenkh7/CODSOFT-T2-Backend/internal/repository"
)

// InboxInput is a contact-form submission.
type InboxInput struct {
	FirstName string
	LastName  string
	Email     string
	Message   string
}

// InboxService stores contact messages for admins to read.
type InboxService struct {
	messages   repository.InboxRepository
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// NewInboxService builds the service.
func NewInboxService(messages repository.InboxRepository, dispatcher events.Dispatcher, logger *zap.Logger) *InboxService {
	return &InboxService{messages: messages, dispatcher: dispatcher, logger: logger}
}

// Create stores the message and publishes inbox_message_received.
func (s *InboxService) Create(ctx context.Context, in InboxInput) (*domain.InboxMessage, error) {
	msg := &domain.InboxMessage{
		FirstName: strings.TrimSpace(in.FirstName),
		LastName:  strings.TrimSpace(in.LastName),
		Email:     normalizeEmail(in.Email),
		Message:   strings.TrimSpace(in.Message),
	}
	if err := s.messages.Create(ctx, msg); err != nil {
		return nil, err
	}

	publish(ctx, s.dispatcher, s.logger, events.Event{
		Type:       events.EventInboxMessageReceived,
		ResourceID: msg.ID,
		Payload:    events.InboxMessageReceivedPayload{Email: msg.Email},
	})
	return msg, nil
}

func (s *InboxService) List(ctx context.Context) ([]domain.InboxMessage, error) {
	return s.messages.List(ctx)
}

func (s *InboxService) Get(ctx context.Context, id string) (*domain.InboxMessage, error) {
	return s.messages.GetByID(ctx, id)
}

func (s *InboxService) Delete(ctx context.Context, id string) error {
	return s.messages.Delete(ctx, id)
}
