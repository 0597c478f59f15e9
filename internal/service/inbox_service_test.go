package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/Fatenkh7/CODSOFT-T2-Backend/internal/domain"
	"github.com/Fatenkh7/CODSOFT-T2-Backend/internal/events"
	"github.com/Fatenkh7/CODSOFT-T2-Backend/internal/repository/mocks"
)

func TestInboxService_CreatePublishesWithoutBody(t *testing.T) {
	ctrl := gomock.NewController(t)
	messages := mocks.NewMockInboxRepository(ctrl)
	dispatcher := events.NewInMemoryDispatcher()
	var got events.Event
	dispatcher.Subscribe(events.EventInboxMessageReceived, func(_ context.Context, e events.Event) error {
		got = e
		return nil
	})

	messages.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, m *domain.InboxMessage) error {
		m.ID = "m1"
		return nil
	})

	msg, err := NewInboxService(messages, dispatcher, zap.NewNop()).Create(context.Background(), InboxInput{
		FirstName: "Grace",
		LastName:  "Hopper",
		Email:     "Grace@Example.com",
		Message:   "Hello there",
	})

	require.NoError(t, err)
	assert.Equal(t, "grace@example.com", msg.Email)
	assert.Equal(t, "m1", got.ResourceID)
	assert.Equal(t, events.InboxMessageReceivedPayload{Email: "grace@example.com"}, got.Payload)
}
