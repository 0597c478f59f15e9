package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/Fatenkh7/CODSOFT-T2-Backend/internal/domain"
	"github.com/Fatenkh7/CODSOFT-T2-Backend/internal/events"
	"github.com/Fatenkh7/CODSOFT-T2-Backend/internal/repository"
)

// OrderInput carries a new order. The owning user comes from the authenticated identity.
type OrderInput struct {
	OrderItems      []domain.OrderItem
	ShippingAddress string
	PaymentMethod   string
	TotalPrice      decimal.Decimal
}

// OrderPatch carries a partial order update. A non-nil OrderItems replaces every line.
type OrderPatch struct {
	OrderItems      []domain.OrderItem
	ShippingAddress *string
	PaymentMethod   *string
	TotalPrice      *decimal.Decimal
}

// OrderService records orders and announces new ones.
type OrderService struct {
	orders     repository.OrderRepository
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// NewOrderService builds the service.
func NewOrderService(orders repository.OrderRepository, dispatcher events.Dispatcher, logger *zap.Logger) *OrderService {
	return &OrderService{orders: orders, dispatcher: dispatcher, logger: logger}
}

func (s *OrderService) List(ctx context.Context) ([]domain.Order, error) {
	return s.orders.List(ctx)
}

func (s *OrderService) Get(ctx context.Context, id string) (*domain.Order, error) {
	return s.orders.GetByID(ctx, id)
}

// Create stores an order placed by userID and publishes order_placed.
func (s *OrderService) Create(ctx context.Context, userID string, in OrderInput) (*domain.Order, error) {
	order := &domain.Order{
		IDUser:          userID,
		OrderItems:      in.OrderItems,
		ShippingAddress: strings.TrimSpace(in.ShippingAddress),
		PaymentMethod:   strings.TrimSpace(in.PaymentMethod),
		TotalPrice:      in.TotalPrice,
	}
	if err := s.orders.Create(ctx, order); err != nil {
		return nil, err
	}

	publish(ctx, s.dispatcher, s.logger, events.Event{
		Type:       events.EventOrderPlaced,
		ResourceID: order.ID,
		ActorID:    userID,
		Payload: events.OrderPlacedPayload{
			ItemCount:  len(order.OrderItems),
			TotalPrice: order.TotalPrice,
		},
	})
	return order, nil
}

func (s *OrderService) Update(ctx context.Context, id string, patch OrderPatch) (*domain.Order, error) {
	order, err := s.orders.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if patch.OrderItems != nil {
		order.OrderItems = patch.OrderItems
	}
	patchString(&order.ShippingAddress, patch.ShippingAddress)
	patchString(&order.PaymentMethod, patch.PaymentMethod)
	if patch.TotalPrice != nil {
		order.TotalPrice = *patch.TotalPrice
	}

	if err := s.orders.Update(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

func (s *OrderService) Delete(ctx context.Context, id string) error {
	return s.orders.Delete(ctx, id)
}

// publish fills in event metadata and dispatches it. Handler failures are logged and never
// fail the originating request.
func publish(ctx context.Context, dispatcher events.Dispatcher, logger *zap.Logger, event events.Event) {
	if dispatcher == nil {
		return
	}
	event.ID = uuid.NewString()
	event.Timestamp = time.Now().UTC()
	if err := dispatcher.Publish(ctx, event); err != nil && logger != nil {
		logger.Warn("event handler failed",
			zap.String("event_type", string(event.Type)),
			zap.String("resource_id", event.ResourceID),
			zap.Error(err))
	}
}
