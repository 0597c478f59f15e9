package service

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/Fatenkh7/CODSOFT-T2-Backend/internal/domain"
	"github.com/Fatenkh7/CODSOFT-T2-Backend/internal/events"
	"github.com/Fatenkh7/CODSOFT-T2-Backend/internal/repository/mocks"
)

func TestOrderService_CreatePublishesOrderPlaced(t *testing.T) {
	ctrl := gomock.NewController(t)
	orders := mocks.NewMockOrderRepository(ctrl)
	dispatcher := events.NewInMemoryDispatcher()
	var published []events.Event
	dispatcher.Subscribe(events.EventOrderPlaced, func(_ context.Context, e events.Event) error {
		published = append(published, e)
		return nil
	})
	svc := NewOrderService(orders, dispatcher, zap.NewNop())

	orders.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, o *domain.Order) error {
		assert.Equal(t, testUserID, o.IDUser)
		o.ID = "o1"
		return nil
	})

	total := decimal.RequireFromString("25.00")
	order, err := svc.Create(context.Background(), testUserID, OrderInput{
		OrderItems:      []domain.OrderItem{{IDProduct: "p1", Quantity: 2}},
		ShippingAddress: " 1 Main St ",
		TotalPrice:      total,
	})

	require.NoError(t, err)
	assert.Equal(t, "1 Main St", order.ShippingAddress)
	require.Len(t, published, 1)
	assert.Equal(t, "o1", published[0].ResourceID)
	assert.Equal(t, testUserID, published[0].ActorID)
	assert.NotEmpty(t, published[0].ID)
	payload, ok := published[0].Payload.(events.OrderPlacedPayload)
	require.True(t, ok)
	assert.Equal(t, 1, payload.ItemCount)
	assert.True(t, payload.TotalPrice.Equal(total))
}

func TestOrderService_FailedCreatePublishesNothing(t *testing.T) {
	ctrl := gomock.NewController(t)
	orders := mocks.NewMockOrderRepository(ctrl)
	dispatcher := events.NewInMemoryDispatcher()
	dispatcher.Subscribe(events.EventOrderPlaced, func(context.Context, events.Event) error {
		t.Fatal("unexpected event")
		return nil
	})
	boom := errors.New("insert failed")
	orders.EXPECT().Create(gomock.Any(), gomock.Any()).Return(boom)

	_, err := NewOrderService(orders, dispatcher, zap.NewNop()).Create(context.Background(), testUserID, OrderInput{})
	assert.ErrorIs(t, err, boom)
}

func TestOrderService_HandlerFailureDoesNotFailCreate(t *testing.T) {
	ctrl := gomock.NewController(t)
	orders := mocks.NewMockOrderRepository(ctrl)
	dispatcher := events.NewInMemoryDispatcher()
	dispatcher.Subscribe(events.EventOrderPlaced, func(context.Context, events.Event) error {
		return errors.New("webhook down")
	})
	orders.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

	_, err := NewOrderService(orders, dispatcher, zap.NewNop()).Create(context.Background(), testUserID, OrderInput{})
	assert.NoError(t, err)
}

func TestOrderService_UpdateReplacesItems(t *testing.T) {
	ctrl := gomock.NewController(t)
	orders := mocks.NewMockOrderRepository(ctrl)
	existing := &domain.Order{ID: "o1", OrderItems: []domain.OrderItem{{IDProduct: "p1", Quantity: 1}}, ShippingAddress: "old"}
	orders.EXPECT().GetByID(gomock.Any(), "o1").Return(existing, nil)
	orders.EXPECT().Update(gomock.Any(), existing).Return(nil)

	got, err := NewOrderService(orders, nil, zap.NewNop()).Update(context.Background(), "o1", OrderPatch{
		OrderItems: []domain.OrderItem{{IDProduct: "p2", Quantity: 3}},
	})

	require.NoError(t, err)
	assert.Equal(t, []domain.OrderItem{{IDProduct: "p2", Quantity: 3}}, got.OrderItems)
	assert.Equal(t, "old", got.ShippingAddress)
}
