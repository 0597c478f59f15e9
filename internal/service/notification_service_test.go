package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/Fatenkh7/CODSOFT-T2-Backend/internal/config"
	"github.com/Fatenkh7/CODSOFT-T2-Backend/internal/events"
)

func TestNotificationService_OrderPlacedEmitsStubs(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	dispatcher := events.NewInMemoryDispatcher()
	svc := NewNotificationService(dispatcher, zap.New(core), config.NotificationConfig{
		EmailTo:    "ops@example.com",
		WebhookURL: "https://hooks.example.com/orders",
	})
	svc.RegisterHandlers()

	require.NoError(t, dispatcher.Publish(context.Background(), events.Event{Type: events.EventOrderPlaced, ResourceID: "o1"}))

	assert.Equal(t, 1, logs.FilterMessage("OrderPlaced").Len())
	assert.Equal(t, 1, logs.FilterMessage("sendEmailNotificationStub").Len())
	assert.Equal(t, 1, logs.FilterMessage("sendWebhookNotificationStub").Len())
}

func TestNotificationService_UnconfiguredChannelsAreSkipped(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	dispatcher := events.NewInMemoryDispatcher()
	NewNotificationService(dispatcher, zap.New(core), config.NotificationConfig{}).RegisterHandlers()

	require.NoError(t, dispatcher.Publish(context.Background(), events.Event{Type: events.EventInboxMessageReceived, ResourceID: "m1"}))

	assert.Equal(t, 1, logs.FilterMessage("InboxMessageReceived").Len())
	assert.Zero(t, logs.FilterMessage("sendEmailNotificationStub").Len())
}
