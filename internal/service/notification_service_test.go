package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/spec-kit/pet-adoption/internal/config"
	"github.com/spec-kit/pet-adoption/internal/events"
)

func TestNotificationService_LogsConfiguredTargets(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	logger := zap.New(core)
	dispatcher := events.NewInMemoryDispatcher(zap.NewNop())

	NewNotificationService(dispatcher, logger, config.NotificationConfig{
		EmailFrom:  "noreply@example.com",
		WebhookURL: "http://hooks.local",
	}).RegisterHandlers()

	ctx := context.Background()
	require.NoError(t, dispatcher.Publish(ctx, events.Event{Type: events.EventResponsibleCreated, ResourceID: "r1", ResponsibleID: "r1"}))
	require.NoError(t, dispatcher.Publish(ctx, events.Event{Type: events.EventPetCreated, ResourceID: "p1", ResponsibleID: "r1"}))
	require.NoError(t, dispatcher.Publish(ctx, events.Event{Type: events.EventResponsibleDeleted, ResourceID: "r1", ResponsibleID: "r1"}))

	assert.Equal(t, 1, logs.FilterMessage("email notification").Len())
	assert.Equal(t, 2, logs.FilterMessage("webhook notification").Len())
	assert.Equal(t, 1, logs.FilterMessage("ResponsibleDeleted").Len())
}

func TestNotificationService_SkipsUnconfiguredTargets(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	dispatcher := events.NewInMemoryDispatcher(zap.NewNop())
	NewNotificationService(dispatcher, zap.New(core), config.NotificationConfig{}).RegisterHandlers()

	require.NoError(t, dispatcher.Publish(context.Background(), events.Event{Type: events.EventPetDeleted, ResourceID: "p1"}))

	assert.Zero(t, logs.FilterMessage("webhook notification").Len())
	assert.Equal(t, 1, logs.FilterMessage("PetDeleted").Len())
}
