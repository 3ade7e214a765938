package worker

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/spec-kit/pet-adoption/internal/config"
	"github.com/spec-kit/pet-adoption/internal/domain"
	"github.com/spec-kit/pet-adoption/internal/events"
	"github.com/spec-kit/pet-adoption/internal/service"
)

type recordingCache struct {
	mu          sync.Mutex
	invalidated []string
}

func (r *recordingCache) Generation(context.Context, string) (int64, error) { return 0, nil }

func (r *recordingCache) Get(context.Context, string, int64) ([]domain.Pet, bool, error) {
	return nil, false, nil
}

func (r *recordingCache) Set(context.Context, string, int64, []domain.Pet) error { return nil }

func (r *recordingCache) Invalidate(_ context.Context, responsibleID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.invalidated = append(r.invalidated, responsibleID)
	return nil
}

func TestWorkersSubscribeToPetEvents(t *testing.T) {
	logger := zaptest.NewLogger(t)
	dispatcher := events.NewInMemoryDispatcher(logger)
	listings := &recordingCache{}

	StartNotificationWorker(service.NewNotificationService(dispatcher, logger, config.NotificationConfig{}))
	StartListingInvalidation(service.NewListingInvalidator(dispatcher, listings, logger))

	ctx := context.Background()
	for _, eventType := range []events.EventType{events.EventPetCreated, events.EventPetUpdated, events.EventPetDeleted} {
		require.NoError(t, dispatcher.Publish(ctx, events.Event{Type: eventType, ResourceID: "p1", ResponsibleID: "r1"}))
	}
	require.NoError(t, dispatcher.Publish(ctx, events.Event{Type: events.EventResponsibleCreated, ResourceID: "r2", ResponsibleID: "r2"}))
	require.NoError(t, dispatcher.Publish(ctx, events.Event{Type: events.EventResponsibleDeleted, ResourceID: "r3", ResponsibleID: "r3"}))

	assert.Equal(t, []string{"r1", "r1", "r1", "r3"}, listings.invalidated)
}

func TestWorkersTolerateNil(t *testing.T) {
	StartNotificationWorker(nil)
	StartListingInvalidation(nil)
}
