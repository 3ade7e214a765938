package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/spec-kit/pet-adoption/internal/cache"
	"github.com/spec-kit/pet-adoption/internal/events"
)

// ListingInvalidator drops cached pet listings whenever a pet changes or its
// owner's account is deleted.
type ListingInvalidator struct {
	dispatcher events.Dispatcher
	listings   cache.PetListingCache
	logger     *zap.Logger
}

// NewListingInvalidator creates the subscriber.
func NewListingInvalidator(dispatcher events.Dispatcher, listings cache.PetListingCache, logger *zap.Logger) *ListingInvalidator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ListingInvalidator{dispatcher: dispatcher, listings: listings, logger: logger}
}

// RegisterHandlers subscribes to pet and account lifecycle events.
func (l *ListingInvalidator) RegisterHandlers() {
	if l.dispatcher == nil || l.listings == nil {
		return
	}
	for _, eventType := range []events.EventType{
		events.EventPetCreated,
		events.EventPetUpdated,
		events.EventPetDeleted,
		events.EventResponsibleDeleted,
	} {
		l.dispatcher.Subscribe(eventType, l.invalidate)
	}
}

func (l *ListingInvalidator) invalidate(ctx context.Context, event events.Event) error {
	if err := l.listings.Invalidate(ctx, event.ResponsibleID); err != nil {
		return fmt.Errorf("invalidate pet listings: %w", err)
	}
	l.logger.Debug("pet listings invalidated", zap.String("responsible_id", event.ResponsibleID))
	return nil
}
