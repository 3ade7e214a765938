package worker

import (
	"github.com/spec-kit/pet-adoption/internal/service"
)

// StartNotificationWorker registers notification handlers.
func StartNotificationWorker(notificationService *service.NotificationService) {
	if notificationService == nil {
		return
	}
	notificationService.RegisterHandlers()
}

// StartListingInvalidation registers the cache invalidation handlers.
func StartListingInvalidation(invalidator *service.ListingInvalidator) {
	if invalidator == nil {
		return
	}
	invalidator.RegisterHandlers()
}
