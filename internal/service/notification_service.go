package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/spec-kit/pet-adoption/internal/config"
	"github.com/spec-kit/pet-adoption/internal/events"
)

// NotificationService records outbound notifications for domain events. Email
// and webhook notices are only logged, and only when their target is configured.
type NotificationService struct {
	dispatcher events.Dispatcher
	logger     *zap.Logger
	cfg        config.NotificationConfig
}

// NewNotificationService creates the service.
func NewNotificationService(dispatcher events.Dispatcher, logger *zap.Logger, cfg config.NotificationConfig) *NotificationService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &NotificationService{
		dispatcher: dispatcher,
		logger:     logger,
		cfg:        cfg,
	}
}

// RegisterHandlers subscribes to events.
func (n *NotificationService) RegisterHandlers() {
	if n.dispatcher == nil {
		return
	}
	n.dispatcher.Subscribe(events.EventResponsibleCreated, n.handleResponsibleCreated)
	n.dispatcher.Subscribe(events.EventResponsibleDeleted, n.handleResponsibleDeleted)
	n.dispatcher.Subscribe(events.EventPetCreated, n.handlePetChanged)
	n.dispatcher.Subscribe(events.EventPetUpdated, n.handlePetChanged)
	n.dispatcher.Subscribe(events.EventPetDeleted, n.handlePetDeleted)
}

func (n *NotificationService) handleResponsibleCreated(ctx context.Context, event events.Event) error {
	n.logger.Info("ResponsibleCreated", zap.String("responsible_id", event.ResourceID))
	n.logEmailNotification(ctx, event)
	return nil
}

func (n *NotificationService) handleResponsibleDeleted(ctx context.Context, event events.Event) error {
	n.logger.Info("ResponsibleDeleted", zap.String("responsible_id", event.ResourceID))
	n.logWebhookNotification(ctx, event)
	return nil
}

func (n *NotificationService) handlePetChanged(ctx context.Context, event events.Event) error {
	n.logger.Info("PetChanged",
		zap.String("event_type", string(event.Type)),
		zap.String("pet_id", event.ResourceID),
		zap.String("responsible_id", event.ResponsibleID),
		zap.Any("payload", event.Payload))
	n.logWebhookNotification(ctx, event)
	return nil
}

func (n *NotificationService) handlePetDeleted(ctx context.Context, event events.Event) error {
	n.logger.Info("PetDeleted", zap.String("pet_id", event.ResourceID), zap.String("responsible_id", event.ResponsibleID))
	n.logWebhookNotification(ctx, event)
	return nil
}

func (n *NotificationService) logEmailNotification(_ context.Context, event events.Event) {
	if strings.TrimSpace(n.cfg.EmailFrom) == "" {
		return
	}
	n.logger.Debug("email notification",
		zap.String("from", n.cfg.EmailFrom),
		zap.String("resource_id", event.ResourceID),
		zap.String("event_type", string(event.Type)))
}

func (n *NotificationService) logWebhookNotification(_ context.Context, event events.Event) {
	if strings.TrimSpace(n.cfg.WebhookURL) == "" {
		return
	}
	n.logger.Debug("webhook notification",
		zap.String("url", n.cfg.WebhookURL),
		zap.String("resource_id", event.ResourceID),
		zap.String("event_type", string(event.Type)))
}
