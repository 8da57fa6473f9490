package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/shopman/internal/logger"
	"github.com/MKhiriev/shopman/internal/store"
	"github.com/MKhiriev/shopman/internal/validators"
	"github.com/MKhiriev/shopman/models"
)

// pushService registers web-push endpoints of list followers. Delivery of
// notifications is handled outside the reference backend.
type pushService struct {
	subscriptions store.PushSubscriptionStorage
	access        listAccess
	validator     validators.Validator
	logger        *logger.Logger
}

func NewPushService(subscriptions store.PushSubscriptionStorage, listRepository store.ListStorage, logger *logger.Logger) PushService {
	return &pushService{
		subscriptions: subscriptions,
		access:        listAccess{lists: listRepository},
		validator:     validators.NewRequestValidator(),
		logger:        logger,
	}
}

// Subscribe registers sub for changes of the list. Anyone allowed to view
// the list may subscribe.
func (s *pushService) Subscribe(ctx context.Context, listID string, sub models.PushSubscription) error {
	if err := validate(ctx, s.validator, sub); err != nil {
		return err
	}
	if _, err := s.access.authorize(ctx, listID, models.AccessView); err != nil {
		return err
	}

	if err := s.subscriptions.Subscribe(ctx, listID, sub); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "pushService.Subscribe").Str("list_id", listID).Msg("subscription failed")
		return fmt.Errorf("subscription failed: %w", err)
	}
	return nil
}

func (s *pushService) Unsubscribe(ctx context.Context, listID, endpoint string) error {
	if err := validate(ctx, s.validator, models.PushSubscription{Endpoint: endpoint}); err != nil {
		return err
	}
	if err := s.subscriptions.Unsubscribe(ctx, listID, endpoint); err != nil {
		return fmt.Errorf("unsubscribe failed: %w", err)
	}
	return nil
}
