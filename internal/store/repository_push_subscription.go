package store

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/shopman/internal/logger"
	"github.com/MKhiriev/shopman/models"
)

type pushSubscriptionRepository struct {
	*DB
	logger *logger.Logger
}

// NewPushSubscriptionRepository constructs a [PushSubscriptionStorage]
// backed by the provided database connection and logger.
func NewPushSubscriptionRepository(db *DB, logger *logger.Logger) PushSubscriptionStorage {
	return &pushSubscriptionRepository{
		DB:     db,
		logger: logger,
	}
}

// Subscribe registers sub for the list. Registering the same endpoint again
// refreshes its keys.
func (p *pushSubscriptionRepository) Subscribe(ctx context.Context, listID string, sub models.PushSubscription) error {
	log := logger.FromContext(ctx)

	query, args, err := pgBuilder.
		Insert("push_subscriptions").
		Columns("list_id", "endpoint", "p256dh", "auth").
		Values(listID, sub.Endpoint, sub.Keys.P256dh, sub.Keys.Auth).
		Suffix("ON CONFLICT (list_id, endpoint) DO UPDATE SET p256dh = EXCLUDED.p256dh, auth = EXCLUDED.auth").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = p.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "pushSubscriptionRepository.Subscribe").Str("list_id", listID).Msg("failed to save push subscription")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return nil
}

func (p *pushSubscriptionRepository) Unsubscribe(ctx context.Context, listID, endpoint string) error {
	log := logger.FromContext(ctx)

	query, args, err := pgBuilder.
		Delete("push_subscriptions").
		Where(sq.Eq{"list_id": listID, "endpoint": endpoint}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = p.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "pushSubscriptionRepository.Unsubscribe").Str("list_id", listID).Msg("failed to remove push subscription")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return nil
}
