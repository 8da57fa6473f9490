package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/shopman/internal/config"
	"github.com/MKhiriev/shopman/internal/logger"
)

// Storages groups the repositories of the reference backend.
type Storages struct {
	ListStorage             ListStorage
	ItemStorage             ItemStorage
	ArchiveStorage          ArchiveStorage
	PushSubscriptionStorage PushSubscriptionStorage

	db *DB
}

// NewStorages connects to postgres, applies migrations and wires every
// server repository to the connection.
func NewStorages(ctx context.Context, cfg config.DB, log *logger.Logger) (*Storages, error) {
	log.Info().Msg("creating new storages...")

	db, err := NewConnectPostgres(ctx, cfg, log)
	if err != nil {
		return nil, fmt.Errorf("postgres connection error: %w", err)
	}

	if err = db.Migrate(); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &Storages{
		ListStorage:             NewListRepository(db, log),
		ItemStorage:             NewItemRepository(db, log),
		ArchiveStorage:          NewArchiveRepository(db, log),
		PushSubscriptionStorage: NewPushSubscriptionRepository(db, log),
		db:                      db,
	}, nil
}

// Close releases the database connection.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
