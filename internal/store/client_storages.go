package store

import (
	"context"

	"github.com/MKhiriev/shopman/internal/config"
	"github.com/MKhiriev/shopman/internal/logger"
)

// ClientStorages is the client durable store handed to the service layer.
// It embeds a [LocalStore] that transparently degrades to memory when the
// sqlite file becomes unusable.
type ClientStorages struct {
	LocalStore

	db        *DB
	degrading *degradingStore
}

// NewClientStorages initialises the client storage layer. It performs the
// following steps:
//  1. With the "memory" DSN, returns a purely in-memory store.
//  2. Opens the sqlite file named by cfg.DSN, creating it when missing.
//  3. Runs pending schema migrations via [DB.Migrate].
//  4. Wraps the sqlite repositories so that a later storage failure switches
//     the session to memory.
//
// A failure in steps 2 or 3 is logged and the in-memory store is used
// instead; the client keeps working without durability.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, log *logger.Logger) *ClientStorages {
	log.Info().Msg("creating new client storages...")

	if cfg.InMemory() {
		log.Info().Msg("using in-memory store")
		return &ClientStorages{LocalStore: NewMemoryStore()}
	}

	db, err := NewConnectSQLite(ctx, cfg, log)
	if err != nil {
		log.Warn().Err(err).Str("dsn", cfg.DSN).Msg("local store unavailable, using in-memory store")
		return &ClientStorages{LocalStore: NewMemoryStore()}
	}

	if err = db.Migrate(); err != nil {
		log.Warn().Err(err).Str("dsn", cfg.DSN).Msg("local store migration failed, using in-memory store")
		db.Close()
		return &ClientStorages{LocalStore: NewMemoryStore()}
	}

	return newClientStorages(db, log)
}

func newClientStorages(db *DB, log *logger.Logger) *ClientStorages {
	durable := &durableStore{
		ListRepository:  NewLocalListRepository(db, log),
		ItemRepository:  NewLocalItemRepository(db, log),
		QueueRepository: NewLocalQueueRepository(db, log),
	}
	degrading := newDegradingStore(durable, NewMemoryStore(), log)

	return &ClientStorages{
		LocalStore: degrading,
		db:         db,
		degrading:  degrading,
	}
}

// Durable reports whether writes currently reach the sqlite file.
func (s *ClientStorages) Durable() bool {
	return s.degrading != nil && !s.degrading.Degraded()
}

// Close releases the sqlite connection, if any.
func (s *ClientStorages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
