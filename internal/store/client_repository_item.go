package store

import (
	"context"
	"database/sql"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/shopman/internal/logger"
	"github.com/MKhiriev/shopman/models"
)

// putItemsChunk keeps multi-row upserts below the sqlite variable limit.
const putItemsChunk = 500

// localItemRepository is the sqlite-backed implementation of [ItemRepository].
type localItemRepository struct {
	*DB
	logger *logger.Logger
}

// NewLocalItemRepository constructs an [ItemRepository] over the client
// durable store.
func NewLocalItemRepository(db *DB, logger *logger.Logger) ItemRepository {
	return &localItemRepository{
		DB:     db,
		logger: logger,
	}
}

func (l *localItemRepository) GetItem(ctx context.Context, itemID string) (models.Item, error) {
	items, err := selectLocalItems(ctx, l.DB, l.DB.DB, sq.Eq{"id": itemID})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "localItemRepository.GetItem").Str("item_id", itemID).Msg("failed to get item")
		return models.Item{}, err
	}
	if len(items) == 0 {
		return models.Item{}, ErrNotFound
	}
	return items[0], nil
}

func (l *localItemRepository) GetAllItems(ctx context.Context) ([]models.Item, error) {
	items, err := selectLocalItems(ctx, l.DB, l.DB.DB, nil)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "localItemRepository.GetAllItems").Msg("failed to get items")
	}
	return items, err
}

func (l *localItemRepository) GetItemsByList(ctx context.Context, listID string) ([]models.Item, error) {
	items, err := selectLocalItems(ctx, l.DB, l.DB.DB, sq.Eq{"list_id": listID})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "localItemRepository.GetItemsByList").Str("list_id", listID).Msg("failed to get items")
	}
	return items, err
}

func (l *localItemRepository) GetItemsByStatus(ctx context.Context, status models.SyncStatus) ([]models.Item, error) {
	items, err := selectLocalItems(ctx, l.DB, l.DB.DB, sq.Eq{"sync_status": string(status)})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "localItemRepository.GetItemsByStatus").Str("status", string(status)).Msg("failed to get items")
	}
	return items, err
}

func (l *localItemRepository) PutItems(ctx context.Context, items ...models.Item) error {
	if len(items) == 0 {
		return nil
	}

	err := l.withTx(ctx, func(tx *sql.Tx) error {
		return putLocalItemsTx(ctx, l.DB, tx, items)
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "localItemRepository.PutItems").Int("items_count", len(items)).Msg("failed to put items")
	}
	return err
}

func (l *localItemRepository) DeleteItem(ctx context.Context, itemID string) error {
	err := deleteLocalItemsTx(ctx, l.DB, l.DB.DB, sq.Eq{"id": itemID})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "localItemRepository.DeleteItem").Str("item_id", itemID).Msg("failed to delete item")
	}
	return err
}

func (l *localItemRepository) DeleteItemsByList(ctx context.Context, listID string) error {
	err := deleteLocalItemsTx(ctx, l.DB, l.DB.DB, sq.Eq{"list_id": listID})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "localItemRepository.DeleteItemsByList").Str("list_id", listID).Msg("failed to delete items")
	}
	return err
}

func (l *localItemRepository) ClearItems(ctx context.Context) error {
	err := deleteLocalItemsTx(ctx, l.DB, l.DB.DB, sq.Expr("1 = 1"))
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "localItemRepository.ClearItems").Msg("failed to clear items")
	}
	return err
}

func selectLocalItems(ctx context.Context, db *DB, q querier, where sq.Sqlizer) ([]models.Item, error) {
	query, args, err := buildSelectLocalItemsQuery(where)
	if err != nil {
		return nil, db.wrapErr(ErrBuildingSQLQuery, err)
	}

	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, db.wrapErr(ErrExecutingQuery, err)
	}
	defer rows.Close()

	items := make([]models.Item, 0)
	for rows.Next() {
		var (
			item     models.Item
			itemType string
			status   string
		)
		err = rows.Scan(
			&item.ID,
			&item.ListID,
			&item.Name,
			&item.Amount,
			&itemType,
			&item.Note,
			&item.IsBought,
			&item.CreatedAt,
			&status,
		)
		if err != nil {
			return nil, db.wrapErr(ErrScanningRow, err)
		}
		item.Type = models.ItemType(itemType)
		item.SyncStatus = models.SyncStatus(status)
		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, db.wrapErr(ErrScanningRow, err)
	}

	return items, nil
}

func putLocalItemsTx(ctx context.Context, db *DB, q querier, items []models.Item) error {
	for start := 0; start < len(items); start += putItemsChunk {
		end := min(start+putItemsChunk, len(items))

		query, args, err := buildPutLocalItemsQuery(items[start:end])
		if err != nil {
			return db.wrapErr(ErrBuildingSQLQuery, err)
		}
		if _, err = q.ExecContext(ctx, query, args...); err != nil {
			return db.wrapErr(ErrExecutingQuery, err)
		}
	}
	return nil
}

func deleteLocalItemsTx(ctx context.Context, db *DB, q querier, where sq.Sqlizer) error {
	query, args, err := buildDeleteLocalItemsQuery(where)
	if err != nil {
		return db.wrapErr(ErrBuildingSQLQuery, err)
	}
	if _, err = q.ExecContext(ctx, query, args...); err != nil {
		return db.wrapErr(ErrExecutingQuery, err)
	}
	return nil
}

// applyItemChangeTx deletes change.Delete first, then upserts change.Put.
func applyItemChangeTx(ctx context.Context, db *DB, q querier, change models.ItemChange) error {
	if len(change.Delete) > 0 {
		if err := deleteLocalItemsTx(ctx, db, q, sq.Eq{"id": change.Delete}); err != nil {
			return err
		}
	}
	if len(change.Put) > 0 {
		return putLocalItemsTx(ctx, db, q, change.Put)
	}
	return nil
}
