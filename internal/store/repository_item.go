package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/shopman/internal/logger"
	"github.com/MKhiriev/shopman/models"
)

// itemRepository is the PostgreSQL-backed implementation of [ItemStorage].
type itemRepository struct {
	*DB
	logger *logger.Logger
}

// NewItemRepository constructs an [ItemStorage] backed by the provided
// database connection and logger.
func NewItemRepository(db *DB, logger *logger.Logger) ItemStorage {
	return &itemRepository{
		DB:     db,
		logger: logger,
	}
}

// GetItems returns every item of the list ordered by creation time.
func (p *itemRepository) GetItems(ctx context.Context, listID string) ([]models.Item, error) {
	return p.selectItems(ctx, "itemRepository.GetItems", sq.Eq{"list_id": listID})
}

func (p *itemRepository) GetBoughtItems(ctx context.Context, listID string) ([]models.Item, error) {
	return p.selectItems(ctx, "itemRepository.GetBoughtItems", sq.Eq{"list_id": listID, "is_bought": true})
}

func (p *itemRepository) GetItem(ctx context.Context, itemID string) (models.Item, error) {
	items, err := p.selectItems(ctx, "itemRepository.GetItem", sq.Eq{"id": itemID})
	if err != nil {
		return models.Item{}, err
	}
	if len(items) == 0 {
		return models.Item{}, ErrNotFound
	}
	return items[0], nil
}

func (p *itemRepository) CreateItem(ctx context.Context, item models.Item) (models.Item, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertItemQuery(item)
	if err != nil {
		return models.Item{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	created, err := scanItem(p.DB.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Err(err).
			Str("func", "itemRepository.CreateItem").
			Str("list_id", item.ListID).
			Msg("failed to insert item")
		return models.Item{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return created, nil
}

// UpdateItem applies the non-nil fields of update and returns the stored
// item. An empty update returns the item unchanged.
func (p *itemRepository) UpdateItem(ctx context.Context, itemID string, update models.ItemUpdate) (models.Item, error) {
	log := logger.FromContext(ctx)

	if update.IsEmpty() {
		return p.GetItem(ctx, itemID)
	}

	query, args, err := buildUpdateItemQuery(itemID, update)
	if err != nil {
		log.Err(err).Str("func", "itemRepository.UpdateItem").Str("item_id", itemID).Msg("failed to build query")
		return models.Item{}, err
	}

	updated, err := scanItem(p.DB.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Item{}, ErrNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "itemRepository.UpdateItem").Str("item_id", itemID).Msg("failed to update item")
		return models.Item{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return updated, nil
}

func (p *itemRepository) DeleteItem(ctx context.Context, itemID string) error {
	deleted, err := p.deleteItems(ctx, "itemRepository.DeleteItem", sq.Eq{"id": itemID})
	if err != nil {
		return err
	}
	if len(deleted) == 0 {
		return ErrNotFound
	}
	return nil
}

func (p *itemRepository) DeleteItems(ctx context.Context, listID string, boughtOnly bool) ([]models.Item, error) {
	where := sq.Eq{"list_id": listID}
	if boughtOnly {
		where["is_bought"] = true
	}
	return p.deleteItems(ctx, "itemRepository.DeleteItems", where)
}

// RestoreItems upserts items in one statement. Restoring nothing is a no-op.
func (p *itemRepository) RestoreItems(ctx context.Context, items []models.Item) error {
	log := logger.FromContext(ctx)

	if len(items) == 0 {
		return nil
	}

	query, args, err := buildRestoreItemsQuery(items)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = p.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "itemRepository.RestoreItems").
			Int("items_count", len(items)).
			Msg("failed to restore items")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

func (p *itemRepository) selectItems(ctx context.Context, fn string, where sq.Sqlizer) ([]models.Item, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectItemsQuery(where)
	if err != nil {
		log.Err(err).Str("func", fn).Msg("failed to create query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var items []models.Item
	err = p.withRetry(ctx, func() error {
		rows, queryErr := p.DB.QueryContext(ctx, query, args...)
		if queryErr != nil {
			return queryErr
		}
		items, queryErr = collectItems(rows)
		return queryErr
	})
	if err != nil {
		log.Err(err).Str("func", fn).Msg("failed to query items")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return items, nil
}

func (p *itemRepository) deleteItems(ctx context.Context, fn string, where sq.Sqlizer) ([]models.Item, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteItemsQuery(where)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := p.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", fn).Msg("failed to delete items")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	deleted, err := collectItems(rows)
	if err != nil {
		log.Err(err).Str("func", fn).Msg("failed to scan deleted items")
		return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return deleted, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanItem(row rowScanner) (models.Item, error) {
	var (
		item     models.Item
		itemType string
	)
	err := row.Scan(
		&item.ID,
		&item.ListID,
		&item.Name,
		&item.Amount,
		&itemType,
		&item.Note,
		&item.IsBought,
		&item.CreatedAt,
	)
	item.Type = models.ItemType(itemType)
	return item, err
}

// collectItems drains and closes rows.
func collectItems(rows *sql.Rows) ([]models.Item, error) {
	defer rows.Close()

	items := make([]models.Item, 0)
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, rows.Err()
}
