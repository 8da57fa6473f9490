package store

import (
	"context"
	"time"

	"github.com/MKhiriev/shopman/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// ListRepository is the durable cache of lists known to the client.
type ListRepository interface {
	GetList(ctx context.Context, listID string) (models.List, error)
	GetListByName(ctx context.Context, nameLowercase string) (models.List, error)
	GetAllLists(ctx context.Context) ([]models.List, error)
	// PutList upserts list. The lowercase name is derived from Name.
	PutList(ctx context.Context, list models.List) error
	// DeleteList removes the list and every cached item of it.
	DeleteList(ctx context.Context, listID string) error
	ClearLists(ctx context.Context) error
}

// ItemRepository is the durable cache of items.
type ItemRepository interface {
	GetItem(ctx context.Context, itemID string) (models.Item, error)
	GetAllItems(ctx context.Context) ([]models.Item, error)
	GetItemsByList(ctx context.Context, listID string) ([]models.Item, error)
	GetItemsByStatus(ctx context.Context, status models.SyncStatus) ([]models.Item, error)
	PutItems(ctx context.Context, items ...models.Item) error
	DeleteItem(ctx context.Context, itemID string) error
	DeleteItemsByList(ctx context.Context, listID string) error
	ClearItems(ctx context.Context) error
}

// QueueRepository is the durable FIFO of operations not yet confirmed by the
// Remote Authority. Methods taking a [models.ItemChange] apply it to the item
// collection in the same transaction as the queue mutation.
type QueueRepository interface {
	// Enqueue appends payload with timestamp at and zero retries.
	Enqueue(ctx context.Context, payload models.OperationPayload, at time.Time, change models.ItemChange) (models.Operation, error)
	// GetOperations returns the queue ordered by timestamp, then id.
	GetOperations(ctx context.Context) ([]models.Operation, error)
	CountOperations(ctx context.Context) (int, error)
	UpdateRetries(ctx context.Context, operationID int64, retries int) error
	// RemoveOperation deletes the operation. Removing a missing operation
	// still applies change.
	RemoveOperation(ctx context.Context, operationID int64, change models.ItemChange) error
	// ResolveTempID removes the ADD operation, replaces the temporary item
	// with item and points every queued payload at item.ID.
	ResolveTempID(ctx context.Context, operationID int64, tempID string, item models.Item) error
	// DiscardItem removes the item and every queued operation targeting it
	// and returns the number of discarded operations.
	DiscardItem(ctx context.Context, itemID string) (int, error)
	ClearOperations(ctx context.Context) error
}

// LocalStore is the complete client durable store.
type LocalStore interface {
	ListRepository
	ItemRepository
	QueueRepository
}
