package store

import (
	"context"

	"github.com/MKhiriev/shopman/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// ListStorage persists lists of the reference backend.
type ListStorage interface {
	CreateList(ctx context.Context, list models.List, passwordHash string) (models.List, error)
	FindListByName(ctx context.Context, nameLowercase string) (models.List, error)
	FindListByID(ctx context.Context, listID string) (models.List, error)
	// GetPasswordHash returns the bcrypt hash of the list password, or an
	// empty string when the list has none.
	GetPasswordHash(ctx context.Context, listID string) (string, error)
	UpdatePassword(ctx context.Context, listID, passwordHash string, viewRequires, editRequires bool) error
	DeleteList(ctx context.Context, listID string) error
}

// ItemStorage persists items of the reference backend.
type ItemStorage interface {
	GetItems(ctx context.Context, listID string) ([]models.Item, error)
	GetBoughtItems(ctx context.Context, listID string) ([]models.Item, error)
	GetItem(ctx context.Context, itemID string) (models.Item, error)
	CreateItem(ctx context.Context, item models.Item) (models.Item, error)
	UpdateItem(ctx context.Context, itemID string, update models.ItemUpdate) (models.Item, error)
	DeleteItem(ctx context.Context, itemID string) error
	// DeleteItems removes items of the list, only bought ones when
	// boughtOnly is set, and returns the removed records.
	DeleteItems(ctx context.Context, listID string, boughtOnly bool) ([]models.Item, error)
	// RestoreItems upserts items by id.
	RestoreItems(ctx context.Context, items []models.Item) error
}

// ArchiveStorage persists archives of bought items.
type ArchiveStorage interface {
	// ArchiveBought moves every bought item of the list into a new archive.
	ArchiveBought(ctx context.Context, archive models.Archive) (models.Archive, error)
	GetArchives(ctx context.Context, listID string) ([]models.Archive, error)
	GetArchive(ctx context.Context, listID, archiveID string) (models.Archive, error)
	DeleteArchive(ctx context.Context, listID, archiveID string) error
	DeleteLatestArchive(ctx context.Context, listID string) error
	RestoreArchive(ctx context.Context, archive models.Archive) error
}

// PushSubscriptionStorage persists web-push endpoints per list.
type PushSubscriptionStorage interface {
	Subscribe(ctx context.Context, listID string, sub models.PushSubscription) error
	Unsubscribe(ctx context.Context, listID, endpoint string) error
}
