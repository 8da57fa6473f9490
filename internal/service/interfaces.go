package service

import (
	"context"

	"github.com/MKhiriev/shopman/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// Server-side services of the reference Remote Authority. Permission checks
// read the verified access claims of the request from the context (see
// utils.GetAccessFromContext); a request without claims is anonymous.

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

type ListService interface {
	CreateList(ctx context.Context, req models.CreateListRequest) (models.List, error)
	GetListByName(ctx context.Context, name string) (models.List, error)
	// VerifyPassword exchanges the list password for an access token.
	VerifyPassword(ctx context.Context, listID string, req models.VerifyPasswordRequest) (models.AccessToken, error)
	UpdatePassword(ctx context.Context, listID string, req models.UpdatePasswordRequest) error
	DeleteList(ctx context.Context, listID string, req models.DeleteListRequest) error
	// ParseToken validates a bearer token and returns its claims.
	ParseToken(ctx context.Context, tokenString string) (*models.AccessClaims, error)
}

type ItemService interface {
	GetItems(ctx context.Context, listID string) ([]models.Item, error)
	AddItem(ctx context.Context, listID string, fields models.ItemFields) (models.Item, error)
	UpdateItem(ctx context.Context, itemID string, update models.ItemUpdate) (models.Item, error)
	DeleteItem(ctx context.Context, itemID string) error
}

type ArchiveService interface {
	ArchiveBought(ctx context.Context, listID string) (models.BulkResult, error)
	DeleteItems(ctx context.Context, listID string, scope models.BulkScope) (models.BulkResult, error)
	GetArchives(ctx context.Context, listID string) ([]models.Archive, error)
	DeleteArchive(ctx context.Context, listID, archiveID string) (models.BulkResult, error)
	Undo(ctx context.Context, listID string, undo models.UndoData) (models.UndoResult, error)
}

type PushService interface {
	Subscribe(ctx context.Context, listID string, sub models.PushSubscription) error
	Unsubscribe(ctx context.Context, listID, endpoint string) error
}
