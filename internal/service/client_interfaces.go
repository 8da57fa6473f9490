package service

import (
	"context"
	"time"

	"github.com/MKhiriev/shopman/models"
)

// Connectivity is the view of the connectivity monitor the client services
// depend on.
type Connectivity interface {
	IsOnline() bool
	Subscribe(fn func(online bool)) (unsubscribe func())
}

// SyncEngine drives reconciliation between the durable local store and the
// Remote Authority.
type SyncEngine interface {
	// Run drains the queue whenever it is triggered, the client comes back
	// online or on start when online. It blocks until ctx is cancelled.
	Run(ctx context.Context)

	// Enqueue durably records payload together with the local item change,
	// refreshes the pending count and schedules a drain when online. The
	// returned confirmation resolves once the operation is confirmed or
	// dropped.
	Enqueue(ctx context.Context, payload models.OperationPayload, change models.ItemChange) (models.Operation, *Confirmation, error)

	// Drain runs one drain pass. It returns false without doing anything
	// when offline or when another pass is in progress.
	Drain(ctx context.Context) bool

	// Trigger schedules a drain pass for Run without blocking.
	Trigger()

	// ReconcileItems merges the authoritative items of the list with the
	// locally pending ones and refreshes the cache. Offline, or when the
	// fetch fails, it returns the cached items.
	ReconcileItems(ctx context.Context, listID, token string) ([]models.Item, error)

	// Discard removes a never synced item and every queued operation that
	// targets it.
	Discard(ctx context.Context, itemID string) error

	// RefreshPendingCount recounts the queue and publishes the result.
	RefreshPendingCount(ctx context.Context) int
}

// ClientItemService performs optimistic item mutations on the open list.
// Each mutation returns the provisional item and a confirmation that
// resolves when the Remote Authority accepted or finally rejected it.
type ClientItemService interface {
	AddItem(ctx context.Context, fields models.ItemFields) (models.Item, *Confirmation, error)
	UpdateItem(ctx context.Context, itemID string, update models.ItemUpdate) (models.Item, *Confirmation, error)
	ToggleItem(ctx context.Context, itemID string) (models.Item, *Confirmation, error)
	DeleteItem(ctx context.Context, itemID string) (*Confirmation, error)
}

// ClientListService opens, creates and manages shopping lists.
type ClientListService interface {
	// OpenList makes the list named name the current one and loads its
	// items. A view-protected list without access returns the list together
	// with [ErrPasswordRequired].
	OpenList(ctx context.Context, name string) (models.List, error)
	// Refresh reloads the items of the current list.
	Refresh(ctx context.Context) error
	CreateList(ctx context.Context, req models.CreateListRequest) (models.List, error)
	// VerifyPassword obtains an access token for the list and keeps it for
	// the session.
	VerifyPassword(ctx context.Context, listID, password string, action models.AccessAction) error
	UpdatePassword(ctx context.Context, listID string, req models.UpdatePasswordRequest) error
	DeleteList(ctx context.Context, listID, password string) error

	Follow(ctx context.Context, listID string) error
	Unfollow(ctx context.Context, listID string) error
	FollowedLists(ctx context.Context) ([]models.List, error)
	SetNotifications(ctx context.Context, listID string, enabled bool, sub *models.PushSubscription) error
}

// ClientArchiveService runs the online-only bulk actions on the open list.
type ClientArchiveService interface {
	ArchiveBought(ctx context.Context) (models.BulkResult, error)
	DeleteBought(ctx context.Context) (models.BulkResult, error)
	DeleteAll(ctx context.Context) (models.BulkResult, error)
	Archives(ctx context.Context) ([]models.Archive, error)
	DeleteArchive(ctx context.Context, archiveID string) (models.BulkResult, error)
	Undo(ctx context.Context, undo models.UndoData) (models.UndoResult, error)
	// UndoLast reverts the most recent bulk action of this session.
	UndoLast(ctx context.Context) (models.UndoResult, error)
	// LastUndo returns the undo data of the most recent bulk action.
	LastUndo() (models.UndoData, bool)
}

// ClientSyncJob defines the contract for a background worker that
// periodically drains the operation queue.
type ClientSyncJob interface {
	// Start launches the background drain goroutine. It drains every
	// interval, defaulting to 30 seconds if interval is zero or negative.
	// Any previously running job is stopped before the new one begins.
	Start(ctx context.Context, interval time.Duration)

	// Stop signals the background goroutine to exit and blocks until it has
	// fully terminated.
	Stop()
}
