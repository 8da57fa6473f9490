package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/MKhiriev/shopman/internal/adapter"
	"github.com/MKhiriev/shopman/internal/app"
	"github.com/MKhiriev/shopman/internal/logger"
	"github.com/MKhiriev/shopman/internal/store"
	"github.com/MKhiriev/shopman/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestItemSvc(t *testing.T, ctrl *gomock.Controller, online bool) (ClientItemService, *clientFixture) {
	t.Helper()
	f := newClientFixture(t, ctrl, online)
	f.openList(t, testList())
	return NewClientItemService(f.local, f.remote, f.engine, f.connectivity, f.appStore, logger.Nop()), f
}

// seedItem: подтверждённый элемент в кэше и на экране
func seedItem(t *testing.T, f *clientFixture, item models.Item) {
	t.Helper()
	require.NoError(t, f.local.PutItems(context.Background(), item))
	f.appStore.SetItems(append(f.appStore.Snapshot().Items, item))
}

func displayed(f *clientFixture, itemID string) (models.Item, bool) {
	for _, item := range f.appStore.Snapshot().Items {
		if item.ID == itemID {
			return item, true
		}
	}
	return models.Item{}, false
}

func queueLen(t *testing.T, f *clientFixture) int {
	t.Helper()
	count, err := f.local.CountOperations(context.Background())
	require.NoError(t, err)
	return count
}

// ── AddItem ──────────────────────────────────────────────────────────────────

func TestClientItemService_AddItem_Validation(t *testing.T) {
	tests := []struct {
		name    string
		fields  models.ItemFields
		wantErr error
	}{
		{name: "empty name", fields: models.ItemFields{Name: ""}, wantErr: ErrEmptyItemName},
		{name: "whitespace name", fields: models.ItemFields{Name: "   "}, wantErr: ErrEmptyItemName},
		{name: "unknown type", fields: models.ItemFields{Name: "Milk", Type: "spaceship"}, wantErr: ErrInvalidItemType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc, f := newTestItemSvc(t, ctrl, true)

			_, _, err := svc.AddItem(context.Background(), tt.fields)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Zero(t, queueLen(t, f))
		})
	}
}

func TestClientItemService_AddItem_NoListSelected(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newClientFixture(t, ctrl, true)
	svc := NewClientItemService(f.local, f.remote, f.engine, f.connectivity, f.appStore, logger.Nop())

	_, _, err := svc.AddItem(context.Background(), models.ItemFields{Name: "Milk"})
	assert.ErrorIs(t, err, ErrNoListSelected)
}

func TestClientItemService_AddItem_EditPasswordRequired(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newClientFixture(t, ctrl, true)
	list := testList()
	list.HasPassword = true
	list.EditRequiresPassword = true
	f.openList(t, list)
	svc := NewClientItemService(f.local, f.remote, f.engine, f.connectivity, f.appStore, logger.Nop())

	_, _, err := svc.AddItem(context.Background(), models.ItemFields{Name: "Milk"})
	assert.ErrorIs(t, err, ErrPasswordRequired)

	// с edit-токеном проходит
	f.appStore.SetAccessToken(models.AccessToken{ListID: testListID, Action: models.AccessEdit, Token: "edit", ExpiresAt: time.Now().Add(time.Hour)})
	f.remote.EXPECT().AddItem(gomock.Any(), testListID, models.ItemFields{Name: "Milk"}, "edit").
		Return(models.Item{ID: "srv-1", ListID: testListID, Name: "Milk"}, nil)

	_, _, err = svc.AddItem(context.Background(), models.ItemFields{Name: "Milk"})
	assert.NoError(t, err)
}

func TestClientItemService_AddItem_OnlineDirect(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, f := newTestItemSvc(t, ctrl, true)
	ctx := context.Background()

	f.remote.EXPECT().AddItem(gomock.Any(), testListID, models.ItemFields{Name: "Milk", Amount: "2 l"}, "").
		Return(models.Item{ID: "srv-1", ListID: testListID, Name: "Milk", Amount: "2 l"}, nil)

	item, c, err := svc.AddItem(ctx, models.ItemFields{Name: "  Milk ", Amount: "2 l "})
	require.NoError(t, err)
	assert.Equal(t, "srv-1", item.ID)
	assert.Equal(t, models.SyncStatusSynced, item.SyncStatus)
	assert.NoError(t, resolvedWith(t, c))

	stored, err := f.local.GetItem(ctx, "srv-1")
	require.NoError(t, err)
	assert.Equal(t, "Milk", stored.Name)

	_, ok := displayed(f, "srv-1")
	assert.True(t, ok)
	assert.Zero(t, queueLen(t, f))
}

func TestClientItemService_AddItem_NetworkFailureQueues(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, f := newTestItemSvc(t, ctrl, true)

	f.remote.EXPECT().AddItem(gomock.Any(), testListID, gomock.Any(), "").Return(models.Item{}, errNetwork)

	item, c, err := svc.AddItem(context.Background(), models.ItemFields{Name: "Milk"})
	require.NoError(t, err)
	assert.True(t, models.IsTempID(item.ID))
	assert.Equal(t, models.SyncStatusPending, item.SyncStatus)
	assert.Nil(t, c.Err())
	assert.Equal(t, 1, queueLen(t, f))

	shown, ok := displayed(f, item.ID)
	require.True(t, ok)
	assert.Equal(t, models.SyncStatusPending, shown.SyncStatus)
}

func TestClientItemService_AddItem_Rejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, f := newTestItemSvc(t, ctrl, true)

	f.remote.EXPECT().AddItem(gomock.Any(), testListID, gomock.Any(), "").
		Return(models.Item{}, fmt.Errorf("%w: %s", adapter.ErrBadRequest, app.MsgItemNameRequired))

	_, _, err := svc.AddItem(context.Background(), models.ItemFields{Name: "Milk"})
	assert.ErrorIs(t, err, ErrEmptyItemName)
	assert.Zero(t, queueLen(t, f))
	assert.Empty(t, f.appStore.Snapshot().Items)
}

func TestClientItemService_AddItem_Offline(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, f := newTestItemSvc(t, ctrl, false)

	item, c, err := svc.AddItem(context.Background(), models.ItemFields{Name: "Bread", Type: models.ItemTypeBakery})
	require.NoError(t, err)
	assert.True(t, models.IsTempID(item.ID))
	assert.Equal(t, testListID, item.ListID)
	assert.False(t, item.CreatedAt.IsZero())
	assert.Nil(t, c.Err())

	ops, err := f.local.GetOperations(context.Background())
	require.NoError(t, err)
	require.Len(t, ops, 1)
	payload, ok := ops[0].Payload.(models.AddItemPayload)
	require.True(t, ok)
	assert.Equal(t, item.ID, payload.Item.ID)
	assert.Equal(t, 1, f.appStore.SyncState().PendingCount)
}

// ── UpdateItem ───────────────────────────────────────────────────────────────

func TestClientItemService_UpdateItem_Validation(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _ := newTestItemSvc(t, ctrl, true)
	ctx := context.Background()

	_, _, err := svc.UpdateItem(ctx, "srv-1", models.ItemUpdate{})
	assert.ErrorIs(t, err, ErrNoUpdatesProvided)

	_, _, err = svc.UpdateItem(ctx, "srv-1", models.ItemUpdate{Name: ptr("  ")})
	assert.ErrorIs(t, err, ErrEmptyItemName)

	_, _, err = svc.UpdateItem(ctx, "srv-1", models.ItemUpdate{Type: ptr(models.ItemType("toys"))})
	assert.ErrorIs(t, err, ErrInvalidItemType)
}

func TestClientItemService_UpdateItem_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _ := newTestItemSvc(t, ctrl, true)

	_, _, err := svc.UpdateItem(context.Background(), "missing", models.ItemUpdate{Note: ptr("x")})
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestClientItemService_UpdateItem_OnlineDirect(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, f := newTestItemSvc(t, ctrl, true)
	seedItem(t, f, models.Item{ID: "srv-1", ListID: testListID, Name: "Milk", SyncStatus: models.SyncStatusSynced})

	f.remote.EXPECT().UpdateItem(gomock.Any(), "srv-1", models.ItemUpdate{Amount: ptr("3")}, "").
		Return(models.Item{ID: "srv-1", ListID: testListID, Name: "Milk", Amount: "3"}, nil)

	item, c, err := svc.UpdateItem(context.Background(), "srv-1", models.ItemUpdate{Amount: ptr(" 3 ")})
	require.NoError(t, err)
	assert.Equal(t, "3", item.Amount)
	assert.NoError(t, resolvedWith(t, c))

	shown, _ := displayed(f, "srv-1")
	assert.Equal(t, "3", shown.Amount)
	assert.Equal(t, models.SyncStatusSynced, shown.SyncStatus)
}

func TestClientItemService_UpdateItem_RejectedReverts(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, f := newTestItemSvc(t, ctrl, true)
	seedItem(t, f, models.Item{ID: "srv-1", ListID: testListID, Name: "Milk", SyncStatus: models.SyncStatusSynced})

	f.remote.EXPECT().UpdateItem(gomock.Any(), "srv-1", gomock.Any(), "").
		Return(models.Item{}, fmt.Errorf("%w: Item not found", adapter.ErrNotFound))

	_, _, err := svc.UpdateItem(context.Background(), "srv-1", models.ItemUpdate{Name: ptr("Cheese")})
	assert.ErrorIs(t, err, store.ErrNotFound)

	shown, _ := displayed(f, "srv-1")
	assert.Equal(t, "Milk", shown.Name)
	assert.Equal(t, models.SyncStatusSynced, shown.SyncStatus)
	assert.Zero(t, queueLen(t, f))
}

func TestClientItemService_UpdateItem_PendingItemIsQueued(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, f := newTestItemSvc(t, ctrl, true)
	seedItem(t, f, models.Item{ID: "srv-1", ListID: testListID, Name: "Milk", SyncStatus: models.SyncStatusPending})

	// прямого вызова нет: порядок очереди сохраняется
	item, c, err := svc.UpdateItem(context.Background(), "srv-1", models.ItemUpdate{Name: ptr("Cheese")})
	require.NoError(t, err)
	assert.Equal(t, "Cheese", item.Name)
	assert.Nil(t, c.Err())
	assert.Equal(t, 1, queueLen(t, f))
}

func TestClientItemService_UpdateItem_Offline(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, f := newTestItemSvc(t, ctrl, false)
	ctx := context.Background()
	seedItem(t, f, models.Item{ID: "srv-1", ListID: testListID, Name: "Milk", SyncStatus: models.SyncStatusSynced})

	item, _, err := svc.UpdateItem(ctx, "srv-1", models.ItemUpdate{Note: ptr("lactose free")})
	require.NoError(t, err)
	assert.Equal(t, models.SyncStatusPending, item.SyncStatus)

	stored, err := f.local.GetItem(ctx, "srv-1")
	require.NoError(t, err)
	assert.Equal(t, "lactose free", stored.Note)
	assert.Equal(t, models.SyncStatusPending, stored.SyncStatus)

	shown, _ := displayed(f, "srv-1")
	assert.Equal(t, "lactose free", shown.Note)
}

// ── ToggleItem ───────────────────────────────────────────────────────────────

func TestClientItemService_ToggleItem_Offline(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, f := newTestItemSvc(t, ctrl, false)
	seedItem(t, f, models.Item{ID: "srv-1", ListID: testListID, Name: "Milk", SyncStatus: models.SyncStatusSynced})

	item, _, err := svc.ToggleItem(context.Background(), "srv-1")
	require.NoError(t, err)
	assert.True(t, item.IsBought)

	ops, err := f.local.GetOperations(context.Background())
	require.NoError(t, err)
	require.Len(t, ops, 1)
	assert.Equal(t, models.ToggleItemPayload{ItemID: "srv-1", IsBought: true}, ops[0].Payload)
}

func TestClientItemService_ToggleItem_Online(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, f := newTestItemSvc(t, ctrl, true)
	seedItem(t, f, models.Item{ID: "srv-1", ListID: testListID, Name: "Milk", IsBought: true, SyncStatus: models.SyncStatusSynced})

	f.remote.EXPECT().UpdateItem(gomock.Any(), "srv-1", models.ItemUpdate{IsBought: ptr(false)}, "").
		Return(models.Item{ID: "srv-1", ListID: testListID, Name: "Milk"}, nil)

	item, c, err := svc.ToggleItem(context.Background(), "srv-1")
	require.NoError(t, err)
	assert.False(t, item.IsBought)
	assert.NoError(t, resolvedWith(t, c))
}

// Онлайн-переключение упало по сети: операция в очереди, элемент pending;
// следующий проход подтверждает его.
func TestClientItemService_ToggleItem_NetworkFailureSyncsLater(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, f := newTestItemSvc(t, ctrl, true)
	ctx := context.Background()
	seedItem(t, f, models.Item{ID: "I1", ListID: testListID, Name: "Milk", SyncStatus: models.SyncStatusSynced})

	toggle := models.ItemUpdate{IsBought: ptr(true)}
	gomock.InOrder(
		f.remote.EXPECT().UpdateItem(gomock.Any(), "I1", toggle, "").Return(models.Item{}, errNetwork),
		f.remote.EXPECT().UpdateItem(gomock.Any(), "I1", toggle, "").
			Return(models.Item{ID: "I1", ListID: testListID, Name: "Milk", IsBought: true}, nil),
	)

	item, c, err := svc.ToggleItem(ctx, "I1")
	require.NoError(t, err)
	assert.True(t, item.IsBought)
	assert.Equal(t, models.SyncStatusPending, item.SyncStatus)

	stored, err := f.local.GetItem(ctx, "I1")
	require.NoError(t, err)
	assert.True(t, stored.IsBought)
	assert.Equal(t, models.SyncStatusPending, stored.SyncStatus)

	ops, err := f.local.GetOperations(ctx)
	require.NoError(t, err)
	require.Len(t, ops, 1)
	assert.Equal(t, models.OperationToggleItem, ops[0].Kind())
	assert.Equal(t, 1, f.appStore.SyncState().PendingCount)

	require.True(t, f.engine.Drain(ctx))

	assert.NoError(t, resolvedWith(t, c))
	stored, err = f.local.GetItem(ctx, "I1")
	require.NoError(t, err)
	assert.True(t, stored.IsBought)
	assert.Equal(t, models.SyncStatusSynced, stored.SyncStatus)
	assert.Equal(t, 0, queueLen(t, f))

	shown, ok := displayed(f, "I1")
	require.True(t, ok)
	assert.Equal(t, models.SyncStatusSynced, shown.SyncStatus)
}

// ── DeleteItem ───────────────────────────────────────────────────────────────

func TestClientItemService_DeleteItem_TempDiscardsQueue(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, f := newTestItemSvc(t, ctrl, false)
	ctx := context.Background()

	item, cAdd, err := svc.AddItem(ctx, models.ItemFields{Name: "Milk"})
	require.NoError(t, err)

	c, err := svc.DeleteItem(ctx, item.ID)
	require.NoError(t, err)
	assert.NoError(t, resolvedWith(t, c))
	assert.ErrorIs(t, resolvedWith(t, cAdd), ErrOperationDiscarded)

	assert.Zero(t, queueLen(t, f))
	_, ok := displayed(f, item.ID)
	assert.False(t, ok)
}

func TestClientItemService_DeleteItem_Online(t *testing.T) {
	tests := []struct {
		name      string
		remoteErr error
	}{
		{name: "deleted", remoteErr: nil},
		{name: "already gone", remoteErr: fmt.Errorf("%w: Item not found", adapter.ErrNotFound)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc, f := newTestItemSvc(t, ctrl, true)
			seedItem(t, f, models.Item{ID: "srv-1", ListID: testListID, Name: "Milk", SyncStatus: models.SyncStatusSynced})

			f.remote.EXPECT().DeleteItem(gomock.Any(), "srv-1", "").Return(tt.remoteErr)

			c, err := svc.DeleteItem(context.Background(), "srv-1")
			require.NoError(t, err)
			assert.NoError(t, resolvedWith(t, c))

			_, err = f.local.GetItem(context.Background(), "srv-1")
			assert.ErrorIs(t, err, store.ErrNotFound)
			_, ok := displayed(f, "srv-1")
			assert.False(t, ok)
		})
	}
}

func TestClientItemService_DeleteItem_ForbiddenRestores(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, f := newTestItemSvc(t, ctrl, true)
	seedItem(t, f, models.Item{ID: "srv-1", ListID: testListID, Name: "Milk", SyncStatus: models.SyncStatusSynced})

	f.remote.EXPECT().DeleteItem(gomock.Any(), "srv-1", "").
		Return(fmt.Errorf("%w: Password required", adapter.ErrForbidden))

	_, err := svc.DeleteItem(context.Background(), "srv-1")
	assert.ErrorIs(t, err, ErrPasswordRequired)

	_, ok := displayed(f, "srv-1")
	assert.True(t, ok)
}

func TestClientItemService_DeleteItem_OfflineQueues(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, f := newTestItemSvc(t, ctrl, false)
	ctx := context.Background()
	seedItem(t, f, models.Item{ID: "srv-1", ListID: testListID, Name: "Milk", SyncStatus: models.SyncStatusSynced})

	c, err := svc.DeleteItem(ctx, "srv-1")
	require.NoError(t, err)
	assert.Nil(t, c.Err())

	_, err = f.local.GetItem(ctx, "srv-1")
	assert.ErrorIs(t, err, store.ErrNotFound)
	assert.Equal(t, 1, queueLen(t, f))
}

func TestClientItemService_DeleteItem_Missing(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _ := newTestItemSvc(t, ctrl, true)

	c, err := svc.DeleteItem(context.Background(), "missing")
	require.NoError(t, err)
	assert.NoError(t, resolvedWith(t, c))
}
