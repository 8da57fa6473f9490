package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/MKhiriev/shopman/internal/adapter"
	"github.com/MKhiriev/shopman/internal/app"
	"github.com/MKhiriev/shopman/internal/logger"
	"github.com/MKhiriev/shopman/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestArchiveSvc(t *testing.T, ctrl *gomock.Controller, online bool) (ClientArchiveService, *clientFixture) {
	t.Helper()
	f := newClientFixture(t, ctrl, online)
	f.openList(t, testList())
	return NewClientArchiveService(f.remote, f.engine, f.connectivity, f.appStore, logger.Nop()), f
}

func TestClientArchiveService_RequiresListAndConnection(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newClientFixture(t, ctrl, true)
	svc := NewClientArchiveService(f.remote, f.engine, f.connectivity, f.appStore, logger.Nop())
	ctx := context.Background()

	_, err := svc.ArchiveBought(ctx)
	assert.ErrorIs(t, err, ErrNoListSelected)

	f.openList(t, testList())
	f.connectivity.set(false)

	_, err = svc.DeleteAll(ctx)
	assert.ErrorIs(t, err, ErrOffline)
	_, err = svc.Archives(ctx)
	assert.ErrorIs(t, err, ErrOffline)
}

func TestClientArchiveService_ArchiveBought(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, f := newTestArchiveSvc(t, ctrl, true)
	ctx := context.Background()

	bought := []models.Item{{ID: "a", ListID: testListID, Name: "Milk", IsBought: true}}
	result := models.BulkResult{
		Success:  true,
		Archive:  &models.Archive{ID: "arc-1", ListID: testListID, Items: bought},
		UndoData: models.UndoData{Type: models.UndoArchive, Items: bought, Archive: &models.Archive{ID: "arc-1"}},
	}
	remaining := []models.Item{{ID: "b", ListID: testListID, Name: "Bread"}}

	gomock.InOrder(
		f.remote.EXPECT().ArchiveBought(gomock.Any(), testListID, "").Return(result, nil),
		f.remote.EXPECT().GetItems(gomock.Any(), testListID, "").Return(remaining, nil),
	)

	got, err := svc.ArchiveBought(ctx)
	require.NoError(t, err)
	assert.Equal(t, "arc-1", got.Archive.ID)

	undo, ok := svc.LastUndo()
	require.True(t, ok)
	assert.Equal(t, models.UndoArchive, undo.Type)

	items := f.appStore.Snapshot().Items
	require.Len(t, items, 1)
	assert.Equal(t, "b", items[0].ID)
}

func TestClientArchiveService_ArchiveBought_NothingBought(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, f := newTestArchiveSvc(t, ctrl, true)

	f.remote.EXPECT().ArchiveBought(gomock.Any(), testListID, "").
		Return(models.BulkResult{}, fmt.Errorf("%w: %s", adapter.ErrBadRequest, app.MsgNoBoughtItems))

	_, err := svc.ArchiveBought(context.Background())
	assert.ErrorIs(t, err, ErrNothingToArchive)

	_, ok := svc.LastUndo()
	assert.False(t, ok)
}

func TestClientArchiveService_DeleteScopes(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, f := newTestArchiveSvc(t, ctrl, true)
	ctx := context.Background()

	removed := []models.Item{{ID: "a", ListID: testListID, Name: "Milk", IsBought: true}}

	f.remote.EXPECT().DeleteItems(gomock.Any(), testListID, models.BulkScopeBought, "").
		Return(models.BulkResult{Success: true, DeletedCount: 1, UndoData: models.UndoData{Type: models.UndoDeleteBought, Items: removed}}, nil)
	f.remote.EXPECT().DeleteItems(gomock.Any(), testListID, models.BulkScopeAll, "").
		Return(models.BulkResult{Success: true, DeletedCount: 0, UndoData: models.UndoData{Type: models.UndoDeleteAll, Items: []models.Item{}}}, nil)
	f.remote.EXPECT().GetItems(gomock.Any(), testListID, "").Return([]models.Item{}, nil).Times(2)

	result, err := svc.DeleteBought(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, result.DeletedCount)

	_, err = svc.DeleteAll(ctx)
	require.NoError(t, err)

	undo, ok := svc.LastUndo()
	require.True(t, ok)
	assert.Equal(t, models.UndoDeleteAll, undo.Type)
}

func TestClientArchiveService_Archives(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, f := newTestArchiveSvc(t, ctrl, true)

	archives := []models.Archive{{ID: "arc-2"}, {ID: "arc-1"}}
	f.remote.EXPECT().GetArchives(gomock.Any(), testListID, "").Return(archives, nil)

	got, err := svc.Archives(context.Background())
	require.NoError(t, err)
	assert.Equal(t, archives, got)
}

func TestClientArchiveService_DeleteArchive(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, f := newTestArchiveSvc(t, ctrl, true)

	f.remote.EXPECT().DeleteArchive(gomock.Any(), testListID, "arc-1", "").
		Return(models.BulkResult{Success: true, UndoData: models.UndoData{Type: models.UndoDeleteArchive, Archive: &models.Archive{ID: "arc-1"}}}, nil)
	f.remote.EXPECT().GetItems(gomock.Any(), testListID, "").Return([]models.Item{}, nil)

	_, err := svc.DeleteArchive(context.Background(), "arc-1")
	require.NoError(t, err)

	undo, ok := svc.LastUndo()
	require.True(t, ok)
	assert.Equal(t, "arc-1", undo.Archive.ID)
}

func TestClientArchiveService_UndoLast(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, f := newTestArchiveSvc(t, ctrl, true)
	ctx := context.Background()

	_, err := svc.UndoLast(ctx)
	assert.ErrorIs(t, err, ErrInvalidUndoData)

	removed := []models.Item{{ID: "a", ListID: testListID, Name: "Milk"}}
	undo := models.UndoData{Type: models.UndoDeleteAll, Items: removed}

	f.remote.EXPECT().DeleteItems(gomock.Any(), testListID, models.BulkScopeAll, "").
		Return(models.BulkResult{Success: true, DeletedCount: 1, UndoData: undo}, nil)
	f.remote.EXPECT().Undo(gomock.Any(), testListID, undo, "").
		Return(models.UndoResult{Success: true, RestoredCount: 1}, nil)
	gomock.InOrder(
		f.remote.EXPECT().GetItems(gomock.Any(), testListID, "").Return([]models.Item{}, nil),
		f.remote.EXPECT().GetItems(gomock.Any(), testListID, "").Return(removed, nil),
	)

	_, err = svc.DeleteAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, f.appStore.Snapshot().Items)

	result, err := svc.UndoLast(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, result.RestoredCount)
	assert.Len(t, f.appStore.Snapshot().Items, 1)

	// undo одноразовый
	_, ok := svc.LastUndo()
	assert.False(t, ok)
}

func TestClientArchiveService_Undo_InvalidData(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _ := newTestArchiveSvc(t, ctrl, true)

	_, err := svc.Undo(context.Background(), models.UndoData{Type: "rewind"})
	assert.ErrorIs(t, err, ErrInvalidUndoData)

	_, err = svc.Undo(context.Background(), models.UndoData{Type: models.UndoDeleteArchive})
	assert.ErrorIs(t, err, ErrInvalidUndoData)
}
