package service

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/shopman/internal/logger"
	"github.com/MKhiriev/shopman/internal/mock"
	"github.com/MKhiriev/shopman/internal/store"
	"github.com/MKhiriev/shopman/internal/utils"
	"github.com/MKhiriev/shopman/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type archiveServiceFixture struct {
	svc      *archiveService
	lists    *mock.MockListStorage
	items    *mock.MockItemStorage
	archives *mock.MockArchiveStorage
}

func newTestArchiveService(ctrl *gomock.Controller) archiveServiceFixture {
	f := archiveServiceFixture{
		lists:    mock.NewMockListStorage(ctrl),
		items:    mock.NewMockItemStorage(ctrl),
		archives: mock.NewMockArchiveStorage(ctrl),
	}
	storages := &store.Storages{
		ListStorage:    f.lists,
		ItemStorage:    f.items,
		ArchiveStorage: f.archives,
	}
	f.svc = NewArchiveService(storages, utils.NewSequenceGenerator("arc"), logger.Nop()).(*archiveService)
	f.svc.now = func() time.Time { return fixedNow }
	return f
}

func (f archiveServiceFixture) openList() {
	f.lists.EXPECT().FindListByID(gomock.Any(), "l1").Return(models.List{ID: "l1"}, nil).AnyTimes()
}

// ── ArchiveBought ──

func TestArchiveService_ArchiveBought(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newTestArchiveService(ctrl)
	f.openList()

	bought := []models.Item{{ID: "a", ListID: "l1", Name: "Milk", IsBought: true}}
	f.archives.EXPECT().
		ArchiveBought(gomock.Any(), models.Archive{ID: "arc-1", ListID: "l1", ArchivedAt: fixedNow, CreatedAt: fixedNow}).
		DoAndReturn(func(_ context.Context, a models.Archive) (models.Archive, error) {
			a.Items = bought
			return a, nil
		})

	got, err := f.svc.ArchiveBought(context.Background(), "l1")
	require.NoError(t, err)
	assert.True(t, got.Success)
	require.NotNil(t, got.Archive)
	assert.Equal(t, "arc-1", got.Archive.ID)
	assert.Equal(t, models.UndoArchive, got.UndoData.Type)
	assert.Equal(t, bought, got.UndoData.Items)
}

func TestArchiveService_ArchiveBought_NothingBought(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newTestArchiveService(ctrl)
	f.openList()

	f.archives.EXPECT().ArchiveBought(gomock.Any(), gomock.Any()).Return(models.Archive{}, store.ErrNotFound)

	_, err := f.svc.ArchiveBought(context.Background(), "l1")
	assert.ErrorIs(t, err, ErrNothingToArchive)
}

func TestArchiveService_ArchiveBought_Forbidden(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newTestArchiveService(ctrl)

	f.lists.EXPECT().FindListByID(gomock.Any(), "l1").Return(models.List{ID: "l1", HasPassword: true, EditRequiresPassword: true}, nil)

	_, err := f.svc.ArchiveBought(context.Background(), "l1")
	assert.ErrorIs(t, err, ErrPasswordRequired)
}

// ── DeleteItems ──

func TestArchiveService_DeleteItems(t *testing.T) {
	tests := []struct {
		name       string
		scope      models.BulkScope
		boughtOnly bool
		removed    []models.Item
		wantType   models.UndoType
	}{
		{name: "bought", scope: models.BulkScopeBought, boughtOnly: true, removed: []models.Item{{ID: "a", ListID: "l1"}}, wantType: models.UndoDeleteBought},
		{name: "all", scope: models.BulkScopeAll, removed: []models.Item{{ID: "a", ListID: "l1"}, {ID: "b", ListID: "l1"}}, wantType: models.UndoDeleteAll},
		{name: "nothing to delete", scope: models.BulkScopeAll, removed: nil, wantType: models.UndoDeleteAll},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			f := newTestArchiveService(ctrl)
			f.openList()

			f.items.EXPECT().DeleteItems(gomock.Any(), "l1", tt.boughtOnly).Return(tt.removed, nil)

			got, err := f.svc.DeleteItems(context.Background(), "l1", tt.scope)
			require.NoError(t, err)
			assert.Equal(t, len(tt.removed), got.DeletedCount)
			assert.Equal(t, tt.wantType, got.UndoData.Type)
			assert.NotNil(t, got.UndoData.Items)
			assert.True(t, got.UndoData.Valid())
		})
	}
}

// ── GetArchives / DeleteArchive ──

func TestArchiveService_GetArchives_Empty(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newTestArchiveService(ctrl)
	f.openList()

	f.archives.EXPECT().GetArchives(gomock.Any(), "l1").Return(nil, nil)

	got, err := f.svc.GetArchives(context.Background(), "l1")
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestArchiveService_DeleteArchive(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newTestArchiveService(ctrl)
	f.openList()

	archive := models.Archive{ID: "arc-1", ListID: "l1", Items: []models.Item{{ID: "a", ListID: "l1"}}}
	gomock.InOrder(
		f.archives.EXPECT().GetArchive(gomock.Any(), "l1", "arc-1").Return(archive, nil),
		f.archives.EXPECT().DeleteArchive(gomock.Any(), "l1", "arc-1").Return(nil),
	)

	got, err := f.svc.DeleteArchive(context.Background(), "l1", "arc-1")
	require.NoError(t, err)
	assert.Equal(t, models.UndoDeleteArchive, got.UndoData.Type)
	assert.Equal(t, &archive, got.UndoData.Archive)
}

func TestArchiveService_DeleteArchive_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newTestArchiveService(ctrl)
	f.openList()

	f.archives.EXPECT().GetArchive(gomock.Any(), "l1", "nope").Return(models.Archive{}, store.ErrNotFound)

	_, err := f.svc.DeleteArchive(context.Background(), "l1", "nope")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

// ── Undo ──

func TestArchiveService_Undo_Archive(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newTestArchiveService(ctrl)
	f.openList()

	items := []models.Item{{ID: "a", ListID: "l1"}, {ID: "b", ListID: "l1"}}
	gomock.InOrder(
		f.items.EXPECT().RestoreItems(gomock.Any(), items).Return(nil),
		f.archives.EXPECT().DeleteLatestArchive(gomock.Any(), "l1").Return(nil),
	)

	got, err := f.svc.Undo(context.Background(), "l1", models.UndoData{
		Type:    models.UndoArchive,
		Items:   items,
		Archive: &models.Archive{ID: "arc-1", ListID: "l1"},
	})
	require.NoError(t, err)
	assert.Equal(t, models.UndoResult{Success: true, RestoredCount: 2}, got)
}

func TestArchiveService_Undo_DeleteItems(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newTestArchiveService(ctrl)
	f.openList()

	items := []models.Item{{ID: "a", ListID: "l1"}}
	f.items.EXPECT().RestoreItems(gomock.Any(), items).Return(nil)

	got, err := f.svc.Undo(context.Background(), "l1", models.UndoData{Type: models.UndoDeleteBought, Items: items})
	require.NoError(t, err)
	assert.Equal(t, 1, got.RestoredCount)
}

func TestArchiveService_Undo_DeleteArchive(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newTestArchiveService(ctrl)
	f.openList()

	archive := models.Archive{ID: "arc-1", ListID: "l1"}
	f.archives.EXPECT().RestoreArchive(gomock.Any(), archive).Return(nil)

	got, err := f.svc.Undo(context.Background(), "l1", models.UndoData{Type: models.UndoDeleteArchive, Archive: &archive})
	require.NoError(t, err)
	assert.Equal(t, 1, got.RestoredCount)
}

func TestArchiveService_Undo_Rejects(t *testing.T) {
	tests := []struct {
		name string
		undo models.UndoData
	}{
		{name: "unknown type", undo: models.UndoData{Type: "rewind", Items: []models.Item{}}},
		{name: "missing items", undo: models.UndoData{Type: models.UndoDeleteAll}},
		{name: "missing archive", undo: models.UndoData{Type: models.UndoDeleteArchive}},
		{name: "item of another list", undo: models.UndoData{Type: models.UndoDeleteAll, Items: []models.Item{{ID: "a", ListID: "l2"}}}},
		{name: "archive of another list", undo: models.UndoData{Type: models.UndoDeleteArchive, Archive: &models.Archive{ID: "arc", ListID: "l2"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			f := newTestArchiveService(ctrl)

			_, err := f.svc.Undo(context.Background(), "l1", tt.undo)
			assert.ErrorIs(t, err, ErrInvalidUndoData)
		})
	}
}
