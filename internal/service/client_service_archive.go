package service

import (
	"context"
	"sync"

	"github.com/MKhiriev/shopman/internal/adapter"
	"github.com/MKhiriev/shopman/internal/logger"
	"github.com/MKhiriev/shopman/internal/state"
	"github.com/MKhiriev/shopman/models"
)

type clientArchiveService struct {
	remote       adapter.RemoteAuthority
	engine       SyncEngine
	connectivity Connectivity
	appStore     *state.AppStore

	mu       sync.Mutex
	lastUndo *models.UndoData

	logger *logger.Logger
}

// NewClientArchiveService constructs a [ClientArchiveService]. Every call
// needs the Remote Authority and works on the open list.
func NewClientArchiveService(remote adapter.RemoteAuthority, engine SyncEngine, connectivity Connectivity, appStore *state.AppStore, logger *logger.Logger) ClientArchiveService {
	return &clientArchiveService{
		remote:       remote,
		engine:       engine,
		connectivity: connectivity,
		appStore:     appStore,
		logger:       logger,
	}
}

func (s *clientArchiveService) ArchiveBought(ctx context.Context) (models.BulkResult, error) {
	return s.bulk(ctx, "clientArchiveService.ArchiveBought", func(listID, token string) (models.BulkResult, error) {
		return s.remote.ArchiveBought(ctx, listID, token)
	})
}

func (s *clientArchiveService) DeleteBought(ctx context.Context) (models.BulkResult, error) {
	return s.bulk(ctx, "clientArchiveService.DeleteBought", func(listID, token string) (models.BulkResult, error) {
		return s.remote.DeleteItems(ctx, listID, models.BulkScopeBought, token)
	})
}

func (s *clientArchiveService) DeleteAll(ctx context.Context) (models.BulkResult, error) {
	return s.bulk(ctx, "clientArchiveService.DeleteAll", func(listID, token string) (models.BulkResult, error) {
		return s.remote.DeleteItems(ctx, listID, models.BulkScopeAll, token)
	})
}

func (s *clientArchiveService) DeleteArchive(ctx context.Context, archiveID string) (models.BulkResult, error) {
	return s.bulk(ctx, "clientArchiveService.DeleteArchive", func(listID, token string) (models.BulkResult, error) {
		return s.remote.DeleteArchive(ctx, listID, archiveID, token)
	})
}

// Archives implements [ClientArchiveService]. Archives are newest first.
func (s *clientArchiveService) Archives(ctx context.Context) ([]models.Archive, error) {
	listID, token, err := s.target()
	if err != nil {
		return nil, err
	}

	archives, err := s.remote.GetArchives(ctx, listID, token)
	if err != nil {
		return nil, mapAdapterError(err)
	}
	return archives, nil
}

// Undo implements [ClientArchiveService].
func (s *clientArchiveService) Undo(ctx context.Context, undo models.UndoData) (models.UndoResult, error) {
	if !undo.Valid() {
		return models.UndoResult{}, ErrInvalidUndoData
	}

	listID, token, err := s.target()
	if err != nil {
		return models.UndoResult{}, err
	}

	result, err := s.remote.Undo(ctx, listID, undo, token)
	if err != nil {
		return models.UndoResult{}, mapAdapterError(err)
	}

	s.mu.Lock()
	s.lastUndo = nil
	s.mu.Unlock()

	s.reload(ctx, listID, token)
	return result, nil
}

// UndoLast implements [ClientArchiveService].
func (s *clientArchiveService) UndoLast(ctx context.Context) (models.UndoResult, error) {
	undo, ok := s.LastUndo()
	if !ok {
		return models.UndoResult{}, ErrInvalidUndoData
	}
	return s.Undo(ctx, undo)
}

// LastUndo implements [ClientArchiveService].
func (s *clientArchiveService) LastUndo() (models.UndoData, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.lastUndo == nil {
		return models.UndoData{}, false
	}
	return *s.lastUndo, true
}

func (s *clientArchiveService) bulk(ctx context.Context, fn string, call func(listID, token string) (models.BulkResult, error)) (models.BulkResult, error) {
	listID, token, err := s.target()
	if err != nil {
		return models.BulkResult{}, err
	}

	result, err := call(listID, token)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", fn).Str("list_id", listID).Msg("bulk action failed")
		return models.BulkResult{}, mapAdapterError(err)
	}

	if result.UndoData.Valid() {
		undo := result.UndoData
		s.mu.Lock()
		s.lastUndo = &undo
		s.mu.Unlock()
	}

	s.reload(ctx, listID, token)
	return result, nil
}

// target returns the open list and its token, failing when offline.
func (s *clientArchiveService) target() (string, string, error) {
	current := s.appStore.Snapshot().CurrentList
	if current == nil {
		return "", "", ErrNoListSelected
	}
	if !s.connectivity.IsOnline() {
		return "", "", ErrOffline
	}

	token, _ := s.appStore.AccessToken(current.ID)
	return current.ID, token.Token, nil
}

// reload re-reconciles the open list after a bulk change on the server.
func (s *clientArchiveService) reload(ctx context.Context, listID, token string) {
	items, err := s.engine.ReconcileItems(ctx, listID, token)
	if err != nil {
		s.logger.Err(err).Str("func", "clientArchiveService.reload").Str("list_id", listID).Msg("failed to reload items")
		return
	}

	if s.appStore.IsCurrent(listID) {
		models.SortItemsForDisplay(items)
		s.appStore.SetItems(items)
	}
}
