package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/shopman/internal/logger"
	"github.com/MKhiriev/shopman/internal/store"
	"github.com/MKhiriev/shopman/internal/utils"
	"github.com/MKhiriev/shopman/models"
)

// archiveService implements bulk actions of a list: archiving bought items,
// bulk deletion and their undo.
type archiveService struct {
	itemRepository    store.ItemStorage
	archiveRepository store.ArchiveStorage
	access            listAccess
	ids               utils.IDGenerator
	now               func() time.Time
	logger            *logger.Logger
}

func NewArchiveService(storages *store.Storages, ids utils.IDGenerator, logger *logger.Logger) ArchiveService {
	return &archiveService{
		itemRepository:    storages.ItemStorage,
		archiveRepository: storages.ArchiveStorage,
		access:            listAccess{lists: storages.ListStorage},
		ids:               ids,
		now:               time.Now,
		logger:            logger,
	}
}

// ArchiveBought moves every bought item into a new archive.
//
// Returns ErrNothingToArchive when the list has no bought items.
func (s *archiveService) ArchiveBought(ctx context.Context, listID string) (models.BulkResult, error) {
	log := logger.FromContext(ctx)

	if _, err := s.access.authorize(ctx, listID, models.AccessEdit); err != nil {
		return models.BulkResult{}, err
	}

	now := s.now().UTC()
	archive, err := s.archiveRepository.ArchiveBought(ctx, models.Archive{
		ID:         s.ids.Generate(),
		ListID:     listID,
		ArchivedAt: now,
		CreatedAt:  now,
	})
	if errors.Is(err, store.ErrNotFound) {
		return models.BulkResult{}, ErrNothingToArchive
	}
	if err != nil {
		return models.BulkResult{}, fmt.Errorf("archive bought items failed: %w", err)
	}

	log.Info().
		Str("func", "archiveService.ArchiveBought").
		Str("list_id", listID).
		Int("items_count", len(archive.Items)).
		Msg("bought items archived")

	return models.BulkResult{
		Success: true,
		Archive: &archive,
		UndoData: models.UndoData{
			Type:    models.UndoArchive,
			Items:   archive.Items,
			Archive: &archive,
		},
	}, nil
}

// DeleteItems removes bought or all items of the list.
func (s *archiveService) DeleteItems(ctx context.Context, listID string, scope models.BulkScope) (models.BulkResult, error) {
	if _, err := s.access.authorize(ctx, listID, models.AccessEdit); err != nil {
		return models.BulkResult{}, err
	}

	undoType := models.UndoDeleteAll
	if scope == models.BulkScopeBought {
		undoType = models.UndoDeleteBought
	}

	removed, err := s.itemRepository.DeleteItems(ctx, listID, scope == models.BulkScopeBought)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "archiveService.DeleteItems").
			Str("list_id", listID).
			Str("scope", string(scope)).
			Msg("bulk deletion failed")
		return models.BulkResult{}, fmt.Errorf("bulk deletion failed: %w", err)
	}
	if removed == nil {
		removed = []models.Item{}
	}

	return models.BulkResult{
		Success:      true,
		DeletedCount: len(removed),
		UndoData:     models.UndoData{Type: undoType, Items: removed},
	}, nil
}

// GetArchives returns the archives of the list, newest first.
func (s *archiveService) GetArchives(ctx context.Context, listID string) ([]models.Archive, error) {
	if _, err := s.access.authorize(ctx, listID, models.AccessView); err != nil {
		return nil, err
	}

	archives, err := s.archiveRepository.GetArchives(ctx, listID)
	if err != nil {
		return nil, fmt.Errorf("get archives failed: %w", err)
	}
	if archives == nil {
		archives = []models.Archive{}
	}
	return archives, nil
}

// DeleteArchive removes one archive and returns its snapshot as undo data.
func (s *archiveService) DeleteArchive(ctx context.Context, listID, archiveID string) (models.BulkResult, error) {
	if _, err := s.access.authorize(ctx, listID, models.AccessEdit); err != nil {
		return models.BulkResult{}, err
	}

	archive, err := s.archiveRepository.GetArchive(ctx, listID, archiveID)
	if err != nil {
		return models.BulkResult{}, fmt.Errorf("archive %s: %w", archiveID, err)
	}

	if err = s.archiveRepository.DeleteArchive(ctx, listID, archiveID); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "archiveService.DeleteArchive").
			Str("archive_id", archiveID).
			Msg("archive deletion failed")
		return models.BulkResult{}, fmt.Errorf("archive deletion failed: %w", err)
	}

	return models.BulkResult{
		Success:  true,
		UndoData: models.UndoData{Type: models.UndoDeleteArchive, Archive: &archive},
	}, nil
}

// Undo reverts a bulk action from the undo data it returned. Undo data
// referring to another list is rejected.
func (s *archiveService) Undo(ctx context.Context, listID string, undo models.UndoData) (models.UndoResult, error) {
	log := logger.FromContext(ctx)

	if !undo.Valid() || !belongsTo(undo, listID) {
		return models.UndoResult{}, ErrInvalidUndoData
	}
	if _, err := s.access.authorize(ctx, listID, models.AccessEdit); err != nil {
		return models.UndoResult{}, err
	}

	var restored int
	switch undo.Type {
	case models.UndoArchive:
		if err := s.itemRepository.RestoreItems(ctx, undo.Items); err != nil {
			return models.UndoResult{}, fmt.Errorf("restore items failed: %w", err)
		}
		if err := s.archiveRepository.DeleteLatestArchive(ctx, listID); err != nil && !errors.Is(err, store.ErrNotFound) {
			return models.UndoResult{}, fmt.Errorf("delete latest archive failed: %w", err)
		}
		restored = len(undo.Items)
	case models.UndoDeleteBought, models.UndoDeleteAll:
		if err := s.itemRepository.RestoreItems(ctx, undo.Items); err != nil {
			return models.UndoResult{}, fmt.Errorf("restore items failed: %w", err)
		}
		restored = len(undo.Items)
	case models.UndoDeleteArchive:
		if err := s.archiveRepository.RestoreArchive(ctx, *undo.Archive); err != nil {
			return models.UndoResult{}, fmt.Errorf("restore archive failed: %w", err)
		}
		restored = 1
	}

	log.Info().
		Str("func", "archiveService.Undo").
		Str("list_id", listID).
		Str("type", string(undo.Type)).
		Int("restored_count", restored).
		Msg("bulk action reverted")

	return models.UndoResult{Success: true, RestoredCount: restored}, nil
}

func belongsTo(undo models.UndoData, listID string) bool {
	for _, item := range undo.Items {
		if item.ListID != listID {
			return false
		}
	}
	if undo.Type == models.UndoDeleteArchive && undo.Archive.ListID != listID {
		return false
	}
	return true
}
