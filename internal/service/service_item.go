package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/shopman/internal/logger"
	"github.com/MKhiriev/shopman/internal/store"
	"github.com/MKhiriev/shopman/internal/utils"
	"github.com/MKhiriev/shopman/models"
)

type itemService struct {
	itemRepository store.ItemStorage
	access         listAccess
	ids            utils.IDGenerator
	now            func() time.Time
	logger         *logger.Logger
}

func NewItemService(itemRepository store.ItemStorage, listRepository store.ListStorage, ids utils.IDGenerator, logger *logger.Logger) ItemService {
	return &itemService{
		itemRepository: itemRepository,
		access:         listAccess{lists: listRepository},
		ids:            ids,
		now:            time.Now,
		logger:         logger,
	}
}

// GetItems returns the items of the list in creation order.
func (s *itemService) GetItems(ctx context.Context, listID string) ([]models.Item, error) {
	if _, err := s.access.authorize(ctx, listID, models.AccessView); err != nil {
		return nil, err
	}

	items, err := s.itemRepository.GetItems(ctx, listID)
	if err != nil {
		return nil, fmt.Errorf("get items failed: %w", err)
	}
	return items, nil
}

// AddItem creates a new item with a server-issued id.
func (s *itemService) AddItem(ctx context.Context, listID string, fields models.ItemFields) (models.Item, error) {
	log := logger.FromContext(ctx)

	if _, err := s.access.authorize(ctx, listID, models.AccessEdit); err != nil {
		return models.Item{}, err
	}

	fields = fields.Trim()
	item := models.Item{
		ID:        s.ids.Generate(),
		ListID:    listID,
		Name:      fields.Name,
		Amount:    fields.Amount,
		Type:      fields.Type,
		Note:      fields.Note,
		CreatedAt: s.now().UTC(),
	}

	created, err := s.itemRepository.CreateItem(ctx, item)
	if err != nil {
		log.Err(err).Str("func", "itemService.AddItem").Str("list_id", listID).Msg("item creation failed")
		return models.Item{}, fmt.Errorf("item creation failed: %w", err)
	}

	log.Debug().Str("func", "itemService.AddItem").Str("item_id", created.ID).Msg("item created")
	return created, nil
}

// UpdateItem applies a partial update. Edit permission is checked against
// the list the item belongs to.
func (s *itemService) UpdateItem(ctx context.Context, itemID string, update models.ItemUpdate) (models.Item, error) {
	log := logger.FromContext(ctx)

	if err := s.authorizeItem(ctx, itemID); err != nil {
		return models.Item{}, err
	}

	updated, err := s.itemRepository.UpdateItem(ctx, itemID, update.Trim())
	if err != nil {
		log.Err(err).Str("func", "itemService.UpdateItem").Str("item_id", itemID).Msg("item update failed")
		return models.Item{}, fmt.Errorf("item update failed: %w", err)
	}
	return updated, nil
}

func (s *itemService) DeleteItem(ctx context.Context, itemID string) error {
	if err := s.authorizeItem(ctx, itemID); err != nil {
		return err
	}

	if err := s.itemRepository.DeleteItem(ctx, itemID); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "itemService.DeleteItem").Str("item_id", itemID).Msg("item deletion failed")
		return fmt.Errorf("item deletion failed: %w", err)
	}
	return nil
}

func (s *itemService) authorizeItem(ctx context.Context, itemID string) error {
	item, err := s.itemRepository.GetItem(ctx, itemID)
	if err != nil {
		return fmt.Errorf("item %s: %w", itemID, err)
	}
	_, err = s.access.authorize(ctx, item.ListID, models.AccessEdit)
	return err
}
