package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/shopman/internal/adapter"
	"github.com/MKhiriev/shopman/internal/logger"
	"github.com/MKhiriev/shopman/internal/state"
	"github.com/MKhiriev/shopman/internal/store"
	"github.com/MKhiriev/shopman/models"
)

type clientItemService struct {
	local        store.LocalStore
	remote       adapter.RemoteAuthority
	engine       SyncEngine
	connectivity Connectivity
	appStore     *state.AppStore
	now          func() time.Time

	logger *logger.Logger
}

// NewClientItemService constructs a [ClientItemService].
//
// While online, a mutation of a confirmed item is sent to the Remote
// Authority directly. Offline, for items with unconfirmed changes, or when
// the direct call fails at the network level, the mutation is queued and
// confirmed by the sync engine later.
func NewClientItemService(local store.LocalStore, remote adapter.RemoteAuthority, engine SyncEngine, connectivity Connectivity, appStore *state.AppStore, logger *logger.Logger) ClientItemService {
	return &clientItemService{
		local:        local,
		remote:       remote,
		engine:       engine,
		connectivity: connectivity,
		appStore:     appStore,
		now:          time.Now,
		logger:       logger,
	}
}

// AddItem implements [ClientItemService].
func (s *clientItemService) AddItem(ctx context.Context, fields models.ItemFields) (models.Item, *Confirmation, error) {
	list, err := s.editableList()
	if err != nil {
		return models.Item{}, nil, err
	}

	fields = fields.Trim()
	if err = validateItemFields(fields); err != nil {
		return models.Item{}, nil, err
	}

	if s.connectivity.IsOnline() {
		created, err := s.remote.AddItem(ctx, list.ID, fields, s.token(list.ID))
		switch {
		case err == nil:
			item := created.WithStatus(models.SyncStatusSynced)
			if err = s.local.PutItems(ctx, item); err != nil {
				s.logger.Err(err).Str("func", "clientItemService.AddItem").Str("item_id", item.ID).Msg("failed to cache item")
			}
			s.appStore.AddItem(item)
			return item, confirmed(nil), nil
		case !adapter.IsTransient(err):
			return models.Item{}, nil, mapAdapterError(err)
		}
		s.logger.Warn().Err(err).Str("func", "clientItemService.AddItem").Msg("remote add failed, queueing")
	}

	now := s.now().UTC()
	item := models.Item{
		ID:         models.NewTempID(now),
		ListID:     list.ID,
		Name:       fields.Name,
		Amount:     fields.Amount,
		Type:       fields.Type,
		Note:       fields.Note,
		CreatedAt:  now,
		SyncStatus: models.SyncStatusPending,
	}

	_, confirmation, err := s.engine.Enqueue(ctx,
		models.AddItemPayload{ListID: list.ID, Item: item},
		models.ItemChange{Put: []models.Item{item}},
	)
	if err != nil {
		return models.Item{}, nil, err
	}

	s.appStore.AddItem(item)
	return item, confirmation, nil
}

// UpdateItem implements [ClientItemService].
func (s *clientItemService) UpdateItem(ctx context.Context, itemID string, update models.ItemUpdate) (models.Item, *Confirmation, error) {
	if update.IsEmpty() {
		return models.Item{}, nil, ErrNoUpdatesProvided
	}
	update = update.Trim()
	if update.Name != nil && *update.Name == "" {
		return models.Item{}, nil, ErrEmptyItemName
	}
	if update.Type != nil && !update.Type.Valid() {
		return models.Item{}, nil, ErrInvalidItemType
	}

	return s.mutate(ctx, itemID, update, models.UpdateItemPayload{ItemID: itemID, Updates: update})
}

// ToggleItem implements [ClientItemService].
func (s *clientItemService) ToggleItem(ctx context.Context, itemID string) (models.Item, *Confirmation, error) {
	item, err := s.local.GetItem(ctx, itemID)
	if err != nil {
		return models.Item{}, nil, fmt.Errorf("toggle item %s: %w", itemID, err)
	}

	isBought := !item.IsBought
	return s.mutate(ctx, itemID, models.ItemUpdate{IsBought: &isBought}, models.ToggleItemPayload{ItemID: itemID, IsBought: isBought})
}

// mutate applies update optimistically, then confirms it directly or
// through the queue with payload.
func (s *clientItemService) mutate(ctx context.Context, itemID string, update models.ItemUpdate, payload models.OperationPayload) (models.Item, *Confirmation, error) {
	list, err := s.editableList()
	if err != nil {
		return models.Item{}, nil, err
	}

	original, err := s.local.GetItem(ctx, itemID)
	if err != nil {
		return models.Item{}, nil, fmt.Errorf("get item %s: %w", itemID, err)
	}

	provisional := original.Apply(update).WithStatus(models.SyncStatusPending)
	s.appStore.UpdateItem(itemID, provisional)

	if s.direct(original) {
		updated, err := s.remote.UpdateItem(ctx, itemID, update, s.token(list.ID))
		switch {
		case err == nil:
			item := updated.WithStatus(models.SyncStatusSynced)
			if err = s.local.PutItems(ctx, item); err != nil {
				s.logger.Err(err).Str("func", "clientItemService.mutate").Str("item_id", itemID).Msg("failed to cache item")
			}
			s.appStore.UpdateItem(itemID, item)
			return item, confirmed(nil), nil
		case !adapter.IsTransient(err):
			s.appStore.UpdateItem(itemID, original)
			return models.Item{}, nil, mapAdapterError(err)
		}
		s.logger.Warn().Err(err).Str("func", "clientItemService.mutate").Str("item_id", itemID).Msg("remote update failed, queueing")
	}

	_, confirmation, err := s.engine.Enqueue(ctx, payload, models.ItemChange{Put: []models.Item{provisional}})
	if err != nil {
		s.appStore.UpdateItem(itemID, original)
		return models.Item{}, nil, err
	}

	return provisional, confirmation, nil
}

// DeleteItem implements [ClientItemService].
func (s *clientItemService) DeleteItem(ctx context.Context, itemID string) (*Confirmation, error) {
	list, err := s.editableList()
	if err != nil {
		return nil, err
	}

	original, err := s.local.GetItem(ctx, itemID)
	if errors.Is(err, store.ErrNotFound) {
		s.appStore.RemoveItem(itemID)
		return confirmed(nil), nil
	}
	if err != nil {
		return nil, fmt.Errorf("get item %s: %w", itemID, err)
	}

	s.appStore.RemoveItem(itemID)

	// never reached the server: forget it together with its queued intents
	if models.IsTempID(itemID) {
		if err = s.engine.Discard(ctx, itemID); err != nil {
			s.appStore.AddItem(original)
			return nil, err
		}
		return confirmed(nil), nil
	}

	if s.direct(original) {
		err = s.remote.DeleteItem(ctx, itemID, s.token(list.ID))
		switch {
		case err == nil, errors.Is(err, adapter.ErrNotFound):
			if err = s.local.DeleteItem(ctx, itemID); err != nil {
				s.logger.Err(err).Str("func", "clientItemService.DeleteItem").Str("item_id", itemID).Msg("failed to evict item")
			}
			return confirmed(nil), nil
		case !adapter.IsTransient(err):
			s.appStore.AddItem(original)
			return nil, mapAdapterError(err)
		}
		s.logger.Warn().Err(err).Str("func", "clientItemService.DeleteItem").Str("item_id", itemID).Msg("remote delete failed, queueing")
	}

	_, confirmation, err := s.engine.Enqueue(ctx,
		models.DeleteItemPayload{ItemID: itemID},
		models.ItemChange{Delete: []string{itemID}},
	)
	if err != nil {
		s.appStore.AddItem(original)
		return nil, err
	}

	return confirmation, nil
}

// editableList returns the open list, or [ErrPasswordRequired] when editing
// it needs a password the session does not hold. Offline the check is
// deferred to the Remote Authority.
func (s *clientItemService) editableList() (models.List, error) {
	current := s.appStore.Snapshot().CurrentList
	if current == nil {
		return models.List{}, ErrNoListSelected
	}

	if current.EditRequiresPassword && s.connectivity.IsOnline() && !s.appStore.HasAccess(current.ID, models.AccessEdit) {
		return *current, ErrPasswordRequired
	}
	return *current, nil
}

// direct reports whether a mutation of item may bypass the queue. Items
// with queued changes go through the queue to keep their order.
func (s *clientItemService) direct(item models.Item) bool {
	return s.connectivity.IsOnline() &&
		!models.IsTempID(item.ID) &&
		item.SyncStatus != models.SyncStatusPending
}

func (s *clientItemService) token(listID string) string {
	token, _ := s.appStore.AccessToken(listID)
	return token.Token
}

func validateItemFields(fields models.ItemFields) error {
	if fields.Name == "" {
		return ErrEmptyItemName
	}
	if !fields.Type.Valid() {
		return ErrInvalidItemType
	}
	return nil
}
