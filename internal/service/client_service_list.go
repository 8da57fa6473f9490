package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/MKhiriev/shopman/internal/adapter"
	"github.com/MKhiriev/shopman/internal/logger"
	"github.com/MKhiriev/shopman/internal/state"
	"github.com/MKhiriev/shopman/internal/store"
	"github.com/MKhiriev/shopman/internal/utils"
	"github.com/MKhiriev/shopman/models"
)

type clientListService struct {
	local        store.LocalStore
	remote       adapter.RemoteAuthority
	engine       SyncEngine
	connectivity Connectivity
	appStore     *state.AppStore
	now          func() time.Time

	logger *logger.Logger
}

// NewClientListService constructs a [ClientListService].
func NewClientListService(local store.LocalStore, remote adapter.RemoteAuthority, engine SyncEngine, connectivity Connectivity, appStore *state.AppStore, logger *logger.Logger) ClientListService {
	return &clientListService{
		local:        local,
		remote:       remote,
		engine:       engine,
		connectivity: connectivity,
		appStore:     appStore,
		now:          time.Now,
		logger:       logger,
	}
}

// OpenList implements [ClientListService].
//
// Online, the list is fetched by its normalized name and cached with the
// local-only fields preserved. Offline, or when the fetch fails for any
// reason other than the list being unknown, the cached copy is used.
func (s *clientListService) OpenList(ctx context.Context, name string) (models.List, error) {
	key := models.NormalizeListName(name)
	if key == "" {
		return models.List{}, ErrEmptyListName
	}

	s.appStore.SetLoading(true)
	defer s.appStore.SetLoading(false)

	list, err := s.resolveList(ctx, key)
	if err != nil {
		s.appStore.SetError(err.Error())
		return models.List{}, err
	}

	s.appStore.SetCurrentList(&list)

	if err = s.ensureAccess(ctx, list); err != nil {
		return list, err
	}

	return list, s.Refresh(ctx)
}

func (s *clientListService) resolveList(ctx context.Context, key string) (models.List, error) {
	log := logger.FromContext(ctx)

	if !s.connectivity.IsOnline() {
		return s.cachedList(ctx, key)
	}

	remote, err := s.remote.GetListByName(ctx, key)
	if err != nil {
		if errors.Is(err, adapter.ErrNotFound) {
			return models.List{}, store.ErrNotFound
		}
		log.Warn().Err(err).Str("func", "clientListService.resolveList").Str("name", key).Msg("failed to fetch list, using cache")
		return s.cachedList(ctx, key)
	}

	list := remote
	if cached, err := s.local.GetList(ctx, remote.ID); err == nil {
		list = remote.MergeLocal(cached)
	}
	list.SyncStatus = models.SyncStatusSynced
	list.LastModified = s.now().UTC()

	if err = s.local.PutList(ctx, list); err != nil {
		log.Err(err).Str("func", "clientListService.resolveList").Str("list_id", list.ID).Msg("failed to cache list")
	}
	return list, nil
}

func (s *clientListService) cachedList(ctx context.Context, key string) (models.List, error) {
	list, err := s.local.GetListByName(ctx, key)
	if err != nil {
		return models.List{}, fmt.Errorf("list %q: %w", key, err)
	}
	return list, nil
}

// ensureAccess obtains a view token for a view-protected list, using the
// saved password of a followed list when there is one.
func (s *clientListService) ensureAccess(ctx context.Context, list models.List) error {
	if !list.ViewRequiresPassword || !s.connectivity.IsOnline() || s.appStore.HasAccess(list.ID, models.AccessView) {
		return nil
	}

	password := models.DecodeSavedPassword(list.SavedPassword)
	if !list.IsFollowed || password == "" {
		return ErrPasswordRequired
	}

	action := models.AccessView
	if list.EditRequiresPassword {
		action = models.AccessEdit
	}

	if err := s.VerifyPassword(ctx, list.ID, password, action); err != nil {
		logger.FromContext(ctx).Warn().Err(err).
			Str("func", "clientListService.ensureAccess").
			Str("list_id", list.ID).
			Msg("saved password rejected")
		return ErrPasswordRequired
	}
	return nil
}

// Refresh implements [ClientListService].
func (s *clientListService) Refresh(ctx context.Context) error {
	current := s.appStore.Snapshot().CurrentList
	if current == nil {
		return ErrNoListSelected
	}

	token, _ := s.appStore.AccessToken(current.ID)
	items, err := s.engine.ReconcileItems(ctx, current.ID, token.Token)
	if err != nil {
		s.appStore.SetError(err.Error())
		return err
	}

	models.SortItemsForDisplay(items)
	s.appStore.SetItems(items)
	return nil
}

// CreateList implements [ClientListService].
func (s *clientListService) CreateList(ctx context.Context, req models.CreateListRequest) (models.List, error) {
	req.Name = strings.TrimSpace(req.Name)
	if err := validateListName(req.Name); err != nil {
		return models.List{}, err
	}
	if !s.connectivity.IsOnline() {
		return models.List{}, ErrOffline
	}

	list, err := s.remote.CreateList(ctx, req)
	if err != nil {
		return models.List{}, mapAdapterError(err)
	}

	list.SyncStatus = models.SyncStatusSynced
	list.LastModified = s.now().UTC()
	if err = s.local.PutList(ctx, list); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "clientListService.CreateList").Str("list_id", list.ID).Msg("failed to cache list")
	}

	// the creator knows the password
	if req.Password != "" {
		if err = s.VerifyPassword(ctx, list.ID, req.Password, models.AccessEdit); err != nil {
			logger.FromContext(ctx).Warn().Err(err).Str("func", "clientListService.CreateList").Msg("failed to obtain access token")
		}
	}

	return list, nil
}

// VerifyPassword implements [ClientListService].
func (s *clientListService) VerifyPassword(ctx context.Context, listID, password string, action models.AccessAction) error {
	if !action.Valid() {
		return ErrInvalidAction
	}
	if !s.connectivity.IsOnline() {
		return ErrOffline
	}

	raw, err := s.remote.VerifyPassword(ctx, listID, models.VerifyPasswordRequest{Password: password, Action: action})
	if err != nil {
		return mapAdapterError(err)
	}

	token, err := utils.PeekAccessToken(raw)
	if err != nil {
		token = models.AccessToken{ListID: listID, Action: action, Token: raw}
	}
	token.ListID = listID
	s.appStore.SetAccessToken(token)

	list, err := s.local.GetList(ctx, listID)
	if err == nil && list.IsFollowed {
		list.SavedPassword = models.EncodeSavedPassword(password)
		if err = s.local.PutList(ctx, list); err != nil {
			logger.FromContext(ctx).Err(err).Str("func", "clientListService.VerifyPassword").Str("list_id", listID).Msg("failed to save password")
		}
	}

	return nil
}

// UpdatePassword implements [ClientListService].
func (s *clientListService) UpdatePassword(ctx context.Context, listID string, req models.UpdatePasswordRequest) error {
	if !s.connectivity.IsOnline() {
		return ErrOffline
	}

	if err := s.remote.UpdatePassword(ctx, listID, req, s.token(listID)); err != nil {
		return mapAdapterError(err)
	}

	s.appStore.ClearAccessToken(listID)

	list, err := s.local.GetList(ctx, listID)
	if err != nil {
		return nil
	}
	list.HasPassword = req.NewPassword != ""
	list.ViewRequiresPassword = list.HasPassword && req.ViewRequiresPassword
	list.EditRequiresPassword = list.HasPassword && req.EditRequiresPassword
	if list.IsFollowed {
		list.SavedPassword = models.EncodeSavedPassword(req.NewPassword)
	}
	if err = s.local.PutList(ctx, list); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "clientListService.UpdatePassword").Str("list_id", listID).Msg("failed to cache list")
	}

	if s.appStore.IsCurrent(listID) {
		s.appStore.SetCurrentList(&list)
		return s.Refresh(ctx)
	}
	return nil
}

// DeleteList implements [ClientListService].
func (s *clientListService) DeleteList(ctx context.Context, listID, password string) error {
	if !s.connectivity.IsOnline() {
		return ErrOffline
	}

	if err := s.remote.DeleteList(ctx, listID, models.DeleteListRequest{Password: password}, s.token(listID)); err != nil {
		return mapAdapterError(err)
	}

	if err := s.local.DeleteList(ctx, listID); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "clientListService.DeleteList").Str("list_id", listID).Msg("failed to evict list")
	}
	s.appStore.ClearAccessToken(listID)
	if s.appStore.IsCurrent(listID) {
		s.appStore.SetCurrentList(nil)
	}
	return nil
}

// Follow implements [ClientListService].
func (s *clientListService) Follow(ctx context.Context, listID string) error {
	return s.updateLocal(ctx, listID, func(list *models.List) {
		if list.IsFollowed {
			return
		}
		followedAt := s.now().UTC()
		list.IsFollowed = true
		list.FollowedAt = &followedAt
	})
}

// Unfollow implements [ClientListService]. It forgets the saved password,
// the notification setting and the cached items.
func (s *clientListService) Unfollow(ctx context.Context, listID string) error {
	err := s.updateLocal(ctx, listID, func(list *models.List) {
		list.IsFollowed = false
		list.FollowedAt = nil
		list.SavedPassword = ""
		list.NotificationsEnabled = false
		list.PushSubscription = nil
	})
	if err != nil {
		return err
	}

	return s.local.DeleteItemsByList(ctx, listID)
}

// FollowedLists implements [ClientListService].
func (s *clientListService) FollowedLists(ctx context.Context) ([]models.List, error) {
	lists, err := s.local.GetAllLists(ctx)
	if err != nil {
		return nil, err
	}

	followed := make([]models.List, 0, len(lists))
	for _, list := range lists {
		if list.IsFollowed {
			followed = append(followed, list)
		}
	}
	return followed, nil
}

// SetNotifications implements [ClientListService].
func (s *clientListService) SetNotifications(ctx context.Context, listID string, enabled bool, sub *models.PushSubscription) error {
	if !s.connectivity.IsOnline() {
		return ErrOffline
	}

	list, err := s.local.GetList(ctx, listID)
	if err != nil {
		return err
	}

	if enabled {
		if sub == nil || sub.Endpoint == "" {
			return ErrInvalidSubscription
		}
		if err = s.remote.Subscribe(ctx, listID, *sub, s.token(listID)); err != nil {
			return mapAdapterError(err)
		}
		list.NotificationsEnabled = true
		list.PushSubscription = sub
	} else {
		if list.PushSubscription != nil {
			if err = s.remote.Unsubscribe(ctx, listID, list.PushSubscription.Endpoint, s.token(listID)); err != nil {
				return mapAdapterError(err)
			}
		}
		list.NotificationsEnabled = false
		list.PushSubscription = nil
	}

	return s.putLocal(ctx, list)
}

func (s *clientListService) updateLocal(ctx context.Context, listID string, mutate func(*models.List)) error {
	list, err := s.local.GetList(ctx, listID)
	if err != nil {
		return fmt.Errorf("list %s: %w", listID, err)
	}

	mutate(&list)
	return s.putLocal(ctx, list)
}

func (s *clientListService) putLocal(ctx context.Context, list models.List) error {
	list.LastModified = s.now().UTC()
	if err := s.local.PutList(ctx, list); err != nil {
		return err
	}

	if s.appStore.IsCurrent(list.ID) {
		s.appStore.SetCurrentList(&list)
		items, err := s.local.GetItemsByList(ctx, list.ID)
		if err == nil {
			models.SortItemsForDisplay(items)
			s.appStore.SetItems(items)
		}
	}
	return nil
}

func (s *clientListService) token(listID string) string {
	token, _ := s.appStore.AccessToken(listID)
	return token.Token
}

func validateListName(name string) error {
	if name == "" {
		return ErrEmptyListName
	}
	if utf8.RuneCountInString(name) > models.MaxListNameLength {
		return ErrListNameTooLong
	}
	return nil
}
