package state

import (
	"slices"
	"sync"
	"time"

	"github.com/MKhiriev/shopman/models"
)

// Snapshot is one immutable view of the application state. Subscribers own
// the snapshot they receive.
type Snapshot struct {
	CurrentList *models.List
	Items       []models.Item
	IsLoading   bool
	Error       string
	Sync        models.SyncState
}

// HasPending reports whether any displayed item awaits confirmation.
func (s Snapshot) HasPending() bool {
	return slices.ContainsFunc(s.Items, func(i models.Item) bool { return i.SyncStatus == models.SyncStatusPending })
}

// HasErrors reports whether any displayed item failed to sync.
func (s Snapshot) HasErrors() bool {
	return slices.ContainsFunc(s.Items, func(i models.Item) bool { return i.SyncStatus == models.SyncStatusError })
}

// CurrentListID returns the id of the open list or "".
func (s Snapshot) CurrentListID() string {
	if s.CurrentList == nil {
		return ""
	}
	return s.CurrentList.ID
}

func (s Snapshot) clone() Snapshot {
	out := s
	if s.CurrentList != nil {
		list := *s.CurrentList
		out.CurrentList = &list
	}
	out.Items = slices.Clone(s.Items)
	if out.Items == nil {
		out.Items = []models.Item{}
	}
	if s.Sync.LastSyncTime != nil {
		t := *s.Sync.LastSyncTime
		out.Sync.LastSyncTime = &t
	}
	return out
}

// AppStore is the Application State Store. Subscribers see snapshots in the
// order they were installed and must not mutate the store from inside their
// callback.
type AppStore struct {
	// publishMu orders install+publish across writers; it is taken before mu.
	publishMu sync.Mutex
	mu        sync.Mutex
	snapshot  Snapshot
	tokens    map[string]models.AccessToken
	now       func() time.Time

	publisher Publisher[Snapshot]
}

// NewAppStore returns an empty store.
func NewAppStore() *AppStore {
	return &AppStore{
		snapshot: Snapshot{Items: []models.Item{}},
		tokens:   make(map[string]models.AccessToken),
		now:      time.Now,
	}
}

// Subscribe registers fn for every future snapshot.
func (s *AppStore) Subscribe(fn func(Snapshot)) (unsubscribe func()) {
	return s.publisher.Subscribe(fn)
}

// Snapshot returns a copy of the current state.
func (s *AppStore) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.snapshot.clone()
}

// ── list ──────────────────────────────────────────────────────────────────────

// SetCurrentList opens list and clears the item view. A nil list closes it.
func (s *AppStore) SetCurrentList(list *models.List) {
	s.update(func(snap *Snapshot) {
		snap.CurrentList = list
		snap.Items = []models.Item{}
		snap.Error = ""
	})
}

// IsCurrent reports whether listID is the open list.
func (s *AppStore) IsCurrent(listID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return listID != "" && s.snapshot.CurrentListID() == listID
}

// ── items ─────────────────────────────────────────────────────────────────────

// SetItems replaces the displayed items.
func (s *AppStore) SetItems(items []models.Item) {
	s.update(func(snap *Snapshot) {
		snap.Items = slices.Clone(items)
	})
}

// AddItem appends item to the displayed items of its list.
func (s *AppStore) AddItem(item models.Item) {
	s.update(func(snap *Snapshot) {
		if snap.CurrentListID() != item.ListID {
			return
		}
		snap.Items = append(slices.Clone(snap.Items), item)
	})
}

// UpdateItem replaces the displayed item itemID with item. The id may
// change, which is how a temporary id gets swapped for a server id.
func (s *AppStore) UpdateItem(itemID string, item models.Item) {
	s.update(func(snap *Snapshot) {
		i := slices.IndexFunc(snap.Items, func(it models.Item) bool { return it.ID == itemID })
		if i < 0 {
			return
		}
		snap.Items = slices.Clone(snap.Items)
		snap.Items[i] = item
	})
}

// RemoveItem drops itemID from the displayed items.
func (s *AppStore) RemoveItem(itemID string) {
	s.update(func(snap *Snapshot) {
		snap.Items = slices.DeleteFunc(slices.Clone(snap.Items), func(it models.Item) bool { return it.ID == itemID })
	})
}

// ── flags ─────────────────────────────────────────────────────────────────────

func (s *AppStore) SetLoading(loading bool) {
	s.update(func(snap *Snapshot) { snap.IsLoading = loading })
}

// SetError records a user-visible error message; "" clears it.
func (s *AppStore) SetError(message string) {
	s.update(func(snap *Snapshot) { snap.Error = message })
}

func (s *AppStore) SetOnline(online bool) {
	s.update(func(snap *Snapshot) { snap.Sync.IsOnline = online })
}

func (s *AppStore) SetSyncing(syncing bool) {
	s.update(func(snap *Snapshot) { snap.Sync.IsSyncing = syncing })
}

func (s *AppStore) SetPendingCount(count int) {
	s.update(func(snap *Snapshot) { snap.Sync.PendingCount = count })
}

func (s *AppStore) SetLastSyncTime(t time.Time) {
	s.update(func(snap *Snapshot) { snap.Sync.LastSyncTime = &t })
}

// SyncState returns the current sync status.
func (s *AppStore) SyncState() models.SyncState {
	return s.Snapshot().Sync
}

// ── access tokens ─────────────────────────────────────────────────────────────

// SetAccessToken stores token for its list. An unexpired edit token is not
// replaced by a view token since it already grants view access.
func (s *AppStore) SetAccessToken(token models.AccessToken) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if current, ok := s.validToken(token.ListID); ok && current.Action == models.AccessEdit && token.Action != models.AccessEdit {
		return
	}
	s.tokens[token.ListID] = token
}

// AccessToken returns the unexpired token held for listID.
func (s *AppStore) AccessToken(listID string) (models.AccessToken, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.validToken(listID)
}

// HasAccess reports whether a held token permits action on listID.
func (s *AppStore) HasAccess(listID string, action models.AccessAction) bool {
	token, ok := s.AccessToken(listID)
	return ok && token.Action.Allows(action)
}

// ClearAccessToken forgets the token of listID.
func (s *AppStore) ClearAccessToken(listID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.tokens, listID)
}

func (s *AppStore) validToken(listID string) (models.AccessToken, bool) {
	token, ok := s.tokens[listID]
	if !ok {
		return models.AccessToken{}, false
	}
	if !token.ExpiresAt.IsZero() && !s.now().Before(token.ExpiresAt) {
		delete(s.tokens, listID)
		return models.AccessToken{}, false
	}
	return token, true
}

// update applies mutate to a copy of the snapshot, installs it and notifies
// subscribers before returning.
func (s *AppStore) update(mutate func(*Snapshot)) {
	s.publishMu.Lock()
	defer s.publishMu.Unlock()

	s.mu.Lock()
	next := s.snapshot.clone()
	mutate(&next)
	s.snapshot = next
	published := next.clone()
	s.mu.Unlock()

	s.publisher.Publish(published)
}
