package store

import (
	"cmp"
	"context"
	"slices"
	"sync"
	"time"

	"github.com/MKhiriev/shopman/models"
)

// memoryStore is a [LocalStore] kept entirely in process memory. It backs
// the "memory" DSN and replaces the durable store when it fails.
type memoryStore struct {
	mu     sync.RWMutex
	nextID int64
	lists  map[string]models.List
	items  map[string]models.Item
	queue  map[int64]models.Operation
}

// NewMemoryStore returns an empty in-memory [LocalStore].
func NewMemoryStore() LocalStore {
	return &memoryStore{
		nextID: 1,
		lists:  make(map[string]models.List),
		items:  make(map[string]models.Item),
		queue:  make(map[int64]models.Operation),
	}
}

// ── lists ─────────────────────────────────────────────────────────────────────

func (m *memoryStore) GetList(_ context.Context, listID string) (models.List, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	list, ok := m.lists[listID]
	if !ok {
		return models.List{}, ErrNotFound
	}
	return list, nil
}

func (m *memoryStore) GetListByName(_ context.Context, nameLowercase string) (models.List, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	key := models.NormalizeListName(nameLowercase)
	for _, list := range m.lists {
		if list.NameLowercase == key {
			return list, nil
		}
	}
	return models.List{}, ErrNotFound
}

func (m *memoryStore) GetAllLists(_ context.Context) ([]models.List, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	lists := make([]models.List, 0, len(m.lists))
	for _, list := range m.lists {
		lists = append(lists, list)
	}
	slices.SortFunc(lists, func(a, b models.List) int {
		return cmp.Or(a.CreatedAt.Compare(b.CreatedAt), cmp.Compare(a.ID, b.ID))
	})
	return lists, nil
}

func (m *memoryStore) PutList(_ context.Context, list models.List) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	list.NameLowercase = models.NormalizeListName(list.Name)
	if list.SyncStatus == "" {
		list.SyncStatus = models.SyncStatusSynced
	}

	// unique name index: a list with the same name under another id is replaced
	for id, existing := range m.lists {
		if id != list.ID && existing.NameLowercase == list.NameLowercase {
			delete(m.lists, id)
		}
	}
	m.lists[list.ID] = list
	return nil
}

func (m *memoryStore) DeleteList(_ context.Context, listID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.deleteItemsWhere(func(item models.Item) bool { return item.ListID == listID })
	delete(m.lists, listID)
	return nil
}

func (m *memoryStore) ClearLists(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	clear(m.lists)
	return nil
}

// ── items ─────────────────────────────────────────────────────────────────────

func (m *memoryStore) GetItem(_ context.Context, itemID string) (models.Item, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	item, ok := m.items[itemID]
	if !ok {
		return models.Item{}, ErrNotFound
	}
	return item, nil
}

func (m *memoryStore) GetAllItems(_ context.Context) ([]models.Item, error) {
	return m.selectItems(func(models.Item) bool { return true }), nil
}

func (m *memoryStore) GetItemsByList(_ context.Context, listID string) ([]models.Item, error) {
	return m.selectItems(func(item models.Item) bool { return item.ListID == listID }), nil
}

func (m *memoryStore) GetItemsByStatus(_ context.Context, status models.SyncStatus) ([]models.Item, error) {
	return m.selectItems(func(item models.Item) bool { return item.SyncStatus == status }), nil
}

func (m *memoryStore) PutItems(_ context.Context, items ...models.Item) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.applyItemChange(models.ItemChange{Put: items})
	return nil
}

func (m *memoryStore) DeleteItem(_ context.Context, itemID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.items, itemID)
	return nil
}

func (m *memoryStore) DeleteItemsByList(_ context.Context, listID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.deleteItemsWhere(func(item models.Item) bool { return item.ListID == listID })
	return nil
}

func (m *memoryStore) ClearItems(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	clear(m.items)
	return nil
}

// ── queue ─────────────────────────────────────────────────────────────────────

func (m *memoryStore) Enqueue(_ context.Context, payload models.OperationPayload, at time.Time, change models.ItemChange) (models.Operation, error) {
	if _, _, err := models.EncodePayload(payload); err != nil {
		return models.Operation{}, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.applyItemChange(change)

	op := models.Operation{ID: m.nextID, Payload: payload, Timestamp: at}
	m.queue[op.ID] = op
	m.nextID++

	return op, nil
}

func (m *memoryStore) GetOperations(_ context.Context) ([]models.Operation, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.sortedOperations(), nil
}

func (m *memoryStore) CountOperations(_ context.Context) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return len(m.queue), nil
}

func (m *memoryStore) UpdateRetries(_ context.Context, operationID int64, retries int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	op, ok := m.queue[operationID]
	if !ok {
		return ErrOperationNotFound
	}
	op.Retries = retries
	m.queue[operationID] = op
	return nil
}

func (m *memoryStore) RemoveOperation(_ context.Context, operationID int64, change models.ItemChange) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.queue, operationID)
	m.applyItemChange(change)
	return nil
}

func (m *memoryStore) ResolveTempID(_ context.Context, operationID int64, tempID string, item models.Item) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.queue, operationID)
	m.applyItemChange(models.ItemChange{Delete: []string{tempID}, Put: []models.Item{item}})

	for id, op := range m.queue {
		if op.Payload.TargetID() == tempID {
			op.Payload = op.Payload.WithTargetID(item.ID)
			m.queue[id] = op
		}
	}
	return nil
}

func (m *memoryStore) DiscardItem(_ context.Context, itemID string) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	discarded := 0
	for id, op := range m.queue {
		if op.Payload.TargetID() == itemID {
			delete(m.queue, id)
			discarded++
		}
	}
	delete(m.items, itemID)
	return discarded, nil
}

func (m *memoryStore) ClearOperations(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	clear(m.queue)
	return nil
}

// ── helpers (callers hold the lock) ───────────────────────────────────────────

func (m *memoryStore) applyItemChange(change models.ItemChange) {
	for _, id := range change.Delete {
		delete(m.items, id)
	}
	for _, item := range change.Put {
		if item.SyncStatus == "" {
			item.SyncStatus = models.SyncStatusSynced
		}
		m.items[item.ID] = item
	}
}

func (m *memoryStore) deleteItemsWhere(match func(models.Item) bool) {
	for id, item := range m.items {
		if match(item) {
			delete(m.items, id)
		}
	}
}

func (m *memoryStore) selectItems(match func(models.Item) bool) []models.Item {
	m.mu.RLock()
	defer m.mu.RUnlock()

	items := make([]models.Item, 0)
	for _, item := range m.items {
		if match(item) {
			items = append(items, item)
		}
	}
	slices.SortFunc(items, func(a, b models.Item) int {
		return cmp.Or(a.CreatedAt.Compare(b.CreatedAt), cmp.Compare(a.ID, b.ID))
	})
	return items
}

func (m *memoryStore) sortedOperations() []models.Operation {
	operations := make([]models.Operation, 0, len(m.queue))
	for _, op := range m.queue {
		operations = append(operations, op)
	}
	slices.SortFunc(operations, func(a, b models.Operation) int {
		return cmp.Compare(a.ID, b.ID)
	})
	return operations
}
