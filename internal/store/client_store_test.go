package store

import (
	"context"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/shopman/internal/config"
	"github.com/MKhiriev/shopman/internal/logger"
	"github.com/MKhiriev/shopman/models"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func openSQLiteStore(t *testing.T, dsn string) *ClientStorages {
	t.Helper()
	db, err := NewConnectSQLite(context.Background(), config.ClientStorage{DSN: dsn}, logger.Nop())
	require.NoError(t, err)
	require.NoError(t, db.Migrate())

	s := newClientStorages(db, logger.Nop())
	t.Cleanup(func() { s.Close() })
	return s
}

// localStores returns every LocalStore implementation so that the same
// contract is checked against each of them.
func localStores(t *testing.T) map[string]LocalStore {
	t.Helper()
	return map[string]LocalStore{
		"memory": NewMemoryStore(),
		"sqlite": openSQLiteStore(t, ":memory:"),
	}
}

var baseTime = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func testItem(id, listID string, offset time.Duration) models.Item {
	return models.Item{
		ID:         id,
		ListID:     listID,
		Name:       "item " + id,
		CreatedAt:  baseTime.Add(offset),
		SyncStatus: models.SyncStatusSynced,
	}
}

func itemIDs(items []models.Item) []string {
	ids := make([]string, len(items))
	for i, item := range items {
		ids[i] = item.ID
	}
	return ids
}

func operationTargets(ops []models.Operation) []string {
	ids := make([]string, len(ops))
	for i, op := range ops {
		ids[i] = op.Payload.TargetID()
	}
	return ids
}

// ── lists ─────────────────────────────────────────────────────────────────────

func TestLocalStore_PutAndGetList(t *testing.T) {
	for name, s := range localStores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			followedAt := baseTime.Add(time.Minute)
			list := models.List{
				ID:                   "l1",
				Name:                 "Groceries",
				HasPassword:          true,
				EditRequiresPassword: true,
				CreatedAt:            baseTime,
				IsFollowed:           true,
				FollowedAt:           &followedAt,
				SavedPassword:        models.EncodeSavedPassword("secret"),
				PushSubscription: &models.PushSubscription{
					Endpoint: "https://push.example/1",
					Keys:     models.PushSubscriptionKeys{P256dh: "p", Auth: "a"},
				},
				LastModified: baseTime,
			}

			require.NoError(t, s.PutList(ctx, list))

			got, err := s.GetList(ctx, "l1")
			require.NoError(t, err)
			assert.Equal(t, "groceries", got.NameLowercase)
			assert.True(t, got.HasPassword)
			assert.True(t, got.IsFollowed)
			require.NotNil(t, got.FollowedAt)
			assert.True(t, got.FollowedAt.Equal(followedAt))
			assert.Equal(t, "secret", models.DecodeSavedPassword(got.SavedPassword))
			require.NotNil(t, got.PushSubscription)
			assert.Equal(t, "https://push.example/1", got.PushSubscription.Endpoint)
			assert.Equal(t, models.SyncStatusSynced, got.SyncStatus)

			byName, err := s.GetListByName(ctx, "groceries")
			require.NoError(t, err)
			assert.Equal(t, "l1", byName.ID)
		})
	}
}

func TestLocalStore_MissingListIsNotFound(t *testing.T) {
	for name, s := range localStores(t) {
		t.Run(name, func(t *testing.T) {
			_, err := s.GetList(context.Background(), "nope")
			assert.ErrorIs(t, err, ErrNotFound)
			_, err = s.GetListByName(context.Background(), "nope")
			assert.ErrorIs(t, err, ErrNotFound)
		})
	}
}

func TestLocalStore_DeleteListCascadesItems(t *testing.T) {
	for name, s := range localStores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			require.NoError(t, s.PutList(ctx, models.List{ID: "l1", Name: "A", CreatedAt: baseTime}))
			require.NoError(t, s.PutList(ctx, models.List{ID: "l2", Name: "B", CreatedAt: baseTime.Add(time.Second)}))
			require.NoError(t, s.PutItems(ctx, testItem("i1", "l1", 0), testItem("i2", "l2", 0)))

			require.NoError(t, s.DeleteList(ctx, "l1"))

			lists, err := s.GetAllLists(ctx)
			require.NoError(t, err)
			require.Len(t, lists, 1)
			assert.Equal(t, "l2", lists[0].ID)

			items, err := s.GetAllItems(ctx)
			require.NoError(t, err)
			assert.Equal(t, []string{"i2"}, itemIDs(items))

			// deleting a missing key is a no-op
			assert.NoError(t, s.DeleteList(ctx, "l1"))
		})
	}
}

// ── items ─────────────────────────────────────────────────────────────────────

func TestLocalStore_PutItemsIsIdempotent(t *testing.T) {
	for name, s := range localStores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			item := testItem("i1", "l1", 0)
			item.Amount = "1L"

			require.NoError(t, s.PutItems(ctx, item))
			once, err := s.GetAllItems(ctx)
			require.NoError(t, err)

			require.NoError(t, s.PutItems(ctx, item))
			twice, err := s.GetAllItems(ctx)
			require.NoError(t, err)

			require.Len(t, twice, 1)
			assert.Equal(t, itemIDs(once), itemIDs(twice))
			assert.Equal(t, "1L", twice[0].Amount)
		})
	}
}

func TestLocalStore_ItemIndexes(t *testing.T) {
	for name, s := range localStores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			pending := testItem("temp_1", "l1", 2*time.Second).WithStatus(models.SyncStatusPending)
			require.NoError(t, s.PutItems(ctx,
				testItem("i2", "l1", time.Second),
				testItem("i1", "l1", 0),
				testItem("x1", "l2", 0),
				pending,
			))

			byList, err := s.GetItemsByList(ctx, "l1")
			require.NoError(t, err)
			assert.Equal(t, []string{"i1", "i2", "temp_1"}, itemIDs(byList))

			byStatus, err := s.GetItemsByStatus(ctx, models.SyncStatusPending)
			require.NoError(t, err)
			assert.Equal(t, []string{"temp_1"}, itemIDs(byStatus))

			require.NoError(t, s.DeleteItemsByList(ctx, "l1"))
			all, err := s.GetAllItems(ctx)
			require.NoError(t, err)
			assert.Equal(t, []string{"x1"}, itemIDs(all))

			assert.NoError(t, s.DeleteItem(ctx, "missing"))
			_, err = s.GetItem(ctx, "missing")
			assert.ErrorIs(t, err, ErrNotFound)
		})
	}
}

func TestLocalStore_PutItemsDefaultsToSynced(t *testing.T) {
	for name, s := range localStores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			require.NoError(t, s.PutItems(ctx, models.Item{ID: "i1", ListID: "l1", Name: "Milk", CreatedAt: baseTime}))

			item, err := s.GetItem(ctx, "i1")
			require.NoError(t, err)
			assert.Equal(t, models.SyncStatusSynced, item.SyncStatus)
		})
	}
}

// ── queue ─────────────────────────────────────────────────────────────────────

func TestLocalStore_EnqueueAppliesChangeAtomically(t *testing.T) {
	for name, s := range localStores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			item := testItem("temp_1", "l1", 0).WithStatus(models.SyncStatusPending)

			op, err := s.Enqueue(ctx,
				models.AddItemPayload{ListID: "l1", Item: item},
				baseTime,
				models.ItemChange{Put: []models.Item{item}},
			)
			require.NoError(t, err)
			assert.NotZero(t, op.ID)
			assert.Equal(t, models.OperationAddItem, op.Kind())

			stored, err := s.GetItem(ctx, "temp_1")
			require.NoError(t, err)
			assert.Equal(t, models.SyncStatusPending, stored.SyncStatus)

			count, err := s.CountOperations(ctx)
			require.NoError(t, err)
			assert.Equal(t, 1, count)
		})
	}
}

func TestLocalStore_OperationsAreFIFO(t *testing.T) {
	for name, s := range localStores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			// часы ушли назад между вызовами: порядок всё равно по постановке
			_, err := s.Enqueue(ctx, models.ToggleItemPayload{ItemID: "a", IsBought: true}, baseTime.Add(2*time.Second), models.ItemChange{})
			require.NoError(t, err)
			_, err = s.Enqueue(ctx, models.ToggleItemPayload{ItemID: "b"}, baseTime, models.ItemChange{})
			require.NoError(t, err)
			_, err = s.Enqueue(ctx, models.DeleteItemPayload{ItemID: "c"}, baseTime.Add(-time.Minute), models.ItemChange{})
			require.NoError(t, err)

			ops, err := s.GetOperations(ctx)
			require.NoError(t, err)
			assert.Equal(t, []string{"a", "b", "c"}, operationTargets(ops))

			toggle, ok := ops[0].Payload.(models.ToggleItemPayload)
			require.True(t, ok)
			assert.True(t, toggle.IsBought)
		})
	}
}

func TestLocalStore_UpdateRetries(t *testing.T) {
	for name, s := range localStores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			op, err := s.Enqueue(ctx, models.DeleteItemPayload{ItemID: "i1"}, baseTime, models.ItemChange{})
			require.NoError(t, err)

			require.NoError(t, s.UpdateRetries(ctx, op.ID, 2))
			ops, err := s.GetOperations(ctx)
			require.NoError(t, err)
			assert.Equal(t, 2, ops[0].Retries)

			assert.ErrorIs(t, s.UpdateRetries(ctx, op.ID+100, 1), ErrOperationNotFound)
		})
	}
}

func TestLocalStore_RemoveOperationAppliesChange(t *testing.T) {
	for name, s := range localStores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			pending := testItem("i1", "l1", 0).WithStatus(models.SyncStatusPending)
			op, err := s.Enqueue(ctx, models.ToggleItemPayload{ItemID: "i1", IsBought: true}, baseTime,
				models.ItemChange{Put: []models.Item{pending}})
			require.NoError(t, err)

			require.NoError(t, s.RemoveOperation(ctx, op.ID, models.ItemChange{
				Put: []models.Item{pending.WithStatus(models.SyncStatusSynced)},
			}))

			item, err := s.GetItem(ctx, "i1")
			require.NoError(t, err)
			assert.Equal(t, models.SyncStatusSynced, item.SyncStatus)

			count, err := s.CountOperations(ctx)
			require.NoError(t, err)
			assert.Zero(t, count)
		})
	}
}

func TestLocalStore_ResolveTempIDRewritesDependents(t *testing.T) {
	for name, s := range localStores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			temp := testItem("temp_1", "l1", 0).WithStatus(models.SyncStatusPending)
			newName := "Oat milk"

			add, err := s.Enqueue(ctx, models.AddItemPayload{ListID: "l1", Item: temp}, baseTime,
				models.ItemChange{Put: []models.Item{temp}})
			require.NoError(t, err)
			_, err = s.Enqueue(ctx, models.UpdateItemPayload{ItemID: "temp_1", Updates: models.ItemUpdate{Name: &newName}},
				baseTime.Add(time.Second), models.ItemChange{})
			require.NoError(t, err)
			_, err = s.Enqueue(ctx, models.ToggleItemPayload{ItemID: "other"}, baseTime.Add(2*time.Second), models.ItemChange{})
			require.NoError(t, err)

			confirmed := temp
			confirmed.ID = "S1"
			confirmed.SyncStatus = models.SyncStatusSynced
			require.NoError(t, s.ResolveTempID(ctx, add.ID, "temp_1", confirmed))

			_, err = s.GetItem(ctx, "temp_1")
			assert.ErrorIs(t, err, ErrNotFound)

			items, err := s.GetItemsByList(ctx, "l1")
			require.NoError(t, err)
			assert.Equal(t, []string{"S1"}, itemIDs(items))

			ops, err := s.GetOperations(ctx)
			require.NoError(t, err)
			assert.Equal(t, []string{"S1", "other"}, operationTargets(ops))

			update, ok := ops[0].Payload.(models.UpdateItemPayload)
			require.True(t, ok)
			require.NotNil(t, update.Updates.Name)
			assert.Equal(t, "Oat milk", *update.Updates.Name)
		})
	}
}

func TestLocalStore_DiscardItem(t *testing.T) {
	for name, s := range localStores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			temp := testItem("temp_1", "l1", 0).WithStatus(models.SyncStatusPending)

			_, err := s.Enqueue(ctx, models.AddItemPayload{ListID: "l1", Item: temp}, baseTime,
				models.ItemChange{Put: []models.Item{temp}})
			require.NoError(t, err)
			_, err = s.Enqueue(ctx, models.ToggleItemPayload{ItemID: "temp_1", IsBought: true}, baseTime.Add(time.Second), models.ItemChange{})
			require.NoError(t, err)
			_, err = s.Enqueue(ctx, models.DeleteItemPayload{ItemID: "i9"}, baseTime.Add(2*time.Second), models.ItemChange{})
			require.NoError(t, err)

			discarded, err := s.DiscardItem(ctx, "temp_1")
			require.NoError(t, err)
			assert.Equal(t, 2, discarded)

			_, err = s.GetItem(ctx, "temp_1")
			assert.ErrorIs(t, err, ErrNotFound)

			ops, err := s.GetOperations(ctx)
			require.NoError(t, err)
			assert.Equal(t, []string{"i9"}, operationTargets(ops))

			require.NoError(t, s.ClearOperations(ctx))
			count, err := s.CountOperations(ctx)
			require.NoError(t, err)
			assert.Zero(t, count)
		})
	}
}

// ── durability ────────────────────────────────────────────────────────────────

func TestSQLiteStore_QueueSurvivesReopen(t *testing.T) {
	ctx := context.Background()
	dsn := filepath.Join(t.TempDir(), "nested", "shopman.db")

	first := openSQLiteStore(t, dsn)
	op, err := first.Enqueue(ctx, models.ToggleItemPayload{ItemID: "i1", IsBought: true}, baseTime,
		models.ItemChange{Put: []models.Item{testItem("i1", "l1", 0).WithStatus(models.SyncStatusPending)}})
	require.NoError(t, err)
	require.NoError(t, first.UpdateRetries(ctx, op.ID, 2))
	require.NoError(t, first.Close())

	second := openSQLiteStore(t, dsn)
	ops, err := second.GetOperations(ctx)
	require.NoError(t, err)
	require.Len(t, ops, 1)
	assert.Equal(t, op.ID, ops[0].ID)
	assert.Equal(t, 2, ops[0].Retries)
	assert.True(t, ops[0].Timestamp.Equal(baseTime))

	item, err := second.GetItem(ctx, "i1")
	require.NoError(t, err)
	assert.Equal(t, models.SyncStatusPending, item.SyncStatus)
	assert.True(t, second.Durable())
}

func TestSQLiteStore_ManyItemsAreChunked(t *testing.T) {
	ctx := context.Background()
	s := openSQLiteStore(t, ":memory:")

	items := make([]models.Item, putItemsChunk*2+7)
	for i := range items {
		items[i] = testItem("i"+strconv.Itoa(i), "l1", time.Duration(i)*time.Millisecond)
	}
	require.NoError(t, s.PutItems(ctx, items...))

	stored, err := s.GetItemsByList(ctx, "l1")
	require.NoError(t, err)
	assert.Len(t, stored, len(items))
}
