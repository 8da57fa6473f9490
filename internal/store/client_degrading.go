// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/MKhiriev/shopman/internal/logger"
	"github.com/MKhiriev/shopman/models"
)

// durableStore joins the sqlite repositories into one [LocalStore].
type durableStore struct {
	ListRepository
	ItemRepository
	QueueRepository
}

// degradingStore forwards to the durable store until it reports
// [ErrStorageUnavailable]. From then on, for the rest of the session, every
// call is served by the in-memory fallback.
type degradingStore struct {
	mu       sync.RWMutex
	primary  LocalStore
	fallback LocalStore
	degraded bool
	logger   *logger.Logger
}

func newDegradingStore(primary, fallback LocalStore, log *logger.Logger) *degradingStore {
	return &degradingStore{
		primary:  primary,
		fallback: fallback,
		logger:   log,
	}
}

// Degraded reports whether the durable store has been abandoned.
func (d *degradingStore) Degraded() bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.degraded
}

func (d *degradingStore) current() (LocalStore, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.degraded {
		return d.fallback, true
	}
	return d.primary, false
}

func (d *degradingStore) degrade(ctx context.Context, fn string, cause error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.degraded {
		return
	}
	d.degraded = true

	logger.FromContext(ctx).Warn().
		Err(cause).
		Str("func", fn).
		Msg("durable store unavailable, continuing in memory for this session")
}

// call runs fn against the active store and repeats it on the fallback when
// the durable store fails.
func call[T any](ctx context.Context, d *degradingStore, name string, fn func(LocalStore) (T, error)) (T, error) {
	store, degraded := d.current()

	res, err := fn(store)
	if err == nil || degraded || !errors.Is(err, ErrStorageUnavailable) {
		return res, err
	}
	// the driver may report an interrupted query for a cancelled context
	if ctx.Err() != nil {
		return res, err
	}

	d.degrade(ctx, name, err)
	return fn(d.fallback)
}

func exec(ctx context.Context, d *degradingStore, name string, fn func(LocalStore) error) error {
	_, err := call(ctx, d, name, func(s LocalStore) (struct{}, error) {
		return struct{}{}, fn(s)
	})
	return err
}

func (d *degradingStore) GetList(ctx context.Context, listID string) (models.List, error) {
	return call(ctx, d, "GetList", func(s LocalStore) (models.List, error) { return s.GetList(ctx, listID) })
}

func (d *degradingStore) GetListByName(ctx context.Context, nameLowercase string) (models.List, error) {
	return call(ctx, d, "GetListByName", func(s LocalStore) (models.List, error) { return s.GetListByName(ctx, nameLowercase) })
}

func (d *degradingStore) GetAllLists(ctx context.Context) ([]models.List, error) {
	return call(ctx, d, "GetAllLists", func(s LocalStore) ([]models.List, error) { return s.GetAllLists(ctx) })
}

func (d *degradingStore) PutList(ctx context.Context, list models.List) error {
	return exec(ctx, d, "PutList", func(s LocalStore) error { return s.PutList(ctx, list) })
}

func (d *degradingStore) DeleteList(ctx context.Context, listID string) error {
	return exec(ctx, d, "DeleteList", func(s LocalStore) error { return s.DeleteList(ctx, listID) })
}

func (d *degradingStore) ClearLists(ctx context.Context) error {
	return exec(ctx, d, "ClearLists", func(s LocalStore) error { return s.ClearLists(ctx) })
}

func (d *degradingStore) GetItem(ctx context.Context, itemID string) (models.Item, error) {
	return call(ctx, d, "GetItem", func(s LocalStore) (models.Item, error) { return s.GetItem(ctx, itemID) })
}

func (d *degradingStore) GetAllItems(ctx context.Context) ([]models.Item, error) {
	return call(ctx, d, "GetAllItems", func(s LocalStore) ([]models.Item, error) { return s.GetAllItems(ctx) })
}

func (d *degradingStore) GetItemsByList(ctx context.Context, listID string) ([]models.Item, error) {
	return call(ctx, d, "GetItemsByList", func(s LocalStore) ([]models.Item, error) { return s.GetItemsByList(ctx, listID) })
}

func (d *degradingStore) GetItemsByStatus(ctx context.Context, status models.SyncStatus) ([]models.Item, error) {
	return call(ctx, d, "GetItemsByStatus", func(s LocalStore) ([]models.Item, error) { return s.GetItemsByStatus(ctx, status) })
}

func (d *degradingStore) PutItems(ctx context.Context, items ...models.Item) error {
	return exec(ctx, d, "PutItems", func(s LocalStore) error { return s.PutItems(ctx, items...) })
}

func (d *degradingStore) DeleteItem(ctx context.Context, itemID string) error {
	return exec(ctx, d, "DeleteItem", func(s LocalStore) error { return s.DeleteItem(ctx, itemID) })
}

func (d *degradingStore) DeleteItemsByList(ctx context.Context, listID string) error {
	return exec(ctx, d, "DeleteItemsByList", func(s LocalStore) error { return s.DeleteItemsByList(ctx, listID) })
}

func (d *degradingStore) ClearItems(ctx context.Context) error {
	return exec(ctx, d, "ClearItems", func(s LocalStore) error { return s.ClearItems(ctx) })
}

func (d *degradingStore) Enqueue(ctx context.Context, payload models.OperationPayload, at time.Time, change models.ItemChange) (models.Operation, error) {
	return call(ctx, d, "Enqueue", func(s LocalStore) (models.Operation, error) { return s.Enqueue(ctx, payload, at, change) })
}

func (d *degradingStore) GetOperations(ctx context.Context) ([]models.Operation, error) {
	return call(ctx, d, "GetOperations", func(s LocalStore) ([]models.Operation, error) { return s.GetOperations(ctx) })
}

func (d *degradingStore) CountOperations(ctx context.Context) (int, error) {
	return call(ctx, d, "CountOperations", func(s LocalStore) (int, error) { return s.CountOperations(ctx) })
}

func (d *degradingStore) UpdateRetries(ctx context.Context, operationID int64, retries int) error {
	return exec(ctx, d, "UpdateRetries", func(s LocalStore) error { return s.UpdateRetries(ctx, operationID, retries) })
}

func (d *degradingStore) RemoveOperation(ctx context.Context, operationID int64, change models.ItemChange) error {
	return exec(ctx, d, "RemoveOperation", func(s LocalStore) error { return s.RemoveOperation(ctx, operationID, change) })
}

func (d *degradingStore) ResolveTempID(ctx context.Context, operationID int64, tempID string, item models.Item) error {
	return exec(ctx, d, "ResolveTempID", func(s LocalStore) error { return s.ResolveTempID(ctx, operationID, tempID, item) })
}

func (d *degradingStore) DiscardItem(ctx context.Context, itemID string) (int, error) {
	return call(ctx, d, "DiscardItem", func(s LocalStore) (int, error) { return s.DiscardItem(ctx, itemID) })
}

func (d *degradingStore) ClearOperations(ctx context.Context) error {
	return exec(ctx, d, "ClearOperations", func(s LocalStore) error { return s.ClearOperations(ctx) })
}
