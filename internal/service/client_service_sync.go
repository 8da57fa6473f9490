package service

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/MKhiriev/shopman/internal/adapter"
	"github.com/MKhiriev/shopman/internal/logger"
	"github.com/MKhiriev/shopman/internal/state"
	"github.com/MKhiriev/shopman/internal/store"
	"github.com/MKhiriev/shopman/models"
)

// DefaultMaxRetries is the number of attempts a queued operation gets before
// it is dropped.
const DefaultMaxRetries = 3

type syncEngine struct {
	local        store.LocalStore
	remote       adapter.RemoteAuthority
	connectivity Connectivity
	appStore     *state.AppStore
	maxRetries   int
	now          func() time.Time

	syncing atomic.Bool
	kick    chan struct{}

	mu      sync.Mutex
	waiters map[int64]*Confirmation

	logger *logger.Logger
}

// NewSyncEngine constructs the [SyncEngine] over the durable local store and
// the Remote Authority. maxRetries below one selects [DefaultMaxRetries].
func NewSyncEngine(local store.LocalStore, remote adapter.RemoteAuthority, connectivity Connectivity, appStore *state.AppStore, maxRetries int, logger *logger.Logger) SyncEngine {
	return newSyncEngine(local, remote, connectivity, appStore, maxRetries, logger)
}

func newSyncEngine(local store.LocalStore, remote adapter.RemoteAuthority, connectivity Connectivity, appStore *state.AppStore, maxRetries int, logger *logger.Logger) *syncEngine {
	if maxRetries < 1 {
		maxRetries = DefaultMaxRetries
	}

	return &syncEngine{
		local:        local,
		remote:       remote,
		connectivity: connectivity,
		appStore:     appStore,
		maxRetries:   maxRetries,
		now:          time.Now,
		kick:         make(chan struct{}, 1),
		waiters:      make(map[int64]*Confirmation),
		logger:       logger,
	}
}

// Run implements [SyncEngine].
func (e *syncEngine) Run(ctx context.Context) {
	unsubscribe := e.connectivity.Subscribe(func(online bool) {
		e.appStore.SetOnline(online)
		if online {
			e.Trigger()
		}
	})
	defer unsubscribe()

	e.appStore.SetOnline(e.connectivity.IsOnline())
	e.RefreshPendingCount(ctx)
	if e.connectivity.IsOnline() {
		e.Trigger()
	}

	for {
		select {
		case <-ctx.Done():
			return
		case <-e.kick:
			e.Drain(ctx)
		}
	}
}

// Trigger implements [SyncEngine]. A trigger that finds one already pending
// is dropped.
func (e *syncEngine) Trigger() {
	select {
	case e.kick <- struct{}{}:
	default:
	}
}

// Enqueue implements [SyncEngine].
func (e *syncEngine) Enqueue(ctx context.Context, payload models.OperationPayload, change models.ItemChange) (models.Operation, *Confirmation, error) {
	op, err := e.local.Enqueue(ctx, payload, e.now(), change)
	if err != nil {
		e.logger.Err(err).
			Str("func", "syncEngine.Enqueue").
			Str("kind", string(payload.Kind())).
			Str("target_id", payload.TargetID()).
			Msg("failed to enqueue operation")
		return models.Operation{}, nil, err
	}

	confirmation := newConfirmation()
	e.mu.Lock()
	e.waiters[op.ID] = confirmation
	e.mu.Unlock()

	e.RefreshPendingCount(ctx)

	if e.connectivity.IsOnline() {
		e.Trigger()
	}

	return op, confirmation, nil
}

// Drain implements [SyncEngine].
func (e *syncEngine) Drain(ctx context.Context) bool {
	if !e.connectivity.IsOnline() {
		return false
	}
	if !e.syncing.CompareAndSwap(false, true) {
		return false
	}
	defer e.syncing.Store(false)

	// an operation already sent runs to completion even if ctx is cancelled
	opCtx := context.WithoutCancel(ctx)

	e.appStore.SetSyncing(true)
	defer func() {
		e.RefreshPendingCount(opCtx)
		e.appStore.SetSyncing(false)
	}()

	log := e.logger.With().Str("func", "syncEngine.Drain").Logger()

	operations, err := e.local.GetOperations(ctx)
	if err != nil {
		log.Err(err).Msg("failed to read operation queue")
		return true
	}
	log.Debug().Int("operations", len(operations)).Msg("drain pass started")

	// temp id -> server id, for payloads read before the queue was rewritten
	resolved := make(map[string]string)
	// temp ids whose creation failed in this pass
	unresolved := make(map[string]struct{})

	for i, op := range operations {
		if ctx.Err() != nil {
			log.Debug().Msg("drain pass interrupted")
			break
		}

		target := op.Payload.TargetID()
		if serverID, ok := resolved[target]; ok {
			op.Payload = op.Payload.WithTargetID(serverID)
		} else if _, ok = unresolved[target]; ok {
			log.Debug().Int64("operation_id", op.ID).Str("target_id", target).Msg("item not created yet, skipping")
			continue
		}

		if err = e.process(opCtx, op, operations[i+1:], resolved); err != nil {
			if models.IsTempID(target) {
				unresolved[target] = struct{}{}
			}
			e.fail(opCtx, op, err)
			continue
		}
		e.resolveWaiter(op.ID, nil)
	}

	e.appStore.SetLastSyncTime(e.now())
	log.Debug().Msg("drain pass finished")
	return true
}

// process sends op to the Remote Authority and reconciles the local store
// with the result. later holds the operations queued after op in this pass.
func (e *syncEngine) process(ctx context.Context, op models.Operation, later []models.Operation, resolved map[string]string) error {
	token := e.tokenFor(ctx, op.Payload)

	switch p := op.Payload.(type) {
	case models.AddItemPayload:
		created, err := e.remote.AddItem(ctx, p.ListID, p.Item.Fields(), token)
		if err != nil {
			return err
		}
		return e.confirmAdd(ctx, op, p, created, later, resolved)

	case models.UpdateItemPayload:
		updated, err := e.remote.UpdateItem(ctx, p.ItemID, p.Updates, token)
		if err != nil {
			return err
		}
		return e.confirmUpdate(ctx, op, updated, later, resolved)

	case models.ToggleItemPayload:
		isBought := p.IsBought
		updated, err := e.remote.UpdateItem(ctx, p.ItemID, models.ItemUpdate{IsBought: &isBought}, token)
		if err != nil {
			return err
		}
		return e.confirmUpdate(ctx, op, updated, later, resolved)

	case models.DeleteItemPayload:
		err := e.remote.DeleteItem(ctx, p.ItemID, token)
		if err != nil && !errors.Is(err, adapter.ErrNotFound) {
			return err
		}
		return e.local.RemoveOperation(ctx, op.ID, models.ItemChange{Delete: []string{p.ItemID}})

	default:
		return models.ErrUnknownOperationKind
	}
}

func (e *syncEngine) confirmAdd(ctx context.Context, op models.Operation, p models.AddItemPayload, created models.Item, later []models.Operation, resolved map[string]string) error {
	tempID := p.Item.ID
	item := created.WithStatus(models.SyncStatusSynced)

	// later edits of the temp item are still queued: keep the local version
	if hasOperationsFor(later, tempID, resolved) {
		if local, err := e.local.GetItem(ctx, tempID); err == nil {
			local.ID = created.ID
			local.ListID = created.ListID
			local.CreatedAt = created.CreatedAt
			item = local.WithStatus(models.SyncStatusPending)
		} else {
			item = created.WithStatus(models.SyncStatusPending)
		}
	}

	if err := e.local.ResolveTempID(ctx, op.ID, tempID, item); err != nil {
		return err
	}
	resolved[tempID] = created.ID

	if e.appStore.IsCurrent(p.ListID) {
		e.appStore.UpdateItem(tempID, item)
	}

	e.logger.Debug().
		Str("func", "syncEngine.confirmAdd").
		Str("temp_id", tempID).
		Str("item_id", created.ID).
		Msg("item created on remote authority")
	return nil
}

func (e *syncEngine) confirmUpdate(ctx context.Context, op models.Operation, updated models.Item, later []models.Operation, resolved map[string]string) error {
	itemID := op.Payload.TargetID()

	local, err := e.local.GetItem(ctx, itemID)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			return err
		}
		// deleted locally meanwhile; its DELETE is queued
		return e.local.RemoveOperation(ctx, op.ID, models.ItemChange{})
	}

	if hasOperationsFor(later, itemID, resolved) {
		return e.local.RemoveOperation(ctx, op.ID, models.ItemChange{})
	}

	item := local.WithStatus(models.SyncStatusSynced)
	if updated.ID == itemID {
		item = updated.WithStatus(models.SyncStatusSynced)
	}

	if err = e.local.RemoveOperation(ctx, op.ID, models.ItemChange{Put: []models.Item{item}}); err != nil {
		return err
	}

	if e.appStore.IsCurrent(item.ListID) {
		e.appStore.UpdateItem(itemID, item)
	}
	return nil
}

// fail records a failed attempt of op. Permission failures and operations
// that used up their attempts are dropped and their item marked as failed.
func (e *syncEngine) fail(ctx context.Context, op models.Operation, cause error) {
	log := e.logger.With().
		Str("func", "syncEngine.fail").
		Int64("operation_id", op.ID).
		Str("kind", string(op.Kind())).
		Str("target_id", op.Payload.TargetID()).
		Logger()

	if errors.Is(cause, adapter.ErrForbidden) {
		log.Warn().Err(cause).Msg("permission denied, dropping operation")
		e.drop(ctx, op, ErrPasswordRequired)
		return
	}

	retries := op.Retries + 1
	if retries >= e.maxRetries {
		log.Error().Err(cause).Int("retries", retries).Msg("max retries reached, dropping operation")
		e.drop(ctx, op, ErrRetriesExhausted)
		return
	}

	log.Warn().Err(cause).Int("retries", retries).Msg("operation failed, will retry")
	if err := e.local.UpdateRetries(ctx, op.ID, retries); err != nil && !errors.Is(err, store.ErrOperationNotFound) {
		log.Err(err).Msg("failed to persist retry count")
	}
}

func (e *syncEngine) drop(ctx context.Context, op models.Operation, reason error) {
	itemID := op.Payload.TargetID()

	var change models.ItemChange
	item, err := e.local.GetItem(ctx, itemID)
	if err == nil {
		item = item.WithStatus(models.SyncStatusError)
		change.Put = []models.Item{item}
	}

	if err = e.local.RemoveOperation(ctx, op.ID, change); err != nil {
		e.logger.Err(err).
			Str("func", "syncEngine.drop").
			Int64("operation_id", op.ID).
			Msg("failed to drop operation")
	}

	if len(change.Put) > 0 && e.appStore.IsCurrent(item.ListID) {
		e.appStore.UpdateItem(itemID, item)
	}

	e.resolveWaiter(op.ID, reason)
}

// tokenFor returns the access token held for the list the payload affects.
func (e *syncEngine) tokenFor(ctx context.Context, payload models.OperationPayload) string {
	listID := ""
	if add, ok := payload.(models.AddItemPayload); ok {
		listID = add.ListID
	} else if item, err := e.local.GetItem(ctx, payload.TargetID()); err == nil {
		listID = item.ListID
	}

	if listID == "" {
		return ""
	}
	token, _ := e.appStore.AccessToken(listID)
	return token.Token
}

// ReconcileItems implements [SyncEngine].
func (e *syncEngine) ReconcileItems(ctx context.Context, listID, token string) ([]models.Item, error) {
	log := e.logger.With().Str("func", "syncEngine.ReconcileItems").Str("list_id", listID).Logger()

	if !e.connectivity.IsOnline() {
		return e.local.GetItemsByList(ctx, listID)
	}

	serverItems, err := e.remote.GetItems(ctx, listID, token)
	if err != nil {
		if errors.Is(err, adapter.ErrForbidden) {
			return nil, ErrPasswordRequired
		}
		log.Warn().Err(err).Msg("failed to fetch items, using cache")
		return e.local.GetItemsByList(ctx, listID)
	}

	localItems, err := e.local.GetItemsByList(ctx, listID)
	if err != nil {
		log.Err(err).Msg("failed to read cached items")
		return nil, err
	}

	pending := make(map[string]models.Item)
	cached := make(map[string]models.Item, len(localItems))
	for _, item := range localItems {
		cached[item.ID] = item
		if item.SyncStatus == models.SyncStatusPending {
			pending[item.ID] = item
		}
	}

	merged := make([]models.Item, 0, len(serverItems)+len(pending))
	toPut := make([]models.Item, 0, len(serverItems))
	onServer := make(map[string]struct{}, len(serverItems))

	for _, item := range serverItems {
		onServer[item.ID] = struct{}{}
		if local, ok := pending[item.ID]; ok {
			merged = append(merged, local)
			continue
		}
		item = item.WithStatus(models.SyncStatusSynced)
		toPut = append(toPut, item)
		merged = append(merged, item)
	}

	for _, item := range localItems {
		if item.SyncStatus == models.SyncStatusPending && models.IsTempID(item.ID) {
			merged = append(merged, item)
		}
	}

	if err = e.local.PutItems(ctx, toPut...); err != nil {
		log.Err(err).Msg("failed to cache server items")
	}

	// confirmed items the server no longer has
	for id, item := range cached {
		if _, ok := onServer[id]; ok || item.SyncStatus != models.SyncStatusSynced {
			continue
		}
		if err = e.local.DeleteItem(ctx, id); err != nil {
			log.Err(err).Str("item_id", id).Msg("failed to evict stale item")
		}
	}

	return merged, nil
}

// Discard implements [SyncEngine].
func (e *syncEngine) Discard(ctx context.Context, itemID string) error {
	operations, err := e.local.GetOperations(ctx)
	if err != nil {
		return err
	}

	if _, err = e.local.DiscardItem(ctx, itemID); err != nil {
		e.logger.Err(err).Str("func", "syncEngine.Discard").Str("item_id", itemID).Msg("failed to discard item")
		return err
	}

	for _, op := range operations {
		if op.Payload.TargetID() == itemID {
			e.resolveWaiter(op.ID, ErrOperationDiscarded)
		}
	}

	e.RefreshPendingCount(ctx)
	return nil
}

// RefreshPendingCount implements [SyncEngine].
func (e *syncEngine) RefreshPendingCount(ctx context.Context) int {
	count, err := e.local.CountOperations(ctx)
	if err != nil {
		e.logger.Err(err).Str("func", "syncEngine.RefreshPendingCount").Msg("failed to count queue")
		return e.appStore.SyncState().PendingCount
	}

	e.appStore.SetPendingCount(count)
	return count
}

func (e *syncEngine) resolveWaiter(operationID int64, err error) {
	e.mu.Lock()
	confirmation, ok := e.waiters[operationID]
	delete(e.waiters, operationID)
	e.mu.Unlock()

	if ok {
		confirmation.resolve(err)
	}
}

// hasOperationsFor reports whether any of operations targets itemID,
// directly or through a temp id already resolved to it.
func hasOperationsFor(operations []models.Operation, itemID string, resolved map[string]string) bool {
	for _, op := range operations {
		target := op.Payload.TargetID()
		if serverID, ok := resolved[target]; ok {
			target = serverID
		}
		if target == itemID {
			return true
		}
	}
	return false
}
