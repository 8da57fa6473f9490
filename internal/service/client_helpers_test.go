package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/shopman/internal/logger"
	"github.com/MKhiriev/shopman/internal/mock"
	"github.com/MKhiriev/shopman/internal/state"
	"github.com/MKhiriev/shopman/internal/store"
	"github.com/MKhiriev/shopman/models"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testListID = "list-1"

// stubConnectivity: ручной Connectivity, переключается из теста.
type stubConnectivity struct {
	mu     sync.Mutex
	online bool
	subs   []func(bool)
}

func newStubConnectivity(online bool) *stubConnectivity {
	return &stubConnectivity{online: online}
}

func (c *stubConnectivity) IsOnline() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.online
}

func (c *stubConnectivity) Subscribe(fn func(bool)) func() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.subs = append(c.subs, fn)
	return func() {}
}

func (c *stubConnectivity) set(online bool) {
	c.mu.Lock()
	c.online = online
	subs := append([]func(bool){}, c.subs...)
	c.mu.Unlock()

	for _, fn := range subs {
		fn(online)
	}
}

// clientFixture: общий набор зависимостей клиентских сервисов.
type clientFixture struct {
	local        store.LocalStore
	remote       *mock.MockRemoteAuthority
	connectivity *stubConnectivity
	appStore     *state.AppStore
	engine       *syncEngine
}

// newClientFixture: хелпер: реальное in-memory хранилище, мок Remote Authority
func newClientFixture(t *testing.T, ctrl *gomock.Controller, online bool) *clientFixture {
	t.Helper()

	f := &clientFixture{
		local:        store.NewMemoryStore(),
		remote:       mock.NewMockRemoteAuthority(ctrl),
		connectivity: newStubConnectivity(online),
		appStore:     state.NewAppStore(),
	}
	f.engine = newSyncEngine(f.local, f.remote, f.connectivity, f.appStore, DefaultMaxRetries, logger.Nop())
	f.engine.now = tickingClock()
	return f
}

// openList caches list locally and makes it the current one.
func (f *clientFixture) openList(t *testing.T, list models.List) {
	t.Helper()
	require.NoError(t, f.local.PutList(context.Background(), list))
	f.appStore.SetCurrentList(&list)
}

// tickingClock returns a clock that advances a millisecond per call so
// queued operations keep a strict order.
func tickingClock() func() time.Time {
	var mu sync.Mutex
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	return func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		now = now.Add(time.Millisecond)
		return now
	}
}

func testList() models.List {
	return models.List{ID: testListID, Name: "Groceries", NameLowercase: "groceries"}
}

func tempItem(name string) models.Item {
	return models.Item{
		ID:         models.NewTempID(time.Now()),
		ListID:     testListID,
		Name:       name,
		Type:       models.ItemTypeDairy,
		SyncStatus: models.SyncStatusPending,
	}
}

func ptr[T any](v T) *T { return &v }
