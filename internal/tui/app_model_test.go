package tui

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/MKhiriev/shopman/internal/adapter"
	"github.com/MKhiriev/shopman/internal/service"
	"github.com/MKhiriev/shopman/internal/state"
	"github.com/MKhiriev/shopman/internal/store"
	"github.com/MKhiriev/shopman/models"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubLists overrides only the calls the tests make; anything else panics
// on the nil embedded interface.
type stubLists struct {
	service.ClientListService
	openList func(name string) (models.List, error)
	verified []models.AccessAction
}

func (s *stubLists) OpenList(_ context.Context, name string) (models.List, error) {
	return s.openList(name)
}

func (s *stubLists) FollowedLists(context.Context) ([]models.List, error) {
	return []models.List{{ID: "f1", Name: "Дача", IsFollowed: true}}, nil
}

func (s *stubLists) VerifyPassword(_ context.Context, _ string, _ string, action models.AccessAction) error {
	s.verified = append(s.verified, action)
	return nil
}

type stubItems struct {
	service.ClientItemService
	toggled []string
	added   []models.ItemFields
	updates []models.ItemUpdate
	err     error
}

func (s *stubItems) ToggleItem(_ context.Context, itemID string) (models.Item, *service.Confirmation, error) {
	s.toggled = append(s.toggled, itemID)
	return models.Item{ID: itemID}, nil, s.err
}

func (s *stubItems) AddItem(_ context.Context, fields models.ItemFields) (models.Item, *service.Confirmation, error) {
	s.added = append(s.added, fields)
	return models.Item{Name: fields.Name}, nil, s.err
}

func (s *stubItems) UpdateItem(_ context.Context, itemID string, update models.ItemUpdate) (models.Item, *service.Confirmation, error) {
	s.updates = append(s.updates, update)
	return models.Item{ID: itemID}, nil, s.err
}

type stubArchives struct {
	service.ClientArchiveService
	archived int
}

func (s *stubArchives) ArchiveBought(context.Context) (models.BulkResult, error) {
	s.archived++
	return models.BulkResult{Success: true, Archive: &models.Archive{Items: []models.Item{{ID: "a"}, {ID: "b"}}}}, nil
}

func (s *stubArchives) LastUndo() (models.UndoData, bool) {
	return models.UndoData{}, false
}

type testDeps struct {
	lists    *stubLists
	items    *stubItems
	archives *stubArchives
}

func newTestModel(t *testing.T, snapshot state.Snapshot) (appModel, testDeps) {
	t.Helper()

	deps := testDeps{
		lists: &stubLists{openList: func(name string) (models.List, error) {
			return models.List{ID: "l1", Name: name}, nil
		}},
		items:    &stubItems{},
		archives: &stubArchives{},
	}
	services := &service.ClientServices{
		ListService:    deps.lists,
		ItemService:    deps.items,
		ArchiveService: deps.archives,
	}

	// отменённый контекст: ожидание снапшотов возвращается сразу
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	m := newAppModel(ctx, services, make(chan state.Snapshot, 1), snapshot, models.NewAppBuildInfo("1.0.0", "", ""), "")
	return m, deps
}

func listSnapshot(items ...models.Item) state.Snapshot {
	return state.Snapshot{
		CurrentList: &models.List{ID: "l1", Name: "Семья"},
		Items:       items,
		Sync:        models.SyncState{IsOnline: true},
	}
}

// update feeds msg into the model and runs the returned command once,
// feeding its message back as well.
func update(t *testing.T, m appModel, msg tea.Msg) appModel {
	t.Helper()

	next, cmd := m.Update(msg)
	m = next.(appModel)
	if cmd == nil {
		return m
	}
	if out := cmd(); out != nil {
		if _, isBatch := out.(tea.BatchMsg); !isBatch {
			next, _ = m.Update(out)
			m = next.(appModel)
		}
	}
	return m
}

func keyPress(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func typeText(t *testing.T, m appModel, text string) appModel {
	t.Helper()
	for _, r := range text {
		next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		m = next.(appModel)
	}
	return m
}

// ── open list ──

func TestOpenList_Success(t *testing.T) {
	m, _ := newTestModel(t, state.Snapshot{})

	m = typeText(t, m, "Семья")
	m = update(t, m, keyPress("enter"))

	assert.Equal(t, screenList, m.currentScreen)
	assert.False(t, m.open.submitting)
}

func TestOpenList_NotFound(t *testing.T) {
	m, deps := newTestModel(t, state.Snapshot{})
	deps.lists.openList = func(name string) (models.List, error) {
		return models.List{}, fmt.Errorf("list %q: %w", name, store.ErrNotFound)
	}

	m = typeText(t, m, "нет такого")
	m = update(t, m, keyPress("enter"))

	assert.Equal(t, screenOpen, m.currentScreen)
	assert.Equal(t, "нет такого", m.open.lastMissing)
	assert.Contains(t, m.View(), "ctrl+n")
}

func TestOpenList_PasswordRequired(t *testing.T) {
	m, deps := newTestModel(t, state.Snapshot{})
	deps.lists.openList = func(name string) (models.List, error) {
		return models.List{ID: "l9", Name: name, ViewRequiresPassword: true}, service.ErrPasswordRequired
	}

	m = typeText(t, m, "Секрет")
	m = update(t, m, keyPress("enter"))

	require.Equal(t, screenPassword, m.currentScreen)
	assert.Equal(t, models.AccessView, m.password.action)
	assert.Equal(t, "l9", m.password.list.ID)

	// пароль отправляется, после чего список открывается заново
	m = typeText(t, m, "pw")
	m = update(t, m, keyPress("enter"))
	assert.Equal(t, []models.AccessAction{models.AccessView}, deps.lists.verified)
}

func TestOpenList_EmptyName(t *testing.T) {
	m, _ := newTestModel(t, state.Snapshot{})

	m = update(t, m, keyPress("enter"))

	assert.True(t, m.showError)
	assert.Equal(t, "Введите название списка", m.errorOverlay.message)
}

// ── list screen ──

func TestList_ToggleItem(t *testing.T) {
	m, deps := newTestModel(t, listSnapshot(models.Item{ID: "a", Name: "Молоко"}))
	m.currentScreen = screenList

	m = update(t, m, keyPress(" "))

	assert.Equal(t, []string{"a"}, deps.items.toggled)
}

func TestList_EditProtectedAsksPassword(t *testing.T) {
	m, deps := newTestModel(t, listSnapshot(models.Item{ID: "a", Name: "Молоко"}))
	m.currentScreen = screenList
	deps.items.err = service.ErrPasswordRequired

	m = update(t, m, keyPress("x"))

	assert.Equal(t, screenPassword, m.currentScreen)
	assert.Equal(t, models.AccessEdit, m.password.action)
}

func TestList_ArchiveBought(t *testing.T) {
	m, deps := newTestModel(t, listSnapshot(models.Item{ID: "a", Name: "Молоко", IsBought: true}))
	m.currentScreen = screenList

	m = update(t, m, keyPress("a"))

	assert.Equal(t, 1, deps.archives.archived)
	assert.Contains(t, m.list.status, "2")
}

func TestList_DeleteAllNeedsConfirmation(t *testing.T) {
	m, _ := newTestModel(t, listSnapshot(models.Item{ID: "a", Name: "Молоко"}))
	m.currentScreen = screenList

	m = update(t, m, keyPress("D"))
	require.True(t, m.showConfirm)
	assert.Equal(t, actionDeleteAll, m.pending)

	m = update(t, m, keyPress("n"))
	assert.False(t, m.showConfirm)
	assert.Equal(t, actionNone, m.pending)
}

func TestList_UndoWithoutHistory(t *testing.T) {
	m, _ := newTestModel(t, listSnapshot())
	m.currentScreen = screenList

	next, _ := m.Update(keyPress("u"))

	assert.Equal(t, "Нечего отменять", next.(appModel).list.status)
}

func TestList_SnapshotKeepsCursorOnItem(t *testing.T) {
	m, _ := newTestModel(t, listSnapshot(
		models.Item{ID: "a", Name: "Хлеб", Type: models.ItemTypeBakery},
		models.Item{ID: "b", Name: "Молоко", Type: models.ItemTypeDairy},
	))
	m.currentScreen = screenList
	m.list.idx = 1 // bakery sorts after dairy

	m = update(t, m, snapshotMsg{snapshot: listSnapshot(
		models.Item{ID: "c", Name: "Яблоки", Type: models.ItemTypeProduce},
		models.Item{ID: "a", Name: "Хлеб", Type: models.ItemTypeBakery},
		models.Item{ID: "b", Name: "Молоко", Type: models.ItemTypeDairy},
	)})

	item, ok := m.list.current()
	require.True(t, ok)
	assert.Equal(t, "a", item.ID)
}

// ── item form ──

func TestItemForm_AddItem(t *testing.T) {
	m, deps := newTestModel(t, listSnapshot())
	m.currentScreen = screenList

	m = update(t, m, keyPress("n"))
	require.Equal(t, screenItemForm, m.currentScreen)

	m = typeText(t, m, " Кефир ")
	m = update(t, m, keyPress("tab"))
	m = update(t, m, keyPress("tab"))
	m = update(t, m, keyPress("right"))
	m = update(t, m, keyPress("right"))
	m = update(t, m, keyPress("enter"))

	require.Len(t, deps.items.added, 1)
	assert.Equal(t, models.ItemFields{Name: "Кефир", Type: models.ItemTypeDairy}, deps.items.added[0])
	assert.Equal(t, screenList, m.currentScreen)
}

func TestItemForm_UpdateSendsOnlyChanges(t *testing.T) {
	original := models.Item{ID: "a", Name: "Молоко", Amount: "1 л", Type: models.ItemTypeDairy}
	form := newItemFormModel(&original)
	form.inputs[itemFieldAmount].SetValue("2 л")

	u := form.update()

	require.NotNil(t, u.Amount)
	assert.Equal(t, "2 л", *u.Amount)
	assert.Nil(t, u.Name)
	assert.Nil(t, u.Type)
	assert.Nil(t, u.Note)
}

func TestItemForm_RequiresName(t *testing.T) {
	m, deps := newTestModel(t, listSnapshot())
	m.currentScreen = screenItemForm
	m.itemForm = newItemFormModel(nil)

	m = update(t, m, keyPress("enter"))

	assert.Empty(t, deps.items.added)
	assert.Equal(t, "Введите название товара", m.errorOverlay.message)
}

// ── views and helpers ──

func TestListView_GroupsByCategory(t *testing.T) {
	lm := newListModel(listSnapshot(
		models.Item{ID: "1", Name: "Мыло", Type: models.ItemTypeHousehold},
		models.Item{ID: "2", Name: "Сыр", Type: models.ItemTypeDairy},
		models.Item{ID: "3", Name: "Что-то"},
		models.Item{ID: "4", Name: "Творог", Type: models.ItemTypeDairy, SyncStatus: models.SyncStatusPending},
	))

	view := lm.View()

	dairy := strings.Index(view, "Молочное")
	household := strings.Index(view, "Для дома")
	uncategorized := strings.Index(view, "Без категории")
	require.True(t, dairy >= 0 && household >= 0 && uncategorized >= 0)
	assert.Less(t, dairy, household)
	assert.Less(t, household, uncategorized)
	assert.Contains(t, view, "онлайн")
}

func TestShareText_SkipsBought(t *testing.T) {
	lm := newListModel(listSnapshot(
		models.Item{ID: "1", Name: "Сыр", Amount: "200 г"},
		models.Item{ID: "2", Name: "Хлеб", IsBought: true},
	))

	assert.Equal(t, "Семья\n- Сыр (200 г)\n", lm.shareText())
}

func TestOfferLatest_KeepsNewest(t *testing.T) {
	ch := make(chan state.Snapshot, 1)

	offerLatest(ch, state.Snapshot{Error: "first"})
	offerLatest(ch, state.Snapshot{Error: "second"})

	assert.Equal(t, "second", (<-ch).Error)
}

func TestHumanizeError(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{err: fmt.Errorf("wrap: %w", service.ErrOffline), want: "Нет связи с сервером, действие доступно только онлайн"},
		{err: fmt.Errorf("create: %w", adapter.ErrConflict), want: "Список с таким названием уже существует"},
		{err: fmt.Errorf("get: %w", adapter.ErrNetwork), want: "Отсутствует сеть или Сервер недоступен"},
		{err: fmt.Errorf("boom"), want: "boom"},
		{err: nil, want: ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, humanizeError(tt.err))
	}
}

func TestFitText(t *testing.T) {
	assert.Equal(t, "Молоко", fitText("Молоко", 10))
	assert.Equal(t, "Мол...", fitText("Молоко пастеризованное", 6))
	assert.Equal(t, "Мо", fitText("Молоко", 2))
}
