package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/shopman/internal/service"
	"github.com/MKhiriev/shopman/internal/state"
	"github.com/MKhiriev/shopman/internal/store"
	"github.com/MKhiriev/shopman/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type screen int

const (
	screenOpen screen = iota
	screenCreate
	screenList
	screenItemForm
	screenPassword
	screenArchives
)

type pendingAction int

const (
	actionNone pendingAction = iota
	actionDeleteItem
	actionDeleteBought
	actionDeleteAll
	actionDeleteArchive
)

type appModel struct {
	ctx       context.Context
	services  *service.ClientServices
	snapshots <-chan state.Snapshot
	buildInfo models.AppBuildInfo

	currentScreen screen
	initialList   string

	open     openModel
	create   createListModel
	list     listModel
	itemForm itemFormModel
	password passwordFormModel
	archives archivesModel

	showError     bool
	errorOverlay  errorOverlayModel
	showConfirm   bool
	confirm       confirmModel
	pending       pendingAction
	pendingID     string
	showBuildInfo bool
	quitByUser    bool
}

func newAppModel(ctx context.Context, services *service.ClientServices, snapshots <-chan state.Snapshot, initial state.Snapshot, buildInfo models.AppBuildInfo, listName string) appModel {
	return appModel{
		ctx:           ctx,
		services:      services,
		snapshots:     snapshots,
		buildInfo:     buildInfo,
		currentScreen: screenOpen,
		initialList:   strings.TrimSpace(listName),
		open:          newOpenModel(),
		list:          newListModel(initial),
	}
}

func (m appModel) Init() tea.Cmd {
	cmds := []tea.Cmd{textinput.Blink, m.waitForSnapshot(), m.cmdLoadFollowed()}
	if m.initialList != "" {
		cmds = append(cmds, m.cmdOpenList(m.initialList))
	}
	return tea.Batch(cmds...)
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.quitByUser = true
			return m, tea.Quit
		}
		if m.showError {
			if key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc) {
				m.showError = false
				m.errorOverlay.message = ""
			}
			return m, nil
		}
		if m.showBuildInfo {
			if key.Matches(msg, keys.esc) || key.Matches(msg, keys.info) {
				m.showBuildInfo = false
			}
			return m, nil
		}
		if m.showConfirm {
			return m.updateConfirm(msg)
		}
	case snapshotMsg:
		m.list.setSnapshot(msg.snapshot)
		cmds := []tea.Cmd{m.waitForSnapshot()}
		if msg.snapshot.Sync.IsSyncing {
			cmds = append(cmds, m.list.spinner.Tick)
		}
		return m, tea.Batch(cmds...)
	case spinner.TickMsg:
		if !m.list.snapshot.Sync.IsSyncing {
			return m, nil
		}
		var cmd tea.Cmd
		m.list.spinner, cmd = m.list.spinner.Update(msg)
		return m, cmd
	case listOpenedMsg:
		return m.handleListOpened(msg)
	case listCreatedMsg:
		m.create.submitting = false
		if msg.err != nil {
			m.showErrorf(humanizeError(msg.err))
			return m, nil
		}
		m.open.lastMissing = ""
		return m, m.cmdOpenList(msg.list.Name)
	case followedListsMsg:
		if msg.err == nil {
			m.open.followed = msg.lists
		}
		return m, nil
	case passwordVerifiedMsg:
		m.password.submitting = false
		if msg.err != nil {
			m.showErrorf(humanizeError(msg.err))
			return m, nil
		}
		if m.password.action == models.AccessView {
			return m, m.cmdOpenList(m.password.list.Name)
		}
		m.currentScreen = screenList
		m.list.status = "Изменение списка разрешено"
		return m, cmdClearStatus()
	case mutationMsg:
		return m.handleMutation(msg)
	case confirmationMsg:
		if msg.err != nil {
			m.showErrorf(fmt.Sprintf("«%s»: %s", msg.name, humanizeError(msg.err)))
		}
		return m, nil
	case bulkDoneMsg:
		return m.handleBulkDone(msg)
	case undoDoneMsg:
		if msg.err != nil {
			m.showErrorf(humanizeError(msg.err))
			return m, nil
		}
		m.list.status = fmt.Sprintf("Восстановлено товаров: %d", msg.result.RestoredCount)
		return m, cmdClearStatus()
	case archivesLoadedMsg:
		m.archives.loading = false
		if msg.err != nil {
			m.currentScreen = screenList
			m.showErrorf(humanizeError(msg.err))
			return m, nil
		}
		m.archives.archives = msg.archives
		if m.archives.idx >= len(msg.archives) {
			m.archives.idx = max(len(msg.archives)-1, 0)
		}
		return m, nil
	case followChangedMsg:
		if msg.err != nil {
			m.showErrorf(humanizeError(msg.err))
			return m, nil
		}
		if msg.followed {
			m.list.status = "Список добавлен в отслеживаемые"
		} else {
			m.list.status = "Список больше не отслеживается"
		}
		return m, tea.Batch(cmdClearStatus(), m.cmdLoadFollowed())
	case copiedMsg:
		m.list.status = "Скопировано!"
		return m, cmdClearStatus()
	case clearStatusMsg:
		m.list.status = ""
		return m, nil
	case tea.WindowSizeMsg:
		return m, nil
	}

	switch m.currentScreen {
	case screenOpen:
		return m.updateOpen(msg)
	case screenCreate:
		return m.updateCreate(msg)
	case screenList:
		return m.updateList(msg)
	case screenItemForm:
		return m.updateItemForm(msg)
	case screenPassword:
		return m.updatePassword(msg)
	case screenArchives:
		return m.updateArchives(msg)
	}

	return m, nil
}

func (m appModel) View() string {
	if m.showBuildInfo {
		return appStyle.Render(renderBuildInfoWindow(m.buildInfo))
	}

	var body string
	switch m.currentScreen {
	case screenOpen:
		body = m.open.View()
	case screenCreate:
		body = m.create.View()
	case screenList:
		body = m.list.View()
	case screenItemForm:
		body = m.itemForm.View()
	case screenPassword:
		body = m.password.View()
	case screenArchives:
		body = m.archives.View()
	}

	if m.showConfirm {
		body += "\n\n" + m.confirm.View()
	}
	if m.showError {
		body += "\n\n" + m.errorOverlay.View()
	}

	return appStyle.Render(body)
}

func (m *appModel) showErrorf(message string) {
	m.showError = true
	m.errorOverlay.message = message
}

func (m *appModel) askConfirm(action pendingAction, id, message string) {
	m.showConfirm = true
	m.pending = action
	m.pendingID = id
	m.confirm.message = message
}

func (m appModel) currentList() (models.List, bool) {
	list := m.list.snapshot.CurrentList
	if list == nil {
		return models.List{}, false
	}
	return *list, true
}

func (m appModel) askPassword(action models.AccessAction) (appModel, tea.Cmd) {
	list, ok := m.currentList()
	if !ok {
		return m, nil
	}
	m.password = newPasswordFormModel(list, action)
	m.currentScreen = screenPassword
	return m, textinput.Blink
}

// ── result handlers ──

func (m appModel) handleListOpened(msg listOpenedMsg) (tea.Model, tea.Cmd) {
	m.open.submitting = false

	switch {
	case msg.err == nil:
		if m.currentScreen != screenList {
			m.currentScreen = screenList
			m.list.idx = 0
		}
		return m, nil
	case errors.Is(msg.err, service.ErrPasswordRequired) && msg.list.ID != "":
		m.password = newPasswordFormModel(msg.list, models.AccessView)
		m.currentScreen = screenPassword
		return m, textinput.Blink
	case errors.Is(msg.err, store.ErrNotFound):
		m.currentScreen = screenOpen
		m.open.lastMissing = msg.name
		return m, nil
	}

	m.showErrorf(humanizeError(msg.err))
	return m, nil
}

func (m appModel) handleMutation(msg mutationMsg) (tea.Model, tea.Cmd) {
	m.itemForm.submitting = false
	if msg.err != nil {
		if errors.Is(msg.err, service.ErrPasswordRequired) {
			return m.askPassword(models.AccessEdit)
		}
		m.showErrorf(humanizeError(msg.err))
		return m, nil
	}

	if m.currentScreen == screenItemForm {
		m.currentScreen = screenList
	}
	if msg.confirmation == nil {
		return m, nil
	}
	return m, m.cmdAwaitConfirmation(msg.name, msg.confirmation)
}

func (m appModel) handleBulkDone(msg bulkDoneMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		if errors.Is(msg.err, service.ErrPasswordRequired) {
			return m.askPassword(models.AccessEdit)
		}
		m.showErrorf(humanizeError(msg.err))
		return m, nil
	}

	switch msg.action {
	case actionDeleteArchive:
		m.list.status = "Архив удалён. u отменить"
		return m, tea.Batch(cmdClearStatus(), m.cmdLoadArchives())
	case actionDeleteBought, actionDeleteAll:
		m.list.status = fmt.Sprintf("Удалено товаров: %d. u отменить", msg.result.DeletedCount)
	default:
		archived := 0
		if msg.result.Archive != nil {
			archived = len(msg.result.Archive.Items)
		}
		m.list.status = fmt.Sprintf("В архив перенесено товаров: %d. u отменить", archived)
	}
	return m, cmdClearStatus()
}

// ── screens ──

func (m appModel) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.yes):
		m.showConfirm = false
		action, id := m.pending, m.pendingID
		m.pending, m.pendingID = actionNone, ""
		switch action {
		case actionDeleteItem:
			return m, m.cmdDeleteItem(id)
		case actionDeleteBought, actionDeleteAll, actionDeleteArchive:
			return m, m.cmdBulk(action, id)
		}
	case key.Matches(msg, keys.no), key.Matches(msg, keys.esc):
		m.showConfirm = false
		m.pending, m.pendingID = actionNone, ""
	}
	return m, nil
}

func (m appModel) updateOpen(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			if m.list.snapshot.CurrentList != nil {
				m.currentScreen = screenList
			}
			return m, nil
		case key.Matches(keyMsg, keys.tab), key.Matches(keyMsg, keys.backtab):
			m.open.setBrowsing(!m.open.browsing)
			return m, nil
		case keyMsg.String() == "ctrl+n":
			m.create = newCreateListModel(m.open.input.Value())
			m.currentScreen = screenCreate
			return m, textinput.Blink
		case key.Matches(keyMsg, keys.enter):
			if m.open.submitting {
				return m, nil
			}
			name := strings.TrimSpace(m.open.input.Value())
			if list, ok := m.open.selected(); ok {
				name = list.Name
			}
			if name == "" {
				m.showErrorf(humanizeError(service.ErrEmptyListName))
				return m, nil
			}
			m.open.submitting = true
			m.open.lastMissing = ""
			return m, m.cmdOpenList(name)
		}

		if m.open.browsing {
			switch {
			case key.Matches(keyMsg, keys.up):
				if m.open.idx > 0 {
					m.open.idx--
				}
			case key.Matches(keyMsg, keys.down):
				if m.open.idx < len(m.open.followed)-1 {
					m.open.idx++
				}
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.open.input, cmd = m.open.input.Update(msg)
	return m, cmd
}

func (m appModel) updateCreate(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = screenOpen
			return m, nil
		case key.Matches(keyMsg, keys.tab), key.Matches(keyMsg, keys.down):
			m.create.setFocus(m.create.focus + 1)
			return m, nil
		case key.Matches(keyMsg, keys.backtab), key.Matches(keyMsg, keys.up):
			m.create.setFocus(m.create.focus - 1)
			return m, nil
		case key.Matches(keyMsg, keys.toggle):
			if m.create.toggle() {
				return m, nil
			}
		case key.Matches(keyMsg, keys.enter):
			if m.create.submitting {
				return m, nil
			}
			req := m.create.request()
			if req.Name == "" {
				m.showErrorf(humanizeError(service.ErrEmptyListName))
				return m, nil
			}
			m.create.submitting = true
			return m, m.cmdCreateList(req)
		}
	}

	var cmd tea.Cmd
	switch m.create.focus {
	case createFieldName:
		m.create.name, cmd = m.create.name.Update(msg)
	case createFieldPassword:
		m.create.password, cmd = m.create.password.Update(msg)
	}
	return m, cmd
}

func (m appModel) updateList(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	item, hasItem := m.list.current()

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.list.idx > 0 {
			m.list.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.list.idx < len(m.list.snapshot.Items)-1 {
			m.list.idx++
		}
	case key.Matches(keyMsg, keys.quit):
		m.quitByUser = true
		return m, tea.Quit
	case key.Matches(keyMsg, keys.info):
		m.showBuildInfo = true
	case key.Matches(keyMsg, keys.newItem):
		m.itemForm = newItemFormModel(nil)
		m.currentScreen = screenItemForm
		return m, textinput.Blink
	case key.Matches(keyMsg, keys.edit):
		if hasItem {
			m.itemForm = newItemFormModel(&item)
			m.currentScreen = screenItemForm
			return m, textinput.Blink
		}
	case key.Matches(keyMsg, keys.toggle):
		if hasItem {
			return m, m.cmdToggleItem(item)
		}
	case key.Matches(keyMsg, keys.delete):
		if hasItem {
			m.askConfirm(actionDeleteItem, item.ID, "Удалить «"+item.Name+"»")
		}
	case key.Matches(keyMsg, keys.archive):
		return m, m.cmdArchiveBought()
	case key.Matches(keyMsg, keys.deleteBought):
		m.askConfirm(actionDeleteBought, "", "Удалить купленные товары")
	case key.Matches(keyMsg, keys.deleteAll):
		m.askConfirm(actionDeleteAll, "", "Удалить все товары")
	case key.Matches(keyMsg, keys.undo):
		if _, ok := m.services.ArchiveService.LastUndo(); !ok {
			m.list.status = "Нечего отменять"
			return m, cmdClearStatus()
		}
		return m, m.cmdUndo()
	case key.Matches(keyMsg, keys.archives):
		m.archives = archivesModel{loading: true}
		m.currentScreen = screenArchives
		return m, m.cmdLoadArchives()
	case key.Matches(keyMsg, keys.refresh):
		return m, m.cmdRefresh()
	case key.Matches(keyMsg, keys.follow):
		if list, ok := m.currentList(); ok {
			return m, m.cmdToggleFollow(list)
		}
	case key.Matches(keyMsg, keys.password):
		return m.askPassword(models.AccessEdit)
	case key.Matches(keyMsg, keys.copy):
		return m, cmdCopyToClipboard(m.list.shareText())
	case key.Matches(keyMsg, keys.switchList):
		m.open = newOpenModel()
		m.currentScreen = screenOpen
		return m, tea.Batch(textinput.Blink, m.cmdLoadFollowed())
	}

	return m, nil
}

func (m appModel) updateItemForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = screenList
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.itemForm.setFocus(m.itemForm.focus + 1)
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.itemForm.setFocus(m.itemForm.focus - 1)
			return m, nil
		case m.itemForm.focus == itemFieldType && key.Matches(keyMsg, keys.left):
			m.itemForm.cycleType(-1)
			return m, nil
		case m.itemForm.focus == itemFieldType && key.Matches(keyMsg, keys.right):
			m.itemForm.cycleType(1)
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.itemForm.submitting {
				return m, nil
			}
			fields := m.itemForm.fields()
			if fields.Name == "" {
				m.showErrorf(humanizeError(service.ErrEmptyItemName))
				return m, nil
			}
			if !m.itemForm.editing {
				m.itemForm.submitting = true
				return m, m.cmdAddItem(fields)
			}
			update := m.itemForm.update()
			if update.IsEmpty() {
				m.currentScreen = screenList
				return m, nil
			}
			m.itemForm.submitting = true
			return m, m.cmdUpdateItem(m.itemForm.original, update)
		}
	}

	in := m.itemForm.focused()
	if in == nil {
		return m, nil
	}
	var cmd tea.Cmd
	*in, cmd = in.Update(msg)
	return m, cmd
}

func (m appModel) updatePassword(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			if m.password.action == models.AccessView {
				m.currentScreen = screenOpen
			} else {
				m.currentScreen = screenList
			}
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.password.submitting {
				return m, nil
			}
			if m.password.input.Value() == "" {
				m.showErrorf(humanizeError(service.ErrWrongPassword))
				return m, nil
			}
			m.password.submitting = true
			return m, m.cmdVerifyPassword(m.password.list.ID, m.password.input.Value(), m.password.action)
		}
	}

	var cmd tea.Cmd
	m.password.input, cmd = m.password.input.Update(msg)
	return m, cmd
}

func (m appModel) updateArchives(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		m.currentScreen = screenList
	case key.Matches(keyMsg, keys.up):
		if m.archives.idx > 0 {
			m.archives.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.archives.idx < len(m.archives.archives)-1 {
			m.archives.idx++
		}
	case key.Matches(keyMsg, keys.delete):
		if archive, ok := m.archives.current(); ok {
			m.askConfirm(actionDeleteArchive, archive.ID, "Удалить архив от "+archive.ArchivedAt.Local().Format("02.01.2006 15:04"))
		}
	}
	return m, nil
}

// ── commands ──

func (m appModel) waitForSnapshot() tea.Cmd {
	ctx := m.ctx
	snapshots := m.snapshots
	return func() tea.Msg {
		select {
		case s := <-snapshots:
			return snapshotMsg{snapshot: s}
		case <-ctx.Done():
			return nil
		}
	}
}

func (m appModel) cmdOpenList(name string) tea.Cmd {
	ctx := m.ctx
	svc := m.services.ListService
	return func() tea.Msg {
		list, err := svc.OpenList(ctx, name)
		return listOpenedMsg{name: name, list: list, err: err}
	}
}

func (m appModel) cmdLoadFollowed() tea.Cmd {
	ctx := m.ctx
	svc := m.services.ListService
	return func() tea.Msg {
		lists, err := svc.FollowedLists(ctx)
		return followedListsMsg{lists: lists, err: err}
	}
}

func (m appModel) cmdCreateList(req models.CreateListRequest) tea.Cmd {
	ctx := m.ctx
	svc := m.services.ListService
	return func() tea.Msg {
		list, err := svc.CreateList(ctx, req)
		return listCreatedMsg{list: list, err: err}
	}
}

func (m appModel) cmdVerifyPassword(listID, password string, action models.AccessAction) tea.Cmd {
	ctx := m.ctx
	svc := m.services.ListService
	return func() tea.Msg {
		return passwordVerifiedMsg{err: svc.VerifyPassword(ctx, listID, password, action)}
	}
}

func (m appModel) cmdRefresh() tea.Cmd {
	ctx := m.ctx
	svc := m.services.ListService
	engine := m.services.SyncEngine
	list, _ := m.currentList()
	return func() tea.Msg {
		engine.Trigger()
		return listOpenedMsg{name: list.Name, list: list, err: svc.Refresh(ctx)}
	}
}

func (m appModel) cmdToggleFollow(list models.List) tea.Cmd {
	ctx := m.ctx
	svc := m.services.ListService
	return func() tea.Msg {
		if list.IsFollowed {
			return followChangedMsg{followed: false, err: svc.Unfollow(ctx, list.ID)}
		}
		return followChangedMsg{followed: true, err: svc.Follow(ctx, list.ID)}
	}
}

func (m appModel) cmdAddItem(fields models.ItemFields) tea.Cmd {
	ctx := m.ctx
	svc := m.services.ItemService
	return func() tea.Msg {
		_, confirmation, err := svc.AddItem(ctx, fields)
		return mutationMsg{name: fields.Name, confirmation: confirmation, err: err}
	}
}

func (m appModel) cmdUpdateItem(item models.Item, update models.ItemUpdate) tea.Cmd {
	ctx := m.ctx
	svc := m.services.ItemService
	return func() tea.Msg {
		_, confirmation, err := svc.UpdateItem(ctx, item.ID, update)
		return mutationMsg{name: item.Name, confirmation: confirmation, err: err}
	}
}

func (m appModel) cmdToggleItem(item models.Item) tea.Cmd {
	ctx := m.ctx
	svc := m.services.ItemService
	return func() tea.Msg {
		_, confirmation, err := svc.ToggleItem(ctx, item.ID)
		return mutationMsg{name: item.Name, confirmation: confirmation, err: err}
	}
}

func (m appModel) cmdDeleteItem(itemID string) tea.Cmd {
	ctx := m.ctx
	svc := m.services.ItemService
	name := itemID
	for _, item := range m.list.snapshot.Items {
		if item.ID == itemID {
			name = item.Name
		}
	}
	return func() tea.Msg {
		confirmation, err := svc.DeleteItem(ctx, itemID)
		return mutationMsg{name: name, confirmation: confirmation, err: err}
	}
}

// cmdAwaitConfirmation reports the outcome of a queued mutation once the
// sync engine confirmed or dropped it.
func (m appModel) cmdAwaitConfirmation(name string, confirmation *service.Confirmation) tea.Cmd {
	ctx := m.ctx
	return func() tea.Msg {
		err := confirmation.Wait(ctx)
		if err == nil || errors.Is(err, context.Canceled) || errors.Is(err, service.ErrOperationDiscarded) {
			return nil
		}
		return confirmationMsg{name: name, err: err}
	}
}

func (m appModel) cmdArchiveBought() tea.Cmd {
	ctx := m.ctx
	svc := m.services.ArchiveService
	return func() tea.Msg {
		result, err := svc.ArchiveBought(ctx)
		return bulkDoneMsg{result: result, err: err}
	}
}

func (m appModel) cmdBulk(action pendingAction, archiveID string) tea.Cmd {
	ctx := m.ctx
	svc := m.services.ArchiveService
	return func() tea.Msg {
		var (
			result models.BulkResult
			err    error
		)
		switch action {
		case actionDeleteBought:
			result, err = svc.DeleteBought(ctx)
		case actionDeleteAll:
			result, err = svc.DeleteAll(ctx)
		case actionDeleteArchive:
			result, err = svc.DeleteArchive(ctx, archiveID)
		}
		return bulkDoneMsg{action: action, result: result, err: err}
	}
}

func (m appModel) cmdUndo() tea.Cmd {
	ctx := m.ctx
	svc := m.services.ArchiveService
	return func() tea.Msg {
		result, err := svc.UndoLast(ctx)
		return undoDoneMsg{result: result, err: err}
	}
}

func (m appModel) cmdLoadArchives() tea.Cmd {
	ctx := m.ctx
	svc := m.services.ArchiveService
	return func() tea.Msg {
		archives, err := svc.Archives(ctx)
		return archivesLoadedMsg{archives: archives, err: err}
	}
}

func cmdCopyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboard.WriteAll(text); err != nil {
			return mutationMsg{err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return copiedMsg{}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
