package tui

import (
	"fmt"
	"slices"
	"strings"

	"github.com/MKhiriev/shopman/internal/state"
	"github.com/MKhiriev/shopman/models"
	"github.com/charmbracelet/bubbles/spinner"
)

var categoryLabels = map[models.ItemType]string{
	models.ItemTypeProduce:   "Овощи и фрукты",
	models.ItemTypeDairy:     "Молочное",
	models.ItemTypeMeat:      "Мясо и рыба",
	models.ItemTypeBakery:    "Выпечка",
	models.ItemTypeFrozen:    "Заморозка",
	models.ItemTypePantry:    "Бакалея",
	models.ItemTypeBeverages: "Напитки",
	models.ItemTypeSnacks:    "Снеки",
	models.ItemTypeHousehold: "Для дома",
	models.ItemTypePersonal:  "Гигиена",
	models.ItemTypeOther:     "Другое",
}

func categoryLabel(t models.ItemType) string {
	if label, ok := categoryLabels[t]; ok {
		return label
	}
	return "Без категории"
}

type listModel struct {
	snapshot state.Snapshot
	idx      int
	spinner  spinner.Model
	status   string
}

func newListModel(snapshot state.Snapshot) listModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot
	return listModel{snapshot: snapshot, spinner: s}
}

// items returns the displayed items grouped by category.
func (m listModel) items() []models.Item {
	items := slices.Clone(m.snapshot.Items)
	models.SortItemsForDisplay(items)
	return items
}

func (m listModel) current() (models.Item, bool) {
	items := m.items()
	if len(items) == 0 || m.idx < 0 || m.idx >= len(items) {
		return models.Item{}, false
	}
	return items[m.idx], true
}

func (m *listModel) setSnapshot(snapshot state.Snapshot) {
	selected, hadSelection := m.current()
	m.snapshot = snapshot

	// курсор остаётся на том же товаре, если он ещё есть
	if hadSelection {
		if i := slices.IndexFunc(m.items(), func(it models.Item) bool { return it.ID == selected.ID }); i >= 0 {
			m.idx = i
		}
	}
	m.clamp()
}

func (m *listModel) clamp() {
	n := len(m.snapshot.Items)
	if m.idx >= n {
		m.idx = n - 1
	}
	if m.idx < 0 {
		m.idx = 0
	}
}

func (m listModel) title() string {
	list := m.snapshot.CurrentList
	if list == nil {
		return "shopman"
	}

	title := list.Name
	if list.HasPassword {
		title += " 🔒"
	}
	if list.IsFollowed {
		title += " ★"
	}
	return title
}

func (m listModel) syncLine() string {
	sync := m.snapshot.Sync

	var parts []string
	if sync.IsOnline {
		parts = append(parts, onlineStyle.Render("● онлайн"))
	} else {
		parts = append(parts, offlineStyle.Render("○ офлайн"))
	}
	if sync.IsSyncing {
		parts = append(parts, m.spinner.View()+" синхронизация")
	}
	if sync.PendingCount > 0 {
		parts = append(parts, pendingStyle.Render(fmt.Sprintf("ожидает отправки: %d", sync.PendingCount)))
	}
	if sync.LastSyncTime != nil {
		parts = append(parts, "синхр. "+sync.LastSyncTime.Local().Format("15:04:05"))
	}
	return strings.Join(parts, "  ")
}

func itemLine(item models.Item, selected bool) string {
	cursor := "  "
	if selected {
		cursor = "> "
	}

	check := "[ ]"
	if item.IsBought {
		check = "[x]"
	}

	text := fitText(item.Name, 40)
	if item.Amount != "" {
		text += " · " + fitText(item.Amount, 12)
	}
	if item.IsBought {
		text = boughtStyle.Render(text)
	}

	switch item.SyncStatus {
	case models.SyncStatusPending:
		text += " " + pendingStyle.Render("…")
	case models.SyncStatusError:
		text += " " + errorStyle.Render("!")
	}

	line := cursor + check + " " + text
	if item.Note != "" && selected {
		line += "\n      " + helpStyle.Render(fitText(item.Note, 60))
	}
	return line
}

func (m listModel) View() string {
	var b strings.Builder

	b.WriteString(viewTitle(m.title()))
	b.WriteString(m.syncLine())
	b.WriteString("\n\n")

	items := m.items()
	switch {
	case m.snapshot.IsLoading && len(items) == 0:
		b.WriteString("Загрузка...\n")
	case len(items) == 0:
		b.WriteString("Список пуст\n")
	default:
		group := models.ItemType("-")
		for i, item := range items {
			if item.Type != group {
				if i > 0 {
					b.WriteString("\n")
				}
				group = item.Type
				b.WriteString(categoryStyle.Render(categoryLabel(group)))
				b.WriteString("\n")
			}
			b.WriteString(itemLine(item, i == m.idx))
			b.WriteString("\n")
		}
	}

	if m.status != "" {
		b.WriteString("\n" + m.status + "\n")
	}
	if m.snapshot.Error != "" {
		b.WriteString("\n" + errorStyle.Render(m.snapshot.Error) + "\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("n добавить  space купил  e изменить  d удалить  a в архив  b удалить купленное  D удалить всё"))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("u отменить  A архивы  r обновить  f следить  p пароль  y копировать  o другой список  q выход"))
	return b.String()
}

// shareText renders the unbought items of the list as plain text.
func (m listModel) shareText() string {
	var b strings.Builder
	if m.snapshot.CurrentList != nil {
		b.WriteString(m.snapshot.CurrentList.Name)
		b.WriteString("\n")
	}
	for _, item := range m.items() {
		if item.IsBought {
			continue
		}
		b.WriteString("- ")
		b.WriteString(item.Name)
		if item.Amount != "" {
			b.WriteString(" (" + item.Amount + ")")
		}
		b.WriteString("\n")
	}
	return b.String()
}
