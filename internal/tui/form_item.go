package tui

import (
	"strings"

	"github.com/MKhiriev/shopman/models"
	"github.com/charmbracelet/bubbles/textinput"
)

const (
	itemFieldName = iota
	itemFieldAmount
	itemFieldType
	itemFieldNote
	itemFieldCount
)

// typeOptions are the selectable categories; the first entry is
// uncategorized.
var typeOptions = append([]models.ItemType{""}, models.ItemTypes...)

type itemFormModel struct {
	inputs     map[int]*textinput.Model
	typeIdx    int
	focus      int
	editing    bool
	original   models.Item
	submitting bool
}

func newItemFormModel(item *models.Item) itemFormModel {
	inputs := make(map[int]*textinput.Model, 3)
	for _, field := range []int{itemFieldName, itemFieldAmount, itemFieldNote} {
		in := textinput.New()
		in.Width = 40
		in.CharLimit = 200
		inputs[field] = &in
	}
	inputs[itemFieldName].Placeholder = "молоко"
	inputs[itemFieldAmount].Placeholder = "2 л"
	inputs[itemFieldName].Focus()

	m := itemFormModel{inputs: inputs}
	if item == nil {
		return m
	}

	m.editing = true
	m.original = *item
	m.inputs[itemFieldName].SetValue(item.Name)
	m.inputs[itemFieldAmount].SetValue(item.Amount)
	m.inputs[itemFieldNote].SetValue(item.Note)
	for i, t := range typeOptions {
		if t == item.Type {
			m.typeIdx = i
		}
	}
	return m
}

func (m itemFormModel) focused() *textinput.Model {
	return m.inputs[m.focus]
}

func (m *itemFormModel) setFocus(field int) {
	if in := m.focused(); in != nil {
		in.Blur()
	}
	m.focus = (field + itemFieldCount) % itemFieldCount
	if in := m.focused(); in != nil {
		in.Focus()
	}
}

func (m *itemFormModel) cycleType(delta int) {
	m.typeIdx = (m.typeIdx + delta + len(typeOptions)) % len(typeOptions)
}

func (m itemFormModel) fields() models.ItemFields {
	return models.ItemFields{
		Name:   m.inputs[itemFieldName].Value(),
		Amount: m.inputs[itemFieldAmount].Value(),
		Type:   typeOptions[m.typeIdx],
		Note:   m.inputs[itemFieldNote].Value(),
	}.Trim()
}

// update returns only the fields that differ from the edited item.
func (m itemFormModel) update() models.ItemUpdate {
	f := m.fields()
	var u models.ItemUpdate
	if f.Name != m.original.Name {
		u.Name = &f.Name
	}
	if f.Amount != m.original.Amount {
		u.Amount = &f.Amount
	}
	if f.Type != m.original.Type {
		u.Type = &f.Type
	}
	if f.Note != m.original.Note {
		u.Note = &f.Note
	}
	return u
}

func (m itemFormModel) View() string {
	title := "Новый товар"
	if m.editing {
		title = "Изменить: " + m.original.Name
	}

	typeView := "< " + categoryLabel(typeOptions[m.typeIdx]) + " >"
	if m.focus == itemFieldType {
		typeView = titleStyle.Render(typeView)
	}

	var b strings.Builder
	b.WriteString(viewTitle(title))
	b.WriteString("\nНазвание:   [" + m.inputs[itemFieldName].View() + "]\n")
	b.WriteString("Количество: [" + m.inputs[itemFieldAmount].View() + "]\n")
	b.WriteString("Категория:  " + typeView + "\n")
	b.WriteString("Заметка:    [" + m.inputs[itemFieldNote].View() + "]\n\n")
	if m.submitting {
		b.WriteString("Сохранение...\n")
	}
	b.WriteString(helpStyle.Render("esc отмена  tab следующее поле  ←/→ категория  enter сохранить"))
	return b.String()
}
