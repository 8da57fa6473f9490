package tui

import (
	"strings"

	"github.com/MKhiriev/shopman/models"
	"github.com/charmbracelet/bubbles/textinput"
)

const (
	createFieldName = iota
	createFieldPassword
	createFieldView
	createFieldEdit
	createFieldCount
)

type createListModel struct {
	name         textinput.Model
	password     textinput.Model
	viewRequires bool
	editRequires bool
	focus        int
	submitting   bool
}

func newCreateListModel(name string) createListModel {
	nameInput := textinput.New()
	nameInput.Placeholder = "название списка"
	nameInput.CharLimit = models.MaxListNameLength
	nameInput.Width = 40
	nameInput.SetValue(name)
	nameInput.Focus()

	passwordInput := textinput.New()
	passwordInput.Placeholder = "без пароля"
	passwordInput.CharLimit = 256
	passwordInput.Width = 40
	passwordInput.EchoMode = textinput.EchoPassword
	passwordInput.EchoCharacter = '*'

	return createListModel{name: nameInput, password: passwordInput, editRequires: true}
}

func (m *createListModel) setFocus(field int) {
	m.name.Blur()
	m.password.Blur()
	m.focus = (field + createFieldCount) % createFieldCount
	switch m.focus {
	case createFieldName:
		m.name.Focus()
	case createFieldPassword:
		m.password.Focus()
	}
}

// toggle flips the checkbox under the cursor. It reports false when the
// cursor is on a text field.
func (m *createListModel) toggle() bool {
	switch m.focus {
	case createFieldView:
		m.viewRequires = !m.viewRequires
	case createFieldEdit:
		m.editRequires = !m.editRequires
	default:
		return false
	}
	return true
}

func (m createListModel) request() models.CreateListRequest {
	req := models.CreateListRequest{
		Name:     strings.TrimSpace(m.name.Value()),
		Password: m.password.Value(),
	}
	if req.Password != "" {
		req.ViewRequiresPassword = m.viewRequires
		req.EditRequiresPassword = m.editRequires
	}
	return req
}

func checkbox(label string, checked, focused bool) string {
	box := "[ ] "
	if checked {
		box = "[x] "
	}
	line := box + label
	if focused {
		return "> " + titleStyle.Render(line)
	}
	return "  " + line
}

func (m createListModel) View() string {
	var b strings.Builder
	b.WriteString(viewTitle("Новый список"))
	b.WriteString("\nНазвание: [" + m.name.View() + "]\n")
	b.WriteString("Пароль:   [" + m.password.View() + "]\n\n")
	b.WriteString(checkbox("пароль для просмотра", m.viewRequires, m.focus == createFieldView) + "\n")
	b.WriteString(checkbox("пароль для изменения", m.editRequires, m.focus == createFieldEdit) + "\n\n")
	if m.submitting {
		b.WriteString("Создание...\n")
	}
	b.WriteString(helpStyle.Render("esc отмена  tab следующее поле  space отметить  enter создать"))
	return b.String()
}
