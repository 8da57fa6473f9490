package tui

import (
	"strings"

	"github.com/MKhiriev/shopman/models"
	"github.com/charmbracelet/bubbles/textinput"
)

// openModel picks the list to work with: by name or from the followed ones.
type openModel struct {
	input       textinput.Model
	followed    []models.List
	idx         int
	browsing    bool
	submitting  bool
	lastMissing string
}

func newOpenModel() openModel {
	in := textinput.New()
	in.Placeholder = "название списка"
	in.CharLimit = models.MaxListNameLength
	in.Width = 40
	in.Focus()
	return openModel{input: in}
}

func (m *openModel) setBrowsing(browsing bool) {
	m.browsing = browsing && len(m.followed) > 0
	if m.browsing {
		m.input.Blur()
		return
	}
	m.input.Focus()
}

func (m openModel) selected() (models.List, bool) {
	if !m.browsing || m.idx < 0 || m.idx >= len(m.followed) {
		return models.List{}, false
	}
	return m.followed[m.idx], true
}

func (m openModel) View() string {
	var b strings.Builder
	b.WriteString(viewTitle("shopman"))
	b.WriteString("\nОткрыть список: [" + m.input.View() + "]\n")

	if m.lastMissing != "" {
		b.WriteString("\nСписок «" + m.lastMissing + "» не найден. ctrl+n создать его.\n")
	}

	if len(m.followed) > 0 {
		b.WriteString("\nОтслеживаемые списки:\n")
		for i, list := range m.followed {
			cursor := "  "
			if m.browsing && i == m.idx {
				cursor = "> "
			}
			b.WriteString(cursor + fitText(list.Name, 50) + "\n")
		}
	}

	b.WriteString("\n")
	if m.submitting {
		b.WriteString("Загрузка...\n")
	}
	b.WriteString(helpStyle.Render("enter открыть  tab отслеживаемые  ctrl+n новый список  esc назад"))
	return b.String()
}
