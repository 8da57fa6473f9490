package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/shopman/models"
)

type archivesModel struct {
	archives []models.Archive
	idx      int
	loading  bool
}

func (m archivesModel) current() (models.Archive, bool) {
	if m.idx < 0 || m.idx >= len(m.archives) {
		return models.Archive{}, false
	}
	return m.archives[m.idx], true
}

func (m archivesModel) View() string {
	var b strings.Builder
	b.WriteString(viewTitle("Архив покупок"))
	b.WriteString("\n")

	switch {
	case m.loading:
		b.WriteString("Загрузка...\n")
	case len(m.archives) == 0:
		b.WriteString("Архив пуст\n")
	default:
		for i, archive := range m.archives {
			cursor := "  "
			if i == m.idx {
				cursor = "> "
			}
			b.WriteString(fmt.Sprintf("%s%s  товаров: %d\n", cursor, archive.ArchivedAt.Local().Format("02.01.2006 15:04"), len(archive.Items)))
			if i == m.idx {
				for _, item := range archive.Items {
					b.WriteString("      " + helpStyle.Render(fitText(item.Name, 50)) + "\n")
				}
			}
		}
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("d удалить  esc назад"))
	return b.String()
}
