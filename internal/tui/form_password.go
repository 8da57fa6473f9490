package tui

import (
	"strings"

	"github.com/MKhiriev/shopman/models"
	"github.com/charmbracelet/bubbles/textinput"
)

// passwordFormModel asks for the password of a protected list.
type passwordFormModel struct {
	input      textinput.Model
	list       models.List
	action     models.AccessAction
	submitting bool
}

func newPasswordFormModel(list models.List, action models.AccessAction) passwordFormModel {
	in := textinput.New()
	in.Placeholder = "пароль"
	in.CharLimit = 256
	in.Width = 40
	in.EchoMode = textinput.EchoPassword
	in.EchoCharacter = '*'
	in.Focus()

	return passwordFormModel{input: in, list: list, action: action}
}

func (m passwordFormModel) View() string {
	purpose := "для просмотра"
	if m.action == models.AccessEdit {
		purpose = "для изменения"
	}

	var b strings.Builder
	b.WriteString(viewTitle("Список «" + m.list.Name + "» защищён паролем"))
	b.WriteString("\nВведите пароль " + purpose + ":\n\n")
	b.WriteString("[" + m.input.View() + "]\n\n")
	if m.submitting {
		b.WriteString("Проверка...\n")
	}
	b.WriteString(helpStyle.Render("esc отмена  enter подтвердить"))
	return b.String()
}
