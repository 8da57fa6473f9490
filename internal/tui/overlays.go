package tui

// confirmModel asks a yes/no question before a destructive bulk action.
type confirmModel struct {
	message string
}

func (m confirmModel) View() string {
	return overlayBoxStyle.Render(m.message + "?\n\n" + helpStyle.Render("y: да   n: нет"))
}

// errorOverlayModel shows one humanized error until dismissed.
type errorOverlayModel struct {
	message string
}

func (m errorOverlayModel) View() string {
	return overlayBoxStyle.Render(
		errorStyle.Render("Ошибка") + "\n\n" + m.message + "\n\n" + helpStyle.Render("enter/esc: закрыть"),
	)
}
