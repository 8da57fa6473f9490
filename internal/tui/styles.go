package tui

import "github.com/charmbracelet/lipgloss"

var (
	appStyle        = lipgloss.NewStyle().Padding(1, 2)
	titleStyle      = lipgloss.NewStyle().Bold(true)
	helpStyle       = lipgloss.NewStyle().Faint(true)
	errorStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	overlayBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)
	categoryStyle   = lipgloss.NewStyle().Underline(true)
	boughtStyle     = lipgloss.NewStyle().Strikethrough(true).Faint(true)
	pendingStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	offlineStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	onlineStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
)
