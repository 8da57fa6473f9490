package tui

import (
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
)

const pageWidth = 54

var (
	dividerStyle = helpStyle
	bodyStyle    = lipgloss.NewStyle().PaddingLeft(2)
)

func divider() string {
	return dividerStyle.Render(strings.Repeat("─", pageWidth))
}

func viewTitle(title string) string {
	return titleStyle.Render(title) + "\n" + divider() + "\n"
}

// renderPage lays out a full-screen page: title, body and the key hints.
func renderPage(title, body, hotKeys string) string {
	if strings.TrimSpace(body) == "" {
		body = "-"
	}

	parts := []string{
		titleStyle.Render(title),
		divider(),
		"",
		bodyStyle.Render(body),
		"",
		divider(),
	}
	if strings.TrimSpace(hotKeys) != "" {
		parts = append(parts, helpStyle.Render(hotKeys))
	}
	parts = append(parts, helpStyle.Render("ctrl+c: выход"))

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// fitText cuts v to max runes, marking the cut with "...".
func fitText(v string, max int) string {
	if max <= 0 || utf8.RuneCountInString(v) <= max {
		return v
	}
	runes := []rune(v)
	if max <= 3 {
		return string(runes[:max])
	}
	return string(runes[:max-3]) + "..."
}
