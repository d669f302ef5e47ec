package cli

import (
	"github.com/charmbracelet/lipgloss"

	"multichat/internal/entities"
)

var (
	userColor   = lipgloss.Color("#e5e7eb")
	systemColor = lipgloss.Color("#9ca3af")
	liveColor   = lipgloss.Color("#22c55e")
	demoColor   = lipgloss.Color("#f59e0b")
)

type theme struct {
	assistant lipgloss.Style
	user      lipgloss.Style
	system    lipgloss.Style
	header    lipgloss.Style
}

func newTheme(p entities.Platform) theme {
	colors := p.Theme()
	return theme{
		assistant: lipgloss.NewStyle().Foreground(lipgloss.Color(colors.Primary)).Bold(true),
		user:      lipgloss.NewStyle().Foreground(userColor).Bold(true),
		system:    lipgloss.NewStyle().Foreground(systemColor).Italic(true),
		header: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ffffff")).
			Background(lipgloss.Color(colors.Accent)).
			Padding(0, 1).
			Bold(true),
	}
}

func badge(live bool) string {
	if live {
		return lipgloss.NewStyle().Foreground(liveColor).Render("● Live API")
	}
	return lipgloss.NewStyle().Foreground(demoColor).Render("○ Demo")
}
