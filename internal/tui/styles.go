package tui

import "github.com/charmbracelet/lipgloss"

// Static styles for content elements
var (
	HeaderStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Bold(true)

	CardNameStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#96CEB4")).
			Bold(true)

	MonsterStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFD700"))

	SpellStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#96CEB4"))

	TrapStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	BlankStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262"))

	HelpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262"))
)
