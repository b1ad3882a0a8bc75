package lipgloss

import "github.com/charmbracelet/lipgloss"

// Shared styles for user-facing terminal output.
var (
	Red     = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF5555"))
	Green   = lipgloss.NewStyle().Foreground(lipgloss.Color("#25A065"))
	Yellow  = lipgloss.NewStyle().Foreground(lipgloss.Color("#F1FA8C"))
	BlueSky = lipgloss.NewStyle().Foreground(lipgloss.Color("#00BFFF"))
	Info    = lipgloss.NewStyle().Foreground(lipgloss.Color("#8BE9FD")).Bold(true)

	// BoxStyle frames short status lines like token usage and index stats.
	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#7D56F4")).
			Padding(0, 1)
)
