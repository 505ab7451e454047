package cli

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#8b5cf6"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6b7280"))

	valueStyle = lipgloss.NewStyle().
			Bold(true)

	goodStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#22c55e"))

	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#f59e0b"))

	badgeStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#eab308"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#9ca3af"))
)

// progressBar renders a fixed-width bar, filled proportionally.
func progressBar(current, total, width int) string {
	if total <= 0 {
		total = 1
	}
	filled := current * width / total
	if filled > width {
		filled = width
	}
	bar := ""
	for i := 0; i < width; i++ {
		if i < filled {
			bar += "█"
		} else {
			bar += "░"
		}
	}
	if current >= total {
		return goodStyle.Render(bar)
	}
	return warnStyle.Render(bar)
}
