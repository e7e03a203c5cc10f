package tui

import "github.com/charmbracelet/lipgloss"

// Styles holds the lipgloss styles used by every screen
type Styles struct {
	Header  lipgloss.Style
	Badge   lipgloss.Style
	Section lipgloss.Style
	Body    lipgloss.Style
	Muted   lipgloss.Style
	Error   lipgloss.Style
	Card    lipgloss.Style
}

// DefaultStyles uses the emerald palette of the web client
func DefaultStyles() Styles {
	emerald := lipgloss.Color("#059669")
	return Styles{
		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(emerald).
			Padding(0, 1),
		Badge: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#047857")).
			Background(lipgloss.Color("#D1FAE5")).
			Padding(0, 1),
		Section: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#1F2937")),
		Body:    lipgloss.NewStyle().Foreground(lipgloss.Color("#374151")),
		Muted:   lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280")),
		Error:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#DC2626")),
		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#E5E7EB")).
			Padding(0, 1),
	}
}
