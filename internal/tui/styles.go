package tui

import "github.com/charmbracelet/lipgloss"

// Styles groups the lipgloss styles of the browser.
type Styles struct {
	Header     lipgloss.Style
	Footer     lipgloss.Style
	Sidebar    lipgloss.Style
	Item       lipgloss.Style
	ItemCursor lipgloss.Style
	ItemActive lipgloss.Style
	NavError   lipgloss.Style
	Content    lipgloss.Style
	Status     lipgloss.Style
}

var (
	sky     = lipgloss.AdaptiveColor{Light: "#0369a1", Dark: "#7dd3fc"}
	skyBg   = lipgloss.AdaptiveColor{Light: "#e0f2fe", Dark: "#0c4a6e"}
	stone   = lipgloss.AdaptiveColor{Light: "#44403c", Dark: "#d6d3d1"}
	muted   = lipgloss.AdaptiveColor{Light: "#78716c", Dark: "#a8a29e"}
	danger  = lipgloss.AdaptiveColor{Light: "#dc2626", Dark: "#f87171"}
	divider = lipgloss.AdaptiveColor{Light: "#e7e5e4", Dark: "#44403c"}
)

// DefaultStyles returns the stock palette.
func DefaultStyles() Styles {
	return Styles{
		Header: lipgloss.NewStyle().
			Foreground(sky).
			Bold(true).
			Padding(0, 1),

		Footer: lipgloss.NewStyle().
			Foreground(muted).
			Padding(0, 1),

		Sidebar: lipgloss.NewStyle().
			Width(sidebarWidth).
			BorderRight(true).
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(divider).
			Padding(0, 1),

		Item: lipgloss.NewStyle().
			Foreground(stone),

		ItemCursor: lipgloss.NewStyle().
			Foreground(sky),

		ItemActive: lipgloss.NewStyle().
			Foreground(sky).
			Background(skyBg).
			Bold(true),

		NavError: lipgloss.NewStyle().
			Foreground(danger),

		Content: lipgloss.NewStyle().
			Padding(0, 1),

		Status: lipgloss.NewStyle().
			Foreground(muted).
			Italic(true),
	}
}
