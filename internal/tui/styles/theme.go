package styles

import (
	"codedeck/internal/config"

	"github.com/charmbracelet/lipgloss"
)

// Theme defines the core UI styles
var Theme = struct {
	App        lipgloss.Style
	Title      lipgloss.Style
	Selected   lipgloss.Style
	Unselected lipgloss.Style
	Help       lipgloss.Style
	Error      lipgloss.Style
	Success    lipgloss.Style
}{
	App: lipgloss.NewStyle().
		Padding(1, 2),
	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("213")).
		MarginBottom(1),
	Selected: lipgloss.NewStyle().
		Foreground(lipgloss.Color("114")).
		Bold(true),
	Unselected: lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")),
	Help: lipgloss.NewStyle().
		Foreground(lipgloss.Color("39")),
	Error: lipgloss.NewStyle().
		Foreground(lipgloss.Color("196")).
		Bold(true),
	Success: lipgloss.NewStyle().
		Foreground(lipgloss.Color("114")),
}

// Apply recolors the theme from the configured palette.
func Apply(cfg *config.Config) {
	Theme.Title = Theme.Title.Foreground(lipgloss.Color(cfg.Theme.Primary))
	Theme.Selected = Theme.Selected.Foreground(lipgloss.Color(cfg.Theme.Success))
	Theme.Help = Theme.Help.Foreground(lipgloss.Color(cfg.Theme.Info))
	Theme.Error = Theme.Error.Foreground(lipgloss.Color(cfg.Theme.Error))
	Theme.Success = Theme.Success.Foreground(lipgloss.Color(cfg.Theme.Success))

	PanelBorder = PanelBorder.BorderForeground(lipgloss.Color(cfg.Theme.Border))
	FocusedBorder = FocusedBorder.BorderForeground(lipgloss.Color(cfg.Theme.Emphasis))
	PanelTitle = PanelTitle.Foreground(lipgloss.Color(cfg.Theme.Emphasis))
}
