package styles

import "github.com/charmbracelet/lipgloss"

// Panel frame styles for the editor layout
var (
	PanelBorder = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("213")).
			Padding(0, 1)

	FocusedBorder = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("212")).
			Padding(0, 1)

	PanelTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("212"))

	Unavailable = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Strikethrough(true)
)

// RegionSeparator is drawn between adjacent visible panel regions.
const RegionSeparator = "─"
