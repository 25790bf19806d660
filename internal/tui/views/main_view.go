package views

import (
	"strings"

	"codedeck/internal/tui/common"
	"codedeck/internal/tui/styles"
	"codedeck/pkg/types"

	"github.com/charmbracelet/lipgloss"
)

// panelTitles are the headers drawn over each editor region.
var panelTitles = map[types.Panel]string{
	types.PanelCode:   "code",
	types.PanelReadme: "readme",
	types.PanelInput:  "input",
	types.PanelOutput: "output",
}

// RenderHub draws the repository picker screen.
func RenderHub(m common.HubReader) string {
	var sb strings.Builder

	sb.WriteString(renderBanner())
	sb.WriteString(m.CatalogView())
	sb.WriteString("\n" + m.StatusView())
	sb.WriteString("\n" + RenderHubKeys())

	return styles.Theme.App.Render(sb.String())
}

// RenderEditor draws the editor screen: the tree column beside the
// stacked visible panels. A separator appears between two regions only
// when both sides of it have something visible.
func RenderEditor(m common.EditorReader) string {
	var sb strings.Builder

	title := m.RepoName()
	if m.ActivePath() != "" {
		title += " · " + m.ActivePath()
	}
	sb.WriteString(styles.Theme.Title.Render(title) + "\n")

	visible := m.VisiblePanels()
	regions := make([]string, 0, len(visible))
	for _, panel := range visible {
		header := styles.PanelTitle.Render(panelTitles[panel])
		body := m.PanelView(panel)
		frame := styles.PanelBorder
		if m.PanelFocused(panel) {
			frame = styles.FocusedBorder
		}
		regions = append(regions, header+"\n"+frame.Render(body))
	}

	separator := styles.Theme.Unselected.Render(strings.Repeat(styles.RegionSeparator, separatorWidth(m.LayoutWidth())))
	right := strings.Join(regions, "\n"+separator+"\n")
	if len(regions) == 0 {
		right = styles.Theme.Unselected.Render("all panels hidden")
	}

	sb.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, m.TreeView(), "  ", right))
	sb.WriteString("\n" + m.StatusView())
	sb.WriteString("\n" + RenderEditorKeys())

	return styles.Theme.App.Render(sb.String())
}

// RenderHubKeys lists the hub screen key bindings.
func RenderHubKeys() string {
	return styles.Theme.Help.Render(`[↑/k] Up  [↓/j] Down  [/] Filter  [Enter] Open  [q] Quit`)
}

// RenderEditorKeys lists the editor screen key bindings.
func RenderEditorKeys() string {
	return styles.Theme.Help.Render(`[↑↓] Navigate  [Enter] Open  [Tab] Input  [Ctrl+R] Run  [1-4] Panels  [Esc] Back`)
}

func renderBanner() string {
	return styles.Theme.Title.Render(`
 ██████  ██████  ██████  ███████ ██████  ███████  ██████ ██   ██
██      ██    ██ ██   ██ ██      ██   ██ ██      ██      ██  ██
██      ██    ██ ██   ██ █████   ██   ██ █████   ██      █████
██      ██    ██ ██   ██ ██      ██   ██ ██      ██      ██  ██
 ██████  ██████  ██████  ███████ ██████  ███████  ██████ ██   ██
`)
}

func separatorWidth(layoutWidth int) int {
	w := layoutWidth - 40
	if w < 8 {
		w = 8
	}
	return w
}
