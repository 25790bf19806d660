package components

import (
	"fmt"
	"strings"

	"codedeck/internal/tui/styles"
	"codedeck/pkg/types"

	"github.com/charmbracelet/lipgloss"
)

// row pairs a node with its depth in the flattened view.
type row struct {
	node  *types.Node
	level int
}

// FileTree displays the remote repository tree. The nodes are fetched
// once per repository; the component only tracks cursor, scrolling,
// and which folders are open.
type FileTree struct {
	Cursor      int
	Height      int
	Width       int
	Offset      int
	nodes       []*types.Node
	open        map[string]bool
	visibleRows []row
}

// NewFileTree creates an empty tree component.
func NewFileTree() *FileTree {
	return &FileTree{
		open:   make(map[string]bool),
		Height: 20,
		Width:  32,
	}
}

// SetNodes replaces the tree contents, resetting cursor and expansion
// state. Top-level folders start open so the tree is not a wall of
// closed directories.
func (f *FileTree) SetNodes(nodes []*types.Node) {
	f.nodes = nodes
	f.open = make(map[string]bool)
	f.Cursor = 0
	f.Offset = 0
	for _, n := range nodes {
		if n.IsDir() {
			f.open[n.Path] = true
		}
	}
	f.updateVisibleRows()
}

// SetSize adjusts the drawable area.
func (f *FileTree) SetSize(width, height int) {
	f.Width = width
	f.Height = height
	f.ensureCursorVisible()
}

// Current returns the node under the cursor, nil when the tree is
// empty.
func (f *FileTree) Current() *types.Node {
	if f.Cursor < 0 || f.Cursor >= len(f.visibleRows) {
		return nil
	}
	return f.visibleRows[f.Cursor].node
}

// FileCount returns the number of files across the whole tree.
func (f *FileTree) FileCount() int {
	total := 0
	for _, n := range f.nodes {
		total += n.CountFiles()
	}
	return total
}

// MoveUp moves the cursor up one row
func (f *FileTree) MoveUp() {
	if f.Cursor > 0 {
		f.Cursor--
	}
	f.ensureCursorVisible()
}

// MoveDown moves the cursor down one row
func (f *FileTree) MoveDown() {
	if f.Cursor < len(f.visibleRows)-1 {
		f.Cursor++
	}
	f.ensureCursorVisible()
}

// Toggle opens or closes the folder under the cursor. Files are left
// to the caller, which treats them as selections.
func (f *FileTree) Toggle() {
	node := f.Current()
	if node == nil || !node.IsDir() || node.Unavailable {
		return
	}
	f.open[node.Path] = !f.open[node.Path]
	f.updateVisibleRows()
}

func (f *FileTree) updateVisibleRows() {
	f.visibleRows = f.visibleRows[:0]
	f.addVisible(f.nodes, 0)
	if f.Cursor >= len(f.visibleRows) {
		f.Cursor = maxInt(0, len(f.visibleRows)-1)
	}
	f.ensureCursorVisible()
}

func (f *FileTree) addVisible(nodes []*types.Node, level int) {
	for _, n := range nodes {
		f.visibleRows = append(f.visibleRows, row{node: n, level: level})
		if n.IsDir() && f.open[n.Path] {
			f.addVisible(n.Children, level+1)
		}
	}
}

func (f *FileTree) ensureCursorVisible() {
	if f.Height <= 0 {
		return
	}
	if f.Cursor < f.Offset {
		f.Offset = f.Cursor
	}
	if f.Cursor >= f.Offset+f.Height-2 {
		f.Offset = f.Cursor - f.Height + 3
	}
	if f.Offset < 0 {
		f.Offset = 0
	}
	maxOffset := maxInt(0, len(f.visibleRows)-f.Height)
	if f.Offset > maxOffset {
		f.Offset = maxOffset
	}
}

// View returns the rendered view of the file tree
func (f *FileTree) View() string {
	if len(f.visibleRows) == 0 {
		empty := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Width(f.Width)
		return empty.Render("no files")
	}

	var b strings.Builder

	startIdx := f.Offset
	endIdx := minInt(len(f.visibleRows), f.Offset+f.Height-2)

	cursor := lipgloss.NewStyle().
		Foreground(lipgloss.Color("231")).
		Background(lipgloss.Color("62")).
		Bold(true)
	dirStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("110")).
		Bold(true)
	fileStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252"))

	if startIdx > 0 {
		b.WriteString(styles.Theme.Unselected.Render("↑ more ↑") + "\n")
	}

	for i := startIdx; i < endIdx; i++ {
		r := f.visibleRows[i]
		indent := strings.Repeat("  ", r.level)

		var marker string
		switch {
		case r.node.Unavailable:
			marker = "⊘ "
		case r.node.IsDir() && f.open[r.node.Path]:
			marker = "▾ "
		case r.node.IsDir():
			marker = "▸ "
		default:
			marker = "  "
		}

		line := truncate(indent+marker+r.node.Name, f.Width)

		switch {
		case i == f.Cursor:
			line = cursor.Render(line)
		case r.node.Unavailable:
			line = styles.Unavailable.Render(line)
		case r.node.IsDir():
			line = dirStyle.Render(line)
		default:
			line = fileStyle.Render(line)
		}
		b.WriteString(line + "\n")
	}

	if endIdx < len(f.visibleRows) {
		b.WriteString(styles.Theme.Unselected.Render(fmt.Sprintf("↓ %d more ↓", len(f.visibleRows)-endIdx)) + "\n")
	}

	return b.String()
}

// truncate shortens a line to the given display width without
// splitting runes. Widths are measured in terminal cells, not bytes,
// so tree markers and wide characters stay intact.
func truncate(line string, width int) string {
	if width <= 3 || lipgloss.Width(line) <= width {
		return line
	}
	var b strings.Builder
	used := 0
	for _, r := range line {
		w := lipgloss.Width(string(r))
		if used+w > width-3 {
			break
		}
		b.WriteRune(r)
		used += w
	}
	return b.String() + "..."
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
