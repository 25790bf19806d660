package types

// Panel identifies one independently hideable region of the editor
// layout.
type Panel string

const (
	PanelCode   Panel = "code"
	PanelReadme Panel = "readme"
	PanelInput  Panel = "input"
	PanelOutput Panel = "output"
)

// AllPanels lists every panel in layout order. The rendered layout is
// AllPanels minus the hidden set.
var AllPanels = []Panel{PanelCode, PanelReadme, PanelInput, PanelOutput}

// Screen identifies which top-level view the TUI is showing.
type Screen int

const (
	// ScreenHub is the repository picker, shown when no repository has
	// been chosen yet.
	ScreenHub Screen = iota
	// ScreenEditor is the panelled editor for a single repository.
	ScreenEditor
)
