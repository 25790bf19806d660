package common

import "codedeck/pkg/types"

// Focus identifies which editor region receives navigation keys.
type Focus int

const (
	FocusTree Focus = iota
	FocusInput
)

// HubReader defines the interface views use to render the repository
// picker screen.
type HubReader interface {
	CatalogView() string
	StatusView() string
}

// EditorReader defines the interface views use to render the editor
// screen. PanelView is only called for panels reported visible.
type EditorReader interface {
	RepoName() string
	ActivePath() string
	TreeView() string
	VisiblePanels() []types.Panel
	PanelView(p types.Panel) string
	PanelFocused(p types.Panel) bool
	StatusView() string
	LayoutWidth() int
}
