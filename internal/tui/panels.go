package tui

import (
	"strings"

	"codedeck/pkg/types"
)

// PanelSet tracks which editor panels are hidden. All panels start
// visible; toggling the same panel twice restores the exact previous
// state.
type PanelSet struct {
	hidden map[types.Panel]bool
}

// NewPanelSet creates a set with every panel visible.
func NewPanelSet() *PanelSet {
	return &PanelSet{hidden: make(map[types.Panel]bool)}
}

// Toggle flips one panel's visibility.
func (p *PanelSet) Toggle(panel types.Panel) {
	p.hidden[panel] = !p.hidden[panel]
}

// IsVisible reports one panel's visibility.
func (p *PanelSet) IsVisible(panel types.Panel) bool {
	return !p.hidden[panel]
}

// Visible returns the visible panels in canonical layout order.
func (p *PanelSet) Visible() []types.Panel {
	out := make([]types.Panel, 0, len(types.AllPanels))
	for _, panel := range types.AllPanels {
		if !p.hidden[panel] {
			out = append(out, panel)
		}
	}
	return out
}

// JoinRegions stacks the visible panels' rendered content, drawing a
// separator between each pair of adjacent visible regions. Hidden
// panels contribute neither content nor separators.
func (p *PanelSet) JoinRegions(separator string, regions map[types.Panel]string) string {
	var parts []string
	for _, panel := range p.Visible() {
		content, ok := regions[panel]
		if !ok {
			continue
		}
		parts = append(parts, content)
	}
	return strings.Join(parts, separator)
}
