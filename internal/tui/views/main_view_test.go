package views

import (
	"strings"
	"testing"

	"codedeck/pkg/types"

	"github.com/stretchr/testify/assert"
)

type stubEditor struct {
	repo    string
	active  string
	visible []types.Panel
	focused types.Panel
}

func (s stubEditor) RepoName() string              { return s.repo }
func (s stubEditor) ActivePath() string            { return s.active }
func (s stubEditor) TreeView() string              { return "TREE" }
func (s stubEditor) VisiblePanels() []types.Panel  { return s.visible }
func (s stubEditor) PanelView(p types.Panel) string {
	return "<" + strings.ToUpper(string(p)) + ">"
}
func (s stubEditor) PanelFocused(p types.Panel) bool { return p == s.focused }
func (s stubEditor) StatusView() string              { return "STATUS" }
func (s stubEditor) LayoutWidth() int                { return 100 }

func TestRenderEditorShowsVisiblePanels(t *testing.T) {
	out := RenderEditor(stubEditor{
		repo:    "sandbox",
		active:  "main.py",
		visible: []types.Panel{types.PanelCode, types.PanelOutput},
	})

	assert.Contains(t, out, "sandbox")
	assert.Contains(t, out, "main.py")
	assert.Contains(t, out, "<CODE>")
	assert.Contains(t, out, "<OUTPUT>")
	assert.NotContains(t, out, "<README>")
	assert.NotContains(t, out, "<INPUT>")
}

func TestRenderEditorAllPanelsHidden(t *testing.T) {
	out := RenderEditor(stubEditor{repo: "sandbox"})
	assert.Contains(t, out, "all panels hidden")
	assert.Contains(t, out, "TREE")
}

type stubHub struct{}

func (stubHub) CatalogView() string { return "CATALOG" }
func (stubHub) StatusView() string  { return "STATUS" }

func TestRenderHub(t *testing.T) {
	out := RenderHub(stubHub{})
	assert.Contains(t, out, "CATALOG")
	assert.Contains(t, out, "STATUS")
}
