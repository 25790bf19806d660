package components

import (
	"testing"
	"unicode/utf8"

	"codedeck/pkg/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleNodes() []*types.Node {
	return []*types.Node{
		{
			Name: "src",
			Path: "src",
			Kind: types.NodeFolder,
			Children: []*types.Node{
				{Name: "lib.py", Path: "src/lib.py", Kind: types.NodeFile},
			},
		},
		{Name: "main.py", Path: "main.py", Kind: types.NodeFile},
	}
}

func TestSetNodesOpensTopLevelFolders(t *testing.T) {
	f := NewFileTree()
	f.SetNodes(sampleNodes())

	// Rows: src, src/lib.py, main.py
	require.NotNil(t, f.Current())
	assert.Equal(t, "src", f.Current().Name)

	f.MoveDown()
	assert.Equal(t, "lib.py", f.Current().Name)
	f.MoveDown()
	assert.Equal(t, "main.py", f.Current().Name)

	// Cursor clamps at the last row
	f.MoveDown()
	assert.Equal(t, "main.py", f.Current().Name)
}

func TestToggleCollapsesFolder(t *testing.T) {
	f := NewFileTree()
	f.SetNodes(sampleNodes())

	f.Toggle()
	f.MoveDown()
	assert.Equal(t, "main.py", f.Current().Name, "collapsed children are skipped")

	f.MoveUp()
	f.Toggle()
	f.MoveDown()
	assert.Equal(t, "lib.py", f.Current().Name)
}

func TestToggleIgnoresFilesAndUnavailable(t *testing.T) {
	nodes := []*types.Node{
		{Name: "gone", Path: "gone", Kind: types.NodeFolder, Unavailable: true},
		{Name: "main.py", Path: "main.py", Kind: types.NodeFile},
	}
	f := NewFileTree()
	f.SetNodes(nodes)

	f.Toggle()
	assert.Equal(t, "gone", f.Current().Name)

	f.MoveDown()
	f.Toggle()
	assert.Equal(t, "main.py", f.Current().Name)
}

func TestFileCount(t *testing.T) {
	f := NewFileTree()
	f.SetNodes(sampleNodes())
	assert.Equal(t, 2, f.FileCount())
}

func TestViewTruncatesWithoutSplittingRunes(t *testing.T) {
	nodes := []*types.Node{
		{Name: "длинное-имя-файла-кириллицей.py", Path: "a.py", Kind: types.NodeFile},
		{Name: "目录", Path: "dir", Kind: types.NodeFolder, Children: []*types.Node{}},
	}
	f := NewFileTree()
	f.SetNodes(nodes)
	f.SetSize(12, 10)

	out := f.View()
	assert.True(t, utf8.ValidString(out), "truncation must never split a rune")
	assert.Contains(t, out, "...")
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 20))
	assert.Equal(t, "▸ abc...", truncate("▸ abcdefghij", 8))
	assert.True(t, utf8.ValidString(truncate("⊘ незагружаемая-папка", 9)))
}

func TestEmptyTreeView(t *testing.T) {
	f := NewFileTree()
	assert.Contains(t, f.View(), "no files")
	assert.Nil(t, f.Current())
}
