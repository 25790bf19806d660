package tui

import (
	"context"
	"testing"

	"codedeck/internal/config"
	"codedeck/internal/errors"
	"codedeck/internal/tui/messages"
	"codedeck/pkg/types"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubFetcher struct {
	listings map[string][]types.Entry
	files    map[string]string
	readme   string
}

func (s *stubFetcher) List(ctx context.Context, repo, path string) ([]types.Entry, error) {
	entries, ok := s.listings[path]
	if !ok {
		return nil, errors.NewFetchError("resource not found", path, errors.NotFound, nil)
	}
	return entries, nil
}

func (s *stubFetcher) FileContent(ctx context.Context, repo, path string) (string, error) {
	content, ok := s.files[path]
	if !ok {
		return "", errors.NewFetchError("resource not found", path, errors.NotFound, nil)
	}
	return content, nil
}

func (s *stubFetcher) Readme(ctx context.Context, repo string) (string, error) {
	return s.readme, nil
}

type stubRunner struct {
	calls  int
	result *types.ExecutionResult
	err    error
}

func (s *stubRunner) Execute(ctx context.Context, req types.ExecutionRequest) (*types.ExecutionResult, error) {
	s.calls++
	return s.result, s.err
}

func newEditorModel(t *testing.T) (*Model, *stubRunner) {
	t.Helper()
	cfg := config.NewTestConfig()
	fetcher := &stubFetcher{
		listings: map[string][]types.Entry{
			"": {
				{Name: "main.py", Path: "main.py", Type: "file"},
				{Name: "notes.txt", Path: "notes.txt", Type: "file"},
			},
		},
		files: map[string]string{
			"main.py":   "print(input())",
			"notes.txt": "plain notes",
		},
		readme: "# Sandbox\n",
	}
	runner := &stubRunner{result: &types.ExecutionResult{Output: "ok\n", StatusCode: 200}}
	repo, ok := cfg.Repository("sandbox")
	require.True(t, ok)
	m := NewForRepo(cfg, repo, WithFetcher(fetcher), WithRunner(runner))
	return m, runner
}

func key(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestHubOpensSelectedRepository(t *testing.T) {
	cfg := config.NewTestConfig()
	m := New(cfg, WithFetcher(&stubFetcher{listings: map[string][]types.Entry{"": {}}}))
	assert.Equal(t, types.ScreenHub, m.Screen())

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(*Model)
	assert.Equal(t, types.ScreenEditor, m.Screen())
	assert.Equal(t, "sandbox", m.RepoName())
	assert.NotNil(t, cmd, "opening a repository must start the fetches")
}

func TestHubFilterCapturesCommandKeys(t *testing.T) {
	cfg := config.NewTestConfig()
	m := New(cfg, WithFetcher(&stubFetcher{listings: map[string][]types.Entry{"": {}}}))

	// "/" starts filtering; after that, keys are filter input
	updated, _ := m.Update(key("/"))
	m = updated.(*Model)

	updated, cmd := m.Update(key("q"))
	m = updated.(*Model)
	assert.Equal(t, types.ScreenHub, m.Screen())
	if cmd != nil {
		_, quit := cmd().(tea.QuitMsg)
		assert.False(t, quit, "typing q into the filter must not quit")
	}

	// Enter applies the filter instead of opening a repository
	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(*Model)
	assert.Equal(t, types.ScreenHub, m.Screen())
}

func TestEditorEscReturnsToHub(t *testing.T) {
	m, _ := newEditorModel(t)
	m.codeText = "stale"
	m.activePath = "main.py"

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = updated.(*Model)
	assert.Equal(t, types.ScreenHub, m.Screen())
	assert.Empty(t, m.ActiveCode(), "leaving the editor clears the open file")
	assert.Empty(t, m.ActivePath())
}

func TestTreeLoaded(t *testing.T) {
	m, _ := newEditorModel(t)

	nodes := []*types.Node{
		{Name: "main.py", Path: "main.py", Kind: types.NodeFile},
	}
	updated, _ := m.Update(messages.TreeLoadedMsg{Repo: "sandbox", Nodes: nodes})
	m = updated.(*Model)
	require.NotNil(t, m.tree.Current())
	assert.Equal(t, "main.py", m.tree.Current().Name)
}

func TestTreeLoadedForOtherRepoIgnored(t *testing.T) {
	m, _ := newEditorModel(t)

	updated, _ := m.Update(messages.TreeLoadedMsg{
		Repo:  "other",
		Nodes: []*types.Node{{Name: "x", Path: "x", Kind: types.NodeFile}},
	})
	m = updated.(*Model)
	assert.Nil(t, m.tree.Current())
}

func TestFileLoaded(t *testing.T) {
	m, _ := newEditorModel(t)
	m.fileSeq = 1

	updated, _ := m.Update(messages.FileLoadedMsg{Seq: 1, Path: "main.py", Content: "print(1)"})
	m = updated.(*Model)
	assert.Equal(t, "main.py", m.ActivePath())
	assert.Equal(t, "print(1)", m.ActiveCode())
}

func TestStaleFileLoadDiscarded(t *testing.T) {
	m, _ := newEditorModel(t)
	m.fileSeq = 2
	m.activePath = "current.py"
	m.codeText = "current"

	// A slow response for an older selection arrives after a newer one
	updated, _ := m.Update(messages.FileLoadedMsg{Seq: 1, Path: "old.py", Content: "old"})
	m = updated.(*Model)
	assert.Equal(t, "current.py", m.ActivePath())
	assert.Equal(t, "current", m.ActiveCode())
}

func TestFailedFileLoadKeepsPreviousFile(t *testing.T) {
	m, _ := newEditorModel(t)
	m.fileSeq = 1
	m.activePath = "main.py"
	m.codeText = "print(1)"

	updated, _ := m.Update(messages.FileLoadedMsg{
		Seq:  1,
		Path: "broken.py",
		Err:  errors.NewFetchError("boom", "broken.py", errors.FetchFailed, nil),
	})
	m = updated.(*Model)
	assert.Equal(t, "main.py", m.ActivePath())
	assert.Equal(t, "print(1)", m.ActiveCode())
}

func TestRunFormatsOutput(t *testing.T) {
	m, _ := newEditorModel(t)
	m.runSeq = 1
	m.runStdin = ""

	updated, _ := m.Update(messages.ExecDoneMsg{
		Seq:    1,
		Result: &types.ExecutionResult{Output: "hello\n", StatusCode: 200},
	})
	m = updated.(*Model)
	assert.Equal(t, "hello\n", m.Output())
}

func TestRunAppendsInputHint(t *testing.T) {
	m, _ := newEditorModel(t)
	m.runSeq = 1
	m.runStdin = ""

	updated, _ := m.Update(messages.ExecDoneMsg{
		Seq: 1,
		Result: &types.ExecutionResult{
			Output:     "EOFError: EOF when reading a line\n",
			StatusCode: 200,
			Error:      "runtime error",
		},
	})
	m = updated.(*Model)
	assert.Contains(t, m.Output(), "EOFError")
	assert.Contains(t, m.Output(), "reads from standard input")
}

func TestRunWithStdinSkipsHint(t *testing.T) {
	m, _ := newEditorModel(t)
	m.runSeq = 1
	m.runStdin = "5\n"

	updated, _ := m.Update(messages.ExecDoneMsg{
		Seq: 1,
		Result: &types.ExecutionResult{
			Output:     "EOFError: EOF when reading a line\n",
			StatusCode: 200,
			Error:      "runtime error",
		},
	})
	m = updated.(*Model)
	assert.NotContains(t, m.Output(), "reads from standard input")
}

func TestStaleRunDiscarded(t *testing.T) {
	m, _ := newEditorModel(t)
	m.runSeq = 3
	m.outputText = "latest"

	updated, _ := m.Update(messages.ExecDoneMsg{
		Seq:    2,
		Result: &types.ExecutionResult{Output: "stale\n", StatusCode: 200},
	})
	m = updated.(*Model)
	assert.Equal(t, "latest", m.Output())
}

func TestRunRequiresRunnableFile(t *testing.T) {
	m, runner := newEditorModel(t)
	m.activePath = "notes.txt"
	m.codeText = "plain notes"

	cmd := m.startRun()
	assert.Nil(t, cmd)
	assert.Zero(t, runner.calls, "non-runnable files never reach the execution service")
}

func TestPanelToggleKeys(t *testing.T) {
	m, _ := newEditorModel(t)
	before := m.Panels().Visible()

	updated, _ := m.Update(key("2"))
	m = updated.(*Model)
	assert.NotContains(t, m.Panels().Visible(), types.PanelReadme)

	updated, _ = m.Update(key("2"))
	m = updated.(*Model)
	assert.Equal(t, before, m.Panels().Visible())
}

func TestExecFailureShowsErrorOutput(t *testing.T) {
	m, _ := newEditorModel(t)
	m.runSeq = 1

	updated, _ := m.Update(messages.ExecDoneMsg{Seq: 1, Err: errors.ErrMissingCredentials})
	m = updated.(*Model)
	assert.Contains(t, m.Output(), "credentials")
}
