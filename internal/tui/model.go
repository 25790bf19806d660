// Package tui implements the terminal front end: a hub screen for
// picking a repository and an editor screen with file tree, code,
// readme, input, and output panels.
package tui

import (
	"context"
	"fmt"
	"time"

	"codedeck/internal/config"
	"codedeck/internal/errors"
	"codedeck/internal/github"
	"codedeck/internal/lang"
	"codedeck/internal/run"
	"codedeck/internal/tree"
	"codedeck/internal/tui/common"
	"codedeck/internal/tui/components"
	"codedeck/internal/tui/messages"
	"codedeck/internal/tui/styles"
	"codedeck/internal/tui/views"
	"codedeck/pkg/types"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
)

const fetchTimeout = 30 * time.Second

// Fetcher is the slice of the hosting client the model needs.
type Fetcher interface {
	List(ctx context.Context, repo, path string) ([]types.Entry, error)
	FileContent(ctx context.Context, repo, path string) (string, error)
	Readme(ctx context.Context, repo string) (string, error)
}

// Runner submits programs for execution.
type Runner interface {
	Execute(ctx context.Context, req types.ExecutionRequest) (*types.ExecutionResult, error)
}

// Model is the top-level bubbletea model for both screens.
type Model struct {
	cfg     *config.Config
	fetcher Fetcher
	runner  Runner

	screen types.Screen
	repo   types.RepositoryEntry

	repoList *components.RepoList
	tree     *components.FileTree
	status   *components.StatusBar
	panels   *PanelSet
	focus    common.Focus

	codeView   viewport.Model
	readmeView viewport.Model
	outputView viewport.Model
	input      textarea.Model

	activePath string
	codeText   string
	readmeText string
	outputText string

	fileSeq  int
	runSeq   int
	runStdin string
	running  bool

	width  int
	height int
}

// Option configures a Model.
type Option func(*Model)

// WithFetcher replaces the hosting client, mainly for tests.
func WithFetcher(f Fetcher) Option {
	return func(m *Model) {
		m.fetcher = f
	}
}

// WithRunner replaces the execution client, mainly for tests.
func WithRunner(r Runner) Option {
	return func(m *Model) {
		m.runner = r
	}
}

// New creates the model on the hub screen.
func New(cfg *config.Config, opts ...Option) *Model {
	styles.Apply(cfg)

	input := textarea.New()
	input.Placeholder = "program input (stdin)"
	input.ShowLineNumbers = false

	m := &Model{
		cfg:      cfg,
		screen:   types.ScreenHub,
		repoList: components.NewRepoList(cfg.Repositories),
		tree:     components.NewFileTree(),
		status:   components.NewStatusBar(),
		panels:   NewPanelSet(),
		input:    input,
	}

	m.fetcher = github.NewClient(cfg.GitHub.APIBase, cfg.GitHub.Owner, github.WithToken(cfg.GitHub.Token))
	m.runner = run.NewClient(
		cfg.Execute.Endpoint,
		cfg.Execute.ClientID,
		cfg.Execute.ClientSecret,
		run.WithTimeout(time.Duration(cfg.Execute.TimeoutSeconds)*time.Second),
	)

	for _, opt := range opts {
		opt(m)
	}
	return m
}

// NewForRepo creates the model already on the editor screen for one
// catalog entry.
func NewForRepo(cfg *config.Config, repo types.RepositoryEntry, opts ...Option) *Model {
	m := New(cfg, opts...)
	m.screen = types.ScreenEditor
	m.repo = repo
	return m
}

// Init implements tea.Model
func (m *Model) Init() tea.Cmd {
	if m.screen == types.ScreenEditor {
		return m.openRepo(m.repo)
	}
	return nil
}

// Update implements tea.Model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.recalcLayout()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case messages.TreeLoadedMsg:
		return m.handleTreeLoaded(msg)

	case messages.FileLoadedMsg:
		return m.handleFileLoaded(msg)

	case messages.ReadmeLoadedMsg:
		return m.handleReadmeLoaded(msg)

	case messages.ExecDoneMsg:
		return m.handleExecDone(msg)

	case messages.ErrorMsg:
		m.status.SetError(msg.Err.Error())
		return m, nil
	}

	cmd := m.status.Update(msg)
	return m, cmd
}

// View implements tea.Model
func (m *Model) View() string {
	if m.screen == types.ScreenHub {
		return views.RenderHub(m)
	}
	return views.RenderEditor(m)
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	}

	if m.screen == types.ScreenHub {
		return m.handleHubKey(msg)
	}
	return m.handleEditorKey(msg)
}

func (m *Model) handleHubKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// While the filter input is capturing keys, every key belongs to
	// the list, including q and enter
	if m.repoList.Filtering() {
		return m, m.repoList.Update(msg)
	}

	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "enter":
		repo, ok := m.repoList.Selected()
		if !ok {
			return m, nil
		}
		m.screen = types.ScreenEditor
		m.repo = repo
		m.recalcLayout()
		return m, m.openRepo(repo)
	}
	return m, m.repoList.Update(msg)
}

func (m *Model) handleEditorKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// The input panel owns most keys while focused
	if m.focus == common.FocusInput {
		switch msg.String() {
		case "esc", "tab":
			m.focus = common.FocusTree
			m.input.Blur()
			return m, nil
		case "ctrl+r":
			return m, m.startRun()
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	switch msg.String() {
	case "q", "esc":
		m.screen = types.ScreenHub
		m.activePath = ""
		m.codeText = ""
		m.outputText = ""
		m.codeView.SetContent("")
		m.outputView.SetContent("")
		m.status.SetText("")
		return m, nil
	case "tab":
		if m.panels.IsVisible(types.PanelInput) {
			m.focus = common.FocusInput
			return m, m.input.Focus()
		}
		return m, nil
	case "up", "k":
		m.tree.MoveUp()
		return m, nil
	case "down", "j":
		m.tree.MoveDown()
		return m, nil
	case "enter", "right", "l":
		return m, m.selectCurrent()
	case "left", "h":
		m.tree.Toggle()
		return m, nil
	case "ctrl+r":
		return m, m.startRun()
	case "1":
		m.togglePanel(types.PanelCode)
		return m, nil
	case "2":
		m.togglePanel(types.PanelReadme)
		return m, nil
	case "3":
		m.togglePanel(types.PanelInput)
		return m, nil
	case "4":
		m.togglePanel(types.PanelOutput)
		return m, nil
	}
	return m, nil
}

func (m *Model) togglePanel(panel types.Panel) {
	m.panels.Toggle(panel)
	if panel == types.PanelInput && !m.panels.IsVisible(types.PanelInput) && m.focus == common.FocusInput {
		m.focus = common.FocusTree
		m.input.Blur()
	}
	m.recalcLayout()
}

// selectCurrent opens a folder or starts fetching the file under the
// cursor. Each fetch gets a fresh sequence so a slow response never
// clobbers a later selection.
func (m *Model) selectCurrent() tea.Cmd {
	node := m.tree.Current()
	if node == nil {
		return nil
	}
	if node.IsDir() {
		m.tree.Toggle()
		return nil
	}

	m.fileSeq++
	seq := m.fileSeq
	path := node.Path
	m.status.SetLoading(true)
	m.status.SetText("loading " + path)

	return tea.Batch(m.status.Tick(), func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()
		content, err := m.fetcher.FileContent(ctx, m.repo.Name, path)
		return messages.FileLoadedMsg{Seq: seq, Path: path, Content: content, Err: err}
	})
}

// openRepo kicks off the tree and readme fetches for a repository.
func (m *Model) openRepo(repo types.RepositoryEntry) tea.Cmd {
	m.status.SetLoading(true)
	m.status.SetText("loading " + repo.Name)

	loadTree := func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()
		builder := tree.NewBuilder(m.fetcher,
			tree.WithIgnoreGlobs(m.cfg.IgnoreGlobs()),
			tree.WithShowHidden(m.cfg.Browse.ShowHidden),
			tree.WithAllowPartial(true),
		)
		nodes, err := builder.Build(ctx, repo.Name)
		return messages.TreeLoadedMsg{Repo: repo.Name, Nodes: nodes, Err: err}
	}

	loadReadme := func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()
		content, err := m.fetcher.Readme(ctx, repo.Name)
		return messages.ReadmeLoadedMsg{Repo: repo.Name, Content: content, Err: err}
	}

	return tea.Batch(m.status.Tick(), loadTree, loadReadme)
}

// startRun submits the active file. Like file selection, each run gets
// a fresh sequence and only the latest result is displayed.
func (m *Model) startRun() tea.Cmd {
	if m.activePath == "" {
		m.status.SetError("no file selected")
		return nil
	}
	if !lang.Runnable(m.activePath) {
		m.status.SetError(fmt.Sprintf("%s is not runnable", m.activePath))
		return nil
	}

	m.runSeq++
	seq := m.runSeq
	m.runStdin = m.input.Value()
	m.running = true
	m.status.SetLoading(true)
	m.status.SetText("running " + m.activePath)

	language := lang.Detect(m.activePath)
	req := types.ExecutionRequest{
		Script:       m.codeText,
		Stdin:        m.runStdin,
		Language:     language.Name,
		VersionIndex: language.VersionIndex,
	}

	return tea.Batch(m.status.Tick(), func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()
		result, err := m.runner.Execute(ctx, req)
		return messages.ExecDoneMsg{Seq: seq, Result: result, Err: err}
	})
}

func (m *Model) handleTreeLoaded(msg messages.TreeLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.Repo != m.repo.Name {
		return m, nil
	}
	m.status.SetLoading(false)
	if msg.Err != nil {
		m.status.SetError("loading tree: " + msg.Err.Error())
		return m, nil
	}
	m.tree.SetNodes(msg.Nodes)
	m.status.SetText(fmt.Sprintf("%s · %d files", m.repo.Name, m.tree.FileCount()))
	return m, nil
}

// handleFileLoaded applies a fetched file. Stale sequences are dropped
// outright; a failed fetch reports the error but leaves the previously
// displayed file untouched.
func (m *Model) handleFileLoaded(msg messages.FileLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.Seq != m.fileSeq {
		return m, nil
	}
	m.status.SetLoading(false)
	if msg.Err != nil {
		m.status.SetError("loading " + msg.Path + ": " + msg.Err.Error())
		return m, nil
	}

	m.activePath = msg.Path
	m.codeText = msg.Content
	m.codeView.SetContent(Highlight(msg.Content, lang.Syntax(msg.Path)))
	m.codeView.GotoTop()
	m.status.SetText(msg.Path)
	return m, nil
}

func (m *Model) handleReadmeLoaded(msg messages.ReadmeLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.Repo != m.repo.Name {
		return m, nil
	}
	if msg.Err != nil {
		if errors.IsNotFound(msg.Err) {
			m.readmeText = "no readme"
		} else {
			m.readmeText = "readme unavailable: " + msg.Err.Error()
		}
		m.readmeView.SetContent(m.readmeText)
		return m, nil
	}

	rendered, err := glamour.Render(msg.Content, "dark")
	if err != nil {
		rendered = msg.Content
	}
	m.readmeText = rendered
	m.readmeView.SetContent(rendered)
	m.readmeView.GotoTop()
	return m, nil
}

func (m *Model) handleExecDone(msg messages.ExecDoneMsg) (tea.Model, tea.Cmd) {
	if msg.Seq != m.runSeq {
		return m, nil
	}
	m.running = false
	m.status.SetLoading(false)

	if msg.Err != nil {
		if errors.IsMissingCredentials(msg.Err) {
			m.outputText = "execution credentials are not configured"
		} else {
			m.outputText = "execution failed: " + msg.Err.Error()
		}
		m.outputView.SetContent(m.outputText)
		m.status.SetError("run failed")
		return m, nil
	}

	m.outputText = run.Format(msg.Result.Output, msg.Result.Succeeded(), m.runStdin)
	m.outputView.SetContent(m.outputText)
	m.outputView.GotoTop()
	if msg.Result.Succeeded() {
		m.status.SetText(fmt.Sprintf("done · cpu %s · mem %s", msg.Result.CPUTime, msg.Result.Memory))
	} else {
		m.status.SetError("program exited with errors")
	}
	return m, nil
}

// recalcLayout distributes the window among the tree column and the
// visible panels.
func (m *Model) recalcLayout() {
	if m.width == 0 || m.height == 0 {
		return
	}

	treeWidth := 32
	if m.width < 80 {
		treeWidth = m.width / 3
	}
	panelWidth := m.width - treeWidth - 6

	visible := len(m.panels.Visible())
	if visible == 0 {
		visible = 1
	}
	panelHeight := (m.height - 4) / visible
	if panelHeight < 3 {
		panelHeight = 3
	}

	m.tree.SetSize(treeWidth, m.height-4)
	m.repoList.SetSize(m.width-4, m.height-4)

	m.codeView = viewport.New(panelWidth, panelHeight)
	m.codeView.SetContent(Highlight(m.codeText, lang.Syntax(m.activePath)))
	m.readmeView = viewport.New(panelWidth, panelHeight)
	m.readmeView.SetContent(m.readmeText)
	m.outputView = viewport.New(panelWidth, panelHeight)
	m.outputView.SetContent(m.outputText)
	m.input.SetWidth(panelWidth)
	m.input.SetHeight(panelHeight)
}

// Reader interface implementations for the view layer.

// CatalogView implements common.HubReader
func (m *Model) CatalogView() string { return m.repoList.View() }

// StatusView implements common.HubReader and common.EditorReader
func (m *Model) StatusView() string { return m.status.View() }

// RepoName implements common.EditorReader
func (m *Model) RepoName() string { return m.repo.Name }

// ActivePath implements common.EditorReader
func (m *Model) ActivePath() string { return m.activePath }

// TreeView implements common.EditorReader
func (m *Model) TreeView() string { return m.tree.View() }

// VisiblePanels implements common.EditorReader
func (m *Model) VisiblePanels() []types.Panel { return m.panels.Visible() }

// PanelFocused implements common.EditorReader
func (m *Model) PanelFocused(p types.Panel) bool {
	return p == types.PanelInput && m.focus == common.FocusInput
}

// LayoutWidth implements common.EditorReader
func (m *Model) LayoutWidth() int { return m.width }

// PanelView implements common.EditorReader
func (m *Model) PanelView(p types.Panel) string {
	switch p {
	case types.PanelCode:
		return m.codeView.View()
	case types.PanelReadme:
		return m.readmeView.View()
	case types.PanelInput:
		return m.input.View()
	case types.PanelOutput:
		if m.running {
			return "running..."
		}
		return m.outputView.View()
	}
	return ""
}

// Accessors used by tests and command wiring.

// Screen returns the active screen.
func (m *Model) Screen() types.Screen { return m.screen }

// ActiveCode returns the raw source of the displayed file.
func (m *Model) ActiveCode() string { return m.codeText }

// Output returns the formatted output panel text.
func (m *Model) Output() string { return m.outputText }

// Panels exposes the panel visibility set.
func (m *Model) Panels() *PanelSet { return m.panels }
