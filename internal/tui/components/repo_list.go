package components

import (
	"codedeck/pkg/types"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
)

// repoItem adapts a catalog entry to the bubbles list item interface.
type repoItem struct {
	entry types.RepositoryEntry
}

func (i repoItem) Title() string { return i.entry.Name }

func (i repoItem) Description() string {
	if i.entry.Language != "" && i.entry.Description != "" {
		return i.entry.Language + " · " + i.entry.Description
	}
	if i.entry.Description != "" {
		return i.entry.Description
	}
	return i.entry.Language
}

func (i repoItem) FilterValue() string { return i.entry.Name }

// RepoList is the hub screen's repository picker.
type RepoList struct {
	list list.Model
}

// NewRepoList creates a picker over the configured catalog.
func NewRepoList(entries []types.RepositoryEntry) *RepoList {
	items := make([]list.Item, 0, len(entries))
	for _, e := range entries {
		items = append(items, repoItem{entry: e})
	}

	l := list.New(items, list.NewDefaultDelegate(), 0, 0)
	l.Title = "repositories"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)

	return &RepoList{list: l}
}

// SetSize adjusts the drawable area.
func (r *RepoList) SetSize(width, height int) {
	r.list.SetSize(width, height)
}

// Update forwards messages to the underlying list.
func (r *RepoList) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	r.list, cmd = r.list.Update(msg)
	return cmd
}

// Filtering reports whether the list's filter input is capturing
// keystrokes.
func (r *RepoList) Filtering() bool {
	return r.list.FilterState() == list.Filtering
}

// Selected returns the catalog entry under the cursor.
func (r *RepoList) Selected() (types.RepositoryEntry, bool) {
	item, ok := r.list.SelectedItem().(repoItem)
	if !ok {
		return types.RepositoryEntry{}, false
	}
	return item.entry, true
}

// View renders the picker.
func (r *RepoList) View() string {
	return r.list.View()
}
