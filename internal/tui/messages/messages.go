package messages

import (
	"codedeck/pkg/types"
)

type ErrorMsg struct {
	Err error
}

// TreeLoadedMsg carries the assembled file tree of a repository.
type TreeLoadedMsg struct {
	Repo  string
	Nodes []*types.Node
	Err   error
}

// FileLoadedMsg carries one fetched file. Seq ties the message to the
// selection that requested it; stale sequences are discarded.
type FileLoadedMsg struct {
	Seq     int
	Path    string
	Content string
	Err     error
}

// ReadmeLoadedMsg carries the rendered repository README.
type ReadmeLoadedMsg struct {
	Repo    string
	Content string
	Err     error
}

// ExecDoneMsg carries one run's result. Seq ties the message to the
// run that requested it; stale sequences are discarded.
type ExecDoneMsg struct {
	Seq    int
	Result *types.ExecutionResult
	Err    error
}
