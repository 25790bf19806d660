package types

import (
	"fmt"
	"strings"
)

// RepositoryEntry describes one repository in the configured catalog.
// Entries are read-only once loaded from configuration.
type RepositoryEntry struct {
	Name        string `yaml:"name" json:"name"`
	Description string `yaml:"description" json:"description"`
	Language    string `yaml:"language" json:"language"`
}

// String returns a human-readable representation for catalog listings.
func (r RepositoryEntry) String() string {
	var sb strings.Builder
	sb.WriteString(r.Name)
	if r.Language != "" {
		sb.WriteString(fmt.Sprintf(" [%s]", r.Language))
	}
	if r.Description != "" {
		sb.WriteString(" - " + r.Description)
	}
	return sb.String()
}

// Entry is a single item from a repository directory listing, in the
// order the hosting API returned it.
type Entry struct {
	Name        string `json:"name"`
	Path        string `json:"path"`
	Type        string `json:"type"` // "file" or "dir"
	DownloadURL string `json:"download_url"`
}

// IsDir reports whether the entry names a directory.
func (e Entry) IsDir() bool {
	return e.Type == "dir"
}

// NodeKind distinguishes files from folders in a built tree.
type NodeKind int

const (
	NodeFile NodeKind = iota
	NodeFolder
)

// Node is one node of an assembled repository file tree. Folder nodes
// always carry a children slice (possibly empty); file nodes never do.
// Path is unique within a tree.
type Node struct {
	Name     string
	Path     string
	Kind     NodeKind
	Children []*Node

	// Unavailable marks a folder whose listing could not be fetched.
	// Only set on partial builds.
	Unavailable bool
}

// IsDir reports whether the node is a folder.
func (n *Node) IsDir() bool {
	return n.Kind == NodeFolder
}

// CountFiles returns the number of file nodes in the subtree rooted at n.
func (n *Node) CountFiles() int {
	if n.Kind == NodeFile {
		return 1
	}
	total := 0
	for _, c := range n.Children {
		total += c.CountFiles()
	}
	return total
}
