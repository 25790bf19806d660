// Package tree assembles a nested file tree for a repository from the
// flat per-directory listings of the hosting API.
package tree

import (
	"context"
	"strings"

	"codedeck/internal/log"
	"codedeck/pkg/types"

	"github.com/gobwas/glob"
	"golang.org/x/sync/errgroup"
)

// defaultFetchLimit bounds how many directory listings are in flight
// at once per tree level.
const defaultFetchLimit = 4

// Lister fetches the flat listing of one directory. Satisfied by
// *github.Client.
type Lister interface {
	List(ctx context.Context, repo, path string) ([]types.Entry, error)
}

// Builder turns listings into a tree of types.Node. The zero policy is
// strict: any failed sub-listing invalidates the whole build.
type Builder struct {
	lister       Lister
	ignore       []glob.Glob
	showHidden   bool
	allowPartial bool
	fetchLimit   int
}

// Option configures a Builder.
type Option func(*Builder)

// WithIgnoreGlobs excludes entries whose name matches any pattern.
func WithIgnoreGlobs(globs []glob.Glob) Option {
	return func(b *Builder) {
		b.ignore = globs
	}
}

// WithShowHidden includes dotfiles in the built tree.
func WithShowHidden(show bool) Option {
	return func(b *Builder) {
		b.showHidden = show
	}
}

// WithAllowPartial keeps the rest of the tree when a subdirectory
// listing fails; the failed folder is marked unavailable instead of
// aborting the build.
func WithAllowPartial(allow bool) Option {
	return func(b *Builder) {
		b.allowPartial = allow
	}
}

// WithFetchLimit bounds concurrent directory fetches per tree level.
func WithFetchLimit(n int) Option {
	return func(b *Builder) {
		if n > 0 {
			b.fetchLimit = n
		}
	}
}

// NewBuilder creates a Builder over the given lister.
func NewBuilder(lister Lister, opts ...Option) *Builder {
	b := &Builder{
		lister:     lister,
		fetchLimit: defaultFetchLimit,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Build fetches the repository root listing and recursively expands
// every directory into its own listing. Entry order is preserved from
// each listing; the caller gets the root-level nodes.
func (b *Builder) Build(ctx context.Context, repo string) ([]*types.Node, error) {
	entries, err := b.lister.List(ctx, repo, "")
	if err != nil {
		return nil, err
	}
	return b.buildLevel(ctx, repo, entries)
}

// buildLevel converts one directory's entries into nodes, fetching
// subdirectory listings concurrently. Each directory node is assigned
// a slot up front so concurrency never reorders siblings.
func (b *Builder) buildLevel(ctx context.Context, repo string, entries []types.Entry) ([]*types.Node, error) {
	nodes := make([]*types.Node, 0, len(entries))
	var folders []*types.Node

	for _, entry := range entries {
		if b.excluded(entry.Name) {
			continue
		}
		if entry.IsDir() {
			node := &types.Node{
				Name:     entry.Name,
				Path:     entry.Path,
				Kind:     types.NodeFolder,
				Children: []*types.Node{},
			}
			nodes = append(nodes, node)
			folders = append(folders, node)
		} else {
			nodes = append(nodes, &types.Node{
				Name: entry.Name,
				Path: entry.Path,
				Kind: types.NodeFile,
			})
		}
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(b.fetchLimit)
	for _, folder := range folders {
		folder := folder
		g.Go(func() error {
			sub, err := b.lister.List(gctx, repo, folder.Path)
			if err != nil {
				if b.allowPartial {
					log.WithError(err).Warnf("listing %s failed, keeping partial tree", folder.Path)
					folder.Unavailable = true
					return nil
				}
				return err
			}
			children, err := b.buildLevel(gctx, repo, sub)
			if err != nil {
				return err
			}
			folder.Children = children
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return nodes, nil
}

func (b *Builder) excluded(name string) bool {
	if !b.showHidden && strings.HasPrefix(name, ".") {
		return true
	}
	for _, g := range b.ignore {
		if g.Match(name) {
			return true
		}
	}
	return false
}

// CountFiles returns the number of file leaves across a node slice.
func CountFiles(nodes []*types.Node) int {
	total := 0
	for _, n := range nodes {
		total += n.CountFiles()
	}
	return total
}
