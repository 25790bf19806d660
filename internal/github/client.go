// Package github is a stateless client for the repository hosting
// API: directory listings, single-file content, and READMEs. Nothing
// is cached across calls.
package github

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"codedeck/internal/errors"
	"codedeck/internal/log"
	"codedeck/pkg/types"
)

// Client talks to a GitHub-style contents API for a single owner.
type Client struct {
	base  string
	owner string
	token string
	hc    *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client, mainly for tests.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.hc = hc
	}
}

// WithToken sets a bearer token for authenticated requests.
func WithToken(token string) Option {
	return func(c *Client) {
		c.token = token
	}
}

// NewClient creates a listing client for the given API base URL and
// repository owner.
func NewClient(base, owner string, opts ...Option) *Client {
	c := &Client{
		base:  strings.TrimRight(base, "/"),
		owner: owner,
		hc:    &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Owner returns the configured repository owner.
func (c *Client) Owner() string {
	return c.owner
}

// fileContentResponse is the single-file shape of the contents
// endpoint. Content is base64 with embedded newlines.
type fileContentResponse struct {
	Name     string `json:"name"`
	Path     string `json:"path"`
	Content  string `json:"content"`
	Encoding string `json:"encoding"`
}

// List fetches the ordered entries of one directory of a repository.
// An empty path lists the repository root. Order is preserved exactly
// as the API returned it.
func (c *Client) List(ctx context.Context, repo, path string) ([]types.Entry, error) {
	u := c.contentsURL(repo, path)

	var entries []types.Entry
	if err := c.getJSON(ctx, u, &entries); err != nil {
		return nil, err
	}

	log.Debug("listed %s/%s (%d entries)", repo, path, len(entries))
	return entries, nil
}

// FileContent fetches a single file and decodes its base64 content.
// Malformed content is reported as a decode error rather than
// propagated raw.
func (c *Client) FileContent(ctx context.Context, repo, path string) (string, error) {
	u := c.contentsURL(repo, path)

	var resp fileContentResponse
	if err := c.getJSON(ctx, u, &resp); err != nil {
		return "", err
	}

	return decodeContent(resp, path)
}

// Readme fetches the repository README as markdown text.
func (c *Client) Readme(ctx context.Context, repo string) (string, error) {
	u := fmt.Sprintf("%s/repos/%s/%s/readme", c.base, url.PathEscape(c.owner), url.PathEscape(repo))

	var resp fileContentResponse
	if err := c.getJSON(ctx, u, &resp); err != nil {
		return "", err
	}

	return decodeContent(resp, resp.Path)
}

func (c *Client) contentsURL(repo, path string) string {
	u := fmt.Sprintf("%s/repos/%s/%s/contents", c.base, url.PathEscape(c.owner), url.PathEscape(repo))
	if path != "" {
		// Escape each segment but keep the separators
		segments := strings.Split(path, "/")
		for i, s := range segments {
			segments[i] = url.PathEscape(s)
		}
		u += "/" + strings.Join(segments, "/")
	}
	return u
}

func (c *Client) getJSON(ctx context.Context, u string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return errors.NewFetchError("building request", u, errors.FetchFailed, err)
	}
	req.Header.Set("Accept", "application/vnd.github+json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		return errors.NewFetchError("request failed", u, errors.FetchFailed, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return errors.NewFetchError("resource not found", u, errors.NotFound, nil)
	case resp.StatusCode == http.StatusForbidden:
		return errors.NewFetchError("rate limited or forbidden", u, errors.RateLimited, nil)
	case resp.StatusCode != http.StatusOK:
		return errors.NewFetchError(fmt.Sprintf("unexpected status %d", resp.StatusCode), u, errors.FetchFailed, nil)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.NewFetchError("decoding response", u, errors.FetchFailed, err)
	}
	return nil
}

// decodeContent turns the API's base64 payload into text. GitHub wraps
// the base64 stream with newlines, which the decoder rejects unless
// stripped first.
func decodeContent(resp fileContentResponse, path string) (string, error) {
	if resp.Encoding != "" && resp.Encoding != "base64" {
		return "", errors.NewDecodeError(fmt.Sprintf("unsupported encoding %q", resp.Encoding), path, nil)
	}

	compact := strings.Map(func(r rune) rune {
		if r == '\n' || r == '\r' {
			return -1
		}
		return r
	}, resp.Content)

	raw, err := base64.StdEncoding.DecodeString(compact)
	if err != nil {
		return "", errors.NewDecodeError("invalid base64 content", path, err)
	}
	return string(raw), nil
}
