// Package run submits programs to the remote execution API and shapes
// the raw result into user-facing feedback.
package run

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"codedeck/internal/errors"
	"codedeck/internal/log"
	"codedeck/pkg/types"
)

// Client submits execution requests to an upstream endpoint, injecting
// the API credentials into each payload.
type Client struct {
	endpoint     string
	clientID     string
	clientSecret string
	hc           *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client, mainly for tests.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.hc = hc
	}
}

// WithTimeout bounds how long a single run may take end to end.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.hc.Timeout = d
		}
	}
}

// NewClient creates an execution client for the given endpoint and
// credential pair.
func NewClient(endpoint, clientID, clientSecret string, opts ...Option) *Client {
	c := &Client{
		endpoint:     endpoint,
		clientID:     clientID,
		clientSecret: clientSecret,
		hc:           &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// wirePayload is the upstream request shape: the submitted program plus
// the injected credentials.
type wirePayload struct {
	ClientID     string `json:"clientId"`
	ClientSecret string `json:"clientSecret"`
	Script       string `json:"script"`
	Stdin        string `json:"stdin"`
	Language     string `json:"language"`
	VersionIndex int    `json:"versionIndex"`
}

// Execute submits one program for execution and returns the decoded
// upstream result. Credentials must be configured; an empty pair fails
// before any network traffic.
func (c *Client) Execute(ctx context.Context, req types.ExecutionRequest) (*types.ExecutionResult, error) {
	raw, err := c.ExecuteRaw(ctx, req)
	if err != nil {
		return nil, err
	}

	var result types.ExecutionResult
	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, errors.NewExecError("decoding execution result", req.Language, errors.ExecutionFailed, err)
	}
	if result.StatusCode == 0 {
		result.StatusCode = http.StatusOK
	}
	return &result, nil
}

// ExecuteRaw submits one program for execution and returns the
// upstream response body untouched, for callers that relay it onward.
func (c *Client) ExecuteRaw(ctx context.Context, req types.ExecutionRequest) (json.RawMessage, error) {
	if c.clientID == "" || c.clientSecret == "" {
		return nil, errors.ErrMissingCredentials
	}

	payload := wirePayload{
		ClientID:     c.clientID,
		ClientSecret: c.clientSecret,
		Script:       req.Script,
		Stdin:        req.Stdin,
		Language:     req.Language,
		VersionIndex: req.VersionIndex,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, errors.NewExecError("encoding request", req.Language, errors.ExecutionFailed, err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, errors.NewExecError("building request", req.Language, errors.ExecutionFailed, err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	log.Debug("executing %s program (%d bytes)", req.Language, len(req.Script))

	resp, err := c.hc.Do(httpReq)
	if err != nil {
		return nil, errors.NewExecError("execution service unreachable", req.Language, errors.UpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.NewExecError(fmt.Sprintf("execution service returned status %d", resp.StatusCode), req.Language, errors.UpstreamUnavailable, nil)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.NewExecError("reading execution result", req.Language, errors.ExecutionFailed, err)
	}
	if !json.Valid(raw) {
		return nil, errors.NewExecError("malformed execution result", req.Language, errors.ExecutionFailed, nil)
	}
	return raw, nil
}
