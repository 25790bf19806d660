package errors_test

import (
	stderrors "errors"
	"testing"

	"codedeck/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchError(t *testing.T) {
	underlying := stderrors.New("connection refused")
	err := errors.NewFetchError("listing failed", "https://api.example.com/repos/x", errors.FetchFailed, underlying)

	assert.Contains(t, err.Error(), "listing failed")
	assert.Contains(t, err.Error(), "https://api.example.com/repos/x")
	assert.Contains(t, err.Error(), "connection refused")
	assert.Equal(t, errors.FetchFailed, err.Kind())
	assert.Equal(t, "https://api.example.com/repos/x", err.URL())
	assert.True(t, errors.Is(err, underlying) || stderrors.Is(err, underlying))
}

func TestNotFoundDetection(t *testing.T) {
	err := errors.NewFetchError("no such path", "https://api.example.com/contents/missing", errors.NotFound, nil)
	wrapped := errors.Wrap(err, "building tree")

	assert.True(t, errors.IsNotFound(err))
	assert.True(t, errors.IsNotFound(wrapped), "kind should survive wrapping")
	assert.False(t, errors.IsNotFound(errors.New("plain")))
}

func TestDecodeError(t *testing.T) {
	err := errors.NewDecodeError("invalid base64 content", "src/main.py", stderrors.New("illegal base64 data"))

	assert.True(t, errors.IsDecodeError(err))
	assert.Contains(t, err.Error(), "src/main.py")
	assert.Equal(t, "src/main.py", err.Path())
	assert.False(t, errors.IsDecodeError(errors.New("plain")))
}

func TestMissingCredentials(t *testing.T) {
	assert.True(t, errors.IsMissingCredentials(errors.ErrMissingCredentials))
	assert.False(t, errors.IsMissingCredentials(errors.New("something else")))

	custom := errors.NewConfigError("client id unset", "client_id", errors.MissingCredentials, nil)
	assert.True(t, errors.IsMissingCredentials(custom))
	assert.Equal(t, "client_id", custom.Param())
}

func TestWrapNil(t *testing.T) {
	require.Nil(t, errors.Wrap(nil, "context"))
	require.Nil(t, errors.Wrapf(nil, "context %d", 1))
}

func TestExecError(t *testing.T) {
	err := errors.NewExecError("upstream rejected request", "python3", errors.UpstreamUnavailable, nil)
	assert.True(t, errors.IsExecError(err))
	assert.Equal(t, "python3", err.Language())
	assert.Contains(t, err.Error(), "python3")
}
