package github_test

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"codedeck/internal/errors"
	"codedeck/internal/github"
	"codedeck/pkg/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, handler http.HandlerFunc) (*httptest.Server, *github.Client) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return srv, github.NewClient(srv.URL, "testowner", github.WithHTTPClient(srv.Client()))
}

func TestList(t *testing.T) {
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/repos/testowner/sandbox/contents", r.URL.Path)
		assert.Equal(t, "application/vnd.github+json", r.Header.Get("Accept"))

		entries := []types.Entry{
			{Name: "src", Path: "src", Type: "dir"},
			{Name: "main.py", Path: "main.py", Type: "file", DownloadURL: "https://example/main.py"},
		}
		require.NoError(t, json.NewEncoder(w).Encode(entries))
	})

	entries, err := client.List(context.Background(), "sandbox", "")
	require.NoError(t, err)
	require.Len(t, entries, 2)

	// Order must be preserved from the response
	assert.Equal(t, "src", entries[0].Name)
	assert.True(t, entries[0].IsDir())
	assert.Equal(t, "main.py", entries[1].Name)
	assert.False(t, entries[1].IsDir())
}

func TestListSubdirectoryPath(t *testing.T) {
	var gotPath string
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_, _ = w.Write([]byte("[]"))
	})

	_, err := client.List(context.Background(), "sandbox", "src/util")
	require.NoError(t, err)
	assert.Equal(t, "/repos/testowner/sandbox/contents/src/util", gotPath)
}

func TestFileContent(t *testing.T) {
	source := "print('hello')\n"
	// GitHub wraps base64 content with newlines
	encoded := base64.StdEncoding.EncodeToString([]byte(source))
	wrapped := encoded[:8] + "\n" + encoded[8:] + "\n"

	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		resp := map[string]string{
			"name":     "main.py",
			"path":     "main.py",
			"content":  wrapped,
			"encoding": "base64",
		}
		require.NoError(t, json.NewEncoder(w).Encode(resp))
	})

	content, err := client.FileContent(context.Background(), "sandbox", "main.py")
	require.NoError(t, err)
	assert.Equal(t, source, content)
}

func TestFileContentMalformedBase64(t *testing.T) {
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		resp := map[string]string{
			"path":     "broken.bin",
			"content":  "!!!not-base64!!!",
			"encoding": "base64",
		}
		require.NoError(t, json.NewEncoder(w).Encode(resp))
	})

	_, err := client.FileContent(context.Background(), "sandbox", "broken.bin")
	require.Error(t, err)
	assert.True(t, errors.IsDecodeError(err), "malformed content must surface as a decode error")
}

func TestNotFound(t *testing.T) {
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	_, err := client.List(context.Background(), "sandbox", "missing")
	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))
}

func TestServerError(t *testing.T) {
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := client.List(context.Background(), "sandbox", "")
	require.Error(t, err)
	assert.True(t, errors.IsFetchError(err))
	assert.False(t, errors.IsNotFound(err))
}

func TestReadme(t *testing.T) {
	md := "# Sandbox\n\nScratch repository.\n"
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/repos/testowner/sandbox/readme", r.URL.Path)
		resp := map[string]string{
			"path":     "README.md",
			"content":  base64.StdEncoding.EncodeToString([]byte(md)),
			"encoding": "base64",
		}
		require.NoError(t, json.NewEncoder(w).Encode(resp))
	})

	content, err := client.Readme(context.Background(), "sandbox")
	require.NoError(t, err)
	assert.Equal(t, md, content)
}

func TestAuthorizationHeader(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_, _ = w.Write([]byte("[]"))
	}))
	defer srv.Close()

	client := github.NewClient(srv.URL, "testowner", github.WithHTTPClient(srv.Client()), github.WithToken("tok123"))
	_, err := client.List(context.Background(), "sandbox", "")
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok123", gotAuth)
}
