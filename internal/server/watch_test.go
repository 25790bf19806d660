package server

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"codedeck/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeServeConfig(t *testing.T, path, endpoint, repo string) {
	t.Helper()
	content := `
execute:
  endpoint: "` + endpoint + `"
repositories:
  - name: "` + repo + `"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func (s *Server) snapshotConfig() *config.Config {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cfg
}

func TestWatchConfigReloadsOnRewrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	writeServeConfig(t, path, "https://one.example/execute", "sandbox")

	cfg, err := config.LoadConfigFile(path)
	require.NoError(t, err)

	s := New(cfg, WithConfigPath(path))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan error, 1)
	go func() { done <- s.watchConfig(ctx) }()

	// Give the watcher time to register before touching the file
	time.Sleep(100 * time.Millisecond)
	writeServeConfig(t, path, "https://two.example/execute", "examples")

	require.Eventually(t, func() bool {
		return s.snapshotConfig().Execute.Endpoint == "https://two.example/execute"
	}, 3*time.Second, 10*time.Millisecond, "rewrite must swap the served configuration")

	// The catalog swaps together with the endpoint
	reloaded := s.snapshotConfig()
	require.Len(t, reloaded.Repositories, 1)
	assert.Equal(t, "examples", reloaded.Repositories[0].Name)

	cancel()
	require.NoError(t, <-done)
}

func TestWatchConfigKeepsPreviousOnBadRewrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	writeServeConfig(t, path, "https://good.example/execute", "sandbox")

	cfg, err := config.LoadConfigFile(path)
	require.NoError(t, err)

	s := New(cfg, WithConfigPath(path))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan error, 1)
	go func() { done <- s.watchConfig(ctx) }()

	time.Sleep(100 * time.Millisecond)
	require.NoError(t, os.WriteFile(path, []byte("execute: [broken\n"), 0644))

	// The reload fails validation, so the last good config stays live
	time.Sleep(500 * time.Millisecond)
	assert.Equal(t, "https://good.example/execute", s.snapshotConfig().Execute.Endpoint)

	// A subsequent valid rewrite still takes effect
	writeServeConfig(t, path, "https://fixed.example/execute", "sandbox")
	require.Eventually(t, func() bool {
		return s.snapshotConfig().Execute.Endpoint == "https://fixed.example/execute"
	}, 3*time.Second, 10*time.Millisecond)

	cancel()
	require.NoError(t, <-done)
}
