package main

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"codedeck/internal/server"

	"github.com/spf13/cobra"
)

// serveCmd runs the execution proxy.
func serveCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the execution proxy server",
		Long:  `Run the local proxy that injects execution API credentials and forwards run requests upstream.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := loadConfig()
			if addr != "" {
				cfg.Server.Addr = addr
			}

			opts := []server.Option{}
			if path := configWatchPath(); path != "" {
				opts = append(opts, server.WithConfigPath(path))
			}

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return server.New(cfg, opts...).Serve(ctx)
		},
	}

	cmd.Flags().StringVarP(&addr, "addr", "a", "", "listen address (overrides config)")
	return cmd
}

// configWatchPath returns the config file to hot-reload, empty when
// none exists on disk.
func configWatchPath() string {
	path := cfgFile
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		path = filepath.Join(home, ".config", "codedeck", "config.yaml")
	}
	if _, err := os.Stat(path); err != nil {
		return ""
	}
	return path
}
