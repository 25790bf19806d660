package main

import (
	"fmt"
	"os"

	"codedeck/internal/tui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

// browseCmd starts the TUI. Without an argument it opens the hub
// screen; with a repository name it jumps straight into the editor.
func browseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "browse [repository]",
		Short: "Open the repository browser",
		Long:  `Open the terminal browser. Pick a repository from the hub, or name one to open it directly.`,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := loadConfig()

			var m *tui.Model
			if len(args) == 1 {
				repo, ok := cfg.Repository(args[0])
				if !ok {
					return fmt.Errorf("repository %q is not in the configured catalog", args[0])
				}
				m = tui.NewForRepo(cfg, repo)
			} else {
				m = tui.New(cfg)
			}

			p := tea.NewProgram(m, tea.WithAltScreen())
			if _, err := p.Run(); err != nil {
				fmt.Printf("Error running TUI: %v\n", err)
				os.Exit(1)
			}
			return nil
		},
	}
}
