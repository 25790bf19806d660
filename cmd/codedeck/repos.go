package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// reposCmd prints the configured repository catalog.
func reposCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "repos",
		Short: "List the configured repositories",
		Run: func(cmd *cobra.Command, args []string) {
			cfg := loadConfig()
			if len(cfg.Repositories) == 0 {
				fmt.Println("No repositories configured.")
				fmt.Println("Add them under 'repositories:' in the config file.")
				return
			}
			for _, repo := range cfg.Repositories {
				line := repo.Name
				if repo.Language != "" {
					line += " (" + repo.Language + ")"
				}
				if repo.Description != "" {
					line += " - " + repo.Description
				}
				fmt.Println(line)
			}
		},
	}
}
