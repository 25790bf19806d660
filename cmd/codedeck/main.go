package main

import (
	"fmt"
	"os"

	"codedeck/cmd/codedeck/cli"
	"codedeck/internal/config"
	"codedeck/internal/log"

	"github.com/spf13/cobra"
)

var (
	version = "dev"

	cfgFile string
	debug   bool
)

// Entry point for the application
func main() {
	rootCmd := &cobra.Command{
		Use:     "codedeck",
		Short:   "Browse and run code from your repositories in the terminal",
		Long:    `Codedeck is a terminal workspace for browsing repository code and running it against a remote execution service.`,
		Version: version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if debug {
				log.SetDebug(true)
			}
		},
	}

	// Prepend logo to help message
	helpTemplate := cli.DrawLogo() + "\n\n" + rootCmd.UsageTemplate()
	rootCmd.SetUsageTemplate(helpTemplate)
	rootCmd.SetHelpTemplate(helpTemplate)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/codedeck/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")

	rootCmd.AddCommand(browseCmd())
	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(runCmd())
	rootCmd.AddCommand(reposCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// loadConfig resolves the configuration, falling back to defaults when
// no file is present.
func loadConfig() *config.Config {
	var (
		cfg *config.Config
		err error
	)
	if cfgFile != "" {
		cfg, err = config.LoadConfigFile(cfgFile)
	} else {
		cfg, err = config.LoadConfig()
	}
	if err != nil {
		fmt.Printf("Warning: %v\n", err)
		fmt.Println("Using default settings.")
		cfg = config.New()
	}
	return cfg
}
