package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"codedeck/cmd/codedeck/cli"
	"codedeck/internal/lang"
	"codedeck/internal/run"
	"codedeck/pkg/types"

	"github.com/spf13/cobra"
)

// runCmd executes a local file against the remote execution service,
// bypassing the browser.
func runCmd() *cobra.Command {
	var stdinFile string

	cmd := &cobra.Command{
		Use:   "run <file>",
		Short: "Run a local source file remotely",
		Long:  `Submit a local source file to the execution service and print its output. Program input can be piped in or read from a file.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := loadConfig()

			path := args[0]
			source, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("reading %s: %w", path, err)
			}

			if !lang.Runnable(path) {
				return fmt.Errorf("%s has no associated execution language", path)
			}
			language := lang.Detect(path)

			stdin, err := readStdin(stdinFile)
			if err != nil {
				return err
			}

			client := run.NewClient(
				cfg.Execute.Endpoint,
				cfg.Execute.ClientID,
				cfg.Execute.ClientSecret,
				run.WithTimeout(time.Duration(cfg.Execute.TimeoutSeconds)*time.Second),
			)

			result, err := client.Execute(cmd.Context(), types.ExecutionRequest{
				Script:       string(source),
				Stdin:        stdin,
				Language:     language.Name,
				VersionIndex: language.VersionIndex,
			})
			if err != nil {
				return err
			}

			fmt.Print(run.Format(result.Output, result.Succeeded(), stdin))
			if result.Succeeded() {
				fmt.Println(cli.Success(fmt.Sprintf("cpu %s · mem %s", result.CPUTime, result.Memory)))
			} else {
				fmt.Println(cli.Error("program exited with errors"))
				os.Exit(1)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&stdinFile, "stdin", "i", "", "file to use as program input")
	return cmd
}

// readStdin collects program input from the flag file or, when data is
// piped in, from the command's own standard input.
func readStdin(path string) (string, error) {
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("reading input file: %w", err)
		}
		return string(data), nil
	}

	info, err := os.Stdin.Stat()
	if err != nil || info.Mode()&os.ModeCharDevice != 0 {
		return "", nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("reading piped input: %w", err)
	}
	return string(data), nil
}
