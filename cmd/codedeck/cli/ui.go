// Package cli holds shared terminal presentation helpers for the
// codedeck commands.
package cli

import "github.com/charmbracelet/lipgloss"

var logoStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("213"))

// DrawLogo renders the banner shown on the help screens.
func DrawLogo() string {
	return logoStyle.Render(`
 ██████  ██████  ██████  ███████ ██████  ███████  ██████ ██   ██
██      ██    ██ ██   ██ ██      ██   ██ ██      ██      ██  ██
██      ██    ██ ██   ██ █████   ██   ██ █████   ██      █████
██      ██    ██ ██   ██ ██      ██   ██ ██      ██      ██  ██
 ██████  ██████  ██████  ███████ ██████  ███████  ██████ ██   ██
`)
}

// Error renders an error line for command output.
func Error(msg string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Render("✗ " + msg)
}

// Success renders a success line for command output.
func Success(msg string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color("114")).Render("✓ " + msg)
}
