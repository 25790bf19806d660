package run

import "strings"

// inputFailurePatterns are output fragments that indicate a program
// died reading from an empty standard input. Matching is substring
// based over the raw output.
var inputFailurePatterns = []string{
	"EOFError",
	"EOF when reading a line",
	"NoSuchElementException",
	"java.util.NoSuchElementException",
	"EOF while reading",
	"StdinNotFound",
	"end of file on stdin",
	"readline() on closed filehandle",
}

// inputHint is appended to the displayed output when a run appears to
// have failed for lack of input.
const inputHint = `
---
This program reads from standard input, but none was provided.
Type the input it expects into the input panel and run it again.`

// NeedsInput reports whether a failed run's output looks like the
// program starved waiting on standard input.
func NeedsInput(output string) bool {
	for _, p := range inputFailurePatterns {
		if strings.Contains(output, p) {
			return true
		}
	}
	return false
}

// Format prepares a run's raw output for display. When the run failed,
// no meaningful stdin was supplied, and the output matches an input
// starvation pattern, a fixed hint block is appended. In every other
// case the output passes through unchanged.
func Format(output string, succeeded bool, stdin string) string {
	if succeeded {
		return output
	}
	if strings.TrimSpace(stdin) != "" {
		return output
	}
	if !NeedsInput(output) {
		return output
	}
	return output + inputHint
}
