package tui

import (
	"strings"

	"codedeck/internal/lang"

	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	chromastyles "github.com/alecthomas/chroma/v2/styles"
)

// Highlight renders source code with ANSI colors for the code panel.
// Unknown languages are content-sniffed; when everything fails the
// input passes through unhighlighted.
func Highlight(source, syntaxTag string) string {
	lexer := lexers.Get(syntaxTag)
	if lexer == nil || syntaxTag == lang.DefaultSyntax {
		lexer = lexers.Analyse(source)
	}
	if lexer == nil {
		lexer = lexers.Fallback
	}

	style := chromastyles.Get("monokai")
	if style == nil {
		style = chromastyles.Fallback
	}

	formatter := formatters.Get("terminal256")
	if formatter == nil {
		return source
	}

	iterator, err := lexer.Tokenise(nil, source)
	if err != nil {
		return source
	}

	var b strings.Builder
	if err := formatter.Format(&b, style, iterator); err != nil {
		return source
	}
	return b.String()
}
