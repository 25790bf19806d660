// Package lang maps filenames to an execution language and to a
// syntax-highlighting tag. The two tables are independent: the
// execution API and the highlighter name languages differently.
package lang

import (
	"path/filepath"
	"strings"
)

// Language identifies a runtime of the remote execution API.
type Language struct {
	Name         string
	VersionIndex int
	extensions   []string
}

// DefaultSyntax is the highlighting tag used when no table entry
// matches.
const DefaultSyntax = "plaintext"

// languages is ordered; detection takes the first matching entry and
// unmatched filenames fall back to the first entry.
var languages = []Language{
	{Name: "python3", VersionIndex: 4, extensions: []string{".py"}},
	{Name: "c", VersionIndex: 5, extensions: []string{".c", ".h"}},
	{Name: "cpp17", VersionIndex: 1, extensions: []string{".cpp", ".cc", ".cxx", ".hpp"}},
	{Name: "java", VersionIndex: 4, extensions: []string{".java"}},
	{Name: "go", VersionIndex: 4, extensions: []string{".go"}},
	{Name: "nodejs", VersionIndex: 4, extensions: []string{".js", ".mjs"}},
	{Name: "ruby", VersionIndex: 4, extensions: []string{".rb"}},
	{Name: "php", VersionIndex: 4, extensions: []string{".php"}},
	{Name: "rust", VersionIndex: 4, extensions: []string{".rs"}},
	{Name: "kotlin", VersionIndex: 3, extensions: []string{".kt", ".kts"}},
	{Name: "swift", VersionIndex: 4, extensions: []string{".swift"}},
	{Name: "csharp", VersionIndex: 4, extensions: []string{".cs"}},
	{Name: "scala", VersionIndex: 4, extensions: []string{".scala"}},
	{Name: "haskell", VersionIndex: 4, extensions: []string{".hs"}},
	{Name: "perl", VersionIndex: 4, extensions: []string{".pl"}},
	{Name: "bash", VersionIndex: 4, extensions: []string{".sh"}},
	{Name: "r", VersionIndex: 4, extensions: []string{".r"}},
}

// syntaxTable is ordered separately from the execution table; the tags
// are chroma lexer names.
var syntaxTable = []struct {
	tag        string
	extensions []string
}{
	{"python", []string{".py"}},
	{"c", []string{".c", ".h"}},
	{"cpp", []string{".cpp", ".cc", ".cxx", ".hpp"}},
	{"java", []string{".java"}},
	{"go", []string{".go"}},
	{"javascript", []string{".js", ".mjs"}},
	{"typescript", []string{".ts", ".tsx"}},
	{"ruby", []string{".rb"}},
	{"php", []string{".php"}},
	{"rust", []string{".rs"}},
	{"kotlin", []string{".kt", ".kts"}},
	{"swift", []string{".swift"}},
	{"csharp", []string{".cs"}},
	{"scala", []string{".scala"}},
	{"haskell", []string{".hs"}},
	{"perl", []string{".pl"}},
	{"bash", []string{".sh"}},
	{"r", []string{".r"}},
	{"markdown", []string{".md", ".markdown"}},
	{"json", []string{".json"}},
	{"yaml", []string{".yaml", ".yml"}},
	{"toml", []string{".toml"}},
	{"html", []string{".html", ".htm"}},
	{"css", []string{".css"}},
	{"xml", []string{".xml"}},
	{"sql", []string{".sql"}},
	{"makefile", []string{".mk"}},
	{"docker", []string{".dockerfile"}},
}

// Detect returns the execution language for a filename. Matching is
// case-insensitive over the extension; unmatched filenames map to the
// first table entry, so every input has a language.
func Detect(filename string) Language {
	ext := strings.ToLower(filepath.Ext(filename))
	for _, l := range languages {
		for _, e := range l.extensions {
			if e == ext {
				return l
			}
		}
	}
	return languages[0]
}

// Syntax returns the highlighting tag for a filename, DefaultSyntax
// when nothing matches. Matching is case-insensitive.
func Syntax(filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	for _, s := range syntaxTable {
		for _, e := range s.extensions {
			if e == ext {
				return s.tag
			}
		}
	}
	return DefaultSyntax
}

// Runnable reports whether a filename maps to an execution language by
// its own extension rather than by fallback.
func Runnable(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	for _, l := range languages {
		for _, e := range l.extensions {
			if e == ext {
				return true
			}
		}
	}
	return false
}

// Names returns the execution language names in table order.
func Names() []string {
	out := make([]string, 0, len(languages))
	for _, l := range languages {
		out = append(out, l.Name)
	}
	return out
}
