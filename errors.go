package toml

import "fmt"

// ParseError reports a lexical, grammatical, or semantic failure at a
// specific position in a TOML source. Parsing is all-or-nothing: the
// first ParseError aborts the parse and the partial tree is discarded.
type ParseError struct {
	File    string
	Line    int
	Column  int
	Message string
}

func (e *ParseError) Error() string {
	if e.File == "" {
		return fmt.Sprintf("%d:%d: %s", e.Line, e.Column, e.Message)
	}
	return fmt.Sprintf("%s:%d:%d: %s", e.File, e.Line, e.Column, e.Message)
}

func newParseError(file string, line, col int, format string, args ...any) *ParseError {
	return &ParseError{File: file, Line: line, Column: col, Message: fmt.Sprintf(format, args...)}
}
