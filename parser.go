package toml

// Parse reads an entire TOML document from buf and returns its root
// Key, or a ParseError if the document is invalid anywhere. Parsing is
// all-or-nothing: on error the partial tree is discarded and nil is
// returned.
func Parse(buf *Buffer, file string, limits Limits) (*Key, error) {
	if buf.Len() > limits.MaxFileSize {
		return nil, &ParseError{File: file, Line: 1, Column: 1, Message: "file exceeds maximum size"}
	}
	tz := NewTokenizer(buf)
	root := newKey(KindTable, "")
	current := root

	for {
		skipBlankLines(tz)
		if tz.AtEOF() {
			return root, nil
		}
		if tz.Line() > limits.MaxLines {
			return nil, withFile(file, tz, tokErr(tz, "document exceeds maximum line count"))
		}

		switch tz.Cur() {
		case '[':
			next, err := parseHeaderStatement(tz, limits, root)
			if err != nil {
				return nil, withFile(file, tz, err)
			}
			current = next
		default:
			if err := parseAssignmentStatement(tz, limits, current); err != nil {
				return nil, withFile(file, tz, err)
			}
		}

		if err := expectEndOfLine(tz); err != nil {
			return nil, withFile(file, tz, err)
		}
	}
}

// withFile stamps file onto err. Errors that carry no position (tree
// redefinition and size-limit errors) become a ParseError at the
// tokenizer's current position.
func withFile(file string, tz *Tokenizer, err error) error {
	if err == nil {
		return nil
	}
	pe, ok := err.(*ParseError)
	if !ok {
		pe = &ParseError{Line: tz.Line(), Column: tz.Col(), Message: err.Error()}
	}
	pe.File = file
	return pe
}

// skipBlankLines consumes whitespace, newlines, and full-line comments
// between statements.
func skipBlankLines(tz *Tokenizer) {
	for {
		switch {
		case isWhitespace(tz.Cur()) || isNewline(tz.Cur()):
			tz.Advance()
		case tz.Cur() == '#':
			for !tz.AtEOF() && !isNewline(tz.Cur()) {
				tz.Advance()
			}
		default:
			return
		}
	}
}

// expectEndOfLine requires that, after a statement, only an optional
// comment and then a newline or EOF follow.
func expectEndOfLine(tz *Tokenizer) error {
	for isWhitespace(tz.Cur()) {
		tz.Advance()
	}
	if tz.Cur() == '#' {
		for !tz.AtEOF() && !isNewline(tz.Cur()) {
			tz.Advance()
		}
	}
	if tz.AtEOF() || isNewline(tz.Cur()) {
		return nil
	}
	return tokErr(tz, "expected newline after statement, got %q", string(tz.Cur()))
}

func parseHeaderStatement(tz *Tokenizer, limits Limits, root *Key) (*Key, error) {
	tz.Advance() // first '['
	arrayTable := tz.Cur() == '['
	if arrayTable {
		tz.Advance()
	}
	next, err := parseHeaderPath(tz, limits, root, arrayTable)
	if err != nil {
		return nil, err
	}
	if tz.Cur() != ']' {
		return nil, tokErr(tz, "expected ']' to close table header")
	}
	tz.Advance()
	if arrayTable {
		if tz.Cur() != ']' {
			return nil, tokErr(tz, "expected ']]' to close array-of-tables header")
		}
		tz.Advance()
	}
	return next, nil
}

func parseAssignmentStatement(tz *Tokenizer, limits Limits, current *Key) error {
	segs, err := parseDottedKey(tz, limits)
	if err != nil {
		return err
	}
	skipKeyWhitespace(tz)
	if tz.Cur() != '=' {
		return tokErr(tz, "expected '=' after key")
	}
	tz.Advance()
	skipKeyWhitespace(tz)
	val, err := parseValue(tz, limits, endSetStatement)
	if err != nil {
		return err
	}
	return attachDottedValue(current, segs, val, limits)
}
