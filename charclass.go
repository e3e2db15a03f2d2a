package toml

// Character predicates used throughout the tokenizer and parsers. Kept
// as plain byte classifiers rather than unicode.IsX calls wherever TOML
// defines an ASCII-only class, matching the grammar's own ASCII rules
// for keys, digits, and whitespace.

func isDigit(ch byte) bool { return ch >= '0' && ch <= '9' }

func isHexDigit(ch byte) bool {
	return isDigit(ch) || (ch >= 'a' && ch <= 'f') || (ch >= 'A' && ch <= 'F')
}

func isOctalDigit(ch byte) bool { return ch >= '0' && ch <= '7' }

func isBinaryDigit(ch byte) bool { return ch == '0' || ch == '1' }

func isBareKeyChar(ch byte) bool {
	return (ch >= 'A' && ch <= 'Z') || (ch >= 'a' && ch <= 'z') ||
		isDigit(ch) || ch == '-' || ch == '_'
}

func isWhitespace(ch byte) bool { return ch == ' ' || ch == '\t' }

func isNewline(ch byte) bool { return ch == '\n' || ch == '\r' }

// isControl reports whether ch is a control character disallowed raw
// inside comments and basic/literal strings (everything below 0x20
// except tab, plus DEL).
func isControl(ch byte) bool {
	return (ch < 0x20 && ch != '\t') || ch == 0x7f
}

func isDelimiter(ch byte) bool {
	switch ch {
	case '=', ',', '[', ']', '{', '}', '"', '\'', '#':
		return true
	}
	return isWhitespace(ch) || isNewline(ch)
}
