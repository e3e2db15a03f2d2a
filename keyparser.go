package toml

import "strings"

// parseKeySegment parses one key segment — bare, basic-quoted, or
// literal-quoted — dispatching on the current character. All three
// forms share the same terminator-agnostic stopping rule: a segment
// simply ends where its lexical form says it ends (a bare run of key
// characters, or a closing quote), regardless of whether the caller is
// assembling an assignment key (terminated by '=') or a header
// (terminated by ']').
func parseKeySegment(tz *Tokenizer, limits Limits) (string, error) {
	switch tz.Cur() {
	case '"':
		return parseBasicQuotedKey(tz, limits)
	case '\'':
		return parseLiteralQuotedKey(tz, limits)
	default:
		return parseBareKeySegment(tz, limits)
	}
}

func parseBareKeySegment(tz *Tokenizer, limits Limits) (string, error) {
	var b strings.Builder
	for isBareKeyChar(tz.Cur()) {
		b.WriteByte(tz.Cur())
		tz.Advance()
	}
	if b.Len() == 0 {
		return "", tokErr(tz, "expected a key")
	}
	id := b.String()
	if len(id) > limits.MaxIdentifierLen {
		return "", tokErr(tz, "identifier %q exceeds maximum length %d", id, limits.MaxIdentifierLen)
	}
	return id, nil
}

func parseBasicQuotedKey(tz *Tokenizer, limits Limits) (string, error) {
	tz.Advance() // opening quote
	s, err := scanSingleLineBasic(tz, limits)
	if err != nil {
		return "", err
	}
	if len(s) > limits.MaxIdentifierLen {
		return "", tokErr(tz, "identifier exceeds maximum length %d", limits.MaxIdentifierLen)
	}
	return s, nil
}

func parseLiteralQuotedKey(tz *Tokenizer, limits Limits) (string, error) {
	tz.Advance() // opening quote
	s, err := scanSingleLineLiteral(tz, limits)
	if err != nil {
		return "", err
	}
	if len(s) > limits.MaxIdentifierLen {
		return "", tokErr(tz, "identifier exceeds maximum length %d", limits.MaxIdentifierLen)
	}
	return s, nil
}

func skipKeyWhitespace(tz *Tokenizer) {
	for isWhitespace(tz.Cur()) {
		tz.Advance()
	}
}

// parseDottedKey reads a key segment followed by zero or more
// (whitespace)? '.' (whitespace)? segment repetitions.
func parseDottedKey(tz *Tokenizer, limits Limits) ([]string, error) {
	first, err := parseKeySegment(tz, limits)
	if err != nil {
		return nil, err
	}
	segs := []string{first}
	for {
		skipKeyWhitespace(tz)
		if tz.Cur() != '.' {
			return segs, nil
		}
		tz.Advance()
		skipKeyWhitespace(tz)
		seg, err := parseKeySegment(tz, limits)
		if err != nil {
			return nil, err
		}
		segs = append(segs, seg)
	}
}

// attachDottedValue walks root by segs, creating intermediate KeyNode
// segments and a final KeyLeaf carrying val.
func attachDottedValue(root *Key, segs []string, val *Value, limits Limits) error {
	current := root
	for i, seg := range segs {
		kind := KindKeyNode
		if i == len(segs)-1 {
			kind = KindKeyLeaf
		}
		next, err := addSubkey(current, seg, kind, limits)
		if err != nil {
			return err
		}
		current = next
	}
	current.Value = val
	return nil
}

// parseHeaderPath parses the key path of a `[table]` or `[[array]]`
// header (the brackets themselves are consumed by the caller) and
// applies it to the tree rooted at root, returning the node under
// which subsequent key=value assignments attach.
func parseHeaderPath(tz *Tokenizer, limits Limits, root *Key, arrayTable bool) (*Key, error) {
	skipKeyWhitespace(tz)
	segs, err := parseDottedKey(tz, limits)
	if err != nil {
		return nil, err
	}
	skipKeyWhitespace(tz)

	current := root
	for i, seg := range segs {
		kind := KindTable
		if i == len(segs)-1 {
			if arrayTable {
				kind = KindArrayTable
			} else {
				kind = KindTableLeaf
			}
		}
		next, err := addSubkey(current, seg, kind, limits)
		if err != nil {
			return nil, err
		}
		current = next
	}
	if arrayTable {
		return current.currentEntry(), nil
	}
	return current, nil
}
