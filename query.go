package toml

// Lookup resolves a dotted path (e.g. "server.host", possibly with
// quoted segments like `a."b.c"`) against root, descending through
// tables, array-of-tables (taking the last entry), and inline tables.
// It returns nil if no key along the path exists.
func Lookup(root *Key, path string) *Key {
	segs := splitLookupPath(path)
	current := root
	for _, seg := range segs {
		current = descend(current, seg)
		if current == nil {
			return nil
		}
	}
	return current
}

func descend(k *Key, seg string) *Key {
	if k.Kind == KindArrayTable {
		return descend(k.currentEntry(), seg)
	}
	if k.Value != nil && k.Value.Kind == KindInlineTable {
		return descend(k.Value.Table, seg)
	}
	if child, ok := k.Children[seg]; ok {
		return child
	}
	return nil
}

func splitLookupPath(path string) []string {
	var segs []string
	i := 0
	for i < len(path) {
		for i < len(path) && (path[i] == ' ' || path[i] == '\t') {
			i++
		}
		if i >= len(path) {
			break
		}
		var seg string
		switch path[i] {
		case '"':
			seg, i = readQuotedSegment(path, i, '"')
		case '\'':
			seg, i = readQuotedSegment(path, i, '\'')
		default:
			start := i
			for i < len(path) && isBareKeyChar(path[i]) {
				i++
			}
			seg = path[start:i]
		}
		segs = append(segs, seg)
		for i < len(path) && (path[i] == ' ' || path[i] == '\t') {
			i++
		}
		if i < len(path) && path[i] == '.' {
			i++
		}
	}
	return segs
}

func readQuotedSegment(path string, i int, quote byte) (string, int) {
	i++
	start := i
	for i < len(path) && path[i] != quote {
		if quote == '"' && path[i] == '\\' && i+1 < len(path) {
			i++
		}
		i++
	}
	seg := path[start:i]
	if i < len(path) {
		i++
	}
	return seg, i
}

func (k *Key) valueOrNil() *Value {
	if k == nil {
		return nil
	}
	return k.Value
}

// GetInt resolves path and returns it as an int64.
func GetInt(root *Key, path string) (int64, bool) {
	v := Lookup(root, path).valueOrNil()
	if v == nil {
		return 0, false
	}
	n, err := v.Int()
	return n, err == nil
}

// GetFloat resolves path and returns it as a float64.
func GetFloat(root *Key, path string) (float64, bool) {
	v := Lookup(root, path).valueOrNil()
	if v == nil {
		return 0, false
	}
	f, err := v.Float()
	return f, err == nil
}

// GetString resolves path and returns its string content.
func GetString(root *Key, path string) (string, bool) {
	v := Lookup(root, path).valueOrNil()
	if v == nil {
		return "", false
	}
	s, err := v.String()
	return s, err == nil
}

// GetBool resolves path and returns its boolean content.
func GetBool(root *Key, path string) (bool, bool) {
	v := Lookup(root, path).valueOrNil()
	if v == nil {
		return false, false
	}
	b, err := v.BoolVal()
	return b, err == nil
}

// GetDatetime resolves path and returns its datetime content.
func GetDatetime(root *Key, path string) (*DatetimeValue, bool) {
	v := Lookup(root, path).valueOrNil()
	if v == nil || v.Kind != KindDatetime {
		return nil, false
	}
	return v.Datetime, true
}
