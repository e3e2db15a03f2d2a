package toml

import (
	"fmt"
	"io"
	"math"
	"sort"
	"strconv"
	"strings"
)

// DumpJSON renders root as the canonical typed-JSON tree used for
// conformance testing: every leaf becomes {"type": <tag>, "value":
// <stringified>}, tables become JSON objects, array-of-tables and
// arrays become JSON arrays. Child-key order is not specified by the
// data model, so keys are sorted for deterministic (if arbitrary)
// output rather than left at Go's randomized map order.
func DumpJSON(root *Key) ([]byte, error) {
	var b strings.Builder
	if err := writeKeyChildren(&b, root); err != nil {
		return nil, err
	}
	return []byte(b.String()), nil
}

// WriteJSON renders root the same way DumpJSON does and writes the
// result to w (the tomljson command uses it). The document is rendered
// in memory in full and then written with a single call; output is not
// streamed as it is produced.
func WriteJSON(w io.Writer, root *Key) error {
	var b strings.Builder
	if err := writeKeyChildren(&b, root); err != nil {
		return err
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func writeKeyChildren(b *strings.Builder, k *Key) error {
	b.WriteByte('{')
	ids := make([]string, 0, len(k.Children))
	for id := range k.Children {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for i, id := range ids {
		if i > 0 {
			b.WriteByte(',')
		}
		writeJSONString(b, id)
		b.WriteByte(':')
		if err := writeKeyNode(b, k.Children[id]); err != nil {
			return err
		}
	}
	b.WriteByte('}')
	return nil
}

func writeKeyNode(b *strings.Builder, k *Key) error {
	switch k.Kind {
	case KindArrayTable:
		b.WriteByte('[')
		for i, entry := range k.Value.Array {
			if i > 0 {
				b.WriteByte(',')
			}
			if err := writeKeyChildren(b, entry.Table); err != nil {
				return err
			}
		}
		b.WriteByte(']')
		return nil
	case KindTable, KindTableLeaf, KindKeyNode:
		return writeKeyChildren(b, k)
	case KindKeyLeaf:
		return writeValue(b, k.Value)
	default:
		return fmt.Errorf("toml: serialize: unknown key kind %s", k.Kind)
	}
}

func writeValue(b *strings.Builder, v *Value) error {
	switch v.Kind {
	case KindInlineTable:
		return writeKeyChildren(b, v.Table)
	case KindArray:
		b.WriteByte('[')
		for i, elem := range v.Array {
			if i > 0 {
				b.WriteByte(',')
			}
			if err := writeValue(b, elem); err != nil {
				return err
			}
		}
		b.WriteByte(']')
		return nil
	default:
		tag, text, err := taggedValue(v)
		if err != nil {
			return err
		}
		b.WriteString(`{"type":`)
		writeJSONString(b, tag)
		b.WriteString(`,"value":`)
		writeJSONString(b, text)
		b.WriteByte('}')
		return nil
	}
}

// taggedValue returns the type tag and stringified value for a scalar.
func taggedValue(v *Value) (tag, text string, err error) {
	switch v.Kind {
	case KindString:
		return "string", v.Str, nil
	case KindBoolean:
		if v.Bool {
			return "bool", "true", nil
		}
		return "bool", "false", nil
	case KindInteger:
		return "integer", strconv.FormatInt(int64(v.Num), 10), nil
	case KindFloat:
		return "float", formatFloat(v), nil
	case KindDatetime:
		return v.Datetime.Shape.String(), v.Datetime.Format, nil
	default:
		return "", "", fmt.Errorf("toml: serialize: unexpected scalar kind %s", v.Kind)
	}
}

func formatFloat(v *Value) string {
	n := v.Num
	switch {
	case math.IsNaN(n):
		return "nan"
	case math.IsInf(n, 1):
		return "inf"
	case math.IsInf(n, -1):
		return "-inf"
	}
	if v.Precision < 0 {
		s := strconv.FormatFloat(n, 'f', -1, 64)
		if !strings.Contains(s, ".") {
			s += ".0"
		}
		return s
	}
	if v.Scientific {
		s := strconv.FormatFloat(n, 'e', -1, 64)
		return normalizeExponent(s)
	}
	return strconv.FormatFloat(n, 'f', v.Precision, 64)
}

// normalizeExponent turns Go's "5e+02"-with-trimmed-mantissa form into
// the TOML-conformance-test convention of a signed two-or-more-digit
// exponent, e.g. "5e+02".
func normalizeExponent(s string) string {
	idx := strings.IndexByte(s, 'e')
	if idx < 0 {
		return s
	}
	mantissa, exp := s[:idx], s[idx+1:]
	sign := "+"
	if exp[0] == '+' || exp[0] == '-' {
		sign = string(exp[0])
		exp = exp[1:]
	}
	for len(exp) < 2 {
		exp = "0" + exp
	}
	return mantissa + "e" + sign + exp
}

func writeJSONString(b *strings.Builder, s string) {
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\b':
			b.WriteString(`\b`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		case '\f':
			b.WriteString(`\f`)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
}
