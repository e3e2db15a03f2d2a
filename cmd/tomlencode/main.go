// Command tomlencode reads a canonical typed-JSON document (the format
// tomljson produces) and reconstructs an equivalent TOML document,
// giving the conformance toolkit an encode direction to pair with
// tomljson's decode direction.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/kallstrom/toml"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tomlencode [file]",
		Short: "Encode a canonical typed-JSON document back into TOML",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			var doc map[string]any
			if err := json.Unmarshal(data, &doc); err != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), err)
				return err
			}

			limits := toml.DefaultLimits()
			root := toml.NewRoot()
			if err := populateTable(root, "", doc, limits); err != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), err)
				return err
			}

			var b strings.Builder
			writeTable(&b, root, "")
			_, err = cmd.OutOrStdout().Write([]byte(b.String()))
			return err
		},
	}
	cmd.SetIn(os.Stdin)
	return cmd
}

func readInput(cmd *cobra.Command, args []string) ([]byte, error) {
	if len(args) == 1 {
		return os.ReadFile(args[0])
	}
	return io.ReadAll(cmd.InOrStdin())
}

// isTaggedScalar reports whether m is a typed-JSON leaf, i.e. it has
// exactly the {"type": ..., "value": ...} shape.
func isTaggedScalar(m map[string]any) bool {
	_, hasType := m["type"]
	_, hasValue := m["value"]
	return hasType && hasValue && len(m) == 2
}

// populateTable walks a decoded JSON object, attaching each field to
// root (or, for dotted sub-paths, to the table reached by prefix.key)
// using the builder API.
func populateTable(root *toml.Key, prefix string, obj map[string]any, limits toml.Limits) error {
	for key, raw := range obj {
		path := key
		if prefix != "" {
			path = prefix + "." + key
		}
		if err := populateField(root, path, raw, limits); err != nil {
			return err
		}
	}
	return nil
}

func populateField(root *toml.Key, path string, raw any, limits toml.Limits) error {
	switch v := raw.(type) {
	case map[string]any:
		if isTaggedScalar(v) {
			val, err := valueFromTagged(v)
			if err != nil {
				return err
			}
			return toml.Set(root, path, val, limits)
		}
		sub, err := toml.SetTable(root, path, limits)
		if err != nil {
			return err
		}
		return populateTable(sub, "", v, limits)
	case []any:
		return populateArrayField(root, path, v, limits)
	default:
		return fmt.Errorf("tomlencode: unexpected JSON shape at %q", path)
	}
}

func populateArrayField(root *toml.Key, path string, elems []any, limits toml.Limits) error {
	if len(elems) > 0 {
		if first, ok := elems[0].(map[string]any); ok && !isTaggedScalar(first) {
			for _, elem := range elems {
				obj, ok := elem.(map[string]any)
				if !ok {
					return fmt.Errorf("tomlencode: mixed array-of-tables element at %q", path)
				}
				entry, err := toml.Append(root, path, limits)
				if err != nil {
					return err
				}
				if err := populateTable(entry, "", obj, limits); err != nil {
					return err
				}
			}
			return nil
		}
	}
	vals := make([]*toml.Value, len(elems))
	for i, elem := range elems {
		val, err := valueFromJSON(elem)
		if err != nil {
			return err
		}
		vals[i] = val
	}
	return toml.Set(root, path, toml.NewArrayValue(vals...), limits)
}

func valueFromJSON(raw any) (*toml.Value, error) {
	switch v := raw.(type) {
	case map[string]any:
		if isTaggedScalar(v) {
			return valueFromTagged(v)
		}
		root := toml.NewTable("")
		if err := populateTable(root, "", v, toml.DefaultLimits()); err != nil {
			return nil, err
		}
		return toml.NewInlineTableValue(root), nil
	case []any:
		vals := make([]*toml.Value, len(v))
		for i, elem := range v {
			val, err := valueFromJSON(elem)
			if err != nil {
				return nil, err
			}
			vals[i] = val
		}
		return toml.NewArrayValue(vals...), nil
	default:
		return nil, fmt.Errorf("tomlencode: unexpected array element shape")
	}
}

func valueFromTagged(m map[string]any) (*toml.Value, error) {
	tag, _ := m["type"].(string)
	text, _ := m["value"].(string)
	switch tag {
	case "string":
		return toml.NewStringValue(text), nil
	case "bool":
		return toml.NewBoolValue(text == "true"), nil
	case "integer":
		n, err := strconv.ParseInt(text, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("tomlencode: invalid integer %q: %w", text, err)
		}
		return toml.NewIntValue(n), nil
	case "float":
		switch text {
		case "inf":
			return toml.NewFloatValue(math.Inf(1)), nil
		case "-inf":
			return toml.NewFloatValue(math.Inf(-1)), nil
		case "nan":
			return toml.NewFloatValue(math.NaN()), nil
		}
		f, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return nil, fmt.Errorf("tomlencode: invalid float %q: %w", text, err)
		}
		return toml.NewFloatValue(f), nil
	case "datetime", "datetime-local", "date-local", "time-local":
		// The recorded format string is the literal source spelling;
		// re-emitting it verbatim is a faithful round trip.
		shape := map[string]toml.DatetimeShape{"datetime": toml.OffsetDatetime, "datetime-local": toml.LocalDatetime, "date-local": toml.LocalDate, "time-local": toml.LocalTime}[tag]
		return &toml.Value{Kind: toml.KindDatetime, Datetime: &toml.DatetimeValue{Shape: shape, Format: text}}, nil
	default:
		return nil, fmt.Errorf("tomlencode: unknown type tag %q", tag)
	}
}

// writeTable prints root's children as TOML statements. Tables and
// array-of-tables recurse under a `[prefix.key]` / `[[prefix.key]]`
// header; keys are sorted for deterministic output. A table's own
// key = value lines are written before any sub-table header.
func writeTable(b *strings.Builder, k *toml.Key, prefix string) {
	ids := make([]string, 0, len(k.Children))
	for id := range k.Children {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		if child := k.Children[id]; child.Kind == toml.KindKeyLeaf {
			fmt.Fprintf(b, "%s = %s\n", id, formatTOMLValue(child.Value))
		}
	}
	for _, id := range ids {
		child := k.Children[id]
		path := id
		if prefix != "" {
			path = prefix + "." + id
		}
		switch child.Kind {
		case toml.KindKeyLeaf:
		case toml.KindArrayTable:
			for _, entry := range child.Value.Array {
				fmt.Fprintf(b, "[[%s]]\n", path)
				writeTable(b, entry.Table, path)
			}
		default: // Table / TableLeaf / KeyNode
			fmt.Fprintf(b, "[%s]\n", path)
			writeTable(b, child, path)
		}
	}
}

func formatTOMLValue(v *toml.Value) string {
	switch v.Kind {
	case toml.KindString:
		return strconv.Quote(v.Str)
	case toml.KindBoolean:
		return strconv.FormatBool(v.Bool)
	case toml.KindInteger:
		n, _ := v.Int()
		return strconv.FormatInt(n, 10)
	case toml.KindFloat:
		f, _ := v.Float()
		switch {
		case math.IsNaN(f):
			return "nan"
		case math.IsInf(f, 1):
			return "inf"
		case math.IsInf(f, -1):
			return "-inf"
		}
		s := strconv.FormatFloat(f, 'g', -1, 64)
		if !strings.ContainsAny(s, ".e") {
			s += ".0"
		}
		return s
	case toml.KindDatetime:
		return v.Datetime.Format
	case toml.KindArray:
		parts := make([]string, len(v.Array))
		for i, elem := range v.Array {
			parts[i] = formatTOMLValue(elem)
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case toml.KindInlineTable:
		var b strings.Builder
		ids := make([]string, 0, len(v.Table.Children))
		for id := range v.Table.Children {
			ids = append(ids, id)
		}
		sort.Strings(ids)
		b.WriteString("{ ")
		for i, id := range ids {
			if i > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(&b, "%s = %s", id, formatTOMLValue(v.Table.Children[id].Value))
		}
		b.WriteString(" }")
		return b.String()
	default:
		return "null"
	}
}
