package toml

import "math"

// Constructors for building a tree programmatically, unifying what was
// historically a second, parser-independent builder library behind
// the same Key/Value types the parser itself produces (see
// SPEC_FULL.md §6 open-question decisions). A tree built this way
// serializes through the same DumpJSON as a parsed one.

// NewStringValue wraps s as a string Value.
func NewStringValue(s string) *Value { return &Value{Kind: KindString, Str: s} }

// NewIntValue wraps n as an integer Value.
func NewIntValue(n int64) *Value { return newIntValue(float64(n)) }

// NewFloatValue wraps f as a float Value, inferring a presentation
// precision and exponent flag for round-trip-faithful serialization
// when f was not itself parsed from source text (every constructed
// float gets at least one digit after the decimal point, matching
// TOML's requirement that a float literal always show a fractional
// part or an exponent).
func NewFloatValue(f float64) *Value {
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return newFloatValue(f, -1, false)
	}
	if f == math.Trunc(f) {
		return newFloatValue(f, 1, false)
	}
	return newFloatValue(f, -1, false)
}

// NewBoolValue wraps b as a boolean Value.
func NewBoolValue(b bool) *Value { return &Value{Kind: KindBoolean, Bool: b} }

// NewArrayValue wraps elems as an array Value.
func NewArrayValue(elems ...*Value) *Value { return &Value{Kind: KindArray, Array: elems} }

// NewInlineTableValue wraps root (itself typically built with NewTable)
// as an inline-table Value.
func NewInlineTableValue(root *Key) *Value { return &Value{Kind: KindInlineTable, Table: root} }

// NewTable creates a standalone table root usable as an inline-table
// payload or as the starting point for Set calls.
func NewTable(id string) *Key {
	return newKey(KindTableLeaf, id)
}

// NewRoot creates an empty document root, the same shape Parse itself
// produces, for programmatic tree construction.
func NewRoot() *Key {
	return newKey(KindTable, "")
}

// Set attaches val under root at the given dotted path, creating
// intermediate Key nodes as needed and applying the same redefinition
// matrix a parse would. It is the programmatic equivalent of writing
// `path = val` in source.
func Set(root *Key, path string, val *Value, limits Limits) error {
	segs := splitLookupPath(path)
	return attachDottedValue(root, segs, val, limits)
}

// SetTable creates the table node at the dotted path, for building out
// nested `[section]`-style tables before attaching values under them.
// An intermediate Table node already at the path (left by a deeper
// SetTable) is reused; a table already created at the path by SetTable
// is a duplicate-table error, as a repeated `[section]` header is.
func SetTable(root *Key, path string, limits Limits) (*Key, error) {
	segs := splitLookupPath(path)
	current := root
	for i, seg := range segs {
		kind := KindTable
		if i == len(segs)-1 {
			kind = KindTableLeaf
		}
		next, err := addSubkey(current, seg, kind, limits)
		if err != nil {
			return nil, err
		}
		current = next
	}
	return current, nil
}

// Append opens a new entry in the array-of-tables at path, creating
// the ArrayTable node itself on first use, and returns the new entry's
// table root for further Set calls.
func Append(root *Key, path string, limits Limits) (*Key, error) {
	segs := splitLookupPath(path)
	current := root
	for i, seg := range segs {
		kind := KindTable
		if i == len(segs)-1 {
			kind = KindArrayTable
		}
		next, err := addSubkey(current, seg, kind, limits)
		if err != nil {
			return nil, err
		}
		current = next
	}
	return current.currentEntry(), nil
}
