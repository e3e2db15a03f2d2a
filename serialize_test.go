package toml

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFormatFloatPreservesTrailingZero(t *testing.T) {
	v := newFloatValue(1.5, 2, false)
	if got := formatFloat(v); got != "1.50" {
		t.Fatalf("formatFloat = %q, want %q", got, "1.50")
	}
}

func TestFormatFloatScientificNormalizesExponent(t *testing.T) {
	v := newFloatValue(500, 0, true)
	got := formatFloat(v)
	if got != "5e+02" {
		t.Fatalf("formatFloat = %q, want %q", got, "5e+02")
	}
}

func TestFormatFloatSpecials(t *testing.T) {
	cases := []struct {
		n    float64
		want string
	}{
		{posInf(), "inf"},
		{negInf(), "-inf"},
		{nanVal(), "nan"},
	}
	for _, c := range cases {
		v := newFloatValue(c.n, -1, false)
		if got := formatFloat(v); got != c.want {
			t.Fatalf("formatFloat(%v) = %q, want %q", c.n, got, c.want)
		}
	}
}

func TestDumpJSONSortsKeys(t *testing.T) {
	root := parse(t, "z = 1\na = 2\n")
	out, err := DumpJSON(root)
	if err != nil {
		t.Fatal(err)
	}
	got := string(out)
	want := `{"a":{"type":"integer","value":"2"},"z":{"type":"integer","value":"1"}}`
	if got != want {
		t.Fatalf("DumpJSON = %s, want %s", got, want)
	}
}

func TestDumpJSONInlineTableAndArray(t *testing.T) {
	root := parse(t, "a = [1, 2]\nb = { c = 3 }\n")
	out, err := DumpJSON(root)
	if err != nil {
		t.Fatal(err)
	}
	got := string(out)
	want := `{"a":[{"type":"integer","value":"1"},{"type":"integer","value":"2"}],"b":{"c":{"type":"integer","value":"3"}}}`
	if got != want {
		t.Fatalf("DumpJSON = %s, want %s", got, want)
	}
}

func TestDumpJSONStableAcrossEquivalentKeyOrder(t *testing.T) {
	a := parse(t, "z = 1\na = 2\n")
	b := parse(t, "a = 2\nz = 1\n")
	outA, err := DumpJSON(a)
	if err != nil {
		t.Fatal(err)
	}
	outB, err := DumpJSON(b)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(string(outA), string(outB)); diff != "" {
		t.Fatalf("DumpJSON should not depend on source key order (-a +b):\n%s", diff)
	}
}

func posInf() float64 { x := 1e308; return x * 10 }
func negInf() float64 { x := -1e308; return x * 10 }
func nanVal() float64 { var z float64; return z / z }
