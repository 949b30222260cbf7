package encode

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/gsconfig/go-gsconfig/ir"
)

func TestJSON(t *testing.T) {
	for _, tc := range []struct {
		name string
		node *ir.Node
		want string
	}{
		{"null", ir.Null(), "null"},
		{"bool", ir.FromBool(true), "true"},
		{"int", ir.FromInt(-42), "-42"},
		{"float", ir.FromFloat(4.5), "4.5"},
		{"integral float keeps point", ir.FromFloat(10), "10.0"},
		{"big float uses exponent", ir.FromFloat(2e21), "2e+21"},
		{"nan becomes null", ir.FromFloat(math.NaN()), "null"},
		{"string", ir.FromString("hi"), `"hi"`},
		{"string escaping", ir.FromString("a\"b\n"), `"a\"b\n"`},
		{"empty array", ir.FromSlice(nil), "[]"},
		{
			"array",
			ir.FromSlice([]*ir.Node{ir.FromInt(1), ir.FromString("x")}),
			`[1,"x"]`,
		},
		{"empty object", ir.Object(), "{}"},
		{
			"object keeps insertion order",
			ir.Object().
				Set("z", ir.FromInt(1)).
				Set("a", ir.FromInt(2)),
			`{"z":1,"a":2}`,
		},
		{
			"nested",
			ir.Object().Set("xs", ir.FromSlice([]*ir.Node{
				ir.Object().Set("k", ir.Null()),
			})),
			`{"xs":[{"k":null}]}`,
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			if got := JSON(tc.node); got != tc.want {
				t.Errorf("JSON() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestMustStringIndents(t *testing.T) {
	node := ir.Object().Set("a", ir.FromSlice([]*ir.Node{ir.FromInt(1), ir.FromInt(2)}))
	want := `{
  "a": [
    1,
    2
  ]
}`
	if got := MustString(node); got != want {
		t.Errorf("MustString() = %q, want %q", got, want)
	}
}

func TestDecodeJSON(t *testing.T) {
	for _, tc := range []struct {
		name string
		in   string
		want *ir.Node
	}{
		{"null", "null", ir.Null()},
		{"int", "7", ir.FromInt(7)},
		{"float", "2.5", ir.FromFloat(2.5)},
		{"string", `"hey"`, ir.FromString("hey")},
		{"bool", "false", ir.FromBool(false)},
		{"array", `[1, "a"]`, ir.FromSlice([]*ir.Node{ir.FromInt(1), ir.FromString("a")})},
		{
			"object order",
			`{"z": 1, "a": {"b": [2]}}`,
			ir.Object().
				Set("z", ir.FromInt(1)).
				Set("a", ir.Object().Set("b", ir.FromSlice([]*ir.Node{ir.FromInt(2)}))),
		},
		{
			"single pair object",
			`{"only": true}`,
			ir.Object().Set("only", ir.FromBool(true)),
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			got, err := DecodeJSON([]byte(tc.in))
			if err != nil {
				t.Fatalf("DecodeJSON(%q): %v", tc.in, err)
			}
			if d := cmp.Diff(tc.want, got); d != "" {
				t.Errorf("DecodeJSON(%q) (-want +got):\n%s", tc.in, d)
			}
		})
	}
}

func TestRoundTripKeepsOrder(t *testing.T) {
	in := `{"one":1,"two":2.0,"three":"3"}`
	node, err := DecodeJSON([]byte(in))
	if err != nil {
		t.Fatal(err)
	}
	if got := JSON(node); got != in {
		t.Errorf("round trip = %q, want %q", got, in)
	}
}
