package keycmd

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/gsconfig/go-gsconfig/ir"
)

func TestBuiltins(t *testing.T) {
	reg := Default()
	arr := ir.FromSlice([]*ir.Node{
		ir.FromString("zero"),
		ir.FromString("one"),
		ir.FromString("two"),
	})
	for _, tc := range []struct {
		name string
		node *ir.Node
		cmd  string
		want *ir.Node
	}{
		{"dummy", ir.FromInt(5), "dummy", ir.FromInt(5)},
		{"float from int", ir.FromInt(10), "float", ir.FromFloat(10)},
		{"float from string", ir.FromString("4.5"), "float", ir.FromFloat(4.5)},
		{"int truncates", ir.FromFloat(10.9), "int", ir.FromInt(10)},
		{"int from string", ir.FromString("42"), "int", ir.FromInt(42)},
		{"string quotes", ir.FromString("a,b"), "string", ir.FromString(`"a,b"`)},
		{"string leaves numbers", ir.FromInt(3), "string", ir.FromInt(3)},
		{
			"extract singleton",
			ir.FromSlice([]*ir.Node{ir.FromInt(7)}),
			"extract",
			ir.FromInt(7),
		},
		{"extract leaves longer arrays", arr, "extract", arr},
		{
			"wrap scalar-first array",
			ir.FromSlice([]*ir.Node{ir.FromInt(1), ir.FromInt(2)}),
			"wrap",
			ir.FromSlice([]*ir.Node{ir.FromSlice([]*ir.Node{ir.FromInt(1), ir.FromInt(2)})}),
		},
		{
			"wrap leaves nested array",
			ir.FromSlice([]*ir.Node{ir.FromSlice([]*ir.Node{ir.FromInt(1)})}),
			"wrap",
			ir.FromSlice([]*ir.Node{ir.FromSlice([]*ir.Node{ir.FromInt(1)})}),
		},
		{"list wraps scalar", ir.FromInt(1), "list", ir.FromSlice([]*ir.Node{ir.FromInt(1)})},
		{"list leaves array", arr, "list", arr},
		{
			"dlist wraps object",
			ir.Object().Set("a", ir.FromInt(1)),
			"dlist",
			ir.FromSlice([]*ir.Node{ir.Object().Set("a", ir.FromInt(1))}),
		},
		{"dlist leaves scalar", ir.FromInt(1), "dlist", ir.FromInt(1)},
		{"flist always wraps", arr, "flist", ir.FromSlice([]*ir.Node{arr})},
		{"none on empty string", ir.FromString(""), "none", ir.Null()},
		{"none on value", ir.FromString("x"), "none", ir.FromString("x")},
		{"null alias", ir.FromString(""), "null", ir.Null()},
		{"get by index", arr, "get_2", ir.FromString("two")},
		{"extract_N alias", arr, "extract_0", ir.FromString("zero")},
		{
			"json",
			ir.Object().Set("a", ir.FromInt(1)),
			"json",
			ir.FromString(`{"a":1}`),
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			got, err := reg.Apply(tc.node, tc.cmd)
			if err != nil {
				t.Fatalf("Apply(%s): %v", tc.cmd, err)
			}
			if d := cmp.Diff(tc.want, got); d != "" {
				t.Errorf("Apply(%s) (-want +got):\n%s", tc.cmd, d)
			}
		})
	}
}

func TestBuiltinErrors(t *testing.T) {
	reg := Default()
	for _, tc := range []struct {
		name string
		node *ir.Node
		cmd  string
		want error
	}{
		{"float from text", ir.FromString("abc"), "float", ErrTypeConversion},
		{"int from float string", ir.FromString("5.5"), "int", ErrTypeConversion},
		{"wrap non-array", ir.FromInt(1), "wrap", ErrTypeMismatch},
		{"wrap empty array", ir.FromSlice(nil), "wrap", ErrIndexOutOfRange},
		{"get on scalar", ir.FromInt(1), "get_0", ErrTypeMismatch},
		{
			"get past end",
			ir.FromSlice([]*ir.Node{ir.FromInt(1)}),
			"get_3",
			ErrIndexOutOfRange,
		},
		{"unknown command", ir.FromInt(1), "nope", ErrUnsupportedCommand},
	} {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := reg.Apply(tc.node, tc.cmd); !errors.Is(err, tc.want) {
				t.Errorf("Apply(%s) error = %v, want %v", tc.cmd, err, tc.want)
			}
		})
	}
}

func TestApplyAllChains(t *testing.T) {
	reg := Default()
	got, err := reg.ApplyAll(ir.FromString("10"), []string{"float", "int"})
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff(ir.FromInt(10), got); d != "" {
		t.Errorf("(-want +got):\n%s", d)
	}

	// list then extract round-trips a scalar
	got, err = reg.ApplyAll(ir.FromString("x"), []string{"list", "extract"})
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff(ir.FromString("x"), got); d != "" {
		t.Errorf("(-want +got):\n%s", d)
	}
}

func TestRegister(t *testing.T) {
	reg := New()
	double := func(node *ir.Node, _ string) (*ir.Node, error) {
		return ir.FromInt(*node.Int64 * 2), nil
	}
	if err := reg.Register("double", double); err != nil {
		t.Fatal(err)
	}
	if err := reg.Register("double", double); !errors.Is(err, ErrCommandExists) {
		t.Errorf("duplicate Register error = %v, want ErrCommandExists", err)
	}
	got, err := reg.Apply(ir.FromInt(4), "double")
	if err != nil {
		t.Fatal(err)
	}
	if *got.Int64 != 8 {
		t.Errorf("double(4) = %d, want 8", *got.Int64)
	}
	// patterns are whole-string anchored
	if _, err := reg.Apply(ir.FromInt(4), "doubled"); !errors.Is(err, ErrUnsupportedCommand) {
		t.Errorf("partial match error = %v, want ErrUnsupportedCommand", err)
	}
}
