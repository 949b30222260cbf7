package parse

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/gsconfig/go-gsconfig/ir"
)

func TestLiteralValue(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want *ir.Node
	}{
		{"5", ir.FromInt(5)},
		{"-2", ir.FromInt(-2)},
		{"+3", ir.FromInt(3)},
		{"0x10", ir.FromInt(16)},
		{"4.5", ir.FromFloat(4.5)},
		{"-0.5", ir.FromFloat(-0.5)},
		{"'text'", ir.FromString("text")},
		{`"text"`, ir.FromString("text")},
		{"nil", ir.Null()},
		{"[1, 'a']", ir.FromSlice([]*ir.Node{ir.FromInt(1), ir.FromString("a")})},
		{
			"{'k': 1, 'l': [2]}",
			ir.Object().
				Set("k", ir.FromInt(1)).
				Set("l", ir.FromSlice([]*ir.Node{ir.FromInt(2)})),
		},
	} {
		got, ok := literalValue(tc.in)
		if !ok {
			t.Errorf("literalValue(%q) rejected", tc.in)
			continue
		}
		if d := cmp.Diff(tc.want, got); d != "" {
			t.Errorf("literalValue(%q) (-want +got):\n%s", tc.in, d)
		}
	}
}

func TestLiteralValueRejects(t *testing.T) {
	for _, in := range []string{
		"",
		"name",          // identifier
		"1 + 2",         // arithmetic
		"a.b",           // member access
		"20:00",         // not an expression
		"-'x'",          // sign on a non-number
		"[1, name]",     // identifier inside a list
		"{'k': name}",   // identifier inside a map
		"08.04.2019",    // date-like text
		"f(1)",          // call
		"007",           // leading zero keeps the padding
		"08",            // leading zero
		"01.5",          // leading zero before the point
		"-007",          // signed leading zero
	} {
		if node, ok := literalValue(in); ok {
			t.Errorf("literalValue(%q) accepted as %+v, want rejection", in, node)
		}
	}
}
