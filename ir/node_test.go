package ir

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSetPreservesOrder(t *testing.T) {
	obj := Object()
	obj.Set("b", FromInt(1))
	obj.Set("a", FromInt(2))
	obj.Set("b", FromInt(3))
	if d := cmp.Diff([]string{"b", "a"}, obj.Fields); d != "" {
		t.Errorf("fields (-want +got):\n%s", d)
	}
	if got := Get(obj, "b"); got.Int64 == nil || *got.Int64 != 3 {
		t.Errorf("b not replaced: %+v", got)
	}
}

func TestFromAny(t *testing.T) {
	for _, tc := range []struct {
		in   any
		want any
	}{
		{in: nil, want: nil},
		{in: "x", want: "x"},
		{in: 5, want: int64(5)},
		{in: uint8(7), want: int64(7)},
		{in: 4.5, want: 4.5},
		{in: true, want: true},
		{in: []int{1, 2}, want: []any{int64(1), int64(2)}},
		{in: []any{"a", 1}, want: []any{"a", int64(1)}},
		{
			in:   map[string]any{"k": []string{"v"}},
			want: map[string]any{"k": []any{"v"}},
		},
	} {
		node, err := FromAny(tc.in)
		if err != nil {
			t.Fatalf("FromAny(%v): %v", tc.in, err)
		}
		if d := cmp.Diff(tc.want, ToAny(node)); d != "" {
			t.Errorf("FromAny(%v) (-want +got):\n%s", tc.in, d)
		}
	}
}

func TestFromAnyRejectsIntKeyedMap(t *testing.T) {
	if _, err := FromAny(map[int]any{1: "a"}); err == nil {
		t.Error("expected error for int-keyed map")
	}
}

func TestTruth(t *testing.T) {
	for _, tc := range []struct {
		node *Node
		want bool
	}{
		{Null(), false},
		{FromBool(true), true},
		{FromBool(false), false},
		{FromString(""), false},
		{FromString("x"), true},
		{FromInt(0), false},
		{FromInt(-1), true},
		{FromFloat(0.0), false},
		{FromFloat(0.5), true},
		{FromSlice(nil), false},
		{FromSlice([]*Node{Null()}), true},
		{Object(), false},
		{Object().Set("a", Null()), true},
	} {
		if got := Truth(tc.node); got != tc.want {
			t.Errorf("Truth(%s %+v) = %v, want %v", tc.node.Type, tc.node, got, tc.want)
		}
	}
}

func TestClone(t *testing.T) {
	orig := Object().Set("xs", FromSlice([]*Node{FromInt(1), FromFloat(2.5)}))
	dup := orig.Clone()
	dup.Values[0].Values = append(dup.Values[0].Values, FromString("extra"))
	if len(Get(orig, "xs").Values) != 2 {
		t.Error("clone shares array backing with original")
	}
}
