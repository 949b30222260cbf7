package keycmd

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/gsconfig/go-gsconfig/encode"
	"github.com/gsconfig/go-gsconfig/ir"
)

var builtins = []struct {
	pattern string
	fn      Handler
}{
	{"dummy", cmdDummy},
	{"float", cmdFloat},
	{"int", cmdInt},
	{"json", cmdJSON},
	{"string", cmdString},
	{"extract", cmdExtract},
	{"wrap", cmdWrap},
	{"list", cmdList},
	{"dlist", cmdDlist},
	{"flist", cmdFlist},
	{"none", cmdNone},
	{"null", cmdNone},
	{`get_\d+`, cmdGetByIndex},
	{`extract_\d+`, cmdGetByIndex},
}

var indexRe = regexp.MustCompile(`_(\d+)$`)

func cmdDummy(node *ir.Node, _ string) (*ir.Node, error) {
	return node, nil
}

func cmdFloat(node *ir.Node, _ string) (*ir.Node, error) {
	switch node.Type {
	case ir.NumberType:
		if node.Int64 != nil {
			return ir.FromFloat(float64(*node.Int64)), nil
		}
		return node, nil
	case ir.StringType:
		f, err := strconv.ParseFloat(node.String, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %q to float", ErrTypeConversion, node.String)
		}
		return ir.FromFloat(f), nil
	case ir.BoolType:
		if node.Bool {
			return ir.FromFloat(1), nil
		}
		return ir.FromFloat(0), nil
	default:
		return nil, fmt.Errorf("%w: %s to float", ErrTypeConversion, node.Type)
	}
}

func cmdInt(node *ir.Node, _ string) (*ir.Node, error) {
	switch node.Type {
	case ir.NumberType:
		if node.Float64 != nil {
			return ir.FromInt(int64(*node.Float64)), nil
		}
		return node, nil
	case ir.StringType:
		i, err := strconv.ParseInt(node.String, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %q to int", ErrTypeConversion, node.String)
		}
		return ir.FromInt(i), nil
	case ir.BoolType:
		if node.Bool {
			return ir.FromInt(1), nil
		}
		return ir.FromInt(0), nil
	default:
		return nil, fmt.Errorf("%w: %s to int", ErrTypeConversion, node.Type)
	}
}

func cmdJSON(node *ir.Node, _ string) (*ir.Node, error) {
	return ir.FromString(encode.JSON(node)), nil
}

// cmdString puts literal double quotes around a string value. Other types
// pass through, which lets a template key fall back to null cleanly when
// the balance holds no string.
func cmdString(node *ir.Node, _ string) (*ir.Node, error) {
	if node.Type == ir.StringType {
		return ir.FromString(`"` + node.String + `"`), nil
	}
	return node, nil
}

func cmdExtract(node *ir.Node, _ string) (*ir.Node, error) {
	if node.Type == ir.ArrayType && len(node.Values) == 1 {
		return node.Values[0], nil
	}
	return node, nil
}

func cmdWrap(node *ir.Node, _ string) (*ir.Node, error) {
	if node.Type != ir.ArrayType {
		return nil, fmt.Errorf("%w: wrap needs an array, got %s", ErrTypeMismatch, node.Type)
	}
	if len(node.Values) == 0 {
		return nil, fmt.Errorf("%w: wrap on an empty array", ErrIndexOutOfRange)
	}
	if t := node.Values[0].Type; t != ir.ArrayType && t != ir.ObjectType {
		return ir.FromSlice([]*ir.Node{node}), nil
	}
	return node, nil
}

func cmdList(node *ir.Node, _ string) (*ir.Node, error) {
	if node.Type != ir.ArrayType {
		return ir.FromSlice([]*ir.Node{node}), nil
	}
	return node, nil
}

func cmdDlist(node *ir.Node, _ string) (*ir.Node, error) {
	if node.Type == ir.ObjectType {
		return ir.FromSlice([]*ir.Node{node}), nil
	}
	return node, nil
}

func cmdFlist(node *ir.Node, _ string) (*ir.Node, error) {
	return ir.FromSlice([]*ir.Node{node}), nil
}

func cmdNone(node *ir.Node, _ string) (*ir.Node, error) {
	if node.Type == ir.StringType && node.String == "" {
		return ir.Null(), nil
	}
	return node, nil
}

func cmdGetByIndex(node *ir.Node, command string) (*ir.Node, error) {
	if node.Type != ir.ArrayType {
		return nil, fmt.Errorf("%w: %s needs an array, got %s", ErrTypeMismatch, command, node.Type)
	}
	m := indexRe.FindStringSubmatch(command)
	if m == nil {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedCommand, command)
	}
	idx, err := strconv.Atoi(m[1])
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedCommand, command)
	}
	if idx >= len(node.Values) {
		return nil, fmt.Errorf("%w: index %d in array of %d", ErrIndexOutOfRange, idx, len(node.Values))
	}
	return node.Values[idx], nil
}
