package encode

import (
	"errors"
	"fmt"

	"github.com/goccy/go-yaml/ast"
	"github.com/goccy/go-yaml/parser"

	"github.com/gsconfig/go-gsconfig/ir"
)

var ErrDecode = errors.New("decode error")

// DecodeJSON parses JSON text into an IR node, preserving object field
// order. The standard library decoder loses field order by going through
// maps, so this goes through a YAML AST instead (JSON is a YAML subset).
func DecodeJSON(data []byte) (*ir.Node, error) {
	f, err := parser.ParseBytes(data, 0)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	if len(f.Docs) == 0 || f.Docs[0].Body == nil {
		return ir.Null(), nil
	}
	return fromAST(f.Docs[0].Body)
}

func fromAST(n ast.Node) (*ir.Node, error) {
	switch x := n.(type) {
	case *ast.NullNode:
		return ir.Null(), nil
	case *ast.BoolNode:
		return ir.FromBool(x.Value), nil
	case *ast.IntegerNode:
		switch v := x.Value.(type) {
		case int64:
			return ir.FromInt(v), nil
		case uint64:
			return ir.FromInt(int64(v)), nil
		default:
			return nil, fmt.Errorf("%w: integer value %T", ErrDecode, x.Value)
		}
	case *ast.FloatNode:
		return ir.FromFloat(x.Value), nil
	case *ast.StringNode:
		return ir.FromString(x.Value), nil
	case *ast.LiteralNode:
		return ir.FromString(x.Value.Value), nil
	case *ast.SequenceNode:
		vs := make([]*ir.Node, len(x.Values))
		for i, v := range x.Values {
			c, err := fromAST(v)
			if err != nil {
				return nil, err
			}
			vs[i] = c
		}
		return ir.FromSlice(vs), nil
	case *ast.MappingNode:
		res := ir.Object()
		for _, mv := range x.Values {
			if err := setEntry(res, mv); err != nil {
				return nil, err
			}
		}
		return res, nil
	case *ast.MappingValueNode:
		// single-pair mappings parse to a bare MappingValueNode
		res := ir.Object()
		if err := setEntry(res, x); err != nil {
			return nil, err
		}
		return res, nil
	default:
		return nil, fmt.Errorf("%w: unexpected node %T", ErrDecode, n)
	}
}

func setEntry(obj *ir.Node, mv *ast.MappingValueNode) error {
	key, err := fromAST(mv.Key)
	if err != nil {
		return err
	}
	var field string
	switch key.Type {
	case ir.StringType:
		field = key.String
	case ir.NumberType:
		field = formatNumber(key)
	default:
		return fmt.Errorf("%w: object key of type %s", ErrDecode, key.Type)
	}
	value, err := fromAST(mv.Value)
	if err != nil {
		return err
	}
	obj.Set(field, value)
	return nil
}
