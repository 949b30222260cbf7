package parse

import (
	"regexp"

	"github.com/expr-lang/expr/ast"
	"github.com/expr-lang/expr/parser"

	"github.com/gsconfig/go-gsconfig/ir"
)

// leadingZeroRe matches decimal tokens with a leading zero, like "007" or
// "01.5". Those stay strings: zero-padded ids lose their padding if they
// coerce. Prefixed forms like 0x1F do not match and still coerce.
var leadingZeroRe = regexp.MustCompile(`^[+-]?0\d`)

// literalValue evaluates s as a literal: a number, quoted string, boolean,
// nil, or a list/map literal built only from those. Identifiers, member
// access and arithmetic are rejected so the caller falls back to a plain
// string instead of evaluating designer text as an expression.
func literalValue(s string) (*ir.Node, bool) {
	if leadingZeroRe.MatchString(s) {
		return nil, false
	}
	tree, err := parser.Parse(s)
	if err != nil {
		return nil, false
	}
	return literalNode(tree.Node)
}

func literalNode(n ast.Node) (*ir.Node, bool) {
	switch x := n.(type) {
	case *ast.IntegerNode:
		return ir.FromInt(int64(x.Value)), true
	case *ast.FloatNode:
		return ir.FromFloat(x.Value), true
	case *ast.BoolNode:
		return ir.FromBool(x.Value), true
	case *ast.StringNode:
		return ir.FromString(x.Value), true
	case *ast.NilNode:
		return ir.Null(), true
	case *ast.UnaryNode:
		return literalUnary(x)
	case *ast.ArrayNode:
		res := make([]*ir.Node, 0, len(x.Nodes))
		for _, e := range x.Nodes {
			c, ok := literalNode(e)
			if !ok {
				return nil, false
			}
			res = append(res, c)
		}
		return ir.FromSlice(res), true
	case *ast.MapNode:
		res := ir.Object()
		for _, p := range x.Pairs {
			pair, ok := p.(*ast.PairNode)
			if !ok {
				return nil, false
			}
			key, ok := literalMapKey(pair.Key)
			if !ok {
				return nil, false
			}
			value, ok := literalNode(pair.Value)
			if !ok {
				return nil, false
			}
			res.Set(key, value)
		}
		return res, true
	default:
		return nil, false
	}
}

// literalUnary accepts a sign on a numeric literal, nothing else.
func literalUnary(u *ast.UnaryNode) (*ir.Node, bool) {
	if u.Operator != "-" && u.Operator != "+" {
		return nil, false
	}
	operand, ok := literalNode(u.Node)
	if !ok || operand.Type != ir.NumberType {
		return nil, false
	}
	if u.Operator == "+" {
		return operand, true
	}
	if operand.Int64 != nil {
		return ir.FromInt(-*operand.Int64), true
	}
	return ir.FromFloat(-*operand.Float64), true
}

func literalMapKey(n ast.Node) (string, bool) {
	key, ok := literalNode(n)
	if !ok {
		return "", false
	}
	if key.Type != ir.StringType {
		return "", false
	}
	return key.String, true
}
