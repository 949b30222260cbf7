package parse

import (
	"strings"

	"github.com/gsconfig/go-gsconfig/ir"
)

// coerce maps a bare element to a scalar. The word forms of null and the
// booleans are case-insensitive; everything else goes through the literal
// evaluator and falls back to a plain string.
func (c *Converter) coerce(s string) *ir.Node {
	switch strings.ToLower(s) {
	case "none", "nan", "null":
		return ir.Null()
	case "true":
		return ir.FromBool(true)
	case "false":
		return ir.FromBool(false)
	}
	if !c.params.ToNumber {
		return ir.FromString(s)
	}
	if node, ok := literalValue(s); ok {
		return node
	}
	return ir.FromString(s)
}
