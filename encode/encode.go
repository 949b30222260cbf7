package encode

import (
	"encoding/json"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/gsconfig/go-gsconfig/ir"
)

type EncState struct {
	depth, indent int
	wire          bool

	Color func(ir.Type, ColorAttr, string) string
}

// Encode writes node as JSON. Output is indented unless Wire is set.
func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{
		indent: 2,
	}
	for _, opt := range opts {
		opt(es)
	}
	return encode(node, w, es)
}

func encode(node *ir.Node, w io.Writer, es *EncState) error {
	switch node.Type {
	case ir.NullType:
		return writeValue(w, es, node.Type, "null")
	case ir.BoolType:
		return writeValue(w, es, node.Type, strconv.FormatBool(node.Bool))
	case ir.NumberType:
		return writeValue(w, es, node.Type, formatNumber(node))
	case ir.StringType:
		return writeValue(w, es, node.Type, quote(node.String))
	case ir.ArrayType:
		return encodeArray(node, w, es)
	case ir.ObjectType:
		return encodeObject(node, w, es)
	default:
		panic("type")
	}
}

func encodeArray(node *ir.Node, w io.Writer, es *EncState) error {
	if len(node.Values) == 0 {
		return writeSep(w, es, node.Type, "[]")
	}
	if err := writeSep(w, es, node.Type, "["); err != nil {
		return err
	}
	es.depth++
	for i, v := range node.Values {
		if i > 0 {
			if err := writeSep(w, es, node.Type, ","); err != nil {
				return err
			}
		}
		if err := writeNL(w, es); err != nil {
			return err
		}
		if err := encode(v, w, es); err != nil {
			return err
		}
	}
	es.depth--
	if err := writeNL(w, es); err != nil {
		return err
	}
	return writeSep(w, es, node.Type, "]")
}

func encodeObject(node *ir.Node, w io.Writer, es *EncState) error {
	if len(node.Fields) == 0 {
		return writeSep(w, es, node.Type, "{}")
	}
	if err := writeSep(w, es, node.Type, "{"); err != nil {
		return err
	}
	es.depth++
	for i, f := range node.Fields {
		if i > 0 {
			if err := writeSep(w, es, node.Type, ","); err != nil {
				return err
			}
		}
		if err := writeNL(w, es); err != nil {
			return err
		}
		if err := writeField(w, es, node.Type, quote(f)); err != nil {
			return err
		}
		if err := writeSep(w, es, node.Type, ":"); err != nil {
			return err
		}
		if !es.wire {
			if err := writeString(w, " "); err != nil {
				return err
			}
		}
		if err := encode(node.Values[i], w, es); err != nil {
			return err
		}
	}
	es.depth--
	if err := writeNL(w, es); err != nil {
		return err
	}
	return writeSep(w, es, node.Type, "}")
}

// formatNumber renders ints without a fractional part and floats with one,
// appending ".0" to integral floats so the number stays a float on
// round-trip. NaN and infinities render as null.
func formatNumber(node *ir.Node) string {
	if node.Int64 != nil {
		return strconv.FormatInt(*node.Int64, 10)
	}
	f := *node.Float64
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return "null"
	}
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}

// quote relies on encoding/json for string escaping.
func quote(s string) string {
	b, err := json.Marshal(s)
	if err != nil {
		panic(err)
	}
	return string(b)
}

func writeNL(w io.Writer, es *EncState) error {
	if es.wire {
		return nil
	}
	indentString := strings.Repeat(strings.Repeat(" ", es.indent), es.depth)
	return writeString(w, "\n"+indentString)
}

func writeString(w io.Writer, s string) error {
	_, err := w.Write([]byte(s))
	return err
}

func writeValue(w io.Writer, es *EncState, t ir.Type, s string) error {
	if es.Color != nil {
		s = es.Color(t, ValueColor, s)
	}
	return writeString(w, s)
}

func writeField(w io.Writer, es *EncState, t ir.Type, s string) error {
	if es.Color != nil {
		s = es.Color(t, FieldColor, s)
	}
	return writeString(w, s)
}

func writeSep(w io.Writer, es *EncState, t ir.Type, s string) error {
	if es.Color != nil {
		s = es.Color(t, SepColor, s)
	}
	return writeString(w, s)
}
