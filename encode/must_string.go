package encode

import (
	"bytes"
	"strings"

	"github.com/gsconfig/go-gsconfig/ir"
)

// JSON returns node as compact single-line JSON.
func JSON(node *ir.Node) string {
	buf := bytes.NewBuffer(nil)
	if err := Encode(node, buf, Wire(true)); err != nil {
		panic(err)
	}
	return buf.String()
}

// MustString returns node as indented JSON.
func MustString(node *ir.Node) string {
	buf := bytes.NewBuffer(nil)
	if err := Encode(node, buf); err != nil {
		panic(err)
	}
	return strings.TrimSpace(buf.String())
}
