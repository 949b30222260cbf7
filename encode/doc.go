// Package encode turns IR nodes into JSON text and decodes JSON text back
// into IR nodes.
//
// Object fields keep their insertion order, so a config converted from cell
// text encodes with its keys in the order they were written.
//
// # Usage
//
//	// Compact JSON
//	s := encode.JSON(node)
//
//	// Indented, optionally colored
//	var buf bytes.Buffer
//	err := encode.Encode(node, &buf, encode.Indent(2), encode.EncodeColors(encode.NewColors()))
//
//	// JSON text back to IR, field order preserved
//	node, err := encode.DecodeJSON(data)
//
// # Numbers
//
// Integers encode without a fractional part. Floats encode with the
// shortest representation that round-trips, with ".0" appended when the
// value is integral, so a float 10 encodes as 10.0 and survives a
// round-trip as a float. NaN and infinities have no JSON form and encode
// as null.
//
// # Related Packages
//
//   - github.com/gsconfig/go-gsconfig/ir - IR representation
//   - github.com/gsconfig/go-gsconfig/parse - cell text to IR
package encode
