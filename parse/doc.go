// Package parse converts spreadsheet-cell config text into IR nodes.
//
// The input format is a loose, comma-separated shorthand for JSON that game
// designers write inside single spreadsheet cells:
//
//	one = two, item = {count = 4.5, price = 100, name = {name1 = name}}
//
// Blocks nest with braces, key = value pairs build objects, bare elements
// build arrays, and a pipe splits top-level alternative blocks without
// braces, so 'a = 1 | b = 2' means '{a = 1}, {b = 2}'. Quoted spans are
// kept verbatim. Scalars coerce to numbers, booleans and null, and native
// literal syntax like ['one', {'k': 2}] passes through the literal
// evaluator.
//
// # Generations
//
// Two parser generations are supported. V1 wraps every object produced by
// a dict value in a one-element array, a legacy invariant for consumers
// that expect arrays of objects. V2 leaves values alone unless the key
// carries commands: 'name!list = x' applies the list command, and the
// suffixes [], () and (!) are shorthand for dlist, list and flist. See the
// keycmd package for the command set.
//
// # Usage
//
//	conv, err := parse.New(parse.V2())
//	node, err := conv.Jsonify("one!list = two, item = {count = 4.5}")
//	fmt.Println(encode.MustString(node))
//
// Malformed input does not fail the conversion: an unbalanced bracket or
// unterminated quote just swallows the rest of the segment, and a scalar
// that the literal evaluator rejects stays a string.
package parse
