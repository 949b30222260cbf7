// Package keycmd implements the command dispatcher applied to key values
// during parsing and template substitution.
//
// A command is a short name such as "float" or "get_2" attached to a key
// with '!', as in "price!float" or "layers!get_0!int". Commands are matched
// against registered patterns and applied left to right, each transforming
// the value produced by the previous one.
//
// # Registry
//
// A Registry holds an ordered list of (pattern, handler) pairs. Patterns
// are regular expressions anchored at both ends; the first pattern that
// matches a command wins. Default returns a registry preloaded with the
// builtin commands, and Register adds custom ones.
//
// # Builtin Commands
//
//   - dummy: no-op
//   - float: convert a number or numeric string to a float
//   - int: convert to an integer, truncating floats
//   - json: replace the value with its compact JSON text
//   - string: wrap a string value in literal double quotes
//   - extract: unwrap a one-element array
//   - wrap: wrap an array in another array unless its first element
//     is already an array or object
//   - list: wrap any non-array value in an array
//   - dlist: wrap an object in an array
//   - flist: wrap unconditionally in an array
//   - none, null: turn an empty string into null
//   - get_N, extract_N: take the element at index N of an array
package keycmd
