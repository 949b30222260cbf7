// Package ir provides the intermediate representation for converted config
// values.
//
// # Overview
//
// Every value produced by the config converter or consumed by the template
// engine is an ir.Node: a recursive tagged union covering null, bool, number
// (integer or floating point), string, array, and object. The IR maps 1:1 to
// JSON; object key order is insertion order and is preserved through
// encoding.
//
// # Node Types
//
// The Type field indicates the node's type:
//
//   - NullType: null value
//   - BoolType: boolean (true/false)
//   - NumberType: numeric value (int64 or float64)
//   - StringType: string value
//   - ArrayType: ordered list of nodes
//   - ObjectType: key-value pairs (fields and values)
//
// # Creating Nodes
//
// Use constructor functions to create nodes:
//
//	node := ir.FromString("hello")
//	num := ir.FromInt(42)
//	flag := ir.FromBool(true)
//	arr := ir.FromSlice([]*ir.Node{ir.FromInt(1), ir.FromInt(2)})
//
// Object nodes keep Fields[i] as the key of Values[i]; use Set to insert or
// replace a key while preserving first-insertion order.
//
// # Numbers
//
// Number values are placed under Int64 if integral and Float64 otherwise.
// Exactly one of the two is non-nil on a well-formed number node.
//
// # Thread Safety
//
// Node trees are not thread-safe. Each conversion produces a fresh tree owned
// by the caller; clone before sharing across goroutines.
//
// # Related Packages
//
//   - github.com/gsconfig/go-gsconfig/parse - converts config cell text into IR
//   - github.com/gsconfig/go-gsconfig/encode - encodes IR as JSON text
//   - github.com/gsconfig/go-gsconfig/keycmd - value transform commands on IR
package ir
