package ir

import (
	"fmt"
	"reflect"
	"slices"
)

// FromAny converts a plain Go value (the kind produced by decoding JSON or
// YAML into any) to a Node. Map keys must be strings; map key order is not
// recoverable from Go maps, so keys are sorted.
func FromAny(v any) (*Node, error) {
	switch x := v.(type) {
	case nil:
		return Null(), nil
	case *Node:
		return x, nil
	case string:
		return FromString(x), nil
	case bool:
		return FromBool(x), nil
	case int:
		return FromInt(int64(x)), nil
	case int64:
		return FromInt(x), nil
	case float64:
		return FromFloat(x), nil
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return FromInt(rv.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return FromInt(int64(rv.Uint())), nil
	case reflect.Float32, reflect.Float64:
		return FromFloat(rv.Float()), nil
	case reflect.String:
		return FromString(rv.String()), nil
	case reflect.Bool:
		return FromBool(rv.Bool()), nil
	case reflect.Slice, reflect.Array:
		vs := make([]*Node, rv.Len())
		for i := range rv.Len() {
			c, err := FromAny(rv.Index(i).Interface())
			if err != nil {
				return nil, err
			}
			vs[i] = c
		}
		return FromSlice(vs), nil
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return nil, fmt.Errorf("%w: map key type %s", ErrValue, rv.Type().Key())
		}
		keys := make([]string, 0, rv.Len())
		for _, k := range rv.MapKeys() {
			keys = append(keys, k.String())
		}
		slices.Sort(keys)
		res := Object()
		for _, k := range keys {
			c, err := FromAny(rv.MapIndex(reflect.ValueOf(k)).Interface())
			if err != nil {
				return nil, err
			}
			res.Set(k, c)
		}
		return res, nil
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return Null(), nil
		}
		return FromAny(rv.Elem().Interface())
	default:
		return nil, fmt.Errorf("%w: %T", ErrValue, v)
	}
}

// ToAny converts a Node to plain Go values. Object key order is lost.
func ToAny(y *Node) any {
	switch y.Type {
	case NullType:
		return nil
	case BoolType:
		return y.Bool
	case StringType:
		return y.String
	case NumberType:
		if y.Int64 != nil {
			return *y.Int64
		}
		if y.Float64 != nil {
			return *y.Float64
		}
		return nil
	case ArrayType:
		res := make([]any, len(y.Values))
		for i, v := range y.Values {
			res[i] = ToAny(v)
		}
		return res
	case ObjectType:
		res := make(map[string]any, len(y.Fields))
		for i, f := range y.Fields {
			res[f] = ToAny(y.Values[i])
		}
		return res
	default:
		panic("type")
	}
}
