package ir

type Node struct {
	Type Type

	// Fields holds object keys in insertion order; for ObjectType nodes
	// len(Fields) == len(Values).
	Fields []string
	// Values holds object values (keyed by Fields) or array elements.
	Values []*Node

	String  string
	Bool    bool
	Int64   *int64
	Float64 *float64
}

func FromString(v string) *Node {
	return &Node{
		Type:   StringType,
		String: v,
	}
}

func FromInt(v int64) *Node {
	return &Node{
		Type:  NumberType,
		Int64: &v,
	}
}

func FromFloat(f float64) *Node {
	return &Node{
		Type:    NumberType,
		Float64: &f,
	}
}

func FromBool(v bool) *Node {
	return &Node{
		Type: BoolType,
		Bool: v,
	}
}

func Null() *Node {
	return &Node{Type: NullType}
}

func FromSlice(vs []*Node) *Node {
	return &Node{
		Type:   ArrayType,
		Values: vs,
	}
}

func Object() *Node {
	return &Node{Type: ObjectType}
}

// Set inserts or replaces the value under field, preserving the position of
// an existing key.
func (y *Node) Set(field string, v *Node) *Node {
	for i, f := range y.Fields {
		if f == field {
			y.Values[i] = v
			return y
		}
	}
	y.Fields = append(y.Fields, field)
	y.Values = append(y.Values, v)
	return y
}

func Get(y *Node, field string) *Node {
	for i := range y.Fields {
		if y.Fields[i] == field {
			return y.Values[i]
		}
	}
	return nil
}

func (y *Node) Clone() *Node {
	res := &Node{
		Type:   y.Type,
		String: y.String,
		Bool:   y.Bool,
	}
	if y.Int64 != nil {
		i := *y.Int64
		res.Int64 = &i
	}
	if y.Float64 != nil {
		f := *y.Float64
		res.Float64 = &f
	}
	if y.Fields != nil {
		res.Fields = append([]string(nil), y.Fields...)
	}
	if y.Values != nil {
		res.Values = make([]*Node, len(y.Values))
		for i, v := range y.Values {
			res.Values[i] = v.Clone()
		}
	}
	return res
}

func (y *Node) Visit(f func(y *Node, isPost bool) (bool, error)) error {
	dive, err := f(y, false)
	if err != nil {
		return err
	}
	if dive {
		for _, yy := range y.Values {
			if err := yy.Visit(f); err != nil {
				return err
			}
		}
	}
	if _, err := f(y, true); err != nil {
		return err
	}
	return nil
}
