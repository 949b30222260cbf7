package encode

type EncodeOption func(*EncState)

// Wire requests compact single-line output with no whitespace.
func Wire(v bool) EncodeOption {
	return func(es *EncState) { es.wire = v }
}

// Indent sets the indent width for multi-line output.
func Indent(n int) EncodeOption {
	return func(es *EncState) { es.indent = n }
}

// Depth sets the starting nesting depth, shifting all output right.
func Depth(n int) EncodeOption {
	return func(es *EncState) { es.depth = n }
}

func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.Color = c.Color }
}
