package parse

import (
	"fmt"
	"strings"

	"github.com/gsconfig/go-gsconfig/debug"
	"github.com/gsconfig/go-gsconfig/encode"
	"github.com/gsconfig/go-gsconfig/ir"
	"github.com/gsconfig/go-gsconfig/scan"
)

// Converter turns cell config text into IR nodes. Build one with New and
// share it freely; conversion does not mutate the converter.
type Converter struct {
	params Params
}

func New(opts ...Option) (*Converter, error) {
	p := defaultParams()
	for _, opt := range opts {
		opt(&p)
	}
	if err := p.validate(); err != nil {
		return nil, err
	}
	return &Converter{params: p}, nil
}

func (c *Converter) Params() Params {
	return c.params
}

// Jsonify converts one cell of config text.
func (c *Converter) Jsonify(s string) (*ir.Node, error) {
	if c.params.Raw {
		return ir.FromString(s), nil
	}
	node, err := c.convert(strings.TrimSpace(s), true)
	if err != nil {
		return nil, err
	}
	if debug.Parse() {
		debug.Logf("parse: %q -> %s", s, encode.JSON(node))
	}
	return node, nil
}

// JsonifyValue converts a cell that may hold a non-string value, as
// spreadsheet readers sometimes deliver numbers directly.
func (c *Converter) JsonifyValue(v any) (*ir.Node, error) {
	return c.Jsonify(fmt.Sprint(v))
}

// convert splits on the block separator and parses each segment. An inner
// conversion always unwraps a lone segment; at the top level a lone object
// stays wrapped unless AlwaysUnwrap is set.
func (c *Converter) convert(s string, top bool) (*ir.Node, error) {
	segments := scan.Split(s, c.params.BlockSep, c.params.scanConfig())
	out := make([]*ir.Node, 0, len(segments))
	for _, seg := range segments {
		node, err := c.parseBlock(seg)
		if err != nil {
			return nil, err
		}
		out = append(out, node)
	}
	if len(out) == 1 {
		if !top || out[0].Type != ir.ObjectType || c.params.AlwaysUnwrap {
			return out[0], nil
		}
	}
	return ir.FromSlice(out), nil
}

// parseBlock parses one comma-separated fragment. Dict entries accumulate
// into a single object appended after the plain elements; a fragment with
// exactly one element unwraps to that element.
func (c *Converter) parseBlock(s string) (*ir.Node, error) {
	var out []*ir.Node
	obj := ir.Object()
	for _, line := range scan.Split(s, c.params.BaseSep, c.params.scanConfig()) {
		switch {
		case strings.HasPrefix(line, string(c.params.RawQuote)):
			out = append(out, ir.FromString(stripEnds(line)))
		case strings.HasPrefix(line, c.params.BlockBracket[:1]):
			inner := stripEnds(line)
			if strings.TrimSpace(inner) == "" {
				out = append(out, ir.FromSlice([]*ir.Node{}))
				continue
			}
			node, err := c.convert(inner, false)
			if err != nil {
				return nil, err
			}
			out = append(out, node)
		default:
			key, value, found := scan.Cut(line, c.params.DictSep, c.params.scanConfig())
			if !found {
				out = append(out, c.coerce(line))
				continue
			}
			if err := c.parseEntry(obj, key, value); err != nil {
				return nil, err
			}
		}
	}
	if len(obj.Fields) > 0 {
		out = append(out, obj)
	}
	if len(out) == 1 {
		return out[0], nil
	}
	return ir.FromSlice(out), nil
}

func (c *Converter) parseEntry(obj *ir.Node, key, value string) error {
	node, err := c.convert(value, false)
	if err != nil {
		return err
	}
	key, commands := c.splitKey(key)
	node, err = c.params.Commands.ApplyAll(node, commands)
	if err != nil {
		return fmt.Errorf("key %q: %w", key, err)
	}
	obj.Set(key, node)
	return nil
}

var shortCommands = []struct {
	suffix  string
	command string
}{
	{"[]", "dlist"},
	{"()", "list"},
	{"(!)", "flist"},
}

// splitKey separates a key from its command chain. V1 keys carry no
// commands of their own; the dlist wrap is implied.
func (c *Converter) splitKey(key string) (string, []string) {
	if c.params.Generation == GenV1 {
		return key, []string{"dlist"}
	}
	var commands []string
	if parts := strings.Split(key, string(c.params.FuncSep)); len(parts) > 1 {
		key = strings.TrimSpace(parts[0])
		for _, p := range parts[1:] {
			commands = append(commands, strings.TrimSpace(p))
		}
	}
	for _, sc := range shortCommands {
		if strings.HasSuffix(key, sc.suffix) {
			key = strings.TrimSuffix(key, sc.suffix)
			commands = append(commands, sc.command)
			break
		}
	}
	return key, commands
}

// stripEnds drops the first and last character, the bracket or quote pair
// around a span. The closing character is not verified: unterminated spans
// lose their last character, matching how permissive the format is about
// malformed input.
func stripEnds(s string) string {
	if len(s) < 2 {
		return ""
	}
	return s[1 : len(s)-1]
}
