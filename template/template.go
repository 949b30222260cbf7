package template

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/gsconfig/go-gsconfig/debug"
	"github.com/gsconfig/go-gsconfig/encode"
	"github.com/gsconfig/go-gsconfig/ir"
	"github.com/gsconfig/go-gsconfig/keycmd"
)

// CommandLetter separates a key from its command chain in a substitution
// marker.
const CommandLetter = '!'

// VarItem and VarIndex are the loop variables bound by foreach and for.
const (
	VarItem  = "$item"
	VarIndex = "$i"
)

var (
	defaultVariableRe = regexp.MustCompile(`\{%\s*([a-zA-Z0-9_!]+)\s*%\}`)
	commentRe         = regexp.MustCompile(`(?s)\{#\s*.*?\s*#\}\n?`)
	endRe             = regexp.MustCompile(`\{%\s*end([a-zA-Z0-9_]+)\s*%\}`)
)

// Balance holds the data substituted into a template. Values are plain Go
// values: strings, numbers, bools, slices, string-keyed maps, or IR nodes.
type Balance map[string]any

func (b Balance) node(key string) (*ir.Node, error) {
	v, ok := b[key]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrMissingKey, key)
	}
	node, err := ir.FromAny(v)
	if err != nil {
		return nil, fmt.Errorf("%w: key %q: %v", ErrBalanceValue, key, err)
	}
	return node, nil
}

// ControlHandler expands one {% name param %}content{% endname %} block.
// The content has already had nested control blocks expanded.
type ControlHandler func(t *Template, param, content string, balance Balance) (string, error)

type Template struct {
	body    string
	strip   bool
	jsonify bool

	pattern  *regexp.Regexp
	commands *keycmd.Registry
	controls map[string]ControlHandler
	// order of control expansion; handlers registered later run after the
	// builtins
	controlNames []string
	controlRes   map[string]*regexp.Regexp
}

type Option func(*Template) error

// Strip controls whether substituted strings are inserted bare; on by
// default. With strip off, strings are inserted quoted.
func Strip(v bool) Option {
	return func(t *Template) error {
		t.strip = v
		return nil
	}
}

// Jsonify makes Render verify that the output is valid JSON.
func Jsonify(v bool) Option {
	return func(t *Template) error {
		t.jsonify = v
		return nil
	}
}

// Pattern overrides the substitution marker pattern. The key and command
// chain must be the first capture group and the command letter must stay
// matchable.
func Pattern(expr string) Option {
	return func(t *Template) error {
		re, err := regexp.Compile(expr)
		if err != nil {
			return fmt.Errorf("variable pattern: %w", err)
		}
		t.pattern = re
		return nil
	}
}

// WithCommands replaces the key command registry.
func WithCommands(reg *keycmd.Registry) Option {
	return func(t *Template) error {
		t.commands = reg
		return nil
	}
}

// WithControl registers a control block handler under name.
func WithControl(name string, h ControlHandler) Option {
	return func(t *Template) error {
		return t.addControl(name, h)
	}
}

func New(body string, opts ...Option) (*Template, error) {
	t := &Template{
		body:       body,
		strip:      true,
		pattern:    defaultVariableRe,
		commands:   keycmd.Default(),
		controls:   map[string]ControlHandler{},
		controlRes: map[string]*regexp.Regexp{},
	}
	for _, b := range []struct {
		name string
		h    ControlHandler
	}{
		{"if", controlIf},
		{"comment", controlComment},
		{"foreach", controlForeach},
		{"for", controlFor},
	} {
		if err := t.addControl(b.name, b.h); err != nil {
			return nil, err
		}
	}
	for _, opt := range opts {
		if err := opt(t); err != nil {
			return nil, err
		}
	}
	return t, nil
}

func (t *Template) addControl(name string, h ControlHandler) error {
	if _, ok := t.controls[name]; !ok {
		t.controlNames = append(t.controlNames, name)
		re, err := regexp.Compile(
			`(?s)\{%\s*` + regexp.QuoteMeta(name) +
				`\s+([a-zA-Z0-9_]*)\s*%\}(.*?)\{%\s*end` +
				regexp.QuoteMeta(name) + `\s*%\}\n?`)
		if err != nil {
			return err
		}
		t.controlRes[name] = re
	}
	t.controls[name] = h
	return nil
}

func (t *Template) Body() string {
	return t.body
}

// Keys lists every substitution marker in the body, commands included, in
// order of appearance.
func (t *Template) Keys() []string {
	ms := t.pattern.FindAllStringSubmatch(t.body, -1)
	res := make([]string, 0, len(ms))
	for _, m := range ms {
		res = append(res, m[1])
	}
	return res
}

// Render strips comments, expands control blocks, then substitutes keys.
func (t *Template) Render(balance Balance) (string, error) {
	body := commentRe.ReplaceAllString(t.body, "")
	body, err := t.expandControls(body, balance)
	if err != nil {
		return "", err
	}
	out, err := t.substituteKeys(body, balance)
	if err != nil {
		return "", err
	}
	if t.jsonify && !json.Valid([]byte(out)) {
		return "", fmt.Errorf("%w: output is not valid JSON:\n%s", ErrRender, out)
	}
	if debug.Template() {
		debug.Logf("template: rendered %d bytes from %d keys", len(out), len(t.Keys()))
	}
	return out, nil
}

// RenderValue renders and decodes the output, which must be valid JSON.
func (t *Template) RenderValue(balance Balance) (*ir.Node, error) {
	out, err := t.Render(balance)
	if err != nil {
		return nil, err
	}
	node, err := encode.DecodeJSON([]byte(out))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRender, err)
	}
	return node, nil
}

func (t *Template) substituteKeys(body string, balance Balance) (string, error) {
	var firstErr error
	out := t.pattern.ReplaceAllStringFunc(body, func(m string) string {
		sub := t.pattern.FindStringSubmatch(m)
		parts := strings.Split(sub[1], string(CommandLetter))
		node, err := balance.node(parts[0])
		if err != nil {
			if firstErr == nil {
				firstErr = err
			}
			return m
		}
		node, err = t.commands.ApplyAll(node, parts[1:])
		if err != nil {
			if firstErr == nil {
				firstErr = fmt.Errorf("key %q: %w", parts[0], err)
			}
			return m
		}
		if t.strip && node.Type == ir.StringType {
			return node.String
		}
		return encode.JSON(node)
	})
	if firstErr != nil {
		return "", firstErr
	}
	return out, nil
}
