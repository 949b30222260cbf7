package keycmd

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/gsconfig/go-gsconfig/ir"
)

// Handler transforms a value. The command string that matched is passed in
// so handlers with parameterised patterns, like get_N, can read the
// parameter out of it.
type Handler func(node *ir.Node, command string) (*ir.Node, error)

type entry struct {
	pattern string
	re      *regexp.Regexp
	fn      Handler
}

// Registry is an ordered set of command patterns with their handlers.
// Apply tries patterns in registration order and the first match wins, so
// more specific patterns should be registered before overlapping general
// ones. A Registry is not safe for concurrent registration.
type Registry struct {
	entries []entry
}

// New returns an empty registry.
func New() *Registry {
	return &Registry{}
}

// Default returns a registry with all builtin commands registered.
func Default() *Registry {
	reg := New()
	for _, b := range builtins {
		if err := reg.Register(b.pattern, b.fn); err != nil {
			panic(err)
		}
	}
	return reg
}

// Register adds a command under the given pattern. The pattern is a regular
// expression matched against the whole command name.
func (r *Registry) Register(pattern string, fn Handler) error {
	for i := range r.entries {
		if r.entries[i].pattern == pattern {
			return fmt.Errorf("%w: %q", ErrCommandExists, pattern)
		}
	}
	re, err := regexp.Compile("^(?:" + pattern + ")$")
	if err != nil {
		return fmt.Errorf("command pattern %q: %w", pattern, err)
	}
	r.entries = append(r.entries, entry{pattern: pattern, re: re, fn: fn})
	return nil
}

// Apply runs the handler of the first pattern matching command.
func (r *Registry) Apply(node *ir.Node, command string) (*ir.Node, error) {
	for i := range r.entries {
		if r.entries[i].re.MatchString(command) {
			return r.entries[i].fn(node, command)
		}
	}
	return nil, fmt.Errorf("%w: %q (known: %s)", ErrUnsupportedCommand,
		command, strings.Join(r.Patterns(), ", "))
}

// ApplyAll applies a chain of commands left to right.
func (r *Registry) ApplyAll(node *ir.Node, commands []string) (*ir.Node, error) {
	res := node
	var err error
	for _, cmd := range commands {
		res, err = r.Apply(res, cmd)
		if err != nil {
			return nil, err
		}
	}
	return res, nil
}

// Patterns returns the registered patterns in registration order.
func (r *Registry) Patterns() []string {
	res := make([]string, len(r.entries))
	for i := range r.entries {
		res[i] = r.entries[i].pattern
	}
	return res
}
