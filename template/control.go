package template

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/gsconfig/go-gsconfig/encode"
	"github.com/gsconfig/go-gsconfig/ir"
)

// expandControls expands control blocks until none are left. Nested blocks
// inside a matched content span are expanded before the span's own handler
// runs, and handler output is scanned again, so blocks produced by a
// handler still expand.
func (t *Template) expandControls(body string, balance Balance) (string, error) {
	for {
		if err := t.checkEndTags(body); err != nil {
			return "", err
		}
		progress := false
		for _, name := range t.controlNames {
			re := t.controlRes[name]
			for {
				loc := re.FindStringSubmatchIndex(body)
				if loc == nil {
					break
				}
				progress = true
				param := body[loc[2]:loc[3]]
				content := body[loc[4]:loc[5]]
				content, err := t.expandControls(content, balance)
				if err != nil {
					return "", err
				}
				expanded, err := t.controls[name](t, param, content, balance)
				if err != nil {
					return "", err
				}
				body = body[:loc[0]] + expanded + body[loc[1]:]
			}
		}
		if !progress {
			return body, nil
		}
	}
}

// checkEndTags rejects complete control blocks whose name has no handler.
// A lone end tag without a matching start is left in place.
func (t *Template) checkEndTags(body string) error {
	for _, m := range endRe.FindAllStringSubmatch(body, -1) {
		name := m[1]
		if _, ok := t.controls[name]; ok {
			continue
		}
		startRe := regexp.MustCompile(`\{%\s*` + regexp.QuoteMeta(name) + `(\s|%)`)
		if startRe.MatchString(body) {
			names := strings.Join(t.controlNames, ", ")
			return fmt.Errorf("%w: %q (available: %s)", ErrUnsupportedCommand, name, names)
		}
	}
	return nil
}

// controlIf keeps content when the balance value under param is truthy.
// A missing key counts as false.
func controlIf(_ *Template, param, content string, balance Balance) (string, error) {
	v, ok := balance[param]
	if !ok {
		return "", nil
	}
	node, err := ir.FromAny(v)
	if err != nil {
		return "", fmt.Errorf("%w: key %q: %v", ErrBalanceValue, param, err)
	}
	if !ir.Truth(node) {
		return "", nil
	}
	return strings.TrimLeft(content, " \t\n"), nil
}

func controlComment(_ *Template, _, _ string, _ Balance) (string, error) {
	return "", nil
}

// controlForeach repeats content for each element of the array under
// param. String and integer elements substitute $item directly; other
// elements rewrite $item markers to key!get_N so the substitution pass
// pulls the element out of the balance with its commands intact.
func controlForeach(t *Template, param, content string, balance Balance) (string, error) {
	node, err := balance.node(param)
	if err != nil {
		return "", err
	}
	if node.Type != ir.ArrayType {
		return "", fmt.Errorf("%w: foreach needs an array under %q, got %s",
			ErrBalanceValue, param, node.Type)
	}
	var out strings.Builder
	for i, item := range node.Values {
		var expanded string
		if item.Type == ir.StringType || (item.Type == ir.NumberType && item.Int64 != nil) {
			expanded, err = t.expandSpecialVar(content, VarItem, item)
			if err != nil {
				return "", err
			}
		} else {
			expanded = strings.ReplaceAll(content, VarItem,
				fmt.Sprintf("%s%cget_%d", param, CommandLetter, i))
		}
		out.WriteString(strings.TrimLeft(expanded, " \t\n"))
	}
	return trimTrailingComma(out.String()), nil
}

// controlFor repeats content count times, binding $i to the iteration
// index.
func controlFor(t *Template, param, content string, balance Balance) (string, error) {
	node, err := balance.node(param)
	if err != nil {
		return "", err
	}
	if node.Type != ir.NumberType || node.Int64 == nil {
		return "", fmt.Errorf("%w: for needs an integer under %q", ErrBalanceValue, param)
	}
	var out strings.Builder
	for i := int64(0); i < *node.Int64; i++ {
		expanded, err := t.expandSpecialVar(content, VarIndex, ir.FromInt(i))
		if err != nil {
			return "", err
		}
		out.WriteString(strings.TrimLeft(expanded, " \t\n"))
	}
	return trimTrailingComma(out.String()), nil
}

// expandSpecialVar substitutes a loop variable. Markers with command
// chains like {% $item!get_0!int %} run the commands against value; bare
// occurrences of the variable anywhere in the content are replaced with
// the plain rendering of value.
func (t *Template) expandSpecialVar(content, name string, value *ir.Node) (string, error) {
	re := regexp.MustCompile(
		`\{%\s*` + regexp.QuoteMeta(name) + `((?:!` + `[a-zA-Z0-9_]+` + `)+)\s*%\}`)
	var firstErr error
	content = re.ReplaceAllStringFunc(content, func(m string) string {
		sub := re.FindStringSubmatch(m)
		commands := strings.Split(strings.TrimPrefix(sub[1], string(CommandLetter)),
			string(CommandLetter))
		node, err := t.commands.ApplyAll(value, commands)
		if err != nil {
			if firstErr == nil {
				firstErr = fmt.Errorf("%s: %w", name, err)
			}
			return m
		}
		return plainString(node)
	})
	if firstErr != nil {
		return "", firstErr
	}
	return strings.ReplaceAll(content, name, plainString(value)), nil
}

// plainString renders a loop value for direct text substitution: strings
// bare, everything else as JSON.
func plainString(node *ir.Node) string {
	if node.Type == ir.StringType {
		return node.String
	}
	if node.Type == ir.NumberType && node.Int64 != nil {
		return strconv.FormatInt(*node.Int64, 10)
	}
	return encode.JSON(node)
}

// trimTrailingComma drops one comma left over by the last loop iteration,
// keeping any whitespace before it.
func trimTrailingComma(s string) string {
	trimmed := strings.TrimRight(s, " \t\n")
	if strings.HasSuffix(trimmed, ",") {
		return strings.TrimSuffix(trimmed, ",")
	}
	return s
}
