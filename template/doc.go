// Package template renders JSON config text from a template and a balance,
// a map of key/value data usually converted out of spreadsheet cells.
//
// A template is plain text with three kinds of markers:
//
//	{# dropped before anything else #}
//	{% if has_bonus %}"bonus": {% bonus %},{% endif %}
//	{% price!float %}
//
// Substitution markers name a balance key with an optional chain of
// commands from the keycmd package: {% score!get_0!int %}. Control blocks
// run before substitution; if keeps or drops its content by the truth of a
// balance value, comment always drops, foreach repeats content for every
// element of an array value binding $item, and for repeats a counted loop
// binding $i. Control blocks nest.
//
// In strip mode, the default, substituted strings are inserted bare and
// the template itself must carry the surrounding quotes. With strip off
// every string value is inserted quoted.
//
// # Usage
//
//	tpl, err := template.New(body)
//	out, err := tpl.Render(template.Balance{"price": 10, "name": "sword"})
//
// RenderValue renders and decodes the result, which must then be valid
// JSON. Render with the Jsonify option validates the output instead of
// returning it unchecked.
package template
