package parse

import (
	"fmt"
	"strings"

	"github.com/gsconfig/go-gsconfig/keycmd"
	"github.com/gsconfig/go-gsconfig/scan"
)

// Generation selects which wrapping policy the converter applies to dict
// values.
type Generation int

const (
	// GenV1 wraps every object stored under a dict key in a one-element
	// array.
	GenV1 Generation = iota
	// GenV2 stores dict values as-is unless the key carries commands.
	GenV2
)

var generationNames = map[Generation]string{
	GenV1: "v1",
	GenV2: "v2",
}

func (g Generation) String() string {
	if n, ok := generationNames[g]; ok {
		return n
	}
	return fmt.Sprintf("Generation(%d)", int(g))
}

// ParseGeneration maps "v1" or "v2" to a Generation.
func ParseGeneration(s string) (Generation, error) {
	for g, n := range generationNames {
		if n == s {
			return g, nil
		}
	}
	return 0, fmt.Errorf("%w: %q (available: %s)", ErrGeneration, s,
		strings.Join(generationStrings(), ", "))
}

func generationStrings() []string {
	return []string{GenV1.String(), GenV2.String()}
}

// Params carries the delimiter characters and policies of a Converter.
// A Params value is read-only once the Converter is built and safe to
// share across goroutines.
type Params struct {
	// BlockBracket delimits sub-blocks, "{}" by default.
	BlockBracket string
	// ListBracket delimits native-syntax lists, "[]" by default. It is
	// depth-tracked like BlockBracket but never builds blocks itself.
	ListBracket string

	// BaseSep separates elements within a block.
	BaseSep rune
	// DictSep separates a dict key from its value.
	DictSep rune
	// BlockSep separates top-level alternative blocks.
	BlockSep rune
	// FuncSep separates a key from its command chain.
	FuncSep rune
	// RawQuote marks spans that are kept verbatim.
	RawQuote rune

	// ToNumber enables scalar coercion through the literal evaluator.
	ToNumber bool
	// Generation selects the dict value wrapping policy.
	Generation Generation
	// AlwaysUnwrap unwraps a lone top-level object segment. When false a
	// lone object at the top level stays wrapped in a one-element array.
	AlwaysUnwrap bool
	// Raw short-circuits conversion, returning input strings unparsed.
	Raw bool

	// Commands resolves key commands. Defaults to keycmd.Default().
	Commands *keycmd.Registry
}

func defaultParams() Params {
	return Params{
		BlockBracket: "{}",
		ListBracket:  "[]",
		BaseSep:      ',',
		DictSep:      '=',
		BlockSep:     '|',
		FuncSep:      '!',
		RawQuote:     '"',
		ToNumber:     true,
		Generation:   GenV1,
		AlwaysUnwrap: true,
		Commands:     keycmd.Default(),
	}
}

func (p *Params) validate() error {
	if len(p.BlockBracket) != 2 || len(p.ListBracket) != 2 {
		return fmt.Errorf("%w: brackets must be open/close pairs", ErrConfig)
	}
	seen := map[byte]bool{}
	for _, b := range []byte(p.BlockBracket + p.ListBracket) {
		if seen[b] {
			return fmt.Errorf("%w: bracket characters must be distinct, got %q and %q",
				ErrConfig, p.BlockBracket, p.ListBracket)
		}
		seen[b] = true
	}
	return nil
}

func (p *Params) scanConfig() scan.Config {
	return scan.Config{
		BlockBracket: p.BlockBracket,
		ListBracket:  p.ListBracket,
		RawQuote:     p.RawQuote,
	}
}

type Option func(*Params)

// V1 selects the v1 generation.
func V1() Option {
	return func(p *Params) { p.Generation = GenV1 }
}

// V2 selects the v2 generation.
func V2() Option {
	return func(p *Params) { p.Generation = GenV2 }
}

func WithGeneration(g Generation) Option {
	return func(p *Params) { p.Generation = g }
}

// ToNumber controls scalar coercion; on by default.
func ToNumber(v bool) Option {
	return func(p *Params) { p.ToNumber = v }
}

// RawInput makes Jsonify return its input as a plain string node.
func RawInput(v bool) Option {
	return func(p *Params) { p.Raw = v }
}

// AlwaysUnwrap controls unwrapping of a lone top-level object; on by
// default.
func AlwaysUnwrap(v bool) Option {
	return func(p *Params) { p.AlwaysUnwrap = v }
}

func BlockBracket(pair string) Option {
	return func(p *Params) { p.BlockBracket = pair }
}

func ListBracket(pair string) Option {
	return func(p *Params) { p.ListBracket = pair }
}

func BaseSep(r rune) Option {
	return func(p *Params) { p.BaseSep = r }
}

func DictSep(r rune) Option {
	return func(p *Params) { p.DictSep = r }
}

func BlockSep(r rune) Option {
	return func(p *Params) { p.BlockSep = r }
}

func FuncSep(r rune) Option {
	return func(p *Params) { p.FuncSep = r }
}

func RawQuote(r rune) Option {
	return func(p *Params) { p.RawQuote = r }
}

// WithCommands replaces the key command registry.
func WithCommands(reg *keycmd.Registry) Option {
	return func(p *Params) { p.Commands = reg }
}
