package main

import (
	"io"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"

	"github.com/gsconfig/go-gsconfig/encode"
	"github.com/gsconfig/go-gsconfig/parse"
)

type MainConfig struct {
	Color   bool `cli:"name=color desc='encode with color'"`
	WireOut bool `cli:"name=wire desc='output in compact format'"`

	V2    bool `cli:"name=v2 desc='use the v2 parser generation'"`
	NoNum bool `cli:"name=nonum desc='keep numeric cells as strings'"`
	Raw   bool `cli:"name=raw desc='do not parse input cells'"`
	Wrap  bool `cli:"name=wrap desc='keep a lone top-level object wrapped'"`

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) converter() (*parse.Converter, error) {
	opts := []parse.Option{
		parse.ToNumber(!cfg.NoNum),
		parse.RawInput(cfg.Raw),
		parse.AlwaysUnwrap(!cfg.Wrap),
	}
	if cfg.V2 {
		opts = append(opts, parse.V2())
	}
	return parse.New(opts...)
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	res := []encode.EncodeOption{
		encode.Wire(cfg.WireOut),
	}
	if cfg.Color {
		res = append(res, encode.EncodeColors(encode.NewColors()))
		return res
	}
	colorsSet := false
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		colorsSet = opt.Value != nil
		break
	}
	if colorsSet {
		return res
	}
	f, ok := w.(*os.File)
	if !ok {
		return res
	}
	if isatty.IsTerminal(f.Fd()) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

type ParseConfig struct {
	*MainConfig

	Parse *cli.Command
}

type RenderConfig struct {
	*MainConfig

	NoStrip bool `cli:"name=nostrip desc='insert substituted strings quoted'"`
	Jsonify bool `cli:"name=jsonify desc='require the rendered output to be valid JSON'"`

	TemplatePath string
	BalancePath  string

	Render *cli.Command
}

type DiffConfig struct {
	*MainConfig

	Diff *cli.Command
}

type ExtractConfig struct {
	*MainConfig

	Page string

	Extract *cli.Command
}
