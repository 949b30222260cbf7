package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, &cli.Opt{
		Name:        "o",
		Description: "output file (default stdout)",
		Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
	})

	return cli.NewCommandAt(&cfg.Main, "gsconf").
		WithSynopsis("gsconf [opts] command [opts]").
		WithDescription("gsconf converts spreadsheet config cells to JSON and renders config templates.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return gsconfMain(cfg, cc, args)
		}).
		WithSubs(
			ParseCommand(cfg),
			RenderCommand(cfg),
			DiffCommand(cfg),
			ExtractCommand(cfg))
}

func ParseCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ParseConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("parse").
		WithAliases("p").
		WithSynopsis("parse [cell text]").
		WithDescription("parse config cell text from args or stdin and print JSON").
		WithRun(func(cc *cli.Context, args []string) error {
			return parseCells(cfg, cc, args)
		})
	cfg.Parse = cmd
	return cmd
}

func RenderCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &RenderConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts = append(opts,
		&cli.Opt{
			Name:        "t",
			Description: "template file",
			Type: cli.NamedFuncOpt(func(_ *cli.Context, a string) (any, error) {
				cfg.TemplatePath = a
				return nil, nil
			}, "(filepath)"),
		},
		&cli.Opt{
			Name:        "b",
			Description: "balance file, JSON or YAML",
			Type: cli.NamedFuncOpt(func(_ *cli.Context, a string) (any, error) {
				cfg.BalancePath = a
				return nil, nil
			}, "(filepath)"),
		})
	cmd := cli.NewCommand("render").
		WithAliases("r").
		WithSynopsis("render -t template -b balance").
		WithDescription("render a config template with balance data").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return render(cfg, cc, args)
		})
	cfg.Render = cmd
	return cmd
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("diff").
		WithAliases("d").
		WithSynopsis("diff <file1> <file2>").
		WithDescription("parse two config cells and diff their JSON forms").
		WithRun(func(cc *cli.Context, args []string) error {
			return diffCells(cfg, cc, args)
		})
	cfg.Diff = cmd
	return cmd
}

func ExtractCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ExtractConfig{MainConfig: mainCfg}
	opts := []*cli.Opt{
		{
			Name:        "page",
			Description: "extract only the named page",
			Type: cli.NamedFuncOpt(func(_ *cli.Context, a string) (any, error) {
				cfg.Page = a
				return nil, nil
			}, "(title)"),
		},
	}
	cmd := cli.NewCommand("extract").
		WithAliases("x").
		WithSynopsis("extract [-page title] <workbook.xlsx>").
		WithDescription("extract config data from an xlsx workbook").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return extract(cfg, cc, args)
		})
	cfg.Extract = cmd
	return cmd
}
