package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/gsconfig/go-gsconfig/encode"
	"github.com/gsconfig/go-gsconfig/ir"
	"github.com/gsconfig/go-gsconfig/sheet"
)

func extract(cfg *ExtractConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Extract.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 1 {
		return fmt.Errorf("%w: extract takes one workbook", cli.ErrUsage)
	}
	conv, err := cfg.converter()
	if err != nil {
		return err
	}
	file, err := sheet.OpenXLSX(args[0])
	if err != nil {
		return err
	}
	defer file.Close()

	pages, err := sheet.Pages(file, sheet.WithConverter(conv))
	if err != nil {
		return err
	}
	out := ir.Object()
	for _, page := range pages {
		if cfg.Page != "" && page.Title() != cfg.Page && page.Name() != cfg.Page {
			continue
		}
		node, err := page.Extract()
		if err != nil {
			return err
		}
		out.Set(page.Name(), node)
	}
	if cfg.Page != "" && len(out.Fields) == 0 {
		return fmt.Errorf("page %q not found in %s", cfg.Page, args[0])
	}
	if err := encode.Encode(out, cc.Out, cfg.encOpts(cc.Out)...); err != nil {
		return err
	}
	_, err = fmt.Fprintln(cc.Out)
	return err
}
