package main

import (
	"fmt"
	"strings"

	"github.com/scott-cotton/cli"

	"github.com/gsconfig/go-gsconfig/encode"
)

func parseCells(cfg *ParseConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Parse.Parse(cc, args)
	if err != nil {
		return err
	}
	in, err := readInput(cc, args)
	if err != nil {
		return err
	}
	conv, err := cfg.converter()
	if err != nil {
		return err
	}
	node, err := conv.Jsonify(strings.TrimSpace(in))
	if err != nil {
		return err
	}
	if err := encode.Encode(node, cc.Out, cfg.encOpts(cc.Out)...); err != nil {
		return err
	}
	_, err = fmt.Fprintln(cc.Out)
	return err
}
