package main

import (
	"fmt"
	"os"

	"github.com/scott-cotton/cli"
	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/gsconfig/go-gsconfig/encode"
)

func diffCells(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff takes exactly two files", cli.ErrUsage)
	}
	a, err := parseFile(cfg, args[0])
	if err != nil {
		return err
	}
	b, err := parseFile(cfg, args[1])
	if err != nil {
		return err
	}
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(a, b, false)
	_, err = fmt.Fprintln(cc.Out, dmp.DiffPrettyText(diffs))
	return err
}

// parseFile converts one file of cell text to indented JSON so the diff
// runs over stable, line-oriented output.
func parseFile(cfg *DiffConfig, path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	conv, err := cfg.converter()
	if err != nil {
		return "", err
	}
	node, err := conv.Jsonify(string(data))
	if err != nil {
		return "", fmt.Errorf("%s: %w", path, err)
	}
	return encode.MustString(node) + "\n", nil
}
