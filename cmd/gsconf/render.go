package main

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/scott-cotton/cli"

	"github.com/gsconfig/go-gsconfig/template"
)

func render(cfg *RenderConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Render.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.TemplatePath == "" || cfg.BalancePath == "" {
		return fmt.Errorf("%w: both -t and -b are required", cli.ErrUsage)
	}
	if len(args) != 0 {
		return fmt.Errorf("%w: render takes no arguments", cli.ErrUsage)
	}
	body, err := os.ReadFile(cfg.TemplatePath)
	if err != nil {
		return err
	}
	balance, err := loadBalance(cfg.BalancePath)
	if err != nil {
		return err
	}
	tpl, err := template.New(string(body),
		template.Strip(!cfg.NoStrip),
		template.Jsonify(cfg.Jsonify))
	if err != nil {
		return err
	}
	out, err := tpl.Render(balance)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cc.Out, out)
	return err
}

// loadBalance reads a balance file. YAML is a JSON superset, so one
// decoder covers both.
func loadBalance(path string) (template.Balance, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	balance := template.Balance{}
	if err := yaml.Unmarshal(data, &balance); err != nil {
		return nil, fmt.Errorf("balance %s: %w", path, err)
	}
	return balance, nil
}
