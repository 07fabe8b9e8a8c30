package main

import (
	"fmt"
	"strings"

	"github.com/scott-cotton/cli"
)

func planList(cfg *PlanConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Plan.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 0 {
		return fmt.Errorf("%w: plan takes no arguments", cli.ErrUsage)
	}
	_, plan, err := cfg.load()
	if err != nil {
		return err
	}
	deps := plan.Dependencies()
	for i, spec := range plan.Specs {
		fmt.Fprintf(cc.Out, "%d. %s: insert %s %s in %s\n",
			i+1, spec.Name, spec.Placement, anchorLabel(spec.Anchor), spec.Target)
		for _, d := range deps {
			if d.Spec == spec {
				fmt.Fprintf(cc.Out, "   requires %s\n", d.On.Name)
			}
		}
	}
	if cfg.Check {
		if err := plan.Verify(); err != nil {
			return err
		}
		fmt.Fprintln(cc.Out, "plan order is valid")
	}
	return nil
}

func anchorLabel(anchor string) string {
	if anchor == "" {
		return "at end of content"
	}
	line, _, multi := strings.Cut(anchor, "\n")
	if multi {
		line += "…"
	}
	if r := []rune(line); len(r) > 48 {
		line = string(r[:48]) + "…"
	}
	return fmt.Sprintf("anchor %q", line)
}
