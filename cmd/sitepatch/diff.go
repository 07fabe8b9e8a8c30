package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/pulsegrid/sitepatch/patch"
	"github.com/pulsegrid/sitepatch/textdiff"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 0 {
		return fmt.Errorf("%w: diff takes no arguments", cli.ErrUsage)
	}
	targets, plan, err := cfg.load()
	if err != nil {
		return err
	}
	r := cfg.runner(targets)
	colorOn := cfg.colorOn(cc.Out)
	for _, target := range plan.Targets() {
		old, err := r.Load(target)
		if err != nil {
			return err
		}
		// same cumulative simulation as a dry run, per target
		cur := old
		for _, spec := range plan.Specs {
			if spec.Target != target {
				continue
			}
			cur, _ = patch.Apply(cur, spec)
		}
		path, _ := r.Path(target)
		fmt.Fprintf(cc.Out, "--- %s (%s)\n", target, path)
		if cur == old {
			fmt.Fprintln(cc.Out, "  (no changes)")
			continue
		}
		textdiff.Format(cc.Out, textdiff.Chunks(old, cur), colorOn)
	}
	return nil
}
