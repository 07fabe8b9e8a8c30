package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/pulsegrid/sitepatch/runner"
)

func status(cfg *StatusConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Status.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 0 {
		return fmt.Errorf("%w: status takes no arguments", cli.ErrUsage)
	}
	targets, plan, err := cfg.load()
	if err != nil {
		return err
	}
	r := cfg.runner(targets)
	rp := runner.NewReporter(cc.Out, cfg.colorOn(cc.Out))
	rp.ReportAll(r, r.Check(plan))
	return nil
}
