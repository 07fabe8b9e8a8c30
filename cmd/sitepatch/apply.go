package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/pulsegrid/sitepatch/runner"
)

func apply(cfg *ApplyConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Apply.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 0 {
		return fmt.Errorf("%w: apply takes no arguments", cli.ErrUsage)
	}
	targets, plan, err := cfg.load()
	if err != nil {
		return err
	}
	r := cfg.runner(targets)
	results := r.Run(plan)
	rp := runner.NewReporter(cc.Out, cfg.colorOn(cc.Out))
	rp.ReportAll(r, results)
	fmt.Fprint(cc.Out, nextSteps)
	return nil
}

// Manual follow-up steps, informational only.  Printed after every apply run;
// partial failure is visible in the per-operation lines above, not here.
const nextSteps = `
Integration complete.

Next steps:
  1. Deploy to Netlify: npx netlify-cli deploy --prod --dir .
  2. Test backend: cd server && npm install && npm start
  3. Commit changes: git add -A && git commit -m "feat: add AI insights & recession prediction" && git push
`
