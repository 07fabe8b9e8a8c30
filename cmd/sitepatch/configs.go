package main

import (
	"io"
	"log/slog"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"

	"github.com/pulsegrid/sitepatch/enhance"
	"github.com/pulsegrid/sitepatch/patch"
	"github.com/pulsegrid/sitepatch/runner"
)

type MainConfig struct {
	Color bool   `cli:"name=color desc='colored output (default: on for terminals)'"`
	V     bool   `cli:"name=v desc='verbose runner logging'"`
	Dir   string `cli:"name=C aliases=dir desc='base directory of the target tree'"`
	File  string `cli:"name=f aliases=plan-file desc='YAML plan file (default: built-in patch set)'"`

	// Env patches the plan file env, set via -e key=val.  It has no effect
	// on the built-in patch set, which carries no conditions.
	Env map[string]any

	Main *cli.Command
}

// load resolves the target table and plan, either the built-in patch set or a
// plan file.
func (cfg *MainConfig) load() (map[string]string, *patch.Plan, error) {
	if cfg.File == "" {
		return enhance.Targets(), enhance.Plan(), nil
	}
	pf, err := patch.LoadPlanFile(cfg.File, cfg.Env)
	if err != nil {
		return nil, nil, err
	}
	return pf.Targets, pf.Plan, nil
}

func (cfg *MainConfig) runner(targets map[string]string) *runner.Runner {
	log := theLog
	if !cfg.V {
		log = slog.New(slog.DiscardHandler)
	}
	return runner.New(cfg.Dir, targets, runner.WithLogger(log))
}

// colorOn decides colored output: the -color flag when given, otherwise tty
// detection on the output.
func (cfg *MainConfig) colorOn(w io.Writer) bool {
	if cfg.Color {
		return true
	}
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		if opt.Value != nil {
			// explicitly -color=false
			return false
		}
		break
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

type ApplyConfig struct {
	*MainConfig
	Apply *cli.Command
}

type StatusConfig struct {
	*MainConfig
	Status *cli.Command
}

type DiffConfig struct {
	*MainConfig
	Diff *cli.Command
}

type PlanConfig struct {
	*MainConfig
	Check bool `cli:"name=check desc='fail when the declared order violates anchor dependencies'"`

	Plan *cli.Command
}
