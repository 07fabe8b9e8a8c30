package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{Dir: ".", Env: map[string]any{}}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts = append(opts, &cli.Opt{
		Name:        "e",
		Description: "patch the plan env",
		Type:        cli.NamedFuncOpt(cli.FuncOpt(envOptTypeFunc(cfg.Env)), "(path=val)"),
	})

	return cli.NewCommandAt(&cfg.Main, "sitepatch").
		WithSynopsis("sitepatch [opts] command [opts]").
		WithDescription("sitepatch injects the PulseGrid enhancement fragments into an existing tree at literal anchor points.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return sitepatchMain(cfg, cc, args)
		}).
		WithSubs(
			ApplyCommand(cfg),
			StatusCommand(cfg),
			DiffCommand(cfg),
			PlanCommand(cfg))
}

func sitepatchMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return cli.ErrNoCommandProvided
	}
	sub := cfg.Main.FindSub(cc, args[0])
	if sub == nil {
		return fmt.Errorf("%w: %q not found", cli.ErrNoSuchCommand, args[0])
	}
	err = sub.Run(cc, args[1:])
	if errors.Is(err, cli.ErrUsage) {
		sub.Usage(cc, err)
		os.Exit(sub.Exit(cc, err))
	}
	return err
}

func ApplyCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ApplyConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Apply, "apply").
		WithAliases("a").
		WithSynopsis("apply").
		WithDescription("apply the patch plan to the target files").
		WithRun(func(cc *cli.Context, args []string) error {
			return apply(cfg, cc, args)
		})
}

func StatusCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &StatusConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Status, "status").
		WithAliases("s", "st").
		WithSynopsis("status").
		WithDescription("report what apply would do, without writing").
		WithRun(func(cc *cli.Context, args []string) error {
			return status(cfg, cc, args)
		})
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Diff, "diff").
		WithAliases("d").
		WithSynopsis("diff").
		WithDescription("preview the content changes apply would make").
		WithRun(func(cc *cli.Context, args []string) error {
			return diff(cfg, cc, args)
		})
}

func PlanCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &PlanConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Plan, "plan").
		WithAliases("p").
		WithSynopsis("plan [-check]").
		WithDescription("print the operations in order with their anchor dependencies").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return planList(cfg, cc, args)
		})
}

func envOptTypeFunc(env map[string]any) func(cc *cli.Context, a string) (any, error) {
	return func(_ *cli.Context, a string) (any, error) {
		if err := envFunc(env, a); err != nil {
			return nil, err
		}
		return 0, nil
	}
}

func envFunc(env map[string]any, a string) error {
	key, val, ok := strings.Cut(a, "=")
	if !ok {
		return fmt.Errorf("%w: argument %q expected key=val", cli.ErrUsage, a)
	}
	var v any
	if err := yaml.Unmarshal([]byte(val), &v); err != nil {
		return err
	}
	parts := strings.Split(key, ".")
	n := len(parts)
	tmpEnv := env
	for i, part := range parts {
		if i == n-1 {
			tmpEnv[part] = v
			break
		}
		next := tmpEnv[part]
		if next == nil {
			next = map[string]any{}
			tmpEnv[part] = next
		}
		nextEnv, ok := next.(map[string]any)
		if !ok {
			return fmt.Errorf("cannot access %s, list or scalar", strings.Join(parts[:i+1], "."))
		}
		tmpEnv = nextEnv
	}
	return nil
}
