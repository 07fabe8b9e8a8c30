package patch

import (
	"fmt"
	"os"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/goccy/go-yaml"
)

// PlanFile is a plan loaded from a YAML document, carrying its own
// logical-target table so the runner has no implicit path knowledge.
type PlanFile struct {
	Targets map[string]string
	Plan    *Plan
}

type planDoc struct {
	Targets map[string]string `yaml:"targets"`
	Env     map[string]any    `yaml:"env"`
	Patches []specDoc         `yaml:"patches"`
}

type specDoc struct {
	Name      string `yaml:"name"`
	Target    string `yaml:"target"`
	Anchor    string `yaml:"anchor"`
	Fragment  string `yaml:"fragment"`
	Placement string `yaml:"placement"`
	Marker    string `yaml:"marker"`
	If        string `yaml:"if"`
}

// LoadPlanFile reads a YAML plan.  Specs with an `if:` expression are kept
// only when the expression evaluates truthily against the file's env patched
// by overrides.  The loaded plan is not Verify-ed here; callers decide whether
// order mistakes are fatal.
func LoadPlanFile(path string, overrides map[string]any) (*PlanFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading plan %q: %w", path, err)
	}
	doc := planDoc{}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("error decoding plan %q: %w", path, err)
	}
	env := doc.Env
	if env == nil {
		env = map[string]any{}
	}
	for k, v := range overrides {
		env[k] = v
	}
	pf := &PlanFile{Targets: doc.Targets, Plan: &Plan{}}
	for i := range doc.Patches {
		sd := &doc.Patches[i]
		if sd.Target == "" {
			return nil, fmt.Errorf("%s: patch %q has no target", path, sd.Name)
		}
		if _, ok := doc.Targets[sd.Target]; !ok {
			return nil, fmt.Errorf("%s: patch %q references unknown target %q", path, sd.Name, sd.Target)
		}
		if sd.If != "" {
			on, err := evalCond(sd.If, env)
			if err != nil {
				return nil, fmt.Errorf("%s: patch %q: error evaluating %q: %w", path, sd.Name, sd.If, err)
			}
			if !on {
				continue
			}
		}
		placement := Before
		switch sd.Placement {
		case "", "before":
		case "after":
			placement = After
		default:
			return nil, fmt.Errorf("%s: patch %q: placement %q is not before/after", path, sd.Name, sd.Placement)
		}
		pf.Plan.Specs = append(pf.Plan.Specs, &Spec{
			Name:      sd.Name,
			Target:    sd.Target,
			Anchor:    sd.Anchor,
			Fragment:  sd.Fragment,
			Placement: placement,
			Marker:    sd.Marker,
		})
	}
	return pf, nil
}

func evalCond(src string, env map[string]any) (bool, error) {
	program, err := expr.Compile(src)
	if err != nil {
		return false, err
	}
	v, err := vm.Run(program, env)
	if err != nil {
		return false, err
	}
	b, ok := v.(bool)
	if !ok {
		return false, fmt.Errorf("condition result %v is not a bool", v)
	}
	return b, nil
}
