package patch

import (
	"fmt"
	"strings"
)

// Plan is an ordered list of specs.  Order is load-bearing: a spec whose
// anchor is text inserted by an earlier spec's fragment must come after it,
// because the runner re-reads the target before every operation.
type Plan struct {
	Specs []*Spec
}

// Dep says that Spec's anchor occurs inside On's fragment, so On must run
// before Spec for the anchor to exist on a fresh target.
type Dep struct {
	Spec, On *Spec
}

// Dependencies returns the anchor-dependency edges between specs that share a
// target.  Specs with an end-of-content anchor depend on nothing.
func (p *Plan) Dependencies() []Dep {
	var deps []Dep
	for _, s := range p.Specs {
		if s.Anchor == "" {
			continue
		}
		for _, on := range p.Specs {
			if on == s || on.Target != s.Target {
				continue
			}
			if strings.Contains(on.Fragment, s.Anchor) {
				deps = append(deps, Dep{Spec: s, On: on})
			}
		}
	}
	return deps
}

// Verify checks that the declared order is a valid topological order of the
// anchor-dependency graph.  Running an out-of-order plan is not a crash — the
// dependent operation just reports AnchorMissing — but Verify surfaces the
// mistake ahead of time.
func (p *Plan) Verify() error {
	pos := make(map[*Spec]int, len(p.Specs))
	for i, s := range p.Specs {
		pos[s] = i
	}
	for _, d := range p.Dependencies() {
		if pos[d.Spec] < pos[d.On] {
			return fmt.Errorf("patch %q runs before %q but its anchor is inserted by %q",
				d.Spec.Name, d.On.Name, d.On.Name)
		}
	}
	return nil
}

// Targets returns the logical target names referenced by the plan, in first
// appearance order.
func (p *Plan) Targets() []string {
	seen := map[string]bool{}
	var names []string
	for _, s := range p.Specs {
		if !seen[s.Target] {
			seen[s.Target] = true
			names = append(names, s.Target)
		}
	}
	return names
}
