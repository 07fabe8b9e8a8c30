package patch

import (
	"os"
	"path/filepath"
	"testing"
)

const planYAML = `targets:
  markup: index.html
  style: css/styles.css
env:
  experiments: false
patches:
  - name: markup/hero
    target: markup
    anchor: "<!-- MAIN -->"
    placement: before
    fragment: |
      <section id="hero"></section>
    marker: id="hero"
  - name: style/hero
    target: style
    placement: after
    fragment: |
      .hero { display: grid; }
    marker: .hero
  - name: markup/labs
    target: markup
    anchor: "<!-- MAIN -->"
    placement: after
    fragment: |
      <section id="labs"></section>
    if: experiments
`

func writePlan(t *testing.T, text string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "plan.yaml")
	if err := os.WriteFile(path, []byte(text), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadPlanFile(t *testing.T) {
	pf, err := LoadPlanFile(writePlan(t, planYAML), nil)
	if err != nil {
		t.Fatal(err)
	}
	if got := pf.Targets["style"]; got != "css/styles.css" {
		t.Errorf("got style target %q, want css/styles.css", got)
	}
	if len(pf.Plan.Specs) != 2 {
		t.Fatalf("got %d specs, want 2 (markup/labs disabled by env)", len(pf.Plan.Specs))
	}
	hero := pf.Plan.Specs[0]
	if hero.Name != "markup/hero" || hero.Placement != Before || hero.Marker != `id="hero"` {
		t.Errorf("unexpected first spec %+v", hero)
	}
	style := pf.Plan.Specs[1]
	if style.Anchor != "" || style.Placement != After {
		t.Errorf("unexpected style spec %+v", style)
	}
}

func TestLoadPlanFileEnvOverride(t *testing.T) {
	pf, err := LoadPlanFile(writePlan(t, planYAML), map[string]any{"experiments": true})
	if err != nil {
		t.Fatal(err)
	}
	if len(pf.Plan.Specs) != 3 {
		t.Fatalf("got %d specs, want 3 with experiments enabled", len(pf.Plan.Specs))
	}
	if pf.Plan.Specs[2].Name != "markup/labs" {
		t.Errorf("got third spec %q, want markup/labs", pf.Plan.Specs[2].Name)
	}
}

func TestLoadPlanFileErrors(t *testing.T) {
	for _, tst := range []struct {
		name string
		text string
	}{
		{
			name: "unknown target",
			text: "targets:\n  markup: index.html\npatches:\n  - name: a\n    target: script\n    fragment: x\n",
		},
		{
			name: "missing target",
			text: "targets:\n  markup: index.html\npatches:\n  - name: a\n    fragment: x\n",
		},
		{
			name: "bad placement",
			text: "targets:\n  markup: index.html\npatches:\n  - name: a\n    target: markup\n    placement: around\n    fragment: x\n",
		},
		{
			name: "bad condition",
			text: "targets:\n  markup: index.html\npatches:\n  - name: a\n    target: markup\n    fragment: x\n    if: (((\n",
		},
	} {
		if _, err := LoadPlanFile(writePlan(t, tst.text), nil); err == nil {
			t.Errorf("%s: no error", tst.name)
		}
	}
}
