package enhance

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pulsegrid/sitepatch/patch"
	"github.com/pulsegrid/sitepatch/runner"
)

func writeTree(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	for rel, content := range map[string]string{
		"index.html":     "<body>\n" + pipelineBanner + "\n<section id=\"pipeline\"></section>\n</body>\n",
		"js/app.js":      "function initPipelineSection() {\n}\n",
		"css/styles.css": "body { margin: 0; }\n",
	} {
		path := filepath.Join(dir, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

func TestPlanOrderIsValid(t *testing.T) {
	plan := Plan()
	if err := plan.Verify(); err != nil {
		t.Fatal(err)
	}
	deps := plan.Dependencies()
	if len(deps) != 1 {
		t.Fatalf("got %d dependencies, want 1", len(deps))
	}
	if deps[0].Spec.Name != "markup/recession" || deps[0].On.Name != "markup/insights" {
		t.Errorf("got dependency %s -> %s, want markup/recession -> markup/insights",
			deps[0].Spec.Name, deps[0].On.Name)
	}
}

func TestTargetsCoverPlan(t *testing.T) {
	targets := Targets()
	for _, name := range Plan().Targets() {
		if _, ok := targets[name]; !ok {
			t.Errorf("no path for target %q", name)
		}
	}
}

func TestApplyToFreshTree(t *testing.T) {
	dir := writeTree(t)
	r := runner.New(dir, Targets())
	plan := Plan()

	for _, res := range r.Run(plan) {
		if res.Outcome != patch.Applied {
			t.Fatalf("%s: got %s (err %v), want %s", res.Spec.Name, res.Outcome, res.Err, patch.Applied)
		}
	}

	html, err := os.ReadFile(filepath.Join(dir, "index.html"))
	if err != nil {
		t.Fatal(err)
	}
	// final section order: recession, insights, pipeline
	ri := strings.Index(string(html), recessionBanner)
	ii := strings.Index(string(html), insightsBanner)
	pi := strings.Index(string(html), pipelineBanner)
	if ri < 0 || ii < 0 || pi < 0 {
		t.Fatalf("missing section banners (recession %d, insights %d, pipeline %d)", ri, ii, pi)
	}
	if !(ri < ii && ii < pi) {
		t.Errorf("section order recession=%d insights=%d pipeline=%d, want recession < insights < pipeline", ri, ii, pi)
	}

	js, err := os.ReadFile(filepath.Join(dir, "js", "app.js"))
	if err != nil {
		t.Fatal(err)
	}
	fi := strings.Index(string(js), "function initInsights()")
	ai := strings.Index(string(js), "function initPipelineSection()")
	if fi < 0 || ai < 0 || fi > ai {
		t.Errorf("ui init functions not inserted before the pipeline entry point (insights=%d pipeline=%d)", fi, ai)
	}
	if !strings.Contains(string(js), "function initRecession()") {
		t.Errorf("recession init function missing")
	}

	css, err := os.ReadFile(filepath.Join(dir, "css", "styles.css"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasSuffix(string(css), sectionsCSS) {
		t.Errorf("stylesheet rules not appended")
	}
	if !strings.HasPrefix(string(css), "body { margin: 0; }\n") {
		t.Errorf("stylesheet head not preserved")
	}
}

func TestRerunIsNoOp(t *testing.T) {
	dir := writeTree(t)
	r := runner.New(dir, Targets())

	r.Run(Plan())
	before := map[string]string{}
	for name, rel := range Targets() {
		data, err := os.ReadFile(filepath.Join(dir, filepath.FromSlash(rel)))
		if err != nil {
			t.Fatal(err)
		}
		before[name] = string(data)
	}

	for _, res := range r.Run(Plan()) {
		if res.Outcome != patch.AlreadyApplied {
			t.Errorf("%s: got %s on re-run, want %s", res.Spec.Name, res.Outcome, patch.AlreadyApplied)
		}
	}
	for name, rel := range Targets() {
		data, err := os.ReadFile(filepath.Join(dir, filepath.FromSlash(rel)))
		if err != nil {
			t.Fatal(err)
		}
		if string(data) != before[name] {
			t.Errorf("re-run changed %s", name)
		}
	}
}
