package runner

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/pulsegrid/sitepatch/patch"
)

// Reporter renders one human-readable line per result.  Outcomes are
// distinguished visually; color is the caller's decision (flag or tty
// detection), not the reporter's.
type Reporter struct {
	w      io.Writer
	colors map[patch.Outcome]func(string, ...any) string
}

func NewReporter(w io.Writer, colorOn bool) *Reporter {
	rp := &Reporter{w: w}
	if colorOn {
		rp.colors = map[patch.Outcome]func(string, ...any) string{
			patch.Applied:        color.GreenString,
			patch.AlreadyApplied: color.CyanString,
			patch.AnchorMissing:  color.YellowString,
			patch.FailedIO:       color.RedString,
		}
	}
	return rp
}

var glyphs = map[patch.Outcome]string{
	patch.Applied:        "✓",
	patch.AlreadyApplied: "=",
	patch.AnchorMissing:  "✗",
	patch.FailedIO:       "!",
}

// Report writes the status line for one result.  path is the resolved target
// path, informational only.
func (rp *Reporter) Report(res patch.Result, path string) {
	line := fmt.Sprintf("%s %-15s %s (%s)", glyphs[res.Outcome], res.Outcome, res.Spec.Name, path)
	if res.Err != nil {
		line += ": " + res.Err.Error()
	}
	if f := rp.colors[res.Outcome]; f != nil {
		line = f("%s", line)
	}
	fmt.Fprintln(rp.w, line)
}

// ReportAll writes the status lines for a whole run, resolving target paths
// through the runner.
func (rp *Reporter) ReportAll(r *Runner, results []patch.Result) {
	for _, res := range results {
		path, err := r.Path(res.Spec.Target)
		if err != nil {
			path = res.Spec.Target
		}
		rp.Report(res, path)
	}
}
