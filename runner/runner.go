// Package runner executes patch plans against files on disk.  Each operation
// is fully isolated: the target is re-read from disk, at most one spec is
// applied, and the file is written back only when the content changed.  That
// makes plan order observable across operations sharing a target, which is
// exactly what anchored insertion needs.
package runner

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/pulsegrid/sitepatch/patch"
)

// Runner binds logical target names to file-system paths.  The mapping is
// explicit configuration so the runner can be pointed at fixtures as easily as
// at a real tree.
type Runner struct {
	dir     string
	targets map[string]string
	log     *slog.Logger
}

type Option func(*Runner)

func WithLogger(l *slog.Logger) Option {
	return func(r *Runner) { r.log = l }
}

// New returns a runner resolving targets relative to dir.
func New(dir string, targets map[string]string, opts ...Option) *Runner {
	r := &Runner{
		dir:     dir,
		targets: targets,
		log:     slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Path resolves a logical target name.
func (r *Runner) Path(target string) (string, error) {
	rel, ok := r.targets[target]
	if !ok {
		return "", fmt.Errorf("no path configured for target %q", target)
	}
	return filepath.Join(r.dir, rel), nil
}

// Run applies the plan in order, one result per spec.  An I/O failure is
// fatal for that target's remaining operations — without the content no
// further progress is possible there — but other targets proceed.  Anchor
// misses and already-applied markers never stop the run.
func (r *Runner) Run(plan *patch.Plan) []patch.Result {
	results := make([]patch.Result, 0, len(plan.Specs))
	dead := map[string]error{}
	for _, spec := range plan.Specs {
		if err := dead[spec.Target]; err != nil {
			results = append(results, patch.Result{Spec: spec, Outcome: patch.FailedIO, Err: err})
			continue
		}
		res := r.RunOne(spec)
		if res.Outcome == patch.FailedIO {
			dead[spec.Target] = res.Err
		}
		results = append(results, res)
	}
	return results
}

// RunOne loads the spec's target, applies the spec, and persists the result
// if and only if the content changed.
func (r *Runner) RunOne(spec *patch.Spec) patch.Result {
	path, err := r.Path(spec.Target)
	if err != nil {
		return patch.Result{Spec: spec, Outcome: patch.FailedIO, Err: err}
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return patch.Result{Spec: spec, Outcome: patch.FailedIO, Err: fmt.Errorf("error reading %q: %w", path, err)}
	}
	in := string(data)
	out, res := patch.Apply(in, spec)
	r.log.Debug("applied spec", "spec", spec.Name, "target", path, "outcome", res.Outcome.String())
	if res.Outcome != patch.Applied || out == in {
		return res
	}
	if err := os.WriteFile(path, []byte(out), 0644); err != nil {
		return patch.Result{Spec: spec, Outcome: patch.FailedIO, Err: fmt.Errorf("error writing %q: %w", path, err)}
	}
	r.log.Debug("wrote target", "target", path, "bytes", len(out))
	return res
}

// Check reports what Run would do without writing anything.  Disk state never
// advances during a dry run, so Check carries each target's patched content
// forward in memory to predict the outcome of dependent operations.
func (r *Runner) Check(plan *patch.Plan) []patch.Result {
	results := make([]patch.Result, 0, len(plan.Specs))
	contents := map[string]string{}
	dead := map[string]error{}
	for _, spec := range plan.Specs {
		if err := dead[spec.Target]; err != nil {
			results = append(results, patch.Result{Spec: spec, Outcome: patch.FailedIO, Err: err})
			continue
		}
		in, ok := contents[spec.Target]
		if !ok {
			path, err := r.Path(spec.Target)
			if err == nil {
				var data []byte
				data, err = os.ReadFile(path)
				in = string(data)
			}
			if err != nil {
				dead[spec.Target] = err
				results = append(results, patch.Result{Spec: spec, Outcome: patch.FailedIO, Err: err})
				continue
			}
			contents[spec.Target] = in
		}
		out, res := patch.Apply(in, spec)
		contents[spec.Target] = out
		results = append(results, res)
	}
	return results
}

// Load returns the current content of a logical target.
func (r *Runner) Load(target string) (string, error) {
	path, err := r.Path(target)
	if err != nil {
		return "", err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("error reading %q: %w", path, err)
	}
	return string(data), nil
}
