package patch

// Outcome classifies what one Apply invocation did.
type Outcome int

const (
	// Applied means the fragment was spliced in.
	Applied Outcome = iota
	// AlreadyApplied means the idempotency marker was found, so the content
	// was left alone.  Expected steady state on re-runs, not an error.
	AlreadyApplied
	// AnchorMissing means the anchor was not found: the target has diverged
	// from what the spec expects.  Recoverable, reported, never fatal.
	AnchorMissing
	// FailedIO means the target could not be read or written.  Assigned by
	// the runner only; Apply itself does no I/O.
	FailedIO
)

func (o Outcome) String() string {
	switch o {
	case Applied:
		return "applied"
	case AlreadyApplied:
		return "already applied"
	case AnchorMissing:
		return "anchor missing"
	case FailedIO:
		return "io error"
	}
	return "unknown"
}

// Result records the outcome of running one Spec.  Err is non-nil only for
// FailedIO.
type Result struct {
	Spec    *Spec
	Outcome Outcome
	Err     error
}
