package patch

import "strings"

// Apply splices spec.Fragment into content next to the first occurrence of
// spec.Anchor.  It is a pure function: reading and writing the target is the
// runner's job.
//
// The idempotency guard wins over everything else: if the marker is present
// anywhere in content, the content comes back unchanged with AlreadyApplied.
// Duplicate anchors are not disambiguated; the operation binds to the first
// occurrence, which is why plan order matters (see Plan).
func Apply(content string, spec *Spec) (string, Result) {
	if strings.Contains(content, spec.marker()) {
		return content, Result{Spec: spec, Outcome: AlreadyApplied}
	}
	if spec.Anchor == "" {
		// end-of-content anchor: append
		return content + spec.Fragment, Result{Spec: spec, Outcome: Applied}
	}
	i := strings.Index(content, spec.Anchor)
	if i < 0 {
		return content, Result{Spec: spec, Outcome: AnchorMissing}
	}
	if spec.Placement == After {
		i += len(spec.Anchor)
	}
	var b strings.Builder
	b.Grow(len(content) + len(spec.Fragment))
	b.WriteString(content[:i])
	b.WriteString(spec.Fragment)
	b.WriteString(content[i:])
	return b.String(), Result{Spec: spec, Outcome: Applied}
}
