// Package patch implements anchored, idempotent text insertion: a Spec binds a
// literal anchor in a target to a literal fragment, and Apply splices the
// fragment next to the first occurrence of the anchor.  Targets are opaque
// text; there is no document parsing of any kind.
package patch

// Placement says on which side of the anchor a fragment is spliced.
type Placement int

const (
	Before Placement = iota
	After
)

func (p Placement) String() string {
	switch p {
	case Before:
		return "before"
	case After:
		return "after"
	}
	return "unknown"
}

// Spec is one desired insertion.  Immutable once defined.
//
// Anchor is an exact substring expected to occur in the target content; an
// empty Anchor addresses the end of the content, turning the operation into an
// append.  Marker is the idempotency guard: its presence anywhere in the
// content means the spec was already applied.  An empty Marker defaults to the
// whole Fragment.
type Spec struct {
	Name      string
	Target    string
	Anchor    string
	Fragment  string
	Placement Placement
	Marker    string
}

// marker returns the effective idempotency guard.
func (s *Spec) marker() string {
	if s.Marker != "" {
		return s.Marker
	}
	return s.Fragment
}
