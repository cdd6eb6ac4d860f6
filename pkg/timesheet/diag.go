package timesheet

import "fmt"

// DiagKind classifies a recoverable per-row or per-pair anomaly.
type DiagKind int

const (
	// DiagUnknownName marks a row whose first column matched no roster entry.
	DiagUnknownName DiagKind = iota
	// DiagDroppedToken marks a fragment that could not be read as a time or label.
	DiagDroppedToken
	// DiagUnmatchedIn marks an IN time left open at the end of a row.
	DiagUnmatchedIn
	// DiagUnresolvedPair marks a pair with no plausible duration.
	DiagUnresolvedPair
)

// Diagnostic is a typed record of something the pipeline skipped. The core
// never prints; callers render these however they like.
type Diagnostic struct {
	Kind     DiagKind
	Employee string
	Detail   string
}

func (d Diagnostic) String() string {
	switch d.Kind {
	case DiagUnknownName:
		return fmt.Sprintf("unrecognized name %q, row skipped", d.Detail)
	case DiagDroppedToken:
		return fmt.Sprintf("%s: unreadable fragment %q dropped", d.Employee, d.Detail)
	case DiagUnmatchedIn:
		return fmt.Sprintf("%s: unmatched IN time %s ignored", d.Employee, d.Detail)
	case DiagUnresolvedPair:
		return fmt.Sprintf("%s: %s, pair skipped", d.Employee, d.Detail)
	}
	return d.Detail
}
