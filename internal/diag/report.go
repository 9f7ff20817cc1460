package diag

// Verdict classifies a whole check run.
type Verdict uint8

const (
	// VerdictPerfect means the run reported no problems at all.
	VerdictPerfect Verdict = iota
	// VerdictWarning means warnings were reported but no errors.
	VerdictWarning
	// VerdictError means at least one error was reported. Warnings seen
	// in the same run stay in the problem list.
	VerdictError
)

func (v Verdict) String() string {
	switch v {
	case VerdictPerfect:
		return "perfect"
	case VerdictWarning:
		return "warning"
	case VerdictError:
		return "error"
	}
	return "unknown"
}

// Report is the structured outcome of one check run: the overall verdict
// plus every problem collected, in encounter order.
type Report struct {
	Verdict  Verdict
	Problems []Problem
}

// Len returns the number of collected problems.
func (r Report) Len() int {
	return len(r.Problems)
}

// HasErrors reports whether the run contained at least one error.
func (r Report) HasErrors() bool {
	return r.Verdict == VerdictError
}

// HasWarnings reports whether the run contained warnings but no errors.
// Problems carry no per-entry severity, so warnings folded into an error
// run are not counted here; HasErrors covers that run.
func (r Report) HasWarnings() bool {
	return r.Verdict == VerdictWarning
}
