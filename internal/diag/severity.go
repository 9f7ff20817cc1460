package diag

// Severity classifies one diagnostic line from the check stream.
type Severity uint8

const (
	// SevWarning is for warning diagnostics.
	SevWarning Severity = iota
	// SevError is for error diagnostics.
	SevError
	// SevHelp marks a suggestion that attaches to the preceding problem.
	SevHelp
	// SevNote marks extra context that attaches to the preceding problem.
	SevNote
)

// String returns the exact keyword the check stream uses for the level.
func (s Severity) String() string {
	switch s {
	case SevWarning:
		return "warning"
	case SevError:
		return "error"
	case SevHelp:
		return "help"
	case SevNote:
		return "note"
	}
	return "unknown"
}

// Owning reports whether the severity opens a standalone problem.
// Help and note lines never stand alone, they attach to the most
// recently opened warning or error.
func (s Severity) Owning() bool {
	return s == SevWarning || s == SevError
}
