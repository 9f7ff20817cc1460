package checkparse

import (
	"errors"
	"fmt"
)

// ErrNoOwner reports a help or note line that appeared before any
// warning or error had opened a problem to attach it to. This means the
// input stream is malformed or the parser lost its position; it is
// never masked.
var ErrNoOwner = errors.New("help or note without a preceding warning or error")

// ParseError describes a diagnostic header line that violates the
// expected grammar. Parsing stops at the first such line; there is no
// per-line recovery.
type ParseError struct {
	Line   string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("unparseable check line %q: %s", e.Line, e.Reason)
}
