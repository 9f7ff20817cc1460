package diag

import (
	"fmt"
	"strings"
)

// Note is a source span with an attached message. Coordinates are
// 1-based; columns are measured in characters. Ordering of the
// coordinates is not validated, callers are trusted.
type Note struct {
	StartLine uint32
	StartCol  uint32
	EndLine   uint32
	EndCol    uint32
	Message   string
}

// NewNote builds a note for the given span and message.
func NewNote(startLine, startCol, endLine, endCol uint32, message string) Note {
	return Note{
		StartLine: startLine,
		StartCol:  startCol,
		EndLine:   endLine,
		EndCol:    endCol,
		Message:   message,
	}
}

func (n Note) String() string {
	return fmt.Sprintf("%d:%d: %d:%d: %s", n.StartLine, n.StartCol, n.EndLine, n.EndCol, n.Message)
}

// Problem is one finding reported for a file: the primary message span
// plus the help and note spans attached to it, in encounter order.
type Problem struct {
	Filepath string
	Message  Note
	Help     []Note
	Notes    []Note
}

// NewProblem builds a problem with empty help and note lists.
func NewProblem(filepath string, startLine, startCol, endLine, endCol uint32, message string) Problem {
	return Problem{
		Filepath: filepath,
		Message:  NewNote(startLine, startCol, endLine, endCol, message),
	}
}

// AppendMessage folds a continuation line into the primary message,
// separated by a line break.
func (p *Problem) AppendMessage(line string) {
	p.Message.Message += "\n" + line
}

func (p Problem) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s:", p.Filepath)
	b.WriteString(p.Message.String())
	for _, help := range p.Help {
		fmt.Fprintf(&b, " (help: %s)", help)
	}
	for _, note := range p.Notes {
		fmt.Fprintf(&b, " (note: %s)", note)
	}
	return b.String()
}
