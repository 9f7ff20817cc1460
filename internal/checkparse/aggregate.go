package checkparse

import (
	"fmt"
	"strings"

	"github.com/Machtan/lintparser/internal/diag"
)

// AbortLine is the sentinel the build tool prints after the last
// diagnostic of a failed run. Nothing past it belongs to the stream.
const AbortLine = "error: aborting due to previous error"

// cursor walks the captured output one line at a time. Carriage returns
// are stripped and a trailing newline does not yield an empty final
// line.
type cursor struct {
	lines []string
	next  int
}

func newCursor(text string) *cursor {
	if text == "" {
		return &cursor{}
	}
	lines := strings.Split(text, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return &cursor{lines: lines}
}

func (c *cursor) Next() (string, bool) {
	if c.next >= len(c.lines) {
		return "", false
	}
	line := c.lines[c.next]
	c.next++
	return line, true
}

// Skip advances past up to n unread lines.
func (c *cursor) Skip(n int) {
	c.next += n
	if c.next > len(c.lines) {
		c.next = len(c.lines)
	}
}

// Parse consumes the complete stderr text of one check run and builds a
// report: each header line opens a diagnostic, continuation lines are
// folded into its message or dropped as visual aids, help and note
// diagnostics attach to the most recently opened warning or error, and
// the verdict summarises the run.
//
// The error is a *ParseError for grammar violations, or wraps ErrNoOwner
// when an attachment arrives before any owning problem exists.
func Parse(output string) (diag.Report, error) {
	var (
		problems []diag.Problem
		sawError bool
		aborted  bool
	)
	cur := newCursor(output)

	line, ok := cur.Next()
	for ok && !aborted {
		if line == AbortLine {
			break
		}
		sev, problem, err := ParseLine(line)
		if err != nil {
			return diag.Report{}, err
		}

		// Fold continuation lines into the open diagnostic. The cursor
		// advances on every iteration. Once a visual-aid line is seen,
		// later plain lines are suppressed too, until the next header:
		// the decoration block never resumes being message text.
		wasVisual := false
		line, ok = cur.Next()
		for ok {
			if line == AbortLine {
				aborted = true
				break
			}
			if IsVisualAid(line) {
				wasVisual = true
			} else if strings.HasPrefix(line, problem.Filepath) {
				// Header of the next diagnostic; leave it pending for
				// the outer loop.
				break
			} else if !wasVisual {
				problem.AppendMessage(line)
			}
			line, ok = cur.Next()
		}

		switch sev {
		case diag.SevError:
			sawError = true
			problems = append(problems, problem)
		case diag.SevWarning:
			problems = append(problems, problem)
			// The tool prints the source excerpt and the caret line
			// right after every warning header; drop both. The pending
			// header line, if any, is untouched.
			cur.Skip(2)
		case diag.SevHelp:
			if len(problems) == 0 {
				return diag.Report{}, fmt.Errorf("help for %s at %d:%d: %w",
					problem.Filepath, problem.Message.StartLine, problem.Message.StartCol, ErrNoOwner)
			}
			last := &problems[len(problems)-1]
			last.Help = append(last.Help, problem.Message)
		case diag.SevNote:
			if len(problems) == 0 {
				return diag.Report{}, fmt.Errorf("note for %s at %d:%d: %w",
					problem.Filepath, problem.Message.StartLine, problem.Message.StartCol, ErrNoOwner)
			}
			last := &problems[len(problems)-1]
			last.Notes = append(last.Notes, problem.Message)
		}
	}

	verdict := diag.VerdictPerfect
	switch {
	case sawError:
		verdict = diag.VerdictError
	case len(problems) > 0:
		verdict = diag.VerdictWarning
	}
	return diag.Report{Verdict: verdict, Problems: problems}, nil
}
