package checkparse

import (
	"fmt"
	"strconv"
	"unicode"
	"unicode/utf8"

	"fortio.org/safecast"

	"github.com/Machtan/lintparser/internal/diag"
)

// lineState names the field being captured during the left-to-right
// scan of a diagnostic header line.
type lineState uint8

const (
	stateFile lineState = iota
	stateStartLine
	stateStartCol
	stateEndLine
	stateEndCol
	stateLevel
	stateFirstMessageLine
)

// ParseLine extracts the structured fields of one diagnostic header line:
//
//	<filepath>:<start_line>:<start_col>: <end_line>:<end_col> <level>: <message>
//
// The line is consumed in a single pass with ':' and whitespace as the
// only delimiters. Numeric fields must be non-negative integers and the
// level keyword must match exactly; any violation, including running out
// of line before the message starts, returns a *ParseError.
func ParseLine(line string) (diag.Severity, diag.Problem, error) {
	var (
		state     = stateFile
		filepath  string
		startLine uint32
		startCol  uint32
		endLine   uint32
		endCol    uint32
		sev       diag.Severity
	)

	start := 0
	for i, ch := range line {
		switch state {
		case stateFile:
			if ch == ':' {
				filepath = line[:i]
				state = stateStartLine
				start = i + 1
			}
		case stateStartLine:
			if ch == ':' {
				n, err := parseCoord(line, line[start:i], "start line")
				if err != nil {
					return 0, diag.Problem{}, err
				}
				startLine = n
				state = stateStartCol
				start = i + 1
			}
		case stateStartCol:
			if ch == ':' {
				n, err := parseCoord(line, line[start:i], "start column")
				if err != nil {
					return 0, diag.Problem{}, err
				}
				startCol = n
				state = stateEndLine
				start = i + 1
			}
		case stateEndLine:
			if unicode.IsSpace(ch) {
				start = i + utf8.RuneLen(ch)
			} else if ch == ':' {
				n, err := parseCoord(line, line[start:i], "end line")
				if err != nil {
					return 0, diag.Problem{}, err
				}
				endLine = n
				state = stateEndCol
				start = i + 1
			}
		case stateEndCol:
			if unicode.IsSpace(ch) {
				n, err := parseCoord(line, line[start:i], "end column")
				if err != nil {
					return 0, diag.Problem{}, err
				}
				endCol = n
				state = stateLevel
				start = i + utf8.RuneLen(ch)
			}
		case stateLevel:
			if unicode.IsSpace(ch) {
				start = i + utf8.RuneLen(ch)
			} else if ch == ':' {
				switch keyword := line[start:i]; keyword {
				case "warning":
					sev = diag.SevWarning
				case "error":
					sev = diag.SevError
				case "help":
					sev = diag.SevHelp
				case "note":
					sev = diag.SevNote
				default:
					return 0, diag.Problem{}, &ParseError{
						Line:   line,
						Reason: fmt.Sprintf("unknown severity level %q", keyword),
					}
				}
				state = stateFirstMessageLine
				start = i + 1
			}
		case stateFirstMessageLine:
			if unicode.IsSpace(ch) {
				start = i + utf8.RuneLen(ch)
			} else {
				problem := diag.NewProblem(filepath, startLine, startCol, endLine, endCol, line[start:])
				return sev, problem, nil
			}
		}
	}
	return 0, diag.Problem{}, &ParseError{Line: line, Reason: "line ended before all fields were captured"}
}

func parseCoord(line, text, field string) (uint32, error) {
	n, err := strconv.Atoi(text)
	if err != nil || n < 0 {
		return 0, &ParseError{Line: line, Reason: fmt.Sprintf("invalid %s %q", field, text)}
	}
	v, err := safecast.Conv[uint32](n)
	if err != nil {
		return 0, &ParseError{Line: line, Reason: fmt.Sprintf("%s %q out of range", field, text)}
	}
	return v, nil
}
