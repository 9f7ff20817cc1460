package checkparse

import "unicode"

// IsVisualAid reports whether the line is decorative output that carries
// no diagnostic text of its own: source excerpts, underline and caret
// markers, or vertical connector bars.
//
// The test counts ':' occurrences up to the first whitespace character.
// Fewer than three colons before whitespace means the line cannot be a
// "filepath:line:col:" continuation header, so it is decoration. A
// fourth colon before any whitespace makes the line look like a fresh
// diagnostic header instead, and a line with neither whitespace nor a
// fourth colon falls through to plain-text treatment. Stateless, no
// lookahead beyond the line itself.
func IsVisualAid(line string) bool {
	colons := 0
	for _, ch := range line {
		if unicode.IsSpace(ch) {
			return colons < 3
		}
		if ch == ':' {
			if colons == 3 {
				return false
			}
			colons++
		}
	}
	return false
}
