package diagfmt

import (
	"fmt"
	"strings"

	"github.com/Machtan/lintparser/internal/diag"
)

// Short renders the report into a stable, single-line-per-entry form
// suitable for terse CLI output and golden comparisons. Attachments are
// emitted as indented entries when opts.ShowAttachments is set.
func Short(rep diag.Report, opts ShortOpts) string {
	var b strings.Builder
	for i, p := range rep.Problems {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "%s:%d:%d %s", p.Filepath, p.Message.StartLine, p.Message.StartCol, firstLine(p.Message.Message))
		if !opts.ShowAttachments {
			continue
		}
		for _, help := range p.Help {
			fmt.Fprintf(&b, "\n  help %d:%d %s", help.StartLine, help.StartCol, firstLine(help.Message))
		}
		for _, note := range p.Notes {
			fmt.Fprintf(&b, "\n  note %d:%d %s", note.StartLine, note.StartCol, firstLine(note.Message))
		}
	}
	return b.String()
}

func firstLine(msg string) string {
	if i := strings.IndexByte(msg, '\n'); i >= 0 {
		return msg[:i]
	}
	return msg
}
