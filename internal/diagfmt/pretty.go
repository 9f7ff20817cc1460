package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/Machtan/lintparser/internal/diag"
)

var (
	perfectColor = color.New(color.FgGreen, color.Bold)
	warningColor = color.New(color.FgYellow, color.Bold)
	errorColor   = color.New(color.FgRed, color.Bold)
	pathColor    = color.New(color.FgCyan)
	attachColor  = color.New(color.FgBlue)
)

var countPrinter = message.NewPrinter(language.English)

// Pretty renders the report for humans: a verdict headline, then one
// block per problem with its span, message and attachments.
func Pretty(w io.Writer, rep diag.Report, opts PrettyOpts) {
	writeHeadline(w, rep, opts)
	for _, p := range rep.Problems {
		writeProblem(w, p, opts)
	}
}

func writeHeadline(w io.Writer, rep diag.Report, opts PrettyOpts) {
	switch rep.Verdict {
	case diag.VerdictPerfect:
		fmt.Fprintln(w, paint(perfectColor, opts.Color, "no problems found"))
	case diag.VerdictWarning:
		fmt.Fprintf(w, "%s %s\n", paint(warningColor, opts.Color, "warning:"), problemCount(rep.Len()))
	case diag.VerdictError:
		fmt.Fprintf(w, "%s %s\n", paint(errorColor, opts.Color, "error:"), problemCount(rep.Len()))
	}
}

func problemCount(n int) string {
	if n == 1 {
		return countPrinter.Sprintf("%d problem found", n)
	}
	return countPrinter.Sprintf("%d problems found", n)
}

func writeProblem(w io.Writer, p diag.Problem, opts PrettyOpts) {
	m := p.Message
	head := fmt.Sprintf("%s:%d:%d: %d:%d:",
		paint(pathColor, opts.Color, p.Filepath), m.StartLine, m.StartCol, m.EndLine, m.EndCol)

	first, rest := splitMessage(m.Message)
	fmt.Fprintf(w, "%s %s\n", head, clip(first, opts.Width))
	for _, line := range rest {
		fmt.Fprintf(w, "    %s\n", clip(line, opts.Width))
	}
	if opts.ShowHelp {
		for _, help := range p.Help {
			writeAttachment(w, "help", help, opts)
		}
	}
	if opts.ShowNotes {
		for _, note := range p.Notes {
			writeAttachment(w, "note", note, opts)
		}
	}
}

func writeAttachment(w io.Writer, label string, n diag.Note, opts PrettyOpts) {
	fmt.Fprintf(w, "    %s %s\n",
		paint(attachColor, opts.Color, label+":"), clip(n.String(), opts.Width))
}

// splitMessage separates the first message line from its continuation
// lines.
func splitMessage(msg string) (string, []string) {
	lines := strings.Split(msg, "\n")
	return lines[0], lines[1:]
}

func paint(c *color.Color, enabled bool, s string) string {
	if !enabled {
		return s
	}
	return c.Sprint(s)
}

func clip(value string, width int) string {
	if width <= 0 || runewidth.StringWidth(value) <= width {
		return value
	}
	if width <= 3 {
		return runewidth.Truncate(value, width, "")
	}
	return runewidth.Truncate(value, width, "...")
}
