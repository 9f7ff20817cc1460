package diagfmt

import (
	"encoding/json"
	"io"

	"github.com/Machtan/lintparser/internal/diag"
)

// SpanJSON represents the four span coordinates for JSON output.
type SpanJSON struct {
	StartLine uint32 `json:"start_line"`
	StartCol  uint32 `json:"start_col"`
	EndLine   uint32 `json:"end_line"`
	EndCol    uint32 `json:"end_col"`
}

// NoteJSON represents an attached help or note span for JSON output.
type NoteJSON struct {
	Message string   `json:"message"`
	Span    SpanJSON `json:"span"`
}

// ProblemJSON represents one problem for JSON output.
type ProblemJSON struct {
	File    string     `json:"file"`
	Message string     `json:"message"`
	Span    SpanJSON   `json:"span"`
	Help    []NoteJSON `json:"help,omitempty"`
	Notes   []NoteJSON `json:"notes,omitempty"`
}

// ReportJSON represents the root structure of JSON output.
type ReportJSON struct {
	Verdict  string        `json:"verdict"`
	Problems []ProblemJSON `json:"problems"`
	Count    int           `json:"count"`
}

// BuildReport converts a report into its JSON representation.
func BuildReport(rep diag.Report, opts JSONOpts) ReportJSON {
	out := ReportJSON{
		Verdict:  rep.Verdict.String(),
		Problems: make([]ProblemJSON, 0, rep.Len()),
		Count:    rep.Len(),
	}
	for i, p := range rep.Problems {
		if opts.Max > 0 && i >= opts.Max {
			break
		}
		pj := ProblemJSON{
			File:    p.Filepath,
			Message: p.Message.Message,
			Span:    makeSpan(p.Message),
		}
		if opts.IncludeHelp {
			pj.Help = makeNotes(p.Help)
		}
		if opts.IncludeNotes {
			pj.Notes = makeNotes(p.Notes)
		}
		out.Problems = append(out.Problems, pj)
	}
	return out
}

// WriteJSON encodes the report as indented JSON.
func WriteJSON(w io.Writer, rep diag.Report, opts JSONOpts) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(BuildReport(rep, opts))
}

func makeSpan(n diag.Note) SpanJSON {
	return SpanJSON{
		StartLine: n.StartLine,
		StartCol:  n.StartCol,
		EndLine:   n.EndLine,
		EndCol:    n.EndCol,
	}
}

func makeNotes(notes []diag.Note) []NoteJSON {
	if len(notes) == 0 {
		return nil
	}
	out := make([]NoteJSON, 0, len(notes))
	for _, n := range notes {
		out = append(out, NoteJSON{Message: n.Message, Span: makeSpan(n)})
	}
	return out
}
