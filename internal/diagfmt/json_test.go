package diagfmt

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/Machtan/lintparser/internal/diag"
)

func TestBuildReport(t *testing.T) {
	out := BuildReport(sampleReport(), JSONOpts{IncludeHelp: true, IncludeNotes: true})

	if out.Verdict != "warning" {
		t.Errorf("verdict = %q, want %q", out.Verdict, "warning")
	}
	if out.Count != 1 || len(out.Problems) != 1 {
		t.Fatalf("count = %d, problems = %d, want 1 each", out.Count, len(out.Problems))
	}
	p := out.Problems[0]
	if p.File != "src/lib.rs" || p.Message != "unused variable: `x`" {
		t.Errorf("problem = %+v", p)
	}
	if p.Span != (SpanJSON{StartLine: 5, StartCol: 1, EndLine: 5, EndCol: 10}) {
		t.Errorf("span = %+v", p.Span)
	}
	if len(p.Help) != 1 || len(p.Notes) != 1 {
		t.Errorf("attachments: help = %d, notes = %d, want 1 each", len(p.Help), len(p.Notes))
	}
}

func TestBuildReport_Options(t *testing.T) {
	rep := sampleReport()
	rep.Problems = append(rep.Problems, diag.NewProblem("src/main.rs", 1, 1, 1, 2, "second"))

	out := BuildReport(rep, JSONOpts{Max: 1})
	if len(out.Problems) != 1 {
		t.Errorf("problems = %d, want 1 (Max truncation)", len(out.Problems))
	}
	if out.Count != 2 {
		t.Errorf("count = %d, want 2 (Count reflects the full list)", out.Count)
	}
	if len(out.Problems[0].Help) != 0 || len(out.Problems[0].Notes) != 0 {
		t.Errorf("attachments included despite being disabled: %+v", out.Problems[0])
	}
}

func TestWriteJSON_RoundTrip(t *testing.T) {
	var b strings.Builder
	if err := WriteJSON(&b, sampleReport(), JSONOpts{IncludeHelp: true, IncludeNotes: true}); err != nil {
		t.Fatalf("WriteJSON failed: %v", err)
	}

	var decoded ReportJSON
	if err := json.Unmarshal([]byte(b.String()), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if decoded.Verdict != "warning" || decoded.Count != 1 {
		t.Errorf("decoded = %+v", decoded)
	}
}
