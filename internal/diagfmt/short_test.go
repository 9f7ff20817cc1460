package diagfmt

import (
	"testing"

	"github.com/Machtan/lintparser/internal/diag"
)

func TestShort(t *testing.T) {
	rep := sampleReport()
	rep.Problems = append(rep.Problems, diag.NewProblem("src/main.rs", 12, 9, 12, 14, "mismatched types\nexpected `u32`"))

	want := "src/lib.rs:5:1 unused variable: `x`\n" +
		"  help 5:1 prefix with an underscore\n" +
		"  note 2:1 declared here\n" +
		"src/main.rs:12:9 mismatched types"
	if got := Short(rep, ShortOpts{ShowAttachments: true}); got != want {
		t.Errorf("Short with attachments:\n%q\nwant:\n%q", got, want)
	}

	want = "src/lib.rs:5:1 unused variable: `x`\n" +
		"src/main.rs:12:9 mismatched types"
	if got := Short(rep, ShortOpts{}); got != want {
		t.Errorf("Short without attachments:\n%q\nwant:\n%q", got, want)
	}
}

func TestShort_Empty(t *testing.T) {
	if got := Short(diag.Report{}, ShortOpts{ShowAttachments: true}); got != "" {
		t.Errorf("Short on empty report = %q, want empty", got)
	}
}
