package checkparse

import (
	"errors"
	"testing"

	"github.com/Machtan/lintparser/internal/diag"
)

func TestParseLine(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		severity diag.Severity
		filepath string
		span     [4]uint32
		message  string
	}{
		{
			name:     "warning header",
			line:     "src/lib.rs:5:1: 5:10 warning: unused variable: `x`",
			severity: diag.SevWarning,
			filepath: "src/lib.rs",
			span:     [4]uint32{5, 1, 5, 10},
			message:  "unused variable: `x`",
		},
		{
			name:     "error header",
			line:     "src/main.rs:12:9: 12:14 error: mismatched types",
			severity: diag.SevError,
			filepath: "src/main.rs",
			span:     [4]uint32{12, 9, 12, 14},
			message:  "mismatched types",
		},
		{
			name:     "help header",
			line:     "src/lib.rs:5:1: 5:10 help: consider using `_x` instead",
			severity: diag.SevHelp,
			filepath: "src/lib.rs",
			span:     [4]uint32{5, 1, 5, 10},
			message:  "consider using `_x` instead",
		},
		{
			name:     "note header",
			line:     "src/lib.rs:3:1: 3:2 note: `#[warn(dead_code)]` on by default",
			severity: diag.SevNote,
			filepath: "src/lib.rs",
			span:     [4]uint32{3, 1, 3, 2},
			message:  "`#[warn(dead_code)]` on by default",
		},
		{
			name:     "extra whitespace between fields",
			line:     "src/lib.rs:5:1:   5:10   warning:   padded message",
			severity: diag.SevWarning,
			filepath: "src/lib.rs",
			span:     [4]uint32{5, 1, 5, 10},
			message:  "padded message",
		},
		{
			name:     "path with directories",
			line:     "crates/core/src/parser.rs:101:5: 103:6 error: cannot borrow",
			severity: diag.SevError,
			filepath: "crates/core/src/parser.rs",
			span:     [4]uint32{101, 5, 103, 6},
			message:  "cannot borrow",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sev, problem, err := ParseLine(tt.line)
			if err != nil {
				t.Fatalf("ParseLine(%q) failed: %v", tt.line, err)
			}
			if sev != tt.severity {
				t.Errorf("severity = %v, want %v", sev, tt.severity)
			}
			if problem.Filepath != tt.filepath {
				t.Errorf("filepath = %q, want %q", problem.Filepath, tt.filepath)
			}
			got := [4]uint32{
				problem.Message.StartLine, problem.Message.StartCol,
				problem.Message.EndLine, problem.Message.EndCol,
			}
			if got != tt.span {
				t.Errorf("span = %v, want %v", got, tt.span)
			}
			if problem.Message.Message != tt.message {
				t.Errorf("message = %q, want %q", problem.Message.Message, tt.message)
			}
			if len(problem.Help) != 0 || len(problem.Notes) != 0 {
				t.Errorf("attachments not empty: help=%d notes=%d", len(problem.Help), len(problem.Notes))
			}
		})
	}
}

func TestParseLine_Errors(t *testing.T) {
	tests := []struct {
		name string
		line string
	}{
		{name: "bad start line", line: "src/lib.rs:x:1: 5:10 warning: msg"},
		{name: "bad start column", line: "src/lib.rs:5:y: 5:10 warning: msg"},
		{name: "bad end line", line: "src/lib.rs:5:1: z:10 warning: msg"},
		{name: "bad end column", line: "src/lib.rs:5:1: 5:1o warning: msg"},
		{name: "negative coordinate", line: "src/lib.rs:-5:1: 5:10 warning: msg"},
		{name: "unknown severity keyword", line: "src/lib.rs:5:1: 5:10 severe: msg"},
		{name: "uppercase severity keyword", line: "src/lib.rs:5:1: 5:10 Warning: msg"},
		{name: "too few sections", line: "src/lib.rs:5:1:"},
		{name: "missing message", line: "src/lib.rs:5:1: 5:10 warning:   "},
		{name: "plain text", line: "Compiling lintparser v0.1.0"},
		{name: "empty line", line: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := ParseLine(tt.line)
			if err == nil {
				t.Fatalf("ParseLine(%q) succeeded, want *ParseError", tt.line)
			}
			var parseErr *ParseError
			if !errors.As(err, &parseErr) {
				t.Fatalf("error type = %T, want *ParseError", err)
			}
			if parseErr.Line != tt.line {
				t.Errorf("ParseError.Line = %q, want %q", parseErr.Line, tt.line)
			}
		})
	}
}
