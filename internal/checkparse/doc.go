// Package checkparse turns the diagnostic stream of a build tool's
// static-check pass into a diag.Report.
//
// The pipeline has three stages: ParseLine scans one header line into a
// severity and a partially filled problem, IsVisualAid classifies
// continuation lines as decoration versus content, and Parse drives a
// whole captured stream through both, attaching help and note spans to
// the warning or error that owns them and computing the final verdict.
//
// Parsing is synchronous and stateless between calls: Parse takes the
// complete in-memory buffer and returns a complete report. Failures are
// structural, so they surface immediately as typed errors; there is no
// per-line recovery and nothing is printed.
package checkparse
