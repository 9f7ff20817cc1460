// Package diag defines the value model shared by the check pipeline.
//
// Note is a 1-based source span with a message. Problem groups a file's
// primary finding with the help and note spans attached to it. Report
// carries the overall verdict of a run together with every collected
// problem.
//
// The package performs no parsing, formatting, IO, or CLI integration.
// Parsing lives in internal/checkparse, rendering in internal/diagfmt,
// and process orchestration in internal/driver. Keep the data model
// deterministic and side-effect free so reports can be serialised for
// caching and testing.
package diag
