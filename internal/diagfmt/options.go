package diagfmt

// PrettyOpts configures human-readable rendering of a report.
type PrettyOpts struct {
	Color     bool
	Width     int // maximum rendered line width, 0 - no limit
	ShowHelp  bool
	ShowNotes bool
}

// JSONOpts configures JSON output of a report.
type JSONOpts struct {
	IncludeHelp  bool
	IncludeNotes bool
	Max          int // truncate the rendered problem list, 0 - no limit
}

// ShortOpts configures the terse one-line-per-problem rendering.
type ShortOpts struct {
	ShowAttachments bool
}
