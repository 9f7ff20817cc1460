package main

import (
	"encoding/json"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/Machtan/lintparser/internal/diagfmt"
	"github.com/Machtan/lintparser/internal/driver"
	"github.com/Machtan/lintparser/internal/ui"
)

var checkCmd = &cobra.Command{
	Use:   "check [flags] [directory...]",
	Short: "Run cargo check and report structured findings",
	Long:  `Run the crate's static-check pass in each directory (default ".") and report the findings as a verdict plus a list of problems`,
	RunE:  runCheck,
}

func init() {
	checkCmd.Flags().String("format", "pretty", "output format (pretty|json|short)")
	checkCmd.Flags().Bool("no-cache", false, "always run the external check, even for unchanged trees")
	checkCmd.Flags().Bool("ui", false, "show live progress while checking")
	checkCmd.Flags().Bool("no-help", false, "omit help suggestions from output")
	checkCmd.Flags().Bool("no-notes", false, "omit notes from output")
	checkCmd.Flags().Int("max-problems", 0, "truncate the rendered problem list (0=all)")
	checkCmd.Flags().Int("width", 0, "maximum rendered line width (0=unlimited)")
}

// dirReportJSON wraps one directory's report for multi-directory JSON
// output.
type dirReportJSON struct {
	Dir    string              `json:"dir"`
	Name   string              `json:"name,omitempty"`
	Error  string              `json:"error,omitempty"`
	Report *diagfmt.ReportJSON `json:"report,omitempty"`
}

func runCheck(cmd *cobra.Command, args []string) error {
	dirs := args
	if len(dirs) == 0 {
		dirs = []string{"."}
	}

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	switch format {
	case "pretty", "json", "short":
		// supported
	default:
		return fmt.Errorf("unsupported format %q (must be pretty, json or short)", format)
	}

	noCache, err := cmd.Flags().GetBool("no-cache")
	if err != nil {
		return fmt.Errorf("failed to get no-cache flag: %w", err)
	}
	useUI, err := cmd.Flags().GetBool("ui")
	if err != nil {
		return fmt.Errorf("failed to get ui flag: %w", err)
	}
	noHelp, err := cmd.Flags().GetBool("no-help")
	if err != nil {
		return fmt.Errorf("failed to get no-help flag: %w", err)
	}
	noNotes, err := cmd.Flags().GetBool("no-notes")
	if err != nil {
		return fmt.Errorf("failed to get no-notes flag: %w", err)
	}
	maxProblems, err := cmd.Flags().GetInt("max-problems")
	if err != nil {
		return fmt.Errorf("failed to get max-problems flag: %w", err)
	}
	width, err := cmd.Flags().GetInt("width")
	if err != nil {
		return fmt.Errorf("failed to get width flag: %w", err)
	}

	colorMode, err := cmd.Root().PersistentFlags().GetString("color")
	if err != nil {
		return fmt.Errorf("failed to get color flag: %w", err)
	}
	quiet, err := cmd.Root().PersistentFlags().GetBool("quiet")
	if err != nil {
		return fmt.Errorf("failed to get quiet flag: %w", err)
	}
	jobs, err := cmd.Root().PersistentFlags().GetInt("jobs")
	if err != nil {
		return fmt.Errorf("failed to get jobs flag: %w", err)
	}

	colorOn, err := resolveColor(colorMode, os.Stdout)
	if err != nil {
		return err
	}

	opts := driver.CheckOptions{Jobs: jobs}
	if !noCache {
		cache, err := driver.OpenCache("lintparser")
		if err != nil {
			if !quiet {
				fmt.Fprintf(cmd.ErrOrStderr(), "lintparser: report cache unavailable: %v\n", err)
			}
		} else {
			opts.Cache = cache
		}
	}

	var results []driver.DirResult
	if useUI && isTerminal(os.Stdout) {
		events := make(chan driver.Event, 64)
		opts.Progress = driver.ChannelSink{Ch: events}
		resCh := make(chan []driver.DirResult, 1)
		go func() {
			resCh <- driver.CheckDirs(cmd.Context(), dirs, opts)
			close(events)
		}()
		_, uiErr := tea.NewProgram(ui.NewCheckModel("cargo check", dirs, events)).Run()
		results = awaitResults(events, resCh)
		if uiErr != nil {
			return fmt.Errorf("progress ui failed: %w", uiErr)
		}
	} else {
		results = driver.CheckDirs(cmd.Context(), dirs, opts)
	}

	out := cmd.OutOrStdout()
	jsonOpts := diagfmt.JSONOpts{
		IncludeHelp:  !noHelp,
		IncludeNotes: !noNotes,
		Max:          maxProblems,
	}
	prettyOpts := diagfmt.PrettyOpts{
		Color:     colorOn,
		Width:     width,
		ShowHelp:  !noHelp,
		ShowNotes: !noNotes,
	}

	if format == "json" {
		if err := writeResultsJSON(cmd, results, jsonOpts); err != nil {
			return err
		}
	} else {
		for _, res := range results {
			if len(results) > 1 {
				label := res.Name
				if label == "" {
					label = res.Dir
				}
				fmt.Fprintf(out, "== %s (%s)\n", label, res.Dir)
			}
			if res.Err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "lintparser: %s: %v\n", res.Dir, res.Err)
				continue
			}
			switch format {
			case "pretty":
				diagfmt.Pretty(out, res.Report, prettyOpts)
			case "short":
				shortOpts := diagfmt.ShortOpts{ShowAttachments: !noHelp || !noNotes}
				if rendered := diagfmt.Short(res.Report, shortOpts); rendered != "" {
					fmt.Fprintln(out, rendered)
				}
			}
		}
	}

	for _, res := range results {
		if res.Err != nil || res.Report.HasErrors() {
			os.Exit(1)
		}
	}
	return nil
}

// awaitResults drains any progress events the UI left unread, then
// collects the checker's results. The drain keeps the checker goroutine
// from blocking mid-send when the UI was quit before all directories
// finished.
func awaitResults(events <-chan driver.Event, resCh <-chan []driver.DirResult) []driver.DirResult {
	for range events {
	}
	return <-resCh
}

func writeResultsJSON(cmd *cobra.Command, results []driver.DirResult, opts diagfmt.JSONOpts) error {
	if len(results) == 1 && results[0].Err == nil {
		return diagfmt.WriteJSON(cmd.OutOrStdout(), results[0].Report, opts)
	}
	docs := make([]dirReportJSON, 0, len(results))
	for _, res := range results {
		doc := dirReportJSON{Dir: res.Dir, Name: res.Name}
		if res.Err != nil {
			doc.Error = res.Err.Error()
		} else {
			rep := diagfmt.BuildReport(res.Report, opts)
			doc.Report = &rep
		}
		docs = append(docs, doc)
	}
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(docs)
}
