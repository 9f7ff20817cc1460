package driver

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/Machtan/lintparser/internal/checkparse"
	"github.com/Machtan/lintparser/internal/diag"
)

// DirResult holds the outcome for one directory of a multi-directory
// run.
type DirResult struct {
	Dir    string
	Name   string // package name declared by the crate manifest
	Report diag.Report
	Cached bool
	Err    error
}

// CheckOptions configure a multi-directory run.
type CheckOptions struct {
	Jobs     int    // max parallel directories, 0 = GOMAXPROCS
	Cache    *Cache // nil disables caching
	Progress Sink   // nil disables progress events
}

// CheckDirs checks every directory concurrently with a bounded worker
// group. Results keep the input order; per-directory failures land in
// DirResult.Err instead of aborting the whole run.
func CheckDirs(ctx context.Context, dirs []string, opts CheckOptions) []DirResult {
	results := make([]DirResult, len(dirs))
	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)
	for i, dir := range dirs {
		i, dir := i, dir
		g.Go(func() error {
			results[i] = checkOne(ctx, dir, opts)
			return nil
		})
	}
	// Errors are carried per directory; the group never fails.
	_ = g.Wait()
	return results
}

func checkOne(ctx context.Context, dir string, opts CheckOptions) DirResult {
	res := DirResult{Dir: dir}
	fail := func(err error) DirResult {
		res.Err = err
		emit(opts.Progress, Event{Dir: dir, Status: StatusError, Err: err})
		return res
	}

	emit(opts.Progress, Event{Dir: dir, Stage: StageCheck, Status: StatusWorking})
	manifest, err := LoadManifest(dir)
	if err != nil {
		return fail(err)
	}
	res.Name = manifest.PackageName()

	var (
		digest    Digest
		hasDigest bool
	)
	if opts.Cache != nil {
		if d, err := HashTree(manifest.Root); err == nil {
			digest, hasDigest = d, true
			if rep, ok := opts.Cache.Load(digest); ok {
				res.Report = rep
				res.Cached = true
				emit(opts.Progress, Event{Dir: dir, Status: StatusCached})
				return res
			}
		}
	}

	out, err := CaptureOutput(ctx, dir)
	if err != nil {
		return fail(err)
	}

	emit(opts.Progress, Event{Dir: dir, Stage: StageParse, Status: StatusWorking})
	rep, err := checkparse.Parse(out)
	if err != nil {
		return fail(err)
	}
	res.Report = rep

	if opts.Cache != nil && hasDigest {
		// Cache write failures never fail the check.
		_ = opts.Cache.Store(digest, rep)
	}
	emit(opts.Progress, Event{Dir: dir, Status: StatusDone})
	return res
}
