package driver

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"unicode/utf8"

	"github.com/Machtan/lintparser/internal/checkparse"
	"github.com/Machtan/lintparser/internal/diag"
)

// checkCommand is the fixed invocation whose stderr carries the
// diagnostic stream.
var checkCommand = []string{"cargo", "check"}

var (
	// ErrInvalidDirectory means the check process could not run to
	// completion in the target directory: the directory is not a crate
	// or the tooling failed before producing findings.
	ErrInvalidDirectory = errors.New("check command could not run in directory")

	// ErrNotUTF8 means the captured stderr was not valid UTF-8.
	ErrNotUTF8 = errors.New("check output is not valid UTF-8")
)

// CaptureOutput runs the check command in dir and returns its complete
// stderr text. The findings themselves never fail the capture: the tool
// reports them on stderr and still exits zero when only the check pass
// ran. A non-zero exit or a spawn failure wraps ErrInvalidDirectory,
// kept distinct from parse errors because it means the check never ran
// meaningfully.
func CaptureOutput(ctx context.Context, dir string) (string, error) {
	cmd := exec.CommandContext(ctx, checkCommand[0], checkCommand[1:]...)
	cmd.Dir = dir
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return "", fmt.Errorf("%w: %s in %q: %v", ErrInvalidDirectory, checkCommand[0], dir, exitErr)
		}
		return "", fmt.Errorf("%w: spawning %s in %q: %v", ErrInvalidDirectory, checkCommand[0], dir, err)
	}
	if !utf8.Valid(stderr.Bytes()) {
		return "", fmt.Errorf("%w: %s in %q", ErrNotUTF8, checkCommand[0], dir)
	}
	return stderr.String(), nil
}

// Check runs the check command for the crate at dir and parses its
// findings into a report. The crate manifest must be locatable from dir.
func Check(ctx context.Context, dir string) (diag.Report, error) {
	if _, err := LoadManifest(dir); err != nil {
		return diag.Report{}, err
	}
	out, err := CaptureOutput(ctx, dir)
	if err != nil {
		return diag.Report{}, err
	}
	return checkparse.Parse(out)
}
