package driver

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Manifest describes the crate the check runs against.
type Manifest struct {
	Path   string
	Root   string
	Config manifestConfig
}

type manifestConfig struct {
	Package packageConfig `toml:"package"`
}

type packageConfig struct {
	Name string `toml:"name"`
}

// FindManifest walks upward from startDir looking for Cargo.toml.
func FindManifest(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, "Cargo.toml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// LoadManifest resolves and decodes the crate manifest for dir. A
// missing manifest is reported as ErrInvalidDirectory so callers fail
// before spawning the external process.
func LoadManifest(dir string) (*Manifest, error) {
	path, ok, err := FindManifest(dir)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: no Cargo.toml found from %q", ErrInvalidDirectory, dir)
	}
	var cfg manifestConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("failed to decode %q: %w", path, err)
	}
	return &Manifest{
		Path:   path,
		Root:   filepath.Dir(path),
		Config: cfg,
	}, nil
}

// PackageName returns the declared package name, falling back to the
// crate root directory name.
func (m *Manifest) PackageName() string {
	if m == nil {
		return ""
	}
	if m.Config.Package.Name != "" {
		return m.Config.Package.Name
	}
	return filepath.Base(m.Root)
}
