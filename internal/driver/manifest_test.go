package driver

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeManifest(t *testing.T, dir, contents string) string {
	t.Helper()
	path := filepath.Join(dir, "Cargo.toml")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("failed to write manifest: %v", err)
	}
	return path
}

func TestLoadManifest(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, "[package]\nname = \"demo\"\n")

	manifest, err := LoadManifest(dir)
	if err != nil {
		t.Fatalf("LoadManifest failed: %v", err)
	}
	if manifest.Root != dir {
		t.Errorf("root = %q, want %q", manifest.Root, dir)
	}
	if got := manifest.PackageName(); got != "demo" {
		t.Errorf("package name = %q, want %q", got, "demo")
	}
}

func TestLoadManifest_WalksUpward(t *testing.T) {
	root := t.TempDir()
	writeManifest(t, root, "[package]\nname = \"demo\"\n")
	nested := filepath.Join(root, "src", "inner")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("failed to create nested dir: %v", err)
	}

	manifest, err := LoadManifest(nested)
	if err != nil {
		t.Fatalf("LoadManifest failed: %v", err)
	}
	if manifest.Root != root {
		t.Errorf("root = %q, want %q", manifest.Root, root)
	}
}

func TestLoadManifest_Missing(t *testing.T) {
	_, err := LoadManifest(t.TempDir())
	if !errors.Is(err, ErrInvalidDirectory) {
		t.Errorf("error = %v, want ErrInvalidDirectory", err)
	}
}

func TestManifest_PackageNameFallback(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, "")

	manifest, err := LoadManifest(dir)
	if err != nil {
		t.Fatalf("LoadManifest failed: %v", err)
	}
	if got, want := manifest.PackageName(), filepath.Base(dir); got != want {
		t.Errorf("package name = %q, want directory name %q", got, want)
	}
}
