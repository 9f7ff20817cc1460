package driver

import (
	"os"
	"path/filepath"
	"testing"
)

func writeSource(t *testing.T, dir, name, contents string) {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("failed to create dir: %v", err)
	}
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
}

func TestHashTree_Deterministic(t *testing.T) {
	dir := t.TempDir()
	writeSource(t, dir, "Cargo.toml", "[package]\nname = \"demo\"\n")
	writeSource(t, dir, "src/lib.rs", "fn main() {}\n")

	first, err := HashTree(dir)
	if err != nil {
		t.Fatalf("HashTree failed: %v", err)
	}
	second, err := HashTree(dir)
	if err != nil {
		t.Fatalf("HashTree failed: %v", err)
	}
	if first != second {
		t.Errorf("digests differ: %s vs %s", first, second)
	}
}

func TestHashTree_ChangesWithContent(t *testing.T) {
	dir := t.TempDir()
	writeSource(t, dir, "src/lib.rs", "fn main() {}\n")

	before, err := HashTree(dir)
	if err != nil {
		t.Fatalf("HashTree failed: %v", err)
	}
	writeSource(t, dir, "src/lib.rs", "fn main() { let x = 5; }\n")
	after, err := HashTree(dir)
	if err != nil {
		t.Fatalf("HashTree failed: %v", err)
	}
	if before == after {
		t.Error("digest unchanged after source edit")
	}
}

func TestHashTree_IgnoresTargetAndForeignFiles(t *testing.T) {
	dir := t.TempDir()
	writeSource(t, dir, "src/lib.rs", "fn main() {}\n")

	before, err := HashTree(dir)
	if err != nil {
		t.Fatalf("HashTree failed: %v", err)
	}
	writeSource(t, dir, "target/debug/build.rs", "generated\n")
	writeSource(t, dir, "README.md", "docs\n")
	after, err := HashTree(dir)
	if err != nil {
		t.Fatalf("HashTree failed: %v", err)
	}
	if before != after {
		t.Error("digest changed after touching target/ and non-source files")
	}
}
