package scan

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"testing"
)

// writeFile creates a file with parent directories.
func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func collectManifests(t *testing.T, root string) []string {
	t.Helper()
	var got []string
	for p := range Manifests(context.Background(), root) {
		rel, err := filepath.Rel(root, p)
		if err != nil {
			t.Fatal(err)
		}
		got = append(got, filepath.ToSlash(rel))
	}
	return got
}

func TestManifests(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "left-pad", "package.json"), "{}")
	writeFile(t, filepath.Join(root, "left-pad", "index.js"), "")
	writeFile(t, filepath.Join(root, "@scope", "pkg", "package.json"), "{}")
	writeFile(t, filepath.Join(root, "deep", "node_modules", "inner", "package.json"), "{}")
	writeFile(t, filepath.Join(root, "no-manifest", "readme.md"), "")

	got := collectManifests(t, root)
	sort.Strings(got)

	want := []string{
		"@scope/pkg/package.json",
		"deep/node_modules/inner/package.json",
		"left-pad/package.json",
	}
	if len(got) != len(want) {
		t.Fatalf("manifests = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("manifests[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestManifestsDuplicatePair(t *testing.T) {
	// A directory holding both package.json and a bare "package" file
	// yields two manifests, package.json first.
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "dup", "package.json"), "{}")
	writeFile(t, filepath.Join(root, "dup", "package"), "{}")

	got := collectManifests(t, root)
	want := []string{"dup/package.json", "dup/package"}
	if len(got) != 2 {
		t.Fatalf("manifests = %v, want both of the pair", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("manifests[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestManifestsCaseInsensitive(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "shouty", "PACKAGE.JSON"), "{}")

	got := collectManifests(t, root)
	if len(got) != 1 || got[0] != "shouty/PACKAGE.JSON" {
		t.Errorf("manifests = %v, want [shouty/PACKAGE.JSON]", got)
	}
}

func TestManifestsLazyStop(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "a", "package.json"), "{}")
	writeFile(t, filepath.Join(root, "b", "package.json"), "{}")

	count := 0
	for range Manifests(context.Background(), root) {
		count++
		break
	}
	if count != 1 {
		t.Errorf("count = %d, want 1 after break", count)
	}
}

func TestManifestsSymlinkCycle(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "pkg", "package.json"), "{}")
	if err := os.Symlink(root, filepath.Join(root, "pkg", "loop")); err != nil {
		t.Skipf("symlinks unavailable: %v", err)
	}

	// Must terminate, and the cycle guard keeps each manifest to one yield.
	got := collectManifests(t, root)
	if len(got) != 1 {
		t.Errorf("manifests = %v, want exactly one despite the cycle", got)
	}
}

func TestManifestsFollowsSymlinkedDir(t *testing.T) {
	real := t.TempDir()
	writeFile(t, filepath.Join(real, "linked-pkg", "package.json"), "{}")

	root := t.TempDir()
	if err := os.Symlink(real, filepath.Join(root, "vendored")); err != nil {
		t.Skipf("symlinks unavailable: %v", err)
	}

	got := collectManifests(t, root)
	if len(got) != 1 || got[0] != "vendored/linked-pkg/package.json" {
		t.Errorf("manifests = %v, want the symlinked manifest", got)
	}
}

func TestManifestsCancelledContext(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "pkg", "package.json"), "{}")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	count := 0
	for range Manifests(ctx, root) {
		count++
	}
	if count != 0 {
		t.Errorf("count = %d, want 0 with cancelled context", count)
	}
}
