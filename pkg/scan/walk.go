package scan

import (
	"context"
	"io/fs"
	"iter"
	"os"
	"path/filepath"
	"strings"
)

// manifestNames are the recognized manifest basenames, matched
// case-insensitively and yielded in this order within one directory.
// Some tooling writes a bare "package" file without the .json suffix.
var manifestNames = []string{"package.json", "package"}

// Manifests returns a lazy sequence of manifest file paths under root:
// one per file whose lowercased name is package.json or "package",
// recursively, following symbolic links. A directory holding both names
// yields both; there is no de-duplication.
//
// The sequence is finite and single-use. Symlink cycles are bounded by a
// visited set of resolved directory paths, and the walk stops early when
// ctx is cancelled.
func Manifests(ctx context.Context, root string) iter.Seq[string] {
	return func(yield func(string) bool) {
		abs, err := filepath.Abs(root)
		if err != nil {
			return
		}
		walkManifests(ctx, abs, visited{}, yield)
	}
}

// visited tracks directories already entered, keyed by resolved path so
// a node_modules symlinked into itself terminates.
type visited map[string]bool

// enter records dir and reports whether it is new.
func (v visited) enter(dir string) bool {
	resolved, err := filepath.EvalSymlinks(dir)
	if err != nil {
		resolved = dir
	}
	if v[resolved] {
		return false
	}
	v[resolved] = true
	return true
}

func walkManifests(ctx context.Context, dir string, seen visited, yield func(string) bool) bool {
	if ctx.Err() != nil {
		return false
	}
	if !seen.enter(dir) {
		return true
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		// Unreadable directory: skip, the run continues.
		return true
	}

	// lowercased name -> actual name, files only
	files := make(map[string]string)
	for _, e := range entries {
		if !entryIsDir(dir, e) {
			files[strings.ToLower(e.Name())] = e.Name()
		}
	}
	for _, candidate := range manifestNames {
		if actual, ok := files[candidate]; ok {
			if !yield(filepath.Join(dir, actual)) {
				return false
			}
		}
	}

	for _, e := range entries {
		if entryIsDir(dir, e) {
			if !walkManifests(ctx, filepath.Join(dir, e.Name()), seen, yield) {
				return false
			}
		}
	}
	return true
}

// entryIsDir reports whether a directory entry is a directory, resolving
// symlinks the way a link-following walk must.
func entryIsDir(dir string, e fs.DirEntry) bool {
	if e.IsDir() {
		return true
	}
	if e.Type()&fs.ModeSymlink != 0 {
		info, err := os.Stat(filepath.Join(dir, e.Name()))
		return err == nil && info.IsDir()
	}
	return false
}
