package scan

import (
	"context"
	"os"
	"path/filepath"
	"strings"
)

// licenseBasenames are the exact lowercased names recognized as license
// files. COPYING is the GNU convention. Names starting with "license"
// (LICENSE-MIT, license.BSD, ...) match by prefix.
var licenseBasenames = map[string]bool{
	"license":     true,
	"license.txt": true,
	"license.md":  true,
	"licence":     true,
	"licence.txt": true,
	"licence.md":  true,
	"copying":     true,
	"copying.txt": true,
	"copying.md":  true,
}

// FindLicense searches pkgDir depth-first for the first license-like file
// and returns its path. Files of a directory are checked before its
// subdirectories, in directory-entry order; the first match wins, so with
// several candidates the result is best-effort, not "best". Symbolic
// links are followed with the same cycle guard as the manifest walk.
//
// extra lists additional exact basenames (lowercase) from configuration.
func FindLicense(ctx context.Context, pkgDir string, extra []string) (string, bool) {
	extraSet := make(map[string]bool, len(extra))
	for _, name := range extra {
		extraSet[strings.ToLower(name)] = true
	}
	return findLicense(ctx, pkgDir, extraSet, visited{})
}

func findLicense(ctx context.Context, dir string, extra map[string]bool, seen visited) (string, bool) {
	if ctx.Err() != nil {
		return "", false
	}
	if !seen.enter(dir) {
		return "", false
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", false
	}

	for _, e := range entries {
		if entryIsDir(dir, e) {
			continue
		}
		lower := strings.ToLower(e.Name())
		if licenseBasenames[lower] || extra[lower] || strings.HasPrefix(lower, "license") {
			return filepath.Join(dir, e.Name()), true
		}
	}

	for _, e := range entries {
		if !entryIsDir(dir, e) {
			continue
		}
		if path, ok := findLicense(ctx, filepath.Join(dir, e.Name()), extra, seen); ok {
			return path, true
		}
	}
	return "", false
}
