// Package manifest extracts package metadata from npm-style manifests.
//
// # Overview
//
// A manifest is a package.json (or bare "package") document. Manifests in
// the wild are loosely typed: license may be a string, an object, or a
// deprecated list; repository may be a string or an object. This package
// reads the specific keys it needs through small accessors that return an
// absent value instead of failing, and never assumes a schema.
//
// # Parsing
//
// [Parse] is tolerant: unreadable bytes or a non-object document yield
// nil Data, which every extractor accepts. A package with a broken
// manifest still gets a row built from directory-derived fallbacks.
//
//	data := manifest.Parse(raw)
//	info := manifest.Extract(data, pkgDir)
package manifest

import (
	"encoding/json"
	"path/filepath"
	"strings"
)

// Data is a parsed manifest document. A nil Data means the manifest was
// unreadable; all extractors treat it as an empty document.
type Data map[string]any

// Info holds the metadata extracted from one manifest.
type Info struct {
	Name     string // manifest name, or derived from the node_modules path
	Version  string // manifest version, trimmed
	License  string // declared license identifier(s), "; "-joined for lists
	Homepage string // homepage field, or derived from repository
}

// Parse decodes manifest bytes into Data. Invalid JSON and documents that
// are not objects return nil rather than an error; invalid UTF-8 inside
// strings is replaced, not rejected.
func Parse(raw []byte) Data {
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil
	}
	m, ok := v.(map[string]any)
	if !ok {
		return nil
	}
	return m
}

// Extract pulls name, version, declared license, and homepage out of d.
// pkgDir is the package directory, used to derive a name when the
// manifest doesn't declare one.
func Extract(d Data, pkgDir string) Info {
	info := Info{
		Version:  stringField(d, "version"),
		License:  declaredLicense(d),
		Homepage: homepage(d),
	}
	if name := stringField(d, "name"); name != "" {
		info.Name = name
	} else {
		info.Name = DeriveName(pkgDir)
	}
	return info
}

// DeriveName infers a package name from its location under node_modules.
// The segment after the last node_modules anchor wins, with @scope/pkg
// handling; a path without an anchor falls back to the final component.
//
//	/app/node_modules/@scope/pkg/...  -> @scope/pkg
//	/app/node_modules/pkg/...         -> pkg
func DeriveName(pkgDir string) string {
	abs, err := filepath.Abs(pkgDir)
	if err != nil {
		abs = pkgDir
	}

	parts := strings.Split(abs, string(filepath.Separator))
	idx := -1
	for i, p := range parts {
		if p == "node_modules" {
			idx = i
		}
	}
	if idx == -1 || idx+1 >= len(parts) {
		return filepath.Base(pkgDir)
	}

	first := parts[idx+1]
	if strings.HasPrefix(first, "@") && idx+2 < len(parts) {
		return first + "/" + parts[idx+2]
	}
	return first
}

// stringField returns the trimmed value of a string field, or "".
func stringField(d Data, key string) string {
	if s, ok := d[key].(string); ok {
		return strings.TrimSpace(s)
	}
	return ""
}

// firstString returns the first non-empty string among the given sub-keys
// of a manifest object, trimmed.
func firstString(m map[string]any, keys ...string) string {
	for _, key := range keys {
		if s, ok := m[key].(string); ok {
			if v := strings.TrimSpace(s); v != "" {
				return v
			}
		}
	}
	return ""
}

// licenseKeys are the sub-keys read from license objects, in priority order.
var licenseKeys = []string{"type", "name", "spdx", "value"}

// declaredLicense resolves the declared license by priority:
// a string license field, then a license/licence object, then the
// deprecated licenses list joined with "; ". Empty when none apply.
func declaredLicense(d Data) string {
	lic := d["license"]
	if isEmptyValue(lic) {
		lic = d["licence"]
	}

	switch v := lic.(type) {
	case string:
		if s := strings.TrimSpace(v); s != "" {
			return s
		}
	case map[string]any:
		if s := firstString(v, licenseKeys...); s != "" {
			return s
		}
	}

	if list, ok := d["licenses"].([]any); ok && len(list) > 0 {
		var vals []string
		for _, item := range list {
			switch v := item.(type) {
			case string:
				if s := strings.TrimSpace(v); s != "" {
					vals = append(vals, s)
				}
			case map[string]any:
				if s := firstString(v, licenseKeys...); s != "" {
					vals = append(vals, s)
				}
			}
		}
		if len(vals) > 0 {
			return strings.Join(vals, "; ")
		}
	}

	return ""
}

// isEmptyValue reports whether a manifest field should be skipped in
// favor of a fallback key (absent, empty string, or empty object).
func isEmptyValue(v any) bool {
	switch t := v.(type) {
	case nil:
		return true
	case string:
		return t == ""
	case map[string]any:
		return len(t) == 0
	}
	return false
}

// homepage returns the homepage field if it is a non-empty string,
// otherwise a homepage derived from the repository field.
func homepage(d Data) string {
	if s := stringField(d, "homepage"); s != "" {
		return s
	}
	return DeriveHomepage(d["repository"])
}
