// Package scan walks a dependency tree and builds one record per package
// manifest: metadata from the manifest itself plus the decoded text of the
// first license-like file in the package directory.
//
// # Pipeline
//
// [Manifests] enumerates manifest files lazily. For each one, [Scanner]
// extracts metadata via the manifest package, locates a license file with
// [FindLicense], decodes it with [Decode], and chunks the text with
// [SplitChunks] into spreadsheet-cell-sized pieces. Failures are isolated
// per package: an unreadable manifest degrades to directory-derived
// fields, an undecodable license file becomes a placeholder chunk. Only a
// missing root directory aborts a run.
package scan

import (
	"bytes"
	"unicode/utf8"

	"github.com/matzehuels/licensetower/pkg/errors"
)

// Decode converts raw file bytes to a string, or fails with a
// BINARY_CONTENT error when the bytes look like binary data.
//
// Classification: any NUL byte is binary; otherwise the bytes are scanned
// as UTF-8 counting substitution markers (invalid sequences plus literal
// U+FFFD), and the file is binary when markers reach max(5, 0.2%) of the
// decoded length. Many license files carry a few stray non-UTF-8 bytes,
// which is why a low marker count does not disqualify the file.
//
// Decoding: strict UTF-8 when valid, otherwise a Latin-1-style byte-to-rune
// fallback that never fails.
func Decode(raw []byte) (string, error) {
	if bytes.IndexByte(raw, 0) != -1 {
		return "", errors.New(errors.ErrCodeBinaryContent, "binary or non-text file")
	}

	markers, length := countMarkers(raw)
	threshold := float64(length) * 0.002
	if threshold < 5 {
		threshold = 5
	}
	if float64(markers) >= threshold {
		return "", errors.New(errors.ErrCodeBinaryContent, "binary or non-text file")
	}

	if utf8.Valid(raw) {
		return string(raw), nil
	}

	// Latin-1 fallback: every byte maps to the code point of its value.
	runes := make([]rune, len(raw))
	for i, b := range raw {
		runes[i] = rune(b)
	}
	return string(runes), nil
}

// countMarkers scans raw as UTF-8 with substitution and returns the
// number of substitution markers and the decoded length in runes.
// A literal U+FFFD in valid input counts as a marker too.
func countMarkers(raw []byte) (markers, length int) {
	for i := 0; i < len(raw); {
		r, size := utf8.DecodeRune(raw[i:])
		if r == utf8.RuneError && size == 1 {
			markers++
		} else if r == '�' {
			markers++
		}
		length++
		i += size
	}
	return markers, length
}
