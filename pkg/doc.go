// Package pkg provides the core libraries for Licensetower license reporting.
//
// # Overview
//
// Licensetower walks a node_modules tree, reads every package manifest,
// grabs the package's license file, and writes the collected metadata to
// a single-sheet spreadsheet. The pkg directory is organized by concern:
//
//  1. [scan] - Tree walking, text decoding, license discovery, chunking
//  2. [manifest] - package.json interpretation and repository URL handling
//  3. [report] - Tabular report building and xlsx/JSON sinks
//  4. [cache] - Decode cache backends (file, Redis, null)
//  5. [config] - TOML configuration
//  6. [errors] - Coded errors shared across packages
//
// # Architecture
//
// The typical data flow:
//
//	node_modules tree
//	         ↓
//	    [scan] package (walk manifests, find + decode licenses)
//	         ↓
//	    [manifest] package (name, version, license, homepage)
//	         ↓
//	    [report] package (table layout + xlsx/JSON output)
//
// # Quick Start
//
// Scan a tree and write a spreadsheet:
//
//	import (
//	    "context"
//	    "github.com/charmbracelet/log"
//	    "github.com/matzehuels/licensetower/pkg/report"
//	    "github.com/matzehuels/licensetower/pkg/scan"
//	)
//
//	scanner := scan.New(log.Default())
//	records, err := scanner.Run(context.Background(), "node_modules")
//	if err != nil {
//	    return err
//	}
//	tbl := report.Build(records)
//	return report.WriteXLSX(tbl, "licenses.xlsx")
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...          # All tests
//	go test ./pkg/scan/...     # Specific package
//
// [scan]: https://pkg.go.dev/github.com/matzehuels/licensetower/pkg/scan
// [manifest]: https://pkg.go.dev/github.com/matzehuels/licensetower/pkg/manifest
// [report]: https://pkg.go.dev/github.com/matzehuels/licensetower/pkg/report
// [cache]: https://pkg.go.dev/github.com/matzehuels/licensetower/pkg/cache
// [config]: https://pkg.go.dev/github.com/matzehuels/licensetower/pkg/config
// [errors]: https://pkg.go.dev/github.com/matzehuels/licensetower/pkg/errors
package pkg
