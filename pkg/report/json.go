package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/matzehuels/licensetower/pkg/scan"
)

// Export is the JSON sidecar envelope: run metadata plus all records.
type Export struct {
	RunID       string    `json:"run_id"`
	GeneratedAt time.Time `json:"generated_at"`
	Records     []record  `json:"records"`
}

type record struct {
	Path     string   `json:"path"`
	Homepage string   `json:"homepage,omitempty"`
	Name     string   `json:"name,omitempty"`
	License  string   `json:"license,omitempty"`
	Version  string   `json:"version,omitempty"`
	Chunks   []string `json:"license_chunks,omitempty"`
}

// WriteJSON encodes the records as an indented JSON document on w.
func WriteJSON(records []scan.Record, runID string, w io.Writer) error {
	out := Export{
		RunID:       runID,
		GeneratedAt: time.Now().UTC(),
		Records:     make([]record, len(records)),
	}
	for i, r := range records {
		out.Records[i] = record{
			Path:     r.Path,
			Homepage: r.Homepage,
			Name:     r.Name,
			License:  r.License,
			Version:  r.Version,
			Chunks:   r.Chunks,
		}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ExportJSON writes the records to a JSON file at path.
// This is a convenience wrapper around [WriteJSON] for file-based output.
func ExportJSON(records []scan.Record, runID, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteJSON(records, runID, f)
}
