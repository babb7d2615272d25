package scan

// Record is the extracted data for one discovered manifest. Exactly one
// Record exists per manifest, whether or not a license file was found.
type Record struct {
	// Path is the license file path when one was found, otherwise the
	// package directory path.
	Path string

	Homepage string
	Name     string
	License  string
	Version  string

	// Chunks holds the decoded license text split into cell-sized pieces.
	// Empty exactly when no readable license file was found. A decode
	// failure leaves a single "[Skipped: ...]" placeholder chunk.
	Chunks []string
}

// Text reassembles the license text from the record's chunks.
func (r Record) Text() string {
	var s string
	for _, c := range r.Chunks {
		s += c
	}
	return s
}
