package scan

import (
	"golang.org/x/text/unicode/norm"
)

// SplitChunks normalizes s to NFC and splits it into chunks of at most
// size characters. An empty string still yields exactly one empty chunk,
// so a found-but-empty license file is distinguishable from no license
// file at all. Concatenating the chunks in order reproduces the
// normalized input exactly.
func SplitChunks(s string, size int) []string {
	s = norm.NFC.String(s)
	runes := []rune(s)
	if len(runes) == 0 {
		return []string{""}
	}

	chunks := make([]string, 0, (len(runes)+size-1)/size)
	for i := 0; i < len(runes); i += size {
		end := i + size
		if end > len(runes) {
			end = len(runes)
		}
		chunks = append(chunks, string(runes[i:end]))
	}
	return chunks
}
