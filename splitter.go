package sqltutor

import "strings"

const (
	defaultChunkSize    = 1000
	defaultChunkOverlap = 200
)

// SplitText splits text into chunks of at most size runes, with
// roughly overlap runes shared between consecutive chunks. Cuts prefer
// a paragraph break, then a line break, then a space, before falling
// back to a hard cut inside a word. Chunks are trimmed of surrounding
// whitespace; empty chunks are dropped.
func SplitText(text string, size, overlap int) []string {
	if size <= 0 {
		return nil
	}
	if overlap < 0 {
		overlap = 0
	}
	if overlap >= size {
		overlap = size / 2
	}

	runes := []rune(text)
	var chunks []string
	start := 0
	for start < len(runes) {
		end := start + size
		if end >= len(runes) {
			if chunk := strings.TrimSpace(string(runes[start:])); chunk != "" {
				chunks = append(chunks, chunk)
			}
			break
		}

		// Look for the latest natural boundary inside the window.
		cut := end
		window := string(runes[start:end])
		for _, sep := range []string{"\n\n", "\n", " "} {
			if i := strings.LastIndex(window, sep); i > 0 {
				cut = start + len([]rune(window[:i+len(sep)]))
				break
			}
		}

		if chunk := strings.TrimSpace(string(runes[start:cut])); chunk != "" {
			chunks = append(chunks, chunk)
		}

		next := cut - overlap
		if next <= start {
			next = cut
		}
		start = next
	}
	return chunks
}
