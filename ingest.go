package sqltutor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// IngestManual reads the manual document at path, splits it into
// overlapping chunks and replaces the stored index for that source.
// It returns the number of chunks written.
func IngestManual(ctx context.Context, store *Store, path string) (int, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("sqltutor: failed to read manual: %w", err)
	}
	chunks := SplitText(string(raw), defaultChunkSize, defaultChunkOverlap)
	if err := store.ReplaceChunks(ctx, filepath.Base(path), chunks); err != nil {
		return 0, err
	}
	return len(chunks), nil
}
