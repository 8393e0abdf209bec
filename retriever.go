package sqltutor

import "github.com/sahilm/fuzzy"

// defaultTopK is the number of manual chunks handed to the model as
// context for one question.
const defaultTopK = 3

// Rank returns the k chunks most relevant to the query, best first.
// Chunks that do not match the query at all are excluded, so the
// result may be shorter than k or empty.
func Rank(query string, chunks []string, k int) []string {
	if query == "" || len(chunks) == 0 {
		return nil
	}
	matches := fuzzy.Find(query, chunks)
	if len(matches) == 0 {
		return nil
	}

	if k <= 0 {
		k = defaultTopK
	}
	if len(matches) < k {
		k = len(matches)
	}
	out := make([]string, k)
	for i := 0; i < k; i++ {
		out[i] = matches[i].Str
	}
	return out
}
