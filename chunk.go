package sitelens

// Default chunking parameters for the answer flow.
const (
	DefaultChunkSize    = 1000
	DefaultChunkOverlap = 200
)

// Chunk is a window of a source text. Offsets are character (rune) positions
// in the source; EndOffset is exclusive.
type Chunk struct {
	Index       int    `json:"index"`
	Text        string `json:"text"`
	StartOffset int    `json:"startOffset"`
	EndOffset   int    `json:"endOffset"`
}

// SplitText splits text into overlapping windows of at most chunkSize
// characters. Consecutive chunks share exactly overlap characters and the
// chunks together cover the whole text. The last chunk ends at the end of the
// text and may be shorter than chunkSize.
//
// Returns ECONFIG unless 0 <= overlap < chunkSize. An empty text yields no chunks.
func SplitText(text string, chunkSize, overlap int) ([]Chunk, error) {
	if chunkSize <= 0 {
		return nil, Errorf(ECONFIG, "chunk size must be positive, got %d", chunkSize)
	}
	if overlap < 0 {
		return nil, Errorf(ECONFIG, "chunk overlap must not be negative, got %d", overlap)
	}
	if chunkSize <= overlap {
		return nil, Errorf(ECONFIG, "chunk size %d must be greater than overlap %d", chunkSize, overlap)
	}

	runes := []rune(text)
	n := len(runes)
	if n == 0 {
		return nil, nil
	}

	stride := chunkSize - overlap
	chunks := make([]Chunk, 0, (n+stride-1)/stride)
	for start := 0; start < n; start += stride {
		end := min(start+chunkSize, n)
		chunks = append(chunks, Chunk{
			Index:       len(chunks),
			Text:        string(runes[start:end]),
			StartOffset: start,
			EndOffset:   end,
		})
		if end == n {
			break
		}
	}
	return chunks, nil
}
