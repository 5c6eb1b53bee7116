package sitelens

import "context"

// LanguageModel completes text prompts.
type LanguageModel interface {
	// Complete sends prompt to the model and returns its response.
	// Errors may be transient or permanent; no retry is implied.
	Complete(ctx context.Context, prompt string) (string, error)
}

// Summary is the result of summarizing a sequence of chunks.
type Summary struct {
	Text           string   `json:"text"`
	ChunkSummaries []string `json:"chunkSummaries"` // In chunk order
}

// Summarizer reduces chunks to a single summary.
type Summarizer interface {
	// Summarize returns an empty Summary for no chunks. Any model failure
	// aborts the whole call with ESUMMARIZE.
	Summarize(ctx context.Context, chunks []Chunk) (*Summary, error)
}

// Answer is a language model response to a question about a page.
// Response is what the caller sees; Raw is the unadorned model output that
// gets stored.
type Answer struct {
	LogID        string `json:"id,omitempty"` // set once the exchange is stored
	Response     string `json:"response"`
	Raw          string `json:"-"`
	InputTokens  int    `json:"inputTokens"`
	OutputTokens int    `json:"outputTokens"`
}

// Composer answers a question given a page summary.
type Composer interface {
	// Compose returns ECOMPOSE if the model call fails.
	Compose(ctx context.Context, summary, prompt string) (*Answer, error)
}
