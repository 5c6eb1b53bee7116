// Package pipeline wires fetching, extraction, summarization and persistence
// into the scrape and answer flows.
package pipeline

import (
	"context"
	"fmt"
	"strings"

	"github.com/fwojciec/sitelens"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency is the number of chunk summaries requested at once.
const DefaultConcurrency = 4

const summaryPromptFormat = "Write a concise summary of the following:\n\n\"%s\"\n\nCONCISE SUMMARY:"

// SummaryPrompt returns the prompt asking for a concise summary of text.
func SummaryPrompt(text string) string {
	return fmt.Sprintf(summaryPromptFormat, text)
}

// CombinePrompt returns the reduce prompt over per-chunk summaries, which
// are joined in the order given.
func CombinePrompt(summaries []string) string {
	return SummaryPrompt(strings.Join(summaries, "\n\n"))
}

var _ sitelens.Summarizer = (*Summarizer)(nil)

// Summarizer implements map-reduce summarization: one model call per chunk,
// then one call combining the chunk summaries in chunk order.
type Summarizer struct {
	model       sitelens.LanguageModel
	concurrency int
}

// SummarizerOption configures a Summarizer.
type SummarizerOption func(*Summarizer)

// WithConcurrency bounds the number of concurrent map calls.
func WithConcurrency(n int) SummarizerOption {
	return func(s *Summarizer) {
		if n > 0 {
			s.concurrency = n
		}
	}
}

// NewSummarizer creates a new Summarizer.
func NewSummarizer(model sitelens.LanguageModel, opts ...SummarizerOption) *Summarizer {
	s := &Summarizer{
		model:       model,
		concurrency: DefaultConcurrency,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Summarize returns an empty Summary without calling the model when chunks
// is empty. The first failing call cancels the rest and fails the whole
// summarization with ESUMMARIZE.
func (s *Summarizer) Summarize(ctx context.Context, chunks []sitelens.Chunk) (*sitelens.Summary, error) {
	if len(chunks) == 0 {
		return &sitelens.Summary{}, nil
	}

	summaries := make([]string, len(chunks))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)
	for i, chunk := range chunks {
		g.Go(func() error {
			out, err := s.model.Complete(gctx, SummaryPrompt(chunk.Text))
			if err != nil {
				return sitelens.WrapError(sitelens.ESUMMARIZE, err, "failed to summarize chunk %d", chunk.Index)
			}
			summaries[i] = out
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	text, err := s.model.Complete(ctx, CombinePrompt(summaries))
	if err != nil {
		return nil, sitelens.WrapError(sitelens.ESUMMARIZE, err, "failed to combine chunk summaries")
	}

	return &sitelens.Summary{Text: text, ChunkSummaries: summaries}, nil
}
