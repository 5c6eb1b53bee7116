package mock

import (
	"context"

	"github.com/fwojciec/sitelens"
)

var _ sitelens.LanguageModel = (*LanguageModel)(nil)

// LanguageModel is a mock implementation of sitelens.LanguageModel.
type LanguageModel struct {
	CompleteFn func(ctx context.Context, prompt string) (string, error)
}

func (m *LanguageModel) Complete(ctx context.Context, prompt string) (string, error) {
	return m.CompleteFn(ctx, prompt)
}

var _ sitelens.Summarizer = (*Summarizer)(nil)

// Summarizer is a mock implementation of sitelens.Summarizer.
type Summarizer struct {
	SummarizeFn func(ctx context.Context, chunks []sitelens.Chunk) (*sitelens.Summary, error)
}

func (s *Summarizer) Summarize(ctx context.Context, chunks []sitelens.Chunk) (*sitelens.Summary, error) {
	return s.SummarizeFn(ctx, chunks)
}

var _ sitelens.Composer = (*Composer)(nil)

// Composer is a mock implementation of sitelens.Composer.
type Composer struct {
	ComposeFn func(ctx context.Context, summary, prompt string) (*sitelens.Answer, error)
}

func (c *Composer) Compose(ctx context.Context, summary, prompt string) (*sitelens.Answer, error) {
	return c.ComposeFn(ctx, summary, prompt)
}
