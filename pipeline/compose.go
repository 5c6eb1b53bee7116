package pipeline

import (
	"context"

	"github.com/fwojciec/sitelens"
)

// ResponsePrefix precedes every composed answer.
const ResponsePrefix = "Generating answer for your query as "

// ComposePrompt joins a page summary and a user prompt into a single query.
func ComposePrompt(summary, prompt string) string {
	return "Website Summary: " + summary + "\n\nUser Prompt: " + prompt
}

var _ sitelens.Composer = (*Composer)(nil)

// Composer answers a prompt from a page summary with a single model call.
type Composer struct {
	model  sitelens.LanguageModel
	tokens sitelens.TokenCounter
}

// NewComposer creates a new Composer. A nil counter selects
// sitelens.WordCounter.
func NewComposer(model sitelens.LanguageModel, tokens sitelens.TokenCounter) *Composer {
	if tokens == nil {
		tokens = sitelens.WordCounter{}
	}
	return &Composer{model: model, tokens: tokens}
}

// Compose counts input tokens over the composed prompt and output tokens over
// the raw model output, before ResponsePrefix is added.
func (c *Composer) Compose(ctx context.Context, summary, prompt string) (*sitelens.Answer, error) {
	query := ComposePrompt(summary, prompt)

	out, err := c.model.Complete(ctx, query)
	if err != nil {
		return nil, sitelens.WrapError(sitelens.ECOMPOSE, err, "failed to generate answer")
	}

	in, err := c.tokens.CountTokens(ctx, query)
	if err != nil {
		return nil, sitelens.WrapError(sitelens.ECOMPOSE, err, "failed to count prompt tokens")
	}
	n, err := c.tokens.CountTokens(ctx, out)
	if err != nil {
		return nil, sitelens.WrapError(sitelens.ECOMPOSE, err, "failed to count response tokens")
	}

	return &sitelens.Answer{
		Response:     ResponsePrefix + out,
		Raw:          out,
		InputTokens:  in,
		OutputTokens: n,
	}, nil
}
