package gemini

import (
	"context"

	"github.com/fwojciec/sitelens"
	"google.golang.org/genai"
	"google.golang.org/genai/tokenizer"
)

var _ sitelens.TokenCounter = (*TokenCounter)(nil)

// TokenCounter counts tokens with the local Gemini tokenizer, without any
// network calls. It is an opt-in alternative to sitelens.WordCounter.
type TokenCounter struct {
	tok *tokenizer.LocalTokenizer
}

// NewTokenCounter loads the tokenizer for model, or DefaultModel when model is
// empty. Unsupported models return ECONFIG.
func NewTokenCounter(model string) (*TokenCounter, error) {
	if model == "" {
		model = DefaultModel
	}
	tok, err := tokenizer.NewLocalTokenizer(model)
	if err != nil {
		return nil, sitelens.WrapError(sitelens.ECONFIG, err, "no local tokenizer for model %q", model)
	}
	return &TokenCounter{tok: tok}, nil
}

// CountTokens returns the number of tokens text occupies as a user turn.
func (tc *TokenCounter) CountTokens(_ context.Context, text string) (int, error) {
	if text == "" {
		return 0, nil
	}

	result, err := tc.tok.CountTokens([]*genai.Content{genai.NewContentFromText(text, genai.RoleUser)}, nil)
	if err != nil {
		return 0, sitelens.WrapError(sitelens.EINTERNAL, err, "failed to count tokens")
	}
	return int(result.TotalTokens), nil
}
