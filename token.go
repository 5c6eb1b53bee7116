package sitelens

import (
	"context"
	"strings"
)

// TokenCounter counts tokens in text.
type TokenCounter interface {
	CountTokens(ctx context.Context, text string) (int, error)
}

var _ TokenCounter = WordCounter{}

// WordCounter approximates tokens as whitespace-delimited words.
// It is the documented token accounting for answers, not a model tokenizer.
type WordCounter struct{}

// CountTokens returns the number of whitespace-delimited words in text.
func (WordCounter) CountTokens(_ context.Context, text string) (int, error) {
	return len(strings.Fields(text)), nil
}
