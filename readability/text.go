// Package readability reduces a page to its main article text with
// go-readability.
package readability

import (
	"strings"

	"github.com/fwojciec/sitelens"
	"github.com/go-shiori/go-readability"
)

var _ sitelens.TextExtractor = (*TextExtractor)(nil)

// TextExtractor keeps the readable body of a page and drops navigation,
// footers and other boilerplate.
type TextExtractor struct{}

// NewTextExtractor creates a new TextExtractor.
func NewTextExtractor() *TextExtractor {
	return &TextExtractor{}
}

// ExtractText returns the article title followed by its plain text.
func (e *TextExtractor) ExtractText(html string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", sitelens.Errorf(sitelens.EINVALID, "empty HTML input")
	}

	article, err := readability.FromReader(strings.NewReader(html), nil)
	if err != nil {
		return "", sitelens.WrapError(sitelens.EEXTRACT, err, "readability failed")
	}

	text := strings.TrimSpace(article.TextContent)
	if article.Title == "" || strings.HasPrefix(text, article.Title) {
		return text, nil
	}
	return article.Title + "\n\n" + text, nil
}
