// Package trafilatura reduces a page to its main content text with
// go-trafilatura.
package trafilatura

import (
	"strings"

	"github.com/fwojciec/sitelens"
	"github.com/markusmobius/go-trafilatura"
)

var _ sitelens.TextExtractor = (*TextExtractor)(nil)

// TextExtractor keeps the main content of a page, falling back to
// readability and domdistiller heuristics when trafilatura finds little.
type TextExtractor struct {
	opts trafilatura.Options
}

// NewTextExtractor creates a new TextExtractor.
func NewTextExtractor() *TextExtractor {
	return &TextExtractor{
		opts: trafilatura.Options{
			EnableFallback: true,
		},
	}
}

// ExtractText returns the plain text of the page's main content.
func (e *TextExtractor) ExtractText(html string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", sitelens.Errorf(sitelens.EINVALID, "empty HTML input")
	}

	result, err := trafilatura.Extract(strings.NewReader(html), e.opts)
	if err != nil {
		return "", sitelens.WrapError(sitelens.EEXTRACT, err, "trafilatura failed")
	}

	return strings.TrimSpace(result.ContentText), nil
}
