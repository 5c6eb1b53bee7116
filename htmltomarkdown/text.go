// Package htmltomarkdown renders page markup as Markdown, keeping headings,
// lists and tables visible to the language model.
package htmltomarkdown

import (
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/fwojciec/sitelens"
)

var _ sitelens.TextExtractor = (*TextExtractor)(nil)

// TextExtractor converts the whole page to Markdown.
type TextExtractor struct {
	conv *converter.Converter
}

// NewTextExtractor creates a new TextExtractor.
func NewTextExtractor() *TextExtractor {
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
			table.NewTablePlugin(),
		),
	)
	return &TextExtractor{conv: conv}
}

// ExtractText returns html as Markdown. Scripts and styles are dropped by
// the base plugin.
func (e *TextExtractor) ExtractText(html string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", sitelens.Errorf(sitelens.EINVALID, "empty HTML input")
	}

	md, err := e.conv.ConvertString(html)
	if err != nil {
		return "", sitelens.WrapError(sitelens.EEXTRACT, err, "markdown conversion failed")
	}
	return md, nil
}
