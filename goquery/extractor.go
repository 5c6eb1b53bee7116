// Package goquery implements page profiling over the rendered DOM using goquery.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/sitelens"
)

// Ensure Extractor implements sitelens.Extractor at compile time.
var _ sitelens.Extractor = (*Extractor)(nil)

// Extractor builds page profiles from the extraction rules in this package.
// Extractor holds no mutable state and is safe for concurrent use.
type Extractor struct {
	languages sitelens.LanguageDetector
}

// ExtractorOption configures an Extractor.
type ExtractorOption func(*Extractor)

// WithLanguageDetector fills Profile.Language using d.
func WithLanguageDetector(d sitelens.LanguageDetector) ExtractorOption {
	return func(e *Extractor) {
		e.languages = d
	}
}

// NewExtractor creates a new Extractor.
func NewExtractor(opts ...ExtractorOption) *Extractor {
	e := &Extractor{}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract parses the page markup and applies every rule to it.
func (e *Extractor) Extract(page *sitelens.Page, url string) (*sitelens.Profile, error) {
	if page == nil {
		return nil, sitelens.Errorf(sitelens.EEXTRACT, "page required")
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(page.HTML))
	if err != nil {
		return nil, sitelens.WrapError(sitelens.EEXTRACT, err, "failed to parse page markup")
	}

	text := page.Text
	if text == "" {
		text = doc.Text()
	}

	profile := &sitelens.Profile{
		URL:             url,
		Name:            Name(doc),
		About:           About(doc),
		SourceType:      SourceType(url),
		Industry:        Industry(text),
		PageContentType: PageContentType(doc),
		Contact:         Contact(doc),
		Email:           Email(text),
		Title:           Title(doc),
		Description:     Description(doc),
		RawContent:      text,
	}
	if e.languages != nil {
		profile.Language = e.languages.DetectLanguage(text)
	}

	return profile, nil
}
