package mock

import "github.com/fwojciec/sitelens"

var _ sitelens.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of sitelens.Extractor.
type Extractor struct {
	ExtractFn func(page *sitelens.Page, url string) (*sitelens.Profile, error)
}

func (e *Extractor) Extract(page *sitelens.Page, url string) (*sitelens.Profile, error) {
	return e.ExtractFn(page, url)
}

var _ sitelens.LanguageDetector = (*LanguageDetector)(nil)

// LanguageDetector is a mock implementation of sitelens.LanguageDetector.
type LanguageDetector struct {
	DetectLanguageFn func(text string) string
}

func (d *LanguageDetector) DetectLanguage(text string) string {
	return d.DetectLanguageFn(text)
}
