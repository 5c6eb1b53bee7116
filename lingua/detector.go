// Package lingua implements sitelens.LanguageDetector with lingua-go.
package lingua

import (
	"slices"
	"strings"

	"github.com/fwojciec/sitelens"
	"github.com/pemistahl/lingua-go"
)

// DefaultLanguages are the candidate languages when none are configured.
// Restricting the set keeps model loading fast and memory bounded.
var DefaultLanguages = []lingua.Language{
	lingua.English,
	lingua.German,
	lingua.French,
	lingua.Spanish,
	lingua.Italian,
	lingua.Portuguese,
	lingua.Dutch,
	lingua.Polish,
}

// minTextLength is the shortest text worth classifying.
const minTextLength = 20

var _ sitelens.LanguageDetector = (*Detector)(nil)

// Detector names the language of page text. It is safe for concurrent use.
type Detector struct {
	detector lingua.LanguageDetector
}

// NewDetector builds a detector over languages, or DefaultLanguages when
// none are given. Detection needs at least two candidates, so a single
// language is added to DefaultLanguages.
func NewDetector(languages ...lingua.Language) *Detector {
	switch len(languages) {
	case 0:
		languages = DefaultLanguages
	case 1:
		languages = withDefaults(languages[0])
	}
	d := lingua.NewLanguageDetectorBuilder().
		FromLanguages(languages...).
		WithLowAccuracyMode().
		Build()
	return &Detector{detector: d}
}

// DetectLanguage returns the English name of the language, such as
// "English", or "" when text is too short or ambiguous.
func (d *Detector) DetectLanguage(text string) string {
	text = strings.TrimSpace(text)
	if len(text) < minTextLength {
		return ""
	}
	lang, ok := d.detector.DetectLanguageOf(text)
	if !ok {
		return ""
	}
	return lang.String()
}

func withDefaults(lang lingua.Language) []lingua.Language {
	if slices.Contains(DefaultLanguages, lang) {
		return DefaultLanguages
	}
	return append(slices.Clone(DefaultLanguages), lang)
}
