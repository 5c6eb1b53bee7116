package lingua_test

import (
	"testing"

	"github.com/fwojciec/sitelens/lingua"
	"github.com/stretchr/testify/assert"

	linguago "github.com/pemistahl/lingua-go"
)

func TestDetector_DetectLanguage(t *testing.T) {
	t.Parallel()

	d := lingua.NewDetector()

	tests := []struct {
		name string
		text string
		want string
	}{
		{"english", "We build small reusable rockets for research satellites and universities.", "English"},
		{"german", "Wir bauen kleine wiederverwendbare Raketen für Forschungssatelliten und Universitäten.", "German"},
		{"french", "Nous construisons de petites fusées réutilisables pour les satellites de recherche.", "French"},
		{"too short", "Hi", ""},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, d.DetectLanguage(tt.text))
		})
	}
}

func TestNewDetector_SingleLanguageJoinsDefaults(t *testing.T) {
	t.Parallel()

	d := lingua.NewDetector(linguago.Swedish)

	assert.Equal(t, "Swedish", d.DetectLanguage("Vi bygger små återanvändbara raketer för forskningssatelliter och universitet."))
	assert.Equal(t, "English", d.DetectLanguage("We build small reusable rockets for research satellites and universities."))
}
