// Package gemini implements sitelens.LanguageModel and sitelens.TokenCounter
// on top of Google Gemini.
package gemini

import (
	"context"
	"errors"
	"net/http"

	"github.com/fwojciec/sitelens"
	"google.golang.org/genai"
)

// DefaultModel is the Gemini model used when none is configured.
const DefaultModel = "gemini-2.5-flash"

// DefaultTemperature matches the sampling temperature the answer prompts were
// tuned against.
const DefaultTemperature float32 = 0.7

var _ sitelens.LanguageModel = (*Model)(nil)

// Model implements sitelens.LanguageModel using the Gemini API.
type Model struct {
	client      *genai.Client
	model       string
	temperature float32
}

// Option configures a Model.
type Option func(*Model)

// WithModel selects the Gemini model name.
func WithModel(name string) Option {
	return func(m *Model) {
		if name != "" {
			m.model = name
		}
	}
}

// WithTemperature sets the sampling temperature.
func WithTemperature(t float32) Option {
	return func(m *Model) {
		m.temperature = t
	}
}

// NewModel creates a new Model.
func NewModel(client *genai.Client, opts ...Option) *Model {
	m := &Model{
		client:      client,
		model:       DefaultModel,
		temperature: DefaultTemperature,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Name returns the configured model name.
func (m *Model) Name() string {
	return m.model
}

// Complete sends prompt as a single user turn and returns the text response.
func (m *Model) Complete(ctx context.Context, prompt string) (string, error) {
	if prompt == "" {
		return "", sitelens.Errorf(sitelens.EINVALID, "prompt required")
	}

	result, err := m.client.Models.GenerateContent(ctx, m.model,
		[]*genai.Content{genai.NewContentFromText(prompt, genai.RoleUser)},
		BuildConfig(m.temperature),
	)
	if err != nil {
		return "", requestError(err)
	}
	if result == nil {
		return "", sitelens.Errorf(sitelens.EINTERNAL, "gemini returned nil result")
	}

	return result.Text(), nil
}

// requestError maps a failed call to ECONFIG when Gemini rejected the request
// itself (bad key, unknown model, malformed input) so it is not retried.
// Rate limiting and server errors stay EINTERNAL.
func requestError(err error) error {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) && apiErr.Code >= 400 && apiErr.Code < 500 && apiErr.Code != http.StatusTooManyRequests {
		return sitelens.WrapError(sitelens.ECONFIG, err, "gemini rejected request (HTTP %d)", apiErr.Code)
	}
	return sitelens.WrapError(sitelens.EINTERNAL, err, "gemini request failed")
}

// BuildConfig returns the GenerateContentConfig for Gemini API calls.
func BuildConfig(temperature float32) *genai.GenerateContentConfig {
	return &genai.GenerateContentConfig{
		Temperature: &temperature,
	}
}
