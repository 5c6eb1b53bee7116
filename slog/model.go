package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/sitelens"
)

var _ sitelens.LanguageModel = (*LoggingLanguageModel)(nil)

// LoggingLanguageModel wraps a LanguageModel with debug logging. Prompts are
// logged by size only.
type LoggingLanguageModel struct {
	next   sitelens.LanguageModel
	logger *slog.Logger
}

// NewLoggingLanguageModel creates a new LoggingLanguageModel.
func NewLoggingLanguageModel(next sitelens.LanguageModel, logger *slog.Logger) *LoggingLanguageModel {
	return &LoggingLanguageModel{next: next, logger: logger}
}

// Complete delegates to the wrapped model.
func (m *LoggingLanguageModel) Complete(ctx context.Context, prompt string) (out string, err error) {
	defer func(begin time.Time) {
		m.logger.Debug("complete",
			"prompt_bytes", len(prompt),
			"response_bytes", len(out),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return m.next.Complete(ctx, prompt)
}
