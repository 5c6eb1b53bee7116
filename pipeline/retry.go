package pipeline

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/sitelens"
)

// DefaultRetryDelays returns the backoff delays between model retries: 1s, 2s, 4s.
func DefaultRetryDelays() []time.Duration {
	return []time.Duration{1 * time.Second, 2 * time.Second, 4 * time.Second}
}

var _ sitelens.LanguageModel = (*RetryModel)(nil)

// RetryModel retries failed completions after each of Delays in turn.
// Client and configuration errors are returned immediately.
type RetryModel struct {
	Model  sitelens.LanguageModel
	Delays []time.Duration
	Logger *slog.Logger
}

// Complete calls the wrapped model up to len(Delays)+1 times.
func (m *RetryModel) Complete(ctx context.Context, prompt string) (string, error) {
	var lastErr error
	for attempt := 0; attempt <= len(m.Delays); attempt++ {
		out, err := m.Model.Complete(ctx, prompt)
		if err == nil {
			return out, nil
		}
		if !retryable(err) {
			return "", err
		}
		lastErr = err

		if attempt == len(m.Delays) {
			break
		}
		if m.Logger != nil {
			m.Logger.Warn("retrying model call", "attempt", attempt+2, "err", err)
		}

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(m.Delays[attempt]):
		}
	}
	return "", lastErr
}

// retryable reports whether another attempt could succeed. Bad input and
// configuration errors fail the same way every time.
func retryable(err error) bool {
	return !sitelens.IsClientError(err) && sitelens.ErrorCode(err) != sitelens.ECONFIG
}
