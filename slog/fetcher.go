// Package slog provides log/slog decorators for sitelens services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/sitelens"
)

var _ sitelens.Fetcher = (*LoggingFetcher)(nil)

// LoggingFetcher wraps a Fetcher with per-request logging.
type LoggingFetcher struct {
	next   sitelens.Fetcher
	logger *slog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher.
func NewLoggingFetcher(next sitelens.Fetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// Fetch logs the URL, markup size, text size and duration of each fetch.
func (f *LoggingFetcher) Fetch(ctx context.Context, url string) (page *sitelens.Page, err error) {
	defer func(begin time.Time) {
		var html, text int
		if page != nil {
			html, text = len(page.HTML), len(page.Text)
		}
		f.logger.Info("fetch",
			"url", url,
			"bytes", html,
			"text_bytes", text,
			"duration", time.Since(begin),
			"code", sitelens.ErrorCode(err),
			"err", err,
		)
	}(time.Now())
	return f.next.Fetch(ctx, url)
}

// Close delegates to the wrapped fetcher.
func (f *LoggingFetcher) Close() error {
	return f.next.Close()
}
