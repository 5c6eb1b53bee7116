package mock

import (
	"context"

	"github.com/fwojciec/sitelens"
)

var _ sitelens.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of sitelens.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (*sitelens.Page, error)
	CloseFn func() error
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (*sitelens.Page, error) {
	return f.FetchFn(ctx, url)
}

func (f *Fetcher) Close() error {
	return f.CloseFn()
}

var _ sitelens.TextExtractor = (*TextExtractor)(nil)

// TextExtractor is a mock implementation of sitelens.TextExtractor.
type TextExtractor struct {
	ExtractTextFn func(html string) (string, error)
}

func (e *TextExtractor) ExtractText(html string) (string, error) {
	return e.ExtractTextFn(html)
}

var _ sitelens.DomainLimiter = (*DomainLimiter)(nil)

// DomainLimiter is a mock implementation of sitelens.DomainLimiter.
type DomainLimiter struct {
	WaitFn func(ctx context.Context, domain string) error
}

func (l *DomainLimiter) Wait(ctx context.Context, domain string) error {
	return l.WaitFn(ctx, domain)
}

var _ sitelens.SnapshotStore = (*SnapshotStore)(nil)

// SnapshotStore is a mock implementation of sitelens.SnapshotStore.
type SnapshotStore struct {
	SaveSnapshotFn func(ctx context.Context, page *sitelens.Page) (string, error)
}

func (s *SnapshotStore) SaveSnapshot(ctx context.Context, page *sitelens.Page) (string, error) {
	return s.SaveSnapshotFn(ctx, page)
}
