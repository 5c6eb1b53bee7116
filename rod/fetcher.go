package rod

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	"github.com/fwojciec/sitelens"
)

// DefaultReadyTimeout bounds the wait for the page body to appear.
const DefaultReadyTimeout = 10 * time.Second

var _ sitelens.Fetcher = (*Fetcher)(nil)

// Fetcher renders pages in headless Chrome. Navigations are funneled through a
// SessionPool, so with the default pool size at most one is in flight.
// Fetcher is safe for concurrent use by multiple goroutines.
type Fetcher struct {
	manager      *BrowserManager
	pool         *SessionPool
	readyTimeout time.Duration
	poolSize     int
	maxPages     int64
	closed       atomic.Bool
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithReadyTimeout sets how long Fetch waits for the body element.
func WithReadyTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.readyTimeout = d
	}
}

// WithPoolSize sets how many tabs may navigate concurrently.
func WithPoolSize(n int) Option {
	return func(f *Fetcher) {
		f.poolSize = n
	}
}

// WithMaxPages sets how many tabs are served before Chrome is relaunched.
func WithMaxPages(n int64) Option {
	return func(f *Fetcher) {
		f.maxPages = n
	}
}

// NewFetcher launches a headless browser. Close must be called when the
// Fetcher is no longer needed.
//
// Returns an error if Chrome/Chromium cannot be found or launched.
func NewFetcher(opts ...Option) (*Fetcher, error) {
	f := &Fetcher{
		readyTimeout: DefaultReadyTimeout,
		poolSize:     DefaultPoolSize,
		maxPages:     DefaultMaxPages,
	}
	for _, opt := range opts {
		opt(f)
	}

	manager, err := NewBrowserManager(f.maxPages)
	if err != nil {
		return nil, err
	}
	f.manager = manager
	f.pool = NewSessionPool(manager, f.poolSize)
	return f, nil
}

// Fetch navigates a fresh tab to url and returns the rendered markup and the
// visible text of the body once the page has loaded and the body element is
// present.
func (f *Fetcher) Fetch(ctx context.Context, url string) (*sitelens.Page, error) {
	if err := sitelens.ValidateURL(url); err != nil {
		return nil, err
	}
	if f.closed.Load() {
		return nil, sitelens.Errorf(sitelens.EINVALID, "fetcher closed")
	}

	sess, err := f.pool.Acquire(ctx)
	if err != nil {
		return nil, fetchError(err, url)
	}
	defer sess.Release()

	page := sess.Page.Context(ctx)
	if err := page.Navigate(url); err != nil {
		return nil, fetchError(err, url)
	}

	// The load event and the body share one readiness budget.
	ready := page.Timeout(f.readyTimeout)
	if err := ready.WaitLoad(); err != nil {
		return nil, f.notReady(err, url)
	}
	body, err := ready.Element("body")
	if err != nil {
		return nil, f.notReady(err, url)
	}
	body = body.CancelTimeout()

	html, err := page.HTML()
	if err != nil {
		return nil, fetchError(err, url)
	}
	text, err := body.Text()
	if err != nil {
		return nil, fetchError(err, url)
	}

	return &sitelens.Page{URL: url, HTML: html, Text: text}, nil
}

// Close releases browser resources. Close is safe to call multiple times.
func (f *Fetcher) Close() error {
	if !f.closed.CompareAndSwap(false, true) {
		return nil
	}
	return f.manager.Close()
}

func (f *Fetcher) notReady(err error, url string) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return sitelens.WrapError(sitelens.ETIMEOUT, err, "page %s not ready within %s", url, f.readyTimeout)
	}
	return fetchError(err, url)
}

func fetchError(err error, url string) error {
	var appErr *sitelens.Error
	if errors.As(err, &appErr) {
		return err
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return sitelens.WrapError(sitelens.ETIMEOUT, err, "timed out fetching %s", url)
	}
	return sitelens.WrapError(sitelens.EFETCH, err, "failed to fetch %s", url)
}
