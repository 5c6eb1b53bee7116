package sitelens

import "context"

// Page is a rendered web page snapshot.
// Each call to Fetch produces its own Page; pages are never shared between calls.
type Page struct {
	URL  string
	HTML string // Rendered markup after scripts ran
	Text string // Visible text
}

// Fetcher retrieves rendered pages.
// Implementations may use browser automation to handle JavaScript-rendered content.
type Fetcher interface {
	// Fetch navigates to the URL, waits until the document body is present,
	// and returns the rendered page.
	//
	// Returns EINVALIDURL if url is not a valid http(s) URL, ETIMEOUT if the
	// page does not become ready within the readiness wait, and EFETCH for
	// any other navigation failure.
	Fetch(ctx context.Context, url string) (*Page, error)

	// Close releases browser resources.
	// Must be called when the Fetcher is no longer needed.
	Close() error
}

// TextExtractor reduces rendered HTML to the text handed to the summarizer.
type TextExtractor interface {
	ExtractText(html string) (string, error)
}

// DomainLimiter provides per-domain rate limiting.
type DomainLimiter interface {
	// Wait blocks until the rate limit allows a request to the domain.
	// Returns an error if the context is canceled.
	Wait(ctx context.Context, domain string) error
}

// SnapshotStore keeps copies of fetched pages for later inspection.
type SnapshotStore interface {
	// SaveSnapshot stores page and returns the location it was written to.
	SaveSnapshot(ctx context.Context, page *Page) (string, error)
}
