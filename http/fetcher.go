// Package http provides a static implementation of sitelens.Fetcher for pages
// that render without JavaScript.
package http

import (
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/sitelens"
	"golang.org/x/net/html/charset"
)

// DefaultTimeout matches rod.DefaultReadyTimeout.
const DefaultTimeout = 10 * time.Second

var _ sitelens.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves pages with plain HTTP GET requests. Unlike rod.Fetcher it
// does not execute JavaScript, so Text reflects the markup as served.
type Fetcher struct {
	client  *http.Client
	timeout time.Duration
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultTimeout (10s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout: DefaultTimeout,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}

	return f
}

// Fetch retrieves url and derives its visible text.
func (f *Fetcher) Fetch(ctx context.Context, url string) (*sitelens.Page, error) {
	if err := sitelens.ValidateURL(url); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, sitelens.WrapError(sitelens.EINVALIDURL, err, "invalid url %s", url)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, requestError(err, url)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, sitelens.Errorf(sitelens.EFETCH, "HTTP %d for %s", resp.StatusCode, url)
	}

	// Pages are decoded to UTF-8 using the Content-Type charset or a <meta> hint.
	r, err := charset.NewReader(resp.Body, resp.Header.Get("Content-Type"))
	if err != nil {
		return nil, sitelens.WrapError(sitelens.EFETCH, err, "unsupported charset for %s", url)
	}

	body, err := io.ReadAll(r)
	if err != nil {
		return nil, requestError(err, url)
	}

	html := string(body)
	text, err := visibleText(html)
	if err != nil {
		return nil, sitelens.WrapError(sitelens.EFETCH, err, "failed to read markup from %s", url)
	}

	return &sitelens.Page{URL: url, HTML: html, Text: text}, nil
}

// Close is a no-op; http.Client needs no explicit cleanup.
func (f *Fetcher) Close() error {
	return nil
}

func requestError(err error, url string) error {
	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		return sitelens.WrapError(sitelens.ETIMEOUT, err, "timed out fetching %s", url)
	}
	return sitelens.WrapError(sitelens.EFETCH, err, "failed to fetch %s", url)
}

// visibleText approximates what a browser would show: body text with scripts
// and styles removed and whitespace collapsed.
func visibleText(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", err
	}
	doc.Find("script, style, noscript, template").Remove()

	sel := doc.Find("body")
	if sel.Length() == 0 {
		sel = doc.Selection
	}
	return strings.Join(strings.Fields(sel.Text()), " "), nil
}
