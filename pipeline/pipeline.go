package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/sitelens"
)

// Pipeline runs the scrape and answer flows. Fetcher, Extractor, Summarizer,
// Composer, Profiles and PromptLogs are required; the rest are optional.
type Pipeline struct {
	Fetcher    sitelens.Fetcher
	Extractor  sitelens.Extractor
	Summarizer sitelens.Summarizer
	Composer   sitelens.Composer
	Profiles   sitelens.ProfileService
	PromptLogs sitelens.PromptLogService

	// TextExtractor, if set, derives answer text from the page markup
	// instead of using the fetcher's visible text.
	TextExtractor sitelens.TextExtractor
	RateLimiter   sitelens.DomainLimiter

	// Snapshots, if set, receives every fetched page. Save failures are
	// logged and do not fail the request.
	Snapshots sitelens.SnapshotStore
	Logger    *slog.Logger

	// Both zero selects sitelens.DefaultChunkSize and DefaultChunkOverlap.
	ChunkSize    int
	ChunkOverlap int
}

// Scrape fetches the requested page, extracts its profile and stores it.
func (p *Pipeline) Scrape(ctx context.Context, req sitelens.ScrapeRequest) (*sitelens.ProfileRecord, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	page, err := p.fetch(ctx, req.URL)
	if err != nil {
		return nil, p.fail("scrape", req.URL, err)
	}

	profile, err := p.Extractor.Extract(page, req.URL)
	if err != nil {
		return nil, p.fail("scrape", req.URL, err)
	}

	rec := &sitelens.ProfileRecord{
		OwnerID:     req.OwnerID,
		Profile:     *profile,
		ContentHash: ContentHash(profile.RawContent),
	}
	if err := p.Profiles.CreateProfile(ctx, rec); err != nil {
		return nil, p.fail("scrape", req.URL, sitelens.WrapError(sitelens.EINTERNAL, err, "failed to store profile"))
	}

	p.logger().Debug("scraped", "url", req.URL, "id", rec.ID, "type", profile.PageContentType)
	return rec, nil
}

// Answer fetches the requested page, summarizes its text, answers the prompt
// from the summary and stores the exchange. The stored prompt log keeps the
// raw model output; the returned answer carries the prefixed response.
func (p *Pipeline) Answer(ctx context.Context, req sitelens.AnswerRequest) (*sitelens.Answer, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	page, err := p.fetch(ctx, req.URL)
	if err != nil {
		return nil, p.fail("answer", req.URL, err)
	}

	text, err := p.text(page)
	if err != nil {
		return nil, p.fail("answer", req.URL, err)
	}

	chunks, err := sitelens.SplitText(text, p.chunkSize(), p.chunkOverlap())
	if err != nil {
		return nil, p.fail("answer", req.URL, err)
	}

	summary, err := p.Summarizer.Summarize(ctx, chunks)
	if err != nil {
		return nil, p.fail("answer", req.URL, err)
	}

	answer, err := p.Composer.Compose(ctx, summary.Text, req.Prompt)
	if err != nil {
		return nil, p.fail("answer", req.URL, err)
	}

	log := &sitelens.PromptLog{
		OwnerID:      req.OwnerID,
		URL:          req.URL,
		Prompt:       req.Prompt,
		Response:     answer.Raw,
		InputTokens:  answer.InputTokens,
		OutputTokens: answer.OutputTokens,
	}
	if err := p.PromptLogs.CreatePromptLog(ctx, log); err != nil {
		return nil, p.fail("answer", req.URL, sitelens.WrapError(sitelens.EINTERNAL, err, "failed to store answer"))
	}

	p.logger().Debug("answered", "url", req.URL, "chunks", len(chunks),
		"input_tokens", answer.InputTokens, "output_tokens", answer.OutputTokens)
	answer.LogID = log.ID
	return answer, nil
}

// ContentHash returns the hex xxhash of content.
func ContentHash(content string) string {
	return fmt.Sprintf("%016x", xxhash.Sum64String(content))
}

func (p *Pipeline) fetch(ctx context.Context, rawURL string) (*sitelens.Page, error) {
	if err := sitelens.ValidateURL(rawURL); err != nil {
		return nil, err
	}

	if p.RateLimiter != nil {
		u, err := url.Parse(rawURL)
		if err != nil {
			return nil, sitelens.WrapError(sitelens.EINVALIDURL, err, "invalid url %q", rawURL)
		}
		if err := p.RateLimiter.Wait(ctx, u.Host); err != nil {
			if errors.Is(err, context.DeadlineExceeded) {
				return nil, sitelens.WrapError(sitelens.ETIMEOUT, err, "timed out waiting to fetch %s", rawURL)
			}
			return nil, sitelens.WrapError(sitelens.EFETCH, err, "failed waiting to fetch %s", rawURL)
		}
	}

	page, err := p.Fetcher.Fetch(ctx, rawURL)
	if err != nil {
		return nil, err
	}

	if p.Snapshots != nil {
		path, err := p.Snapshots.SaveSnapshot(ctx, page)
		if err != nil {
			p.logger().Warn("snapshot failed", "url", rawURL, "err", err)
		} else {
			p.logger().Debug("snapshot saved", "url", rawURL, "path", path)
		}
	}
	return page, nil
}

func (p *Pipeline) text(page *sitelens.Page) (string, error) {
	if p.TextExtractor == nil {
		return page.Text, nil
	}
	text, err := p.TextExtractor.ExtractText(page.HTML)
	if err != nil {
		return "", sitelens.WrapError(sitelens.EEXTRACT, err, "failed to extract text from %s", page.URL)
	}
	return text, nil
}

// fail logs err with its full cause chain and returns a copy that carries
// only the code and message.
func (p *Pipeline) fail(op, rawURL string, err error) error {
	p.logger().Error(op+" failed", "url", rawURL, "err", err)

	var e *sitelens.Error
	if !errors.As(err, &e) {
		return sitelens.Errorf(sitelens.EINTERNAL, "Internal error.")
	}
	return sitelens.Errorf(e.Code, "%s", e.Message)
}

func (p *Pipeline) logger() *slog.Logger {
	if p.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return p.Logger
}

func (p *Pipeline) chunkSize() int {
	if p.ChunkSize == 0 {
		return sitelens.DefaultChunkSize
	}
	return p.ChunkSize
}

func (p *Pipeline) chunkOverlap() int {
	if p.ChunkOverlap == 0 && p.ChunkSize == 0 {
		return sitelens.DefaultChunkOverlap
	}
	return p.ChunkOverlap
}
