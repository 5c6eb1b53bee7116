package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/sitelens"
	"github.com/fwojciec/sitelens/pipeline"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx        context.Context
	Stdout     io.Writer
	Stderr     io.Writer
	Logger     *slog.Logger
	Owner      string
	JSON       bool
	Pipeline   *pipeline.Pipeline
	Profiles   sitelens.ProfileService
	PromptLogs sitelens.PromptLogService
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Owner   string `default:"local" env:"SITELENS_OWNER" help:"Owner ID recorded with results"`
	JSON    bool   `help:"Print results as JSON"`
	Verbose bool   `short:"v" help:"Log fetches and model calls to stderr"`

	Scrape  ScrapeCmd  `cmd:"" help:"Fetch a page and extract its profile"`
	Ask     AskCmd     `cmd:"" help:"Answer a question about a page"`
	History HistoryCmd `cmd:"" help:"List stored page profiles"`
	Prompts PromptsCmd `cmd:"" help:"List stored answers"`
}

// FetchFlags configures page acquisition for scrape and ask.
type FetchFlags struct {
	Static       bool          `help:"Fetch with plain HTTP instead of a headless browser"`
	ReadyTimeout time.Duration `default:"10s" help:"How long to wait for the page body"`
	Sessions     int           `default:"1" help:"Browser tabs allowed to navigate at once"`
	RateLimit    float64       `default:"1" help:"Requests per second per domain (0 disables)"`
	SaveHTML     string        `type:"path" help:"Write fetched HTML under this directory"`
}

// ScrapeCmd is the "scrape" subcommand.
type ScrapeCmd struct {
	URL string `arg:"" help:"Page URL"`

	FetchFlags     `embed:""`
	DetectLanguage bool `default:"true" negatable:"" help:"Detect the language of the page text"`
}

// AskCmd is the "ask" subcommand.
type AskCmd struct {
	URL    string `arg:"" help:"Page URL"`
	Prompt string `arg:"" help:"Question about the page"`

	FetchFlags  `embed:""`
	ChunkSize   int    `default:"1000" help:"Characters per chunk"`
	Overlap     int    `default:"200" help:"Characters shared by adjacent chunks"`
	Concurrency int    `short:"c" default:"4" help:"Concurrent chunk summaries"`
	Content     string `default:"raw" enum:"raw,readability,trafilatura,markdown" help:"Page text fed to the summarizer (raw, readability, trafilatura, markdown)"`
	Tokenizer   string `default:"words" enum:"words,gemini" help:"Token accounting (words, gemini)"`
	Retries     int    `default:"3" help:"Retries for failed model calls"`
}

// HistoryCmd is the "history" subcommand.
type HistoryCmd struct {
	URL   string `help:"Only show profiles for this URL"`
	Limit int    `short:"n" default:"20" help:"Maximum number of profiles"`
}

// PromptsCmd is the "prompts" subcommand.
type PromptsCmd struct {
	URL   string `help:"Only show answers for this URL"`
	Limit int    `short:"n" default:"20" help:"Maximum number of answers"`
}
