package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/sitelens"
	"github.com/fwojciec/sitelens/fs"
	"github.com/fwojciec/sitelens/gemini"
	"github.com/fwojciec/sitelens/goquery"
	"github.com/fwojciec/sitelens/htmltomarkdown"
	slhttp "github.com/fwojciec/sitelens/http"
	"github.com/fwojciec/sitelens/lingua"
	"github.com/fwojciec/sitelens/pipeline"
	"github.com/fwojciec/sitelens/readability"
	"github.com/fwojciec/sitelens/rod"
	slslog "github.com/fwojciec/sitelens/slog"
	"github.com/fwojciec/sitelens/sqlite"
	"github.com/fwojciec/sitelens/trafilatura"
	"github.com/joho/godotenv"
	"google.golang.org/genai"
)

func main() {
	// A missing .env file is fine; the environment may already be set.
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run().
	DBPath string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Services for end-to-end testing.
	ProfileService   sitelens.ProfileService
	PromptLogService sitelens.PromptLogService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("sitelens"),
		kong.Description("Profile web pages and answer questions about them."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'sitelens --help' to see available commands")
	}

	if args[0] == "help" || args[0] == "--help" || args[0] == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	cmd := kongCtx.Selected().Name

	deps.Owner = cli.Owner
	deps.JSON = cli.JSON
	deps.Logger = newLogger(stderr, cli.Verbose)

	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set SITELENS_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	m.ProfileService = sqlite.NewProfileService(m.DB)
	m.PromptLogService = sqlite.NewPromptLogService(m.DB)
	deps.Profiles = m.ProfileService
	deps.PromptLogs = m.PromptLogService

	switch cmd {
	case "scrape":
		fetcher, err := newFetcher(cli.Scrape.FetchFlags, deps.Logger, stderr)
		if err != nil {
			return err
		}
		defer fetcher.Close()

		var opts []goquery.ExtractorOption
		if cli.Scrape.DetectLanguage {
			opts = append(opts, goquery.WithLanguageDetector(lingua.NewDetector()))
		}

		deps.Pipeline = &pipeline.Pipeline{
			Fetcher:     fetcher,
			Extractor:   goquery.NewExtractor(opts...),
			Profiles:    m.ProfileService,
			PromptLogs:  m.PromptLogService,
			RateLimiter: newRateLimiter(cli.Scrape.RateLimit),
			Snapshots:   newSnapshotStore(cli.Scrape.SaveHTML),
			Logger:      deps.Logger,
		}

	case "ask":
		model, err := newModel(ctx, cli.Ask.Retries, deps.Logger, stderr)
		if err != nil {
			return err
		}

		tokens, err := newTokenCounter(cli.Ask.Tokenizer)
		if err != nil {
			return err
		}

		fetcher, err := newFetcher(cli.Ask.FetchFlags, deps.Logger, stderr)
		if err != nil {
			return err
		}
		defer fetcher.Close()

		deps.Pipeline = &pipeline.Pipeline{
			Fetcher:       fetcher,
			Extractor:     goquery.NewExtractor(),
			Summarizer:    pipeline.NewSummarizer(model, pipeline.WithConcurrency(cli.Ask.Concurrency)),
			Composer:      pipeline.NewComposer(model, tokens),
			Profiles:      m.ProfileService,
			PromptLogs:    m.PromptLogService,
			TextExtractor: newTextExtractor(cli.Ask.Content),
			RateLimiter:   newRateLimiter(cli.Ask.RateLimit),
			Snapshots:     newSnapshotStore(cli.Ask.SaveHTML),
			Logger:        deps.Logger,
			ChunkSize:     cli.Ask.ChunkSize,
			ChunkOverlap:  cli.Ask.Overlap,
		}
	}

	return kongCtx.Run(deps)
}

// newLogger writes debug records to stderr when verbose and discards
// everything otherwise. Command errors are reported separately.
func newLogger(stderr io.Writer, verbose bool) *slog.Logger {
	if !verbose {
		return slog.New(slog.DiscardHandler)
	}
	return slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func newFetcher(flags FetchFlags, logger *slog.Logger, stderr io.Writer) (sitelens.Fetcher, error) {
	var fetcher sitelens.Fetcher
	if flags.Static {
		fetcher = slhttp.NewFetcher(slhttp.WithTimeout(flags.ReadyTimeout))
	} else {
		f, err := rod.NewFetcher(
			rod.WithReadyTimeout(flags.ReadyTimeout),
			rod.WithPoolSize(flags.Sessions),
		)
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed, or pass --static")
			return nil, fmt.Errorf("failed to start browser: %w", err)
		}
		fetcher = f
	}
	return slslog.NewLoggingFetcher(fetcher, logger), nil
}

func newRateLimiter(rps float64) sitelens.DomainLimiter {
	if rps <= 0 {
		return nil
	}
	return pipeline.NewDomainLimiter(rps)
}

func newSnapshotStore(dir string) sitelens.SnapshotStore {
	if dir == "" {
		return nil
	}
	return fs.NewSnapshotStore(dir)
}

func newModel(ctx context.Context, retries int, logger *slog.Logger, stderr io.Writer) (sitelens.LanguageModel, error) {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		fmt.Fprintln(stderr, "GEMINI_API_KEY environment variable not set. Get an API key at https://aistudio.google.com/apikey")
		return nil, fmt.Errorf("GEMINI_API_KEY not set. Get a key at https://aistudio.google.com/apikey")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		fmt.Fprintln(stderr, "Hint: Check your GEMINI_API_KEY is valid")
		return nil, fmt.Errorf("failed to connect to Gemini API: %w", err)
	}

	var model sitelens.LanguageModel = slslog.NewLoggingLanguageModel(
		gemini.NewModel(client, gemini.WithModel(os.Getenv("SITELENS_MODEL"))),
		logger,
	)
	if retries > 0 {
		delays := pipeline.DefaultRetryDelays()
		for len(delays) < retries {
			delays = append(delays, delays[len(delays)-1]*2)
		}
		model = &pipeline.RetryModel{Model: model, Delays: delays[:retries], Logger: logger}
	}
	return model, nil
}

func newTokenCounter(name string) (sitelens.TokenCounter, error) {
	if name != "gemini" {
		return sitelens.WordCounter{}, nil
	}
	tc, err := gemini.NewTokenCounter(os.Getenv("SITELENS_MODEL"))
	if err != nil {
		return nil, fmt.Errorf("failed to create token counter: %w", err)
	}
	return tc, nil
}

// newTextExtractor returns nil for "raw", which keeps the fetcher's visible text.
func newTextExtractor(content string) sitelens.TextExtractor {
	switch content {
	case "readability":
		return readability.NewTextExtractor()
	case "trafilatura":
		return trafilatura.NewTextExtractor()
	case "markdown":
		return htmltomarkdown.NewTextExtractor()
	}
	return nil
}

func defaultDBPath() string {
	if path := os.Getenv("SITELENS_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "sitelens.db"
	}
	dir := filepath.Join(home, ".sitelens")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "sitelens.db")
}
