package main

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"github.com/pevans/newspulse"
	"github.com/pevans/newspulse/article"
	"github.com/pevans/newspulse/classify"
	"github.com/pevans/newspulse/config"
	"github.com/pevans/newspulse/listing"
	"github.com/pevans/newspulse/logger"
	"github.com/pevans/newspulse/newslist"
	"github.com/pevans/newspulse/results"
)

func main() {
	if err := run(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run collects article URLs and then analyzes every collected article.
func run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	log, err := logger.New(cfg.Logging.Level)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer log.Sync()

	httpClient := &http.Client{Timeout: cfg.HTTP.Timeout}

	list, err := newslist.NewStore(cfg.Storage.URLs.DSN)
	if err != nil {
		return fmt.Errorf("failed to open news list: %w", err)
	}

	store, err := results.Open(cfg.Storage.Results)
	if err != nil {
		return fmt.Errorf("failed to open results store: %w", err)
	}
	defer store.Close()

	gen, closeGen, err := newGenerator(ctx, cfg.Classifier, httpClient)
	if err != nil {
		return err
	}
	defer closeGen()

	classifier, err := classify.New(gen, cfg.Prompts)
	if err != nil {
		return err
	}

	collector := newspulse.NewCollector(
		list,
		listing.NewClient(cfg.Listing.BaseURL, httpClient, cfg.HTTP.UserAgent),
		listing.NewFeedSource(cfg.Listing.FeedURL, cfg.Listing.Host, httpClient, cfg.HTTP.UserAgent),
		cfg.Listing,
		os.Stdout,
		log,
	)

	selectors := article.Selectors{
		Title:   cfg.Article.TitleSelector,
		Content: cfg.Article.ContentSelector,
	}
	scraper := article.NewScraper(httpClient, cfg.HTTP.UserAgent, selectors, log)

	analyzer := newspulse.NewAnalyzer(list, store, scraper, classifier, os.Stdout, log)

	log.Info("Starting run",
		logger.String("listing", cfg.Listing.Type),
		logger.String("backend", cfg.Classifier.Backend),
		logger.String("model", cfg.Classifier.Model),
	)

	fmt.Println("Extracting news URLs...")
	if err := collector.Run(ctx); err != nil {
		return err
	}

	fmt.Println("Analyzing news articles...")
	if err := analyzer.AnalyzeAll(ctx); err != nil {
		return err
	}

	fmt.Println("Done.")
	return nil
}

// newGenerator returns the configured text-generation backend and a function
// that releases it.
func newGenerator(ctx context.Context, cfg config.ClassifierConfig, httpClient *http.Client) (classify.Generator, func() error, error) {
	switch cfg.Backend {
	case "gemini":
		gen, err := classify.NewGeminiGenerator(ctx, cfg)
		if err != nil {
			return nil, nil, err
		}
		return gen, gen.Close, nil
	case "ollama":
		return classify.NewOllamaGenerator(cfg, httpClient), func() error { return nil }, nil
	default:
		return nil, nil, fmt.Errorf("%w: %q", config.ErrUnknownBackend, cfg.Backend)
	}
}
