package newspulse

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/pevans/newspulse/classify"
	"github.com/pevans/newspulse/logger"
	"github.com/pevans/newspulse/results"
)

// ArticleScraper reads an article's title and body text. Each call fetches
// the page.
type ArticleScraper interface {
	Title(ctx context.Context, url string) (string, error)
	Content(ctx context.Context, url string) (string, error)
}

// Classifier labels an article. Failures are reported in the result, not
// returned.
type Classifier interface {
	Classify(ctx context.Context, title, content string) classify.Result
}

// Analyzer classifies every article in the URL list and appends one result
// per article.
type Analyzer struct {
	list       URLList
	store      results.Store
	scraper    ArticleScraper
	classifier Classifier
	out        io.Writer
	log        logger.Logger
}

// NewAnalyzer creates an analyzer.
func NewAnalyzer(
	list URLList,
	store results.Store,
	scraper ArticleScraper,
	classifier Classifier,
	out io.Writer,
	log logger.Logger,
) *Analyzer {
	return &Analyzer{
		list:       list,
		store:      store,
		scraper:    scraper,
		classifier: classifier,
		out:        out,
		log:        log,
	}
}

// AnalyzeAll analyzes the URL list in order, writing each result before
// moving on. A failed article fetch or result write stops the run; results
// already written are kept.
func (a *Analyzer) AnalyzeAll(ctx context.Context) error {
	items, err := a.list.Load()
	if err != nil {
		return fmt.Errorf("failed to load news list: %w", err)
	}

	total := len(items)
	fmt.Fprintf(a.out, "Total news : %d\n", total)

	for i, item := range items {
		fmt.Fprintln(a.out, strings.Repeat("*", 46))

		result, err := a.AnalyzeOne(ctx, item.URL)
		if err != nil {
			return err
		}

		if err := a.store.Append(result); err != nil {
			return fmt.Errorf("failed to write result for %s: %w", item.URL, err)
		}

		fmt.Fprintf(a.out, "Currently completed : %d out of %d\n", i+1, total)
	}

	a.log.Info("Analysis finished", logger.Int("articles", total))

	return nil
}

// AnalyzeOne scrapes and classifies a single article. Only fetch errors are
// returned; a classification failure yields "None" for both labels.
func (a *Analyzer) AnalyzeOne(ctx context.Context, url string) (results.Result, error) {
	title, err := a.scraper.Title(ctx, url)
	if err != nil {
		return results.Result{}, fmt.Errorf("failed to fetch title of %s: %w", url, err)
	}

	content, err := a.scraper.Content(ctx, url)
	if err != nil {
		return results.Result{}, fmt.Errorf("failed to fetch content of %s: %w", url, err)
	}

	label := a.classifier.Classify(ctx, title, content)
	if label.Err != nil {
		a.log.Warn("Classification failed",
			logger.String("url", url),
			logger.Error(label.Err),
		)
	}

	block := strings.Repeat("-", 46)
	fmt.Fprintln(a.out, block)
	fmt.Fprintf(a.out, "Title : %s\n", title)
	fmt.Fprintf(a.out, "Content : %s\n", content)
	fmt.Fprintf(a.out, "Primary response : %s\n", label.Primary)
	fmt.Fprintf(a.out, "Sub response : %s\n", label.SubCategory)
	fmt.Fprintln(a.out, block)

	return results.Result{
		Title:        title,
		URL:          url,
		PrimaryLabel: label.Primary,
		SubCategory:  label.SubCategory,
	}, nil
}
