// Package newspulse collects news article URLs from a listing source and
// analyzes each article's likely effect on a reader with a language model.
package newspulse

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/pevans/newspulse/config"
	"github.com/pevans/newspulse/listing"
	"github.com/pevans/newspulse/logger"
	"github.com/pevans/newspulse/newslist"
)

var separator = strings.Repeat("-", 50)

// URLList is the persisted list of collected articles.
type URLList interface {
	Reset() error
	Append(items []newslist.NewsItem) error
	Load() ([]newslist.NewsItem, error)
}

// PageFetcher fetches one page of the paged listing API.
type PageFetcher interface {
	FetchPage(ctx context.Context, categoryID, page, pageSize int) ([]listing.RawItem, error)
}

// FeedFetcher fetches every item of an RSS or Atom feed.
type FeedFetcher interface {
	Fetch(ctx context.Context) ([]newslist.NewsItem, error)
}

// Collector rebuilds the URL list from the configured listing source.
type Collector struct {
	list  URLList
	pages PageFetcher
	feed  FeedFetcher
	cfg   config.ListingConfig
	out   io.Writer
	log   logger.Logger
}

// NewCollector creates a collector. feed may be nil unless cfg.Type is
// "feed", and pages may be nil when it is.
func NewCollector(
	list URLList,
	pages PageFetcher,
	feed FeedFetcher,
	cfg config.ListingConfig,
	out io.Writer,
	log logger.Logger,
) *Collector {
	return &Collector{
		list:  list,
		pages: pages,
		feed:  feed,
		cfg:   cfg,
		out:   out,
		log:   log,
	}
}

// Run collects from the paged API or from the feed depending on the listing
// type.
func (c *Collector) Run(ctx context.Context) error {
	if c.cfg.Type == "feed" {
		return c.CollectFeed(ctx)
	}
	return c.Collect(ctx)
}

// Collect truncates the URL list and then walks pages 0 through Pages-1 of
// the listing API, appending each page's items as soon as it is extracted.
// A page that cannot be fetched is logged and treated as empty; only list
// file errors stop collection.
func (c *Collector) Collect(ctx context.Context) error {
	fmt.Fprintf(c.out, "Starting the process with %d news per time\n", c.cfg.PageSize)

	if err := c.list.Reset(); err != nil {
		return fmt.Errorf("failed to reset news list: %w", err)
	}

	total := 0
	for page := range c.cfg.Pages {
		raw, err := c.pages.FetchPage(ctx, c.cfg.CategoryID, page, c.cfg.PageSize)
		if err != nil {
			c.log.Error("Error fetching data",
				logger.Int("page", page),
				logger.Error(err),
			)
			raw = nil
		} else {
			fmt.Fprintf(c.out, "Got %d news\n", len(raw))
		}

		items := listing.ExtractItems(raw, c.cfg.Host)
		for _, item := range items {
			fmt.Fprintf(c.out, "Extracted : %s\n", item.Title)
		}

		if err := c.list.Append(items); err != nil {
			return fmt.Errorf("failed to write page %d: %w", page, err)
		}

		total += len(items)
		fmt.Fprintln(c.out, separator)
		fmt.Fprintf(c.out, "Current page: %d\n", page+1)
		fmt.Fprintf(c.out, "Total news extracted: %d\n", total)
	}

	c.log.Info("Collection finished",
		logger.Int("pages", c.cfg.Pages),
		logger.Int("items", total),
	)

	return nil
}

// CollectFeed truncates the URL list and fills it from a single feed. A feed
// that cannot be fetched is logged and leaves the list empty.
func (c *Collector) CollectFeed(ctx context.Context) error {
	if err := c.list.Reset(); err != nil {
		return fmt.Errorf("failed to reset news list: %w", err)
	}

	items, err := c.feed.Fetch(ctx)
	if err != nil {
		c.log.Error("Error fetching feed",
			logger.String("feed_url", c.cfg.FeedURL),
			logger.Error(err),
		)
		items = nil
	} else {
		fmt.Fprintf(c.out, "Got %d news\n", len(items))
	}

	for _, item := range items {
		fmt.Fprintf(c.out, "Extracted : %s\n", item.Title)
	}

	if err := c.list.Append(items); err != nil {
		return fmt.Errorf("failed to write feed items: %w", err)
	}

	fmt.Fprintln(c.out, separator)
	fmt.Fprintf(c.out, "Total news extracted: %d\n", len(items))

	return nil
}
