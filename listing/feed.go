package listing

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/mmcdole/gofeed"
	"github.com/pevans/newspulse/newslist"
)

// FeedSource collects news items from a single RSS or Atom feed. gofeed
// detects the format, so both are handled the same way.
type FeedSource struct {
	url    string
	host   string
	parser *gofeed.Parser
}

// NewFeedSource creates a source for the feed at feedURL. Relative item
// links are prefixed with host. A nil httpClient uses gofeed's default.
func NewFeedSource(feedURL, host string, httpClient *http.Client, userAgent string) *FeedSource {
	fp := gofeed.NewParser()
	if httpClient != nil {
		fp.Client = httpClient
	}
	if userAgent != "" {
		fp.UserAgent = userAgent
	}

	return &FeedSource{
		url:    feedURL,
		host:   host,
		parser: fp,
	}
}

// Fetch fetches and parses the feed and returns its items in feed order.
func (f *FeedSource) Fetch(ctx context.Context) ([]newslist.NewsItem, error) {
	feed, err := f.parser.ParseURLWithContext(f.url, ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to parse feed: %w", err)
	}
	return FeedItems(feed, f.host), nil
}

// FeedItems converts feed entries into news items. Entries with no title or
// no link are dropped.
func FeedItems(feed *gofeed.Feed, host string) []newslist.NewsItem {
	items := make([]newslist.NewsItem, 0, len(feed.Items))
	for _, item := range feed.Items {
		if item == nil || item.Title == "" || item.Link == "" {
			continue
		}

		items = append(items, newslist.NewsItem{
			Title: item.Title,
			URL:   resolveLink(item.Link, host),
		})
	}
	return items
}

// resolveLink keeps absolute links and prefixes relative ones with host.
func resolveLink(link, host string) string {
	if u, err := url.Parse(link); err == nil && u.IsAbs() {
		return link
	}
	return host + link
}
