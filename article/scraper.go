// Package article fetches article pages and extracts their title and body
// text.
package article

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/pevans/newspulse/logger"
)

// Sentinels returned in place of a title or body when the page markup does
// not contain the expected element. Callers can only tell them apart from
// real text by equality.
const (
	NoTitle   = "No title found on the page."
	NoContent = "No content found on the page."
)

// Scraper fetches article pages over HTTP.
type Scraper struct {
	httpClient *http.Client
	userAgent  string
	selectors  Selectors
	log        logger.Logger
}

// NewScraper creates a scraper. A nil httpClient uses http.DefaultClient.
func NewScraper(httpClient *http.Client, userAgent string, selectors Selectors, log logger.Logger) *Scraper {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &Scraper{
		httpClient: httpClient,
		userAgent:  userAgent,
		selectors:  selectors,
		log:        log,
	}
}

// FetchHTML fetches url and returns the response body. A non-2xx status is
// not an error: the body is returned and parsed like any other page.
func (s *Scraper) FetchHTML(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	if s.userAgent != "" {
		req.Header.Set("User-Agent", s.userAgent)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to fetch URL: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		s.log.Warn("Article page returned non-OK status",
			logger.String("url", url),
			logger.Int("status", resp.StatusCode),
		)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response body: %w", err)
	}

	return string(body), nil
}

// Title fetches url and extracts the article title.
func (s *Scraper) Title(ctx context.Context, url string) (string, error) {
	html, err := s.FetchHTML(ctx, url)
	if err != nil {
		return "", err
	}
	return ExtractTitle(html, s.selectors.Title), nil
}

// Content fetches url again and extracts the article body. The separate
// request mirrors how the title is fetched.
func (s *Scraper) Content(ctx context.Context, url string) (string, error) {
	html, err := s.FetchHTML(ctx, url)
	if err != nil {
		return "", err
	}
	return ExtractContent(html, s.selectors.Content), nil
}

// ExtractTitle returns the text of the first element matching selector, or
// NoTitle if there is none. The text is not trimmed.
func ExtractTitle(html, selector string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return NoTitle
	}

	title := doc.Find(selector).First()
	if title.Length() == 0 {
		return NoTitle
	}
	return title.Text()
}

// ExtractContent returns the text of every paragraph inside the first
// element matching selector, joined with no separator, or NoContent if the
// container is missing.
func ExtractContent(html, selector string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return NoContent
	}

	container := doc.Find(selector).First()
	if container.Length() == 0 {
		return NoContent
	}

	var content strings.Builder
	container.Find("p").Each(func(_ int, p *goquery.Selection) {
		content.WriteString(p.Text())
	})
	return content.String()
}
