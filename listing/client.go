// Package listing reads article references from the site's paginated
// listing API or from an RSS/Atom feed.
package listing

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// ErrHTTPStatus is wrapped by FetchPage when the API answers with a non-2xx
// status.
var ErrHTTPStatus = errors.New("unexpected HTTP status")

// RawItem is one entry of the listing API's postResponseDto array. Title is
// nil when the item has no title object.
type RawItem struct {
	Title   *RenderedText `json:"title"`
	PostURL string        `json:"post_url"`
}

// RenderedText is the API's {"rendered": "..."} wrapper.
type RenderedText struct {
	Rendered string `json:"rendered"`
}

type pageResponse struct {
	Posts []json.RawMessage `json:"postResponseDto"`
}

// Client calls the listing API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	userAgent  string
}

// NewClient creates a listing client rooted at baseURL, for example
// https://api.example.com/post. A nil httpClient uses http.DefaultClient.
func NewClient(baseURL string, httpClient *http.Client, userAgent string) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
		userAgent:  userAgent,
	}
}

// PageURL returns the endpoint for one page of a category.
func (c *Client) PageURL(categoryID, page, pageSize int) string {
	return fmt.Sprintf("%s/categoryPostPagination/%d/%d/%d/", c.baseURL, categoryID, page, pageSize)
}

// FetchPage fetches one page of a category. Entries that do not decode into
// a RawItem come back as a zero RawItem, which ExtractItems drops; every other
// failure (transport, status, body decoding) is returned.
func (c *Client) FetchPage(ctx context.Context, categoryID, page, pageSize int) ([]RawItem, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.PageURL(categoryID, page, pageSize), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch listing page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: %s", ErrHTTPStatus, resp.Status)
	}

	var body pageResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to decode listing page: %w", err)
	}

	items := make([]RawItem, 0, len(body.Posts))
	for _, raw := range body.Posts {
		var item RawItem
		if err := json.Unmarshal(raw, &item); err != nil {
			item = RawItem{}
		}
		items = append(items, item)
	}

	return items, nil
}
