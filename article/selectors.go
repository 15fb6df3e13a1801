package article

// Selectors locate the title heading and the body container on an article
// page. Both are goquery (CSS) selectors; the first match is used.
type Selectors struct {
	Title   string `json:"title_selector"`
	Content string `json:"content_selector"`
}

// DefaultSelectors returns the selectors for the target site's markup.
func DefaultSelectors() Selectors {
	return Selectors{
		Title:   "h1.top_stories_header_news",
		Content: "div.new_details",
	}
}
