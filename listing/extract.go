package listing

import "github.com/pevans/newspulse/newslist"

// ExtractItems converts raw API entries into news items. Entries without a
// rendered title or a post path are dropped. The item URL is host followed
// by the post path, concatenated as-is.
func ExtractItems(raw []RawItem, host string) []newslist.NewsItem {
	items := make([]newslist.NewsItem, 0, len(raw))
	for _, r := range raw {
		if r.Title == nil || r.Title.Rendered == "" || r.PostURL == "" {
			continue
		}

		items = append(items, newslist.NewsItem{
			Title: r.Title.Rendered,
			URL:   host + r.PostURL,
		})
	}
	return items
}
