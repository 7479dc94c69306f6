package model

// NewsItem is a single article from the news feed. A URL of "#" means
// no link is available and consumers must suppress the read-more
// affordance.
type NewsItem struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	URL         string `json:"url"`
	Source      string `json:"source"`
	PublishedAt string `json:"publishedAt"`
	ImageURL    string `json:"imageUrl,omitempty"`
}
