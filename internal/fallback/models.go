package fallback

// APIResponse is the extraction API envelope.
type APIResponse struct {
	Content  string      `json:"content"`
	Metadata APIMetadata `json:"metadata"`
}

type APIMetadata struct {
	Title                    *string `json:"title"`
	Author                   *string `json:"author"`
	Excerpt                  *string `json:"excerpt"`
	PublishedDate            *string `json:"publishedDate"`
	EstimatedReadTimeMinutes *int    `json:"estimatedReadTimeMinutes"`
	WordCount                *int    `json:"wordCount"`
	SourceURL                string  `json:"sourceUrl"`
	Domain                   string  `json:"domain"`
	Thumbnail                *string `json:"thumbnail"`
}
