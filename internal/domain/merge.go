package domain

// ApplyContent merges fetched content into the article. Content itself is
// written when absent or when overwrite is set (an explicit refresh);
// preview fields only ever fill gaps so values synced from another device
// are not clobbered. Reports whether anything changed.
func (a *Article) ApplyContent(c *ArticleContent, overwrite bool) bool {
	changed := false
	if c.Content != "" && (a.Content == nil || overwrite) {
		if a.Content == nil || *a.Content != c.Content {
			content := c.Content
			a.Content = &content
			changed = true
		}
	}
	if a.Title == "" && c.Title != "" {
		a.Title = c.Title
		changed = true
	}
	if a.ThumbnailURL == nil && c.ThumbnailURL != nil {
		thumb := *c.ThumbnailURL
		a.ThumbnailURL = &thumb
		changed = true
	}
	if a.PublishedAt == nil && c.PublishedAt != nil {
		published := *c.PublishedAt
		a.PublishedAt = &published
		changed = true
	}
	return changed
}

// ApplyMetadata fills preview fields the article is missing from scraped
// page metadata. Present values always win over scraped ones.
func (a *Article) ApplyMetadata(m *ArticleMetadata) bool {
	changed := false
	if a.Title == "" && m.Title != "" {
		a.Title = m.Title
		changed = true
	}
	if a.ThumbnailURL == nil && m.ThumbnailURL != nil {
		thumb := *m.ThumbnailURL
		a.ThumbnailURL = &thumb
		changed = true
	}
	if a.PublishedAt == nil && m.PublishedAt != nil {
		published := *m.PublishedAt
		a.PublishedAt = &published
		changed = true
	}
	return changed
}

// Absorb folds a duplicate of the same URL into the receiver, which is the
// record being kept. State a user set anywhere survives: favorite and
// archived flags OR together, the furthest read position wins, and content
// or preview fields the keeper lacks are taken from the duplicate.
func (a *Article) Absorb(dup *Article) bool {
	changed := false
	if dup.Favorite && !a.Favorite {
		a.Favorite = true
		changed = true
	}
	if dup.Archived && !a.Archived {
		a.Archived = true
		changed = true
	}
	if dup.ReadPosition > a.ReadPosition {
		a.ReadPosition = dup.ReadPosition
		changed = true
	}
	if a.Content == nil && dup.Content != nil {
		content := *dup.Content
		a.Content = &content
		changed = true
	}
	if a.Title == "" && dup.Title != "" {
		a.Title = dup.Title
		changed = true
	}
	if a.ThumbnailURL == nil && dup.ThumbnailURL != nil {
		thumb := *dup.ThumbnailURL
		a.ThumbnailURL = &thumb
		changed = true
	}
	if a.PublishedAt == nil && dup.PublishedAt != nil {
		published := *dup.PublishedAt
		a.PublishedAt = &published
		changed = true
	}
	return changed
}
