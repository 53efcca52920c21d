package domain

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// Article lifecycle events emitted to the message bus.
const (
	EventCreated = "created"
	EventUpdated = "updated"
	EventDeleted = "deleted"
)

// Article is the persisted record for a saved link. The canonical URL acts as
// the de facto uniqueness key; the backing store carries no unique constraint
// for it because records are replicated by an eventually-consistent sync
// backend that cannot enforce one.
type Article struct {
	ID           string     `db:"id" json:"id"`
	URL          string     `db:"url" json:"url"`
	Title        string     `db:"title" json:"title"`
	Content      *string    `db:"content" json:"content,omitempty"`
	ThumbnailURL *string    `db:"thumbnail_url" json:"thumbnail_url,omitempty"`
	PublishedAt  *time.Time `db:"published_at" json:"published_at,omitempty"`
	SavedAt      time.Time  `db:"saved_at" json:"saved_at"`
	ReadPosition float64    `db:"read_position" json:"read_position"`
	Favorite     bool       `db:"favorite" json:"favorite"`
	Archived     bool       `db:"archived" json:"archived"`
	CreatedAt    time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time  `db:"updated_at" json:"updated_at"`
}

// ArticleContent is the normalized result of a content fetch. It is immutable
// once built; every successful fetch produces a fresh value.
type ArticleContent struct {
	Title        string     `json:"title"`
	ThumbnailURL *string    `json:"thumbnail_url,omitempty"`
	Description  *string    `json:"description,omitempty"`
	Content      string     `json:"content"`
	Author       *string    `json:"author,omitempty"`
	WordCount    *int       `json:"word_count,omitempty"`
	PublishedAt  *time.Time `json:"published_at,omitempty"`
}

// ArticleMetadata is the preview subset of ArticleContent used when only a
// lightweight preview is needed (adding a URL, inbox reconciliation).
type ArticleMetadata struct {
	Title        string     `json:"title"`
	ThumbnailURL *string    `json:"thumbnail_url,omitempty"`
	Description  *string    `json:"description,omitempty"`
	PublishedAt  *time.Time `json:"published_at,omitempty"`
}

// SharedURLRecord is one entry captured by the out-of-process share inbox.
type SharedURLRecord struct {
	URL      string
	SharedAt time.Time
}

// ReconcileState tracks the inbox high-water-mark so already-consumed entries
// are never reprocessed.
type ReconcileState struct {
	Source    string    `db:"source"`
	Watermark time.Time `db:"watermark"`
	Processed int64     `db:"processed"`
	UpdatedAt time.Time `db:"updated_at"`
}

// ContentView projects a stored record into the value object the reader
// consumes, for records that already have content on disk.
func (a *Article) ContentView() *ArticleContent {
	view := &ArticleContent{
		Title:        a.Title,
		ThumbnailURL: a.ThumbnailURL,
		PublishedAt:  a.PublishedAt,
	}
	if a.Content != nil {
		view.Content = *a.Content
		words := len(strings.Fields(view.Content))
		view.WordCount = &words
	}
	return view
}

// Metadata projects the preview fields out of a full content value.
func (c *ArticleContent) Metadata() ArticleMetadata {
	return ArticleMetadata{
		Title:        c.Title,
		ThumbnailURL: c.ThumbnailURL,
		Description:  c.Description,
		PublishedAt:  c.PublishedAt,
	}
}

// ReadingTime formats the estimated reading time of the content body.
func (c *ArticleContent) ReadingTime() string {
	return ReadingTime(c.Content)
}

const wordsPerMinute = 200

// ReadingTimeMinutes estimates reading time at 200 words per minute over
// whitespace-delimited tokens, rounded up, with a one-minute floor once any
// content exists. Empty content is 0, not 1: callers distinguish "nothing to
// read" from "a very short read".
func ReadingTimeMinutes(content string) int {
	words := len(strings.Fields(content))
	if words == 0 {
		return 0
	}
	return int(math.Ceil(float64(words) / wordsPerMinute))
}

// ReadingTime renders ReadingTimeMinutes as the user-facing "N min" string.
func ReadingTime(content string) string {
	return strconv.Itoa(ReadingTimeMinutes(content)) + " min"
}
