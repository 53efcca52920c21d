package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"readlater/internal/config"
	"readlater/internal/domain"
)

// Library is the user-facing side of the article store: direct saves, state
// changes and deletes. Content bodies are the reader's business; the library
// only captures a record with enough metadata for a list preview.
type Library struct {
	articles  ArticleStore
	guard     ArticleSaver
	content   ContentFetcher
	publisher Publisher
	logger    *slog.Logger
	cfg       config.ContentConfig
}

func NewLibrary(
	articles ArticleStore,
	guard ArticleSaver,
	content ContentFetcher,
	publisher Publisher,
	logger *slog.Logger,
	cfg config.ContentConfig,
) *Library {
	return &Library{
		articles:  articles,
		guard:     guard,
		content:   content,
		publisher: publisher,
		logger:    logger.With(slog.String("component", "library")),
		cfg:       cfg,
	}
}

// StatePatch carries the optional reading-state fields of an update. Nil
// fields keep their stored value.
type StatePatch struct {
	ReadPosition *float64
	Favorite     *bool
	Archived     *bool
}

// Add saves a URL the user handed over directly. Unlike inbox reconciliation
// a preview failure here is surfaced: the user is present and can retry.
func (l *Library) Add(ctx context.Context, rawURL string) (*domain.Article, bool, error) {
	url, ok := domain.CanonicalURL(rawURL)
	if !ok {
		return nil, false, fmt.Errorf("%w: unusable url %q", domain.ErrInvalidInput, rawURL)
	}

	meta, err := l.content.FetchMetadata(ctx, url, l.cfg.MetadataTimeout)
	if err != nil {
		return nil, false, fmt.Errorf("fetch preview: %w", err)
	}

	article := &domain.Article{
		ID:           uuid.NewString(),
		URL:          url,
		Title:        meta.Title,
		ThumbnailURL: meta.ThumbnailURL,
		PublishedAt:  meta.PublishedAt,
		SavedAt:      time.Now().UTC(),
	}

	saved, created, err := l.guard.Save(ctx, article)
	if err != nil {
		return nil, false, err
	}

	if created {
		publishEvent(ctx, l.publisher, l.logger, domain.EventCreated, saved)
	}
	return saved, created, nil
}

func (l *Library) List(ctx context.Context, limit int) ([]domain.Article, error) {
	return l.articles.List(ctx, limit)
}

func (l *Library) Get(ctx context.Context, id string) (*domain.Article, error) {
	return l.articles.GetByID(ctx, id)
}

// Delete removes a record. Deleting a record that is already gone is a
// success: devices race on deletes the same way they race on saves.
func (l *Library) Delete(ctx context.Context, id string) error {
	article, err := l.articles.GetByID(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("load record: %w", err)
	}

	deleted, err := l.articles.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete record: %w", err)
	}
	if deleted {
		publishEvent(ctx, l.publisher, l.logger, domain.EventDeleted, article)
	}
	return nil
}

func (l *Library) UpdateState(ctx context.Context, id string, patch StatePatch) (*domain.Article, error) {
	if patch.ReadPosition != nil && (*patch.ReadPosition < 0 || *patch.ReadPosition > 1) {
		return nil, fmt.Errorf("%w: read position %v outside [0,1]", domain.ErrInvalidInput, *patch.ReadPosition)
	}

	article, err := l.articles.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	changed := false
	if patch.ReadPosition != nil && article.ReadPosition != *patch.ReadPosition {
		article.ReadPosition = *patch.ReadPosition
		changed = true
	}
	if patch.Favorite != nil && article.Favorite != *patch.Favorite {
		article.Favorite = *patch.Favorite
		changed = true
	}
	if patch.Archived != nil && article.Archived != *patch.Archived {
		article.Archived = *patch.Archived
		changed = true
	}

	if !changed {
		return article, nil
	}

	if err := l.articles.Update(ctx, article); err != nil {
		return nil, fmt.Errorf("update record: %w", err)
	}

	publishEvent(ctx, l.publisher, l.logger, domain.EventUpdated, article)
	return article, nil
}
