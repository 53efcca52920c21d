package service

import (
	"context"
	"fmt"
	"log/slog"

	"readlater/internal/config"
	"readlater/internal/domain"
)

// Reader serves article content to the reading view. Stored content is
// returned as-is; otherwise the pipeline fetches it and the result is
// persisted onto the record, re-read by ID first because the record can be
// deleted on another device while the fetch is in flight.
type Reader struct {
	articles ArticleStore
	content  ContentFetcher
	logger   *slog.Logger
	cfg      config.ContentConfig
}

func NewReader(articles ArticleStore, content ContentFetcher, logger *slog.Logger, cfg config.ContentConfig) *Reader {
	return &Reader{
		articles: articles,
		content:  content,
		logger:   logger.With(slog.String("component", "reader")),
		cfg:      cfg,
	}
}

// LoadContent returns readable content for the record. forceRefresh bypasses
// both the stored content and the shared cache. A record deleted while the
// fetch ran yields ErrNotFound with nothing written; a cancelled context
// yields ErrCancelled, which callers treat as silence, not failure.
func (r *Reader) LoadContent(ctx context.Context, articleID string, forceRefresh bool) (*domain.ArticleContent, error) {
	article, err := r.articles.GetByID(ctx, articleID)
	if err != nil {
		return nil, err
	}

	if !forceRefresh && article.Content != nil && *article.Content != "" {
		return article.ContentView(), nil
	}

	fetched, err := r.content.FetchContent(ctx, article.URL, r.cfg.FetchTimeout, forceRefresh)
	if err != nil {
		return nil, domain.CancelOrWrap(ctx, err)
	}

	// The fetch suspended; re-validate identity before writing.
	fresh, err := r.articles.GetByID(ctx, articleID)
	if err != nil {
		return nil, err
	}

	if fresh.ApplyContent(fetched, forceRefresh) {
		if err := r.articles.Update(ctx, fresh); err != nil {
			return nil, fmt.Errorf("persist fetched content: %w", err)
		}
	}

	return fetched, nil
}
