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
	"readlater/internal/metrics"
)

// ReconcileSource names the inbox watermark row.
const ReconcileSource = "inbox"

// Reconciler drains the shared-URL inbox into the article store. Entries are
// consumed in arrival order past a persisted watermark; a failed entry is
// logged and consumed rather than blocking the queue, so crash protection
// covers exactly the entries the watermark has not reached.
type Reconciler struct {
	inbox     SharedInbox
	state     ReconcileStateStore
	articles  ArticleStore
	guard     ArticleSaver
	cache     ContentCache
	content   ContentFetcher
	publisher Publisher
	logger    *slog.Logger
	cfg       config.ContentConfig
}

func NewReconciler(
	inbox SharedInbox,
	state ReconcileStateStore,
	articles ArticleStore,
	guard ArticleSaver,
	cache ContentCache,
	content ContentFetcher,
	publisher Publisher,
	logger *slog.Logger,
	cfg config.ContentConfig,
) *Reconciler {
	return &Reconciler{
		inbox:     inbox,
		state:     state,
		articles:  articles,
		guard:     guard,
		cache:     cache,
		content:   content,
		publisher: publisher,
		logger:    logger.With(slog.String("component", "reconciler")),
		cfg:       cfg,
	}
}

func (r *Reconciler) Reconcile(ctx context.Context) (*domain.ReconcileStats, error) {
	startTime := time.Now()

	state, err := r.state.Get(ctx, ReconcileSource)
	if err != nil {
		return nil, fmt.Errorf("load reconcile state: %w", err)
	}

	entries, err := r.inbox.EntriesAfter(ctx, state.Watermark)
	if err != nil {
		return nil, fmt.Errorf("read inbox: %w", err)
	}

	stats := &domain.ReconcileStats{Entries: len(entries)}

	r.logger.Info("starting reconcile",
		slog.Int("entries", len(entries)),
		slog.Time("watermark", state.Watermark),
	)

	for _, entry := range entries {
		if ctx.Err() != nil {
			return stats, domain.CancelOrWrap(ctx, ctx.Err())
		}

		if err := r.processEntry(ctx, entry, stats); err != nil {
			stats.Errors++
			metrics.ReconcileEntries.WithLabelValues("error").Inc()
			r.logger.Warn("inbox entry failed",
				slog.String("url", entry.URL), slog.String("error", err.Error()))
		}

		// Advance past the entry whatever happened to it; a crash must not
		// replay consumed entries.
		state.Watermark = entry.SharedAt
		state.Processed++
		if err := r.state.Update(ctx, state); err != nil {
			return stats, fmt.Errorf("persist watermark: %w", err)
		}
	}

	if len(entries) > 0 {
		if err := r.inbox.Trim(ctx, state.Watermark); err != nil {
			r.logger.Warn("inbox trim failed", slog.String("error", err.Error()))
		}
	}

	stats.Duration = time.Since(startTime)

	r.logger.Info("reconcile completed",
		slog.Int("entries", stats.Entries),
		slog.Int("created", stats.Created),
		slog.Int("merged", stats.Merged),
		slog.Int("skipped", stats.Skipped),
		slog.Int("errors", stats.Errors),
		slog.Duration("duration", stats.Duration),
	)

	return stats, nil
}

func (r *Reconciler) processEntry(ctx context.Context, entry domain.SharedURLRecord, stats *domain.ReconcileStats) error {
	url, ok := domain.CanonicalURL(entry.URL)
	if !ok {
		return fmt.Errorf("%w: unusable shared url %q", domain.ErrInvalidInput, entry.URL)
	}

	existing, err := r.articles.GetByURL(ctx, url)
	if err == nil {
		return r.mergeExisting(ctx, existing, stats)
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("lookup record: %w", err)
	}

	return r.createRecord(ctx, url, entry.SharedAt, stats)
}

// mergeExisting fills gaps on a record that another device already created.
// Content comes only from the shared cache; reconciliation never fetches
// bodies over the network.
func (r *Reconciler) mergeExisting(ctx context.Context, article *domain.Article, stats *domain.ReconcileStats) error {
	changed := false

	if article.Content == nil {
		entry, err := r.cache.Get(ctx, article.URL)
		if err != nil {
			r.logger.Warn("cache lookup failed",
				slog.String("url", article.URL), slog.String("error", err.Error()))
		} else if entry != nil {
			if article.ApplyContent(&entry.Content, false) {
				changed = true
			}
		}
	}

	if article.ThumbnailURL == nil || article.PublishedAt == nil {
		meta, err := r.content.FetchMetadata(ctx, article.URL, r.cfg.MetadataTimeout)
		if err != nil {
			r.logger.Debug("preview fill failed",
				slog.String("url", article.URL), slog.String("error", err.Error()))
		} else if article.ApplyMetadata(meta) {
			changed = true
		}
	}

	if !changed {
		stats.Skipped++
		metrics.ReconcileEntries.WithLabelValues("skipped").Inc()
		return nil
	}

	if err := r.articles.Update(ctx, article); err != nil {
		return fmt.Errorf("merge record: %w", err)
	}

	stats.Merged++
	metrics.ReconcileEntries.WithLabelValues("merged").Inc()
	publishEvent(ctx, r.publisher, r.logger, domain.EventUpdated, article)
	return nil
}

func (r *Reconciler) createRecord(ctx context.Context, url string, sharedAt time.Time, stats *domain.ReconcileStats) error {
	meta, err := r.content.FetchMetadata(ctx, url, r.cfg.MetadataTimeout)
	if err != nil {
		return fmt.Errorf("fetch preview: %w", err)
	}

	article := &domain.Article{
		ID:           uuid.NewString(),
		URL:          url,
		Title:        meta.Title,
		ThumbnailURL: meta.ThumbnailURL,
		PublishedAt:  meta.PublishedAt,
		SavedAt:      sharedAt.UTC(),
	}

	if entry, err := r.cache.Get(ctx, url); err == nil && entry != nil {
		article.ApplyContent(&entry.Content, false)
	}

	saved, created, err := r.guard.Save(ctx, article)
	if err != nil {
		return fmt.Errorf("save record: %w", err)
	}

	if !created {
		stats.Skipped++
		metrics.ReconcileEntries.WithLabelValues("skipped").Inc()
		return nil
	}

	stats.Created++
	metrics.ReconcileEntries.WithLabelValues("created").Inc()
	publishEvent(ctx, r.publisher, r.logger, domain.EventCreated, saved)
	return nil
}
