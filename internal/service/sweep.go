package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"readlater/internal/domain"
	"readlater/internal/metrics"
)

// Sweeper collapses duplicate records that slipped past the save guard when
// several devices raced on the same URL. For each duplicated URL the oldest
// record survives and absorbs the state of the rest.
type Sweeper struct {
	articles  ArticleStore
	tx        TransactionManager
	publisher Publisher
	logger    *slog.Logger
}

func NewSweeper(articles ArticleStore, tx TransactionManager, publisher Publisher, logger *slog.Logger) *Sweeper {
	return &Sweeper{
		articles:  articles,
		tx:        tx,
		publisher: publisher,
		logger:    logger.With(slog.String("component", "sweeper")),
	}
}

func (s *Sweeper) Sweep(ctx context.Context) (*domain.SweepStats, error) {
	startTime := time.Now()

	urls, err := s.articles.DuplicateURLs(ctx)
	if err != nil {
		return nil, fmt.Errorf("list duplicate urls: %w", err)
	}

	stats := &domain.SweepStats{URLs: len(urls)}

	if len(urls) > 0 {
		s.logger.Info("starting duplicate sweep", slog.Int("urls", len(urls)))
	}

	for _, url := range urls {
		if ctx.Err() != nil {
			return stats, domain.CancelOrWrap(ctx, ctx.Err())
		}

		keeper, removed, err := s.collapseURL(ctx, url)
		if err != nil {
			stats.Errors++
			s.logger.Warn("sweep url failed",
				slog.String("url", url), slog.String("error", err.Error()))
			continue
		}
		if keeper == nil {
			continue
		}

		stats.Merged++
		stats.Deleted += len(removed)
		metrics.DuplicatesMerged.Add(float64(len(removed)))

		publishEvent(ctx, s.publisher, s.logger, domain.EventUpdated, keeper)
		for _, dup := range removed {
			publishEvent(ctx, s.publisher, s.logger, domain.EventDeleted, dup)
		}
	}

	stats.Duration = time.Since(startTime)

	s.logger.Info("duplicate sweep completed",
		slog.Int("urls", stats.URLs),
		slog.Int("merged", stats.Merged),
		slog.Int("deleted", stats.Deleted),
		slog.Int("errors", stats.Errors),
		slog.Duration("duration", stats.Duration),
	)

	return stats, nil
}

// collapseURL merges every record for one URL into the oldest inside a single
// transaction, so a concurrent reader never observes the URL with no records.
func (s *Sweeper) collapseURL(ctx context.Context, url string) (*domain.Article, []*domain.Article, error) {
	var keeper *domain.Article
	var removed []*domain.Article

	err := s.tx.WithTransaction(ctx, func(txCtx context.Context) error {
		all, err := s.articles.GetAllByURL(txCtx, url)
		if err != nil {
			return fmt.Errorf("load records: %w", err)
		}
		if len(all) < 2 {
			// Already collapsed by a concurrent writer.
			return nil
		}

		keeper = &all[0]
		changed := false
		for i := 1; i < len(all); i++ {
			if keeper.Absorb(&all[i]) {
				changed = true
			}
		}

		if changed {
			if err := s.articles.Update(txCtx, keeper); err != nil {
				return fmt.Errorf("update keeper: %w", err)
			}
		}

		for i := 1; i < len(all); i++ {
			if _, err := s.articles.Delete(txCtx, all[i].ID); err != nil {
				return fmt.Errorf("delete duplicate %s: %w", all[i].ID, err)
			}
			removed = append(removed, &all[i])
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	if len(removed) == 0 {
		return nil, nil, nil
	}
	return keeper, removed, nil
}
