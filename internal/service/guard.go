package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"readlater/internal/domain"
	"readlater/internal/metrics"
)

// Guard is the duplicate-safe persistence path for new article records. The
// store has no unique constraint on url (replicated writes must never fail),
// so uniqueness is best-effort: check, conditionally insert, and re-check
// when the insert reports a concurrent record. A record that loses the race
// is discarded in favor of the winner.
type Guard struct {
	articles ArticleStore
	tx       TransactionManager
	logger   *slog.Logger
}

func NewGuard(articles ArticleStore, tx TransactionManager, logger *slog.Logger) *Guard {
	return &Guard{
		articles: articles,
		tx:       tx,
		logger:   logger.With(slog.String("component", "guard")),
	}
}

// Save persists article unless a record with its URL already exists, in
// which case the existing record comes back unchanged with created=false.
// Saving the same URL twice is not an error.
func (g *Guard) Save(ctx context.Context, article *domain.Article) (*domain.Article, bool, error) {
	existing, err := g.articles.GetByURL(ctx, article.URL)
	if err == nil {
		metrics.ArticlesSaved.WithLabelValues("existing").Inc()
		return existing, false, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, false, fmt.Errorf("check existing record: %w", err)
	}

	var inserted bool
	txErr := g.tx.WithTransaction(ctx, func(txCtx context.Context) error {
		ok, err := g.articles.Insert(txCtx, article)
		if err != nil {
			return err
		}
		inserted = ok
		return nil
	})

	if txErr == nil && inserted {
		metrics.ArticlesSaved.WithLabelValues("created").Inc()
		return article, true, nil
	}

	// The conditional insert saw a concurrent record, or the commit failed
	// after a replica raced us. Either way the URL may now have a winner.
	winner, lookupErr := g.articles.GetByURL(ctx, article.URL)
	if lookupErr == nil {
		g.logger.Info("concurrent save detected, keeping existing record",
			slog.String("url", article.URL), slog.String("winner_id", winner.ID))
		metrics.ArticlesSaved.WithLabelValues("raced").Inc()
		return winner, false, nil
	}

	if txErr != nil {
		return nil, false, fmt.Errorf("insert record: %w", txErr)
	}
	return nil, false, fmt.Errorf("insert lost race but winner vanished: %w", lookupErr)
}
