package service

import (
	"context"
	"log/slog"

	"readlater/internal/domain"
)

// publishEvent emits one lifecycle event. A nil publisher is legal (event
// wiring is optional) and publish failures are logged, not propagated:
// events are advisory, the store is the source of truth.
func publishEvent(ctx context.Context, p Publisher, logger *slog.Logger, event string, article *domain.Article) {
	if p == nil {
		return
	}
	if err := p.Publish(ctx, event, article); err != nil {
		logger.Warn("publish event failed",
			slog.String("event", event),
			slog.String("article_id", article.ID),
			slog.String("error", err.Error()),
		)
	}
}
