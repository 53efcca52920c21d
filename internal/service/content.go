package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"readlater/internal/config"
	"readlater/internal/domain"
	"readlater/internal/metrics"
	"readlater/internal/parser"
)

// ContentService is the tiered content pipeline: cache, embedded parser,
// hosted fallback, in that order. Whatever tier produces the content, the
// result is normalized and written back to the shared cache before it is
// returned.
type ContentService struct {
	cache    ContentCache
	parser   Parser
	html     HTMLFetcher
	scraper  MetadataScraper
	fallback FallbackClient
	logger   *slog.Logger
	cfg      config.ContentConfig
}

func NewContentService(
	cache ContentCache,
	parser Parser,
	html HTMLFetcher,
	scraper MetadataScraper,
	fallback FallbackClient,
	logger *slog.Logger,
	cfg config.ContentConfig,
) *ContentService {
	return &ContentService{
		cache:    cache,
		parser:   parser,
		html:     html,
		scraper:  scraper,
		fallback: fallback,
		logger:   logger.With(slog.String("component", "content")),
		cfg:      cfg,
	}
}

// ValidateURL canonicalizes a user-supplied URL, rejecting anything that is
// not an absolute http(s) link.
func (s *ContentService) ValidateURL(candidate string) (string, bool) {
	return domain.CanonicalURL(candidate)
}

// FetchContent produces readable article content for url. A fresh cache hit
// short-circuits every network tier unless forceRefresh is set; every fresh
// fetch is cached on the way out regardless of which tier produced it.
func (s *ContentService) FetchContent(ctx context.Context, url string, timeout time.Duration, forceRefresh bool) (*domain.ArticleContent, error) {
	if timeout <= 0 {
		timeout = s.cfg.FetchTimeout
	}

	if !forceRefresh {
		entry, err := s.cache.Get(ctx, url)
		if err != nil {
			s.logger.Warn("cache lookup failed", slog.String("url", url), slog.String("error", err.Error()))
		} else if entry != nil && s.fresh(entry.SavedAt) {
			metrics.ContentFetches.WithLabelValues("cache").Inc()
			content := entry.Content
			return &content, nil
		}
	}

	content, err := s.fetchFresh(ctx, url, timeout)
	if err != nil {
		metrics.ContentFetchErrors.WithLabelValues(errorKind(err)).Inc()
		return nil, err
	}

	s.normalize(content, url)

	if err := s.cache.Save(ctx, url, content); err != nil {
		s.logger.Warn("cache save failed", slog.String("url", url), slog.String("error", err.Error()))
	}

	return content, nil
}

// FetchMetadata produces a lightweight preview for url without touching the
// article body. The title falls back to the host so it is never empty.
func (s *ContentService) FetchMetadata(ctx context.Context, url string, timeout time.Duration) (*domain.ArticleMetadata, error) {
	if timeout <= 0 {
		timeout = s.cfg.MetadataTimeout
	}

	meta, err := s.scraper.Scrape(ctx, url, timeout)
	if err != nil {
		return nil, domain.CancelOrWrap(ctx, err)
	}

	if strings.TrimSpace(meta.Title) == "" {
		meta.Title = domain.HostTitle(url)
	}

	return meta, nil
}

func (s *ContentService) fetchFresh(ctx context.Context, url string, timeout time.Duration) (*domain.ArticleContent, error) {
	if s.parser.Ready() {
		html, err := s.html.Fetch(ctx, url, timeout)
		if err != nil {
			if domain.IsCancelled(err) {
				return nil, err
			}
			s.logger.Debug("html fetch failed, falling back",
				slog.String("url", url), slog.String("error", err.Error()))
		} else {
			result := s.parser.Parse(html, url)
			if result.Success {
				metrics.ContentFetches.WithLabelValues("parser").Inc()
				return contentFromParse(result), nil
			}
			s.logger.Debug("parser produced nothing, falling back",
				slog.String("url", url), slog.String("reason", result.Err))
		}
	}

	content, err := s.fallback.FetchArticle(ctx, url, timeout)
	if err != nil {
		return nil, fmt.Errorf("fallback fetch: %w", err)
	}

	metrics.ContentFetches.WithLabelValues("fallback").Inc()
	return content, nil
}

// fresh applies the freshness window on top of the cache TTL. Entries written
// by processes with a longer expiration still honor this one.
func (s *ContentService) fresh(savedAt time.Time) bool {
	return time.Since(savedAt) < s.cfg.CacheExpiration
}

func (s *ContentService) normalize(content *domain.ArticleContent, url string) {
	if strings.TrimSpace(content.Title) == "" {
		content.Title = domain.HostTitle(url)
	}
	if content.WordCount == nil {
		words := len(strings.Fields(content.Content))
		content.WordCount = &words
	}
}

func contentFromParse(result *parser.Result) *domain.ArticleContent {
	content := &domain.ArticleContent{
		Content: result.Content,
	}
	if result.Metadata != nil {
		content.Title = result.Metadata.Title
		content.Author = result.Metadata.Author
		content.Description = result.Metadata.Excerpt
		content.ThumbnailURL = result.Metadata.ImageURL
		content.PublishedAt = result.Metadata.Published
	}
	return content
}

func errorKind(err error) string {
	switch {
	case domain.IsCancelled(err):
		return "cancelled"
	case errors.Is(err, domain.ErrServiceUnavailable):
		return "service_unavailable"
	case errors.Is(err, domain.ErrNetwork):
		return "network"
	case errors.Is(err, domain.ErrContentUnavailable):
		return "content_unavailable"
	case errors.Is(err, domain.ErrInvalidInput):
		return "invalid_input"
	default:
		return "other"
	}
}
