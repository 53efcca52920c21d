package metadata

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/araddon/dateparse"

	"readlater/internal/domain"
)

// HTMLFetcher retrieves the raw page; htmlfetch.Fetcher is the default
// implementation.
type HTMLFetcher interface {
	Fetch(ctx context.Context, url string, timeout time.Duration) (string, error)
}

// Scraper pulls preview metadata out of a page head: OpenGraph and Twitter
// tags first, plain HTML elements as a lower-fidelity fallback. It never
// fetches article bodies; that is the content pipeline's job.
type Scraper struct {
	fetcher HTMLFetcher
	logger  *slog.Logger
}

func NewScraper(fetcher HTMLFetcher, logger *slog.Logger) *Scraper {
	return &Scraper{
		fetcher: fetcher,
		logger:  logger.With(slog.String("component", "metadata")),
	}
}

func (s *Scraper) Scrape(ctx context.Context, url string, timeout time.Duration) (*domain.ArticleMetadata, error) {
	html, err := s.fetcher.Fetch(ctx, url, timeout)
	if err != nil {
		return nil, fmt.Errorf("fetch page: %w", err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("parse page: %w", err)
	}

	meta := &domain.ArticleMetadata{}

	meta.Title = firstNonEmpty(
		metaContent(doc, "meta[property='og:title']"),
		metaContent(doc, "meta[name='twitter:title']"),
		strings.TrimSpace(doc.Find("title").First().Text()),
	)

	if image := firstNonEmpty(
		metaContent(doc, "meta[property='og:image']"),
		metaContent(doc, "meta[name='twitter:image']"),
	); image != "" {
		meta.ThumbnailURL = &image
	}

	if desc := firstNonEmpty(
		metaContent(doc, "meta[property='og:description']"),
		metaContent(doc, "meta[name='description']"),
	); desc != "" {
		meta.Description = &desc
	}

	if raw := firstNonEmpty(
		metaContent(doc, "meta[property='article:published_time']"),
		strings.TrimSpace(doc.Find("time[datetime]").First().AttrOr("datetime", "")),
	); raw != "" {
		if published, err := dateparse.ParseAny(raw); err == nil {
			published = published.UTC()
			meta.PublishedAt = &published
		} else {
			s.logger.Debug("unparseable published time", slog.String("url", url), slog.String("value", raw))
		}
	}

	return meta, nil
}

func metaContent(doc *goquery.Document, selector string) string {
	content, _ := doc.Find(selector).First().Attr("content")
	return strings.TrimSpace(content)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
