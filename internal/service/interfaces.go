package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"time"

	"readlater/internal/cache"
	"readlater/internal/domain"
	"readlater/internal/parser"
)

type ContentCache interface {
	Get(ctx context.Context, url string) (*cache.Entry, error)
	Save(ctx context.Context, url string, content *domain.ArticleContent) error
}

type Parser interface {
	Ready() bool
	Parse(html, url string) *parser.Result
}

type HTMLFetcher interface {
	Fetch(ctx context.Context, url string, timeout time.Duration) (string, error)
}

type MetadataScraper interface {
	Scrape(ctx context.Context, url string, timeout time.Duration) (*domain.ArticleMetadata, error)
}

type FallbackClient interface {
	Enabled() bool
	FetchArticle(ctx context.Context, url string, timeout time.Duration) (*domain.ArticleContent, error)
}

type ArticleStore interface {
	Insert(ctx context.Context, article *domain.Article) (bool, error)
	GetByURL(ctx context.Context, url string) (*domain.Article, error)
	GetByID(ctx context.Context, id string) (*domain.Article, error)
	List(ctx context.Context, limit int) ([]domain.Article, error)
	Update(ctx context.Context, article *domain.Article) error
	Delete(ctx context.Context, id string) (bool, error)
	DuplicateURLs(ctx context.Context) ([]string, error)
	GetAllByURL(ctx context.Context, url string) ([]domain.Article, error)
}

type ReconcileStateStore interface {
	Get(ctx context.Context, source string) (*domain.ReconcileState, error)
	Update(ctx context.Context, state *domain.ReconcileState) error
}

type SharedInbox interface {
	EntriesAfter(ctx context.Context, watermark time.Time) ([]domain.SharedURLRecord, error)
	Trim(ctx context.Context, upTo time.Time) error
}

type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type Publisher interface {
	Publish(ctx context.Context, event string, article *domain.Article) error
	Close() error
}

// ContentFetcher is the orchestrated content pipeline as its consumers see
// it; ContentService is the implementation.
type ContentFetcher interface {
	FetchContent(ctx context.Context, url string, timeout time.Duration, forceRefresh bool) (*domain.ArticleContent, error)
	FetchMetadata(ctx context.Context, url string, timeout time.Duration) (*domain.ArticleMetadata, error)
}

// ArticleSaver is the duplicate-safe persistence guard as its consumers see
// it; Guard is the implementation.
type ArticleSaver interface {
	Save(ctx context.Context, article *domain.Article) (*domain.Article, bool, error)
}
