//go:build integration

package cache

import (
	"context"
	"log/slog"
	"os"
	"testing"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	tcredis "github.com/testcontainers/testcontainers-go/modules/redis"
	"github.com/testcontainers/testcontainers-go/wait"

	"readlater/internal/domain"
	"readlater/testdata/utils"
)

type CacheIntegrationSuite struct {
	suite.Suite
	ctx       context.Context
	container *tcredis.RedisContainer
	client    *goredis.Client
	logger    *slog.Logger

	cache *ContentCache
}

func (s *CacheIntegrationSuite) SetupSuite() {
	s.ctx = context.Background()
	s.logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))

	container, err := tcredis.Run(s.ctx,
		"redis:7-alpine",
		testcontainers.WithWaitStrategy(
			wait.ForLog("Ready to accept connections").
				WithStartupTimeout(30*time.Second),
		),
	)
	s.Require().NoError(err)
	s.container = container

	connStr, err := container.ConnectionString(s.ctx)
	s.Require().NoError(err)

	opts, err := goredis.ParseURL(connStr)
	s.Require().NoError(err)
	s.client = goredis.NewClient(opts)

	s.Require().NoError(s.client.Ping(s.ctx).Err())
}

func (s *CacheIntegrationSuite) TearDownSuite() {
	if s.client != nil {
		_ = s.client.Close()
	}
	if s.container != nil {
		_ = s.container.Terminate(s.ctx)
	}
}

func (s *CacheIntegrationSuite) SetupTest() {
	s.Require().NoError(s.client.FlushDB(s.ctx).Err())
	s.cache = NewContentCache(s.client, "test", time.Hour, s.logger)
}

func TestCacheIntegrationSuite(t *testing.T) {
	suite.Run(t, new(CacheIntegrationSuite))
}

func (s *CacheIntegrationSuite) TestSaveAndGet() {
	const url = "https://example.com/article"
	content := &domain.ArticleContent{
		Title:        "Example Article",
		Content:      "the full readable body",
		ThumbnailURL: utils.Ptr("https://example.com/thumb.jpg"),
		WordCount:    utils.Ptr(4),
	}

	s.Require().NoError(s.cache.Save(s.ctx, url, content))

	entry, err := s.cache.Get(s.ctx, url)
	s.Require().NoError(err)
	s.Require().NotNil(entry)

	s.Equal(content.Title, entry.Content.Title)
	s.Equal(content.Content, entry.Content.Content)
	s.Require().NotNil(entry.Content.ThumbnailURL)
	s.Equal(*content.ThumbnailURL, *entry.Content.ThumbnailURL)
	s.Require().NotNil(entry.Content.WordCount)
	s.Equal(4, *entry.Content.WordCount)
	s.WithinDuration(time.Now().UTC(), entry.SavedAt, 5*time.Second)
}

func (s *CacheIntegrationSuite) TestGetMiss() {
	entry, err := s.cache.Get(s.ctx, "https://example.com/never-cached")
	s.Require().NoError(err)
	s.Nil(entry)
}

func (s *CacheIntegrationSuite) TestEntriesExpire() {
	shortLived := NewContentCache(s.client, "test", 500*time.Millisecond, s.logger)
	const url = "https://example.com/short"

	s.Require().NoError(shortLived.Save(s.ctx, url, &domain.ArticleContent{Title: "t", Content: "c"}))

	entry, err := shortLived.Get(s.ctx, url)
	s.Require().NoError(err)
	s.Require().NotNil(entry)

	s.Eventually(func() bool {
		entry, err := shortLived.Get(s.ctx, url)
		return err == nil && entry == nil
	}, 3*time.Second, 100*time.Millisecond)
}

// A blob that stopped unmarshalling reads as a miss and disappears, so the
// next fetch repopulates it instead of failing forever.
func (s *CacheIntegrationSuite) TestMalformedEntrySelfHeals() {
	const url = "https://example.com/corrupted"
	s.Require().NoError(s.cache.Save(s.ctx, url, &domain.ArticleContent{Title: "t", Content: "c"}))

	keys, err := s.client.Keys(s.ctx, "test:content:*").Result()
	s.Require().NoError(err)
	s.Require().Len(keys, 1)

	s.Require().NoError(s.client.Set(s.ctx, keys[0], "{definitely not json", 0).Err())

	entry, err := s.cache.Get(s.ctx, url)
	s.Require().NoError(err)
	s.Nil(entry)

	exists, err := s.client.Exists(s.ctx, keys[0]).Result()
	s.Require().NoError(err)
	s.Equal(int64(0), exists)
}

func (s *CacheIntegrationSuite) TestRemove() {
	const url = "https://example.com/removed"
	s.Require().NoError(s.cache.Save(s.ctx, url, &domain.ArticleContent{Title: "t", Content: "c"}))

	s.Require().NoError(s.cache.Remove(s.ctx, url))

	entry, err := s.cache.Get(s.ctx, url)
	s.Require().NoError(err)
	s.Nil(entry)
}

func (s *CacheIntegrationSuite) TestClearRespectsNamespace() {
	other := NewContentCache(s.client, "other", time.Hour, s.logger)

	for _, url := range []string{"https://example.com/a", "https://example.com/b"} {
		s.Require().NoError(s.cache.Save(s.ctx, url, &domain.ArticleContent{Title: "t", Content: "c"}))
	}
	s.Require().NoError(other.Save(s.ctx, "https://example.com/a", &domain.ArticleContent{Title: "t", Content: "c"}))

	s.Require().NoError(s.cache.Clear(s.ctx))

	entry, err := s.cache.Get(s.ctx, "https://example.com/a")
	s.Require().NoError(err)
	s.Nil(entry)

	entry, err = other.Get(s.ctx, "https://example.com/a")
	s.Require().NoError(err)
	s.NotNil(entry)
}
