package cache

import (
	"context"
	"crypto/sha256"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"readlater/internal/domain"
)

// Entry is the cached value for one URL. SavedAt lets callers apply their own
// freshness window on top of the Redis TTL.
type Entry struct {
	Content domain.ArticleContent `json:"content"`
	SavedAt time.Time             `json:"saved_at"`
}

// ContentCache stores fetched article content in Redis keyed by URL hash.
// The namespace is shared by every process of the deployment, so content
// fetched by the daemon is visible to reconciliation and vice versa.
type ContentCache struct {
	client     *redis.Client
	namespace  string
	expiration time.Duration
	logger     *slog.Logger
}

func NewContentCache(client *redis.Client, namespace string, expiration time.Duration, logger *slog.Logger) *ContentCache {
	return &ContentCache{
		client:     client,
		namespace:  namespace,
		expiration: expiration,
		logger:     logger.With(slog.String("component", "content_cache")),
	}
}

func (c *ContentCache) key(url string) string {
	hash := sha256.Sum256([]byte(url))
	return fmt.Sprintf("%s:content:%x", c.namespace, hash[:8])
}

// Get returns the cached entry for url, or (nil, nil) on a miss. A blob that
// no longer unmarshals is deleted and reported as a miss rather than an
// error.
func (c *ContentCache) Get(ctx context.Context, url string) (*Entry, error) {
	key := c.key(url)

	data, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get cached content: %w", err)
	}

	var entry Entry
	if err := json.Unmarshal(data, &entry); err != nil {
		c.logger.Warn("dropping malformed cache entry", slog.String("url", url), slog.String("error", err.Error()))
		if delErr := c.client.Del(ctx, key).Err(); delErr != nil {
			c.logger.Warn("failed to delete malformed cache entry", slog.String("url", url), slog.String("error", delErr.Error()))
		}
		return nil, nil
	}

	return &entry, nil
}

// Save stores content for url with the configured TTL, stamped with the
// current time. Failures are returned but callers treat the cache as a pure
// accelerator and must not fail their operation over them.
func (c *ContentCache) Save(ctx context.Context, url string, content *domain.ArticleContent) error {
	entry := Entry{
		Content: *content,
		SavedAt: time.Now().UTC(),
	}

	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("marshal cache entry: %w", err)
	}

	if err := c.client.Set(ctx, c.key(url), data, c.expiration).Err(); err != nil {
		return fmt.Errorf("save cached content: %w", err)
	}

	return nil
}

// Remove drops the entry for url if present.
func (c *ContentCache) Remove(ctx context.Context, url string) error {
	if err := c.client.Del(ctx, c.key(url)).Err(); err != nil {
		return fmt.Errorf("remove cached content: %w", err)
	}
	return nil
}

// Clear deletes every content entry in this namespace.
func (c *ContentCache) Clear(ctx context.Context) error {
	iter := c.client.Scan(ctx, 0, c.namespace+":content:*", 100).Iterator()
	for iter.Next(ctx) {
		if err := c.client.Del(ctx, iter.Val()).Err(); err != nil {
			return fmt.Errorf("clear cached content: %w", err)
		}
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("scan cached content: %w", err)
	}
	return nil
}
