package inbox

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"mvdan.cc/xurls/v2"

	"readlater/internal/domain"
)

var urlRe *regexp.Regexp

func init() {
	re, err := xurls.StrictMatchingScheme(`https?://`)
	if err != nil {
		panic(fmt.Sprintf("inbox: compile url regexp: %v", err))
	}
	urlRe = re
}

// ExtractURL pulls the first http(s) URL out of free-form shared text and
// canonicalizes it. Share sheets hand over prose with the link embedded
// somewhere inside.
func ExtractURL(text string) (string, bool) {
	match := urlRe.FindString(text)
	if match == "" {
		return "", false
	}
	return domain.CanonicalURL(match)
}

// Inbox is the durable queue of shared URLs, a Redis sorted set scored by
// share time. Producers (share extensions) only append; the reconciler
// consumes entries past its watermark and trims behind itself.
//
// Scores are unix milliseconds so they survive the float64 round-trip
// exactly; watermark comparisons rely on that.
type Inbox struct {
	client    *redis.Client
	namespace string
	logger    *slog.Logger
}

func New(client *redis.Client, namespace string, logger *slog.Logger) *Inbox {
	return &Inbox{
		client:    client,
		namespace: namespace,
		logger:    logger.With(slog.String("component", "inbox")),
	}
}

func (i *Inbox) key() string {
	return i.namespace + ":inbox"
}

// Append records url as shared at sharedAt. Re-sharing the same URL moves it
// to the new timestamp rather than duplicating it.
func (i *Inbox) Append(ctx context.Context, url string, sharedAt time.Time) error {
	member := redis.Z{
		Score:  float64(sharedAt.UnixMilli()),
		Member: url,
	}
	if err := i.client.ZAdd(ctx, i.key(), member).Err(); err != nil {
		return fmt.Errorf("append inbox entry: %w", err)
	}
	return nil
}

// AppendText extracts the first URL from shared text and appends it,
// returning the canonical URL that was stored. Text without a usable URL is
// rejected with ErrInvalidInput.
func (i *Inbox) AppendText(ctx context.Context, text string, sharedAt time.Time) (string, error) {
	url, ok := ExtractURL(text)
	if !ok {
		return "", fmt.Errorf("%w: no url in shared text", domain.ErrInvalidInput)
	}
	if err := i.Append(ctx, url, sharedAt); err != nil {
		return "", err
	}
	return url, nil
}

// EntriesAfter returns entries shared strictly after watermark, oldest
// first.
func (i *Inbox) EntriesAfter(ctx context.Context, watermark time.Time) ([]domain.SharedURLRecord, error) {
	min := "-inf"
	if !watermark.IsZero() {
		min = "(" + strconv.FormatInt(watermark.UnixMilli(), 10)
	}

	members, err := i.client.ZRangeByScoreWithScores(ctx, i.key(), &redis.ZRangeBy{
		Min: min,
		Max: "+inf",
	}).Result()
	if err != nil {
		return nil, fmt.Errorf("read inbox entries: %w", err)
	}

	records := make([]domain.SharedURLRecord, 0, len(members))
	for _, m := range members {
		url, ok := m.Member.(string)
		if !ok {
			continue
		}
		records = append(records, domain.SharedURLRecord{
			URL:      url,
			SharedAt: time.UnixMilli(int64(m.Score)).UTC(),
		})
	}

	return records, nil
}

// Trim removes every entry shared at or before upTo.
func (i *Inbox) Trim(ctx context.Context, upTo time.Time) error {
	max := strconv.FormatInt(upTo.UnixMilli(), 10)
	if err := i.client.ZRemRangeByScore(ctx, i.key(), "-inf", max).Err(); err != nil {
		return fmt.Errorf("trim inbox: %w", err)
	}
	return nil
}

// Clear drops the whole inbox.
func (i *Inbox) Clear(ctx context.Context) error {
	if err := i.client.Del(ctx, i.key()).Err(); err != nil {
		return fmt.Errorf("clear inbox: %w", err)
	}
	return nil
}
