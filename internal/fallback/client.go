package fallback

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"readlater/internal/domain"
)

// Config holds extraction API client configuration. An empty BaseURL leaves
// the tier disabled.
type Config struct {
	BaseURL        string
	Token          string
	Timeout        time.Duration
	MaxAttempts    int
	InitialBackoff time.Duration
	MaxBackoff     time.Duration
}

// Client talks to the hosted extraction API that backs the fallback tier of
// the content pipeline. Failures map onto the domain taxonomy so callers can
// tell an outage from an unextractable page.
type Client struct {
	httpClient     *http.Client
	baseURL        string
	token          string
	maxAttempts    int
	initialBackoff time.Duration
	maxBackoff     time.Duration
	logger         *slog.Logger
}

func New(cfg Config, logger *slog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		baseURL:        cfg.BaseURL,
		token:          cfg.Token,
		maxAttempts:    cfg.MaxAttempts,
		initialBackoff: cfg.InitialBackoff,
		maxBackoff:     cfg.MaxBackoff,
		logger:         logger.With(slog.String("component", "fallback")),
	}
}

// Enabled reports whether a base URL was configured.
func (c *Client) Enabled() bool {
	return c.baseURL != ""
}

// FetchArticle asks the extraction API for the readable content of pageURL.
// Transient failures are retried with exponential backoff; permanent ones
// (unextractable page, cancellation) are returned immediately.
func (c *Client) FetchArticle(ctx context.Context, pageURL string, timeout time.Duration) (*domain.ArticleContent, error) {
	if !c.Enabled() {
		return nil, fmt.Errorf("%w: extraction api not configured", domain.ErrServiceUnavailable)
	}

	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	requestURL := fmt.Sprintf("%s/parse?url=%s", c.baseURL, url.QueryEscape(pageURL))

	var resp *APIResponse
	var err error

	for attempt := 1; attempt <= c.maxAttempts; attempt++ {
		resp, err = c.doRequest(ctx, requestURL)
		if err == nil {
			return c.transform(resp, pageURL)
		}

		if !retryable(err) || attempt == c.maxAttempts {
			break
		}

		backoff := c.calculateBackoff(attempt)
		c.logger.Warn("extraction request failed, retrying",
			slog.Int("attempt", attempt),
			slog.Duration("backoff", backoff),
			slog.String("error", err.Error()),
		)

		select {
		case <-ctx.Done():
			return nil, domain.CancelOrWrap(ctx, ctx.Err())
		case <-time.After(backoff):
		}
	}

	return nil, err
}

func (c *Client) doRequest(ctx context.Context, requestURL string) (*APIResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: create request: %v", domain.ErrInvalidInput, err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "readlater/1.0")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, domain.CancelOrWrap(ctx, err)
		}
		return nil, fmt.Errorf("%w: execute request: %v", domain.ErrNetwork, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
	case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500:
		return nil, fmt.Errorf("%w: status %d", domain.ErrServiceUnavailable, resp.StatusCode)
	default:
		return nil, fmt.Errorf("%w: status %d", domain.ErrContentUnavailable, resp.StatusCode)
	}

	var apiResp APIResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, fmt.Errorf("%w: decode response: %v", domain.ErrServiceUnavailable, err)
	}

	return &apiResp, nil
}

func (c *Client) calculateBackoff(attempt int) time.Duration {
	backoff := c.initialBackoff
	for i := 1; i < attempt; i++ {
		backoff *= 2
	}
	if backoff > c.maxBackoff {
		backoff = c.maxBackoff
	}
	return backoff
}

func (c *Client) transform(resp *APIResponse, pageURL string) (*domain.ArticleContent, error) {
	if resp.Content == "" {
		return nil, fmt.Errorf("%w: extraction produced no content", domain.ErrContentUnavailable)
	}

	content := &domain.ArticleContent{
		Content:      resp.Content,
		Author:       resp.Metadata.Author,
		ThumbnailURL: resp.Metadata.Thumbnail,
		Description:  resp.Metadata.Excerpt,
		WordCount:    resp.Metadata.WordCount,
	}
	if resp.Metadata.Title != nil {
		content.Title = *resp.Metadata.Title
	}
	if resp.Metadata.PublishedDate != nil && *resp.Metadata.PublishedDate != "" {
		published, err := time.Parse(time.RFC3339, *resp.Metadata.PublishedDate)
		if err != nil {
			c.logger.Warn("failed to parse published date",
				slog.String("url", pageURL),
				slog.String("date", *resp.Metadata.PublishedDate),
			)
		} else {
			published = published.UTC()
			content.PublishedAt = &published
		}
	}

	return content, nil
}

func retryable(err error) bool {
	if domain.IsCancelled(err) {
		return false
	}
	if errors.Is(err, domain.ErrContentUnavailable) || errors.Is(err, domain.ErrInvalidInput) {
		return false
	}
	return true
}
