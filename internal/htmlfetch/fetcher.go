package htmlfetch

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"readlater/internal/domain"
)

const defaultUserAgent = "readlater/1.0"

// Fetcher retrieves raw article HTML for the embedded parser. It insists on
// a 200 text/html response and caps how much body it reads; anything else is
// reported as unavailable content so the caller can move to the next tier.
type Fetcher struct {
	client    *http.Client
	userAgent string
	maxBytes  int64
	logger    *slog.Logger
}

func NewFetcher(client *http.Client, userAgent string, maxBytes int64, logger *slog.Logger) *Fetcher {
	if client == nil {
		client = &http.Client{}
	}
	if userAgent == "" {
		userAgent = defaultUserAgent
	}
	return &Fetcher{
		client:    client,
		userAgent: userAgent,
		maxBytes:  maxBytes,
		logger:    logger.With(slog.String("component", "htmlfetch")),
	}
}

func (f *Fetcher) Fetch(ctx context.Context, url string, timeout time.Duration) (string, error) {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("%w: build request: %v", domain.ErrInvalidInput, err)
	}
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml")

	resp, err := f.client.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return "", domain.CancelOrWrap(ctx, err)
		}
		return "", fmt.Errorf("%w: fetch %s: %v", domain.ErrNetwork, url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: unexpected status %d", domain.ErrContentUnavailable, resp.StatusCode)
	}

	contentType := resp.Header.Get("Content-Type")
	if !strings.Contains(strings.ToLower(contentType), "text/html") {
		return "", fmt.Errorf("%w: content type %q is not HTML", domain.ErrContentUnavailable, contentType)
	}

	body := resp.Body
	if f.maxBytes > 0 {
		body = struct {
			io.Reader
			io.Closer
		}{io.LimitReader(resp.Body, f.maxBytes), resp.Body}
	}

	data, err := io.ReadAll(body)
	if err != nil {
		if ctx.Err() != nil {
			return "", domain.CancelOrWrap(ctx, err)
		}
		return "", fmt.Errorf("%w: read body: %v", domain.ErrNetwork, err)
	}

	return string(data), nil
}
