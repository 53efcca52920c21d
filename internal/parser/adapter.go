package parser

import (
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	md "github.com/JohannesKaufmann/html-to-markdown"
	readability "github.com/go-shiori/go-readability"
)

// Result is what a parse attempt produced. Parse never fails with an error;
// an unusable document comes back as Success=false with Err describing why,
// and the caller decides whether to fall back.
type Result struct {
	Success  bool
	Content  string
	Metadata *ResultMetadata
	Err      string
}

// ResultMetadata carries whatever the readability pass recovered about the
// page. Everything except Title is optional.
type ResultMetadata struct {
	Title     string
	Author    *string
	Published *time.Time
	Excerpt   *string
	SiteName  *string
	ImageURL  *string
}

// Adapter wraps the embedded readability engine and normalizes its output to
// markdown. It works purely on HTML handed to it; fetching is the caller's
// problem.
type Adapter struct {
	enabled bool
	logger  *slog.Logger
}

func NewAdapter(enabled bool, logger *slog.Logger) *Adapter {
	return &Adapter{
		enabled: enabled,
		logger:  logger.With(slog.String("component", "parser")),
	}
}

// Ready reports whether the embedded engine is available. A disabled adapter
// makes every fetch go straight to the fallback tier.
func (a *Adapter) Ready() bool {
	return a.enabled
}

// Parse runs readability extraction over html and converts the result to
// markdown. Empty extracted content is a failed parse, not an error.
func (a *Adapter) Parse(html, pageURL string) *Result {
	if !a.enabled {
		return &Result{Err: "parser disabled"}
	}
	if strings.TrimSpace(html) == "" {
		return &Result{Err: "empty document"}
	}

	parsed, err := url.Parse(pageURL)
	if err != nil {
		parsed = nil
	}

	article, err := readability.FromReader(strings.NewReader(html), parsed)
	if err != nil {
		return &Result{Err: fmt.Sprintf("readability: %v", err)}
	}

	content := article.Content
	if content != "" {
		converter := md.NewConverter("", true, nil)
		markdown, err := converter.ConvertString(content)
		if err != nil {
			a.logger.Debug("markdown conversion failed, using text content",
				slog.String("url", pageURL), slog.String("error", err.Error()))
			markdown = article.TextContent
		}
		content = markdown
	}
	content = strings.TrimSpace(content)
	if content == "" {
		return &Result{Err: "no content extracted"}
	}

	meta := &ResultMetadata{Title: strings.TrimSpace(article.Title)}
	if byline := strings.TrimSpace(article.Byline); byline != "" {
		meta.Author = &byline
	}
	if excerpt := strings.TrimSpace(article.Excerpt); excerpt != "" {
		meta.Excerpt = &excerpt
	}
	if site := strings.TrimSpace(article.SiteName); site != "" {
		meta.SiteName = &site
	}
	if article.Image != "" {
		img := article.Image
		meta.ImageURL = &img
	}
	if article.PublishedTime != nil {
		published := article.PublishedTime.UTC()
		meta.Published = &published
	}

	return &Result{Success: true, Content: content, Metadata: meta}
}
