package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"readlater/internal/domain"
	"readlater/internal/service"
)

// Client closed the connection before the response; nginx convention.
const statusClientClosedRequest = 499

// The handler sees the services through the narrowest interfaces it needs.
type Library interface {
	Add(ctx context.Context, rawURL string) (*domain.Article, bool, error)
	List(ctx context.Context, limit int) ([]domain.Article, error)
	Get(ctx context.Context, id string) (*domain.Article, error)
	Delete(ctx context.Context, id string) error
	UpdateState(ctx context.Context, id string, patch service.StatePatch) (*domain.Article, error)
}

type Reader interface {
	LoadContent(ctx context.Context, articleID string, forceRefresh bool) (*domain.ArticleContent, error)
}

type InboxAppender interface {
	AppendText(ctx context.Context, text string, sharedAt time.Time) (string, error)
}

type Reconciler interface {
	Reconcile(ctx context.Context) (*domain.ReconcileStats, error)
}

type Sweeper interface {
	Sweep(ctx context.Context) (*domain.SweepStats, error)
}

type Handler struct {
	library    Library
	reader     Reader
	inbox      InboxAppender
	reconciler Reconciler
	sweeper    Sweeper
	logger     *slog.Logger
}

func NewHandler(
	library Library,
	reader Reader,
	inbox InboxAppender,
	reconciler Reconciler,
	sweeper Sweeper,
	logger *slog.Logger,
) *Handler {
	return &Handler{
		library:    library,
		reader:     reader,
		inbox:      inbox,
		reconciler: reconciler,
		sweeper:    sweeper,
		logger:     logger.With(slog.String("component", "api")),
	}
}

type addArticleRequest struct {
	URL string `json:"url" binding:"required"`
}

func (h *Handler) AddArticle(c *gin.Context) {
	var req addArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "url is required"})
		return
	}

	article, created, err := h.library.Add(c.Request.Context(), req.URL)
	if err != nil {
		h.writeError(c, err)
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	c.JSON(status, article)
}

func (h *Handler) ListArticles(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "0"))
	if err != nil || limit < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a non-negative integer"})
		return
	}

	articles, err := h.library.List(c.Request.Context(), limit)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"articles": articles,
		"total":    len(articles),
	})
}

func (h *Handler) GetArticle(c *gin.Context) {
	article, err := h.library.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, article)
}

type contentResponse struct {
	*domain.ArticleContent
	ReadingTime string `json:"reading_time"`
}

// GetContent serves the reading view. Fetch failures carry hints the client
// renders as a retry button and an open-original link.
func (h *Handler) GetContent(c *gin.Context) {
	forceRefresh := c.Query("refresh") == "true" || c.Query("refresh") == "1"
	id := c.Param("id")

	content, err := h.reader.LoadContent(c.Request.Context(), id, forceRefresh)
	if err != nil {
		h.writeContentError(c, id, err)
		return
	}

	c.JSON(http.StatusOK, contentResponse{
		ArticleContent: content,
		ReadingTime:    content.ReadingTime(),
	})
}

type updateArticleRequest struct {
	ReadPosition *float64 `json:"read_position"`
	Favorite     *bool    `json:"favorite"`
	Archived     *bool    `json:"archived"`
}

func (h *Handler) UpdateArticle(c *gin.Context) {
	var req updateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "malformed body"})
		return
	}

	article, err := h.library.UpdateState(c.Request.Context(), c.Param("id"), service.StatePatch{
		ReadPosition: req.ReadPosition,
		Favorite:     req.Favorite,
		Archived:     req.Archived,
	})
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, article)
}

func (h *Handler) DeleteArticle(c *gin.Context) {
	if err := h.library.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.writeError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

type appendInboxRequest struct {
	Text string `json:"text" binding:"required"`
}

// AppendInbox is the capture path for share extensions: free text in, the
// first URL extracted and queued, reconciliation picks it up later.
func (h *Handler) AppendInbox(c *gin.Context) {
	var req appendInboxRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "text is required"})
		return
	}

	url, err := h.inbox.AppendText(c.Request.Context(), req.Text, time.Now().UTC())
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusAccepted, gin.H{"url": url})
}

func (h *Handler) RunReconcile(c *gin.Context) {
	stats, err := h.reconciler.Reconcile(c.Request.Context())
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"entries": stats.Entries,
		"created": stats.Created,
		"merged":  stats.Merged,
		"skipped": stats.Skipped,
		"errors":  stats.Errors,
	})
}

func (h *Handler) RunSweep(c *gin.Context) {
	stats, err := h.sweeper.Sweep(c.Request.Context())
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"urls":    stats.URLs,
		"merged":  stats.Merged,
		"deleted": stats.Deleted,
		"errors":  stats.Errors,
	})
}

func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// writeError maps the domain taxonomy onto HTTP statuses. A cancelled
// request gets a bare status and a debug line: the client is gone, there is
// nobody to show an error to.
func (h *Handler) writeError(c *gin.Context, err error) {
	switch {
	case domain.IsCancelled(err):
		h.logger.Debug("request cancelled", slog.String("path", c.Request.URL.Path))
		c.Status(statusClientClosedRequest)
	case errors.Is(err, domain.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, domain.ErrServiceUnavailable):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "content service unavailable"})
	case errors.Is(err, domain.ErrNetwork), errors.Is(err, domain.ErrContentUnavailable):
		c.JSON(http.StatusBadGateway, gin.H{"error": "content could not be fetched"})
	default:
		h.logger.Error("request failed",
			slog.String("path", c.Request.URL.Path), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

// writeContentError is writeError plus the reader error view contract: fetch
// failures tell the client whether a retry makes sense and carry the original
// URL as an escape hatch.
func (h *Handler) writeContentError(c *gin.Context, id string, err error) {
	switch {
	case domain.IsCancelled(err):
		h.logger.Debug("content request cancelled", slog.String("article_id", id))
		c.Status(statusClientClosedRequest)
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, domain.ErrServiceUnavailable):
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"error":        "content service unavailable",
			"retry":        true,
			"original_url": h.originalURL(c.Request.Context(), id),
		})
	case errors.Is(err, domain.ErrNetwork):
		c.JSON(http.StatusBadGateway, gin.H{
			"error":        "network failure while fetching content",
			"retry":        true,
			"original_url": h.originalURL(c.Request.Context(), id),
		})
	case errors.Is(err, domain.ErrContentUnavailable):
		c.JSON(http.StatusBadGateway, gin.H{
			"error":        "article content could not be extracted",
			"retry":        false,
			"original_url": h.originalURL(c.Request.Context(), id),
		})
	default:
		h.logger.Error("content request failed",
			slog.String("article_id", id), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

// originalURL is best effort; an empty string just hides the link client-side.
func (h *Handler) originalURL(ctx context.Context, id string) string {
	article, err := h.library.Get(ctx, id)
	if err != nil {
		return ""
	}
	return article.URL
}
