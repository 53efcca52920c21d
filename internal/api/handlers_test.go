package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"

	"readlater/internal/domain"
	"readlater/internal/service"
)

type libraryStub struct {
	add         func(rawURL string) (*domain.Article, bool, error)
	list        func(limit int) ([]domain.Article, error)
	get         func(id string) (*domain.Article, error)
	del         func(id string) error
	updateState func(id string, patch service.StatePatch) (*domain.Article, error)
}

func (s *libraryStub) Add(_ context.Context, rawURL string) (*domain.Article, bool, error) {
	return s.add(rawURL)
}

func (s *libraryStub) List(_ context.Context, limit int) ([]domain.Article, error) {
	return s.list(limit)
}

func (s *libraryStub) Get(_ context.Context, id string) (*domain.Article, error) {
	return s.get(id)
}

func (s *libraryStub) Delete(_ context.Context, id string) error {
	return s.del(id)
}

func (s *libraryStub) UpdateState(_ context.Context, id string, patch service.StatePatch) (*domain.Article, error) {
	return s.updateState(id, patch)
}

type readerStub struct {
	load func(articleID string, forceRefresh bool) (*domain.ArticleContent, error)
}

func (s *readerStub) LoadContent(_ context.Context, articleID string, forceRefresh bool) (*domain.ArticleContent, error) {
	return s.load(articleID, forceRefresh)
}

type inboxStub struct {
	appendText func(text string) (string, error)
}

func (s *inboxStub) AppendText(_ context.Context, text string, _ time.Time) (string, error) {
	return s.appendText(text)
}

type reconcilerStub struct {
	reconcile func() (*domain.ReconcileStats, error)
}

func (s *reconcilerStub) Reconcile(_ context.Context) (*domain.ReconcileStats, error) {
	return s.reconcile()
}

type sweeperStub struct {
	sweep func() (*domain.SweepStats, error)
}

func (s *sweeperStub) Sweep(_ context.Context) (*domain.SweepStats, error) {
	return s.sweep()
}

type HandlerTestSuite struct {
	suite.Suite

	library    *libraryStub
	reader     *readerStub
	inbox      *inboxStub
	reconciler *reconcilerStub
	sweeper    *sweeperStub

	logger *slog.Logger
}

func (s *HandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	s.library = &libraryStub{}
	s.reader = &readerStub{}
	s.inbox = &inboxStub{}
	s.reconciler = &reconcilerStub{}
	s.sweeper = &sweeperStub{}

	s.logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

func TestHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}

func (s *HandlerTestSuite) newRouter(adminKey string) *gin.Engine {
	h := NewHandler(s.library, s.reader, s.inbox, s.reconciler, s.sweeper, s.logger)
	return NewRouter(h, adminKey, s.logger)
}

func (s *HandlerTestSuite) perform(router *gin.Engine, method, path string, body any, headers map[string]string) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		s.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func (s *HandlerTestSuite) decode(rec *httptest.ResponseRecorder) map[string]any {
	var body map[string]any
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func (s *HandlerTestSuite) TestAddArticle_Created() {
	s.library.add = func(rawURL string) (*domain.Article, bool, error) {
		s.Equal("https://example.com/new", rawURL)
		return &domain.Article{ID: "id-1", URL: "https://example.com/new", Title: "New"}, true, nil
	}

	rec := s.perform(s.newRouter(""), http.MethodPost, "/articles",
		gin.H{"url": "https://example.com/new"}, nil)

	s.Equal(http.StatusCreated, rec.Code)
	body := s.decode(rec)
	s.Equal("https://example.com/new", body["url"])
}

func (s *HandlerTestSuite) TestAddArticle_AlreadySaved() {
	s.library.add = func(string) (*domain.Article, bool, error) {
		return &domain.Article{ID: "id-1", URL: "https://example.com/old"}, false, nil
	}

	rec := s.perform(s.newRouter(""), http.MethodPost, "/articles",
		gin.H{"url": "https://example.com/old"}, nil)

	s.Equal(http.StatusOK, rec.Code)
}

func (s *HandlerTestSuite) TestAddArticle_InvalidURL() {
	s.library.add = func(string) (*domain.Article, bool, error) {
		return nil, false, fmt.Errorf("%w: unusable url", domain.ErrInvalidInput)
	}

	rec := s.perform(s.newRouter(""), http.MethodPost, "/articles",
		gin.H{"url": "nope"}, nil)

	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *HandlerTestSuite) TestAddArticle_MissingBody() {
	rec := s.perform(s.newRouter(""), http.MethodPost, "/articles", gin.H{}, nil)

	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *HandlerTestSuite) TestAddArticle_FetchFailure() {
	s.library.add = func(string) (*domain.Article, bool, error) {
		return nil, false, fmt.Errorf("fetch preview: %w", domain.ErrNetwork)
	}

	rec := s.perform(s.newRouter(""), http.MethodPost, "/articles",
		gin.H{"url": "https://example.com/dead"}, nil)

	s.Equal(http.StatusBadGateway, rec.Code)
}

func (s *HandlerTestSuite) TestListArticles() {
	s.library.list = func(limit int) ([]domain.Article, error) {
		s.Equal(10, limit)
		return []domain.Article{{ID: "id-1"}, {ID: "id-2"}}, nil
	}

	rec := s.perform(s.newRouter(""), http.MethodGet, "/articles?limit=10", nil, nil)

	s.Equal(http.StatusOK, rec.Code)
	body := s.decode(rec)
	s.Equal(float64(2), body["total"])
}

func (s *HandlerTestSuite) TestListArticles_BadLimit() {
	rec := s.perform(s.newRouter(""), http.MethodGet, "/articles?limit=-1", nil, nil)

	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *HandlerTestSuite) TestGetArticle_NotFound() {
	s.library.get = func(string) (*domain.Article, error) {
		return nil, domain.ErrNotFound
	}

	rec := s.perform(s.newRouter(""), http.MethodGet, "/articles/gone", nil, nil)

	s.Equal(http.StatusNotFound, rec.Code)
}

func (s *HandlerTestSuite) TestGetContent() {
	s.reader.load = func(articleID string, forceRefresh bool) (*domain.ArticleContent, error) {
		s.Equal("id-1", articleID)
		s.False(forceRefresh)
		return &domain.ArticleContent{Title: "Readable", Content: "some words to read here"}, nil
	}

	rec := s.perform(s.newRouter(""), http.MethodGet, "/articles/id-1/content", nil, nil)

	s.Equal(http.StatusOK, rec.Code)
	body := s.decode(rec)
	s.Equal("Readable", body["title"])
	s.Equal("1 min", body["reading_time"])
}

func (s *HandlerTestSuite) TestGetContent_ForceRefresh() {
	s.reader.load = func(_ string, forceRefresh bool) (*domain.ArticleContent, error) {
		s.True(forceRefresh)
		return &domain.ArticleContent{Title: "Fresh", Content: "body"}, nil
	}

	rec := s.perform(s.newRouter(""), http.MethodGet, "/articles/id-1/content?refresh=true", nil, nil)

	s.Equal(http.StatusOK, rec.Code)
}

// Extraction failures return the reader error view: no retry hint, but the
// original URL so the client can offer opening it directly.
func (s *HandlerTestSuite) TestGetContent_Unextractable() {
	s.reader.load = func(string, bool) (*domain.ArticleContent, error) {
		return nil, fmt.Errorf("fallback fetch: %w", domain.ErrContentUnavailable)
	}
	s.library.get = func(string) (*domain.Article, error) {
		return &domain.Article{ID: "id-1", URL: "https://example.com/original"}, nil
	}

	rec := s.perform(s.newRouter(""), http.MethodGet, "/articles/id-1/content", nil, nil)

	s.Equal(http.StatusBadGateway, rec.Code)
	body := s.decode(rec)
	s.Equal(false, body["retry"])
	s.Equal("https://example.com/original", body["original_url"])
}

func (s *HandlerTestSuite) TestGetContent_ServiceDown() {
	s.reader.load = func(string, bool) (*domain.ArticleContent, error) {
		return nil, domain.ErrServiceUnavailable
	}
	s.library.get = func(string) (*domain.Article, error) {
		return &domain.Article{ID: "id-1", URL: "https://example.com/original"}, nil
	}

	rec := s.perform(s.newRouter(""), http.MethodGet, "/articles/id-1/content", nil, nil)

	s.Equal(http.StatusServiceUnavailable, rec.Code)
	body := s.decode(rec)
	s.Equal(true, body["retry"])
}

func (s *HandlerTestSuite) TestGetContent_DeletedMidFetch() {
	s.reader.load = func(string, bool) (*domain.ArticleContent, error) {
		return nil, domain.ErrNotFound
	}
	s.library.get = func(string) (*domain.Article, error) {
		return nil, domain.ErrNotFound
	}

	rec := s.perform(s.newRouter(""), http.MethodGet, "/articles/id-1/content", nil, nil)

	s.Equal(http.StatusNotFound, rec.Code)
}

// A client that hung up gets a bare 499 and no error body.
func (s *HandlerTestSuite) TestGetContent_Cancelled() {
	s.reader.load = func(string, bool) (*domain.ArticleContent, error) {
		return nil, domain.ErrCancelled
	}

	rec := s.perform(s.newRouter(""), http.MethodGet, "/articles/id-1/content", nil, nil)

	s.Equal(statusClientClosedRequest, rec.Code)
	s.Empty(rec.Body.String())
}

func (s *HandlerTestSuite) TestUpdateArticle() {
	s.library.updateState = func(id string, patch service.StatePatch) (*domain.Article, error) {
		s.Equal("id-1", id)
		s.NotNil(patch.ReadPosition)
		s.Equal(0.5, *patch.ReadPosition)
		s.Nil(patch.Favorite)
		return &domain.Article{ID: id, ReadPosition: 0.5}, nil
	}

	rec := s.perform(s.newRouter(""), http.MethodPatch, "/articles/id-1",
		gin.H{"read_position": 0.5}, nil)

	s.Equal(http.StatusOK, rec.Code)
	body := s.decode(rec)
	s.Equal(0.5, body["read_position"])
}

func (s *HandlerTestSuite) TestUpdateArticle_BadPosition() {
	s.library.updateState = func(string, service.StatePatch) (*domain.Article, error) {
		return nil, fmt.Errorf("%w: read position out of range", domain.ErrInvalidInput)
	}

	rec := s.perform(s.newRouter(""), http.MethodPatch, "/articles/id-1",
		gin.H{"read_position": 1.5}, nil)

	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *HandlerTestSuite) TestDeleteArticle() {
	s.library.del = func(id string) error {
		s.Equal("id-1", id)
		return nil
	}

	rec := s.perform(s.newRouter(""), http.MethodDelete, "/articles/id-1", nil, nil)

	s.Equal(http.StatusNoContent, rec.Code)
}

func (s *HandlerTestSuite) TestAppendInbox() {
	s.inbox.appendText = func(text string) (string, error) {
		s.Contains(text, "example.com")
		return "https://example.com/shared", nil
	}

	rec := s.perform(s.newRouter(""), http.MethodPost, "/inbox",
		gin.H{"text": "look at this https://example.com/shared thing"}, nil)

	s.Equal(http.StatusAccepted, rec.Code)
	body := s.decode(rec)
	s.Equal("https://example.com/shared", body["url"])
}

func (s *HandlerTestSuite) TestAppendInbox_NoURL() {
	s.inbox.appendText = func(string) (string, error) {
		return "", fmt.Errorf("%w: no url in shared text", domain.ErrInvalidInput)
	}

	rec := s.perform(s.newRouter(""), http.MethodPost, "/inbox",
		gin.H{"text": "just words"}, nil)

	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *HandlerTestSuite) TestAdminReconcile_RequiresKey() {
	router := s.newRouter("secret")

	rec := s.perform(router, http.MethodPost, "/admin/reconcile", nil, nil)
	s.Equal(http.StatusUnauthorized, rec.Code)

	s.reconciler.reconcile = func() (*domain.ReconcileStats, error) {
		return &domain.ReconcileStats{Entries: 3, Created: 2, Skipped: 1}, nil
	}

	rec = s.perform(router, http.MethodPost, "/admin/reconcile", nil,
		map[string]string{"X-API-Key": "secret"})
	s.Equal(http.StatusOK, rec.Code)
	body := s.decode(rec)
	s.Equal(float64(2), body["created"])
}

func (s *HandlerTestSuite) TestAdminSweep() {
	s.sweeper.sweep = func() (*domain.SweepStats, error) {
		return &domain.SweepStats{URLs: 1, Merged: 1, Deleted: 2}, nil
	}

	rec := s.perform(s.newRouter(""), http.MethodPost, "/admin/sweep", nil, nil)

	s.Equal(http.StatusOK, rec.Code)
	body := s.decode(rec)
	s.Equal(float64(2), body["deleted"])
}

func (s *HandlerTestSuite) TestHealth() {
	rec := s.perform(s.newRouter(""), http.MethodGet, "/health", nil, nil)

	s.Equal(http.StatusOK, rec.Code)
	s.Equal("ok", s.decode(rec)["status"])
}
