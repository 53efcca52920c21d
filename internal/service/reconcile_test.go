package service

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"readlater/internal/cache"
	"readlater/internal/config"
	"readlater/internal/domain"
	"readlater/internal/service/mocks"
)

type ReconcilerTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller

	inbox     *mocks.MockSharedInbox
	state     *mocks.MockReconcileStateStore
	articles  *mocks.MockArticleStore
	guard     *mocks.MockArticleSaver
	cache     *mocks.MockContentCache
	content   *mocks.MockContentFetcher
	publisher *mocks.MockPublisher

	reconciler *Reconciler
	cfg        config.ContentConfig
	logger     *slog.Logger
}

func (s *ReconcilerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())

	s.inbox = mocks.NewMockSharedInbox(s.ctrl)
	s.state = mocks.NewMockReconcileStateStore(s.ctrl)
	s.articles = mocks.NewMockArticleStore(s.ctrl)
	s.guard = mocks.NewMockArticleSaver(s.ctrl)
	s.cache = mocks.NewMockContentCache(s.ctrl)
	s.content = mocks.NewMockContentFetcher(s.ctrl)
	s.publisher = mocks.NewMockPublisher(s.ctrl)

	s.cfg = config.ContentConfig{
		FetchTimeout:    30 * time.Second,
		MetadataTimeout: 10 * time.Second,
	}

	s.logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))

	s.reconciler = NewReconciler(
		s.inbox,
		s.state,
		s.articles,
		s.guard,
		s.cache,
		s.content,
		s.publisher,
		s.logger,
		s.cfg,
	)
}

func (s *ReconcilerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestReconcilerTestSuite(t *testing.T) {
	suite.Run(t, new(ReconcilerTestSuite))
}

var reconcileBase = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func (s *ReconcilerTestSuite) expectState(watermark time.Time) {
	s.state.EXPECT().Get(gomock.Any(), ReconcileSource).Return(&domain.ReconcileState{
		Source:    ReconcileSource,
		Watermark: watermark,
	}, nil)
}

func (s *ReconcilerTestSuite) TestReconcile_CreatesNewRecord() {
	ctx := context.Background()
	url := "https://example.com/shared"
	entry := domain.SharedURLRecord{URL: url, SharedAt: reconcileBase}

	s.expectState(time.Time{})
	s.inbox.EXPECT().EntriesAfter(ctx, time.Time{}).Return([]domain.SharedURLRecord{entry}, nil)

	s.articles.EXPECT().GetByURL(ctx, url).Return(nil, domain.ErrNotFound)
	s.content.EXPECT().FetchMetadata(ctx, url, s.cfg.MetadataTimeout).Return(&domain.ArticleMetadata{Title: "Shared Page"}, nil)
	s.cache.EXPECT().Get(ctx, url).Return(nil, nil)

	var saved *domain.Article
	s.guard.EXPECT().Save(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, article *domain.Article) (*domain.Article, bool, error) {
			saved = article
			return article, true, nil
		},
	)
	s.publisher.EXPECT().Publish(ctx, domain.EventCreated, gomock.Any()).Return(nil)

	s.state.EXPECT().Update(ctx, gomock.Any()).Return(nil)
	s.inbox.EXPECT().Trim(ctx, entry.SharedAt).Return(nil)

	stats, err := s.reconciler.Reconcile(ctx)

	s.NoError(err)
	s.Equal(1, stats.Entries)
	s.Equal(1, stats.Created)
	s.Equal(0, stats.Errors)
	s.Equal(url, saved.URL)
	s.Equal("Shared Page", saved.Title)
	s.Equal(entry.SharedAt, saved.SavedAt)
	s.NotEmpty(saved.ID)
}

// A new record picks up a body from the shared cache when another process
// already fetched this URL. Reconciliation itself never fetches bodies.
func (s *ReconcilerTestSuite) TestReconcile_NewRecordFillsContentFromCache() {
	ctx := context.Background()
	url := "https://example.com/shared"
	entry := domain.SharedURLRecord{URL: url, SharedAt: reconcileBase}

	s.expectState(time.Time{})
	s.inbox.EXPECT().EntriesAfter(ctx, time.Time{}).Return([]domain.SharedURLRecord{entry}, nil)

	s.articles.EXPECT().GetByURL(ctx, url).Return(nil, domain.ErrNotFound)
	s.content.EXPECT().FetchMetadata(ctx, url, s.cfg.MetadataTimeout).Return(&domain.ArticleMetadata{Title: "Shared Page"}, nil)
	s.cache.EXPECT().Get(ctx, url).Return(&cache.Entry{
		Content: domain.ArticleContent{Title: "Shared Page", Content: "cached body"},
		SavedAt: reconcileBase,
	}, nil)

	var saved *domain.Article
	s.guard.EXPECT().Save(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, article *domain.Article) (*domain.Article, bool, error) {
			saved = article
			return article, true, nil
		},
	)
	s.publisher.EXPECT().Publish(ctx, domain.EventCreated, gomock.Any()).Return(nil)
	s.state.EXPECT().Update(ctx, gomock.Any()).Return(nil)
	s.inbox.EXPECT().Trim(ctx, entry.SharedAt).Return(nil)

	stats, err := s.reconciler.Reconcile(ctx)

	s.NoError(err)
	s.Equal(1, stats.Created)
	s.NotNil(saved.Content)
	s.Equal("cached body", *saved.Content)
}

// An entry whose URL already has a record fills what the record is missing
// and leaves the rest alone.
func (s *ReconcilerTestSuite) TestReconcile_MergesIntoExisting() {
	ctx := context.Background()
	url := "https://example.com/shared"
	thumb := "https://example.com/t.png"
	published := reconcileBase.Add(-24 * time.Hour)
	entry := domain.SharedURLRecord{URL: url, SharedAt: reconcileBase}

	existing := &domain.Article{
		ID:           "existing-id",
		URL:          url,
		Title:        "Known",
		ThumbnailURL: &thumb,
		PublishedAt:  &published,
	}

	s.expectState(time.Time{})
	s.inbox.EXPECT().EntriesAfter(ctx, time.Time{}).Return([]domain.SharedURLRecord{entry}, nil)

	s.articles.EXPECT().GetByURL(ctx, url).Return(existing, nil)
	s.cache.EXPECT().Get(ctx, url).Return(&cache.Entry{
		Content: domain.ArticleContent{Title: "Known", Content: "cached body"},
		SavedAt: reconcileBase,
	}, nil)
	s.articles.EXPECT().Update(ctx, existing).Return(nil)
	s.publisher.EXPECT().Publish(ctx, domain.EventUpdated, existing).Return(nil)

	s.state.EXPECT().Update(ctx, gomock.Any()).Return(nil)
	s.inbox.EXPECT().Trim(ctx, entry.SharedAt).Return(nil)

	stats, err := s.reconciler.Reconcile(ctx)

	s.NoError(err)
	s.Equal(1, stats.Merged)
	s.Equal(0, stats.Created)
	s.NotNil(existing.Content)
	s.Equal("cached body", *existing.Content)
}

// A record that already has content and preview fields needs nothing: no
// cache lookup, no scrape, no write.
func (s *ReconcilerTestSuite) TestReconcile_SkipsCompleteRecord() {
	ctx := context.Background()
	url := "https://example.com/shared"
	body := "already here"
	thumb := "https://example.com/t.png"
	published := reconcileBase.Add(-24 * time.Hour)
	entry := domain.SharedURLRecord{URL: url, SharedAt: reconcileBase}

	s.expectState(time.Time{})
	s.inbox.EXPECT().EntriesAfter(ctx, time.Time{}).Return([]domain.SharedURLRecord{entry}, nil)

	s.articles.EXPECT().GetByURL(ctx, url).Return(&domain.Article{
		ID:           "existing-id",
		URL:          url,
		Title:        "Known",
		Content:      &body,
		ThumbnailURL: &thumb,
		PublishedAt:  &published,
	}, nil)

	s.state.EXPECT().Update(ctx, gomock.Any()).Return(nil)
	s.inbox.EXPECT().Trim(ctx, entry.SharedAt).Return(nil)

	stats, err := s.reconciler.Reconcile(ctx)

	s.NoError(err)
	s.Equal(1, stats.Skipped)
	s.Equal(0, stats.Merged)
}

// A preview scrape failure during a merge degrades to skipping, never to a
// failed entry: the record exists, the entry did its job.
func (s *ReconcilerTestSuite) TestReconcile_MergeScrapeFailureDegrades() {
	ctx := context.Background()
	url := "https://example.com/shared"
	entry := domain.SharedURLRecord{URL: url, SharedAt: reconcileBase}

	s.expectState(time.Time{})
	s.inbox.EXPECT().EntriesAfter(ctx, time.Time{}).Return([]domain.SharedURLRecord{entry}, nil)

	s.articles.EXPECT().GetByURL(ctx, url).Return(&domain.Article{
		ID:    "existing-id",
		URL:   url,
		Title: "Known",
	}, nil)
	s.cache.EXPECT().Get(ctx, url).Return(nil, nil)
	s.content.EXPECT().FetchMetadata(ctx, url, s.cfg.MetadataTimeout).Return(nil, domain.ErrNetwork)

	s.state.EXPECT().Update(ctx, gomock.Any()).Return(nil)
	s.inbox.EXPECT().Trim(ctx, entry.SharedAt).Return(nil)

	stats, err := s.reconciler.Reconcile(ctx)

	s.NoError(err)
	s.Equal(1, stats.Skipped)
	s.Equal(0, stats.Errors)
}

// Failed entries are consumed: the watermark passes them and they are never
// replayed. Each consumed entry persists the watermark before the next one
// starts.
func (s *ReconcilerTestSuite) TestReconcile_WatermarkAdvancesPastFailures() {
	ctx := context.Background()
	badEntry := domain.SharedURLRecord{URL: "ftp://example.com/file", SharedAt: reconcileBase}
	goodEntry := domain.SharedURLRecord{URL: "https://example.com/ok", SharedAt: reconcileBase.Add(time.Minute)}

	s.expectState(time.Time{})
	s.inbox.EXPECT().EntriesAfter(ctx, time.Time{}).Return([]domain.SharedURLRecord{badEntry, goodEntry}, nil)

	s.articles.EXPECT().GetByURL(ctx, goodEntry.URL).Return(nil, domain.ErrNotFound)
	s.content.EXPECT().FetchMetadata(ctx, goodEntry.URL, s.cfg.MetadataTimeout).Return(&domain.ArticleMetadata{Title: "OK"}, nil)
	s.cache.EXPECT().Get(ctx, goodEntry.URL).Return(nil, nil)
	s.guard.EXPECT().Save(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, article *domain.Article) (*domain.Article, bool, error) {
			return article, true, nil
		},
	)
	s.publisher.EXPECT().Publish(ctx, domain.EventCreated, gomock.Any()).Return(nil)

	var watermarks []time.Time
	s.state.EXPECT().Update(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, state *domain.ReconcileState) error {
			watermarks = append(watermarks, state.Watermark)
			return nil
		},
	).Times(2)
	s.inbox.EXPECT().Trim(ctx, goodEntry.SharedAt).Return(nil)

	stats, err := s.reconciler.Reconcile(ctx)

	s.NoError(err)
	s.Equal(2, stats.Entries)
	s.Equal(1, stats.Created)
	s.Equal(1, stats.Errors)
	s.Equal([]time.Time{badEntry.SharedAt, goodEntry.SharedAt}, watermarks)
}

// A metadata failure on a brand-new URL fails that entry; the entry is still
// consumed.
func (s *ReconcilerTestSuite) TestReconcile_NewRecordScrapeFailureCountsError() {
	ctx := context.Background()
	url := "https://example.com/shared"
	entry := domain.SharedURLRecord{URL: url, SharedAt: reconcileBase}

	s.expectState(time.Time{})
	s.inbox.EXPECT().EntriesAfter(ctx, time.Time{}).Return([]domain.SharedURLRecord{entry}, nil)

	s.articles.EXPECT().GetByURL(ctx, url).Return(nil, domain.ErrNotFound)
	s.content.EXPECT().FetchMetadata(ctx, url, s.cfg.MetadataTimeout).Return(nil, domain.ErrNetwork)

	s.state.EXPECT().Update(ctx, gomock.Any()).Return(nil)
	s.inbox.EXPECT().Trim(ctx, entry.SharedAt).Return(nil)

	stats, err := s.reconciler.Reconcile(ctx)

	s.NoError(err)
	s.Equal(1, stats.Errors)
	s.Equal(0, stats.Created)
}

// Losing the save race to another device is a skip, not an error; the loser
// publishes nothing.
func (s *ReconcilerTestSuite) TestReconcile_SaveRaceSkips() {
	ctx := context.Background()
	url := "https://example.com/shared"
	entry := domain.SharedURLRecord{URL: url, SharedAt: reconcileBase}
	winner := &domain.Article{ID: "winner-id", URL: url}

	s.expectState(time.Time{})
	s.inbox.EXPECT().EntriesAfter(ctx, time.Time{}).Return([]domain.SharedURLRecord{entry}, nil)

	s.articles.EXPECT().GetByURL(ctx, url).Return(nil, domain.ErrNotFound)
	s.content.EXPECT().FetchMetadata(ctx, url, s.cfg.MetadataTimeout).Return(&domain.ArticleMetadata{Title: "Shared"}, nil)
	s.cache.EXPECT().Get(ctx, url).Return(nil, nil)
	s.guard.EXPECT().Save(ctx, gomock.Any()).Return(winner, false, nil)

	s.state.EXPECT().Update(ctx, gomock.Any()).Return(nil)
	s.inbox.EXPECT().Trim(ctx, entry.SharedAt).Return(nil)

	stats, err := s.reconciler.Reconcile(ctx)

	s.NoError(err)
	s.Equal(1, stats.Skipped)
	s.Equal(0, stats.Created)
}

// An unreadable inbox aborts the pass before anything is consumed: the
// watermark is untouched and every entry survives for the next run.
func (s *ReconcilerTestSuite) TestReconcile_InboxErrorLeavesWatermark() {
	ctx := context.Background()

	s.expectState(reconcileBase)
	s.inbox.EXPECT().EntriesAfter(ctx, reconcileBase).Return(nil, errors.New("redis down"))

	stats, err := s.reconciler.Reconcile(ctx)

	s.Error(err)
	s.Nil(stats)
	s.Contains(err.Error(), "read inbox")
}

func (s *ReconcilerTestSuite) TestReconcile_EmptyInbox() {
	ctx := context.Background()

	s.expectState(reconcileBase)
	s.inbox.EXPECT().EntriesAfter(ctx, reconcileBase).Return(nil, nil)

	stats, err := s.reconciler.Reconcile(ctx)

	s.NoError(err)
	s.Equal(0, stats.Entries)
}

// Losing the watermark store is fatal: continuing would risk replaying
// consumed entries after a restart.
func (s *ReconcilerTestSuite) TestReconcile_WatermarkPersistFailureAborts() {
	ctx := context.Background()
	entry := domain.SharedURLRecord{URL: "ftp://bad", SharedAt: reconcileBase}

	s.expectState(time.Time{})
	s.inbox.EXPECT().EntriesAfter(ctx, time.Time{}).Return([]domain.SharedURLRecord{entry}, nil)
	s.state.EXPECT().Update(ctx, gomock.Any()).Return(errors.New("connection reset"))

	stats, err := s.reconciler.Reconcile(ctx)

	s.Error(err)
	s.NotNil(stats)
	s.Contains(err.Error(), "persist watermark")
}

func (s *ReconcilerTestSuite) TestReconcile_PublisherNil() {
	ctx := context.Background()
	url := "https://example.com/shared"
	entry := domain.SharedURLRecord{URL: url, SharedAt: reconcileBase}

	reconciler := NewReconciler(
		s.inbox,
		s.state,
		s.articles,
		s.guard,
		s.cache,
		s.content,
		nil,
		s.logger,
		s.cfg,
	)

	s.expectState(time.Time{})
	s.inbox.EXPECT().EntriesAfter(ctx, time.Time{}).Return([]domain.SharedURLRecord{entry}, nil)
	s.articles.EXPECT().GetByURL(ctx, url).Return(nil, domain.ErrNotFound)
	s.content.EXPECT().FetchMetadata(ctx, url, s.cfg.MetadataTimeout).Return(&domain.ArticleMetadata{Title: "Shared"}, nil)
	s.cache.EXPECT().Get(ctx, url).Return(nil, nil)
	s.guard.EXPECT().Save(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, article *domain.Article) (*domain.Article, bool, error) {
			return article, true, nil
		},
	)
	s.state.EXPECT().Update(ctx, gomock.Any()).Return(nil)
	s.inbox.EXPECT().Trim(ctx, entry.SharedAt).Return(nil)

	stats, err := reconciler.Reconcile(ctx)

	s.NoError(err)
	s.Equal(1, stats.Created)
}
