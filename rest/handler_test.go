package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"insight-api/config"
	"insight-api/domain"
	"insight-api/gateway"
)

type stubScoreTimeline struct {
	from, to *time.Time
	table    domain.Table[domain.ScoreBucket]
}

func (s *stubScoreTimeline) Execute(_ context.Context, from, to *time.Time) domain.Table[domain.ScoreBucket] {
	s.from, s.to = from, to
	return s.table
}

type stubTopicSubs struct {
	table domain.Table[domain.TopicCount]
	topN  int
}

func (s *stubTopicSubs) Execute(context.Context) domain.Table[domain.TopicCount] {
	return s.table
}

func (s *stubTopicSubs) Top(_ context.Context, n int) domain.Table[domain.TopicCount] {
	s.topN = n
	return s.table
}

type stubMediaSupport struct {
	ids   []string
	table domain.Table[domain.MediaSupportPoint]
	err   error
}

func (s *stubMediaSupport) Execute(_ context.Context, ids []string) (domain.Table[domain.MediaSupportPoint], error) {
	s.ids = ids
	return s.table, s.err
}

type stubUserReport struct {
	report     *domain.UserReport
	err        error
	windowDays int
}

func (s *stubUserReport) Execute(_ context.Context, _ string, windowDays int) (*domain.UserReport, error) {
	s.windowDays = windowDays
	return s.report, s.err
}

type stubRecentIssues struct {
	limit int
	table domain.Table[domain.Issue]
}

func (s *stubRecentIssues) Execute(_ context.Context, limit int) domain.Table[domain.Issue] {
	s.limit = limit
	return s.table
}

type stubCache struct {
	invalidated []string
	purged      bool
}

func (s *stubCache) Get(string) (any, bool) { return nil, false }
func (s *stubCache) Set(string, any)        {}
func (s *stubCache) Invalidate(key string)  { s.invalidated = append(s.invalidated, key) }
func (s *stubCache) Purge()                 { s.purged = true }

func newTestContext(method, target string, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func TestGetScoreTimelineParsesDates(t *testing.T) {
	stub := &stubScoreTimeline{table: domain.Table[domain.ScoreBucket]{Records: []domain.ScoreBucket{}, Status: domain.LoadOK}}
	h := NewHandler(HandlerDeps{ScoreTimeline: stub, Logger: discardLogger()})

	c, rec := newTestContext(http.MethodGet, "/v1/scores/timeline?from=2025-05-01&to=2025-05-31", "")
	require.NoError(t, h.GetScoreTimeline(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, stub.from)
	require.NotNil(t, stub.to)
	assert.Equal(t, "2025-05-01", stub.from.Format("2006-01-02"))

	var resp TableResponse[domain.ScoreBucket]
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.NotNil(t, resp.Records)
}

func TestGetScoreTimelineRejectsBadDate(t *testing.T) {
	h := NewHandler(HandlerDeps{ScoreTimeline: &stubScoreTimeline{}, Logger: discardLogger()})

	c, rec := newTestContext(http.MethodGet, "/v1/scores/timeline?from=yesterday", "")
	require.NoError(t, h.GetScoreTimeline(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetScoreTimelineRejectsInvertedRange(t *testing.T) {
	h := NewHandler(HandlerDeps{ScoreTimeline: &stubScoreTimeline{}, Logger: discardLogger()})

	c, rec := newTestContext(http.MethodGet, "/v1/scores/timeline?from=2025-05-31&to=2025-05-01", "")
	require.NoError(t, h.GetScoreTimeline(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetTopicSubscribersTop(t *testing.T) {
	stub := &stubTopicSubs{table: domain.Table[domain.TopicCount]{Records: []domain.TopicCount{}, Status: domain.LoadOK}}
	h := NewHandler(HandlerDeps{TopicSubs: stub, Logger: discardLogger()})

	c, rec := newTestContext(http.MethodGet, "/v1/topics/subscribers?top=7", "")
	require.NoError(t, h.GetTopicSubscribers(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 7, stub.topN)
}

func TestGetMediaSupportLimitsSelection(t *testing.T) {
	stub := &stubMediaSupport{}
	h := NewHandler(HandlerDeps{MediaSupport: stub, Logger: discardLogger()})

	c, rec := newTestContext(http.MethodGet, "/v1/media/support?ids=a,b,c,d,e,f", "")
	require.NoError(t, h.GetMediaSupport(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Nil(t, stub.ids, "the usecase must not run for an oversized selection")
}

func TestGetMediaSupportRequiresIDs(t *testing.T) {
	h := NewHandler(HandlerDeps{MediaSupport: &stubMediaSupport{}, Logger: discardLogger()})

	c, rec := newTestContext(http.MethodGet, "/v1/media/support", "")
	require.NoError(t, h.GetMediaSupport(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetMediaSupportUnknownID(t *testing.T) {
	stub := &stubMediaSupport{err: domain.ErrMediaSourceNotFound}
	h := NewHandler(HandlerDeps{MediaSupport: stub, Logger: discardLogger()})

	c, rec := newTestContext(http.MethodGet, "/v1/media/support?ids=ghost", "")
	require.NoError(t, h.GetMediaSupport(c))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetUserReportNotFound(t *testing.T) {
	stub := &stubUserReport{err: domain.ErrUserNotFound}
	h := NewHandler(HandlerDeps{UserReport: stub, Logger: discardLogger()})

	c, rec := newTestContext(http.MethodGet, "/v1/users/ghost/report", "")
	c.SetParamNames("id")
	c.SetParamValues("ghost")
	require.NoError(t, h.GetUserReport(c))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetRecentIssuesDefaultsLimitFromConfig(t *testing.T) {
	stub := &stubRecentIssues{table: domain.Table[domain.Issue]{Records: []domain.Issue{}, Status: domain.LoadOK}}
	h := NewHandler(HandlerDeps{RecentIssues: stub, Logger: discardLogger()})

	c, rec := newTestContext(http.MethodGet, "/v1/issues/recent", "")
	require.NoError(t, h.GetRecentIssues(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, config.RecentListLimit, stub.limit)
}

func TestGetUserReportDefaultsWindowFromConfig(t *testing.T) {
	stub := &stubUserReport{report: &domain.UserReport{UserID: "u1"}}
	h := NewHandler(HandlerDeps{UserReport: stub, Logger: discardLogger()})

	c, rec := newTestContext(http.MethodGet, "/v1/users/u1/report", "")
	c.SetParamNames("id")
	c.SetParamValues("u1")
	require.NoError(t, h.GetUserReport(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, config.ReportWindowDays, stub.windowDays)
}

type errFixture string

func (e errFixture) Error() string { return string(e) }

func TestGetUserReportUnreadableCollection(t *testing.T) {
	stub := &stubUserReport{err: &domain.RepositoryError{Op: "load users", Err: errFixture("file corrupt")}}
	h := NewHandler(HandlerDeps{UserReport: stub, Logger: discardLogger()})

	c, rec := newTestContext(http.MethodGet, "/v1/users/u1/report", "")
	c.SetParamNames("id")
	c.SetParamValues("u1")
	require.NoError(t, h.GetUserReport(c))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestInvalidateCacheSingleCollection(t *testing.T) {
	cache := &stubCache{}
	h := NewHandler(HandlerDeps{CollectionCache: cache, Logger: discardLogger()})

	c, rec := newTestContext(http.MethodPost, "/v1/admin/cache/invalidate", `{"collection":"users"}`)
	require.NoError(t, h.InvalidateCache(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, cache.invalidated, 1)
	assert.Equal(t, gateway.FileUsers, cache.invalidated[0])
	assert.False(t, cache.purged)
}

func TestInvalidateCachePurgesAll(t *testing.T) {
	cache := &stubCache{}
	h := NewHandler(HandlerDeps{CollectionCache: cache, Logger: discardLogger()})

	c, rec := newTestContext(http.MethodPost, "/v1/admin/cache/invalidate", `{}`)
	require.NoError(t, h.InvalidateCache(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, cache.purged)
}

func TestInvalidateCacheUnknownCollection(t *testing.T) {
	cache := &stubCache{}
	h := NewHandler(HandlerDeps{CollectionCache: cache, Logger: discardLogger()})

	c, rec := newTestContext(http.MethodPost, "/v1/admin/cache/invalidate", `{"collection":"ghosts"}`)
	require.NoError(t, h.InvalidateCache(c))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Empty(t, cache.invalidated)
}

func TestHealth(t *testing.T) {
	h := NewHandler(HandlerDeps{Logger: discardLogger()})

	c, rec := newTestContext(http.MethodGet, "/v1/health", "")
	require.NoError(t, h.Health(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"ok"`)
}
