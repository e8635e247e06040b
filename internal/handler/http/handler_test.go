package http

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/lacnutry/internal/logger"
	"github.com/MKhiriev/lacnutry/internal/metrics"
	"github.com/MKhiriev/lacnutry/internal/mock"
	"github.com/MKhiriev/lacnutry/internal/service"
)

// handlerFixture routes requests through Init() onto mocked services.
type handlerFixture struct {
	profiles     *mock.MockProfileStore
	quiz         *mock.MockQuizService
	subscription *mock.MockSubscriptionService
	assistant    *mock.MockAssistantService
	catalog      *mock.MockCatalogService
	appInfo      *mock.MockAppInfoService
	metrics      *metrics.Metrics

	router http.Handler
}

func newHandlerFixture(t *testing.T, ctrl *gomock.Controller, loaded bool) *handlerFixture {
	t.Helper()

	f := &handlerFixture{
		profiles:     mock.NewMockProfileStore(ctrl),
		quiz:         mock.NewMockQuizService(ctrl),
		subscription: mock.NewMockSubscriptionService(ctrl),
		assistant:    mock.NewMockAssistantService(ctrl),
		catalog:      mock.NewMockCatalogService(ctrl),
		appInfo:      mock.NewMockAppInfoService(ctrl),
		metrics:      metrics.New(),
	}

	readyCh := make(chan struct{})
	if loaded {
		close(readyCh)
	}
	var ready <-chan struct{} = readyCh
	f.profiles.EXPECT().Ready().Return(ready).AnyTimes()

	h := NewHandler(&service.Services{
		ProfileStore:        f.profiles,
		QuizService:         f.quiz,
		SubscriptionService: f.subscription,
		AssistantService:    f.assistant,
		CatalogService:      f.catalog,
		AppInfoService:      f.appInfo,
	}, f.metrics, logger.Nop())
	f.router = h.Init()

	return f
}

func (f *handlerFixture) do(method, path, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

// ─────────────────────────────────────────────
// NewHandler
// ─────────────────────────────────────────────

func TestNewHandler_StoresDependencies(t *testing.T) {
	svc := &service.Services{}
	m := metrics.New()
	log := logger.Nop()

	h := NewHandler(svc, m, log)

	require.NotNil(t, h)
	assert.Equal(t, svc, h.services)
	assert.Equal(t, m, h.metrics)
	assert.Equal(t, log, h.logger)
	assert.NotNil(t, h.validator)
}

func TestNewHandler_IndependentInstances(t *testing.T) {
	h1 := NewHandler(&service.Services{}, nil, logger.Nop())
	h2 := NewHandler(&service.Services{}, nil, logger.Nop())

	assert.NotSame(t, h1, h2)
}

// ─────────────────────────────────────────────
// Init: route registration
// ─────────────────────────────────────────────

// routeCase describes a single expected route.
type routeCase struct {
	method string
	path   string
}

// expectedRoutes lists every route that Init() must register.
var expectedRoutes = []routeCase{
	{http.MethodGet, "/api/state"},
	{http.MethodGet, "/api/profile"},
	{http.MethodPut, "/api/profile"},
	{http.MethodGet, "/api/favorites"},
	{http.MethodGet, "/api/favorites/1"},
	{http.MethodPost, "/api/favorites/1/toggle"},
	{http.MethodGet, "/api/history"},
	{http.MethodPost, "/api/history"},
	{http.MethodDelete, "/api/history"},
	{http.MethodGet, "/api/stats"},
	{http.MethodPost, "/api/quiz/sessions"},
	{http.MethodGet, "/api/quiz/sessions/abc"},
	{http.MethodPost, "/api/quiz/sessions/abc/answer"},
	{http.MethodPost, "/api/quiz/sessions/abc/continue"},
	{http.MethodPost, "/api/quiz/sessions/abc/text"},
	{http.MethodGet, "/api/subscription"},
	{http.MethodGet, "/api/subscription/plans"},
	{http.MethodPost, "/api/subscription/purchase"},
	{http.MethodPost, "/api/subscription/restore"},
	{http.MethodGet, "/api/recipes/favorites"},
}

func TestInit_RegistersStateRoutesBehindReadiness(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// Store not loaded yet: every state route answers 503, which still
	// proves the route exists.
	f := newHandlerFixture(t, ctrl, false)

	for _, tc := range expectedRoutes {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			rec := f.do(tc.method, tc.path, "")

			assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
			assert.Equal(t, "1", rec.Header().Get("Retry-After"))
			assert.Contains(t, rec.Body.String(), service.ErrNotReady.Error())
		})
	}
}

func TestInit_UnknownRouteReturns404(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newHandlerFixture(t, ctrl, true)

	rec := f.do(http.MethodGet, "/api/nonexistent", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), ErrRouteNotFound.Error())
}

func TestInit_WrongMethodReturns404(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newHandlerFixture(t, ctrl, true)

	// Only GET is registered for the version and recipe routes.
	for _, tc := range []routeCase{
		{http.MethodPost, "/api/version"},
		{http.MethodDelete, "/api/recipes/7"},
		{http.MethodGet, "/api/assistant/chat"},
	} {
		rec := f.do(tc.method, tc.path, "")
		assert.Equal(t, http.StatusNotFound, rec.Code, tc.method+" "+tc.path)
	}
}

func TestInit_ServesMetrics(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newHandlerFixture(t, ctrl, true)
	f.profiles.EXPECT().Stats().Return(defaultStats())

	require.Equal(t, http.StatusOK, f.do(http.MethodGet, "/api/stats", "").Code)

	rec := f.do(http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `lacnutry_http_requests_total{method="GET",route="/api/stats",status="200"} 1`)
}

func TestInit_WithoutMetrics(t *testing.T) {
	h := NewHandler(&service.Services{}, nil, logger.Nop())
	router := h.Init()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
