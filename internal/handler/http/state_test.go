package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/lacnutry/internal/service"
	"github.com/MKhiriev/lacnutry/internal/utils"
	"github.com/MKhiriev/lacnutry/models"
)

var handlerNow = time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

func defaultStats() models.StatsData {
	return models.NewStats(handlerNow)
}

func decodeResponse[T any](t *testing.T, body []byte) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(body, &v))
	return v
}

// ── state ─────────────────────────────────────────────────────────────────────

func TestHandler_GetState(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newHandlerFixture(t, ctrl, true)
	f.profiles.EXPECT().Snapshot().Return(models.State{
		Profile:   models.DefaultProfile(),
		Favorites: []string{"3"},
		History:   []models.ScanRecord{},
		Stats:     defaultStats(),
		Flags:     models.DefaultFlags(),
	})

	rec := f.do(http.MethodGet, "/api/state", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.NotEmpty(t, rec.Header().Get(traceIDHeader))

	got := decodeResponse[map[string]any](t, rec.Body.Bytes())
	assert.Equal(t, true, got["isFirstAccess"])
	assert.Equal(t, false, got["isLoading"])
	assert.Equal(t, []any{"3"}, got["favorites"])
	assert.Equal(t, "Usuário", got["profile"].(map[string]any)["name"])
}

// ── profile ───────────────────────────────────────────────────────────────────

func TestHandler_UpdateProfile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newHandlerFixture(t, ctrl, true)
	want := models.UserProfile{
		Name:        "Ana",
		Email:       "ana@example.com",
		Phone:       "+55 11 99999-0000",
		Allergies:   []string{"Lactose"},
		Preferences: []string{},
	}
	gomock.InOrder(
		f.profiles.EXPECT().UpdateProfile(want),
		f.profiles.EXPECT().Profile().Return(want),
	)

	rec := f.do(http.MethodPut, "/api/profile", `{"name":"Ana","email":"ana@example.com","phone":"+55 11 99999-0000","allergies":["Lactose"],"preferences":[]}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, want, decodeResponse[models.UserProfile](t, rec.Body.Bytes()))
}

func TestHandler_UpdateProfileRejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newHandlerFixture(t, ctrl, true)

	tests := []struct {
		name    string
		body    string
		wantErr string
	}{
		{"empty body", "", "empty request body"},
		{"malformed", `{"name":`, ErrInvalidJSON.Error()},
		{"unknown field", `{"name":"Ana","age":3}`, ErrInvalidJSON.Error()},
		{"blank name", `{"name":" ","email":"ana@example.com"}`, "name is required"},
		{"bad email", `{"name":"Ana","email":"ana"}`, "invalid email"},
		{"bad phone", `{"name":"Ana","email":"ana@example.com","phone":"abc"}`, "invalid phone"},
		{"blank allergy", `{"name":"Ana","email":"ana@example.com","allergies":[""]}`, "list entries cannot be empty"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := f.do(http.MethodPut, "/api/profile", tt.body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantErr)
		})
	}
}

// ── favorites ─────────────────────────────────────────────────────────────────

func TestHandler_ToggleFavorite(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newHandlerFixture(t, ctrl, true)
	f.catalog.EXPECT().Get("3").Return(models.Recipe{ID: "3"}, nil)
	f.profiles.EXPECT().ToggleFavorite("3").Return(true)

	rec := f.do(http.MethodPost, "/api/favorites/3/toggle", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"recipeId":"3","favorite":true}`, rec.Body.String())
}

func TestHandler_ToggleUnknownRecipe(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newHandlerFixture(t, ctrl, true)
	f.catalog.EXPECT().Get("999").Return(models.Recipe{}, service.ErrRecipeNotFound)

	rec := f.do(http.MethodPost, "/api/favorites/999/toggle", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandler_IsFavoriteAndList(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newHandlerFixture(t, ctrl, true)
	f.profiles.EXPECT().IsFavorite("5").Return(false)
	f.profiles.EXPECT().Favorites().Return([]string{"1", "2"})

	rec := f.do(http.MethodGet, "/api/favorites/5", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"recipeId":"5","favorite":false}`, rec.Body.String())

	rec = f.do(http.MethodGet, "/api/favorites", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `["1","2"]`, rec.Body.String())
}

// ── history ───────────────────────────────────────────────────────────────────

func TestHandler_AddToHistory(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newHandlerFixture(t, ctrl, true)
	f.profiles.EXPECT().AddToHistory(models.ScanRecord{ProductName: "Leite de aveia"}).
		DoAndReturn(func(r models.ScanRecord) models.ScanRecord {
			r.ID = "generated"
			r.Date = handlerNow.Format(time.RFC3339)
			return r
		})

	rec := f.do(http.MethodPost, "/api/history", `{"productName":"Leite de aveia","hasLactose":false}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	got := decodeResponse[models.ScanRecord](t, rec.Body.Bytes())
	assert.Equal(t, "generated", got.ID)
	assert.Equal(t, "2026-03-15T12:00:00Z", got.Date)
}

func TestHandler_AddToHistoryRejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newHandlerFixture(t, ctrl, true)

	rec := f.do(http.MethodPost, "/api/history", `{"productName":"  "}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = f.do(http.MethodPost, "/api/history", `{"productName":"Queijo","date":"ontem"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "RFC 3339")
}

func TestHandler_ClearHistory(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newHandlerFixture(t, ctrl, true)

	f.profiles.EXPECT().ClearHistory(gomock.Any()).Return(nil)
	rec := f.do(http.MethodDelete, "/api/history", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)

	// Only a write wait that outlived the request reaches the handler.
	f.profiles.EXPECT().ClearHistory(gomock.Any()).Return(context.DeadlineExceeded)
	rec = f.do(http.MethodDelete, "/api/history", "")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestHandler_ClearHistoryCarriesTraceID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newHandlerFixture(t, ctrl, true)
	f.profiles.EXPECT().ClearHistory(gomock.Any()).DoAndReturn(func(ctx context.Context) error {
		traceID, ok := utils.GetTraceIDFromContext(ctx)
		assert.True(t, ok)
		assert.Equal(t, "clear-1", traceID)
		return nil
	})

	req := httptest.NewRequest(http.MethodDelete, "/api/history", nil)
	req.Header.Set(traceIDHeader, "clear-1")
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "clear-1", rec.Header().Get(traceIDHeader))
}

func TestHandler_GetStatsAndHistory(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newHandlerFixture(t, ctrl, true)
	f.profiles.EXPECT().Stats().Return(models.StatsData{TotalScans: 4, StreakDays: 2, LastAccessDate: handlerNow})
	f.profiles.EXPECT().History().Return([]models.ScanRecord{{ID: "a", ProductName: "Iogurte", Date: "2026-03-15T12:00:00Z", HasLactose: true}})

	rec := f.do(http.MethodGet, "/api/stats", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"totalScans":4,"streakDays":2,"lastAccessDate":"2026-03-15T12:00:00Z"}`, rec.Body.String())

	rec = f.do(http.MethodGet, "/api/history", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[{"id":"a","productName":"Iogurte","date":"2026-03-15T12:00:00Z","hasLactose":true}]`, rec.Body.String())
}
