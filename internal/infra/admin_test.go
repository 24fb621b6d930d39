package infra

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gojuno/minimock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.ozon.dev/safariproxd/dispatcher/internal/infra/mock"
	"gitlab.ozon.dev/safariproxd/dispatcher/internal/workerpool"
)

func serve(t *testing.T, h http.Handler, method, path string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(method, path, nil))
	return rec
}

func TestAdmin_Stats(t *testing.T) {
	t.Parallel()

	ctrl := minimock.NewController(t)
	pool := mock.NewPoolInspectorMock(ctrl)
	pool.StatsMock.Times(1).Return(workerpool.Stats{Size: 4, Alive: 3, Faults: 1})

	admin := NewAdmin(":0", pool, nil)

	rec := serve(t, admin.Handler(), http.MethodGet, "/stats")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var got workerpool.Stats
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	assert.Equal(t, 4, got.Size)
	assert.Equal(t, 3, got.Alive)
	assert.Equal(t, int64(1), got.Faults)

	rec = serve(t, admin.Handler(), http.MethodPost, "/stats")
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestAdmin_NoPool(t *testing.T) {
	t.Parallel()

	admin := NewAdmin(":0", nil, nil)

	assert.Equal(t, http.StatusServiceUnavailable, serve(t, admin.Handler(), http.MethodGet, "/stats").Code)
	assert.Equal(t, http.StatusServiceUnavailable, serve(t, admin.Handler(), http.MethodGet, "/cache/stats").Code)
	assert.Equal(t, http.StatusServiceUnavailable, serve(t, admin.Handler(), http.MethodPost, "/cache/clear").Code)
}

func TestAdmin_Cache(t *testing.T) {
	t.Parallel()

	ctrl := minimock.NewController(t)
	cache := mock.NewCacheManagerMock(ctrl)
	cache.GetCacheStatsMock.Times(1).Return(map[string]int{"resources": 2})
	cache.ClearCacheMock.Times(1).Return()
	cache.CleanupExpiredMock.Times(1).Return()

	admin := NewAdmin(":0", nil, cache)

	rec := serve(t, admin.Handler(), http.MethodGet, "/cache/stats")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"resources":2}`, rec.Body.String())

	rec = serve(t, admin.Handler(), http.MethodPost, "/cache/clear")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = serve(t, admin.Handler(), http.MethodPost, "/cache/cleanup")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAdmin_Metrics(t *testing.T) {
	t.Parallel()

	admin := NewAdmin(":0", nil, nil)
	rec := serve(t, admin.Handler(), http.MethodGet, "/metrics")
	assert.Equal(t, http.StatusOK, rec.Code)
}
