package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mgavrilov/blackraven/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestRoutes_ProtectedRoutesRequireAuth(t *testing.T) {
	protected := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/api/dossiers"},
		{http.MethodGet, "/api/dossiers"},
		{http.MethodGet, "/api/dossiers/7"},
		{http.MethodDelete, "/api/dossiers/7"},
		{http.MethodPost, "/api/dossiers/7/targets"},
		{http.MethodGet, "/api/targets/10"},
		{http.MethodPost, "/api/targets/10/records/credentials"},
		{http.MethodGet, "/api/targets/10/records/credentials"},
		{http.MethodDelete, "/api/targets/10/records/credentials/5"},
		{http.MethodPost, "/api/patterns/detect"},
		{http.MethodGet, "/api/patterns"},
		{http.MethodGet, "/api/patterns/anomalies"},
		{http.MethodDelete, "/api/patterns/9"},
		{http.MethodGet, "/api/targets/10/timeline"},
		{http.MethodPost, "/api/targets/10/timeline/generate"},
		{http.MethodPost, "/api/targets/10/timeline/regenerate"},
		{http.MethodGet, "/api/targets/10/timeline/stats"},
		{http.MethodDelete, "/api/timeline/5"},
	}

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _ := newTestHandler(t, ctrl)
	router := h.Init()

	for _, tt := range protected {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}
}

func TestRoutes_AuthHeaderReachesProtectedHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, mocks := newTestHandler(t, ctrl)
	router := h.Init()

	mocks.auth.EXPECT().
		ParseToken(gomock.Any(), "valid.jwt.token").
		Return(models.Token{UserID: 42}, nil)
	mocks.cases.EXPECT().
		ListDossiers(gomock.Any()).
		Return([]models.Dossier{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/dossiers", nil)
	req.Header.Set("Authorization", "Bearer valid.jwt.token")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
}

func TestRoutes_VersionIsPublic(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _ := newTestHandler(t, ctrl)
	router := h.Init()

	req := httptest.NewRequest(http.MethodGet, "/api/version", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "test", rec.Body.String())
}

func TestRoutes_TraceIDHeaderIsSet(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _ := newTestHandler(t, ctrl)
	router := h.Init()

	req := httptest.NewRequest(http.MethodGet, "/api/version", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.NotEmpty(t, rec.Header().Get(traceIDHeader))
}

func TestRoutes_TraceIDHeaderIsPropagated(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _ := newTestHandler(t, ctrl)
	router := h.Init()

	req := httptest.NewRequest(http.MethodGet, "/api/version", nil)
	req.Header.Set(traceIDHeader, "trace-123")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, "trace-123", rec.Header().Get(traceIDHeader))
}

func TestRoutes_WrongMethodReadsLikeMissingRoute(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _ := newTestHandler(t, ctrl)
	router := h.Init()

	req := httptest.NewRequest(http.MethodGet, "/api/auth/register", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
