package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mgavrilov/blackraven/internal/store"
	"github.com/mgavrilov/blackraven/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestDetectPatterns(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, mocks := newTestHandler(t, ctrl)

	mocks.patterns.EXPECT().
		RunAllPatternDetection(gomock.Any()).
		Return(models.DetectionSummary{UsernamePatterns: 2, EmailPatterns: 1, Total: 3}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/patterns/detect", nil)
	rec := httptest.NewRecorder()

	h.detectPatterns(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var summary models.DetectionSummary
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &summary))
	assert.Equal(t, 3, summary.Total)
	assert.Equal(t, 2, summary.UsernamePatterns)
}

func TestListPatterns_TypeFilterFromQuery(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, mocks := newTestHandler(t, ctrl)

	mocks.patterns.EXPECT().
		GetPatternMatches(gomock.Any(), models.PatternUsernameReuse).
		Return([]models.PatternMatch{{PatternID: 1, PatternType: models.PatternUsernameReuse}}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/patterns?type="+models.PatternUsernameReuse, nil)
	rec := httptest.NewRecorder()

	h.listPatterns(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var patterns []models.PatternMatch
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &patterns))
	require.Len(t, patterns, 1)
}

func TestListPatterns_NoFilter(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, mocks := newTestHandler(t, ctrl)

	mocks.patterns.EXPECT().GetPatternMatches(gomock.Any(), "").Return([]models.PatternMatch{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/patterns", nil)
	rec := httptest.NewRecorder()

	h.listPatterns(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestListAnomalies(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, mocks := newTestHandler(t, ctrl)

	mocks.patterns.EXPECT().
		GetAnomalies(gomock.Any()).
		Return([]models.PatternMatch{{PatternID: 3, IsAnomaly: true}}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/patterns/anomalies", nil)
	rec := httptest.NewRecorder()

	h.listAnomalies(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var anomalies []models.PatternMatch
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &anomalies))
	require.Len(t, anomalies, 1)
	assert.True(t, anomalies[0].IsAnomaly)
}

func TestDeletePattern(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, mocks := newTestHandler(t, ctrl)

	mocks.patterns.EXPECT().DeletePattern(gomock.Any(), int64(9)).Return(nil)

	req := withURLParams(httptest.NewRequest(http.MethodDelete, "/api/patterns/9", nil), map[string]string{"patternID": "9"})
	rec := httptest.NewRecorder()

	h.deletePattern(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestDeletePattern_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, mocks := newTestHandler(t, ctrl)

	mocks.patterns.EXPECT().DeletePattern(gomock.Any(), int64(9)).Return(store.ErrPatternNotFound)

	req := withURLParams(httptest.NewRequest(http.MethodDelete, "/api/patterns/9", nil), map[string]string{"patternID": "9"})
	rec := httptest.NewRecorder()

	h.deletePattern(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
