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

func timelineRequest(method, path, targetID string) *http.Request {
	return withURLParams(httptest.NewRequest(method, path, nil), map[string]string{"targetID": targetID})
}

func TestGenerateTimeline(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, mocks := newTestHandler(t, ctrl)

	mocks.timeline.EXPECT().GenerateTimelineForTarget(gomock.Any(), int64(10)).Return(5, nil)

	rec := httptest.NewRecorder()
	h.generateTimeline(rec, timelineRequest(http.MethodPost, "/api/targets/10/timeline/generate", "10"))

	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]int
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 5, resp["events"])
}

func TestRegenerateTimeline(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, mocks := newTestHandler(t, ctrl)

	mocks.timeline.EXPECT().RegenerateTimeline(gomock.Any(), int64(10)).Return(3, nil)

	rec := httptest.NewRecorder()
	h.regenerateTimeline(rec, timelineRequest(http.MethodPost, "/api/targets/10/timeline/regenerate", "10"))

	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]int
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 3, resp["events"])
}

func TestGetTargetTimeline(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, mocks := newTestHandler(t, ctrl)

	mocks.timeline.EXPECT().
		GetTargetTimeline(gomock.Any(), int64(10)).
		Return([]models.TimelineEvent{{EventID: 1, Title: "Observed at London"}}, nil)

	rec := httptest.NewRecorder()
	h.getTargetTimeline(rec, timelineRequest(http.MethodGet, "/api/targets/10/timeline", "10"))

	require.Equal(t, http.StatusOK, rec.Code)

	var events []models.TimelineEvent
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &events))
	require.Len(t, events, 1)
}

func TestGetTimelineStats(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, mocks := newTestHandler(t, ctrl)

	mocks.timeline.EXPECT().
		GetTimelineStats(gomock.Any(), int64(10)).
		Return(models.TimelineStats{TotalEvents: 4, ByType: map[string]int{models.EventAddress: 4}}, nil)

	rec := httptest.NewRecorder()
	h.getTimelineStats(rec, timelineRequest(http.MethodGet, "/api/targets/10/timeline/stats", "10"))

	require.Equal(t, http.StatusOK, rec.Code)

	var stats models.TimelineStats
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &stats))
	assert.Equal(t, 4, stats.TotalEvents)
}

func TestGenerateTimeline_BadTargetID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _ := newTestHandler(t, ctrl)

	rec := httptest.NewRecorder()
	h.generateTimeline(rec, timelineRequest(http.MethodPost, "/api/targets/abc/timeline/generate", "abc"))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDeleteTimelineEvent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, mocks := newTestHandler(t, ctrl)

	mocks.timeline.EXPECT().DeleteTimelineEvent(gomock.Any(), int64(5)).Return(nil)

	req := withURLParams(httptest.NewRequest(http.MethodDelete, "/api/timeline/5", nil), map[string]string{"eventID": "5"})
	rec := httptest.NewRecorder()

	h.deleteTimelineEvent(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestDeleteTimelineEvent_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, mocks := newTestHandler(t, ctrl)

	mocks.timeline.EXPECT().DeleteTimelineEvent(gomock.Any(), int64(5)).Return(store.ErrEventNotFound)

	req := withURLParams(httptest.NewRequest(http.MethodDelete, "/api/timeline/5", nil), map[string]string{"eventID": "5"})
	rec := httptest.NewRecorder()

	h.deleteTimelineEvent(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
