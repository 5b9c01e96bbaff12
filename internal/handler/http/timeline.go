package http

import (
	"errors"
	"net/http"

	"github.com/mgavrilov/blackraven/internal/app"
	"github.com/mgavrilov/blackraven/internal/logger"
	"github.com/mgavrilov/blackraven/internal/store"
	"github.com/mgavrilov/blackraven/internal/utils"
)

// generateTimeline materializes timeline events from the target's records and
// reports how many events the timeline now covers.
func (h *Handler) generateTimeline(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	targetID, err := urlParamInt64(r, "targetID")
	if err != nil {
		http.Error(w, app.MsgInvalidTargetID, http.StatusBadRequest)
		return
	}

	count, err := h.services.TimelineService.GenerateTimelineForTarget(r.Context(), targetID)
	if err != nil {
		log.Err(err).Msg("timeline generation failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, map[string]int{"events": count}, http.StatusOK)
}

func (h *Handler) regenerateTimeline(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	targetID, err := urlParamInt64(r, "targetID")
	if err != nil {
		http.Error(w, app.MsgInvalidTargetID, http.StatusBadRequest)
		return
	}

	count, err := h.services.TimelineService.RegenerateTimeline(r.Context(), targetID)
	if err != nil {
		log.Err(err).Msg("timeline regeneration failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, map[string]int{"events": count}, http.StatusOK)
}

func (h *Handler) getTargetTimeline(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	targetID, err := urlParamInt64(r, "targetID")
	if err != nil {
		http.Error(w, app.MsgInvalidTargetID, http.StatusBadRequest)
		return
	}

	events, err := h.services.TimelineService.GetTargetTimeline(r.Context(), targetID)
	if err != nil {
		log.Err(err).Msg("timeline fetch failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, events, http.StatusOK)
}

func (h *Handler) getTimelineStats(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	targetID, err := urlParamInt64(r, "targetID")
	if err != nil {
		http.Error(w, app.MsgInvalidTargetID, http.StatusBadRequest)
		return
	}

	stats, err := h.services.TimelineService.GetTimelineStats(r.Context(), targetID)
	if err != nil {
		log.Err(err).Msg("timeline stats failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, stats, http.StatusOK)
}

func (h *Handler) deleteTimelineEvent(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	eventID, err := urlParamInt64(r, "eventID")
	if err != nil {
		http.Error(w, app.MsgInvalidEventID, http.StatusBadRequest)
		return
	}

	if err := h.services.TimelineService.DeleteTimelineEvent(r.Context(), eventID); err != nil {
		if errors.Is(err, store.ErrEventNotFound) {
			http.Error(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
			return
		}

		log.Err(err).Msg("timeline event deletion failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
