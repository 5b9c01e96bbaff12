package http

import (
	"errors"
	"net/http"

	"github.com/mgavrilov/blackraven/internal/app"
	"github.com/mgavrilov/blackraven/internal/logger"
	"github.com/mgavrilov/blackraven/internal/store"
	"github.com/mgavrilov/blackraven/internal/utils"
)

// detectPatterns runs every detector over the calling analyst's records and
// returns the per-category summary.
func (h *Handler) detectPatterns(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	summary, err := h.services.PatternService.RunAllPatternDetection(r.Context())
	if err != nil {
		log.Err(err).Msg("pattern detection failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, summary, http.StatusOK)
}

// listPatterns returns stored patterns, optionally filtered by the "type"
// query parameter.
func (h *Handler) listPatterns(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	patterns, err := h.services.PatternService.GetPatternMatches(r.Context(), r.URL.Query().Get("type"))
	if err != nil {
		log.Err(err).Msg("pattern listing failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, patterns, http.StatusOK)
}

func (h *Handler) listAnomalies(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	anomalies, err := h.services.PatternService.GetAnomalies(r.Context())
	if err != nil {
		log.Err(err).Msg("anomaly listing failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, anomalies, http.StatusOK)
}

func (h *Handler) deletePattern(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	patternID, err := urlParamInt64(r, "patternID")
	if err != nil {
		http.Error(w, app.MsgInvalidPatternID, http.StatusBadRequest)
		return
	}

	if err := h.services.PatternService.DeletePattern(r.Context(), patternID); err != nil {
		if errors.Is(err, store.ErrPatternNotFound) {
			http.Error(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
			return
		}

		log.Err(err).Msg("pattern deletion failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
