package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/mgavrilov/blackraven/internal/app"
	"github.com/mgavrilov/blackraven/internal/logger"
	"github.com/mgavrilov/blackraven/internal/service"
	"github.com/mgavrilov/blackraven/internal/store"
	"github.com/mgavrilov/blackraven/internal/utils"
	"github.com/mgavrilov/blackraven/models"
)

// urlParamInt64 parses the named chi URL parameter as a base-10 int64.
func urlParamInt64(r *http.Request, key string) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, key), 10, 64)
}

func (h *Handler) createDossier(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var dossier models.Dossier
	if err := json.NewDecoder(r.Body).Decode(&dossier); err != nil {
		log.Err(err).Str("func", "*Handler.createDossier").Msg("Invalid JSON was passed")
		http.Error(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	created, err := h.services.CaseService.CreateDossier(r.Context(), dossier)
	if err != nil {
		h.writeCaseError(w, r, err, "dossier creation failed")
		return
	}

	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) listDossiers(w http.ResponseWriter, r *http.Request) {
	dossiers, err := h.services.CaseService.ListDossiers(r.Context())
	if err != nil {
		h.writeCaseError(w, r, err, "dossier listing failed")
		return
	}

	utils.WriteJSON(w, dossiers, http.StatusOK)
}

func (h *Handler) getDossier(w http.ResponseWriter, r *http.Request) {
	dossierID, err := urlParamInt64(r, "dossierID")
	if err != nil {
		http.Error(w, app.MsgInvalidDossierID, http.StatusBadRequest)
		return
	}

	dossier, err := h.services.CaseService.GetDossier(r.Context(), dossierID)
	if err != nil {
		h.writeCaseError(w, r, err, "dossier lookup failed")
		return
	}

	utils.WriteJSON(w, dossier, http.StatusOK)
}

func (h *Handler) deleteDossier(w http.ResponseWriter, r *http.Request) {
	dossierID, err := urlParamInt64(r, "dossierID")
	if err != nil {
		http.Error(w, app.MsgInvalidDossierID, http.StatusBadRequest)
		return
	}

	if err := h.services.CaseService.DeleteDossier(r.Context(), dossierID); err != nil {
		h.writeCaseError(w, r, err, "dossier deletion failed")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) createTarget(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	dossierID, err := urlParamInt64(r, "dossierID")
	if err != nil {
		http.Error(w, app.MsgInvalidDossierID, http.StatusBadRequest)
		return
	}

	var target models.Target
	if err := json.NewDecoder(r.Body).Decode(&target); err != nil {
		log.Err(err).Str("func", "*Handler.createTarget").Msg("Invalid JSON was passed")
		http.Error(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	// the dossier comes from the URL, not from the payload
	target.DossierID = dossierID

	created, err := h.services.CaseService.CreateTarget(r.Context(), target)
	if err != nil {
		h.writeCaseError(w, r, err, "target creation failed")
		return
	}

	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) listTargets(w http.ResponseWriter, r *http.Request) {
	dossierID, err := urlParamInt64(r, "dossierID")
	if err != nil {
		http.Error(w, app.MsgInvalidDossierID, http.StatusBadRequest)
		return
	}

	targets, err := h.services.CaseService.ListTargets(r.Context(), dossierID)
	if err != nil {
		h.writeCaseError(w, r, err, "target listing failed")
		return
	}

	utils.WriteJSON(w, targets, http.StatusOK)
}

func (h *Handler) getTarget(w http.ResponseWriter, r *http.Request) {
	targetID, err := urlParamInt64(r, "targetID")
	if err != nil {
		http.Error(w, app.MsgInvalidTargetID, http.StatusBadRequest)
		return
	}

	target, err := h.services.CaseService.GetTarget(r.Context(), targetID)
	if err != nil {
		h.writeCaseError(w, r, err, "target lookup failed")
		return
	}

	utils.WriteJSON(w, target, http.StatusOK)
}

func (h *Handler) deleteTarget(w http.ResponseWriter, r *http.Request) {
	targetID, err := urlParamInt64(r, "targetID")
	if err != nil {
		http.Error(w, app.MsgInvalidTargetID, http.StatusBadRequest)
		return
	}

	if err := h.services.CaseService.DeleteTarget(r.Context(), targetID); err != nil {
		h.writeCaseError(w, r, err, "target deletion failed")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// writeCaseError maps CaseService errors onto HTTP statuses. Foreign
// resources read as missing ones: ErrAccessDenied and the not-found sentinels
// all collapse to 404.
func (h *Handler) writeCaseError(w http.ResponseWriter, r *http.Request, err error, msg string) {
	log := logger.FromRequest(r)

	switch {
	case errors.Is(err, service.ErrNoSession):
		log.Err(err).Msg(msg)
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
	case errors.Is(err, service.ErrInvalidDataProvided), errors.Is(err, store.ErrUnknownRecordKind):
		log.Err(err).Msg(msg)
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
	case errors.Is(err, service.ErrAccessDenied),
		errors.Is(err, store.ErrDossierNotFound),
		errors.Is(err, store.ErrTargetNotFound):
		log.Err(err).Msg(msg)
		http.Error(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
	default:
		log.Err(err).Msg(msg)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}
