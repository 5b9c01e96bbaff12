package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/mgavrilov/blackraven/internal/app"
	"github.com/mgavrilov/blackraven/internal/logger"
	"github.com/mgavrilov/blackraven/internal/utils"
	"github.com/mgavrilov/blackraven/models"
)

// createRecord decodes and stores one intelligence record. The {kind} URL
// parameter selects the record table; the target comes from the URL and
// overrides whatever the payload carries.
func (h *Handler) createRecord(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	targetID, err := urlParamInt64(r, "targetID")
	if err != nil {
		http.Error(w, app.MsgInvalidTargetID, http.StatusBadRequest)
		return
	}

	ctx := r.Context()

	var created any
	switch kind := chi.URLParam(r, "kind"); kind {
	case models.SocialMediaAccount{}.TableName():
		var rec models.SocialMediaAccount
		if !decodeRecord(w, r, &rec) {
			return
		}
		rec.TargetID = targetID
		created, err = h.services.CaseService.AddSocialMedia(ctx, rec)

	case models.Credential{}.TableName():
		var rec models.Credential
		if !decodeRecord(w, r, &rec) {
			return
		}
		rec.TargetID = targetID
		created, err = h.services.CaseService.AddCredential(ctx, rec)

	case models.NetworkData{}.TableName():
		var rec models.NetworkData
		if !decodeRecord(w, r, &rec) {
			return
		}
		rec.TargetID = targetID
		created, err = h.services.CaseService.AddNetworkData(ctx, rec)

	case models.Address{}.TableName():
		var rec models.Address
		if !decodeRecord(w, r, &rec) {
			return
		}
		rec.TargetID = targetID
		created, err = h.services.CaseService.AddAddress(ctx, rec)

	case models.Employment{}.TableName():
		var rec models.Employment
		if !decodeRecord(w, r, &rec) {
			return
		}
		rec.TargetID = targetID
		created, err = h.services.CaseService.AddEmployment(ctx, rec)

	case models.MediaFile{}.TableName():
		var rec models.MediaFile
		if !decodeRecord(w, r, &rec) {
			return
		}
		rec.TargetID = targetID
		created, err = h.services.CaseService.AddMediaFile(ctx, rec)

	case models.PhoneNumber{}.TableName():
		var rec models.PhoneNumber
		if !decodeRecord(w, r, &rec) {
			return
		}
		rec.TargetID = targetID
		created, err = h.services.CaseService.AddPhoneNumber(ctx, rec)

	default:
		log.Warn().Str("kind", kind).Msg("unknown record kind")
		http.Error(w, app.MsgUnknownRecordKind, http.StatusBadRequest)
		return
	}

	if err != nil {
		h.writeCaseError(w, r, err, "record creation failed")
		return
	}

	utils.WriteJSON(w, created, http.StatusCreated)
}

// listRecords returns every record of the given kind attached to the target.
func (h *Handler) listRecords(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	targetID, err := urlParamInt64(r, "targetID")
	if err != nil {
		http.Error(w, app.MsgInvalidTargetID, http.StatusBadRequest)
		return
	}

	ctx := r.Context()

	var records any
	switch kind := chi.URLParam(r, "kind"); kind {
	case models.SocialMediaAccount{}.TableName():
		records, err = h.services.CaseService.ListSocialMedia(ctx, targetID)
	case models.Credential{}.TableName():
		records, err = h.services.CaseService.ListCredentials(ctx, targetID)
	case models.NetworkData{}.TableName():
		records, err = h.services.CaseService.ListNetworkData(ctx, targetID)
	case models.Address{}.TableName():
		records, err = h.services.CaseService.ListAddresses(ctx, targetID)
	case models.Employment{}.TableName():
		records, err = h.services.CaseService.ListEmployment(ctx, targetID)
	case models.MediaFile{}.TableName():
		records, err = h.services.CaseService.ListMediaFiles(ctx, targetID)
	case models.PhoneNumber{}.TableName():
		records, err = h.services.CaseService.ListPhoneNumbers(ctx, targetID)
	default:
		log.Warn().Str("kind", kind).Msg("unknown record kind")
		http.Error(w, app.MsgUnknownRecordKind, http.StatusBadRequest)
		return
	}

	if err != nil {
		h.writeCaseError(w, r, err, "record listing failed")
		return
	}

	utils.WriteJSON(w, records, http.StatusOK)
}

// deleteRecord removes one record of the given kind by ID.
func (h *Handler) deleteRecord(w http.ResponseWriter, r *http.Request) {
	targetID, err := urlParamInt64(r, "targetID")
	if err != nil {
		http.Error(w, app.MsgInvalidTargetID, http.StatusBadRequest)
		return
	}

	recordID, err := urlParamInt64(r, "recordID")
	if err != nil {
		http.Error(w, app.MsgInvalidRecordID, http.StatusBadRequest)
		return
	}

	kind := chi.URLParam(r, "kind")
	if err := h.services.CaseService.RemoveRecord(r.Context(), targetID, kind, recordID); err != nil {
		h.writeCaseError(w, r, err, "record deletion failed")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// decodeRecord decodes the request body into rec, writing a 400 response on
// malformed JSON. Returns false when the response has already been written.
func decodeRecord(w http.ResponseWriter, r *http.Request, rec any) bool {
	if err := json.NewDecoder(r.Body).Decode(rec); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "decodeRecord").Msg("Invalid JSON was passed")
		http.Error(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return false
	}
	return true
}
