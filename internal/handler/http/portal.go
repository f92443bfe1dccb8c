package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-doc-portal/internal/app"
	"github.com/MKhiriev/go-doc-portal/internal/logger"
	"github.com/MKhiriev/go-doc-portal/internal/service"
	"github.com/MKhiriev/go-doc-portal/internal/utils"
	"github.com/MKhiriev/go-doc-portal/models"
)

// maxJSONBodySize caps decoded request bodies outside of file uploads.
const maxJSONBodySize = 1 << 20

// usabilityStatus maps a link state to the status code of the usability
// endpoint. The body always carries the state itself.
var usabilityStatus = map[models.LinkStatus]int{
	models.LinkActive:   http.StatusOK,
	models.LinkInactive: http.StatusGone,
	models.LinkExpired:  http.StatusGone,
	models.LinkLocked:   http.StatusLocked,
}

// failedVerificationResponse is the body of a rejected password.
type failedVerificationResponse struct {
	Error             string `json:"error"`
	RemainingAttempts int    `json:"remaining_attempts"`
	Locked            bool   `json:"locked"`
}

func (h *Handler) getLinkStatus(w http.ResponseWriter, r *http.Request) {
	usability, err := h.services.PortalAccessService.VerifyLinkUsable(r.Context(), chi.URLParam(r, "token"))
	if err != nil {
		writeError(w, r, "Handler.getLinkStatus", err)
		return
	}

	status, ok := usabilityStatus[usability.Status]
	if !ok {
		status = http.StatusInternalServerError
	}

	utils.WriteJSON(w, usability, status)
}

func (h *Handler) verifyPassword(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.VerifyPasswordRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxJSONBodySize)).Decode(&req); err != nil {
		log.Debug().Err(err).Str("func", "Handler.verifyPassword").Msg("invalid JSON was passed")
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	result, err := h.services.PortalAccessService.VerifyPassword(r.Context(), chi.URLParam(r, "token"), req.Password)
	switch {
	case err == nil && result.Granted():
		utils.WriteJSON(w, result.Session, http.StatusOK)
	case errors.Is(err, service.ErrWrongPassword):
		utils.WriteJSON(w, failedVerificationResponse{
			Error:             app.MsgWrongPassword,
			RemainingAttempts: result.RemainingAttempts,
		}, http.StatusUnauthorized)
	case errors.Is(err, service.ErrLinkLocked):
		utils.WriteJSON(w, failedVerificationResponse{
			Error:  app.MsgLinkLocked,
			Locked: true,
		}, http.StatusLocked)
	case err != nil:
		writeError(w, r, "Handler.verifyPassword", err)
	default:
		log.Error().Str("func", "Handler.verifyPassword").Msg("verification returned neither session nor error")
		http.Error(w, app.MsgInternalServerError, http.StatusInternalServerError)
	}
}
