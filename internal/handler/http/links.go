package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-doc-portal/internal/app"
	"github.com/MKhiriev/go-doc-portal/internal/logger"
	"github.com/MKhiriev/go-doc-portal/internal/utils"
	"github.com/MKhiriev/go-doc-portal/models"
)

func (h *Handler) createLink(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	ownerID, ok := utils.GetOwnerIDFromContext(r.Context())
	if !ok {
		writeError(w, r, "Handler.createLink", ErrNoOwnerInContext)
		return
	}

	var req models.CreateLinkRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxJSONBodySize)).Decode(&req); err != nil {
		log.Debug().Err(err).Str("func", "Handler.createLink").Msg("invalid JSON was passed")
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	created, err := h.services.LinkAdminService.CreateLink(r.Context(), ownerID, req)
	if err != nil {
		writeError(w, r, "Handler.createLink", err)
		return
	}

	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) rotatePassword(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := utils.GetOwnerIDFromContext(r.Context())
	if !ok {
		writeError(w, r, "Handler.rotatePassword", ErrNoOwnerInContext)
		return
	}

	linkID := chi.URLParam(r, "id")
	password, err := h.services.LinkAdminService.RotatePassword(r.Context(), ownerID, linkID)
	if err != nil {
		writeError(w, r, "Handler.rotatePassword", err)
		return
	}

	utils.WriteJSON(w, models.RotatedPassword{LinkID: linkID, Password: password}, http.StatusOK)
}

func (h *Handler) setLinkActive(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	ownerID, ok := utils.GetOwnerIDFromContext(r.Context())
	if !ok {
		writeError(w, r, "Handler.setLinkActive", ErrNoOwnerInContext)
		return
	}

	var req models.SetActiveRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxJSONBodySize)).Decode(&req); err != nil {
		log.Debug().Err(err).Str("func", "Handler.setLinkActive").Msg("invalid JSON was passed")
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	if err := h.services.LinkAdminService.SetActive(r.Context(), ownerID, chi.URLParam(r, "id"), req.Active); err != nil {
		writeError(w, r, "Handler.setLinkActive", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
