package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-doc-portal/internal/app"
	"github.com/MKhiriev/go-doc-portal/internal/crypto"
	"github.com/MKhiriev/go-doc-portal/internal/logger"
	"github.com/MKhiriev/go-doc-portal/internal/service"
)

type errorResponse struct {
	status  int
	message string
}

// errorStatusMap must not contain errors that wrap one another; lookup order
// over a map is random.
var errorStatusMap = map[error]errorResponse{
	service.ErrInvalidDataProvided: {http.StatusBadRequest, app.MsgInvalidDataProvided},
	service.ErrInvalidFileName:     {http.StatusBadRequest, app.MsgInvalidFileName},
	service.ErrPasswordNotRequired: {http.StatusBadRequest, app.MsgPasswordNotRequired},

	service.ErrLinkNotFound: {http.StatusNotFound, app.MsgLinkNotFound},
	service.ErrLinkExpired:  {http.StatusGone, app.MsgLinkNotFound},
	service.ErrLinkInactive: {http.StatusGone, app.MsgLinkInactive},
	service.ErrLinkLocked:   {http.StatusLocked, app.MsgLinkLocked},
	service.ErrFileNotFound: {http.StatusNotFound, app.MsgFileNotFound},

	service.ErrWrongPassword:     {http.StatusUnauthorized, app.MsgWrongPassword},
	service.ErrOwnerTokenInvalid: {http.StatusUnauthorized, app.MsgOwnerTokenInvalid},
	crypto.ErrSessionInvalid:     {http.StatusUnauthorized, app.MsgSessionInvalid},
	ErrEmptyAuthorizationHeader:  {http.StatusUnauthorized, app.MsgOwnerTokenInvalid},
}

func responseFromError(err error) errorResponse {
	for target, resp := range errorStatusMap {
		if errors.Is(err, target) {
			return resp
		}
	}
	return errorResponse{http.StatusInternalServerError, app.MsgInternalServerError}
}

func statusFromError(err error) int {
	return responseFromError(err).status
}

// writeError answers with the status and public message mapped from err.
// Server-side failures are logged at error level, client errors at debug.
func writeError(w http.ResponseWriter, r *http.Request, funcName string, err error) {
	resp := responseFromError(err)

	log := logger.FromRequest(r)
	if resp.status >= http.StatusInternalServerError {
		log.Err(err).Str("func", funcName).Msg("request failed")
	} else {
		log.Debug().Err(err).Str("func", funcName).Int("status", resp.status).Msg("request rejected")
	}

	http.Error(w, resp.message, resp.status)
}
