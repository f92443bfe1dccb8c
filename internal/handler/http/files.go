package http

import (
	"errors"
	"io"
	"mime"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-doc-portal/internal/app"
	"github.com/MKhiriev/go-doc-portal/internal/logger"
	"github.com/MKhiriev/go-doc-portal/internal/utils"
)

const (
	// maxUploadSize caps the whole multipart request body.
	maxUploadSize = 100 << 20

	uploadFormField = "file"
)

// errNoFilePart is returned when a multipart upload has no "file" part.
var errNoFilePart = errors.New("multipart body has no file part")

func (h *Handler) listFiles(w http.ResponseWriter, r *http.Request) {
	link, ok := utils.GetPortalLinkFromContext(r.Context())
	if !ok {
		writeError(w, r, "Handler.listFiles", ErrNoLinkInContext)
		return
	}

	files, err := h.services.PortalFilesService.List(r.Context(), link)
	if err != nil {
		writeError(w, r, "Handler.listFiles", err)
		return
	}

	utils.WriteJSON(w, files, http.StatusOK)
}

// uploadFile streams the first "file" part of a multipart body into storage
// without spooling it to disk first.
func (h *Handler) uploadFile(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	link, ok := utils.GetPortalLinkFromContext(r.Context())
	if !ok {
		writeError(w, r, "Handler.uploadFile", ErrNoLinkInContext)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)
	mr, err := r.MultipartReader()
	if err != nil {
		log.Debug().Err(err).Str("func", "Handler.uploadFile").Msg("request is not multipart")
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	for {
		part, err := mr.NextPart()
		if err != nil {
			if errors.Is(err, io.EOF) {
				err = errNoFilePart
			}
			h.writeUploadError(w, r, err)
			return
		}
		if part.FormName() != uploadFormField {
			part.Close()
			continue
		}

		file, err := h.services.PortalFilesService.Upload(r.Context(), link, part.FileName(), -1, part)
		part.Close()
		if err != nil {
			h.writeUploadError(w, r, err)
			return
		}

		utils.WriteJSON(w, file, http.StatusCreated)
		return
	}
}

func (h *Handler) writeUploadError(w http.ResponseWriter, r *http.Request, err error) {
	var maxBytesErr *http.MaxBytesError
	switch {
	case errors.As(err, &maxBytesErr):
		logger.FromRequest(r).Debug().Err(err).Msg("upload too large")
		http.Error(w, app.MsgFileTooLarge, http.StatusRequestEntityTooLarge)
	case errors.Is(err, errNoFilePart):
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
	default:
		writeError(w, r, "Handler.uploadFile", err)
	}
}

func (h *Handler) downloadFile(w http.ResponseWriter, r *http.Request) {
	link, ok := utils.GetPortalLinkFromContext(r.Context())
	if !ok {
		writeError(w, r, "Handler.downloadFile", ErrNoLinkInContext)
		return
	}

	rc, file, err := h.services.PortalFilesService.Download(r.Context(), link, chi.URLParam(r, "name"))
	if err != nil {
		writeError(w, r, "Handler.downloadFile", err)
		return
	}
	defer rc.Close()

	w.Header().Set("Content-Type", "application/octet-stream")
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": file.Name}))
	if file.Size >= 0 {
		w.Header().Set("Content-Length", strconv.FormatInt(file.Size, 10))
	}
	w.WriteHeader(http.StatusOK)

	if _, err = io.Copy(w, rc); err != nil {
		logger.FromRequest(r).Err(err).
			Str("func", "Handler.downloadFile").
			Str("link_id", link.ID).
			Str("file", file.Name).
			Msg("download interrupted")
	}
}
