package http

import (
	"net/http"
)

// getServerVersion answers with the running build's version as plain text.
func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.Write([]byte(h.services.AppInfoService.GetAppVersion(r.Context())))
}
