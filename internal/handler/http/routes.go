package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Init builds the router. requestTimeout bounds every request except file
// transfers, whose duration depends on the payload.
func (h *Handler) Init(requestTimeout time.Duration) *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	withTimeout := func(next http.Handler) http.Handler { return next }
	if requestTimeout > 0 {
		withTimeout = middleware.Timeout(requestTimeout)
	}

	router.Route("/api/portal/{token}", func(r chi.Router) {
		// anonymous routes
		r.Group(func(r chi.Router) {
			r.Use(withTimeout, withGZip)
			r.Get("/", h.getLinkStatus)
			r.Post("/verify", h.verifyPassword)
		})

		// routes behind the link and session check
		r.Group(func(r chi.Router) {
			r.Use(h.authorizeLink)
			r.With(withTimeout, withGZip).Get("/files", h.listFiles)
			r.Post("/files", h.uploadFile)
			r.Get("/files/{name}", h.downloadFile)
		})
	})

	// owner routes
	router.Route("/api/links", func(r chi.Router) {
		r.Use(withTimeout, withGZip, h.ownerAuth)
		r.Post("/", h.createLink)
		r.Post("/{id}/password", h.rotatePassword)
		r.Put("/{id}/active", h.setLinkActive)
	})

	router.With(withTimeout).Get("/api/version/", h.getServerVersion)

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
