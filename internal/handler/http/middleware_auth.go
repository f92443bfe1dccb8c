package http

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-doc-portal/internal/logger"
	"github.com/MKhiriev/go-doc-portal/internal/utils"
)

// sessionHeader carries the portal session token issued by a successful
// password verification.
const sessionHeader = "X-Portal-Session"

// ownerAuth enforces owner authentication with a bearer JWT issued by the
// identity provider.
//
// On success the token subject is stored in the request context under
// [utils.OwnerIDCtxKey]. Every failure is answered with 401 and the same
// body, whatever the cause.
func (h *Handler) ownerAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			writeError(w, r, "Handler.ownerAuth", ErrEmptyAuthorizationHeader)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			writeError(w, r, "Handler.ownerAuth", ErrEmptyAuthorizationHeader)
			return
		}

		ctx := r.Context()
		token, err := h.services.OwnerAuthService.ParseToken(ctx, tokenString)
		if err != nil {
			writeError(w, r, "Handler.ownerAuth", err)
			return
		}

		ctx = context.WithValue(ctx, utils.OwnerIDCtxKey, token.OwnerID)
		ctx = logger.ContextWithStr(ctx, "owner_id", token.OwnerID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// authorizeLink re-checks the link named by the {token} URL parameter on
// every request and, for password-protected links, the session header. The
// authorized link is stored under [utils.PortalLinkCtxKey].
func (h *Handler) authorizeLink(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		link, err := h.services.PortalAccessService.AuthorizeLinkOperation(
			ctx,
			chi.URLParam(r, "token"),
			r.Header.Get(sessionHeader),
		)
		if err != nil {
			writeError(w, r, "Handler.authorizeLink", err)
			return
		}

		ctx = context.WithValue(ctx, utils.PortalLinkCtxKey, link)
		ctx = logger.ContextWithStr(ctx, "link_id", link.ID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
