// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// CheckHTTPMethod is registered as the router's MethodNotAllowed handler.
//
// Instead of chi's 405 it answers 404 for a method the matched route does
// not serve, so unsupported methods do not reveal which paths exist.
func CheckHTTPMethod(router *chi.Mux) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		rctx := chi.NewRouteContext()
		if router.Match(rctx, r.Method, r.URL.Path) {
			router.ServeHTTP(w, r)
			return
		}

		http.NotFound(w, r)
	}
}
