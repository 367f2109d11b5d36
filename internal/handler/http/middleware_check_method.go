// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// CheckHTTPMethod returns the handler registered as the router's
// MethodNotAllowed handler.
//
// Chi answers 405 when a path is known but the method is not. This handler
// answers 404 instead so unsupported methods do not reveal which paths exist.
// A request whose method does match a route is served normally.
//
//	router := chi.NewRouter()
//	// ... register routes ...
//	router.MethodNotAllowed(CheckHTTPMethod(router))
func CheckHTTPMethod(router *chi.Mux) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if router.Match(chi.NewRouteContext(), r.Method, r.URL.Path) {
			router.ServeHTTP(w, r)
			return
		}

		w.WriteHeader(http.StatusNotFound)
	}
}
