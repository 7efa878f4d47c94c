// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"slices"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/connectome-neuprint/neuprint-go/internal/app"
	"github.com/connectome-neuprint/neuprint-go/internal/utils"
)

// CheckHTTPMethod returns the router's MethodNotAllowed handler.
//
// Chi calls it when a request path matches a registered route but the method
// does not. It answers 405 with an Allow header listing the methods the route
// accepts and a JSON error body.
//
// The lookup compares each route pattern with the raw request path, so only
// exact patterns are considered.
//
// Usage:
//
//	router := chi.NewRouter()
//	// ... register routes ...
//	router.MethodNotAllowed(CheckHTTPMethod(router))
func CheckHTTPMethod(router *chi.Mux) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var allowed []string
		for _, route := range router.Routes() {
			if route.Pattern != r.URL.Path {
				continue
			}
			for method := range route.Handlers {
				allowed = append(allowed, method)
			}
			break
		}

		if len(allowed) == 0 {
			utils.WriteJSONError(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
			return
		}

		slices.Sort(allowed)
		w.Header().Set("Allow", strings.Join(allowed, ", "))
		utils.WriteJSONError(w, app.MsgMethodNotAllowed+": "+r.Method, http.StatusMethodNotAllowed)
	}
}
