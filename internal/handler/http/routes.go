package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/connectome-neuprint/neuprint-go/pkg/neuprint"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging, h.withMetrics)

	// routes without authorization
	router.Get("/metrics", h.metrics.handler().ServeHTTP)

	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get(neuprint.PathHelp, h.serveDocument(helpDocument))
		r.Get(neuprint.PathVersion, h.serveDocument(versionDocument))
		r.Get(neuprint.PathAvailable, h.serveDocument(availableDocument))
		r.Get(neuprint.PathDatabase, h.serveDocument(databaseDocument))
		r.Get(neuprint.PathDatasets, h.serveDocument(datasetsDocument))

		r.Get(neuprint.PathCustom, h.custom)
		r.Post(neuprint.PathCustom, h.custom)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))
	router.NotFound(notFound)

	return router
}
