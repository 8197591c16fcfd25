package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	router.Post("/upload", h.uploadFile)

	if h.metricsEnabled {
		router.Method(http.MethodGet, "/metrics", h.metrics.handler())
	}

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
