package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging, withGZip)

	router.Get("/api/version/", h.getServerVersion)

	router.Group(func(r chi.Router) {
		r.Use(middleware.RequestSize(maxRequestBodySize), h.withHashing, h.withTimeout)
		r.Post("/api/unpack", h.unpack)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
