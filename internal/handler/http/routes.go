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

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/api/version", h.getServerVersion)
		r.Post("/api/subscriptions/refresh", h.refresh)

		r.With(withGZip).Get("/api/subscriptions", h.getState)
		r.With(withGZip).Get("/api/subscriptions/history", h.getHistory)

		if h.metrics != nil {
			r.Method(http.MethodGet, "/metrics", h.metrics)
		}
	})

	// routes that change the registration
	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Post("/api/subscriptions/register", h.register)
		r.Post("/api/subscriptions/unregister", h.unregister)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
