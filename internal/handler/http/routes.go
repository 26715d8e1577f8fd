package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// maxRequestBodyBytes caps JSON and form request bodies. The limit is applied
// after withGZip, so it counts decompressed bytes.
const maxRequestBodyBytes = 1 << 20

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(h.withMetrics)
	router.Use(withGZip)
	router.Use(middleware.RequestSize(maxRequestBodyBytes))
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/metrics", h.metrics.handler().ServeHTTP)
		r.Get("/api/version", h.getServerVersion)

		r.Post("/api/auth/signup", h.signup)
		r.Post("/api/auth/login", h.login)

		// search does not look at the bearer token
		r.Get("/api/search", h.searchNotes)
	})

	// routes with authorization
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/api/notes", h.listNotes)
		r.Post("/api/notes", h.createNote)
		r.Get("/api/notes/{id}", h.getNote)
		r.Put("/api/notes/{id}", h.updateNote)
		r.Delete("/api/notes/{id}", h.deleteNote)
		r.Post("/api/notes/{id}/share", h.shareNote)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
