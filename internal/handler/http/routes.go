package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(h.withStrictTransport)

	router.Get("/", h.index)
	router.Get("/health", h.health)

	router.Route("/accounts", func(r chi.Router) {
		r.Get("/", h.listAccounts)
		r.Get("/{id}", h.getAccount)
		r.Delete("/{id}", h.deleteAccount)

		// mutating routes accept JSON bodies only
		r.Group(func(r chi.Router) {
			r.Use(requireJSONContentType)
			r.Post("/", h.createAccount)
			r.Put("/{id}", h.updateAccount)
		})
	})

	return router
}
