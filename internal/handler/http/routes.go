package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withRequestID)
	router.Use(h.withLogging)
	router.Use(middleware.Timeout(h.requestTimeout))
	router.Use(withGzipBody)
	router.Use(middleware.Compress(5, "application/json"))

	router.Route("/api", func(r chi.Router) {
		r.Get("/ping", h.ping)
		r.Get("/version", h.getServerVersion)

		// bearer tokens are optional, permissions are decided per list
		r.Group(func(r chi.Router) {
			r.Use(h.withAccessToken)

			r.Get("/lists", h.getListByName)
			r.Post("/lists", h.createList)

			r.Route("/lists/{listID}", func(r chi.Router) {
				r.Delete("/", h.deleteList)
				r.Post("/verify", h.verifyPassword)
				r.Put("/password", h.updatePassword)

				r.Get("/items", h.getItems)
				r.Post("/items", h.addItem)
				r.Delete("/items", h.deleteItems)

				r.Get("/archives", h.getArchives)
				r.Post("/archives", h.archiveBought)
				r.Delete("/archives/{archiveID}", h.deleteArchive)
				r.Post("/undo", h.undo)

				r.Post("/subscriptions", h.subscribe)
				r.Delete("/subscriptions", h.unsubscribe)
			})

			r.Patch("/items/{itemID}", h.updateItem)
			r.Delete("/items/{itemID}", h.deleteItem)
		})
	})

	router.MethodNotAllowed(methodNotAllowed(router))

	return router
}
