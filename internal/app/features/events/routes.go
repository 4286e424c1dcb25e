// internal/app/features/events/routes.go
package events

import "github.com/go-chi/chi/v5"

// Routes returns the /events subtree. The caller wraps mutating routes in
// auth middleware when token enforcement is enabled.
// Typically: r.Mount("/events", events.Routes(handler, guard))
func Routes(h *Handler, guard func(next chi.Router)) chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.ServeList)
	r.Get("/{id}", h.ServeGet)

	r.Group(func(pr chi.Router) {
		guard(pr)
		pr.Post("/", h.ServeCreate)
		pr.Put("/{id}", h.ServeUpdate)
		pr.Delete("/{id}", h.ServeDelete)
	})

	return r
}

// MyEventsRoutes returns the /my-events subtree.
func MyEventsRoutes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/{email}", h.ServeListMine)
	return r
}
