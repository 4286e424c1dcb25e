// internal/app/features/joinedevents/routes.go
package joinedevents

import "github.com/go-chi/chi/v5"

// Routes returns the /joined-events subtree. The caller wraps mutating
// routes in auth middleware when token enforcement is enabled.
func Routes(h *Handler, guard func(next chi.Router)) chi.Router {
	r := chi.NewRouter()

	r.Get("/{email}", h.ServeList)

	r.Group(func(pr chi.Router) {
		guard(pr)
		pr.Post("/", h.ServeJoin)
		pr.Delete("/{id}", h.ServeUnjoin)
	})

	return r
}
