// internal/app/features/users/routes.go
package users

import "github.com/go-chi/chi/v5"

// Routes returns the /users subtree. The caller wraps mutating routes in
// auth middleware when token enforcement is enabled.
//
// The admin promotion has no caller-is-admin guard beyond that optional
// token check; sign-up flows use it as the bootstrap path for the first
// admin.
func Routes(h *Handler, guard func(next chi.Router)) chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.ServeList)
	r.Get("/admin/{email}", h.ServeCheckAdmin)

	r.Group(func(pr chi.Router) {
		guard(pr)
		pr.Post("/", h.ServeCreate)
		pr.Patch("/admin/{id}", h.ServePromoteAdmin)
		pr.Delete("/{id}", h.ServeDelete)
	})

	return r
}
