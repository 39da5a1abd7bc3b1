package rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/heartmarshall/weektrack-backend/internal/transport/middleware"
)

// Routes bundles the handlers and the per-group middleware the router mounts.
type Routes struct {
	Health  *HealthHandler
	Account *AccountHandler
	Tasks   *TaskHandler

	// Gate authenticates the launch payload. Identity resolves it to a user
	// and is applied to /tasks only.
	Gate     middleware.Middleware
	Identity middleware.Middleware
}

// NewRouter builds the HTTP route table. Global middleware is applied by the
// caller around the returned handler.
func NewRouter(rt Routes) http.Handler {
	r := chi.NewRouter()
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	})

	r.Get("/health", rt.Health.Health)
	r.Get("/live", rt.Health.Live)
	r.Get("/ready", rt.Health.Ready)

	r.Group(func(r chi.Router) {
		r.Use(rt.Gate)

		r.Get("/me", rt.Account.Me)
		r.Post("/danger/delete-account", rt.Account.DeleteAccount)

		r.Route("/tasks", func(r chi.Router) {
			r.Use(rt.Identity)

			r.Get("/", rt.Tasks.List)
			r.Post("/", rt.Tasks.Create)
			r.Patch("/{id}", rt.Tasks.Patch)
			r.Delete("/{id}", rt.Tasks.Delete)
			r.Post("/{id}/log", rt.Tasks.LogTime)
			r.Get("/{id}/entries", rt.Tasks.Entries)
		})
	})

	return r
}
