// Package httpapi exposes the profile store over REST: a schema-free user
// resource with full-record replacement, the seeded product catalog, and a
// liveness probe.
package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/trananh2004/shopfront/internal/logging"
	"github.com/trananh2004/shopfront/internal/server/repositories/products"
	"github.com/trananh2004/shopfront/internal/server/repositories/users"
)

// NewRouter assembles the chi mux with all store routes.
func NewRouter(userRepo users.Repository, productRepo products.Repository, log logging.Logger) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	uh := &UserHandler{repo: userRepo, log: log.With("component", "httpapi.users")}
	ph := &ProductHandler{repo: productRepo, log: log.With("component", "httpapi.products")}

	r.Get("/ping", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	r.Route("/users", func(r chi.Router) {
		r.Post("/", uh.Create)
		r.Get("/", uh.Find)
		r.Get("/{id}", uh.Get)
		r.Put("/{id}", uh.Replace)
		r.Delete("/{id}", uh.Delete)
	})

	r.Route("/products", func(r chi.Router) {
		r.Get("/", ph.List)
		r.Get("/{id}", ph.Get)
	})

	return r
}
