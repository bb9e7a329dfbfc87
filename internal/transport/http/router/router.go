package router

import (
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/vhsenna/parts-unlimited/internal/transport/http/health"
	"github.com/vhsenna/parts-unlimited/internal/transport/http/middleware"
)

type Registrar interface {
	Register(r chi.Router)
}

// New serves every registrar at the root and again under /api. Trailing
// slashes are optional on every route.
func New(db health.Pinger, registrars ...Registrar) *chi.Mux {
	r := chi.NewRouter()

	r.Use(
		chimw.Recoverer,
		middleware.RequestID,
		middleware.AccessLog,
		chimw.StripSlashes,
	)

	r.Get("/health", health.Handler(db))

	routes := func(r chi.Router) {
		for _, reg := range registrars {
			reg.Register(r)
		}
	}
	r.Group(routes)
	r.Route("/api", routes)

	return r
}
