package api

import (
	"html/template"
	"net/http"

	"spacex-launch-dashboard/internal/api/handlers"
	"spacex-launch-dashboard/internal/ports"
	"spacex-launch-dashboard/internal/web"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(
	catalog ports.LaunchCatalog,
	querier ports.LaunchQuerier,
	renderer handlers.ChartRenderer,
	templates *template.Template,
) http.Handler {
	r := chi.NewRouter()

	r.Use(requestIDMiddleware)
	r.Use(loggingMiddleware)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Compress(5))

	dashboard := &handlers.DashboardHandler{Catalog: catalog, Templates: templates}
	launches := &handlers.LaunchHandler{Catalog: catalog, Querier: querier}
	charts := &handlers.ChartHandler{Catalog: catalog, Querier: querier, Renderer: renderer}

	r.Get("/health", handlers.Health)
	r.Get("/", dashboard.Index)

	r.Route("/api", func(r chi.Router) {
		r.Get("/sites", launches.Sites)
		r.Get("/bounds", launches.Bounds)
		r.Get("/distribution", launches.Distribution)
		r.Get("/rows", launches.Rows)
	})

	r.Get("/charts/outcomes.svg", charts.OutcomePie)
	r.Get("/charts/payload.svg", charts.PayloadScatter)

	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(web.Static()))))

	return r
}
