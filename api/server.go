/*
server.go - HTTP router and middleware configuration

PURPOSE:
  Configures the HTTP router (chi), middleware stack, and route
  definitions. This is the wiring layer that connects URLs to handlers.

MIDDLEWARE STACK:
  1. RequestID:  Unique ID per request for tracing
  2. Logger:     Request logging
  3. Recoverer:  Panic recovery (500 instead of crash)
  4. CORS:       Cross-origin requests for the presentation layer

ROUTE GROUPS:
  /api/evaluate     Full evaluation pipeline
  /api/income       Combined income table only
  /api/piti         Proposed payment breakdown
  /api/qualify      Maximum qualifying loan solver
  /api/export       Gated export payload
  /api/config       Pricing configuration (get/replace)
  /api/snapshots/*  Named session snapshots
  /api/audit        Field-change audit log
  /api/scenarios/*  Demo loan files

SECURITY NOTE:
  No authentication middleware; the engine is deployed behind the
  hosting application's own boundary.

SEE ALSO:
  - handlers.go: Handler implementations
  - cmd/server/main.go: Server startup
*/
package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// NewRouter creates a new router with all routes configured.
func NewRouter(h *Handler) *chi.Mux {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:5173", "http://localhost:8080"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	// API routes
	r.Route("/api", func(r chi.Router) {
		// Engine routes
		r.Post("/evaluate", h.Evaluate)
		r.Post("/income", h.IncomeTable)
		r.Post("/piti", h.PITI)
		r.Post("/qualify", h.Qualify)
		r.Post("/export", h.Export)

		// Configuration routes
		r.Route("/config", func(r chi.Router) {
			r.Get("/", h.GetConfig)
			r.Post("/", h.SetConfig)
		})

		// Snapshot routes
		r.Route("/snapshots", func(r chi.Router) {
			r.Get("/", h.ListSnapshots)
			r.Get("/{name}", h.LoadSnapshot)
			r.Post("/{name}", h.SaveSnapshot)
			r.Delete("/{name}", h.DeleteSnapshot)
		})

		// Audit routes
		r.Route("/audit", func(r chi.Router) {
			r.Get("/", h.ListAudit)
			r.Post("/", h.RecordAudit)
		})

		// Scenario routes
		r.Route("/scenarios", func(r chi.Router) {
			r.Get("/", h.ListScenarios)
			r.Post("/load", h.LoadScenario)
		})
	})

	// Plain index so hitting the root in a browser is not a 404.
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(`<!DOCTYPE html>
<html>
<head><title>Prequal Engine</title></head>
<body style="font-family: system-ui; max-width: 800px; margin: 50px auto; padding: 20px;">
<h1>Prequal Engine API</h1>
<h2>API Endpoints</h2>
<ul>
<li>POST /api/evaluate - Full evaluation (income, PITI, DTI, findings)</li>
<li>POST /api/qualify - Maximum qualifying loan</li>
<li>POST /api/export - Gated export payload</li>
<li><a href="/api/scenarios">/api/scenarios</a> - Demo loan files</li>
<li><a href="/api/config">/api/config</a> - Pricing configuration</li>
</ul>
</body>
</html>`))
	})

	return r
}
