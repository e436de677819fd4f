package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/pharmadesk/api/internal/catalog"
	"github.com/pharmadesk/api/internal/config"
	"github.com/pharmadesk/api/internal/handler"
	"github.com/pharmadesk/api/internal/ws"
)

// New creates a Chi router with the collaborator endpoints wired up:
// the catalog source the forms read on mount, the submission sink they
// post finished documents to, and the live submissions feed.
func New(cfg *config.Config, hub *ws.Hub) chi.Router {
	r := chi.NewRouter()

	// Standard middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// CORS configuration (browser form clients)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300, // 5 minutes
	}))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok","version":"1.0.0"}`))
	})

	// Catalog source (point-in-time snapshot per document kind)
	catalogHandler := handler.NewCatalogHandler(catalog.Seed)
	r.Route("/catalog", catalogHandler.RegisterRoutes)

	// Submission sink + history views
	documentsHandler := handler.NewDocumentsHandler(hub)
	r.Route("/documents", documentsHandler.RegisterRoutes)

	// Live submissions feed
	r.Get("/ws/documents/{kind}", func(w http.ResponseWriter, r *http.Request) {
		ws.ServeWS(hub, w, r)
	})

	return r
}
