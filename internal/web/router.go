// Package web provides the HTTP server and REST API for FishMaster.
package web

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/fishmasterki/fishmaster/internal/logger"
	"github.com/fishmasterki/fishmaster/internal/metrics"
	"github.com/fishmasterki/fishmaster/internal/objectstore"
	"github.com/fishmasterki/fishmaster/internal/service"
	"github.com/fishmasterki/fishmaster/internal/sigi"
	"github.com/fishmasterki/fishmaster/internal/store"
	"github.com/fishmasterki/fishmaster/internal/weather"
)

// API bundles the dependencies of the HTTP handlers.
type API struct {
	Store   store.Store
	Service *service.Service
	Weather *weather.Client
	Sigi    *sigi.Client
	Objects objectstore.Storage
	Log     *logger.Logger
	Metrics *metrics.Metrics
}

// Router builds the chi router with the full route table.
func (a *API) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(requestLogger(a.Log))
	if a.Metrics != nil {
		r.Use(instrument(a.Metrics))
	}

	r.Get("/health", a.handleHealth)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Route("/users", func(r chi.Router) {
			r.Get("/", a.handleListUsers)
			r.Post("/", a.handleCreateUser)
			r.Get("/{id}", a.handleGetUser)
		})

		r.Route("/species", func(r chi.Router) {
			r.Get("/", a.handleListSpecies)
			r.Get("/{id}", a.handleGetSpecies)
		})

		r.Route("/spots", func(r chi.Router) {
			r.Get("/", a.handleListSpots)
			r.Get("/{id}", a.handleGetSpot)
		})

		r.Route("/catches", func(r chi.Router) {
			r.Get("/", a.handleListCatches)
			r.Post("/", a.handleCreateCatch)
			r.Patch("/{id}/like", a.handleLikeCatch)
		})

		r.Route("/tips", func(r chi.Router) {
			r.Get("/", a.handleListTips)
			r.Get("/{id}", a.handleGetTip)
		})

		r.Get("/weather", a.handleWeather)

		r.Route("/logbook", func(r chi.Router) {
			r.Get("/", a.handleListLogbook)
			r.Post("/", a.handleCreateLogbookEntry)
			r.Patch("/{id}", a.handleUpdateLogbookEntry)
			r.Delete("/{id}", a.handleDeleteLogbookEntry)
			r.Get("/stats/{userId}", a.handleLogbookStats)
		})

		r.Post("/kibuddy", a.handleKiBuddy)

		r.Post("/objects/upload", a.handleObjectUploadURL)
	})

	r.Put("/objects/uploads/{id}", a.handlePutObject)
	r.Get("/objects/*", a.handleGetObject)

	return r
}
