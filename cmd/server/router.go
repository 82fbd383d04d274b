package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/phrazzld/unitconv/internal/api"
	apiMiddleware "github.com/phrazzld/unitconv/internal/api/middleware"
)

// setupRouter creates and configures the application router with all routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.NewTraceMiddleware(app.logger))
	r.Use(apiMiddleware.NewMetricsMiddleware(app.metrics))

	conversionHandler := api.NewConversionHandler(app.conversionService)

	r.Route("/api", func(r chi.Router) {
		r.Get("/categories", conversionHandler.ListCategories)
		r.Get("/categories/{category}/units", conversionHandler.ListUnits)
		r.Post("/conversions", conversionHandler.CreateConversion)
		r.Get("/convert", conversionHandler.Convert)
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	if app.metrics != nil {
		r.Method(http.MethodGet, app.config.Metrics.Path, app.metrics.Handler())
	}

	return r
}
