package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/dvmorais/daily-diet-api/internal/api/handlers"
	"github.com/dvmorais/daily-diet-api/internal/api/validate"
	"github.com/dvmorais/daily-diet-api/internal/config"
	"github.com/dvmorais/daily-diet-api/internal/metrics"
	"github.com/dvmorais/daily-diet-api/internal/middleware"
	"github.com/dvmorais/daily-diet-api/internal/services"
)

func NewRouter(cfg config.Config, us *services.UserService, fs *services.FoodService, lookup validate.UserLookup) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.Recover, middleware.RateLimit(cfg.RateRPS), middleware.HTTPMetrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	}))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) { _, _ = w.Write([]byte("ok")) })
	r.Handle("/metrics", metrics.Handler())

	uh := handlers.NewUsersHandler(us, lookup)
	fh := handlers.NewFoodsHandler(fs)
	sm := middleware.NewSessionMiddleware(us)

	r.Route("/users", func(r chi.Router) {
		r.Post("/", uh.Create)
		r.Post("/sessions", uh.CreateSession)
	})

	r.Route("/foods", func(r chi.Router) {
		r.Use(sm.RequireSession)
		r.Post("/", fh.Create)
		r.Get("/", fh.List)
		r.Get("/metrics", fh.Metrics)
		r.Get("/{foodId}", fh.Get)
		r.Put("/{foodId}", fh.Update)
		r.Delete("/{foodId}", fh.Delete)
	})

	return r
}
