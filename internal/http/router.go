package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "github.com/naveenraj/dairy-api/docs"
	"github.com/naveenraj/dairy-api/internal/http/handlers"
	rl "github.com/naveenraj/dairy-api/internal/http/rate_limiter"
)

// RouterConfig holds the per-deployment knobs the router needs. The zero
// value disables CORS and rate limiting, which is what the test suite wants.
type RouterConfig struct {
	AllowedOrigin string
	RateLimit     bool
}

func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.RequestID,
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
		middleware.Timeout(60*time.Second),
	)

	if cfg.AllowedOrigin != "" {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   []string{cfg.AllowedOrigin},
			AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"*"},
			AllowCredentials: true,
		}))
	}

	r.Get("/healthz", handlers.HealthzHandler)
	r.Get("/swagger/*", httpSwagger.Handler())

	r.Group(func(r chi.Router) {
		if cfg.RateLimit {
			r.Use(rl.Middleware)
		}
		r.Post("/signup", handlers.SignupHandler)
		r.Post("/login", handlers.LoginHandler)
	})

	r.Group(func(r chi.Router) {
		r.Use(AuthMiddleware)
		r.Post("/dairy", handlers.CreateEntryHandler)
		r.Get("/dairy", handlers.GetEntriesHandler)
		r.Put("/dairy/{id}", handlers.UpdateEntryHandler)
		r.Delete("/dairy/{id}", handlers.DeleteEntryHandler)
	})

	return r
}
