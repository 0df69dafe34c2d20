package routes

import (
	"context"
	"net/http"
	"time"

	"github.com/catalogbase/catalog-api/api/controllers"
	"github.com/catalogbase/catalog-api/api/middleware"
	"github.com/catalogbase/catalog-api/pkg/config"
	"github.com/catalogbase/catalog-api/pkg/logger"
	"github.com/go-chi/chi/v5"
)

// RateLimitStore is the counter backend for the auth rate limiter. Nil
// disables throttling.
type RateLimitStore interface {
	IncrWithTTL(context.Context, string, time.Duration) (int64, error)
}

// Dependencies carries everything the router needs to build its handlers.
type Dependencies struct {
	Config         *config.Config
	Logger         *logger.Logger
	AuthService    controllers.AuthService
	ItemService    controllers.ItemService
	SchemaManager  controllers.SchemaManager
	DBPinger       controllers.Pinger
	RedisPinger    controllers.Pinger
	RateLimitStore RateLimitStore
}

// New assembles the HTTP handler tree.
func New(deps Dependencies) http.Handler {
	logg := deps.Logger
	cfg := deps.Config

	root := controllers.NewRootController(cfg.App)
	authCtrl := controllers.NewAuthController(deps.AuthService, logg)
	itemsCtrl := controllers.NewItemsController(deps.ItemService, logg)
	adminCtrl := controllers.NewAdminController(deps.SchemaManager, logg)
	healthCtrl := controllers.NewHealthController(deps.DBPinger, deps.RedisPinger, logg)

	registerLimit := middleware.NewAuthRateLimitPolicy(
		"register",
		cfg.AuthRateLimit.RegisterWindow,
		cfg.AuthRateLimit.RegisterIPLimit,
		cfg.AuthRateLimit.RegisterEmailLimit,
	)
	loginLimit := middleware.NewAuthRateLimitPolicy(
		"login",
		cfg.AuthRateLimit.LoginWindow,
		cfg.AuthRateLimit.LoginIPLimit,
		cfg.AuthRateLimit.LoginEmailLimit,
	)

	r := chi.NewRouter()
	r.Use(middleware.Recoverer(logg))
	r.Use(middleware.RequestID(logg))
	r.Use(middleware.Logging(logg))

	r.Get("/", root.Welcome)
	r.Get("/favicon.ico", root.Favicon)

	r.With(middleware.AuthRateLimit(registerLimit, deps.RateLimitStore, logg)).
		Post("/register/", authCtrl.Register)
	r.With(middleware.AuthRateLimit(loginLimit, deps.RateLimitStore, logg)).
		Post("/token", authCtrl.Token)

	r.Route("/items", func(r chi.Router) {
		r.Post("/", itemsCtrl.Create)
		r.Get("/", itemsCtrl.List)
		r.Get("/{id}", itemsCtrl.Get)
		r.Put("/{id}", itemsCtrl.Update)
		r.Delete("/{id}", itemsCtrl.Delete)
	})

	r.Post("/reset-database/", adminCtrl.ResetDatabase)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", healthCtrl.Live)
		r.Get("/ready", healthCtrl.Ready)
	})

	return r
}
