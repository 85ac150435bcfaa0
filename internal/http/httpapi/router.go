package httpapi

import (
	stdhttp "net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"charity/internal/http/handlers"
	"charity/internal/infra"
	"charity/internal/middleware"
)

// NewRouter assembles the chi router with the full middleware chain and all
// resource routes.
func NewRouter(app *handlers.App, cfg *infra.Config) stdhttp.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.RequestID,
		chimw.RealIP,
		chimw.Recoverer,
		middleware.Logger(app.Logger),
		middleware.CORS(cfg.CORSOrigins),
		middleware.Locale(cfg.DefaultLocale),
		middleware.RateLimit(cfg.RateLimitPerMin, time.Minute),
	)

	auth := middleware.AuthJWT(cfg.JWTSecret)

	// Health
	r.Get("/v1/healthz", app.Health)

	r.Route("/api/auth", func(r chi.Router) {
		r.Post("/register", app.AuthRegister)
		r.Post("/login", app.AuthLogin)
		r.With(auth).Get("/profile", app.AuthProfile)
		r.With(auth, middleware.AdminOnly).Get("/users", app.UsersWithStats)
	})

	r.Route("/api/campaigns", func(r chi.Router) {
		r.Get("/", app.CampaignsList)
		r.Get("/{id}", app.CampaignsGet)
		r.With(auth, middleware.AdminOnly).Post("/", app.CampaignsCreate)
		r.With(auth, middleware.AdminOnly).Put("/{id}", app.CampaignsUpdate)
		r.With(auth, middleware.AdminOnly).Delete("/{id}", app.CampaignsDelete)
	})

	r.Route("/api/donations", func(r chi.Router) {
		r.With(auth).Post("/", app.DonationsCreate)
		r.With(auth).Get("/my", app.DonationsMine)
		r.With(auth, middleware.AdminOnly).Get("/", app.DonationsAll)
		r.With(auth, middleware.AdminOnly).Put("/{id}/verify", app.DonationsVerify)
	})

	r.Route("/api/admin", func(r chi.Router) {
		r.Use(auth, middleware.AdminOnly)
		r.Get("/stats", app.AdminStats)
		r.Post("/reconcile", app.AdminReconcile)
	})

	r.With(auth).Get("/api/receipts/{id}/download", app.ReceiptDownload)

	return r
}
