package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/KauaneAlmeida/dashboard-advocacia/internal/infra/http/handlers"
	"github.com/KauaneAlmeida/dashboard-advocacia/internal/infra/http/middleware"
)

type routes struct {
	pages    *handlers.PagesHandler
	health   *handlers.HealthHandler
	outreach *handlers.OutreachHandler
	auth     *handlers.AuthHandler
	mass     *handlers.MassFollowupHandler

	authLimiter *handlers.RateLimiter
	settings    middleware.SettingsLoader
	corsOrigins []string
	logger      *zap.Logger
}

func newRouter(rt routes) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLogger(rt.logger))
	r.Use(middleware.Recoverer(rt.logger))
	r.Use(middleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   rt.corsOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type"},
		ExposedHeaders:   []string{handlers.OpenTargetHeader},
		AllowCredentials: true,
	}))

	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", rt.health.Handle)

		r.Group(func(r chi.Router) {
			r.Use(middleware.Session(rt.settings, rt.logger))

			r.Get("/dashboard", rt.pages.GetDashboard)
			r.Get("/leads", rt.pages.GetLeads)
			r.Get("/followups", rt.pages.GetFollowups)
			r.Get("/advogados", rt.pages.GetAdvogados)

			r.Get("/outreach/{kind}", rt.outreach.Handle)

			r.Route("/auth", func(r chi.Router) {
				r.With(rt.authLimiter.Limit).Post("/login", rt.auth.Login)
				r.With(rt.authLimiter.Limit).Post("/register", rt.auth.Register)
				r.Post("/logout", rt.auth.Logout)
			})

			r.Get("/settings", rt.auth.GetSettings)
			r.Put("/settings", rt.auth.UpdateSettings)

			r.Route("/followups/mass", func(r chi.Router) {
				r.Get("/", rt.mass.Snapshot)
				r.Post("/preview", rt.mass.Preview)
				r.Post("/send", rt.mass.Send)
				r.Post("/close", rt.mass.Close)
			})
		})
	})

	return r
}
