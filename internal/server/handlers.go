package server

import (
	"net/http"
	"time"

	"volteryde-gate/internal/handlers"
	"volteryde-gate/internal/middlewares"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// setupRouter mounts the session API outside the gate and everything else behind it.
func setupRouter(ctx *middlewares.AppContext, app http.Handler) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middlewares.ProxyHeaders(ctx.Config.Server.TrustProxyHeaders))
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middlewares.CleanPath)
	r.Use(middlewares.MetricsMiddleware)

	r.Use(middlewares.AppContextMiddleware(ctx))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   ctx.Config.CORS.AllowedOrigins,
		AllowedMethods:   ctx.Config.CORS.AllowedMethods,
		AllowedHeaders:   ctx.Config.CORS.AllowedHeaders,
		ExposedHeaders:   ctx.Config.CORS.ExposedHeaders,
		AllowCredentials: ctx.Config.CORS.AllowCredentials,
		MaxAge:           ctx.Config.CORS.MaxAgeSeconds,
	}))

	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.Timeout(60 * time.Second))

		r.Route("/auth", func(r chi.Router) {
			r.Get("/status", ctx.HandlerFunc(handlers.GETAuthStatusHandler))
			r.Get("/login", ctx.HandlerFunc(handlers.GETLoginHandler))
		})

		r.Route("/v1", func(r chi.Router) {
			r.Get("/health", ctx.HandlerFunc(handlers.HandlerHealth))
		})
	})

	r.Get("/auth/logout", ctx.HandlerFunc(handlers.LogoutHandler))
	r.Post("/auth/logout", ctx.HandlerFunc(handlers.LogoutHandler))

	r.Group(func(r chi.Router) {
		r.Use(middlewares.EdgeGatekeeper)
		r.Use(middleware.Compress(5))
		r.Handle("/*", app)
	})

	return r
}

func setupDebugRouter() *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Mount("/debug", middleware.Profiler())

	r.Get("/metrics", promhttp.Handler().ServeHTTP)

	return r
}
