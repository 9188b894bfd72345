package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/hr-autoflow-api/internal/application/gamification"
	"github.com/hr-autoflow-api/internal/application/notification"
	"github.com/hr-autoflow-api/internal/application/request"
	"github.com/hr-autoflow-api/internal/application/system"
	"github.com/hr-autoflow-api/internal/config"
	"github.com/hr-autoflow-api/internal/domain"
	"github.com/hr-autoflow-api/internal/transport/http/handler"
	appmiddleware "github.com/hr-autoflow-api/internal/transport/http/middleware"
	"golang.org/x/time/rate"
)

// NewRouter builds and returns the application router.
func NewRouter(cfg *config.Config, deps *Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RequestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	var authMw func(http.Handler) http.Handler
	if deps.JWTProvider != nil {
		authMw = appmiddleware.Auth(deps.JWTProvider)
	} else {
		authMw = func(next http.Handler) http.Handler { return next }
	}

	// 5 requests/second, burst of 10, applied to the login endpoint.
	loginRL := appmiddleware.NewRateLimiter(rate.Limit(5), 10)

	notifSvc := notification.NewService(deps.NotificationStore)
	requestSvc := request.NewService(deps.DataSource)
	systemSvc := system.NewService(deps.DataSource)
	gamificationSvc := gamification.NewService(deps.Directory, deps.DataSource)

	healthH := handler.NewHealthHandler()
	sessionH := handler.NewSessionHandler(deps.SessionService)
	notifH := handler.NewNotificationHandler(notifSvc)
	requestH := handler.NewRequestHandler(requestSvc)
	systemH := handler.NewSystemHandler(systemSvc)
	gamificationH := handler.NewGamificationHandler(gamificationSvc, deps.SessionService)

	r.Route("/v1", func(r chi.Router) {
		// ── Public routes (no auth) ──────────────────────────────────────────
		r.Get("/health-check/{action}", healthH.Ping)
		r.With(loginRL.Limit).Post("/sessions/login", sessionH.Login)

		// ── Authenticated routes ─────────────────────────────────────────────
		r.Group(func(r chi.Router) {
			r.Use(authMw)

			r.Get("/sessions", sessionH.GetCurrent)
			r.Post("/sessions/logout", sessionH.Logout)

			// Any authenticated operator
			r.Get("/notifications", notifH.List)
			r.Get("/notifications/unread-count", notifH.UnreadCount)
			r.Post("/notifications", notifH.Create)
			r.Put("/notifications/read-all", notifH.MarkAllRead)
			r.Put("/notifications/{id}/read", notifH.MarkRead)
			r.Delete("/notifications/{id}", notifH.Delete)

			r.Get("/requests", requestH.List)
			r.Get("/requests/recent", requestH.Recent)
			r.Get("/dashboard/stats", requestH.Stats)

			r.Get("/systems", systemH.List)
			r.Get("/systems/catalog", systemH.Catalog)

			r.Get("/gamification/badges", gamificationH.Badges)
			r.Get("/gamification/leaderboard", gamificationH.Leaderboard)
			r.Get("/gamification/progress", gamificationH.Progress)

			// HR dashboard data (admin sees everything too)
			r.Group(func(r chi.Router) {
				r.Use(appmiddleware.RequireRole(domain.RoleHR, domain.RoleAdmin))

				r.Get("/requests/hr-stats", requestH.HRStats)
			})

			// Admin-only routes
			r.Group(func(r chi.Router) {
				r.Use(appmiddleware.RequireRole(domain.RoleAdmin))

				r.Get("/automations", systemH.Automations)
				r.Get("/automations/running", systemH.RunningAutomations)
			})
		})
	})

	return r
}
