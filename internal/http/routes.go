package http

import (
	"time"

	"github.com/TSC-Home/svelte-grow-todo/internal/config"
	"github.com/TSC-Home/svelte-grow-todo/internal/http/handlers"
	"github.com/TSC-Home/svelte-grow-todo/internal/http/middleware"
	"github.com/TSC-Home/svelte-grow-todo/internal/ws"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

func RegisterRoutes(r *gin.Engine, db *pgxpool.Pool, cfg *config.Config, version string) {
	hub := ws.NewHub()
	h := handlers.NewHandler(db, hub)
	healthHandler := handlers.NewHealthHandler(db, version)

	// Health checks (no rate limiting)
	r.GET("/health", healthHandler.Health)
	r.GET("/healthz", healthHandler.Liveness)
	r.GET("/readyz", healthHandler.Readiness)

	v1 := r.Group("/api/v1")
	v1.Use(middleware.RedisRateLimit(cfg.APIRateLimit, cfg.APIRateWindow))
	registerAPIRoutes(v1, h, cfg)

	// Cross-tab sync channel; in-memory limiter since upgrades bypass
	// the API group
	r.GET("/ws", middleware.SimpleRateLimit(30, time.Minute), ws.Handle(hub))
}

func registerAPIRoutes(api *gin.RouterGroup, h *handlers.Handler, cfg *config.Config) {
	// Auth gets a stricter window
	authRL := middleware.RedisRateLimit(cfg.AuthRateLimit, cfg.AuthRateWindow)
	auth := api.Group("/auth")
	{
		auth.POST("/signup", authRL, h.SignUp)
		auth.POST("/signin", authRL, h.SignIn)
		auth.POST("/logout", h.Logout)
	}

	api.GET("/me", middleware.JWT(), h.Me)

	// Tasks
	api.GET("/tasks", middleware.JWT(), h.ListTasks)
	api.POST("/tasks", middleware.JWT(), h.CreateTask)
	api.PATCH("/tasks/:id/check", middleware.JWT(), h.ToggleChecked)
	api.PATCH("/tasks/:id/pin", middleware.JWT(), h.TogglePinned)
	api.PATCH("/tasks/:id/timer", middleware.JWT(), h.ToggleTimer)
	api.DELETE("/tasks/:id", middleware.JWT(), h.DeleteTask)

	// Plant snapshot; fetch serves defaults to anonymous visitors
	api.GET("/snapshot", middleware.OptionalJWT(), h.FetchSnapshot)
	api.PUT("/snapshot", middleware.JWT(), h.SaveSnapshot)
}
