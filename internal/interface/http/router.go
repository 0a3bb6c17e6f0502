package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/gayathri-1911/travel-assistant/internal/infra/config"
)

// NewRouter wires up the HTTP handlers and returns a configured server.
func NewRouter(cfg *config.Config, handler *Handler) *http.Server {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()
	router.Use(
		gin.Recovery(),
		requestLogger(handler.logger),
		corsMiddleware(cfg.HTTP.AllowedOrigins),
		errorHandlingMiddleware(handler.logger),
		rateLimitMiddleware(cfg.HTTP.RateLimit, handler.logger),
	)

	api := router.Group("/api/v1")
	if cfg.HTTP.AuthSecret != "" {
		api.Use(authMiddleware(cfg.HTTP.AuthSecret))
	}
	{
		api.POST("/chat", handler.Chat)
		api.POST("/chat/stream", handler.ChatStream)
		api.GET("/chat/providers", handler.ListProviders)

		api.GET("/content/tours", handler.ListTours)
		api.GET("/content/tours/:uid", handler.GetTour)
		api.GET("/content/destinations", handler.ListDestinations)
		api.GET("/content/search", handler.SearchContent)
		api.GET("/content/categories", handler.ListCategories)
		api.GET("/content/locations", handler.ListLocations)
	}

	return &http.Server{
		Addr:           cfg.HTTP.Address,
		Handler:        withRetry(router, cfg.HTTP.Retry, handler.logger),
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		MaxHeaderBytes: 1 << 20,
	}
}

func requestLogger(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)
		logger.Info("http request", "method", c.Request.Method, "path", c.Request.URL.Path, "status", c.Writer.Status(), "latency_ms", latency.Milliseconds())
	}
}
