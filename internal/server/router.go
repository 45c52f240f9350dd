// Package server exposes the atomic surface: one HTTP call that runs the
// whole pipeline and returns the canonical InsightReport JSON.
package server

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// RouterConfig wires the handlers into the engine.
type RouterConfig struct {
	Handler      *AnalyzeHandler
	AllowOrigins []string
	Mode         string
	Version      string
	Log          *zap.SugaredLogger
}

// NewRouter builds the gin engine with CORS, request-ID logging and the
// analyze routes.
func NewRouter(cfg RouterConfig) *gin.Engine {
	if cfg.Mode == "prod" || cfg.Mode == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestLogger(cfg.Log))

	corsConfig := cors.Config{
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{"Authorization", "Content-Type", "X-Requested-With"},
	}
	if len(cfg.AllowOrigins) == 1 && cfg.AllowOrigins[0] == "*" {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = cfg.AllowOrigins
	}
	router.Use(cors.New(corsConfig))

	router.GET("/healthz", healthCheck(cfg.Version))
	router.POST("/analyze", cfg.Handler.Analyze)

	return router
}

// healthCheck reports process liveness and the running version.
func healthCheck(version string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok", "version": version})
	}
}

// requestLogger tags every request with an ID and logs its outcome.
func requestLogger(log *zap.SugaredLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Header("X-Request-ID", requestID)

		start := time.Now()
		c.Next()

		log.Infow("request completed",
			"request_id", requestID,
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration_ms", time.Since(start).Milliseconds(),
		)
	}
}
