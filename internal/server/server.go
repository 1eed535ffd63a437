// internal/server/server.go
package server

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"deal-analyzer/internal/common/metrics"
)

// Server owns the HTTP surface: routing, middleware, and the wiring of
// handlers to their dependencies.
type Server struct {
	engine *gin.Engine
}

func New(handlers *Handlers) *Server {
	gin.SetMode(gin.ReleaseMode)

	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(requestID())
	engine.Use(requestMetrics())

	engine.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := engine.Group("/api/v1")
	{
		api.GET("/listings", handlers.listListings)
		api.GET("/listings/:id", handlers.getListing)
		api.GET("/search", handlers.searchListings)
		api.POST("/analyze", handlers.analyzeListing)
		api.GET("/assumptions", handlers.getAssumptions)
		api.PUT("/assumptions", handlers.putAssumptions)
	}

	return &Server{engine: engine}
}

// Handler exposes the router for an http.Server or a test client.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// requestID tags every request so log lines across a request correlate.
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.New().String()
		}
		c.Set("requestID", id)
		c.Writer.Header().Set("X-Request-ID", id)
		c.Next()
	}
}

func requestMetrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		metrics.HTTPRequestDuration.
			WithLabelValues(route, strconv.Itoa(c.Writer.Status())).
			Observe(time.Since(start).Seconds())
	}
}
