package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"library-backend/internal/graph"
	"library-backend/internal/shared/middleware"
	"library-backend/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	// Global middlewares
	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(),
		middleware.Identity(c.IdentityExtractor),
	)

	router.POST("/graphql", graph.NewHandler(c.Schema))

	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", healthCheckHandler(c))
	}

	return router
}

func healthCheckHandler(c *container.Container) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		stores := gin.H{"postgres": "up", "mongo": "up"}
		healthy := true

		if err := c.Postgres.HealthCheck(ctx.Request.Context()); err != nil {
			stores["postgres"] = "down"
			healthy = false
		}
		if err := c.Mongo.HealthCheck(ctx.Request.Context()); err != nil {
			stores["mongo"] = "down"
			healthy = false
		}

		status := http.StatusOK
		overall := "ok"
		if !healthy {
			status = http.StatusServiceUnavailable
			overall = "degraded"
		}

		ctx.JSON(status, gin.H{
			"status":  overall,
			"version": c.Config.App.Version,
			"stores":  stores,
		})
	}
}
