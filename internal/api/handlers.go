package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/pageza/tarif-defteri/internal/service"
	"github.com/pageza/tarif-defteri/internal/view"
)

// HealthCheck returns the health status of the API
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"message": "Tarif Defteri API is running",
	})
}

// RegisterRoutes registers all API routes
func RegisterRoutes(router *gin.Engine, store *service.RecipeStore, ctrl *view.Controller, logger *zap.Logger) {
	router.GET("/health", HealthCheck)

	v1 := router.Group("/api/v1")
	NewRecipeHandler(store, ctrl, logger).RegisterRoutes(v1)
	NewViewHandler(ctrl, logger).RegisterRoutes(v1)
}
