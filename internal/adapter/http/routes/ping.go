package routes

import (
	"municipal_backoffice/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

func addPingRoutes(r gin.IRouter, h *handlers.HealthHandler) {
	r.GET("/ping", h.Ping)
	r.GET("/health", h.Health)
}
