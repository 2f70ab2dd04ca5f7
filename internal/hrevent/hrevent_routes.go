package hrevent

import (
	"github.com/Pavan812100/jml-hybrid/internal/config"
	"github.com/Pavan812100/jml-hybrid/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	cfg config.Config,
	logger *zap.Logger,
) {
	events := r.Group("")
	events.Use(middleware.ContextLogger(logger))
	events.Use(middleware.RequireAdminRole(cfg))
	{
		events.POST("/hr/event",
			middleware.RateLimitByIP(10, 30),
			handler.Process,
		)

		events.GET("/events",
			middleware.RateLimitByRole(5, 20),
			handler.List,
		)
	}
}
