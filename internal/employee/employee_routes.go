package employee

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
	employees := r.Group("/employees")
	employees.Use(middleware.ContextLogger(logger))
	employees.Use(middleware.RequireAdminRole(cfg))
	{
		employees.GET("",
			middleware.RateLimitByRole(5, 20),
			handler.GetAll,
		)

		employees.GET("/:id",
			middleware.RateLimitByRole(5, 20),
			handler.GetById,
		)

		employees.DELETE("/:id",
			middleware.RateLimitByRole(0.5, 2),
			handler.Delete,
		)
	}
}
