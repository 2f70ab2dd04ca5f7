package app

import (
	"github.com/Pavan812100/jml-hybrid/internal/config"
	"github.com/Pavan812100/jml-hybrid/internal/employee"
	"github.com/Pavan812100/jml-hybrid/internal/hrevent"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	db *gorm.DB,
	rdb *redis.Client,
	cfg config.Config,
	logger *zap.Logger,
) {
	// --- Repositories ---
	employeeRepo := employee.NewRepository(db)
	hrEventRepo := hrevent.NewRepository(db)

	// --- Services ---
	employeeService := employee.NewService(employeeRepo, rdb, logger)
	hrEventService := hrevent.NewService(employeeRepo, hrEventRepo, cfg, rdb, logger)

	// --- Handlers ---
	employeeHandler := employee.NewHandler(employeeService, logger)
	hrEventHandler := hrevent.NewHandler(hrEventService, logger)

	// --- Routes ---
	api := router.Group("")
	employee.RegisterRoutes(api, employeeHandler, cfg, logger)
	hrevent.RegisterRoutes(api, hrEventHandler, cfg, logger)
}
