package app

import (
	"net/http"

	"github.com/Pavan812100/jml-hybrid/internal/config"
	"github.com/Pavan812100/jml-hybrid/internal/employee"
	"github.com/Pavan812100/jml-hybrid/internal/hrevent"
	"github.com/Pavan812100/jml-hybrid/internal/shared/connection"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func BuildApp(router *gin.Engine, cfg config.Config, logger *zap.Logger) error {
	// 1. Setup Infrastructure
	db, err := connection.ConnectGORMWithRetry(cfg, 5)
	if err != nil {
		return err
	}
	logger.Info("database connection established")

	// Schema init harus selesai sebelum request pertama: tables + FK
	// (hr_events.employee_id -> employees.employee_id, ON DELETE CASCADE)
	if err := db.AutoMigrate(&employee.Employee{}, &hrevent.HrEvent{}); err != nil {
		return err
	}
	logger.Info("schema migrated")

	// Redis opsional; tanpa Redis service jalan tanpa cache
	var rdb *redis.Client
	if cfg.RedisAddr != "" {
		rdb, err = connection.ConnectRedisWithRetry(cfg.RedisAddr, 5)
		if err != nil {
			return err
		}
		logger.Info("redis connection established")
	}

	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"service":   "jml-hybrid",
			"status":    "ok",
			"endpoints": []string{"/hr/event", "/employees", "/events"},
		})
	})

	registerModules(router, db, rdb, cfg, logger)

	return nil
}
