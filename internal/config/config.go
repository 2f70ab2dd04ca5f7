package config

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config adalah konfigurasi immutable untuk seluruh service. Dibaca sekali
// saat startup dan di-pass ke konstruktor, bukan global mutable state.
type Config struct {
	Port string `env:"PORT" envDefault:"8080"`

	DBHost     string `env:"DB_HOST" envDefault:"localhost"`
	DBPort     string `env:"DB_PORT" envDefault:"5432"`
	DBUser     string `env:"DB_USER" envDefault:"postgres"`
	DBPassword string `env:"DB_PASSWORD" envDefault:"postgres"`
	DBName     string `env:"DB_NAME" envDefault:"jml"`
	DBSSLMode  string `env:"DB_SSLMODE" envDefault:"disable"`

	// Redis opsional: kosongkan REDIS_ADDR untuk menonaktifkan cache.
	RedisAddr string `env:"REDIS_ADDR" envDefault:""`

	// Authorization gate: roles yang boleh memanggil endpoint HR.
	AdminRoles []string `env:"ADMIN_ROLES" envSeparator:"," envDefault:"HR_ADMIN,IT_ADMIN,SEC_ADMIN"`

	// Role yang dipakai saat event tidak menyertakan role.
	DefaultRole string `env:"DEFAULT_ROLE" envDefault:"WORKER"`

	// Batas default untuk GET /events.
	EventListLimit int `env:"EVENT_LIST_LIMIT" envDefault:"200"`

	ReadTimeout  time.Duration `env:"HTTP_READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout time.Duration `env:"HTTP_WRITE_TIMEOUT" envDefault:"15s"`
	IdleTimeout  time.Duration `env:"HTTP_IDLE_TIMEOUT" envDefault:"60s"`
}

// Load parses the configuration from environment variables.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	normalized := make([]string, 0, len(cfg.AdminRoles))
	for _, role := range cfg.AdminRoles {
		role = strings.ToUpper(strings.TrimSpace(role))
		if role != "" {
			normalized = append(normalized, role)
		}
	}
	sort.Strings(normalized)
	cfg.AdminRoles = normalized

	cfg.DefaultRole = strings.ToUpper(strings.TrimSpace(cfg.DefaultRole))
	if cfg.EventListLimit <= 0 {
		cfg.EventListLimit = 200
	}

	return cfg, nil
}

// IsAdminRole reports whether the (already normalized) role is in the
// configured admin set.
func (c Config) IsAdminRole(role string) bool {
	for _, allowed := range c.AdminRoles {
		if role == allowed {
			return true
		}
	}
	return false
}
