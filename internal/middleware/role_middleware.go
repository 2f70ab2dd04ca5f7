package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/Pavan812100/jml-hybrid/internal/config"
	"github.com/Pavan812100/jml-hybrid/internal/shared/apperror"
	"github.com/Pavan812100/jml-hybrid/internal/shared/contextutil"
	"github.com/Pavan812100/jml-hybrid/internal/shared/response"

	"github.com/gin-gonic/gin"
)

// HeaderRole adalah header opaque berisi role si caller. Tidak ada user
// account; gate ini hanya membandingkan role dengan allowed set dari config.
const HeaderRole = "X-Role"

// RequireAdminRole menolak request yang role-nya tidak ada di cfg.AdminRoles.
// Role dinormalisasi (trim + uppercase); header kosong dianggap DefaultRole.
func RequireAdminRole(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := strings.ToUpper(strings.TrimSpace(c.GetHeader(HeaderRole)))
		if role == "" {
			role = cfg.DefaultRole
		}

		if !cfg.IsAdminRole(role) {
			msg := fmt.Sprintf(
				"Forbidden: requires one of [%s], got %s",
				strings.Join(cfg.AdminRoles, ", "),
				role,
			)
			response.Error(c, http.StatusForbidden, apperror.CodeForbidden, msg, nil)
			c.Abort()
			return
		}

		c.Set("role", role)

		// Propagasi ke standard context untuk service layer
		ctx := contextutil.WithRole(c.Request.Context(), role)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
