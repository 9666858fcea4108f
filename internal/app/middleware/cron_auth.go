package middleware

import (
	"crypto/subtle"

	"github.com/GSSolutions-CPT/GSS-OS/internal/error/code"
	"github.com/GSSolutions-CPT/GSS-OS/internal/error/response"
	"github.com/GSSolutions-CPT/GSS-OS/internal/infrastructure/config"
	"github.com/GSSolutions-CPT/GSS-OS/pkg/logger"

	"github.com/gin-gonic/gin"
)

// CronAuth guards the scheduled-job endpoints with the shared CRON_SECRET.
// An unset secret leaves the endpoints open; that is logged loudly on every
// request rather than refused, so a misconfigured scheduler still runs.
func CronAuth(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		if cfg.CronSecret == "" {
			logger.Warning("CRON_SECRET is not set; scheduled-job endpoint %s is unprotected", c.Request.URL.Path)
			c.Next()
			return
		}

		token := extractToken(c.GetHeader("Authorization"))
		if subtle.ConstantTimeCompare([]byte(token), []byte(cfg.CronSecret)) != 1 {
			response.FailWithMessage(c, code.ErrTokenInvalid, "Invalid cron secret", nil)
			c.Abort()
			return
		}

		c.Next()
	}
}
