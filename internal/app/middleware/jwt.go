package middleware

import (
	"strings"

	"github.com/GSSolutions-CPT/GSS-OS/internal/domain/models"
	"github.com/GSSolutions-CPT/GSS-OS/internal/domain/services"
	"github.com/GSSolutions-CPT/GSS-OS/internal/error/code"
	"github.com/GSSolutions-CPT/GSS-OS/internal/error/response"
	"github.com/GSSolutions-CPT/GSS-OS/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

var jwtService services.InterfaceJWTService

// InitAuthMiddleware initializes the authentication middleware
func InitAuthMiddleware(cfg *config.Config, db *gorm.DB) {
	jwtService = services.NewJWTService(cfg, db)
}

// extractToken strips the "Bearer " prefix from an Authorization header
func extractToken(authHeader string) string {
	if len(authHeader) > 7 && strings.HasPrefix(authHeader, "Bearer ") {
		return authHeader[7:]
	}
	return authHeader
}

// authenticate validates the bearer token and stores its claims in the context
func authenticate(c *gin.Context) (*services.JWTClaims, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		response.FailWithMessage(c, code.ErrTokenInvalid, "Authorization header is required", nil)
		c.Abort()
		return nil, false
	}

	claims, err := jwtService.ExtractClaims(extractToken(authHeader))
	if err != nil {
		response.FailWithMessage(c, code.ErrTokenInvalid, "Invalid token: "+err.Error(), nil)
		c.Abort()
		return nil, false
	}

	c.Set("userID", claims.UserID)
	c.Set("role", claims.Role)
	if claims.UnitID != nil {
		c.Set("unitID", *claims.UnitID)
	}
	return claims, true
}

// AuthenticateAdmin requires the super admin role
func AuthenticateAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := authenticate(c)
		if !ok {
			return
		}

		if claims.Role != string(models.RoleSuperAdmin) {
			response.FailWithMessage(c, code.ErrPermissionDenied, "Insufficient permissions: requires super admin role", nil)
			c.Abort()
			return
		}
		c.Next()
	}
}

// AuthenticateHost requires an administrator role that can invite guests
func AuthenticateHost() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := authenticate(c)
		if !ok {
			return
		}

		// Super admins can use host endpoints too
		if claims.Role != string(models.RoleGroupAdmin) && claims.Role != string(models.RoleSuperAdmin) {
			response.FailWithMessage(c, code.ErrPermissionDenied, "Insufficient permissions: requires group admin role", nil)
			c.Abort()
			return
		}
		c.Next()
	}
}

// AuthenticateGuard requires any valid account; guard endpoints are read-mostly
// and every role can man the gate house in a pinch
func AuthenticateGuard() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := authenticate(c)
		if !ok {
			return
		}

		switch claims.Role {
		case string(models.RoleGuard), string(models.RoleGroupAdmin), string(models.RoleSuperAdmin):
			c.Next()
		default:
			response.FailWithMessage(c, code.ErrPermissionDenied, "Insufficient permissions: requires a valid role", nil)
			c.Abort()
		}
	}
}
