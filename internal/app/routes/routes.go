package routes

import (
	"time"

	_ "github.com/GSSolutions-CPT/GSS-OS/docs"
	"github.com/GSSolutions-CPT/GSS-OS/internal/app/controllers"
	"github.com/GSSolutions-CPT/GSS-OS/internal/app/middleware"
	"github.com/GSSolutions-CPT/GSS-OS/internal/domain/services/container"
	"github.com/GSSolutions-CPT/GSS-OS/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRouter initializes and returns the configured router
func SetupRouter(db *gorm.DB, cfg *config.Config) *gin.Engine {
	r := gin.Default()

	// CORS middleware
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, Accept, Origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS, PATCH")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})
	// Force UTF-8 JSON responses
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Content-Type", "application/json; charset=utf-8")
		c.Next()
	})

	serviceContainer := container.NewServiceContainer(db, cfg)
	middleware.InitAuthMiddleware(cfg, db)

	// Swagger documentation route
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	registerRoutes(r, cfg, serviceContainer)
	return r
}

// registerRoutes configures all API routes
func registerRoutes(
	r *gin.Engine,
	cfg *config.Config,
	container *container.ServiceContainer,
) {
	api := r.Group("/api")

	registerPublicRoutes(api, container)
	registerCronRoutes(api, cfg, container)
	registerAuthenticatedRoutes(api, container)
}

// registerPublicRoutes registers routes that need no login
func registerPublicRoutes(
	api *gin.RouterGroup,
	container *container.ServiceContainer,
) {
	// 10 requests per second per IP, bursting to 20
	api.Use(middleware.IPRateLimiter(10, 20))

	// Health probes
	api.GET("/ping", controllers.HandleHealthFunc(container, "ping"))
	api.GET("/health", controllers.HandleHealthFunc(container, "ping")) // Docker healthcheck alias
	api.GET("/health/status", controllers.HandleHealthFunc(container, "status"))

	// Authentication
	api.POST("/auth/login", middleware.PathRateLimiter(5, 10), controllers.HandleJWTFunc(container, "login"))

	// Public guest pass view; access is gated by the signed token in the link
	api.GET("/pass/:id", controllers.HandleVisitorFunc(container, "getPass"))
}

// registerCronRoutes registers the scheduled-job endpoints guarded by CRON_SECRET
func registerCronRoutes(
	api *gin.RouterGroup,
	cfg *config.Config,
	container *container.ServiceContainer,
) {
	cronGroup := api.Group("/cron")
	cronGroup.Use(middleware.CronAuth(cfg))

	cronGroup.GET("/expire-visitors", controllers.HandleCronFunc(container, "expireVisitors"))
	cronGroup.GET("/process-retries", controllers.HandleCronFunc(container, "processRetries"))
}

// registerAuthenticatedRoutes registers routes that require a valid login
func registerAuthenticatedRoutes(
	api *gin.RouterGroup,
	container *container.ServiceContainer,
) {
	// 30 requests per second per IP, bursting to 50
	auth := api.Group("/")
	auth.Use(middleware.IPRateLimiter(30, 50))

	// Visitor pass routes; hosts and super admins
	visitorGroup := auth.Group("/visitors")
	visitorGroup.Use(middleware.AuthenticateHost())
	visitorGroup.POST("", controllers.HandleVisitorFunc(container, "createVisitor"))
	visitorGroup.POST("/bulk", controllers.HandleVisitorFunc(container, "createVisitorsBulk"))
	visitorGroup.GET("", controllers.HandleVisitorFunc(container, "getVisitors"))
	visitorGroup.GET("/:id", controllers.HandleVisitorFunc(container, "getVisitor"))
	visitorGroup.DELETE("/:id", controllers.HandleVisitorFunc(container, "revokeVisitor"))
	visitorGroup.POST("/:id/resync", controllers.HandleVisitorFunc(container, "resyncVisitor"))

	// Gate house routes; any valid role
	guardGroup := auth.Group("/guard")
	guardGroup.Use(middleware.AuthenticateGuard())
	guardGroup.POST("/verify", controllers.HandleGuardFunc(container, "verify"))
	guardGroup.GET("/directory", middleware.Cache(middleware.CacheConfig{Expiration: 30 * time.Second}), controllers.HandleGuardFunc(container, "directory"))
	guardGroup.GET("/parking", middleware.Cache(middleware.CacheConfig{Expiration: 30 * time.Second}), controllers.HandleGuardFunc(container, "parking"))

	// Announcements; hosts read and write
	announcementGroup := auth.Group("/announcements")
	announcementGroup.Use(middleware.AuthenticateHost())
	announcementGroup.GET("", middleware.Cache(middleware.CacheConfig{Expiration: 1 * time.Minute}), controllers.HandleAnnouncementFunc(container, "getAnnouncements"))
	announcementGroup.POST("", controllers.HandleAnnouncementFunc(container, "createAnnouncement"))
	announcementGroup.DELETE("/:id", controllers.HandleAnnouncementFunc(container, "deleteAnnouncement"))

	// Compliance readings; hosts submit, super admins review
	complianceGroup := auth.Group("/compliance")
	complianceGroup.Use(middleware.AuthenticateHost())
	complianceGroup.POST("/readings", controllers.HandleComplianceFunc(container, "submitReading"))
	complianceGroup.GET("/readings", controllers.HandleComplianceFunc(container, "getReadings"))

	// Super admin routes
	adminGroup := auth.Group("/admin")
	adminGroup.Use(middleware.AuthenticateAdmin())
	adminGroup.GET("/profiles", controllers.HandleAdminFunc(container, "getProfiles"))
	adminGroup.GET("/profiles/:id", controllers.HandleAdminFunc(container, "getProfile"))
	adminGroup.POST("/profiles", controllers.HandleAdminFunc(container, "createProfile"))
	adminGroup.DELETE("/profiles/:id", controllers.HandleAdminFunc(container, "deleteProfile"))

	unitGroup := auth.Group("/units")
	unitGroup.Use(middleware.AuthenticateAdmin())
	unitGroup.GET("", middleware.Cache(middleware.CacheConfig{Expiration: 5 * time.Minute}), controllers.HandleUnitFunc(container, "getUnits"))
	unitGroup.GET("/:id", controllers.HandleUnitFunc(container, "getUnit"))
	unitGroup.POST("", controllers.HandleUnitFunc(container, "createUnit"))
	unitGroup.PUT("/:id", controllers.HandleUnitFunc(container, "updateUnit"))
	unitGroup.DELETE("/:id", controllers.HandleUnitFunc(container, "deleteUnit"))

	auditGroup := auth.Group("/audit")
	auditGroup.Use(middleware.AuthenticateAdmin())
	auditGroup.GET("", controllers.HandleAuditFunc(container, "getAuditLogs"))
}
