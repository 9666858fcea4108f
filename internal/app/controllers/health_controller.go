package controllers

import (
	"context"
	"time"

	"github.com/GSSolutions-CPT/GSS-OS/internal/domain/services/container"
	"github.com/GSSolutions-CPT/GSS-OS/internal/error/code"
	"github.com/GSSolutions-CPT/GSS-OS/internal/error/response"

	"github.com/gin-gonic/gin"
)

// bridgeStatusCacheKey caches the outcome of the bridge probe
const bridgeStatusCacheKey = "health:bridge"

// bridgeStatusCacheTTL keeps dashboard polling from hammering the tunnel
const bridgeStatusCacheTTL = 30 * time.Second

// InterfaceHealthController defines the health controller interface
type InterfaceHealthController interface {
	Ping()
	Status()
}

// HealthController handles health probe requests
type HealthController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewHealthController creates a new health controller
func NewHealthController(ctx *gin.Context, container *container.ServiceContainer) *HealthController {
	return &HealthController{
		Ctx:       ctx,
		Container: container,
	}
}

// bridgeStatus is the cached bridge probe outcome
type bridgeStatus struct {
	Connected  bool   `json:"connected"`
	StatusCode int    `json:"status_code,omitempty"`
	Error      string `json:"error,omitempty"`
}

// HandleHealthFunc returns a Gin handler for health requests
func HandleHealthFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewHealthController(ctx, container)

		switch method {
		case "ping":
			controller.Ping()
		case "status":
			controller.Status()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "Invalid method", nil)
		}
	}
}

// Ping is a liveness probe
// @Summary      Ping
// @Description  Liveness probe for load balancers and container orchestration
// @Tags         Health
// @Produce      json
// @Success      200  {object}  response.Response  "pong"
// @Router       /ping [get]
func (c *HealthController) Ping() {
	response.Success(c.Ctx, gin.H{"message": "pong"})
}

// Status reports database, cache and hardware bridge health
// @Summary      Health Status
// @Description  Report database pool statistics, Redis availability and hardware bridge reachability
// @Tags         Health
// @Produce      json
// @Success      200  {object}  response.Response  "Component statuses"
// @Router       /health/status [get]
func (c *HealthController) Status() {
	status := gin.H{
		"server": "ok",
		"time":   time.Now().UTC().Format(time.RFC3339),
	}

	// Database
	dbStatus := gin.H{"connected": true}
	sqlDB, err := c.Container.DB.DB()
	if err == nil {
		if pingErr := sqlDB.Ping(); pingErr != nil {
			dbStatus = gin.H{"connected": false, "error": pingErr.Error()}
		} else {
			stats := sqlDB.Stats()
			dbStatus["open_connections"] = stats.OpenConnections
			dbStatus["in_use"] = stats.InUse
			dbStatus["idle"] = stats.Idle
		}
	} else {
		dbStatus = gin.H{"connected": false, "error": err.Error()}
	}
	status["database"] = dbStatus

	// Redis
	if c.Container.RedisService != nil {
		if err := c.Container.RedisService.Ping(); err != nil {
			status["redis"] = gin.H{"connected": false, "error": err.Error()}
		} else {
			status["redis"] = gin.H{"connected": true}
		}
	} else {
		status["redis"] = gin.H{"connected": false, "error": "disabled"}
	}

	status["bridge"] = c.probeBridge()

	response.Success(c.Ctx, status)
}

// probeBridge pings the hardware bridge, serving a recent cached outcome when
// one exists. Any HTTP response means the tunnel is up; only a network failure
// counts as disconnected.
func (c *HealthController) probeBridge() bridgeStatus {
	if c.Container.RedisService != nil {
		var cached bridgeStatus
		if err := c.Container.RedisService.Get(bridgeStatusCacheKey, &cached); err == nil {
			return cached
		}
	}

	var result bridgeStatus
	statusCode, err := c.Container.HardwareService.Probe(context.Background())
	if err != nil {
		result = bridgeStatus{Connected: false, Error: err.Error()}
	} else {
		result = bridgeStatus{Connected: true, StatusCode: statusCode}
	}

	if c.Container.RedisService != nil {
		_ = c.Container.RedisService.Set(bridgeStatusCacheKey, result, bridgeStatusCacheTTL)
	}

	return result
}
