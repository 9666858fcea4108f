package container

import (
	"github.com/GSSolutions-CPT/GSS-OS/internal/domain/services"
	"github.com/GSSolutions-CPT/GSS-OS/internal/infrastructure/config"
	"github.com/GSSolutions-CPT/GSS-OS/pkg/logger"

	"gorm.io/gorm"
)

// ServiceContainer holds every service instance and wires their dependencies
type ServiceContainer struct {
	DB     *gorm.DB
	Config *config.Config

	RedisService        services.InterfaceRedisService
	JWTService          services.InterfaceJWTService
	HardwareService     services.InterfaceHardwareService
	RetryService        services.InterfaceRetryService
	AuditService        services.InterfaceAuditService
	SweepService        services.InterfaceSweepService
	VisitorService      services.InterfaceVisitorService
	UnitService         services.InterfaceUnitService
	AdminService        services.InterfaceAdminService
	AnnouncementService services.InterfaceAnnouncementService
	ComplianceService   services.InterfaceComplianceService
	GateNotifier        services.InterfaceGateNotifier
}

// NewServiceContainer creates all services in dependency order
func NewServiceContainer(db *gorm.DB, cfg *config.Config) *ServiceContainer {
	c := &ServiceContainer{
		DB:     db,
		Config: cfg,
	}

	c.RedisService = services.NewRedisService(cfg)
	if err := c.RedisService.Ping(); err != nil {
		// Redis only backs caches and run locks; the server still works without it
		logger.Warning("redis unavailable, caching and run locks disabled: %v", err)
		c.RedisService = nil
	}

	if cfg.MQTTBrokerURL != "" {
		c.GateNotifier = services.NewGateNotifier(cfg)
		if err := c.GateNotifier.Connect(); err != nil {
			logger.Warning("gate notifier connect failed, publishing disabled: %v", err)
			c.GateNotifier = nil
		}
	}

	c.JWTService = services.NewJWTService(cfg, db)
	c.HardwareService = services.NewHardwareService(cfg)
	c.AuditService = services.NewAuditService(db, cfg)
	c.RetryService = services.NewRetryService(db, cfg, c.HardwareService)
	c.SweepService = services.NewSweepService(db, cfg, c.RetryService, c.AuditService, c.RedisService, c.GateNotifier)
	c.VisitorService = services.NewVisitorService(db, cfg, c.HardwareService, c.RetryService, c.AuditService, c.RedisService, c.GateNotifier)
	c.UnitService = services.NewUnitService(db, cfg)
	c.AdminService = services.NewAdminService(db, cfg)
	c.AnnouncementService = services.NewAnnouncementService(db, cfg)
	c.ComplianceService = services.NewComplianceService(db, cfg, c.AuditService)

	return c
}

// GetService returns a service by name
func (c *ServiceContainer) GetService(name string) interface{} {
	switch name {
	case "redis":
		return c.RedisService
	case "jwt":
		return c.JWTService
	case "hardware":
		return c.HardwareService
	case "retry":
		return c.RetryService
	case "audit":
		return c.AuditService
	case "sweep":
		return c.SweepService
	case "visitor":
		return c.VisitorService
	case "unit":
		return c.UnitService
	case "admin":
		return c.AdminService
	case "announcement":
		return c.AnnouncementService
	case "compliance":
		return c.ComplianceService
	case "gateNotifier":
		return c.GateNotifier
	default:
		return nil
	}
}

// Close releases long-lived connections held by services
func (c *ServiceContainer) Close() {
	if c.GateNotifier != nil {
		c.GateNotifier.Disconnect()
	}
}
