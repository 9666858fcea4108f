package services

import (
	"time"

	"github.com/GSSolutions-CPT/GSS-OS/internal/domain/models"
	"github.com/GSSolutions-CPT/GSS-OS/internal/infrastructure/config"
	"github.com/GSSolutions-CPT/GSS-OS/pkg/logger"

	"gorm.io/gorm"
)

const (
	// sweepLockKey guards against overlapping sweep invocations
	sweepLockKey = "cron:expire:lock"
	// sweepLockTTL bounds how long a crashed run can hold the lease
	sweepLockTTL = 10 * time.Minute
)

// SweepResult summarizes one expiration sweep
type SweepResult struct {
	Locked       bool `json:"locked,omitempty"` // another run held the lease
	ExpiredCount int  `json:"expired_count"`
	SuccessCount int  `json:"success_count"`
	QueueCount   int  `json:"queue_count"`
}

// InterfaceSweepService defines the expiration sweep interface
type InterfaceSweepService interface {
	Run() (*SweepResult, error)
}

// SweepService expires visitor credentials whose access date has passed and
// pushes the removals to the hardware bridge, queueing retries on failure.
// Items are processed strictly sequentially.
type SweepService struct {
	DB       *gorm.DB
	Config   *config.Config
	Retry    InterfaceRetryService
	Audit    InterfaceAuditService
	Redis    InterfaceRedisService // optional; nil disables the run lock
	Notifier InterfaceGateNotifier // optional
}

// NewSweepService creates a new expiration sweep service
func NewSweepService(db *gorm.DB, cfg *config.Config, retry InterfaceRetryService, audit InterfaceAuditService, redisService InterfaceRedisService, notifier InterfaceGateNotifier) InterfaceSweepService {
	return &SweepService{
		DB:       db,
		Config:   cfg,
		Retry:    retry,
		Audit:    audit,
		Redis:    redisService,
		Notifier: notifier,
	}
}

// Run executes one sweep. Idempotent across repeated invocations within the
// same day: credentials already marked expired are not re-selected.
func (s *SweepService) Run() (*SweepResult, error) {
	if s.Redis != nil {
		acquired, err := s.Redis.AcquireLock(sweepLockKey, sweepLockTTL)
		if err != nil {
			// The scheduler cadence makes an unguarded run acceptable
			logger.Warning("sweep lock unavailable, proceeding without it: %v", err)
		} else if !acquired {
			logger.Warning("sweep already running elsewhere, skipping this invocation")
			return &SweepResult{Locked: true}, nil
		} else {
			defer func() {
				if err := s.Redis.ReleaseLock(sweepLockKey); err != nil {
					logger.Warning("failed to release sweep lock: %v", err)
				}
			}()
		}
	}

	today := time.Now().UTC().Format(models.AccessDateLayout)

	var expiredVisitors []models.Visitor
	err := s.DB.
		Where("status = ? AND access_date < ?", models.VisitorStatusActive, today).
		Find(&expiredVisitors).Error
	if err != nil {
		return nil, err
	}

	result := &SweepResult{}
	if len(expiredVisitors) == 0 {
		return result, nil
	}

	for i := range expiredVisitors {
		visitor := &expiredVisitors[i]

		err := s.DB.Model(&models.Visitor{}).
			Where("id = ?", visitor.ID).
			Update("status", models.VisitorStatusExpired).Error
		if err != nil {
			// Left untouched; still selected by the next sweep
			logger.Error("failed to expire visitor %s, skipping: %v", visitor.ID, err)
			continue
		}
		result.ExpiredCount++

		if s.Retry.SyncRemoval(visitor) {
			result.SuccessCount++
			notifyGate(s.Notifier, GateEventCredentialRemoved, visitor)
		} else {
			result.QueueCount++
		}
	}

	s.Audit.LogSystem(models.AuditActionExpirationSweep, map[string]interface{}{
		"expired_count": result.ExpiredCount,
		"success_count": result.SuccessCount,
		"queue_count":   result.QueueCount,
	})

	logger.Info("expiration sweep processed %d visitors: %d synced, %d queued",
		result.ExpiredCount, result.SuccessCount, result.QueueCount)

	return result, nil
}
