package services

import (
	"encoding/json"

	"github.com/GSSolutions-CPT/GSS-OS/internal/domain/models"
	"github.com/GSSolutions-CPT/GSS-OS/internal/infrastructure/config"
	"github.com/GSSolutions-CPT/GSS-OS/pkg/logger"

	"gorm.io/gorm"
)

// InterfaceAuditService defines the audit ledger interface
type InterfaceAuditService interface {
	Log(actorID *string, action string, details interface{}) error
	LogSystem(action string, details interface{}) error
	List(page, pageSize int) ([]models.AuditLog, int64, error)
}

// AuditService writes to the append-only audit ledger. Entries are never
// mutated or deleted; a write failure is logged but never propagated into
// the operation that triggered it.
type AuditService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewAuditService creates a new audit service
func NewAuditService(db *gorm.DB, cfg *config.Config) InterfaceAuditService {
	return &AuditService{
		DB:     db,
		Config: cfg,
	}
}

// Log appends an audit entry for the given actor
func (s *AuditService) Log(actorID *string, action string, details interface{}) error {
	payload, err := json.Marshal(details)
	if err != nil {
		return err
	}

	entry := models.AuditLog{
		ActorID: actorID,
		Action:  action,
		Details: string(payload),
	}

	if err := s.DB.Create(&entry).Error; err != nil {
		logger.Error("audit write failed for action %s: %v", action, err)
		return err
	}
	return nil
}

// LogSystem appends an audit entry attributed to the system actor
func (s *AuditService) LogSystem(action string, details interface{}) error {
	actorID := models.SystemActorID
	return s.Log(&actorID, action, details)
}

// List returns audit entries newest-first with pagination
func (s *AuditService) List(page, pageSize int) ([]models.AuditLog, int64, error) {
	var logs []models.AuditLog
	var total int64

	if err := s.DB.Model(&models.AuditLog{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	if err := s.DB.Order("created_at DESC").Offset(offset).Limit(pageSize).Find(&logs).Error; err != nil {
		return nil, 0, err
	}

	return logs, total, nil
}
