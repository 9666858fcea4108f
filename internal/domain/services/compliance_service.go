package services

import (
	"errors"

	"github.com/GSSolutions-CPT/GSS-OS/internal/domain/models"
	"github.com/GSSolutions-CPT/GSS-OS/internal/infrastructure/config"

	"gorm.io/gorm"
)

// ErrSiteAndTechnicianRequired is returned for readings missing identity fields
var ErrSiteAndTechnicianRequired = errors.New("site_id and technician_id are required")

// ComplianceReading is a technician's site measurement submission
type ComplianceReading struct {
	SiteID       string  `json:"site_id" binding:"required"`
	TechnicianID string  `json:"technician_id" binding:"required"`
	Voltage      float64 `json:"voltage"`
	PhotoURL     string  `json:"photo_url"`
	GPS          string  `json:"gps"`
}

// InterfaceComplianceService defines the compliance service interface
type InterfaceComplianceService interface {
	RecordReading(reading ComplianceReading) (*models.ComplianceLog, error)
	List(page, pageSize int) ([]models.ComplianceLog, int64, error)
}

// ComplianceService bands technician voltage readings against the configured
// threshold. The status is computed here, not by the data store, so the
// threshold stays named configuration.
type ComplianceService struct {
	DB     *gorm.DB
	Config *config.Config
	Audit  InterfaceAuditService
}

// NewComplianceService creates a new compliance service
func NewComplianceService(db *gorm.DB, cfg *config.Config, audit InterfaceAuditService) InterfaceComplianceService {
	return &ComplianceService{
		DB:     db,
		Config: cfg,
		Audit:  audit,
	}
}

// BandVoltage classifies a voltage reading against the configured minimum
func (s *ComplianceService) BandVoltage(voltage float64) models.ComplianceStatus {
	if voltage > s.Config.ComplianceVoltageMin {
		return models.ComplianceStatusCompliant
	}
	return models.ComplianceStatusNonCompliant
}

// RecordReading persists a reading with its computed status
func (s *ComplianceService) RecordReading(reading ComplianceReading) (*models.ComplianceLog, error) {
	if reading.SiteID == "" || reading.TechnicianID == "" {
		return nil, ErrSiteAndTechnicianRequired
	}

	entry := models.ComplianceLog{
		SiteID:       reading.SiteID,
		TechnicianID: reading.TechnicianID,
		Voltage:      reading.Voltage,
		PhotoURL:     reading.PhotoURL,
		GPS:          reading.GPS,
		Status:       s.BandVoltage(reading.Voltage),
	}
	if err := s.DB.Create(&entry).Error; err != nil {
		return nil, err
	}

	s.Audit.Log(&entry.TechnicianID, models.AuditActionComplianceReading, map[string]interface{}{
		"site_id": entry.SiteID,
		"voltage": entry.Voltage,
		"status":  entry.Status,
	})

	return &entry, nil
}

// List returns compliance logs newest-first with pagination
func (s *ComplianceService) List(page, pageSize int) ([]models.ComplianceLog, int64, error) {
	var total int64
	if err := s.DB.Model(&models.ComplianceLog{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var logs []models.ComplianceLog
	offset := (page - 1) * pageSize
	err := s.DB.Order("created_at DESC").Offset(offset).Limit(pageSize).Find(&logs).Error
	if err != nil {
		return nil, 0, err
	}

	return logs, total, nil
}
