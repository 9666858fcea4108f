package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ComplianceStatus represents the banded result of a site voltage reading
type ComplianceStatus string

const (
	ComplianceStatusCompliant    ComplianceStatus = "COMPLIANT"
	ComplianceStatusNonCompliant ComplianceStatus = "NON-COMPLIANT"
)

// ComplianceLog represents a technician's site reading. The status is recomputed
// in application code from the configured voltage threshold rather than derived
// by the data store.
type ComplianceLog struct {
	ID           string           `gorm:"type:varchar(36);primaryKey" json:"id"`
	SiteID       string           `gorm:"type:varchar(36);not null;index" json:"site_id"`
	TechnicianID string           `gorm:"type:varchar(36);not null" json:"technician_id"`
	Voltage      float64          `gorm:"not null" json:"voltage"`
	PhotoURL     string           `gorm:"type:varchar(255)" json:"photo_url"`
	GPS          string           `gorm:"type:varchar(100)" json:"gps"`
	Status       ComplianceStatus `gorm:"type:varchar(20);not null" json:"status"`
	CreatedAt    time.Time        `json:"created_at"`
}

// BeforeCreate is a GORM hook that runs before a new record is created
func (c *ComplianceLog) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}
