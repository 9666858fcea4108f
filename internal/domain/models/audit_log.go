package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Audit action names
const (
	AuditActionInvitedGuest      = "INVITED_GUEST"
	AuditActionInvitedGuestsBulk = "INVITED_GUESTS_BULK"
	AuditActionRevokePass        = "REVOKE_PASS"
	AuditActionResyncPass        = "RESYNC_PASS"
	AuditActionExpirationSweep   = "CRON_EXPIRATION_SWEEP"
	AuditActionGateScan          = "GATE_SCAN"
	AuditActionComplianceReading = "COMPLIANCE_READING"
)

// SystemActorID is the synthetic actor recorded for scheduled jobs
const SystemActorID = "00000000-0000-0000-0000-000000000000"

// AuditLog is an append-only record of an action; never mutated or deleted
type AuditLog struct {
	ID        string    `gorm:"type:varchar(36);primaryKey" json:"id"`
	ActorID   *string   `gorm:"type:varchar(36);index" json:"actor_id,omitempty"`
	Action    string    `gorm:"type:varchar(100);not null;index" json:"action"`
	Details   string    `gorm:"type:text" json:"details"` // free-form JSON payload
	CreatedAt time.Time `json:"created_at"`
}

// BeforeCreate is a GORM hook that runs before a new record is created
func (a *AuditLog) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}
