package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RetryStatus represents the state of a queued hardware call
type RetryStatus string

const (
	RetryStatusPending   RetryStatus = "pending"
	RetryStatusCompleted RetryStatus = "completed"
	RetryStatusFailed    RetryStatus = "failed" // exhausted all attempts, needs manual intervention
)

// RetryAction represents the hardware operation to replay
type RetryAction string

const (
	RetryActionAdd    RetryAction = "add"
	RetryActionDelete RetryAction = "delete"
)

const (
	// MaxRetryAttempts is the number of failures after which an item is frozen as failed
	MaxRetryAttempts = 5
	// RetryBatchSize bounds how many pending items a single processor run drains
	RetryBatchSize = 50
)

// RetryItem represents a failed hardware-bridge call awaiting reattempt
type RetryItem struct {
	ID         string      `gorm:"type:varchar(36);primaryKey" json:"id"`
	VisitorID  string      `gorm:"type:varchar(36);not null;index" json:"visitor_id"`
	Action     RetryAction `gorm:"type:varchar(20);not null" json:"action"`
	Payload    string      `gorm:"type:text;not null" json:"payload"` // exact bridge request body, replayed verbatim
	RetryCount int         `gorm:"default:0" json:"retry_count"`
	Status     RetryStatus `gorm:"type:varchar(20);not null;default:pending;index" json:"status"`
	CreatedAt  time.Time   `json:"created_at"`
	UpdatedAt  time.Time   `json:"updated_at"`

	// Relations
	Visitor *Visitor `gorm:"foreignKey:VisitorID" json:"visitor,omitempty"`
}

// BeforeCreate is a GORM hook that runs before a new record is created
func (r *RetryItem) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	if r.Status == "" {
		r.Status = RetryStatusPending
	}
	return nil
}
