package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// VisitorStatus represents the lifecycle state of a visitor credential
type VisitorStatus string

const (
	VisitorStatusActive  VisitorStatus = "active"
	VisitorStatusRevoked VisitorStatus = "revoked" // manual revocation by the owner
	VisitorStatusExpired VisitorStatus = "expired" // automatic expiry by the nightly sweep
)

// AccessDateLayout is the date-only format used for visitor access dates
const AccessDateLayout = "2006-01-02"

// Visitor represents a guest credential issued by a unit host
type Visitor struct {
	ID               string        `gorm:"type:varchar(36);primaryKey" json:"id"`
	OwnerID          string        `gorm:"type:varchar(36);not null;index" json:"owner_id"`
	UnitID           string        `gorm:"type:varchar(36);not null;index" json:"unit_id"`
	VisitorName      string        `gorm:"type:varchar(100);not null" json:"visitor_name"`
	VisitorEmail     *string       `gorm:"type:varchar(100)" json:"visitor_email,omitempty"`
	AccessDate       string        `gorm:"type:varchar(10);not null;index" json:"access_date"` // YYYY-MM-DD
	CredentialNumber uint32        `gorm:"not null;index" json:"credential_number"`            // 32-bit Wiegand number
	PinCode          string        `gorm:"type:varchar(5);not null" json:"pin_code"`           // 5-digit backup PIN
	Status           VisitorStatus `gorm:"type:varchar(20);not null;default:active;index" json:"status"`
	NeedsParking     bool          `gorm:"default:false" json:"needs_parking"`
	CreatedAt        time.Time     `json:"created_at"`
	UpdatedAt        time.Time     `json:"updated_at"`

	// Relations
	Owner *Profile `gorm:"foreignKey:OwnerID" json:"owner,omitempty"`
	Unit  *Unit    `gorm:"foreignKey:UnitID" json:"unit,omitempty"`
}

// BeforeCreate is a GORM hook that runs before a new record is created
func (v *Visitor) BeforeCreate(tx *gorm.DB) error {
	if v.ID == "" {
		v.ID = uuid.NewString()
	}
	if v.Status == "" {
		v.Status = VisitorStatusActive
	}
	return nil
}
