package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UnitType represents the classification of an organizational unit
type UnitType string

const (
	UnitTypeResidential UnitType = "residential"
	UnitTypeCommercial  UnitType = "commercial"
)

// Unit represents an organizational unit (a residence or business in the estate)
type Unit struct {
	ID        string    `gorm:"type:varchar(36);primaryKey" json:"id"`
	Name      string    `gorm:"type:varchar(100);not null" json:"name"`
	Type      UnitType  `gorm:"type:varchar(20);not null;default:residential" json:"type"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relations
	Profiles []Profile `gorm:"foreignKey:UnitID" json:"profiles,omitempty"`
	Visitors []Visitor `gorm:"foreignKey:UnitID" json:"visitors,omitempty"`
}

// BeforeCreate is a GORM hook that runs before a new record is created
func (u *Unit) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}

// LiftAccessLevel maps the unit type to the access-level classifier pushed to the hardware bridge
func (u *Unit) LiftAccessLevel() string {
	if u.Type == UnitTypeCommercial {
		return "commercial"
	}
	return "residential"
}
