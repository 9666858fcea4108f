package models

import (
	"time"

	"github.com/GSSolutions-CPT/GSS-OS/utils"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserRole represents the role of an account
type UserRole string

const (
	RoleSuperAdmin UserRole = "super_admin"
	RoleGroupAdmin UserRole = "group_admin"
	RoleGuard      UserRole = "guard"
)

// Profile represents a user account (administrator, unit host or gate guard)
type Profile struct {
	ID        string    `gorm:"type:varchar(36);primaryKey" json:"id"`
	FullName  string    `gorm:"type:varchar(100);not null" json:"full_name"`
	Email     string    `gorm:"type:varchar(100);uniqueIndex;not null" json:"email"`
	Password  string    `gorm:"type:varchar(100);not null" json:"-"` // never exposed in JSON
	Role      UserRole  `gorm:"type:varchar(20);not null;default:group_admin" json:"role"`
	UnitID    *string   `gorm:"type:varchar(36)" json:"unit_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relations
	Unit     *Unit     `gorm:"foreignKey:UnitID" json:"unit,omitempty"`
	Visitors []Visitor `gorm:"foreignKey:OwnerID" json:"visitors,omitempty"`
}

// BeforeCreate is a GORM hook that runs before a new record is created
func (p *Profile) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if p.Password != "" {
		hashedPassword, err := utils.HashPassword(p.Password)
		if err != nil {
			return err
		}
		p.Password = hashedPassword
	}
	return nil
}

// BeforeSave is a GORM hook that runs before a record is saved
func (p *Profile) BeforeSave(tx *gorm.DB) error {
	// bcrypt hashes are 60 characters; shorter values are plain text
	if p.Password != "" && len(p.Password) < 60 {
		hashedPassword, err := utils.HashPassword(p.Password)
		if err != nil {
			return err
		}
		p.Password = hashedPassword
	}
	return nil
}
