package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Announcement represents an estate-wide notice published by an administrator
type Announcement struct {
	ID        string    `gorm:"type:varchar(36);primaryKey" json:"id"`
	AuthorID  string    `gorm:"type:varchar(36);not null" json:"author_id"`
	Message   string    `gorm:"type:text;not null" json:"message"`
	CreatedAt time.Time `json:"created_at"`

	// Relations
	Author *Profile `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
}

// BeforeCreate is a GORM hook that runs before a new record is created
func (a *Announcement) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}
