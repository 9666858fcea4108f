package services

import (
	"github.com/GSSolutions-CPT/GSS-OS/internal/domain/models"
	"github.com/GSSolutions-CPT/GSS-OS/internal/infrastructure/config"

	"gorm.io/gorm"
)

// InterfaceAnnouncementService defines the announcement service interface
type InterfaceAnnouncementService interface {
	Create(authorID, message string) (*models.Announcement, error)
	List(limit int) ([]models.Announcement, error)
	Delete(id string) error
}

// AnnouncementService manages estate-wide notices
type AnnouncementService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewAnnouncementService creates a new announcement service
func NewAnnouncementService(db *gorm.DB, cfg *config.Config) InterfaceAnnouncementService {
	return &AnnouncementService{
		DB:     db,
		Config: cfg,
	}
}

// Create publishes a new announcement
func (s *AnnouncementService) Create(authorID, message string) (*models.Announcement, error) {
	announcement := models.Announcement{
		AuthorID: authorID,
		Message:  message,
	}
	if err := s.DB.Create(&announcement).Error; err != nil {
		return nil, err
	}
	return &announcement, nil
}

// List returns the latest announcements
func (s *AnnouncementService) List(limit int) ([]models.Announcement, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	var announcements []models.Announcement
	err := s.DB.Preload("Author").
		Order("created_at DESC").
		Limit(limit).
		Find(&announcements).Error
	return announcements, err
}

// Delete removes an announcement
func (s *AnnouncementService) Delete(id string) error {
	return s.DB.Where("id = ?", id).Delete(&models.Announcement{}).Error
}
