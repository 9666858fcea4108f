package services

import (
	"github.com/GSSolutions-CPT/GSS-OS/internal/domain/models"
	"github.com/GSSolutions-CPT/GSS-OS/internal/infrastructure/config"

	"gorm.io/gorm"
)

// InterfaceAdminService defines the account administration interface
type InterfaceAdminService interface {
	GetProfiles(page, pageSize int, search string) ([]models.Profile, int64, error)
	GetProfileByID(id string) (*models.Profile, error)
	CreateProfile(profile *models.Profile) error
	DeleteProfile(id string) error
	EnsureDefaultAdmin() error
}

// AdminService provides account management for the super admin
type AdminService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewAdminService creates a new admin service
func NewAdminService(db *gorm.DB, cfg *config.Config) InterfaceAdminService {
	return &AdminService{
		DB:     db,
		Config: cfg,
	}
}

// GetProfiles returns accounts with pagination and optional search
func (s *AdminService) GetProfiles(page, pageSize int, search string) ([]models.Profile, int64, error) {
	query := s.DB.Model(&models.Profile{})
	if search != "" {
		like := "%" + search + "%"
		query = query.Where("full_name LIKE ? OR email LIKE ?", like, like)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var profiles []models.Profile
	offset := (page - 1) * pageSize
	err := query.Preload("Unit").
		Order("created_at DESC").
		Offset(offset).Limit(pageSize).
		Find(&profiles).Error
	if err != nil {
		return nil, 0, err
	}

	return profiles, total, nil
}

// GetProfileByID returns an account by id
func (s *AdminService) GetProfileByID(id string) (*models.Profile, error) {
	var profile models.Profile
	if err := s.DB.Preload("Unit").Where("id = ?", id).First(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

// CreateProfile creates a new account; the password is hashed by the model hook
func (s *AdminService) CreateProfile(profile *models.Profile) error {
	if profile.Role == "" {
		profile.Role = models.RoleGroupAdmin
	}
	return s.DB.Create(profile).Error
}

// DeleteProfile deletes an account
func (s *AdminService) DeleteProfile(id string) error {
	return s.DB.Where("id = ?", id).Delete(&models.Profile{}).Error
}

// EnsureDefaultAdmin seeds the super admin account on first boot
func (s *AdminService) EnsureDefaultAdmin() error {
	var count int64
	err := s.DB.Model(&models.Profile{}).
		Where("role = ?", models.RoleSuperAdmin).
		Count(&count).Error
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	admin := models.Profile{
		FullName: "System Administrator",
		Email:    s.Config.DefaultAdminEmail,
		Password: s.Config.DefaultAdminPassword,
		Role:     models.RoleSuperAdmin,
	}
	return s.DB.Create(&admin).Error
}
