package services

import (
	"github.com/GSSolutions-CPT/GSS-OS/internal/domain/models"
	"github.com/GSSolutions-CPT/GSS-OS/internal/infrastructure/config"

	"gorm.io/gorm"
)

// InterfaceUnitService defines the unit service interface
type InterfaceUnitService interface {
	GetAllUnits() ([]models.Unit, error)
	GetUnitByID(id string) (*models.Unit, error)
	CreateUnit(unit *models.Unit) error
	UpdateUnit(id string, updates map[string]interface{}) (*models.Unit, error)
	DeleteUnit(id string) error
}

// UnitService provides organizational unit management
type UnitService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewUnitService creates a new unit service
func NewUnitService(db *gorm.DB, cfg *config.Config) InterfaceUnitService {
	return &UnitService{
		DB:     db,
		Config: cfg,
	}
}

// GetAllUnits returns all units
func (s *UnitService) GetAllUnits() ([]models.Unit, error) {
	var units []models.Unit
	if err := s.DB.Order("name ASC").Find(&units).Error; err != nil {
		return nil, err
	}
	return units, nil
}

// GetUnitByID returns a unit by id
func (s *UnitService) GetUnitByID(id string) (*models.Unit, error) {
	var unit models.Unit
	if err := s.DB.Where("id = ?", id).First(&unit).Error; err != nil {
		return nil, err
	}
	return &unit, nil
}

// CreateUnit creates a new unit
func (s *UnitService) CreateUnit(unit *models.Unit) error {
	if unit.Type == "" {
		unit.Type = models.UnitTypeResidential
	}
	return s.DB.Create(unit).Error
}

// UpdateUnit applies updates to a unit
func (s *UnitService) UpdateUnit(id string, updates map[string]interface{}) (*models.Unit, error) {
	if err := s.DB.Model(&models.Unit{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		return nil, err
	}
	return s.GetUnitByID(id)
}

// DeleteUnit deletes a unit
func (s *UnitService) DeleteUnit(id string) error {
	return s.DB.Where("id = ?", id).Delete(&models.Unit{}).Error
}
