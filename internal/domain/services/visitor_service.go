package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/GSSolutions-CPT/GSS-OS/internal/domain/models"
	"github.com/GSSolutions-CPT/GSS-OS/internal/infrastructure/config"
	"github.com/GSSolutions-CPT/GSS-OS/pkg/logger"
	"github.com/GSSolutions-CPT/GSS-OS/utils"

	"gorm.io/gorm"
)

// MaxBulkInvites bounds a single bulk invitation batch
const MaxBulkInvites = 50

// credentialGenAttempts bounds the collision-avoidance loop; after that the
// random draw is used as-is (collision probability accepted)
const credentialGenAttempts = 5

// Service errors surfaced to users as validation failures
var (
	ErrNameAndDateRequired = errors.New("name and access date are required")
	ErrInvalidAccessDate   = errors.New("access date must be YYYY-MM-DD")
	ErrNoUnit              = errors.New("user does not belong to a valid unit")
	ErrBulkEmpty           = errors.New("no visitor data provided")
	ErrBulkLimitExceeded   = fmt.Errorf("maximum %d invites allowed per bulk upload", MaxBulkInvites)
	ErrVisitorNotActive    = errors.New("visitor pass is not active")
)

// InviteRequest is one guest invitation
type InviteRequest struct {
	Name         string `json:"name" binding:"required" example:"Jane Doe"`
	Email        string `json:"email" example:"jane@example.com"`
	AccessDate   string `json:"access_date" binding:"required" example:"2026-01-10"`
	NeedsParking bool   `json:"needs_parking"`
}

// VerifyRequest is a gate verification attempt (QR credential scan or PIN entry)
type VerifyRequest struct {
	CredentialNumber *uint32 `json:"credential_number,omitempty"`
	PinCode          string  `json:"pin_code,omitempty"`
}

// VerifyResult is the outcome of a gate verification
type VerifyResult struct {
	Granted      bool   `json:"granted"`
	VisitorID    string `json:"visitor_id,omitempty"`
	VisitorName  string `json:"visitor_name,omitempty"`
	UnitName     string `json:"unit_name,omitempty"`
	NeedsParking bool   `json:"needs_parking,omitempty"`
	Reason       string `json:"reason,omitempty"`
}

// InterfaceVisitorService defines the visitor credential service interface
type InterfaceVisitorService interface {
	InviteVisitor(ownerID string, req InviteRequest) (*models.Visitor, error)
	InviteVisitorsBulk(ownerID string, reqs []InviteRequest) ([]models.Visitor, error)
	RevokeVisitor(actorID, visitorID string, elevated bool) (bool, error)
	GetVisitor(id string) (*models.Visitor, error)
	ListVisitors(ownerID string, all bool, page, pageSize int) ([]models.Visitor, int64, error)
	ResyncVisitor(actorID, visitorID string) error
	VerifyCredential(guardID string, req VerifyRequest) (*VerifyResult, error)
	DirectoryForToday() ([]models.Visitor, error)
	ParkingForToday() ([]models.Visitor, error)
}

// VisitorService owns the credential lifecycle: issuance, revocation and
// gate-side verification
type VisitorService struct {
	DB       *gorm.DB
	Config   *config.Config
	Hardware InterfaceHardwareService
	Retry    InterfaceRetryService
	Audit    InterfaceAuditService
	Redis    InterfaceRedisService // optional verification cache
	Notifier InterfaceGateNotifier // optional
}

// NewVisitorService creates a new visitor service
func NewVisitorService(db *gorm.DB, cfg *config.Config, hardware InterfaceHardwareService, retry InterfaceRetryService, audit InterfaceAuditService, redisService InterfaceRedisService, notifier InterfaceGateNotifier) InterfaceVisitorService {
	return &VisitorService{
		DB:       db,
		Config:   cfg,
		Hardware: hardware,
		Retry:    retry,
		Audit:    audit,
		Redis:    redisService,
		Notifier: notifier,
	}
}

// resolveUnit loads the inviting user's unit; every invitation is scoped to one
func (s *VisitorService) resolveUnit(ownerID string) (*models.Unit, error) {
	var owner models.Profile
	if err := s.DB.Preload("Unit").Where("id = ?", ownerID).First(&owner).Error; err != nil {
		return nil, err
	}
	if owner.UnitID == nil || owner.Unit == nil {
		return nil, ErrNoUnit
	}
	return owner.Unit, nil
}

// generateCredentialNumber draws a random 32-bit credential, retrying a few
// times when the draw collides with a non-expired credential
func (s *VisitorService) generateCredentialNumber() uint32 {
	var number uint32
	for attempt := 0; attempt < credentialGenAttempts; attempt++ {
		number = utils.RandomCredentialNumber()

		var count int64
		err := s.DB.Model(&models.Visitor{}).
			Where("credential_number = ? AND status <> ?", number, models.VisitorStatusExpired).
			Count(&count).Error
		if err != nil {
			logger.Warning("credential collision check failed, using draw as-is: %v", err)
			return number
		}
		if count == 0 {
			return number
		}
	}
	logger.Warning("credential number %d still colliding after %d draws, using it anyway", number, credentialGenAttempts)
	return number
}

func validateInvite(req InviteRequest) error {
	if req.Name == "" || req.AccessDate == "" {
		return ErrNameAndDateRequired
	}
	if _, err := time.Parse(models.AccessDateLayout, req.AccessDate); err != nil {
		return ErrInvalidAccessDate
	}
	return nil
}

// buildVisitor assembles an unsaved visitor record for an invitation
func (s *VisitorService) buildVisitor(ownerID string, unit *models.Unit, req InviteRequest) models.Visitor {
	var email *string
	if req.Email != "" {
		email = &req.Email
	}

	return models.Visitor{
		OwnerID:          ownerID,
		UnitID:           unit.ID,
		VisitorName:      req.Name,
		VisitorEmail:     email,
		AccessDate:       req.AccessDate,
		CredentialNumber: s.generateCredentialNumber(),
		PinCode:          utils.RandomPinCode(),
		Status:           models.VisitorStatusActive,
		NeedsParking:     req.NeedsParking,
	}
}

// dispatchAdd pushes the credential to the bridge asynchronously. The
// invitation never waits on or fails with the hardware: failures are logged,
// not queued (the add path stays fire-and-forget, unlike removals).
func (s *VisitorService) dispatchAdd(visitor models.Visitor, liftAccessLevel string) {
	go func() {
		err := s.Hardware.AddCredential(&visitor, liftAccessLevel)
		switch {
		case err == nil:
			notifyGate(s.Notifier, GateEventCredentialAdded, &visitor)
		case errors.Is(err, ErrBridgeNotConfigured):
			logger.Warning("hardware bridge omitted for visitor %s: missing EXTERNAL_API_URL or EXTERNAL_API_TOKEN", visitor.ID)
		default:
			logger.Error("hardware add for visitor %s failed, invitation unaffected: %v", visitor.ID, err)
		}
	}()
}

// InviteVisitor issues a single guest credential
func (s *VisitorService) InviteVisitor(ownerID string, req InviteRequest) (*models.Visitor, error) {
	if err := validateInvite(req); err != nil {
		return nil, err
	}

	unit, err := s.resolveUnit(ownerID)
	if err != nil {
		return nil, err
	}

	visitor := s.buildVisitor(ownerID, unit, req)
	if err := s.DB.Create(&visitor).Error; err != nil {
		return nil, err
	}

	s.Audit.Log(&ownerID, models.AuditActionInvitedGuest, map[string]interface{}{
		"visitor_name":  visitor.VisitorName,
		"access_date":   visitor.AccessDate,
		"needs_parking": visitor.NeedsParking,
	})

	s.dispatchAdd(visitor, unit.LiftAccessLevel())

	return &visitor, nil
}

// InviteVisitorsBulk issues up to MaxBulkInvites credentials in one batch.
// The whole batch is rejected before anything is persisted when it is empty
// or oversized.
func (s *VisitorService) InviteVisitorsBulk(ownerID string, reqs []InviteRequest) ([]models.Visitor, error) {
	if len(reqs) == 0 {
		return nil, ErrBulkEmpty
	}
	if len(reqs) > MaxBulkInvites {
		return nil, ErrBulkLimitExceeded
	}

	for _, req := range reqs {
		if err := validateInvite(req); err != nil {
			return nil, err
		}
	}

	unit, err := s.resolveUnit(ownerID)
	if err != nil {
		return nil, err
	}

	visitors := make([]models.Visitor, 0, len(reqs))
	for _, req := range reqs {
		visitors = append(visitors, s.buildVisitor(ownerID, unit, req))
	}

	if err := s.DB.Create(&visitors).Error; err != nil {
		return nil, err
	}

	s.Audit.Log(&ownerID, models.AuditActionInvitedGuestsBulk, map[string]interface{}{
		"count": len(visitors),
	})

	// One concurrent best-effort dispatch per record; the response does not
	// wait for their outcomes
	level := unit.LiftAccessLevel()
	for _, visitor := range visitors {
		s.dispatchAdd(visitor, level)
	}

	return visitors, nil
}

// RevokeVisitor revokes an active pass. The hardware removal follows the same
// path as automatic expiration: push now, queue a retry on failure. Returns
// whether the removal reached the hardware synchronously.
func (s *VisitorService) RevokeVisitor(actorID, visitorID string, elevated bool) (bool, error) {
	query := s.DB.Where("id = ?", visitorID)
	if !elevated {
		// Owners can only touch their own passes
		query = query.Where("owner_id = ?", actorID)
	}

	var visitor models.Visitor
	if err := query.First(&visitor).Error; err != nil {
		return false, err
	}

	if visitor.Status != models.VisitorStatusActive {
		return false, ErrVisitorNotActive
	}

	err := s.DB.Model(&models.Visitor{}).
		Where("id = ?", visitor.ID).
		Update("status", models.VisitorStatusRevoked).Error
	if err != nil {
		return false, err
	}

	s.Audit.Log(&actorID, models.AuditActionRevokePass, map[string]interface{}{
		"visitor_id": visitor.ID,
		"method":     "manual",
	})

	synced := s.Retry.SyncRemoval(&visitor)
	if synced {
		notifyGate(s.Notifier, GateEventCredentialRemoved, &visitor)
	}
	return synced, nil
}

// GetVisitor loads a pass with its unit for rendering
func (s *VisitorService) GetVisitor(id string) (*models.Visitor, error) {
	var visitor models.Visitor
	if err := s.DB.Preload("Unit").Where("id = ?", id).First(&visitor).Error; err != nil {
		return nil, err
	}
	return &visitor, nil
}

// ListVisitors returns passes for the dashboard, scoped to the owner unless elevated
func (s *VisitorService) ListVisitors(ownerID string, all bool, page, pageSize int) ([]models.Visitor, int64, error) {
	query := s.DB.Model(&models.Visitor{})
	if !all {
		query = query.Where("owner_id = ?", ownerID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var visitors []models.Visitor
	offset := (page - 1) * pageSize
	err := query.Preload("Unit").
		Order("created_at DESC").
		Offset(offset).Limit(pageSize).
		Find(&visitors).Error
	if err != nil {
		return nil, 0, err
	}

	return visitors, total, nil
}

// ResyncVisitor re-dispatches the hardware add for an active pass
func (s *VisitorService) ResyncVisitor(actorID, visitorID string) error {
	visitor, err := s.GetVisitor(visitorID)
	if err != nil {
		return err
	}
	if visitor.Status != models.VisitorStatusActive {
		return ErrVisitorNotActive
	}

	level := "residential"
	if visitor.Unit != nil {
		level = visitor.Unit.LiftAccessLevel()
	}

	s.Audit.Log(&actorID, models.AuditActionResyncPass, map[string]interface{}{
		"visitor_id": visitor.ID,
	})

	s.dispatchAdd(*visitor, level)
	return nil
}

// VerifyCredential checks a scanned credential or PIN against today's active
// passes and records the scan either way
func (s *VisitorService) VerifyCredential(guardID string, req VerifyRequest) (*VerifyResult, error) {
	if req.CredentialNumber == nil && req.PinCode == "" {
		return nil, errors.New("credential number or pin code is required")
	}

	today := time.Now().UTC().Format(models.AccessDateLayout)

	var cacheKey string
	if req.CredentialNumber != nil {
		cacheKey = fmt.Sprintf("verify:%s:%d", today, *req.CredentialNumber)
	} else {
		cacheKey = fmt.Sprintf("verify:%s:pin:%s", today, req.PinCode)
	}

	if s.Redis != nil {
		var cached VerifyResult
		if err := s.Redis.Get(cacheKey, &cached); err == nil && cached.Granted {
			return &cached, nil
		}
	}

	query := s.DB.Preload("Unit").
		Where("status = ? AND access_date = ?", models.VisitorStatusActive, today)
	if req.CredentialNumber != nil {
		query = query.Where("credential_number = ?", *req.CredentialNumber)
	} else {
		query = query.Where("pin_code = ?", req.PinCode)
	}

	var visitor models.Visitor
	if err := query.First(&visitor).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}

		s.Audit.Log(&guardID, models.AuditActionGateScan, map[string]interface{}{
			"result": "denied",
		})
		return &VerifyResult{Granted: false, Reason: "invalid or expired pass"}, nil
	}

	unitName := ""
	if visitor.Unit != nil {
		unitName = visitor.Unit.Name
	}

	result := &VerifyResult{
		Granted:      true,
		VisitorID:    visitor.ID,
		VisitorName:  visitor.VisitorName,
		UnitName:     unitName,
		NeedsParking: visitor.NeedsParking,
	}

	if s.Redis != nil {
		if err := s.Redis.Set(cacheKey, result, time.Minute); err != nil {
			logger.Warning("verification cache write failed: %v", err)
		}
	}

	s.Audit.Log(&guardID, models.AuditActionGateScan, map[string]interface{}{
		"result":     "granted",
		"visitor_id": visitor.ID,
	})

	return result, nil
}

// DirectoryForToday lists today's expected visitors for the guard house
func (s *VisitorService) DirectoryForToday() ([]models.Visitor, error) {
	today := time.Now().UTC().Format(models.AccessDateLayout)

	var visitors []models.Visitor
	err := s.DB.Preload("Unit").
		Where("status = ? AND access_date = ?", models.VisitorStatusActive, today).
		Order("visitor_name ASC").
		Find(&visitors).Error
	return visitors, err
}

// ParkingForToday lists today's active passes that reserved parking
func (s *VisitorService) ParkingForToday() ([]models.Visitor, error) {
	today := time.Now().UTC().Format(models.AccessDateLayout)

	var visitors []models.Visitor
	err := s.DB.Preload("Unit").
		Where("status = ? AND access_date = ? AND needs_parking = ?", models.VisitorStatusActive, today, true).
		Order("visitor_name ASC").
		Find(&visitors).Error
	return visitors, err
}
