package services

import (
	"encoding/json"
	"net/http"

	"github.com/GSSolutions-CPT/GSS-OS/internal/domain/models"
	"github.com/GSSolutions-CPT/GSS-OS/internal/infrastructure/config"
	"github.com/GSSolutions-CPT/GSS-OS/pkg/logger"

	"gorm.io/gorm"
)

// RetryRunResult summarizes one retry-processor invocation
type RetryRunResult struct {
	Empty     bool `json:"empty"`
	Selected  int  `json:"selected"`
	Processed int  `json:"processed_count"`
}

// InterfaceRetryService defines the retry queue interface
type InterfaceRetryService interface {
	Enqueue(visitorID string, action models.RetryAction, payload BridgeRequest) error
	SyncRemoval(visitor *models.Visitor) bool
	ProcessQueue() (*RetryRunResult, error)
}

// RetryService persists failed hardware-bridge calls and drains them in
// bounded, oldest-first batches.
type RetryService struct {
	DB       *gorm.DB
	Config   *config.Config
	Hardware InterfaceHardwareService
}

// NewRetryService creates a new retry queue service
func NewRetryService(db *gorm.DB, cfg *config.Config, hardware InterfaceHardwareService) InterfaceRetryService {
	return &RetryService{
		DB:       db,
		Config:   cfg,
		Hardware: hardware,
	}
}

// Enqueue stores a bridge request for later replay
func (s *RetryService) Enqueue(visitorID string, action models.RetryAction, payload BridgeRequest) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	item := models.RetryItem{
		VisitorID: visitorID,
		Action:    action,
		Payload:   string(body),
		Status:    models.RetryStatusPending,
	}
	return s.DB.Create(&item).Error
}

// SyncRemoval pushes a credential removal to the bridge, falling back to the
// retry queue when the bridge fails or is not configured. Returns whether the
// removal reached the hardware synchronously.
func (s *RetryService) SyncRemoval(visitor *models.Visitor) bool {
	if err := s.Hardware.RemoveCredential(visitor.CredentialNumber); err != nil {
		logger.Warning("hardware removal for visitor %s deferred to retry queue: %v", visitor.ID, err)
		payload := s.Hardware.BuildRemoveRequest(visitor.CredentialNumber)
		if qerr := s.Enqueue(visitor.ID, models.RetryActionDelete, payload); qerr != nil {
			logger.Error("failed to enqueue removal retry for visitor %s: %v", visitor.ID, qerr)
		}
		return false
	}
	return true
}

// ProcessQueue drains up to RetryBatchSize pending items oldest-first,
// replaying each stored payload once. An item completes on success, freezes
// as failed after MaxRetryAttempts failures, and otherwise stays pending.
func (s *RetryService) ProcessQueue() (*RetryRunResult, error) {
	var queue []models.RetryItem
	err := s.DB.
		Where("status = ?", models.RetryStatusPending).
		Order("created_at ASC").
		Limit(models.RetryBatchSize).
		Find(&queue).Error
	if err != nil {
		return nil, err
	}

	if len(queue) == 0 {
		return &RetryRunResult{Empty: true}, nil
	}

	result := &RetryRunResult{Selected: len(queue)}

	for _, item := range queue {
		method := http.MethodPost
		if item.Action == models.RetryActionDelete {
			method = http.MethodDelete
		}

		if err := s.Hardware.Push(method, []byte(item.Payload)); err != nil {
			newCount := item.RetryCount + 1
			newStatus := models.RetryStatusPending
			if newCount >= models.MaxRetryAttempts {
				newStatus = models.RetryStatusFailed
				logger.Error("retry item %s exhausted %d attempts, frozen as failed", item.ID, newCount)
			}

			updateErr := s.DB.Model(&models.RetryItem{}).
				Where("id = ?", item.ID).
				Updates(map[string]interface{}{
					"retry_count": newCount,
					"status":      newStatus,
				}).Error
			if updateErr != nil {
				logger.Error("failed to update retry item %s: %v", item.ID, updateErr)
			}
			continue
		}

		updateErr := s.DB.Model(&models.RetryItem{}).
			Where("id = ?", item.ID).
			Update("status", models.RetryStatusCompleted).Error
		if updateErr != nil {
			logger.Error("failed to mark retry item %s completed: %v", item.ID, updateErr)
			continue
		}
		result.Processed++
	}

	return result, nil
}
