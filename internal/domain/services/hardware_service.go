package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/GSSolutions-CPT/GSS-OS/internal/domain/models"
	"github.com/GSSolutions-CPT/GSS-OS/internal/infrastructure/config"
)

// ErrBridgeNotConfigured is returned when EXTERNAL_API_URL or EXTERNAL_API_TOKEN is missing.
// Callers distinguish "not attempted" from a real failure with this sentinel.
var ErrBridgeNotConfigured = errors.New("hardware bridge not configured")

// Bridge wire actions
const (
	BridgeActionAdd    = "add_credential"
	BridgeActionRemove = "remove_credential"
)

// ProbeTimeout bounds the health-check ping to the bridge
const ProbeTimeout = 3 * time.Second

// BridgeRequest is the JSON body pushed to the external access-control bridge
type BridgeRequest struct {
	Action           string `json:"action"`
	CredentialNumber uint32 `json:"credential_number"`
	VisitorName      string `json:"visitor_name,omitempty"`
	AccessDate       string `json:"access_date,omitempty"`
	TagType          int    `json:"tag_type"`
	LiftAccessLevel  string `json:"lift_access_level,omitempty"`
}

// InterfaceHardwareService defines the hardware bridge client interface
type InterfaceHardwareService interface {
	AddCredential(visitor *models.Visitor, liftAccessLevel string) error
	RemoveCredential(credentialNumber uint32) error
	Push(method string, payload []byte) error
	Probe(ctx context.Context) (int, error)
	BuildAddRequest(visitor *models.Visitor, liftAccessLevel string) BridgeRequest
	BuildRemoveRequest(credentialNumber uint32) BridgeRequest
}

// HardwareService issues outbound calls to the Impro access-control bridge.
// It performs no retries itself; retry is the responsibility of the retry queue.
type HardwareService struct {
	Config *config.Config
	Client *http.Client
}

// NewHardwareService creates a new hardware bridge client
func NewHardwareService(cfg *config.Config) InterfaceHardwareService {
	return &HardwareService{
		Config: cfg,
		Client: &http.Client{
			Timeout: time.Duration(cfg.BridgeTimeoutSeconds) * time.Second,
		},
	}
}

// BuildAddRequest builds the add_credential request body for a visitor
func (s *HardwareService) BuildAddRequest(visitor *models.Visitor, liftAccessLevel string) BridgeRequest {
	return BridgeRequest{
		Action:           BridgeActionAdd,
		CredentialNumber: visitor.CredentialNumber,
		VisitorName:      visitor.VisitorName,
		AccessDate:       visitor.AccessDate,
		TagType:          s.Config.BridgeTagType,
		LiftAccessLevel:  liftAccessLevel,
	}
}

// BuildRemoveRequest builds the remove_credential request body for a credential number
func (s *HardwareService) BuildRemoveRequest(credentialNumber uint32) BridgeRequest {
	return BridgeRequest{
		Action:           BridgeActionRemove,
		CredentialNumber: credentialNumber,
		TagType:          s.Config.BridgeTagType,
	}
}

// AddCredential pushes a new credential to the bridge
func (s *HardwareService) AddCredential(visitor *models.Visitor, liftAccessLevel string) error {
	body, err := json.Marshal(s.BuildAddRequest(visitor, liftAccessLevel))
	if err != nil {
		return err
	}
	return s.Push(http.MethodPost, body)
}

// RemoveCredential removes a credential from the bridge panel memory
func (s *HardwareService) RemoveCredential(credentialNumber uint32) error {
	body, err := json.Marshal(s.BuildRemoveRequest(credentialNumber))
	if err != nil {
		return err
	}
	return s.Push(http.MethodDelete, body)
}

// Push sends a raw request body to the configured bridge endpoint. Any 2xx
// response counts as success; everything else is a single, unretried failure.
func (s *HardwareService) Push(method string, payload []byte) error {
	if !s.Config.BridgeConfigured() {
		return ErrBridgeNotConfigured
	}

	req, err := http.NewRequest(method, s.Config.ExternalAPIURL, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.Config.ExternalAPIToken)

	resp, err := s.Client.Do(req)
	if err != nil {
		return fmt.Errorf("hardware bridge request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("hardware bridge returned status %d: %s", resp.StatusCode, string(respBody))
	}

	return nil
}

// Probe pings the bridge URL with a short timeout. Any HTTP response, even an
// error status, means the tunnel is up; only network failure means unreachable.
func (s *HardwareService) Probe(ctx context.Context) (int, error) {
	if s.Config.ExternalAPIURL == "" {
		return 0, ErrBridgeNotConfigured
	}

	ctx, cancel := context.WithTimeout(ctx, ProbeTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.Config.ExternalAPIURL, nil)
	if err != nil {
		return 0, err
	}

	resp, err := s.Client.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	return resp.StatusCode, nil
}
