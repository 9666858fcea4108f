package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"testing"

	"github.com/GSSolutions-CPT/GSS-OS/internal/domain/models"
	"github.com/GSSolutions-CPT/GSS-OS/internal/infrastructure/config"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// newTestDB opens an isolated in-memory database with the full schema
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.ReplaceAll(t.Name(), "/", "_")
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.Unit{},
		&models.Profile{},
		&models.Visitor{},
		&models.RetryItem{},
		&models.AuditLog{},
		&models.Announcement{},
		&models.ComplianceLog{},
	))

	return db
}

// newTestConfig returns a config with the bridge left unconfigured
func newTestConfig() *config.Config {
	return &config.Config{
		BridgeTimeoutSeconds: 2,
		BridgeTagType:        15,
		ComplianceVoltageMin: 6000,
		JWTSecretKey:         "test-secret",
		DefaultAdminEmail:    "admin@test.local",
		DefaultAdminPassword: "admin123",
	}
}

// seedHost creates a unit and a host profile that belongs to it
func seedHost(t *testing.T, db *gorm.DB, unitType models.UnitType) (*models.Profile, *models.Unit) {
	t.Helper()

	unit := models.Unit{Name: "Block A - 101", Type: unitType}
	require.NoError(t, db.Create(&unit).Error)

	host := models.Profile{
		FullName: "Host One",
		Email:    strings.ReplaceAll(t.Name(), "/", "_") + "@test.local",
		Password: "password123",
		Role:     models.RoleGroupAdmin,
		UnitID:   &unit.ID,
	}
	require.NoError(t, db.Create(&host).Error)

	return &host, &unit
}

// stubHardware is a controllable hardware bridge for tests. Pushes may come
// from the invite dispatch goroutines, so access is guarded.
type stubHardware struct {
	cfg     *config.Config
	mu      sync.Mutex
	pushErr error
	pushes  []stubPush
}

type stubPush struct {
	Method  string
	Payload string
}

func newStubHardware(cfg *config.Config) *stubHardware {
	return &stubHardware{cfg: cfg}
}

func (s *stubHardware) BuildAddRequest(visitor *models.Visitor, liftAccessLevel string) BridgeRequest {
	return BridgeRequest{
		Action:           BridgeActionAdd,
		CredentialNumber: visitor.CredentialNumber,
		VisitorName:      visitor.VisitorName,
		AccessDate:       visitor.AccessDate,
		TagType:          s.cfg.BridgeTagType,
		LiftAccessLevel:  liftAccessLevel,
	}
}

func (s *stubHardware) BuildRemoveRequest(credentialNumber uint32) BridgeRequest {
	return BridgeRequest{
		Action:           BridgeActionRemove,
		CredentialNumber: credentialNumber,
		TagType:          s.cfg.BridgeTagType,
	}
}

func (s *stubHardware) AddCredential(visitor *models.Visitor, liftAccessLevel string) error {
	body, _ := json.Marshal(s.BuildAddRequest(visitor, liftAccessLevel))
	return s.Push(http.MethodPost, body)
}

func (s *stubHardware) RemoveCredential(credentialNumber uint32) error {
	body, _ := json.Marshal(s.BuildRemoveRequest(credentialNumber))
	return s.Push(http.MethodDelete, body)
}

func (s *stubHardware) Push(method string, payload []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.pushErr != nil {
		return s.pushErr
	}
	s.pushes = append(s.pushes, stubPush{Method: method, Payload: string(payload)})
	return nil
}

func (s *stubHardware) Probe(ctx context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.pushErr != nil {
		return 0, s.pushErr
	}
	return http.StatusOK, nil
}

func (s *stubHardware) setErr(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pushErr = err
}

func (s *stubHardware) pushCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pushes)
}
