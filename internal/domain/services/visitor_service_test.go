package services

import (
	"errors"
	"fmt"
	"strconv"
	"testing"
	"time"

	"github.com/GSSolutions-CPT/GSS-OS/internal/domain/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newVisitorFixture(t *testing.T) (InterfaceVisitorService, *stubHardware, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	cfg := newTestConfig()
	hw := newStubHardware(cfg)
	retry := NewRetryService(db, cfg, hw)
	audit := NewAuditService(db, cfg)
	svc := NewVisitorService(db, cfg, hw, retry, audit, nil, nil)
	return svc, hw, db
}

// waitForPushes waits for the async invite dispatches to land
func waitForPushes(t *testing.T, hw *stubHardware, want int) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if hw.pushCount() >= want {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatalf("expected %d hardware pushes, got %d", want, hw.pushCount())
}

func TestInviteVisitorCreatesPass(t *testing.T) {
	svc, hw, db := newVisitorFixture(t)
	host, unit := seedHost(t, db, models.UnitTypeResidential)

	visitor, err := svc.InviteVisitor(host.ID, InviteRequest{
		Name:         "Jane Doe",
		AccessDate:   dateOffset(1),
		NeedsParking: true,
	})
	require.NoError(t, err)

	assert.NotEmpty(t, visitor.ID)
	assert.Equal(t, host.ID, visitor.OwnerID)
	assert.Equal(t, unit.ID, visitor.UnitID)
	assert.Equal(t, "Jane Doe", visitor.VisitorName)
	assert.Equal(t, models.VisitorStatusActive, visitor.Status)
	assert.True(t, visitor.NeedsParking)

	pin, err := strconv.Atoi(visitor.PinCode)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, pin, 10000)
	assert.LessOrEqual(t, pin, 99999)

	var entry models.AuditLog
	require.NoError(t, db.Where("action = ?", models.AuditActionInvitedGuest).First(&entry).Error)
	require.NotNil(t, entry.ActorID)
	assert.Equal(t, host.ID, *entry.ActorID)
	assert.Contains(t, entry.Details, "Jane Doe")

	// The hardware push is asynchronous and best-effort
	waitForPushes(t, hw, 1)
	assert.Contains(t, hw.pushes[0].Payload, `"add_credential"`)
	assert.Contains(t, hw.pushes[0].Payload, `"lift_access_level":"residential"`)
}

func TestInviteVisitorCommercialAccessLevel(t *testing.T) {
	svc, hw, db := newVisitorFixture(t)
	host, _ := seedHost(t, db, models.UnitTypeCommercial)

	_, err := svc.InviteVisitor(host.ID, InviteRequest{Name: "Courier", AccessDate: dateOffset(1)})
	require.NoError(t, err)

	waitForPushes(t, hw, 1)
	assert.Contains(t, hw.pushes[0].Payload, `"lift_access_level":"commercial"`)
}

func TestInviteVisitorHardwareFailureDoesNotFailInvite(t *testing.T) {
	svc, hw, db := newVisitorFixture(t)
	host, _ := seedHost(t, db, models.UnitTypeResidential)
	hw.setErr(errors.New("bridge down"))

	visitor, err := svc.InviteVisitor(host.ID, InviteRequest{Name: "Jane Doe", AccessDate: dateOffset(1)})
	require.NoError(t, err)
	assert.Equal(t, models.VisitorStatusActive, visitor.Status)

	// Failed adds are not queued; removals are the only retried action
	time.Sleep(100 * time.Millisecond)
	var count int64
	db.Model(&models.RetryItem{}).Count(&count)
	assert.Zero(t, count)
}

func TestInviteVisitorValidation(t *testing.T) {
	svc, _, db := newVisitorFixture(t)
	host, _ := seedHost(t, db, models.UnitTypeResidential)

	_, err := svc.InviteVisitor(host.ID, InviteRequest{AccessDate: dateOffset(1)})
	assert.ErrorIs(t, err, ErrNameAndDateRequired)

	_, err = svc.InviteVisitor(host.ID, InviteRequest{Name: "Jane Doe"})
	assert.ErrorIs(t, err, ErrNameAndDateRequired)

	_, err = svc.InviteVisitor(host.ID, InviteRequest{Name: "Jane Doe", AccessDate: "10/01/2026"})
	assert.ErrorIs(t, err, ErrInvalidAccessDate)

	// A host without a unit cannot invite
	orphan := models.Profile{FullName: "No Unit", Email: "orphan@test.local", Password: "password123", Role: models.RoleGroupAdmin}
	require.NoError(t, db.Create(&orphan).Error)
	_, err = svc.InviteVisitor(orphan.ID, InviteRequest{Name: "Jane Doe", AccessDate: dateOffset(1)})
	assert.ErrorIs(t, err, ErrNoUnit)
}

func TestInviteVisitorsBulk(t *testing.T) {
	svc, hw, db := newVisitorFixture(t)
	host, _ := seedHost(t, db, models.UnitTypeResidential)

	reqs := make([]InviteRequest, 3)
	for i := range reqs {
		reqs[i] = InviteRequest{Name: fmt.Sprintf("Guest %d", i), AccessDate: dateOffset(1)}
	}

	visitors, err := svc.InviteVisitorsBulk(host.ID, reqs)
	require.NoError(t, err)
	assert.Len(t, visitors, 3)

	var count int64
	db.Model(&models.Visitor{}).Count(&count)
	assert.Equal(t, int64(3), count)

	var entry models.AuditLog
	require.NoError(t, db.Where("action = ?", models.AuditActionInvitedGuestsBulk).First(&entry).Error)
	assert.Contains(t, entry.Details, `"count":3`)

	waitForPushes(t, hw, 3)
}

func TestInviteVisitorsBulkRejectsOversizedBatch(t *testing.T) {
	svc, _, db := newVisitorFixture(t)
	host, _ := seedHost(t, db, models.UnitTypeResidential)

	reqs := make([]InviteRequest, MaxBulkInvites+1)
	for i := range reqs {
		reqs[i] = InviteRequest{Name: fmt.Sprintf("Guest %d", i), AccessDate: dateOffset(1)}
	}

	_, err := svc.InviteVisitorsBulk(host.ID, reqs)
	assert.ErrorIs(t, err, ErrBulkLimitExceeded)

	_, err = svc.InviteVisitorsBulk(host.ID, nil)
	assert.ErrorIs(t, err, ErrBulkEmpty)

	// Nothing was persisted
	var count int64
	db.Model(&models.Visitor{}).Count(&count)
	assert.Zero(t, count)
}

func TestRevokeVisitor(t *testing.T) {
	svc, hw, db := newVisitorFixture(t)
	host, _ := seedHost(t, db, models.UnitTypeResidential)

	visitor, err := svc.InviteVisitor(host.ID, InviteRequest{Name: "Jane Doe", AccessDate: dateOffset(1)})
	require.NoError(t, err)
	waitForPushes(t, hw, 1)

	synced, err := svc.RevokeVisitor(host.ID, visitor.ID, false)
	require.NoError(t, err)
	assert.True(t, synced)

	var reloaded models.Visitor
	require.NoError(t, db.Where("id = ?", visitor.ID).First(&reloaded).Error)
	assert.Equal(t, models.VisitorStatusRevoked, reloaded.Status)

	var entry models.AuditLog
	require.NoError(t, db.Where("action = ?", models.AuditActionRevokePass).First(&entry).Error)
	assert.Contains(t, entry.Details, `"method":"manual"`)

	// Already-revoked passes cannot be revoked twice
	_, err = svc.RevokeVisitor(host.ID, visitor.ID, false)
	assert.ErrorIs(t, err, ErrVisitorNotActive)
}

func TestRevokeVisitorQueuesRemovalWhenBridgeFails(t *testing.T) {
	svc, hw, db := newVisitorFixture(t)
	host, _ := seedHost(t, db, models.UnitTypeResidential)

	visitor, err := svc.InviteVisitor(host.ID, InviteRequest{Name: "Jane Doe", AccessDate: dateOffset(1)})
	require.NoError(t, err)
	waitForPushes(t, hw, 1)

	hw.setErr(errors.New("bridge down"))
	synced, err := svc.RevokeVisitor(host.ID, visitor.ID, false)
	require.NoError(t, err)
	assert.False(t, synced)

	// The pass is revoked locally and the removal waits in the queue
	var reloaded models.Visitor
	require.NoError(t, db.Where("id = ?", visitor.ID).First(&reloaded).Error)
	assert.Equal(t, models.VisitorStatusRevoked, reloaded.Status)

	var item models.RetryItem
	require.NoError(t, db.First(&item).Error)
	assert.Equal(t, visitor.ID, item.VisitorID)
	assert.Equal(t, models.RetryActionDelete, item.Action)
}

func TestRevokeVisitorOwnerScope(t *testing.T) {
	svc, hw, db := newVisitorFixture(t)
	host, _ := seedHost(t, db, models.UnitTypeResidential)

	other := models.Profile{FullName: "Other Host", Email: "other@test.local", Password: "password123", Role: models.RoleGroupAdmin}
	require.NoError(t, db.Create(&other).Error)

	visitor, err := svc.InviteVisitor(host.ID, InviteRequest{Name: "Jane Doe", AccessDate: dateOffset(1)})
	require.NoError(t, err)
	waitForPushes(t, hw, 1)

	// Another host cannot see the pass
	_, err = svc.RevokeVisitor(other.ID, visitor.ID, false)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	// A super admin can
	synced, err := svc.RevokeVisitor(other.ID, visitor.ID, true)
	require.NoError(t, err)
	assert.True(t, synced)
}

func TestVerifyCredential(t *testing.T) {
	svc, hw, db := newVisitorFixture(t)
	host, unit := seedHost(t, db, models.UnitTypeResidential)

	visitor, err := svc.InviteVisitor(host.ID, InviteRequest{
		Name:         "Jane Doe",
		AccessDate:   dateOffset(0),
		NeedsParking: true,
	})
	require.NoError(t, err)
	waitForPushes(t, hw, 1)

	// Scan by credential number
	result, err := svc.VerifyCredential("guard-1", VerifyRequest{CredentialNumber: &visitor.CredentialNumber})
	require.NoError(t, err)
	assert.True(t, result.Granted)
	assert.Equal(t, "Jane Doe", result.VisitorName)
	assert.Equal(t, unit.Name, result.UnitName)
	assert.True(t, result.NeedsParking)

	// Typed PIN
	result, err = svc.VerifyCredential("guard-1", VerifyRequest{PinCode: visitor.PinCode})
	require.NoError(t, err)
	assert.True(t, result.Granted)

	// Unknown credential
	unknown := uint32(1)
	result, err = svc.VerifyCredential("guard-1", VerifyRequest{CredentialNumber: &unknown})
	require.NoError(t, err)
	assert.False(t, result.Granted)
	assert.NotEmpty(t, result.Reason)

	var scans int64
	db.Model(&models.AuditLog{}).Where("action = ?", models.AuditActionGateScan).Count(&scans)
	assert.Equal(t, int64(3), scans)
}

func TestVerifyCredentialRejectsWrongDay(t *testing.T) {
	svc, hw, db := newVisitorFixture(t)
	host, _ := seedHost(t, db, models.UnitTypeResidential)

	visitor, err := svc.InviteVisitor(host.ID, InviteRequest{Name: "Jane Doe", AccessDate: dateOffset(1)})
	require.NoError(t, err)
	waitForPushes(t, hw, 1)

	// Valid tomorrow, not today
	result, err := svc.VerifyCredential("guard-1", VerifyRequest{CredentialNumber: &visitor.CredentialNumber})
	require.NoError(t, err)
	assert.False(t, result.Granted)
}

func TestVerifyCredentialRejectsRevoked(t *testing.T) {
	svc, hw, db := newVisitorFixture(t)
	host, _ := seedHost(t, db, models.UnitTypeResidential)

	visitor, err := svc.InviteVisitor(host.ID, InviteRequest{Name: "Jane Doe", AccessDate: dateOffset(0)})
	require.NoError(t, err)
	waitForPushes(t, hw, 1)

	_, err = svc.RevokeVisitor(host.ID, visitor.ID, false)
	require.NoError(t, err)

	result, err := svc.VerifyCredential("guard-1", VerifyRequest{CredentialNumber: &visitor.CredentialNumber})
	require.NoError(t, err)
	assert.False(t, result.Granted)
}

func TestDirectoryAndParkingForToday(t *testing.T) {
	svc, hw, db := newVisitorFixture(t)
	host, _ := seedHost(t, db, models.UnitTypeResidential)

	_, err := svc.InviteVisitor(host.ID, InviteRequest{Name: "Walks In", AccessDate: dateOffset(0)})
	require.NoError(t, err)
	_, err = svc.InviteVisitor(host.ID, InviteRequest{Name: "Drives In", AccessDate: dateOffset(0), NeedsParking: true})
	require.NoError(t, err)
	_, err = svc.InviteVisitor(host.ID, InviteRequest{Name: "Tomorrow Guest", AccessDate: dateOffset(1)})
	require.NoError(t, err)
	waitForPushes(t, hw, 3)

	directory, err := svc.DirectoryForToday()
	require.NoError(t, err)
	assert.Len(t, directory, 2)

	parking, err := svc.ParkingForToday()
	require.NoError(t, err)
	require.Len(t, parking, 1)
	assert.Equal(t, "Drives In", parking[0].VisitorName)
}

func TestResyncVisitor(t *testing.T) {
	svc, hw, db := newVisitorFixture(t)
	host, _ := seedHost(t, db, models.UnitTypeResidential)

	visitor, err := svc.InviteVisitor(host.ID, InviteRequest{Name: "Jane Doe", AccessDate: dateOffset(1)})
	require.NoError(t, err)
	waitForPushes(t, hw, 1)

	require.NoError(t, svc.ResyncVisitor(host.ID, visitor.ID))
	waitForPushes(t, hw, 2)

	var entry models.AuditLog
	require.NoError(t, db.Where("action = ?", models.AuditActionResyncPass).First(&entry).Error)
	assert.Contains(t, entry.Details, visitor.ID)
}
