package services

import (
	"errors"
	"testing"
	"time"

	"github.com/GSSolutions-CPT/GSS-OS/internal/domain/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dateOffset(days int) string {
	return time.Now().UTC().AddDate(0, 0, days).Format(models.AccessDateLayout)
}

func TestSweepExpiresOnlyPastDates(t *testing.T) {
	db := newTestDB(t)
	cfg := newTestConfig()
	hw := newStubHardware(cfg)
	retry := NewRetryService(db, cfg, hw)
	audit := NewAuditService(db, cfg)
	svc := NewSweepService(db, cfg, retry, audit, nil, nil)

	pastDue := models.Visitor{
		ID: "v-past", OwnerID: "o-1", UnitID: "u-1",
		VisitorName: "Past Due", AccessDate: dateOffset(-1),
		CredentialNumber: 100, PinCode: "10000", Status: models.VisitorStatusActive,
	}
	today := models.Visitor{
		ID: "v-today", OwnerID: "o-1", UnitID: "u-1",
		VisitorName: "Still Valid", AccessDate: dateOffset(0),
		CredentialNumber: 101, PinCode: "10001", Status: models.VisitorStatusActive,
	}
	alreadyExpired := models.Visitor{
		ID: "v-done", OwnerID: "o-1", UnitID: "u-1",
		VisitorName: "Already Expired", AccessDate: dateOffset(-3),
		CredentialNumber: 102, PinCode: "10002", Status: models.VisitorStatusExpired,
	}
	require.NoError(t, db.Create(&pastDue).Error)
	require.NoError(t, db.Create(&today).Error)
	require.NoError(t, db.Create(&alreadyExpired).Error)

	result, err := svc.Run()
	require.NoError(t, err)

	assert.Equal(t, 1, result.ExpiredCount)
	assert.Equal(t, 1, result.SuccessCount)
	assert.Zero(t, result.QueueCount)

	var reloaded models.Visitor
	require.NoError(t, db.Where("id = ?", "v-past").First(&reloaded).Error)
	assert.Equal(t, models.VisitorStatusExpired, reloaded.Status)

	require.NoError(t, db.Where("id = ?", "v-today").First(&reloaded).Error)
	assert.Equal(t, models.VisitorStatusActive, reloaded.Status)

	// The hardware saw exactly one removal
	require.Len(t, hw.pushes, 1)
	assert.Contains(t, hw.pushes[0].Payload, `"remove_credential"`)

	// The sweep was recorded against the system actor
	var entry models.AuditLog
	require.NoError(t, db.Where("action = ?", models.AuditActionExpirationSweep).First(&entry).Error)
	require.NotNil(t, entry.ActorID)
	assert.Equal(t, models.SystemActorID, *entry.ActorID)
	assert.Contains(t, entry.Details, `"expired_count":1`)
}

func TestSweepQueuesRemovalWhenBridgeFails(t *testing.T) {
	db := newTestDB(t)
	cfg := newTestConfig()
	hw := newStubHardware(cfg)
	hw.pushErr = errors.New("bridge down")
	retry := NewRetryService(db, cfg, hw)
	audit := NewAuditService(db, cfg)
	svc := NewSweepService(db, cfg, retry, audit, nil, nil)

	visitor := models.Visitor{
		ID: "v-1", OwnerID: "o-1", UnitID: "u-1",
		VisitorName: "Past Due", AccessDate: dateOffset(-1),
		CredentialNumber: 100, PinCode: "10000", Status: models.VisitorStatusActive,
	}
	require.NoError(t, db.Create(&visitor).Error)

	result, err := svc.Run()
	require.NoError(t, err)

	assert.Equal(t, 1, result.ExpiredCount)
	assert.Zero(t, result.SuccessCount)
	assert.Equal(t, 1, result.QueueCount)

	// The visitor is expired even though the hardware was unreachable
	var reloaded models.Visitor
	require.NoError(t, db.Where("id = ?", "v-1").First(&reloaded).Error)
	assert.Equal(t, models.VisitorStatusExpired, reloaded.Status)

	var item models.RetryItem
	require.NoError(t, db.First(&item).Error)
	assert.Equal(t, "v-1", item.VisitorID)
	assert.Equal(t, models.RetryActionDelete, item.Action)
	assert.Equal(t, models.RetryStatusPending, item.Status)
	assert.Zero(t, item.RetryCount)
}

func TestSweepIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	cfg := newTestConfig()
	hw := newStubHardware(cfg)
	retry := NewRetryService(db, cfg, hw)
	audit := NewAuditService(db, cfg)
	svc := NewSweepService(db, cfg, retry, audit, nil, nil)

	visitor := models.Visitor{
		ID: "v-1", OwnerID: "o-1", UnitID: "u-1",
		VisitorName: "Past Due", AccessDate: dateOffset(-1),
		CredentialNumber: 100, PinCode: "10000", Status: models.VisitorStatusActive,
	}
	require.NoError(t, db.Create(&visitor).Error)

	first, err := svc.Run()
	require.NoError(t, err)
	assert.Equal(t, 1, first.ExpiredCount)

	// Expired visitors are not re-selected
	second, err := svc.Run()
	require.NoError(t, err)
	assert.Zero(t, second.ExpiredCount)
	assert.Len(t, hw.pushes, 1)
}
