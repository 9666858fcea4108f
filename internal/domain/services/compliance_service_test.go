package services

import (
	"testing"

	"github.com/GSSolutions-CPT/GSS-OS/internal/domain/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComplianceBanding(t *testing.T) {
	db := newTestDB(t)
	cfg := newTestConfig()
	audit := NewAuditService(db, cfg)
	svc := NewComplianceService(db, cfg, audit)

	cases := []struct {
		voltage float64
		want    models.ComplianceStatus
	}{
		{7800, models.ComplianceStatusCompliant},
		{6000.1, models.ComplianceStatusCompliant},
		{6000, models.ComplianceStatusNonCompliant}, // the threshold itself is not compliant
		{4200, models.ComplianceStatusNonCompliant},
		{0, models.ComplianceStatusNonCompliant},
	}

	for _, tc := range cases {
		entry, err := svc.RecordReading(ComplianceReading{
			SiteID:       "site-1",
			TechnicianID: "tech-1",
			Voltage:      tc.voltage,
		})
		require.NoError(t, err)
		assert.Equal(t, tc.want, entry.Status, "voltage %v", tc.voltage)
	}

	var readings int64
	db.Model(&models.ComplianceLog{}).Count(&readings)
	assert.Equal(t, int64(len(cases)), readings)

	var audits int64
	db.Model(&models.AuditLog{}).Where("action = ?", models.AuditActionComplianceReading).Count(&audits)
	assert.Equal(t, int64(len(cases)), audits)
}

func TestComplianceRequiresIdentity(t *testing.T) {
	db := newTestDB(t)
	cfg := newTestConfig()
	svc := NewComplianceService(db, cfg, NewAuditService(db, cfg))

	_, err := svc.RecordReading(ComplianceReading{Voltage: 7000})
	assert.ErrorIs(t, err, ErrSiteAndTechnicianRequired)
}

func TestComplianceList(t *testing.T) {
	db := newTestDB(t)
	cfg := newTestConfig()
	svc := NewComplianceService(db, cfg, NewAuditService(db, cfg))

	for i := 0; i < 3; i++ {
		_, err := svc.RecordReading(ComplianceReading{SiteID: "site-1", TechnicianID: "tech-1", Voltage: 7000})
		require.NoError(t, err)
	}

	logs, total, err := svc.List(1, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Len(t, logs, 2)
}
