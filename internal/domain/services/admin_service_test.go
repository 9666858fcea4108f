package services

import (
	"testing"

	"github.com/GSSolutions-CPT/GSS-OS/internal/domain/models"
	"github.com/GSSolutions-CPT/GSS-OS/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsureDefaultAdmin(t *testing.T) {
	db := newTestDB(t)
	cfg := newTestConfig()
	svc := NewAdminService(db, cfg)

	require.NoError(t, svc.EnsureDefaultAdmin())

	var admin models.Profile
	require.NoError(t, db.Where("role = ?", models.RoleSuperAdmin).First(&admin).Error)
	assert.Equal(t, cfg.DefaultAdminEmail, admin.Email)

	// Stored hashed, verifiable with the configured password
	assert.NotEqual(t, cfg.DefaultAdminPassword, admin.Password)
	assert.True(t, utils.CheckPasswordHash(cfg.DefaultAdminPassword, admin.Password))

	// Second boot does not create a second admin
	require.NoError(t, svc.EnsureDefaultAdmin())
	var count int64
	db.Model(&models.Profile{}).Where("role = ?", models.RoleSuperAdmin).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestGetProfilesSearch(t *testing.T) {
	db := newTestDB(t)
	cfg := newTestConfig()
	svc := NewAdminService(db, cfg)

	for _, p := range []models.Profile{
		{FullName: "Alice Smith", Email: "alice@test.local", Password: "password123", Role: models.RoleGroupAdmin},
		{FullName: "Bob Jones", Email: "bob@test.local", Password: "password123", Role: models.RoleGuard},
	} {
		profile := p
		require.NoError(t, svc.CreateProfile(&profile))
	}

	profiles, total, err := svc.GetProfiles(1, 10, "alice")
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, profiles, 1)
	assert.Equal(t, "Alice Smith", profiles[0].FullName)

	profiles, total, err = svc.GetProfiles(1, 10, "")
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, profiles, 2)
}

func TestCreateProfileDefaultsRole(t *testing.T) {
	db := newTestDB(t)
	svc := NewAdminService(db, newTestConfig())

	profile := models.Profile{FullName: "No Role", Email: "norole@test.local", Password: "password123"}
	require.NoError(t, svc.CreateProfile(&profile))
	assert.Equal(t, models.RoleGroupAdmin, profile.Role)
}
