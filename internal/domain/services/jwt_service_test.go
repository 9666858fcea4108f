package services

import (
	"testing"
	"time"

	"github.com/GSSolutions-CPT/GSS-OS/internal/domain/models"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTLoginAndClaims(t *testing.T) {
	db := newTestDB(t)
	cfg := newTestConfig()
	svc := NewJWTService(cfg, db)

	host, unit := seedHost(t, db, models.UnitTypeResidential)

	token, profile, err := svc.Login(host.Email, "password123")
	require.NoError(t, err)
	assert.Equal(t, host.ID, profile.ID)

	claims, err := svc.ExtractClaims(token)
	require.NoError(t, err)
	assert.Equal(t, host.ID, claims.UserID)
	assert.Equal(t, string(models.RoleGroupAdmin), claims.Role)
	require.NotNil(t, claims.UnitID)
	assert.Equal(t, unit.ID, *claims.UnitID)
}

func TestJWTLoginRejectsBadCredentials(t *testing.T) {
	db := newTestDB(t)
	cfg := newTestConfig()
	svc := NewJWTService(cfg, db)

	host, _ := seedHost(t, db, models.UnitTypeResidential)

	_, _, err := svc.Login(host.Email, "wrong-password")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, err = svc.Login("nobody@test.local", "password123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestJWTRejectsTamperedToken(t *testing.T) {
	db := newTestDB(t)
	cfg := newTestConfig()
	svc := NewJWTService(cfg, db)

	host, _ := seedHost(t, db, models.UnitTypeResidential)
	token, _, err := svc.Login(host.Email, "password123")
	require.NoError(t, err)

	_, err = svc.ValidateToken(token + "x")
	assert.Error(t, err)
}

func TestGeneratePassToken(t *testing.T) {
	db := newTestDB(t)
	cfg := newTestConfig()
	svc := NewJWTService(cfg, db)

	accessDate := time.Now().UTC().AddDate(0, 0, 2).Format(models.AccessDateLayout)
	visitor := &models.Visitor{
		ID:          "v-1",
		VisitorName: "Jane Doe",
		AccessDate:  accessDate,
	}

	tokenString, err := svc.GeneratePassToken(visitor)
	require.NoError(t, err)

	token, err := svc.ValidateToken(tokenString)
	require.NoError(t, err)
	require.True(t, token.Valid)

	claims, ok := token.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, PassTokenType, claims["type"])
	assert.Equal(t, "v-1", claims["sub"])
	assert.Equal(t, "Jane Doe", claims["visitor_name"])

	// The token dies at the end of the access date, not 24h from issuance
	exp, ok := claims["exp"].(float64)
	require.True(t, ok)
	parsed, err := time.ParseInLocation(models.AccessDateLayout, accessDate, time.UTC)
	require.NoError(t, err)
	assert.Equal(t, parsed.Add(24*time.Hour).Unix(), int64(exp))
}

func TestGeneratePassTokenRejectsBadDate(t *testing.T) {
	svc := NewJWTService(newTestConfig(), newTestDB(t))

	_, err := svc.GeneratePassToken(&models.Visitor{ID: "v-1", AccessDate: "not-a-date"})
	assert.Error(t, err)
}
