package controllers

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/GSSolutions-CPT/GSS-OS/internal/app/middleware"
	"github.com/GSSolutions-CPT/GSS-OS/internal/domain/models"
	"github.com/GSSolutions-CPT/GSS-OS/internal/domain/services"
	"github.com/GSSolutions-CPT/GSS-OS/internal/domain/services/container"
	"github.com/GSSolutions-CPT/GSS-OS/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newCronTestRouter(t *testing.T, cronSecret string) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	name := strings.ReplaceAll(t.Name(), "/", "_")
	db, err := gorm.Open(sqlite.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", name)), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.Unit{},
		&models.Profile{},
		&models.Visitor{},
		&models.RetryItem{},
		&models.AuditLog{},
	))

	cfg := &config.Config{
		CronSecret:           cronSecret,
		BridgeTagType:        15,
		BridgeTimeoutSeconds: 1,
	}

	hardware := services.NewHardwareService(cfg)
	audit := services.NewAuditService(db, cfg)
	retry := services.NewRetryService(db, cfg, hardware)
	sweep := services.NewSweepService(db, cfg, retry, audit, nil, nil)

	c := &container.ServiceContainer{
		DB:              db,
		Config:          cfg,
		HardwareService: hardware,
		AuditService:    audit,
		RetryService:    retry,
		SweepService:    sweep,
	}

	r := gin.New()
	cronGroup := r.Group("/api/cron")
	cronGroup.Use(middleware.CronAuth(cfg))
	cronGroup.GET("/expire-visitors", HandleCronFunc(c, "expireVisitors"))
	cronGroup.GET("/process-retries", HandleCronFunc(c, "processRetries"))

	return r, db
}

func TestCronEndpointsRejectBadSecret(t *testing.T) {
	r, _ := newCronTestRouter(t, "super-secret")

	for _, path := range []string{"/api/cron/expire-visitors", "/api/cron/process-retries"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		req.Header.Set("Authorization", "Bearer wrong-secret")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code, path)

		// No header at all
		req = httptest.NewRequest(http.MethodGet, path, nil)
		w = httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code, path)
	}
}

func TestCronExpireVisitorsRunsSweep(t *testing.T) {
	r, db := newCronTestRouter(t, "super-secret")

	yesterday := time.Now().UTC().AddDate(0, 0, -1).Format(models.AccessDateLayout)
	visitor := models.Visitor{
		ID: "v-1", OwnerID: "o-1", UnitID: "u-1",
		VisitorName: "Past Due", AccessDate: yesterday,
		CredentialNumber: 100, PinCode: "10000", Status: models.VisitorStatusActive,
	}
	require.NoError(t, db.Create(&visitor).Error)

	req := httptest.NewRequest(http.MethodGet, "/api/cron/expire-visitors", nil)
	req.Header.Set("Authorization", "Bearer super-secret")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"expired_count":1`)

	var reloaded models.Visitor
	require.NoError(t, db.Where("id = ?", "v-1").First(&reloaded).Error)
	assert.Equal(t, models.VisitorStatusExpired, reloaded.Status)
}

func TestCronProcessRetriesEmptyQueue(t *testing.T) {
	r, _ := newCronTestRouter(t, "super-secret")

	req := httptest.NewRequest(http.MethodGet, "/api/cron/process-retries", nil)
	req.Header.Set("Authorization", "Bearer super-secret")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"empty":true`)
}

func TestCronUnsetSecretLeavesEndpointOpen(t *testing.T) {
	r, _ := newCronTestRouter(t, "")

	req := httptest.NewRequest(http.MethodGet, "/api/cron/process-retries", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
