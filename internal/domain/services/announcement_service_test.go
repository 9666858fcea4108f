package services

import (
	"fmt"
	"testing"
	"time"

	"github.com/GSSolutions-CPT/GSS-OS/internal/domain/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnnouncementListNewestFirst(t *testing.T) {
	db := newTestDB(t)
	svc := NewAnnouncementService(db, newTestConfig())

	host, _ := seedHost(t, db, models.UnitTypeResidential)

	base := time.Now().UTC().Add(-time.Hour)
	for i := 0; i < 3; i++ {
		announcement, err := svc.Create(host.ID, fmt.Sprintf("Notice %d", i))
		require.NoError(t, err)
		// Spread timestamps so the ordering is deterministic
		require.NoError(t, db.Model(&models.Announcement{}).
			Where("id = ?", announcement.ID).
			Update("created_at", base.Add(time.Duration(i)*time.Minute)).Error)
	}

	announcements, err := svc.List(2)
	require.NoError(t, err)
	require.Len(t, announcements, 2)
	assert.Equal(t, "Notice 2", announcements[0].Message)
	assert.Equal(t, "Notice 1", announcements[1].Message)

	// Author comes preloaded for display
	require.NotNil(t, announcements[0].Author)
	assert.Equal(t, host.FullName, announcements[0].Author.FullName)
}

func TestAnnouncementListClampsLimit(t *testing.T) {
	db := newTestDB(t)
	svc := NewAnnouncementService(db, newTestConfig())

	host, _ := seedHost(t, db, models.UnitTypeResidential)
	for i := 0; i < 25; i++ {
		_, err := svc.Create(host.ID, fmt.Sprintf("Notice %d", i))
		require.NoError(t, err)
	}

	announcements, err := svc.List(0)
	require.NoError(t, err)
	assert.Len(t, announcements, 20)

	announcements, err = svc.List(500)
	require.NoError(t, err)
	assert.Len(t, announcements, 20)
}

func TestAnnouncementDelete(t *testing.T) {
	db := newTestDB(t)
	svc := NewAnnouncementService(db, newTestConfig())

	host, _ := seedHost(t, db, models.UnitTypeResidential)
	announcement, err := svc.Create(host.ID, "Water off on Tuesday")
	require.NoError(t, err)

	require.NoError(t, svc.Delete(announcement.ID))

	announcements, err := svc.List(10)
	require.NoError(t, err)
	assert.Empty(t, announcements)
}
