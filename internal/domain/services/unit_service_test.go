package services

import (
	"testing"

	"github.com/GSSolutions-CPT/GSS-OS/internal/domain/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnitCRUD(t *testing.T) {
	db := newTestDB(t)
	svc := NewUnitService(db, newTestConfig())

	unit := models.Unit{Name: "Block C - 7"}
	require.NoError(t, svc.CreateUnit(&unit))
	assert.Equal(t, models.UnitTypeResidential, unit.Type)
	require.NotEmpty(t, unit.ID)

	updated, err := svc.UpdateUnit(unit.ID, map[string]interface{}{"type": models.UnitTypeCommercial})
	require.NoError(t, err)
	assert.Equal(t, models.UnitTypeCommercial, updated.Type)
	assert.Equal(t, "Block C - 7", updated.Name)

	require.NoError(t, svc.DeleteUnit(unit.ID))
	_, err = svc.GetUnitByID(unit.ID)
	assert.Error(t, err)
}

func TestGetAllUnitsSortedByName(t *testing.T) {
	db := newTestDB(t)
	svc := NewUnitService(db, newTestConfig())

	for _, name := range []string{"Block B - 2", "Block A - 1", "Block C - 3"} {
		require.NoError(t, svc.CreateUnit(&models.Unit{Name: name, Type: models.UnitTypeResidential}))
	}

	units, err := svc.GetAllUnits()
	require.NoError(t, err)
	require.Len(t, units, 3)
	assert.Equal(t, "Block A - 1", units[0].Name)
	assert.Equal(t, "Block C - 3", units[2].Name)
}
