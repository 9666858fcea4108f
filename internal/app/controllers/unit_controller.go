package controllers

import (
	"errors"

	"github.com/GSSolutions-CPT/GSS-OS/internal/domain/models"
	"github.com/GSSolutions-CPT/GSS-OS/internal/domain/services/container"
	"github.com/GSSolutions-CPT/GSS-OS/internal/error/code"
	"github.com/GSSolutions-CPT/GSS-OS/internal/error/response"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// InterfaceUnitController defines the unit controller interface
type InterfaceUnitController interface {
	GetUnits()
	GetUnit()
	CreateUnit()
	UpdateUnit()
	DeleteUnit()
}

// UnitController handles organizational unit requests
type UnitController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewUnitController creates a new unit controller
func NewUnitController(ctx *gin.Context, container *container.ServiceContainer) *UnitController {
	return &UnitController{
		Ctx:       ctx,
		Container: container,
	}
}

// UnitRequest represents a unit create/update request
type UnitRequest struct {
	Name string `json:"name" binding:"required" example:"Block A - 101"`
	Type string `json:"type" example:"residential"`
}

// HandleUnitFunc returns a Gin handler for unit requests
func HandleUnitFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewUnitController(ctx, container)

		switch method {
		case "getUnits":
			controller.GetUnits()
		case "getUnit":
			controller.GetUnit()
		case "createUnit":
			controller.CreateUnit()
		case "updateUnit":
			controller.UpdateUnit()
		case "deleteUnit":
			controller.DeleteUnit()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "Invalid method", nil)
		}
	}
}

func parseUnitType(raw string) (models.UnitType, bool) {
	switch models.UnitType(raw) {
	case models.UnitTypeResidential, models.UnitTypeCommercial:
		return models.UnitType(raw), true
	case "":
		return models.UnitTypeResidential, true
	}
	return "", false
}

// GetUnits lists every unit
// @Summary      List Units
// @Description  List all organizational units ordered by name
// @Tags         Unit
// @Produce      json
// @Param        Authorization header string true "Bearer token"
// @Success      200  {object}  response.Response  "All units"
// @Router       /units [get]
func (c *UnitController) GetUnits() {
	units, err := c.Container.UnitService.GetAllUnits()
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "Failed to list units: "+err.Error(), nil)
		return
	}

	response.Success(c.Ctx, units)
}

// GetUnit returns one unit
// @Summary      Get Unit
// @Description  Load a single unit by id
// @Tags         Unit
// @Produce      json
// @Param        Authorization header string true "Bearer token"
// @Param        id path string true "Unit ID"
// @Success      200  {object}  response.Response  "The unit"
// @Failure      404  {object}  ErrorResponse  "Unit not found"
// @Router       /units/{id} [get]
func (c *UnitController) GetUnit() {
	unit, err := c.Container.UnitService.GetUnitByID(c.Ctx.Param("id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Fail(c.Ctx, code.ErrUnitNotFound, nil)
			return
		}
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "Failed to load unit: "+err.Error(), nil)
		return
	}

	response.Success(c.Ctx, unit)
}

// CreateUnit creates a unit
// @Summary      Create Unit
// @Description  Create a residential or commercial unit
// @Tags         Unit
// @Accept       json
// @Produce      json
// @Param        Authorization header string true "Bearer token"
// @Param        request body UnitRequest true "Unit parameters"
// @Success      200  {object}  response.Response  "The created unit"
// @Failure      400  {object}  ErrorResponse  "Validation failure"
// @Router       /units [post]
func (c *UnitController) CreateUnit() {
	var req UnitRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "Invalid request parameters", nil)
		return
	}

	unitType, ok := parseUnitType(req.Type)
	if !ok {
		response.FailWithMessage(c.Ctx, code.ErrValidation, "Invalid unit type: "+req.Type, nil)
		return
	}

	unit := models.Unit{Name: req.Name, Type: unitType}
	if err := c.Container.UnitService.CreateUnit(&unit); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "Failed to create unit: "+err.Error(), nil)
		return
	}

	response.Success(c.Ctx, unit)
}

// UpdateUnit updates a unit
// @Summary      Update Unit
// @Description  Rename or reclassify a unit
// @Tags         Unit
// @Accept       json
// @Produce      json
// @Param        Authorization header string true "Bearer token"
// @Param        id path string true "Unit ID"
// @Param        request body UnitRequest true "Unit parameters"
// @Success      200  {object}  response.Response  "The updated unit"
// @Failure      404  {object}  ErrorResponse  "Unit not found"
// @Router       /units/{id} [put]
func (c *UnitController) UpdateUnit() {
	var req UnitRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "Invalid request parameters", nil)
		return
	}

	unitType, ok := parseUnitType(req.Type)
	if !ok {
		response.FailWithMessage(c.Ctx, code.ErrValidation, "Invalid unit type: "+req.Type, nil)
		return
	}

	updates := map[string]interface{}{
		"name": req.Name,
		"type": unitType,
	}
	unit, err := c.Container.UnitService.UpdateUnit(c.Ctx.Param("id"), updates)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Fail(c.Ctx, code.ErrUnitNotFound, nil)
			return
		}
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "Failed to update unit: "+err.Error(), nil)
		return
	}

	response.Success(c.Ctx, unit)
}

// DeleteUnit deletes a unit
// @Summary      Delete Unit
// @Description  Delete a unit by id
// @Tags         Unit
// @Produce      json
// @Param        Authorization header string true "Bearer token"
// @Param        id path string true "Unit ID"
// @Success      200  {object}  response.Response  "Deleted"
// @Router       /units/{id} [delete]
func (c *UnitController) DeleteUnit() {
	if err := c.Container.UnitService.DeleteUnit(c.Ctx.Param("id")); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "Failed to delete unit: "+err.Error(), nil)
		return
	}

	response.Success(c.Ctx, gin.H{"deleted": true})
}
