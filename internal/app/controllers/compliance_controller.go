package controllers

import (
	"errors"
	"strconv"

	"github.com/GSSolutions-CPT/GSS-OS/internal/domain/services"
	"github.com/GSSolutions-CPT/GSS-OS/internal/domain/services/container"
	"github.com/GSSolutions-CPT/GSS-OS/internal/error/code"
	"github.com/GSSolutions-CPT/GSS-OS/internal/error/response"

	"github.com/gin-gonic/gin"
)

// InterfaceComplianceController defines the compliance controller interface
type InterfaceComplianceController interface {
	SubmitReading()
	GetReadings()
}

// ComplianceController handles fence compliance requests
type ComplianceController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewComplianceController creates a new compliance controller
func NewComplianceController(ctx *gin.Context, container *container.ServiceContainer) *ComplianceController {
	return &ComplianceController{
		Ctx:       ctx,
		Container: container,
	}
}

// HandleComplianceFunc returns a Gin handler for compliance requests
func HandleComplianceFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewComplianceController(ctx, container)

		switch method {
		case "submitReading":
			controller.SubmitReading()
		case "getReadings":
			controller.GetReadings()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "Invalid method", nil)
		}
	}
}

// SubmitReading records a technician's site voltage reading
// @Summary      Submit Compliance Reading
// @Description  Record a fence voltage reading; the compliance band is computed from the configured threshold
// @Tags         Compliance
// @Accept       json
// @Produce      json
// @Param        Authorization header string true "Bearer token"
// @Param        request body services.ComplianceReading true "Reading parameters"
// @Success      200  {object}  response.Response  "The banded reading"
// @Failure      400  {object}  ErrorResponse  "Missing site or technician"
// @Router       /compliance/readings [post]
func (c *ComplianceController) SubmitReading() {
	var req services.ComplianceReading
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "Invalid request parameters", nil)
		return
	}

	entry, err := c.Container.ComplianceService.RecordReading(req)
	if err != nil {
		if errors.Is(err, services.ErrSiteAndTechnicianRequired) {
			response.FailWithMessage(c.Ctx, code.ErrValidation, err.Error(), nil)
			return
		}
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "Failed to record reading: "+err.Error(), nil)
		return
	}

	response.Success(c.Ctx, entry)
}

// GetReadings lists compliance readings newest-first
// @Summary      List Compliance Readings
// @Description  Page through recorded fence readings
// @Tags         Compliance
// @Produce      json
// @Param        Authorization header string true "Bearer token"
// @Param        page query int false "Page number" default(1)
// @Param        page_size query int false "Page size" default(20)
// @Success      200  {object}  response.Response  "Paginated readings"
// @Router       /compliance/readings [get]
func (c *ComplianceController) GetReadings() {
	page, _ := strconv.Atoi(c.Ctx.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.Ctx.DefaultQuery("page_size", "20"))
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	logs, total, err := c.Container.ComplianceService.List(page, pageSize)
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "Failed to list readings: "+err.Error(), nil)
		return
	}

	response.Success(c.Ctx, gin.H{
		"total":     total,
		"page":      page,
		"page_size": pageSize,
		"readings":  logs,
	})
}
