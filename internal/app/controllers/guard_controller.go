package controllers

import (
	"github.com/GSSolutions-CPT/GSS-OS/internal/domain/services"
	"github.com/GSSolutions-CPT/GSS-OS/internal/domain/services/container"
	"github.com/GSSolutions-CPT/GSS-OS/internal/error/code"
	"github.com/GSSolutions-CPT/GSS-OS/internal/error/response"

	"github.com/gin-gonic/gin"
)

// InterfaceGuardController defines the gate house controller interface
type InterfaceGuardController interface {
	Verify()
	Directory()
	Parking()
}

// GuardController handles gate house requests
type GuardController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewGuardController creates a new gate house controller
func NewGuardController(ctx *gin.Context, container *container.ServiceContainer) *GuardController {
	return &GuardController{
		Ctx:       ctx,
		Container: container,
	}
}

// HandleGuardFunc returns a Gin handler for gate house requests
func HandleGuardFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewGuardController(ctx, container)

		switch method {
		case "verify":
			controller.Verify()
		case "directory":
			controller.Directory()
		case "parking":
			controller.Parking()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "Invalid method", nil)
		}
	}
}

// Verify checks a scanned credential or typed PIN at the gate
// @Summary      Verify Credential
// @Description  Check a scanned credential number or typed PIN against today's active passes
// @Tags         Guard
// @Accept       json
// @Produce      json
// @Param        Authorization header string true "Bearer token"
// @Param        request body services.VerifyRequest true "Credential number or PIN"
// @Success      200  {object}  response.Response{data=services.VerifyResult}  "Verification outcome"
// @Failure      400  {object}  ErrorResponse  "Missing credential and PIN"
// @Router       /guard/verify [post]
func (c *GuardController) Verify() {
	var req services.VerifyRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "Invalid request parameters", nil)
		return
	}
	if req.CredentialNumber == nil && req.PinCode == "" {
		response.FailWithMessage(c.Ctx, code.ErrValidation, "credential_number or pin_code is required", nil)
		return
	}

	guardID := c.Ctx.GetString("userID")
	result, err := c.Container.VisitorService.VerifyCredential(guardID, req)
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "Verification failed: "+err.Error(), nil)
		return
	}

	if !result.Granted {
		response.Fail(c.Ctx, code.ErrCredentialDenied, result)
		return
	}
	response.Success(c.Ctx, result)
}

// Directory lists today's expected visitors
// @Summary      Today's Visitor Directory
// @Description  List every active pass for today so the guard house can greet arrivals by name
// @Tags         Guard
// @Produce      json
// @Param        Authorization header string true "Bearer token"
// @Success      200  {object}  response.Response  "Today's visitors"
// @Router       /guard/directory [get]
func (c *GuardController) Directory() {
	visitors, err := c.Container.VisitorService.DirectoryForToday()
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "Failed to load directory: "+err.Error(), nil)
		return
	}

	response.Success(c.Ctx, gin.H{
		"count":    len(visitors),
		"visitors": visitors,
	})
}

// Parking lists today's visitors that reserved a parking bay
// @Summary      Today's Parking List
// @Description  List today's active passes that requested parking
// @Tags         Guard
// @Produce      json
// @Param        Authorization header string true "Bearer token"
// @Success      200  {object}  response.Response  "Today's parking reservations"
// @Router       /guard/parking [get]
func (c *GuardController) Parking() {
	visitors, err := c.Container.VisitorService.ParkingForToday()
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "Failed to load parking list: "+err.Error(), nil)
		return
	}

	response.Success(c.Ctx, gin.H{
		"count":    len(visitors),
		"visitors": visitors,
	})
}
