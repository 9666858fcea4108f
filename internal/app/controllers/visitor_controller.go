package controllers

import (
	"errors"
	"strconv"

	"github.com/GSSolutions-CPT/GSS-OS/internal/domain/models"
	"github.com/GSSolutions-CPT/GSS-OS/internal/domain/services"
	"github.com/GSSolutions-CPT/GSS-OS/internal/domain/services/container"
	"github.com/GSSolutions-CPT/GSS-OS/internal/error/code"
	"github.com/GSSolutions-CPT/GSS-OS/internal/error/response"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"gorm.io/gorm"
)

// InterfaceVisitorController defines the visitor pass controller interface
type InterfaceVisitorController interface {
	CreateVisitor()
	CreateVisitorsBulk()
	GetVisitors()
	GetVisitor()
	RevokeVisitor()
	ResyncVisitor()
	GetPass()
}

// VisitorController handles visitor pass requests
type VisitorController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewVisitorController creates a new visitor pass controller
func NewVisitorController(ctx *gin.Context, container *container.ServiceContainer) *VisitorController {
	return &VisitorController{
		Ctx:       ctx,
		Container: container,
	}
}

// BulkInviteRequest represents a bulk invitation request
type BulkInviteRequest struct {
	Visitors []services.InviteRequest `json:"visitors" binding:"required"`
}

// HandleVisitorFunc returns a Gin handler for visitor pass requests
func HandleVisitorFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewVisitorController(ctx, container)

		switch method {
		case "createVisitor":
			controller.CreateVisitor()
		case "createVisitorsBulk":
			controller.CreateVisitorsBulk()
		case "getVisitors":
			controller.GetVisitors()
		case "getVisitor":
			controller.GetVisitor()
		case "revokeVisitor":
			controller.RevokeVisitor()
		case "resyncVisitor":
			controller.ResyncVisitor()
		case "getPass":
			controller.GetPass()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "Invalid method", nil)
		}
	}
}

// failInvite maps invitation service errors onto response codes
func (c *VisitorController) failInvite(err error) {
	switch {
	case errors.Is(err, services.ErrNameAndDateRequired),
		errors.Is(err, services.ErrInvalidAccessDate):
		response.FailWithMessage(c.Ctx, code.ErrValidation, err.Error(), nil)
	case errors.Is(err, services.ErrNoUnit):
		response.Fail(c.Ctx, code.ErrUserNoUnit, nil)
	case errors.Is(err, services.ErrBulkEmpty):
		response.Fail(c.Ctx, code.ErrBulkEmpty, nil)
	case errors.Is(err, services.ErrBulkLimitExceeded):
		response.FailWithMessage(c.Ctx, code.ErrBulkLimitExceeded, err.Error(), nil)
	case errors.Is(err, gorm.ErrRecordNotFound):
		response.Fail(c.Ctx, code.ErrUserNotFound, nil)
	default:
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "Invitation failed: "+err.Error(), nil)
	}
}

// CreateVisitor issues a single guest pass
// @Summary      Invite Guest
// @Description  Issue a single-day visitor pass with a fresh credential number and PIN
// @Tags         Visitor
// @Accept       json
// @Produce      json
// @Param        Authorization header string true "Bearer token"
// @Param        request body services.InviteRequest true "Invitation parameters"
// @Success      200  {object}  response.Response  "Created pass"
// @Failure      400  {object}  ErrorResponse  "Validation failure"
// @Router       /visitors [post]
func (c *VisitorController) CreateVisitor() {
	var req services.InviteRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "Invalid request parameters", nil)
		return
	}

	ownerID := c.Ctx.GetString("userID")
	visitor, err := c.Container.VisitorService.InviteVisitor(ownerID, req)
	if err != nil {
		c.failInvite(err)
		return
	}

	// The pass token goes into the invitation link and QR code
	passToken, err := c.Container.JWTService.GeneratePassToken(visitor)
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrUnknown, "Failed to sign pass token: "+err.Error(), nil)
		return
	}

	response.Success(c.Ctx, gin.H{
		"visitor":    visitor,
		"pass_token": passToken,
	})
}

// CreateVisitorsBulk issues up to 50 guest passes in one batch
// @Summary      Invite Guests In Bulk
// @Description  Issue up to 50 visitor passes at once; the whole batch is rejected when empty or oversized
// @Tags         Visitor
// @Accept       json
// @Produce      json
// @Param        Authorization header string true "Bearer token"
// @Param        request body BulkInviteRequest true "Batch of invitations"
// @Success      200  {object}  response.Response  "Created passes"
// @Failure      400  {object}  ErrorResponse  "Validation failure"
// @Router       /visitors/bulk [post]
func (c *VisitorController) CreateVisitorsBulk() {
	var req BulkInviteRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "Invalid request parameters", nil)
		return
	}

	ownerID := c.Ctx.GetString("userID")
	visitors, err := c.Container.VisitorService.InviteVisitorsBulk(ownerID, req.Visitors)
	if err != nil {
		c.failInvite(err)
		return
	}

	response.Success(c.Ctx, gin.H{
		"count":    len(visitors),
		"visitors": visitors,
	})
}

// GetVisitors lists passes for the caller, or all passes for elevated roles
// @Summary      List Visitor Passes
// @Description  List passes owned by the caller; super admins see every pass with all=true
// @Tags         Visitor
// @Produce      json
// @Param        Authorization header string true "Bearer token"
// @Param        page query int false "Page number" default(1)
// @Param        page_size query int false "Page size" default(20)
// @Param        all query bool false "List every pass (super admin only)"
// @Success      200  {object}  response.Response  "Paginated passes"
// @Router       /visitors [get]
func (c *VisitorController) GetVisitors() {
	page, _ := strconv.Atoi(c.Ctx.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.Ctx.DefaultQuery("page_size", "20"))
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	ownerID := c.Ctx.GetString("userID")
	role := c.Ctx.GetString("role")
	all := c.Ctx.Query("all") == "true" && role == string(models.RoleSuperAdmin)

	visitors, total, err := c.Container.VisitorService.ListVisitors(ownerID, all, page, pageSize)
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "Failed to list passes: "+err.Error(), nil)
		return
	}

	response.Success(c.Ctx, gin.H{
		"total":     total,
		"page":      page,
		"page_size": pageSize,
		"visitors":  visitors,
	})
}

// GetVisitor returns one pass
// @Summary      Get Visitor Pass
// @Description  Load a single pass with its unit
// @Tags         Visitor
// @Produce      json
// @Param        Authorization header string true "Bearer token"
// @Param        id path string true "Pass ID"
// @Success      200  {object}  response.Response  "The pass"
// @Failure      404  {object}  ErrorResponse  "Pass not found"
// @Router       /visitors/{id} [get]
func (c *VisitorController) GetVisitor() {
	visitor, err := c.Container.VisitorService.GetVisitor(c.Ctx.Param("id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Fail(c.Ctx, code.ErrVisitorNotFound, nil)
			return
		}
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "Failed to load pass: "+err.Error(), nil)
		return
	}

	// Owners only see their own passes
	role := c.Ctx.GetString("role")
	if role != string(models.RoleSuperAdmin) && visitor.OwnerID != c.Ctx.GetString("userID") {
		response.Fail(c.Ctx, code.ErrPermissionDenied, nil)
		return
	}

	response.Success(c.Ctx, visitor)
}

// RevokeVisitor revokes an active pass and removes its credential from the hardware
// @Summary      Revoke Visitor Pass
// @Description  Mark a pass revoked and push the credential removal to the access hardware, queueing a retry on failure
// @Tags         Visitor
// @Produce      json
// @Param        Authorization header string true "Bearer token"
// @Param        id path string true "Pass ID"
// @Success      200  {object}  response.Response  "Revocation outcome"
// @Failure      400  {object}  ErrorResponse  "Pass is not active"
// @Failure      404  {object}  ErrorResponse  "Pass not found"
// @Router       /visitors/{id} [delete]
func (c *VisitorController) RevokeVisitor() {
	actorID := c.Ctx.GetString("userID")
	elevated := c.Ctx.GetString("role") == string(models.RoleSuperAdmin)

	synced, err := c.Container.VisitorService.RevokeVisitor(actorID, c.Ctx.Param("id"), elevated)
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			response.Fail(c.Ctx, code.ErrVisitorNotFound, nil)
		case errors.Is(err, services.ErrVisitorNotActive):
			response.Fail(c.Ctx, code.ErrVisitorNotActive, nil)
		default:
			response.FailWithMessage(c.Ctx, code.ErrDatabase, "Revocation failed: "+err.Error(), nil)
		}
		return
	}

	response.Success(c.Ctx, gin.H{
		"revoked":         true,
		"hardware_synced": synced,
	})
}

// ResyncVisitor re-pushes an active pass credential to the hardware
// @Summary      Resync Visitor Pass
// @Description  Re-dispatch the credential add for an active pass after a hardware wipe or panel swap
// @Tags         Visitor
// @Produce      json
// @Param        Authorization header string true "Bearer token"
// @Param        id path string true "Pass ID"
// @Success      200  {object}  response.Response  "Resync dispatched"
// @Failure      400  {object}  ErrorResponse  "Pass is not active"
// @Failure      404  {object}  ErrorResponse  "Pass not found"
// @Router       /visitors/{id}/resync [post]
func (c *VisitorController) ResyncVisitor() {
	actorID := c.Ctx.GetString("userID")

	err := c.Container.VisitorService.ResyncVisitor(actorID, c.Ctx.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			response.Fail(c.Ctx, code.ErrVisitorNotFound, nil)
		case errors.Is(err, services.ErrVisitorNotActive):
			response.Fail(c.Ctx, code.ErrVisitorNotActive, nil)
		default:
			response.FailWithMessage(c.Ctx, code.ErrDatabase, "Resync failed: "+err.Error(), nil)
		}
		return
	}

	response.Success(c.Ctx, gin.H{"dispatched": true})
}

// GetPass renders a guest pass from its signed QR token; no login required
// @Summary      Get Guest Pass
// @Description  Load the public pass view using the signed token embedded in the invitation link
// @Tags         Visitor
// @Produce      json
// @Param        id path string true "Pass ID"
// @Param        token query string true "Signed pass token"
// @Success      200  {object}  response.Response  "The pass"
// @Failure      401  {object}  ErrorResponse  "Invalid or expired token"
// @Failure      404  {object}  ErrorResponse  "Pass not found"
// @Router       /pass/{id} [get]
func (c *VisitorController) GetPass() {
	passID := c.Ctx.Param("id")
	tokenString := c.Ctx.Query("token")
	if tokenString == "" {
		response.FailWithMessage(c.Ctx, code.ErrTokenInvalid, "Pass token is required", nil)
		return
	}

	token, err := c.Container.JWTService.ValidateToken(tokenString)
	if err != nil || !token.Valid {
		response.FailWithMessage(c.Ctx, code.ErrTokenInvalid, "Invalid or expired pass token", nil)
		return
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		response.FailWithMessage(c.Ctx, code.ErrTokenInvalid, "Invalid token claims", nil)
		return
	}

	// The token must be a pass token for exactly this pass
	tokenType, _ := claims["type"].(string)
	subject, _ := claims["sub"].(string)
	if tokenType != services.PassTokenType || subject != passID {
		response.FailWithMessage(c.Ctx, code.ErrTokenInvalid, "Token does not match this pass", nil)
		return
	}

	visitor, err := c.Container.VisitorService.GetVisitor(passID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Fail(c.Ctx, code.ErrVisitorNotFound, nil)
			return
		}
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "Failed to load pass: "+err.Error(), nil)
		return
	}

	unitName := ""
	if visitor.Unit != nil {
		unitName = visitor.Unit.Name
	}

	response.Success(c.Ctx, gin.H{
		"visitor_name":      visitor.VisitorName,
		"access_date":       visitor.AccessDate,
		"credential_number": visitor.CredentialNumber,
		"pin_code":          visitor.PinCode,
		"status":            visitor.Status,
		"unit_name":         unitName,
		"needs_parking":     visitor.NeedsParking,
	})
}
