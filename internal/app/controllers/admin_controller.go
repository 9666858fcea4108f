package controllers

import (
	"errors"
	"strconv"

	"github.com/GSSolutions-CPT/GSS-OS/internal/domain/models"
	"github.com/GSSolutions-CPT/GSS-OS/internal/domain/services/container"
	"github.com/GSSolutions-CPT/GSS-OS/internal/error/code"
	"github.com/GSSolutions-CPT/GSS-OS/internal/error/response"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// InterfaceAdminController defines the account administration controller interface
type InterfaceAdminController interface {
	GetProfiles()
	GetProfile()
	CreateProfile()
	DeleteProfile()
}

// AdminController handles account administration requests
type AdminController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewAdminController creates a new account administration controller
func NewAdminController(ctx *gin.Context, container *container.ServiceContainer) *AdminController {
	return &AdminController{
		Ctx:       ctx,
		Container: container,
	}
}

// CreateProfileRequest represents an account creation request
type CreateProfileRequest struct {
	FullName string  `json:"full_name" binding:"required" example:"John Smith"`
	Email    string  `json:"email" binding:"required,email" example:"john@example.com"`
	Password string  `json:"password" binding:"required,min=8" example:"changeme123"`
	Role     string  `json:"role" example:"group_admin"`
	UnitID   *string `json:"unit_id,omitempty"`
}

// HandleAdminFunc returns a Gin handler for account administration requests
func HandleAdminFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewAdminController(ctx, container)

		switch method {
		case "getProfiles":
			controller.GetProfiles()
		case "getProfile":
			controller.GetProfile()
		case "createProfile":
			controller.CreateProfile()
		case "deleteProfile":
			controller.DeleteProfile()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "Invalid method", nil)
		}
	}
}

// GetProfiles lists accounts
// @Summary      List Accounts
// @Description  List accounts with pagination and optional name/email search
// @Tags         Admin
// @Produce      json
// @Param        Authorization header string true "Bearer token"
// @Param        page query int false "Page number" default(1)
// @Param        page_size query int false "Page size" default(20)
// @Param        search query string false "Name or email substring"
// @Success      200  {object}  response.Response  "Paginated accounts"
// @Router       /admin/profiles [get]
func (c *AdminController) GetProfiles() {
	page, _ := strconv.Atoi(c.Ctx.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.Ctx.DefaultQuery("page_size", "20"))
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	profiles, total, err := c.Container.AdminService.GetProfiles(page, pageSize, c.Ctx.Query("search"))
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "Failed to list accounts: "+err.Error(), nil)
		return
	}

	response.Success(c.Ctx, gin.H{
		"total":     total,
		"page":      page,
		"page_size": pageSize,
		"profiles":  profiles,
	})
}

// GetProfile returns one account
// @Summary      Get Account
// @Description  Load a single account with its unit
// @Tags         Admin
// @Produce      json
// @Param        Authorization header string true "Bearer token"
// @Param        id path string true "Account ID"
// @Success      200  {object}  response.Response  "The account"
// @Failure      404  {object}  ErrorResponse  "Account not found"
// @Router       /admin/profiles/{id} [get]
func (c *AdminController) GetProfile() {
	profile, err := c.Container.AdminService.GetProfileByID(c.Ctx.Param("id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Fail(c.Ctx, code.ErrUserNotFound, nil)
			return
		}
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "Failed to load account: "+err.Error(), nil)
		return
	}

	response.Success(c.Ctx, profile)
}

// CreateProfile creates an account
// @Summary      Create Account
// @Description  Create a host, guard or admin account; the password is bcrypt-hashed before storage
// @Tags         Admin
// @Accept       json
// @Produce      json
// @Param        Authorization header string true "Bearer token"
// @Param        request body CreateProfileRequest true "Account parameters"
// @Success      200  {object}  response.Response  "The created account"
// @Failure      400  {object}  ErrorResponse  "Validation failure or duplicate email"
// @Router       /admin/profiles [post]
func (c *AdminController) CreateProfile() {
	var req CreateProfileRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "Invalid request parameters: "+err.Error(), nil)
		return
	}

	role := models.UserRole(req.Role)
	switch role {
	case models.RoleSuperAdmin, models.RoleGroupAdmin, models.RoleGuard:
	case "":
		role = models.RoleGroupAdmin
	default:
		response.FailWithMessage(c.Ctx, code.ErrValidation, "Invalid role: "+req.Role, nil)
		return
	}

	profile := models.Profile{
		FullName: req.FullName,
		Email:    req.Email,
		Password: req.Password,
		Role:     role,
		UnitID:   req.UnitID,
	}
	if err := c.Container.AdminService.CreateProfile(&profile); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			response.Fail(c.Ctx, code.ErrUserAlreadyExist, nil)
			return
		}
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "Failed to create account: "+err.Error(), nil)
		return
	}

	response.Success(c.Ctx, profile)
}

// DeleteProfile deletes an account
// @Summary      Delete Account
// @Description  Delete an account; its issued passes remain for the audit trail
// @Tags         Admin
// @Produce      json
// @Param        Authorization header string true "Bearer token"
// @Param        id path string true "Account ID"
// @Success      200  {object}  response.Response  "Deleted"
// @Router       /admin/profiles/{id} [delete]
func (c *AdminController) DeleteProfile() {
	if err := c.Container.AdminService.DeleteProfile(c.Ctx.Param("id")); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "Failed to delete account: "+err.Error(), nil)
		return
	}

	response.Success(c.Ctx, gin.H{"deleted": true})
}
