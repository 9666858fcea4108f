package controllers

import (
	"strconv"

	"github.com/GSSolutions-CPT/GSS-OS/internal/domain/services/container"
	"github.com/GSSolutions-CPT/GSS-OS/internal/error/code"
	"github.com/GSSolutions-CPT/GSS-OS/internal/error/response"

	"github.com/gin-gonic/gin"
)

// InterfaceAnnouncementController defines the announcement controller interface
type InterfaceAnnouncementController interface {
	CreateAnnouncement()
	GetAnnouncements()
	DeleteAnnouncement()
}

// AnnouncementController handles announcement requests
type AnnouncementController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewAnnouncementController creates a new announcement controller
func NewAnnouncementController(ctx *gin.Context, container *container.ServiceContainer) *AnnouncementController {
	return &AnnouncementController{
		Ctx:       ctx,
		Container: container,
	}
}

// AnnouncementRequest represents an announcement creation request
type AnnouncementRequest struct {
	Message string `json:"message" binding:"required" example:"Water outage in Block B on Friday"`
}

// HandleAnnouncementFunc returns a Gin handler for announcement requests
func HandleAnnouncementFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewAnnouncementController(ctx, container)

		switch method {
		case "createAnnouncement":
			controller.CreateAnnouncement()
		case "getAnnouncements":
			controller.GetAnnouncements()
		case "deleteAnnouncement":
			controller.DeleteAnnouncement()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "Invalid method", nil)
		}
	}
}

// CreateAnnouncement publishes a notice
// @Summary      Create Announcement
// @Description  Publish an estate-wide notice attributed to the caller
// @Tags         Announcement
// @Accept       json
// @Produce      json
// @Param        Authorization header string true "Bearer token"
// @Param        request body AnnouncementRequest true "The notice"
// @Success      200  {object}  response.Response  "The created announcement"
// @Router       /announcements [post]
func (c *AnnouncementController) CreateAnnouncement() {
	var req AnnouncementRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "Invalid request parameters", nil)
		return
	}

	announcement, err := c.Container.AnnouncementService.Create(c.Ctx.GetString("userID"), req.Message)
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "Failed to create announcement: "+err.Error(), nil)
		return
	}

	response.Success(c.Ctx, announcement)
}

// GetAnnouncements lists the latest notices
// @Summary      List Announcements
// @Description  List the latest announcements newest-first
// @Tags         Announcement
// @Produce      json
// @Param        Authorization header string true "Bearer token"
// @Param        limit query int false "Maximum entries" default(20)
// @Success      200  {object}  response.Response  "Latest announcements"
// @Router       /announcements [get]
func (c *AnnouncementController) GetAnnouncements() {
	limit, _ := strconv.Atoi(c.Ctx.DefaultQuery("limit", "20"))

	announcements, err := c.Container.AnnouncementService.List(limit)
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "Failed to list announcements: "+err.Error(), nil)
		return
	}

	response.Success(c.Ctx, announcements)
}

// DeleteAnnouncement removes a notice
// @Summary      Delete Announcement
// @Description  Delete an announcement by id
// @Tags         Announcement
// @Produce      json
// @Param        Authorization header string true "Bearer token"
// @Param        id path string true "Announcement ID"
// @Success      200  {object}  response.Response  "Deleted"
// @Router       /announcements/{id} [delete]
func (c *AnnouncementController) DeleteAnnouncement() {
	if err := c.Container.AnnouncementService.Delete(c.Ctx.Param("id")); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "Failed to delete announcement: "+err.Error(), nil)
		return
	}

	response.Success(c.Ctx, gin.H{"deleted": true})
}
