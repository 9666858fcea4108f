package controllers

import (
	"strconv"

	"github.com/GSSolutions-CPT/GSS-OS/internal/domain/services/container"
	"github.com/GSSolutions-CPT/GSS-OS/internal/error/code"
	"github.com/GSSolutions-CPT/GSS-OS/internal/error/response"

	"github.com/gin-gonic/gin"
)

// InterfaceAuditController defines the audit controller interface
type InterfaceAuditController interface {
	GetAuditLogs()
}

// AuditController handles audit ledger requests
type AuditController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewAuditController creates a new audit controller
func NewAuditController(ctx *gin.Context, container *container.ServiceContainer) *AuditController {
	return &AuditController{
		Ctx:       ctx,
		Container: container,
	}
}

// HandleAuditFunc returns a Gin handler for audit requests
func HandleAuditFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewAuditController(ctx, container)

		switch method {
		case "getAuditLogs":
			controller.GetAuditLogs()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "Invalid method", nil)
		}
	}
}

// GetAuditLogs lists audit entries newest-first
// @Summary      List Audit Logs
// @Description  Page through the append-only audit ledger
// @Tags         Audit
// @Produce      json
// @Param        Authorization header string true "Bearer token"
// @Param        page query int false "Page number" default(1)
// @Param        page_size query int false "Page size" default(50)
// @Success      200  {object}  response.Response  "Paginated audit entries"
// @Router       /audit [get]
func (c *AuditController) GetAuditLogs() {
	page, _ := strconv.Atoi(c.Ctx.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.Ctx.DefaultQuery("page_size", "50"))
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 200 {
		pageSize = 50
	}

	logs, total, err := c.Container.AuditService.List(page, pageSize)
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "Failed to list audit logs: "+err.Error(), nil)
		return
	}

	response.Success(c.Ctx, gin.H{
		"total":     total,
		"page":      page,
		"page_size": pageSize,
		"logs":      logs,
	})
}
