package controllers

import (
	"github.com/GSSolutions-CPT/GSS-OS/internal/domain/services/container"
	"github.com/GSSolutions-CPT/GSS-OS/internal/error/code"
	"github.com/GSSolutions-CPT/GSS-OS/internal/error/response"

	"github.com/gin-gonic/gin"
)

// InterfaceCronController defines the scheduled-job controller interface
type InterfaceCronController interface {
	ExpireVisitors()
	ProcessRetries()
}

// CronController handles scheduled-job invocations. The jobs themselves live
// in the services; these endpoints only trigger and report them.
type CronController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewCronController creates a new scheduled-job controller
func NewCronController(ctx *gin.Context, container *container.ServiceContainer) *CronController {
	return &CronController{
		Ctx:       ctx,
		Container: container,
	}
}

// HandleCronFunc returns a Gin handler for scheduled-job requests
func HandleCronFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewCronController(ctx, container)

		switch method {
		case "expireVisitors":
			controller.ExpireVisitors()
		case "processRetries":
			controller.ProcessRetries()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "Invalid method", nil)
		}
	}
}

// ExpireVisitors runs the daily expiration sweep
// @Summary      Expiration Sweep
// @Description  Expire every active pass whose access date has passed and remove its credential from the hardware
// @Tags         Cron
// @Produce      json
// @Param        Authorization header string true "Bearer CRON_SECRET"
// @Success      200  {object}  response.Response{data=services.SweepResult}  "Sweep counts"
// @Failure      401  {object}  ErrorResponse  "Invalid cron secret"
// @Router       /cron/expire-visitors [get]
func (c *CronController) ExpireVisitors() {
	result, err := c.Container.SweepService.Run()
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "Sweep failed: "+err.Error(), nil)
		return
	}

	response.Success(c.Ctx, result)
}

// ProcessRetries drains the hardware retry queue
// @Summary      Process Retry Queue
// @Description  Replay up to 50 pending hardware-bridge calls oldest-first
// @Tags         Cron
// @Produce      json
// @Param        Authorization header string true "Bearer CRON_SECRET"
// @Success      200  {object}  response.Response{data=services.RetryRunResult}  "Queue drain counts"
// @Failure      401  {object}  ErrorResponse  "Invalid cron secret"
// @Router       /cron/process-retries [get]
func (c *CronController) ProcessRetries() {
	result, err := c.Container.RetryService.ProcessQueue()
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "Retry processing failed: "+err.Error(), nil)
		return
	}

	response.Success(c.Ctx, result)
}
