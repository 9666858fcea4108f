package controllers

import (
	"errors"

	"github.com/GSSolutions-CPT/GSS-OS/internal/domain/services"
	"github.com/GSSolutions-CPT/GSS-OS/internal/domain/services/container"
	"github.com/GSSolutions-CPT/GSS-OS/internal/error/code"
	"github.com/GSSolutions-CPT/GSS-OS/internal/error/response"

	"github.com/gin-gonic/gin"
)

// InterfaceJWTController defines the authentication controller interface
type InterfaceJWTController interface {
	Login()
}

// JWTController handles authentication requests
type JWTController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewJWTController creates a new authentication controller
func NewJWTController(ctx *gin.Context, container *container.ServiceContainer) *JWTController {
	return &JWTController{
		Ctx:       ctx,
		Container: container,
	}
}

// LoginRequest represents a login request
type LoginRequest struct {
	Email    string `json:"email" binding:"required" example:"admin@gss-os.local"`
	Password string `json:"password" binding:"required" example:"admin123"`
}

// ErrorResponse represents an error response envelope
type ErrorResponse struct {
	Code    int         `json:"code" example:"100004"`
	Message string      `json:"message" example:"Invalid email or password"`
	Data    interface{} `json:"data"`
}

// HandleJWTFunc returns a Gin handler for authentication requests
func HandleJWTFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewJWTController(ctx, container)

		switch method {
		case "login":
			controller.Login()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "Invalid method", nil)
		}
	}
}

// Login handles account login
// @Summary      Account Login
// @Description  Verify email and password and return a JWT token
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        request body LoginRequest true "Login request parameters"
// @Success      200  {object}  response.Response  "Success response with token"
// @Failure      400  {object}  ErrorResponse  "Bad request"
// @Failure      401  {object}  ErrorResponse  "Unauthorized"
// @Router       /auth/login [post]
func (c *JWTController) Login() {
	var req LoginRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "Invalid request parameters", nil)
		return
	}

	token, profile, err := c.Container.JWTService.Login(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			response.Fail(c.Ctx, code.ErrUserPasswordIncorrect, nil)
			return
		}
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "Login failed: "+err.Error(), nil)
		return
	}

	response.Success(c.Ctx, gin.H{
		"token":     token,
		"user_id":   profile.ID,
		"full_name": profile.FullName,
		"role":      profile.Role,
		"unit_id":   profile.UnitID,
	})
}
