package handler

import (
	"net/http"

	"chat-platform/internal/services"
	"chat-platform/internal/transport/httpdto"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	service *services.AuthService
}

func NewAuthHandler(service *services.AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req httpdto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, httpdto.Failure("invalid request"))
		return
	}

	res, err := h.service.Register(c.Request.Context(), services.RegisterInput{
		Email:       req.Email,
		Name:        req.Name,
		PhoneNumber: req.PhoneNumber,
		Password:    req.Password,
		Role:        req.Role,
	})
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, httpdto.Success(res, "User registered successfully"))
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req httpdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, httpdto.Failure("invalid request"))
		return
	}

	res, err := h.service.Login(c.Request.Context(), services.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, httpdto.Success(res, ""))
}

// AssignRole grants a role to an existing user. Any failure collapses to a
// single client message.
func (h *AuthHandler) AssignRole(c *gin.Context) {
	var req httpdto.AssignRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, httpdto.Failure("Error encountered"))
		return
	}

	if err := h.service.AssignRole(c.Request.Context(), req.Email, req.Role); err != nil {
		c.JSON(http.StatusBadRequest, httpdto.Failure("Error encountered"))
		return
	}

	c.JSON(http.StatusOK, httpdto.Success(nil, "Role assigned successfully"))
}
