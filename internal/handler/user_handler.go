package handler

import (
	"net/http"

	"chat-platform/internal/services"
	"chat-platform/internal/transport/httpdto"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type UserHandler struct {
	service *services.UserService
}

func NewUserHandler(service *services.UserService) *UserHandler {
	return &UserHandler{service: service}
}

func (h *UserHandler) List(c *gin.Context) {
	users, err := h.service.GetUsers(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, httpdto.Success(httpdto.NewUserResponses(users), ""))
}

func (h *UserHandler) GetByID(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, httpdto.Failure("invalid user id"))
		return
	}

	u, err := h.service.GetUser(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, httpdto.Success(httpdto.NewUserResponse(u), ""))
}

func (h *UserHandler) Search(c *gin.Context) {
	users, err := h.service.GetUsersByFilter(c.Request.Context(), c.Query("filter"))
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, httpdto.Success(httpdto.NewUserResponses(users), ""))
}
