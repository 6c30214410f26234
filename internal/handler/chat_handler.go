package handler

import (
	"net/http"

	"chat-platform/internal/services"
	"chat-platform/internal/transport/httpdto"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ChatHandler struct {
	service *services.ChatService
}

func NewChatHandler(service *services.ChatService) *ChatHandler {
	return &ChatHandler{service: service}
}

func (h *ChatHandler) Create(c *gin.Context) {
	var req httpdto.CreateChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, httpdto.Failure("invalid request"))
		return
	}

	creatorID, ok := services.UserIDFromContext(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, httpdto.Failure("unauthorized"))
		return
	}

	created, err := h.service.CreateChat(c.Request.Context(), services.CreateChatInput{
		Title:     req.Title,
		CreatorID: creatorID,
		UserIDs:   req.UserIDs,
	})
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, httpdto.Success(httpdto.NewChatResponse(created), "Chat created successfully"))
}

func (h *ChatHandler) Update(c *gin.Context) {
	chatID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, httpdto.Failure("invalid chat id"))
		return
	}

	var req httpdto.UpdateChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, httpdto.Failure("invalid request"))
		return
	}

	actorID, ok := services.UserIDFromContext(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, httpdto.Failure("unauthorized"))
		return
	}

	updated, err := h.service.UpdateChat(c.Request.Context(), services.UpdateChatInput{
		ChatID:  chatID,
		ActorID: actorID,
		Title:   req.Title,
		UserIDs: req.UserIDs,
	})
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, httpdto.Success(httpdto.NewChatResponse(updated), "Chat updated successfully"))
}

func (h *ChatHandler) Remove(c *gin.Context) {
	chatID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, httpdto.Failure("invalid chat id"))
		return
	}

	actorID, ok := services.UserIDFromContext(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, httpdto.Failure("unauthorized"))
		return
	}

	if err := h.service.RemoveChat(c.Request.Context(), chatID, actorID); err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, httpdto.Success(nil, "Chat deleted successfully"))
}

func (h *ChatHandler) AttachUser(c *gin.Context) {
	chatID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, httpdto.Failure("invalid chat id"))
		return
	}

	var req httpdto.AttachDetachRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, httpdto.Failure("invalid request"))
		return
	}

	if err := h.service.AttachUser(c.Request.Context(), chatID, req.UserID); err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, httpdto.Success(nil, "User attached to chat successfully"))
}

func (h *ChatHandler) DetachUser(c *gin.Context) {
	chatID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, httpdto.Failure("invalid chat id"))
		return
	}

	var req httpdto.AttachDetachRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, httpdto.Failure("invalid request"))
		return
	}

	if err := h.service.DetachUser(c.Request.Context(), chatID, req.UserID); err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, httpdto.Success(nil, "User detached from chat successfully"))
}

func (h *ChatHandler) List(c *gin.Context) {
	chats, err := h.service.GetAllChats(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, httpdto.Success(httpdto.NewChatResponses(chats), ""))
}

func (h *ChatHandler) GetByID(c *gin.Context) {
	chatID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, httpdto.Failure("invalid chat id"))
		return
	}

	item, err := h.service.GetChatByID(c.Request.Context(), chatID)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, httpdto.Success(httpdto.NewChatResponse(item), ""))
}

func (h *ChatHandler) ListByUser(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, httpdto.Failure("invalid user id"))
		return
	}

	chats, err := h.service.GetChatsByUser(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, httpdto.Success(httpdto.NewChatResponses(chats), ""))
}
