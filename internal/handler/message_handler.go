package handler

import (
	"net/http"

	"chat-platform/internal/services"
	"chat-platform/internal/transport/httpdto"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type MessageHandler struct {
	service *services.MessageService
}

func NewMessageHandler(service *services.MessageService) *MessageHandler {
	return &MessageHandler{service: service}
}

func (h *MessageHandler) ListByChat(c *gin.Context) {
	chatID, err := uuid.Parse(c.Param("chatId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, httpdto.Failure("invalid chat id"))
		return
	}

	if sender := c.Query("senderId"); sender != "" {
		senderID, err := uuid.Parse(sender)
		if err != nil {
			c.JSON(http.StatusBadRequest, httpdto.Failure("invalid sender id"))
			return
		}
		messages, err := h.service.GetMessagesByUser(c.Request.Context(), chatID, senderID)
		if err != nil {
			c.Error(err)
			return
		}
		c.JSON(http.StatusOK, httpdto.Success(httpdto.NewMessageResponses(messages), ""))
		return
	}

	messages, err := h.service.GetMessages(c.Request.Context(), chatID)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, httpdto.Success(httpdto.NewMessageResponses(messages), ""))
}

func (h *MessageHandler) Add(c *gin.Context) {
	chatID, err := uuid.Parse(c.Param("chatId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, httpdto.Failure("invalid chat id"))
		return
	}

	var req httpdto.AddMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, httpdto.Failure("invalid request"))
		return
	}

	senderID, ok := services.UserIDFromContext(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, httpdto.Failure("unauthorized"))
		return
	}

	m, err := h.service.AddMessage(c.Request.Context(), services.AddMessageInput{
		ChatID:   chatID,
		SenderID: senderID,
		UserName: c.GetString("user_name"),
		Text:     req.Text,
	})
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, httpdto.Success(httpdto.NewMessageResponse(m), "Message sent successfully"))
}

func (h *MessageHandler) Update(c *gin.Context) {
	chatID, err := uuid.Parse(c.Param("chatId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, httpdto.Failure("invalid chat id"))
		return
	}
	messageID, err := uuid.Parse(c.Param("messageId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, httpdto.Failure("invalid message id"))
		return
	}

	var req httpdto.UpdateMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, httpdto.Failure("invalid request"))
		return
	}

	senderID, ok := services.UserIDFromContext(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, httpdto.Failure("unauthorized"))
		return
	}

	err = h.service.UpdateMessage(c.Request.Context(), services.UpdateMessageInput{
		ChatID:    chatID,
		MessageID: messageID,
		SenderID:  senderID,
		Text:      req.Text,
	})
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, httpdto.Success(nil, "Message updated successfully"))
}

func (h *MessageHandler) Delete(c *gin.Context) {
	chatID, err := uuid.Parse(c.Param("chatId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, httpdto.Failure("invalid chat id"))
		return
	}
	messageID, err := uuid.Parse(c.Param("messageId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, httpdto.Failure("invalid message id"))
		return
	}

	senderID, ok := services.UserIDFromContext(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, httpdto.Failure("unauthorized"))
		return
	}

	if err := h.service.DeleteMessage(c.Request.Context(), chatID, messageID, senderID); err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, httpdto.Success(nil, "Message deleted successfully"))
}
