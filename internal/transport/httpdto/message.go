package httpdto

import (
	"time"

	"chat-platform/internal/domain/message"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

type AddMessageRequest struct {
	Text string `json:"text" binding:"required"`
}

type UpdateMessageRequest struct {
	Text string `json:"text" binding:"required"`
}

type MessageResponse struct {
	ID        uuid.UUID `json:"id"`
	ChatID    uuid.UUID `json:"chatId"`
	SenderID  uuid.UUID `json:"senderId"`
	UserName  string    `json:"userName"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"createdAt"`
}

func NewMessageResponse(m message.Message) MessageResponse {
	return MessageResponse{
		ID:        m.ID,
		ChatID:    m.ChatID,
		SenderID:  m.SenderID,
		UserName:  m.UserName,
		Text:      m.Text,
		CreatedAt: m.CreatedAt,
	}
}

func NewMessageResponses(messages []message.Message) []MessageResponse {
	return lo.Map(messages, func(m message.Message, _ int) MessageResponse {
		return NewMessageResponse(m)
	})
}
