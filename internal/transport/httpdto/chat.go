package httpdto

import (
	"time"

	"chat-platform/internal/domain/chat"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

type CreateChatRequest struct {
	Title   string      `json:"title" binding:"required"`
	UserIDs []uuid.UUID `json:"userIds"`
}

type UpdateChatRequest struct {
	Title   string      `json:"title" binding:"required"`
	UserIDs []uuid.UUID `json:"userIds"`
}

type AttachDetachRequest struct {
	UserID uuid.UUID `json:"userId" binding:"required"`
}

type ChatResponse struct {
	ID        uuid.UUID   `json:"id"`
	CreatorID uuid.UUID   `json:"creatorId"`
	Title     string      `json:"title"`
	CreatedAt time.Time   `json:"createdAt"`
	UserIDs   []uuid.UUID `json:"userIds"`
}

func NewChatResponse(c chat.Chat) ChatResponse {
	return ChatResponse{
		ID:        c.ID,
		CreatorID: c.CreatorID,
		Title:     c.Title,
		CreatedAt: c.CreatedAt,
		UserIDs:   c.MemberIDs,
	}
}

func NewChatResponses(chats []chat.Chat) []ChatResponse {
	return lo.Map(chats, func(c chat.Chat, _ int) ChatResponse {
		return NewChatResponse(c)
	})
}
