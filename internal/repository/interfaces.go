package repository

import (
	"context"

	"github.com/google/uuid"

	"chat-platform/internal/domain/chat"
	"chat-platform/internal/domain/message"
	"chat-platform/internal/domain/upload"
	"chat-platform/internal/domain/user"
)

type ChatRepository interface {
	Create(ctx context.Context, c *chat.Chat) error
	GetByID(ctx context.Context, id uuid.UUID) (chat.Chat, error)
	GetAll(ctx context.Context) ([]chat.Chat, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) ([]chat.Chat, error)
	ListTitles(ctx context.Context) ([]string, error)
	Update(ctx context.Context, c chat.Chat) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type UserRepository interface {
	Create(ctx context.Context, u *user.User) error
	GetByID(ctx context.Context, id uuid.UUID) (user.User, error)
	GetByEmail(ctx context.Context, email string) (user.User, error)
	GetAll(ctx context.Context) ([]user.User, error)
	Filter(ctx context.Context, filter string) ([]user.User, error)
	EnsureRole(ctx context.Context, name string) (user.Role, error)
	AssignRole(ctx context.Context, userID uuid.UUID, role user.Role) error
}

type MessageRepository interface {
	Create(ctx context.Context, m *message.Message) error
	GetByChat(ctx context.Context, chatID uuid.UUID) ([]message.Message, error)
	GetByChatAndSender(ctx context.Context, chatID, senderID uuid.UUID) ([]message.Message, error)
	UpdateText(ctx context.Context, chatID, messageID, senderID uuid.UUID, text string) error
	Delete(ctx context.Context, chatID, messageID, senderID uuid.UUID) error
}

type UploadRepository interface {
	Create(ctx context.Context, s *upload.Session) error
	GetByID(ctx context.Context, id uuid.UUID) (upload.Session, error)
	MarkCompleted(ctx context.Context, id uuid.UUID) error
}
