package repository

import (
	"context"
	"errors"

	"chat-platform/internal/domain/message"
	apperrors "chat-platform/pkg/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PostgresMessageRepository struct {
	db *gorm.DB
}

func NewMessageRepository(db *gorm.DB) MessageRepository {
	return &PostgresMessageRepository{db: db}
}

func (r *PostgresMessageRepository) Create(ctx context.Context, m *message.Message) error {
	res := r.db.WithContext(ctx).Create(m)
	if res.Error != nil {
		if errors.Is(res.Error, gorm.ErrDuplicatedKey) {
			return apperrors.ErrAlreadyExists
		}
		return res.Error
	}
	return nil
}

func (r *PostgresMessageRepository) GetByChat(ctx context.Context, chatID uuid.UUID) ([]message.Message, error) {
	var messages []message.Message
	err := r.db.WithContext(ctx).
		Where("chat_id = ?", chatID).
		Order("created_at").
		Find(&messages).Error
	if err != nil {
		return nil, err
	}
	return messages, nil
}

func (r *PostgresMessageRepository) GetByChatAndSender(ctx context.Context, chatID, senderID uuid.UUID) ([]message.Message, error) {
	var messages []message.Message
	err := r.db.WithContext(ctx).
		Where("chat_id = ? AND sender_id = ?", chatID, senderID).
		Order("created_at").
		Find(&messages).Error
	if err != nil {
		return nil, err
	}
	return messages, nil
}

// UpdateText edits a message, matching on sender so users can only edit their
// own messages. Zero matched rows means absent or not owned; callers cannot
// tell which, and the client message keeps that ambiguity.
func (r *PostgresMessageRepository) UpdateText(ctx context.Context, chatID, messageID, senderID uuid.UUID, text string) error {
	res := r.db.WithContext(ctx).
		Model(&message.Message{}).
		Where("chat_id = ? AND id = ? AND sender_id = ?", chatID, messageID, senderID).
		Update("text", text)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PostgresMessageRepository) Delete(ctx context.Context, chatID, messageID, senderID uuid.UUID) error {
	res := r.db.WithContext(ctx).
		Where("chat_id = ? AND id = ? AND sender_id = ?", chatID, messageID, senderID).
		Delete(&message.Message{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
