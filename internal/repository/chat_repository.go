package repository

import (
	"context"
	"errors"

	"chat-platform/internal/domain/chat"
	apperrors "chat-platform/pkg/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PostgresChatRepository struct {
	db *gorm.DB
}

// NewChatRepository binds a repository to a gorm handle. Services rebind to a
// transaction handle for the duration of a unit of work.
func NewChatRepository(db *gorm.DB) ChatRepository {
	return &PostgresChatRepository{db: db}
}

func (r *PostgresChatRepository) Create(ctx context.Context, c *chat.Chat) error {
	res := r.db.WithContext(ctx).Create(c)
	if res.Error != nil {
		if errors.Is(res.Error, gorm.ErrDuplicatedKey) {
			return apperrors.ErrAlreadyExists
		}
		return res.Error
	}
	return nil
}

func (r *PostgresChatRepository) GetByID(ctx context.Context, id uuid.UUID) (chat.Chat, error) {
	var c chat.Chat
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&c).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return chat.Chat{}, apperrors.ErrNotFound
		}
		return chat.Chat{}, err
	}
	return c, nil
}

func (r *PostgresChatRepository) GetAll(ctx context.Context) ([]chat.Chat, error) {
	var chats []chat.Chat
	if err := r.db.WithContext(ctx).Order("created_at").Find(&chats).Error; err != nil {
		return nil, err
	}
	return chats, nil
}

func (r *PostgresChatRepository) GetByUserID(ctx context.Context, userID uuid.UUID) ([]chat.Chat, error) {
	var chats []chat.Chat
	err := r.db.WithContext(ctx).
		Where("member_ids @> ?::jsonb", `["`+userID.String()+`"]`).
		Find(&chats).Error
	if err != nil {
		return nil, err
	}
	return chats, nil
}

func (r *PostgresChatRepository) ListTitles(ctx context.Context) ([]string, error) {
	var titles []string
	err := r.db.WithContext(ctx).
		Model(&chat.Chat{}).
		Pluck("title", &titles).Error
	if err != nil {
		return nil, err
	}
	return titles, nil
}

func (r *PostgresChatRepository) Update(ctx context.Context, c chat.Chat) error {
	res := r.db.WithContext(ctx).Save(&c)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PostgresChatRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&chat.Chat{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
