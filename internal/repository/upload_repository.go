package repository

import (
	"context"
	"errors"

	"chat-platform/internal/domain/upload"
	apperrors "chat-platform/pkg/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PostgresUploadRepository struct {
	db *gorm.DB
}

func NewUploadRepository(db *gorm.DB) UploadRepository {
	return &PostgresUploadRepository{db: db}
}

func (r *PostgresUploadRepository) Create(ctx context.Context, s *upload.Session) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *PostgresUploadRepository) GetByID(ctx context.Context, id uuid.UUID) (upload.Session, error) {
	var s upload.Session
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&s).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return upload.Session{}, apperrors.ErrNotFound
		}
		return upload.Session{}, err
	}
	return s, nil
}

func (r *PostgresUploadRepository) MarkCompleted(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).
		Model(&upload.Session{}).
		Where("id = ?", id).
		Update("status", upload.StatusCompleted)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
