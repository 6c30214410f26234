package services

import (
	"context"
	"fmt"
	"path"
	"time"

	"chat-platform/internal/domain/upload"
	"chat-platform/internal/repository"
	"chat-platform/internal/storage"
	apperrors "chat-platform/pkg/errors"

	"github.com/google/uuid"
)

// UploadService issues presigned S3 PUT URLs for message attachments and
// tracks the resulting upload sessions.
type UploadService struct {
	repo    repository.UploadRepository
	storage *storage.Client
}

func NewUploadService(repo repository.UploadRepository, storage *storage.Client) *UploadService {
	return &UploadService{repo: repo, storage: storage}
}

type PresignInput struct {
	UploaderID  uuid.UUID
	FileName    string
	ContentType string
	FileSize    int64
}

type PresignResult struct {
	SessionID uuid.UUID `json:"session_id"`
	UploadURL string    `json:"upload_url"`
	ObjectURL string    `json:"object_url"`
}

const maxAttachmentSize = 50 << 20 // 50 MiB

func (s *UploadService) CreatePresignedUpload(ctx context.Context, in PresignInput) (PresignResult, error) {
	if s.storage == nil {
		return PresignResult{}, apperrors.New(apperrors.KindInvalid, "attachment storage is not configured")
	}
	if in.UploaderID == uuid.Nil || in.FileName == "" || in.ContentType == "" || in.FileSize <= 0 {
		return PresignResult{}, apperrors.ErrInvalidInput
	}
	if in.FileSize > maxAttachmentSize {
		return PresignResult{}, apperrors.New(apperrors.KindInvalid, "attachment exceeds the maximum allowed size")
	}

	session := upload.Session{
		ID:          uuid.New(),
		UploaderID:  in.UploaderID,
		FileName:    in.FileName,
		ContentType: in.ContentType,
		FileSize:    in.FileSize,
		ObjectKey:   fmt.Sprintf("attachments/%s/%s%s", in.UploaderID, uuid.New(), path.Ext(in.FileName)),
		Status:      upload.StatusPending,
		CreatedAt:   time.Now(),
	}
	if err := s.repo.Create(ctx, &session); err != nil {
		return PresignResult{}, err
	}

	url, err := s.storage.PresignPut(ctx, session.ObjectKey, session.ContentType)
	if err != nil {
		return PresignResult{}, err
	}

	return PresignResult{
		SessionID: session.ID,
		UploadURL: url,
		ObjectURL: s.storage.ObjectURL(session.ObjectKey),
	}, nil
}

// CompleteUpload marks a session uploaded and returns the final object URL.
func (s *UploadService) CompleteUpload(ctx context.Context, sessionID uuid.UUID) (string, error) {
	session, err := s.repo.GetByID(ctx, sessionID)
	if err != nil {
		return "", err
	}
	if err := s.repo.MarkCompleted(ctx, sessionID); err != nil {
		return "", err
	}
	return s.storage.ObjectURL(session.ObjectKey), nil
}
