package upload

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusPending   = "PENDING"
	StatusCompleted = "COMPLETED"
)

// Session tracks a presigned attachment upload.
type Session struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UploaderID  uuid.UUID `gorm:"type:uuid;not null;index" json:"uploader_id"`
	FileName    string    `gorm:"type:varchar(512);not null" json:"file_name"`
	ContentType string    `gorm:"type:varchar(128);not null" json:"content_type"`
	FileSize    int64     `gorm:"not null" json:"file_size"`
	ObjectKey   string    `gorm:"type:varchar(1024);not null" json:"object_key"`
	Status      string    `gorm:"type:varchar(32);not null;default:'PENDING'" json:"status"`
	CreatedAt   time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
}

func (Session) TableName() string { return "upload_sessions" }
