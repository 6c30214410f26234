package chat

import (
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

// Chat is a named group with a creator and a member set. The member list is
// stored as a jsonb column on the row itself; semantically it is a set, so
// membership checks go through HasMember and mutation goes through the policy
// functions in this package.
type Chat struct {
	ID        uuid.UUID   `gorm:"type:uuid;primaryKey" json:"id"`
	CreatorID uuid.UUID   `gorm:"type:uuid;not null;index" json:"creator_id"`
	Title     string      `gorm:"type:varchar(256);not null;uniqueIndex" json:"title"`
	CreatedAt time.Time   `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	MemberIDs []uuid.UUID `gorm:"type:jsonb;serializer:json" json:"user_ids"`
}

func (Chat) TableName() string { return "chats" }

func (c Chat) HasMember(id uuid.UUID) bool {
	return lo.Contains(c.MemberIDs, id)
}
