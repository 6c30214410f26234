package message

import (
	"time"

	"github.com/google/uuid"
)

// Message is a single chat message. Edit and delete are sender-gated: the
// repository matches on (chat, message, sender) and reports nothing found when
// the sender does not own the message.
type Message struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	ChatID    uuid.UUID `gorm:"type:uuid;not null;index:idx_messages_chat" json:"chat_id"`
	SenderID  uuid.UUID `gorm:"type:uuid;not null;index:idx_messages_sender" json:"sender_id"`
	UserName  string    `gorm:"type:varchar(256)" json:"user_name"`
	Text      string    `gorm:"type:text;not null" json:"text"`
	CreatedAt time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
}

func (Message) TableName() string { return "messages" }
