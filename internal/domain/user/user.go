package user

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Email        string    `gorm:"type:varchar(256);not null;uniqueIndex" json:"email"`
	Name         string    `gorm:"type:varchar(256);not null" json:"name"`
	PhoneNumber  string    `gorm:"type:varchar(32)" json:"phone_number,omitempty"`
	PasswordHash string    `gorm:"type:text;not null" json:"-"`
	CreatedAt    time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt    time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"updated_at"`

	Roles []Role `gorm:"many2many:user_roles" json:"roles,omitempty"`
}

type Role struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name string    `gorm:"type:varchar(64);not null;uniqueIndex" json:"name"`
}

// DefaultRole is assigned at registration when no role is requested.
const DefaultRole = "User"

// AdminRole unlocks platform-wide reads such as listing every chat.
const AdminRole = "Admin"

func (u User) RoleNames() []string {
	names := make([]string, 0, len(u.Roles))
	for _, r := range u.Roles {
		names = append(names, r.Name)
	}
	return names
}
