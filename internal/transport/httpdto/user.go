package httpdto

import (
	"time"

	"chat-platform/internal/domain/user"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

type UserResponse struct {
	ID          uuid.UUID `json:"id"`
	Email       string    `json:"email"`
	Name        string    `json:"name"`
	PhoneNumber string    `json:"phoneNumber"`
	Roles       []string  `json:"roles"`
	CreatedAt   time.Time `json:"createdAt"`
}

func NewUserResponse(u user.User) UserResponse {
	return UserResponse{
		ID:          u.ID,
		Email:       u.Email,
		Name:        u.Name,
		PhoneNumber: u.PhoneNumber,
		Roles:       u.RoleNames(),
		CreatedAt:   u.CreatedAt,
	}
}

func NewUserResponses(users []user.User) []UserResponse {
	return lo.Map(users, func(u user.User, _ int) UserResponse {
		return NewUserResponse(u)
	})
}
