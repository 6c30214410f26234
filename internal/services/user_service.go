package services

import (
	"context"
	"errors"

	"chat-platform/internal/domain/user"
	"chat-platform/internal/repository"
	apperrors "chat-platform/pkg/errors"

	"github.com/google/uuid"
)

// UserService is the read side of the user directory.
type UserService struct {
	repo repository.UserRepository
}

func NewUserService(repo repository.UserRepository) *UserService {
	return &UserService{repo: repo}
}

func (s *UserService) GetUsers(ctx context.Context) ([]user.User, error) {
	return s.repo.GetAll(ctx)
}

func (s *UserService) GetUser(ctx context.Context, id uuid.UUID) (user.User, error) {
	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return user.User{}, apperrors.Wrap(apperrors.KindNotFound, err, "User not found")
		}
		return user.User{}, err
	}
	return u, nil
}

func (s *UserService) GetUserByEmail(ctx context.Context, email string) (user.User, error) {
	u, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return user.User{}, apperrors.Wrap(apperrors.KindNotFound, err, "User not found")
		}
		return user.User{}, err
	}
	return u, nil
}

// GetUsersByFilter matches the filter against name and email, substring,
// case-insensitive.
func (s *UserService) GetUsersByFilter(ctx context.Context, filter string) ([]user.User, error) {
	if filter == "" {
		return s.repo.GetAll(ctx)
	}
	return s.repo.Filter(ctx, filter)
}
