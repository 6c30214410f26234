package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"chat-platform/internal/domain/user"
	"chat-platform/internal/repository"
	apperrors "chat-platform/pkg/errors"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// AuthService owns registration, login, JWT issuance and role assignment.
type AuthService struct {
	userRepo repository.UserRepository
	tokens   *TokenManager
}

func NewAuthService(userRepo repository.UserRepository, tokens *TokenManager) *AuthService {
	return &AuthService{userRepo: userRepo, tokens: tokens}
}

type RegisterInput struct {
	Email       string
	Name        string
	PhoneNumber string
	Password    string
	Role        string
}

type LoginInput struct {
	Email    string
	Password string
}

type AuthResult struct {
	User  UserInfo `json:"user"`
	Token string   `json:"token"`
}

type UserInfo struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Email       string   `json:"email"`
	PhoneNumber string   `json:"phone_number,omitempty"`
	Roles       []string `json:"roles,omitempty"`
}

func (s *AuthService) Register(ctx context.Context, in RegisterInput) (AuthResult, error) {
	if err := validateRegister(in); err != nil {
		return AuthResult{}, err
	}

	if _, err := s.userRepo.GetByEmail(ctx, in.Email); err == nil {
		return AuthResult{}, apperrors.New(apperrors.KindConflict, "User with this email already exists")
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		return AuthResult{}, err
	}

	hash, err := hashPassword(in.Password)
	if err != nil {
		return AuthResult{}, err
	}

	newUser := &user.User{
		ID:           uuid.New(),
		Email:        in.Email,
		Name:         in.Name,
		PhoneNumber:  in.PhoneNumber,
		PasswordHash: hash,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
	if err := s.userRepo.Create(ctx, newUser); err != nil {
		return AuthResult{}, err
	}

	roleName := in.Role
	if roleName == "" {
		roleName = user.DefaultRole
	}
	role, err := s.userRepo.EnsureRole(ctx, roleName)
	if err != nil {
		return AuthResult{}, err
	}
	if err := s.userRepo.AssignRole(ctx, newUser.ID, role); err != nil {
		return AuthResult{}, err
	}
	newUser.Roles = []user.Role{role}

	token, err := s.tokens.NewAccessToken(*newUser)
	if err != nil {
		return AuthResult{}, err
	}

	return AuthResult{User: toUserInfo(*newUser), Token: token}, nil
}

func (s *AuthService) Login(ctx context.Context, in LoginInput) (AuthResult, error) {
	if in.Email == "" || in.Password == "" {
		return AuthResult{}, apperrors.ErrInvalidInput
	}

	u, err := s.userRepo.GetByEmail(ctx, in.Email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return AuthResult{}, errBadCredentials()
		}
		return AuthResult{}, err
	}

	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(in.Password)) != nil {
		return AuthResult{}, errBadCredentials()
	}

	token, err := s.tokens.NewAccessToken(u)
	if err != nil {
		return AuthResult{}, err
	}

	return AuthResult{User: toUserInfo(u), Token: token}, nil
}

// AssignRole grants a role to the user with the given email, creating the
// role on first use. An empty role name falls back to the default role.
func (s *AuthService) AssignRole(ctx context.Context, email, roleName string) error {
	u, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return err
	}

	if roleName == "" {
		roleName = user.DefaultRole
	}
	role, err := s.userRepo.EnsureRole(ctx, roleName)
	if err != nil {
		return err
	}
	return s.userRepo.AssignRole(ctx, u.ID, role)
}

func (s *AuthService) ParseAccessToken(tokenString string) (AccessClaims, error) {
	return s.tokens.ParseAccessToken(tokenString)
}

func errBadCredentials() error {
	return apperrors.New(apperrors.KindInvalid, "Username or password is incorrect")
}

func validateRegister(in RegisterInput) error {
	if in.Email == "" || in.Name == "" || in.Password == "" {
		return apperrors.ErrInvalidInput
	}
	if !strings.Contains(in.Email, "@") {
		return apperrors.ErrInvalidInput
	}
	if len(in.Password) < 8 {
		return apperrors.New(apperrors.KindInvalid, "Password must be at least 8 characters")
	}
	return nil
}

func hashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

func toUserInfo(u user.User) UserInfo {
	return UserInfo{
		ID:          u.ID.String(),
		Name:        u.Name,
		Email:       u.Email,
		PhoneNumber: u.PhoneNumber,
		Roles:       u.RoleNames(),
	}
}
