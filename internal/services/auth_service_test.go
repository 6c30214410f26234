package services

import (
	"context"
	"strings"
	"testing"

	"chat-platform/config"
	"chat-platform/internal/domain/user"
	apperrors "chat-platform/pkg/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type fakeUserRepo struct {
	users map[uuid.UUID]user.User
	roles map[string]user.Role
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		users: make(map[uuid.UUID]user.User),
		roles: make(map[string]user.Role),
	}
}

func (r *fakeUserRepo) Create(ctx context.Context, u *user.User) error {
	r.users[u.ID] = *u
	return nil
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id uuid.UUID) (user.User, error) {
	u, ok := r.users[id]
	if !ok {
		return user.User{}, apperrors.ErrNotFound
	}
	return u, nil
}

func (r *fakeUserRepo) GetByEmail(ctx context.Context, email string) (user.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return user.User{}, apperrors.ErrNotFound
}

func (r *fakeUserRepo) GetAll(ctx context.Context) ([]user.User, error) {
	out := make([]user.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, u)
	}
	return out, nil
}

func (r *fakeUserRepo) Filter(ctx context.Context, filter string) ([]user.User, error) {
	var out []user.User
	needle := strings.ToLower(filter)
	for _, u := range r.users {
		if strings.Contains(strings.ToLower(u.Name), needle) ||
			strings.Contains(strings.ToLower(u.Email), needle) {
			out = append(out, u)
		}
	}
	return out, nil
}

func (r *fakeUserRepo) EnsureRole(ctx context.Context, name string) (user.Role, error) {
	if role, ok := r.roles[name]; ok {
		return role, nil
	}
	role := user.Role{ID: uuid.New(), Name: name}
	r.roles[name] = role
	return role, nil
}

func (r *fakeUserRepo) AssignRole(ctx context.Context, userID uuid.UUID, role user.Role) error {
	u, ok := r.users[userID]
	if !ok {
		return apperrors.ErrNotFound
	}
	u.Roles = append(u.Roles, role)
	r.users[userID] = u
	return nil
}

func newTestAuthService() (*AuthService, *fakeUserRepo) {
	repo := newFakeUserRepo()
	tokens := NewTokenManager(&config.Config{JWTSecret: "test-secret", JWTExpiryHours: 1})
	return NewAuthService(repo, tokens), repo
}

func TestRegister(t *testing.T) {
	req := require.New(t)
	svc, repo := newTestAuthService()
	ctx := context.Background()

	res, err := svc.Register(ctx, RegisterInput{
		Email:    "alice@example.com",
		Name:     "Alice",
		Password: "correct horse",
	})
	req.NoError(err)
	req.NotEmpty(res.Token)
	req.Equal("alice@example.com", res.User.Email)
	req.Contains(res.User.Roles, user.DefaultRole)

	stored, err := repo.GetByEmail(ctx, "alice@example.com")
	req.NoError(err)
	req.NotEqual("correct horse", stored.PasswordHash)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	req := require.New(t)
	svc, _ := newTestAuthService()
	ctx := context.Background()

	_, err := svc.Register(ctx, RegisterInput{Email: "bob@example.com", Name: "Bob", Password: "long enough"})
	req.NoError(err)

	_, err = svc.Register(ctx, RegisterInput{Email: "bob@example.com", Name: "Bobby", Password: "long enough"})
	req.Error(err)
	req.Equal(apperrors.KindConflict, apperrors.KindOf(err))
	req.Equal("User with this email already exists", apperrors.ClientMessage(err))
}

func TestRegisterShortPassword(t *testing.T) {
	req := require.New(t)
	svc, _ := newTestAuthService()

	_, err := svc.Register(context.Background(), RegisterInput{
		Email:    "carol@example.com",
		Name:     "Carol",
		Password: "short",
	})
	req.Error(err)
	req.Equal("Password must be at least 8 characters", apperrors.ClientMessage(err))
}

func TestLogin(t *testing.T) {
	req := require.New(t)
	svc, _ := newTestAuthService()
	ctx := context.Background()

	_, err := svc.Register(ctx, RegisterInput{Email: "dave@example.com", Name: "Dave", Password: "swordfish1"})
	req.NoError(err)

	res, err := svc.Login(ctx, LoginInput{Email: "dave@example.com", Password: "swordfish1"})
	req.NoError(err)
	req.NotEmpty(res.Token)

	claims, err := svc.ParseAccessToken(res.Token)
	req.NoError(err)
	req.Equal(res.User.ID, claims.UserID)
	req.Equal("dave@example.com", claims.Email)
}

func TestLoginBadCredentials(t *testing.T) {
	req := require.New(t)
	svc, _ := newTestAuthService()
	ctx := context.Background()

	_, err := svc.Register(ctx, RegisterInput{Email: "erin@example.com", Name: "Erin", Password: "swordfish1"})
	req.NoError(err)

	_, err = svc.Login(ctx, LoginInput{Email: "erin@example.com", Password: "wrong password"})
	req.Error(err)
	req.Equal("Username or password is incorrect", apperrors.ClientMessage(err))

	_, err = svc.Login(ctx, LoginInput{Email: "nobody@example.com", Password: "whatever1"})
	req.Error(err)
	req.Equal("Username or password is incorrect", apperrors.ClientMessage(err))
}

func TestAssignRole(t *testing.T) {
	req := require.New(t)
	svc, repo := newTestAuthService()
	ctx := context.Background()

	res, err := svc.Register(ctx, RegisterInput{Email: "frank@example.com", Name: "Frank", Password: "swordfish1"})
	req.NoError(err)

	req.NoError(svc.AssignRole(ctx, "frank@example.com", user.AdminRole))

	id, err := uuid.Parse(res.User.ID)
	req.NoError(err)
	stored, err := repo.GetByID(ctx, id)
	req.NoError(err)
	req.Contains(stored.RoleNames(), user.AdminRole)

	err = svc.AssignRole(ctx, "missing@example.com", user.AdminRole)
	req.Error(err)
}

func TestParseAccessTokenRejectsGarbage(t *testing.T) {
	req := require.New(t)
	svc, _ := newTestAuthService()

	_, err := svc.ParseAccessToken("")
	req.Error(err)

	_, err = svc.ParseAccessToken("not.a.token")
	req.Error(err)
}
