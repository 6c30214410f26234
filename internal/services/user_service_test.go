package services

import (
	"context"
	"testing"

	"chat-platform/internal/domain/user"
	apperrors "chat-platform/pkg/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func seedUsers(repo *fakeUserRepo) {
	repo.users[uuid.New()] = user.User{ID: uuid.New(), Name: "Alice Example", Email: "alice@example.com"}
	repo.users[uuid.New()] = user.User{ID: uuid.New(), Name: "Bob Builder", Email: "bob@build.io"}
}

func TestGetUserMissing(t *testing.T) {
	req := require.New(t)
	svc := NewUserService(newFakeUserRepo())

	_, err := svc.GetUser(context.Background(), uuid.New())
	req.Error(err)
	req.Equal(apperrors.KindNotFound, apperrors.KindOf(err))
	req.Equal("User not found", apperrors.ClientMessage(err))
}

func TestGetUsersByFilter(t *testing.T) {
	req := require.New(t)
	repo := newFakeUserRepo()
	seedUsers(repo)
	svc := NewUserService(repo)
	ctx := context.Background()

	all, err := svc.GetUsersByFilter(ctx, "")
	req.NoError(err)
	req.Len(all, 2)

	matched, err := svc.GetUsersByFilter(ctx, "alice")
	req.NoError(err)
	req.Len(matched, 1)
	req.Equal("alice@example.com", matched[0].Email)

	matched, err = svc.GetUsersByFilter(ctx, "build.io")
	req.NoError(err)
	req.Len(matched, 1)
	req.Equal("Bob Builder", matched[0].Name)

	matched, err = svc.GetUsersByFilter(ctx, "nobody")
	req.NoError(err)
	req.Empty(matched)
}
