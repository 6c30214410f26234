package services

import (
	"context"
	"errors"
	"time"

	"chat-platform/internal/domain/chat"
	"chat-platform/internal/repository"
	apperrors "chat-platform/pkg/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ChatService orchestrates policy decisions against the chat store. Every
// mutating operation runs inside a single transaction: read, decide, write,
// commit. A rejected mutation leaves no visible state change.
type ChatService struct {
	db   *gorm.DB
	repo repository.ChatRepository
}

func NewChatService(db *gorm.DB, repo repository.ChatRepository) *ChatService {
	return &ChatService{db: db, repo: repo}
}

type CreateChatInput struct {
	Title     string
	CreatorID uuid.UUID
	UserIDs   []uuid.UUID
}

type UpdateChatInput struct {
	ChatID  uuid.UUID
	ActorID uuid.UUID
	Title   string
	UserIDs []uuid.UUID
}

func (s *ChatService) CreateChat(ctx context.Context, in CreateChatInput) (chat.Chat, error) {
	var created chat.Chat
	err := s.withTx(ctx, func(repo repository.ChatRepository) error {
		titles, err := repo.ListTitles(ctx)
		if err != nil {
			return err
		}

		c, err := chat.ValidateCreate(titles, chat.CreateRequest{
			Title:     in.Title,
			CreatorID: in.CreatorID,
			UserIDs:   in.UserIDs,
		}, time.Now())
		if err != nil {
			return s.rejectCreate(err, in.Title)
		}

		created = c
		return repo.Create(ctx, &created)
	})
	if err != nil {
		return chat.Chat{}, err
	}
	return created, nil
}

func (s *ChatService) UpdateChat(ctx context.Context, in UpdateChatInput) (chat.Chat, error) {
	var updated chat.Chat
	err := s.withTx(ctx, func(repo repository.ChatRepository) error {
		existing, err := repo.GetByID(ctx, in.ChatID)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return apperrors.Wrap(apperrors.KindNotFound, err, "Chat does not exist")
			}
			return err
		}

		c, err := chat.ValidateUpdate(existing, in.ActorID, in.Title, in.UserIDs)
		if err != nil {
			switch {
			case errors.Is(err, chat.ErrNotCreator):
				return apperrors.Wrap(apperrors.KindForbidden, err, "You can't update this chat")
			case errors.Is(err, chat.ErrInvalidTitle):
				return apperrors.Wrap(apperrors.KindInvalid, err, err.Error())
			}
			return err
		}

		updated = c
		return repo.Update(ctx, updated)
	})
	if err != nil {
		return chat.Chat{}, err
	}
	return updated, nil
}

func (s *ChatService) RemoveChat(ctx context.Context, chatID, actorID uuid.UUID) error {
	return s.withTx(ctx, func(repo repository.ChatRepository) error {
		existing, err := repo.GetByID(ctx, chatID)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return apperrors.Wrap(apperrors.KindNotFound, err, "Chat not found")
			}
			return err
		}

		if err := chat.AuthorizeMutation(existing, actorID); err != nil {
			return apperrors.Wrap(apperrors.KindForbidden, err, "You can't delete this chat")
		}

		return repo.Delete(ctx, chatID)
	})
}

func (s *ChatService) AttachUser(ctx context.Context, chatID, userToAddID uuid.UUID) error {
	return s.withTx(ctx, func(repo repository.ChatRepository) error {
		existing, err := repo.GetByID(ctx, chatID)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return apperrors.Wrap(apperrors.KindNotFound, err, "Chat not found")
			}
			return err
		}

		members, err := chat.ValidateAttach(existing, userToAddID)
		if err != nil {
			return apperrors.Wrap(apperrors.KindConflict, err, "User already attached to chat")
		}

		existing.MemberIDs = members
		return repo.Update(ctx, existing)
	})
}

func (s *ChatService) DetachUser(ctx context.Context, chatID, userToDetachID uuid.UUID) error {
	return s.withTx(ctx, func(repo repository.ChatRepository) error {
		existing, err := repo.GetByID(ctx, chatID)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return apperrors.Wrap(apperrors.KindNotFound, err, "Chat not found")
			}
			return err
		}

		members, err := chat.ValidateDetach(existing, userToDetachID)
		if err != nil {
			switch {
			case errors.Is(err, chat.ErrNotAttached):
				return apperrors.Wrap(apperrors.KindConflict, err, "This user hadn't been attached to chat")
			case errors.Is(err, chat.ErrCannotDetachCreator):
				return apperrors.Wrap(apperrors.KindForbidden, err, "You can't detach yourself from chat")
			}
			return err
		}

		existing.MemberIDs = members
		return repo.Update(ctx, existing)
	})
}

func (s *ChatService) GetAllChats(ctx context.Context) ([]chat.Chat, error) {
	return s.repo.GetAll(ctx)
}

func (s *ChatService) GetChatByID(ctx context.Context, chatID uuid.UUID) (chat.Chat, error) {
	c, err := s.repo.GetByID(ctx, chatID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return chat.Chat{}, apperrors.Wrap(apperrors.KindNotFound, err, "Chat not found")
		}
		return chat.Chat{}, err
	}
	return c, nil
}

func (s *ChatService) GetChatsByUser(ctx context.Context, userID uuid.UUID) ([]chat.Chat, error) {
	return s.repo.GetByUserID(ctx, userID)
}

func (s *ChatService) rejectCreate(err error, title string) error {
	switch {
	case errors.Is(err, chat.ErrDuplicateTitle):
		return apperrors.Wrap(apperrors.KindConflict, err, `Chat "`+title+`" already exists`)
	case errors.Is(err, chat.ErrInvalidTitle):
		return apperrors.Wrap(apperrors.KindInvalid, err, err.Error())
	}
	return err
}

// withTx runs fn against a repository bound to a transaction. Without a db
// handle (unit tests with fakes) the call runs directly against the injected
// repository.
func (s *ChatService) withTx(ctx context.Context, fn func(repo repository.ChatRepository) error) error {
	if s.db == nil {
		return fn(s.repo)
	}
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(repository.NewChatRepository(tx))
	})
}
