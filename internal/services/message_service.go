package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"chat-platform/internal/domain/message"
	"chat-platform/internal/repository"
	apperrors "chat-platform/pkg/errors"
	"chat-platform/pkg/logger"

	"github.com/google/uuid"
)

// Publisher fans a persisted message out to every messaging instance.
type Publisher interface {
	Publish(ctx context.Context, channel string, payload []byte) error
}

// MessageService persists messages and broadcasts them to chat channels.
type MessageService struct {
	repo      repository.MessageRepository
	publisher Publisher
	log       *logger.Logger
}

func NewMessageService(repo repository.MessageRepository, publisher Publisher, log *logger.Logger) *MessageService {
	return &MessageService{repo: repo, publisher: publisher, log: log}
}

type AddMessageInput struct {
	ChatID   uuid.UUID
	SenderID uuid.UUID
	UserName string
	Text     string
}

type UpdateMessageInput struct {
	ChatID    uuid.UUID
	MessageID uuid.UUID
	SenderID  uuid.UUID
	Text      string
}

// ChatChannel is the pub/sub channel carrying a chat's messages.
func ChatChannel(chatID uuid.UUID) string {
	return fmt.Sprintf("chat:%s", chatID)
}

func (s *MessageService) GetMessages(ctx context.Context, chatID uuid.UUID) ([]message.Message, error) {
	return s.repo.GetByChat(ctx, chatID)
}

func (s *MessageService) GetMessagesByUser(ctx context.Context, chatID, userID uuid.UUID) ([]message.Message, error) {
	return s.repo.GetByChatAndSender(ctx, chatID, userID)
}

func (s *MessageService) AddMessage(ctx context.Context, in AddMessageInput) (message.Message, error) {
	if in.Text == "" {
		return message.Message{}, apperrors.New(apperrors.KindInvalid, "Message text must not be empty")
	}

	m := message.Message{
		ID:        uuid.New(),
		ChatID:    in.ChatID,
		SenderID:  in.SenderID,
		UserName:  in.UserName,
		Text:      in.Text,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, &m); err != nil {
		return message.Message{}, err
	}

	s.broadcast(ctx, m)
	return m, nil
}

func (s *MessageService) UpdateMessage(ctx context.Context, in UpdateMessageInput) error {
	err := s.repo.UpdateText(ctx, in.ChatID, in.MessageID, in.SenderID, in.Text)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.Wrap(apperrors.KindNotFound, err,
				"Message not found or user does not have permission to update this message")
		}
		return err
	}
	return nil
}

func (s *MessageService) DeleteMessage(ctx context.Context, chatID, messageID, senderID uuid.UUID) error {
	err := s.repo.Delete(ctx, chatID, messageID, senderID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.Wrap(apperrors.KindForbidden, err,
				"Message not found or user does not have permission to delete this message")
		}
		return err
	}
	return nil
}

// broadcast publishes the message to its chat channel. Delivery is best
// effort; a failed publish never rolls back the persisted message.
func (s *MessageService) broadcast(ctx context.Context, m message.Message) {
	if s.publisher == nil {
		return
	}
	payload, err := json.Marshal(m)
	if err != nil {
		return
	}
	if err := s.publisher.Publish(ctx, ChatChannel(m.ChatID), payload); err != nil && s.log != nil {
		s.log.Warnf("failed to publish message %s to %s: %s", m.ID, ChatChannel(m.ChatID), err)
	}
}
