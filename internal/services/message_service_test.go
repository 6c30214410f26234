package services

import (
	"context"
	"encoding/json"
	"testing"

	"chat-platform/internal/domain/message"
	apperrors "chat-platform/pkg/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type fakeMessageRepo struct {
	messages map[uuid.UUID]message.Message
}

func newFakeMessageRepo() *fakeMessageRepo {
	return &fakeMessageRepo{messages: make(map[uuid.UUID]message.Message)}
}

func (r *fakeMessageRepo) Create(ctx context.Context, m *message.Message) error {
	r.messages[m.ID] = *m
	return nil
}

func (r *fakeMessageRepo) GetByChat(ctx context.Context, chatID uuid.UUID) ([]message.Message, error) {
	var out []message.Message
	for _, m := range r.messages {
		if m.ChatID == chatID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r *fakeMessageRepo) GetByChatAndSender(ctx context.Context, chatID, senderID uuid.UUID) ([]message.Message, error) {
	var out []message.Message
	for _, m := range r.messages {
		if m.ChatID == chatID && m.SenderID == senderID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r *fakeMessageRepo) UpdateText(ctx context.Context, chatID, messageID, senderID uuid.UUID, text string) error {
	m, ok := r.messages[messageID]
	if !ok || m.ChatID != chatID || m.SenderID != senderID {
		return apperrors.ErrNotFound
	}
	m.Text = text
	r.messages[messageID] = m
	return nil
}

func (r *fakeMessageRepo) Delete(ctx context.Context, chatID, messageID, senderID uuid.UUID) error {
	m, ok := r.messages[messageID]
	if !ok || m.ChatID != chatID || m.SenderID != senderID {
		return apperrors.ErrNotFound
	}
	delete(r.messages, messageID)
	return nil
}

type capturingPublisher struct {
	channels []string
	payloads [][]byte
}

func (p *capturingPublisher) Publish(ctx context.Context, channel string, payload []byte) error {
	p.channels = append(p.channels, channel)
	p.payloads = append(p.payloads, payload)
	return nil
}

func TestAddMessagePublishes(t *testing.T) {
	req := require.New(t)
	repo := newFakeMessageRepo()
	pub := &capturingPublisher{}
	svc := NewMessageService(repo, pub, nil)
	ctx := context.Background()
	chatID := uuid.New()
	sender := uuid.New()

	m, err := svc.AddMessage(ctx, AddMessageInput{
		ChatID:   chatID,
		SenderID: sender,
		UserName: "alice",
		Text:     "hello",
	})
	req.NoError(err)
	req.Equal("hello", m.Text)

	req.Len(pub.channels, 1)
	req.Equal(ChatChannel(chatID), pub.channels[0])

	var published message.Message
	req.NoError(json.Unmarshal(pub.payloads[0], &published))
	req.Equal(m.ID, published.ID)
	req.Equal("hello", published.Text)
}

func TestAddMessageEmptyText(t *testing.T) {
	req := require.New(t)
	svc := NewMessageService(newFakeMessageRepo(), &capturingPublisher{}, nil)

	_, err := svc.AddMessage(context.Background(), AddMessageInput{
		ChatID:   uuid.New(),
		SenderID: uuid.New(),
	})
	req.Error(err)
	req.Equal(apperrors.KindInvalid, apperrors.KindOf(err))
}

func TestUpdateMessageSenderGated(t *testing.T) {
	req := require.New(t)
	repo := newFakeMessageRepo()
	svc := NewMessageService(repo, &capturingPublisher{}, nil)
	ctx := context.Background()
	chatID := uuid.New()
	sender := uuid.New()

	m, err := svc.AddMessage(ctx, AddMessageInput{ChatID: chatID, SenderID: sender, Text: "draft"})
	req.NoError(err)

	err = svc.UpdateMessage(ctx, UpdateMessageInput{
		ChatID:    chatID,
		MessageID: m.ID,
		SenderID:  uuid.New(),
		Text:      "tampered",
	})
	req.Error(err)
	req.Equal(apperrors.KindNotFound, apperrors.KindOf(err))
	req.Equal("Message not found or user does not have permission to update this message",
		apperrors.ClientMessage(err))

	err = svc.UpdateMessage(ctx, UpdateMessageInput{
		ChatID:    chatID,
		MessageID: m.ID,
		SenderID:  sender,
		Text:      "final",
	})
	req.NoError(err)

	stored, err := repo.GetByChat(ctx, chatID)
	req.NoError(err)
	req.Equal("final", stored[0].Text)
}

func TestDeleteMessageSenderGated(t *testing.T) {
	req := require.New(t)
	repo := newFakeMessageRepo()
	svc := NewMessageService(repo, &capturingPublisher{}, nil)
	ctx := context.Background()
	chatID := uuid.New()
	sender := uuid.New()

	m, err := svc.AddMessage(ctx, AddMessageInput{ChatID: chatID, SenderID: sender, Text: "gone soon"})
	req.NoError(err)

	err = svc.DeleteMessage(ctx, chatID, m.ID, uuid.New())
	req.Error(err)
	req.Equal(apperrors.KindForbidden, apperrors.KindOf(err))

	req.NoError(svc.DeleteMessage(ctx, chatID, m.ID, sender))

	remaining, err := svc.GetMessages(ctx, chatID)
	req.NoError(err)
	req.Empty(remaining)
}

func TestGetMessagesByUser(t *testing.T) {
	req := require.New(t)
	svc := NewMessageService(newFakeMessageRepo(), &capturingPublisher{}, nil)
	ctx := context.Background()
	chatID := uuid.New()
	alice := uuid.New()
	bob := uuid.New()

	_, err := svc.AddMessage(ctx, AddMessageInput{ChatID: chatID, SenderID: alice, Text: "one"})
	req.NoError(err)
	_, err = svc.AddMessage(ctx, AddMessageInput{ChatID: chatID, SenderID: bob, Text: "two"})
	req.NoError(err)

	mine, err := svc.GetMessagesByUser(ctx, chatID, alice)
	req.NoError(err)
	req.Len(mine, 1)
	req.Equal("one", mine[0].Text)
}
