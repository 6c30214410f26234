package websocket

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"chat-platform/internal/services"
	"chat-platform/internal/transport/httpdto"
	"chat-platform/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

const readDeadline = 60 * time.Second

// Frame is the wire format for both directions. The client sends
// join/leave/send; the server replies with history/message/error.
type Frame struct {
	Type     string          `json:"type"`
	ChatID   uuid.UUID       `json:"chatId,omitempty"`
	Text     string          `json:"text,omitempty"`
	Message  string          `json:"message,omitempty"`
	Messages json.RawMessage `json:"messages,omitempty"`
}

type Handler struct {
	tokens   *services.TokenManager
	chats    *services.ChatService
	messages *services.MessageService
	hub      *Hub
	log      *logger.Logger
}

func NewHandler(tokens *services.TokenManager, chats *services.ChatService, messages *services.MessageService, hub *Hub, log *logger.Logger) *Handler {
	return &Handler{tokens: tokens, chats: chats, messages: messages, hub: hub, log: log}
}

// Connect upgrades the request and runs the read loop until the peer
// disconnects. The token travels in the query string because browsers
// cannot set headers on WebSocket dials.
func (h *Handler) Connect(c *gin.Context) {
	claims, err := h.tokens.ParseAccessToken(c.Query("token"))
	if err != nil {
		c.JSON(http.StatusUnauthorized, httpdto.Failure("unauthorized"))
		return
	}

	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		c.JSON(http.StatusUnauthorized, httpdto.Failure("unauthorized"))
		return
	}

	upgrader := websocket.Upgrader{
		CheckOrigin: func(r *http.Request) bool { return true },
	}
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}

	client := NewClient(conn, userID, claims.Name)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	h.hub.Register(client)
	go client.WriteLoop(ctx)

	_ = conn.SetReadDeadline(time.Now().Add(readDeadline))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(readDeadline))
	})

	for {
		_, raw, err := conn.ReadMessage()
		if err != nil {
			break
		}
		_ = conn.SetReadDeadline(time.Now().Add(readDeadline))

		var frame Frame
		if err := json.Unmarshal(raw, &frame); err != nil {
			client.SendMessage(errorFrame("malformed frame"))
			continue
		}
		h.handleFrame(ctx, client, frame)
	}

	h.hub.Unregister(client)
}

func (h *Handler) handleFrame(ctx context.Context, client *Client, frame Frame) {
	switch frame.Type {
	case "join":
		h.handleJoin(ctx, client, frame.ChatID)
	case "leave":
		h.hub.Unsubscribe(client, services.ChatChannel(frame.ChatID))
	case "send":
		h.handleSend(ctx, client, frame)
	default:
		client.SendMessage(errorFrame("unknown frame type"))
	}
}

// handleJoin gates the subscription on chat membership, then replays the
// chat's history to the joining connection.
func (h *Handler) handleJoin(ctx context.Context, client *Client, chatID uuid.UUID) {
	chat, err := h.chats.GetChatByID(ctx, chatID)
	if err != nil {
		client.SendMessage(errorFrame("Chat not found"))
		return
	}
	if !chat.HasMember(client.UserID) {
		client.SendMessage(errorFrame("You are not a member of this chat"))
		return
	}

	h.hub.Subscribe(client, services.ChatChannel(chatID))

	history, err := h.messages.GetMessages(ctx, chatID)
	if err != nil {
		if h.log != nil {
			h.log.Warnf("history replay for chat %s failed: %s", chatID, err)
		}
		return
	}

	payload, err := json.Marshal(history)
	if err != nil {
		return
	}
	out, err := json.Marshal(Frame{Type: "history", ChatID: chatID, Messages: payload})
	if err != nil {
		return
	}
	client.SendMessage(out)
}

// handleSend persists the message; broadcast rides on the redis channel,
// so the sender sees its own message come back through the bridge.
func (h *Handler) handleSend(ctx context.Context, client *Client, frame Frame) {
	if !client.IsSubscribed(services.ChatChannel(frame.ChatID)) {
		client.SendMessage(errorFrame("join the chat before sending"))
		return
	}

	_, err := h.messages.AddMessage(ctx, services.AddMessageInput{
		ChatID:   frame.ChatID,
		SenderID: client.UserID,
		UserName: client.UserName,
		Text:     frame.Text,
	})
	if err != nil {
		client.SendMessage(errorFrame("failed to send message"))
	}
}

func errorFrame(message string) []byte {
	out, _ := json.Marshal(Frame{Type: "error", Message: message})
	return out
}
