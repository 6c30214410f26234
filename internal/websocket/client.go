package websocket

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

const (
	writeWait  = 10 * time.Second
	pingPeriod = 30 * time.Second
)

// Client is one WebSocket connection for an authenticated user.
type Client struct {
	ID       string
	UserID   uuid.UUID
	UserName string
	Conn     *websocket.Conn
	Send     chan []byte

	mu       sync.RWMutex
	channels map[string]struct{}
}

func NewClient(conn *websocket.Conn, userID uuid.UUID, userName string) *Client {
	return &Client{
		ID:       uuid.New().String(),
		UserID:   userID,
		UserName: userName,
		Conn:     conn,
		Send:     make(chan []byte, 256),
		channels: make(map[string]struct{}),
	}
}

func (c *Client) subscribe(channel string) {
	c.mu.Lock()
	c.channels[channel] = struct{}{}
	c.mu.Unlock()
}

func (c *Client) unsubscribe(channel string) {
	c.mu.Lock()
	delete(c.channels, channel)
	c.mu.Unlock()
}

func (c *Client) IsSubscribed(channel string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.channels[channel]
	return ok
}

// Channels returns a snapshot of the client's subscriptions.
func (c *Client) Channels() map[string]struct{} {
	c.mu.RLock()
	defer c.mu.RUnlock()
	snapshot := make(map[string]struct{}, len(c.channels))
	for ch := range c.channels {
		snapshot[ch] = struct{}{}
	}
	return snapshot
}

// WriteLoop drains the Send channel onto the connection and keeps the
// connection alive with pings. Exits when Send is closed or ctx is done.
func (c *Client) WriteLoop(ctx context.Context) {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			_ = c.Conn.Close()
			return
		case msg, ok := <-c.Send:
			if !ok {
				_ = c.Conn.Close()
				return
			}
			_ = c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.Conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}
		case <-ticker.C:
			_ = c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// SendMessage queues a payload without blocking; a slow consumer drops
// messages instead of stalling the hub.
func (c *Client) SendMessage(msg []byte) {
	select {
	case c.Send <- msg:
	default:
	}
}
