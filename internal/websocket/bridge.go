package websocket

import (
	"context"
	"encoding/json"
)

// Subscriber is the redis pattern-subscribe side of the pub/sub pair.
type Subscriber interface {
	Subscribe(ctx context.Context, patterns []string, handler func(channel string, payload []byte)) error
}

// RedisBridge fans messages published on chat channels out to the local
// hub, so every messaging instance delivers to its own connections.
type RedisBridge struct {
	subscriber Subscriber
	hub        *Hub
}

func NewRedisBridge(subscriber Subscriber, hub *Hub) *RedisBridge {
	return &RedisBridge{subscriber: subscriber, hub: hub}
}

// Run blocks until ctx is cancelled or the subscription fails.
func (b *RedisBridge) Run(ctx context.Context, patterns []string) error {
	return b.subscriber.Subscribe(ctx, patterns, func(channel string, payload []byte) {
		b.hub.Broadcast(channel, wrapMessage(payload))
	})
}

// wrapMessage puts the published message into the wire frame clients expect.
func wrapMessage(payload []byte) []byte {
	out, err := json.Marshal(Frame{Type: "message", Messages: json.RawMessage(payload)})
	if err != nil {
		return payload
	}
	return out
}
