package messaging

import (
	"context"
	"time"
)

// Noop discards every message.
type Noop struct{}

// NewNoop returns a publisher that accepts and drops messages.
func NewNoop() *Noop { return &Noop{} }

// Close implements io.Closer.
func (*Noop) Close() error { return nil }

// Publish drops the message and reports success.
func (*Noop) Publish(ctx context.Context, destination string, _ OutgoingMessage) (PublishResult, error) {
	if err := ctx.Err(); err != nil {
		return PublishResult{}, err
	}
	return PublishResult{Topic: destination, Timestamp: time.Now()}, nil
}
