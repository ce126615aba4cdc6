package events

import (
	"context"
	"fmt"
	"time"

	"github.com/ThreeDotsLabs/watermill/message"

	"github.com/ghuser/wardrobe/pkg/logger"
)

// defaultRetry waits 1s then 2s between three attempts.
var defaultRetry = retryPolicy{attempts: 3, baseDelay: time.Second}

// retryPolicy reruns a failed handler with doubling delays.
type retryPolicy struct {
	attempts  int
	baseDelay time.Duration
}

// run returns nil on the first successful attempt, ctx.Err() if ctx ends
// while waiting, or the last handler error.
func (p retryPolicy) run(ctx context.Context, msg *message.Message, handler Handler, log logger.Logger) error {
	delay := p.baseDelay
	var err error
	for attempt := 1; ; attempt++ {
		if err = invoke(ctx, msg, handler); err == nil {
			return nil
		}
		if attempt >= p.attempts {
			return fmt.Errorf("events: handler failed after %d attempts: %w", p.attempts, err)
		}
		log.WarnContext(ctx, "events: handler failed, retrying",
			"message_uuid", msg.UUID,
			"attempt", attempt,
			"next_delay", delay,
			"error", err,
		)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
		delay *= 2
	}
}

// invoke turns a handler panic into an error so the message is nacked instead
// of taking the consumer goroutine down.
func invoke(ctx context.Context, msg *message.Message, handler Handler) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("handler panic: %v", r)
		}
	}()
	return handler(ctx, msg)
}
