// Package outbound turns a lifecycle transition into a status message on
// the notification queue. Delivery to the user happens in the worker
// consuming that queue.
package outbound

import (
	"context"
	"fmt"
	"time"

	"github.com/wb-go/wbf/retry"

	"github.com/a0l6g0r8a9l2/investHelperBE/internal/model"
	"github.com/a0l6g0r8a9l2/investHelperBE/internal/rabbitmq/queue"
)

type statusQueue interface {
	Publish(msg queue.StatusMessage, strategy retry.Strategy) error
}

// Notifier publishes lifecycle status messages.
type Notifier struct {
	queue    statusQueue
	strategy retry.Strategy
}

func NewNotifier(q statusQueue, strategy retry.Strategy) *Notifier {
	return &Notifier{queue: q, strategy: strategy}
}

// Send builds the status message for the record's transition into state
// and publishes it under the record's owning chat. The context is
// accepted for symmetry with the rest of the I/O surface; the underlying
// publish is bounded by the retry strategy.
func (n *Notifier) Send(ctx context.Context, rec model.Notification, state model.State) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	msg := queue.StatusMessage{
		ID:           rec.ID,
		ChatID:       rec.ChatID,
		Ticker:       rec.Ticker,
		Action:       rec.Action,
		TargetPrice:  rec.TargetPrice,
		CurrentPrice: rec.CurrentPrice,
		State:        state,
		Event:        rec.Event,
		SentAt:       time.Now(),
	}

	if err := n.queue.Publish(msg, n.strategy); err != nil {
		return fmt.Errorf("publish status for %s: %w", rec.ID, err)
	}

	return nil
}
