// Package notification turns consumed status messages into channel
// deliveries.
package notification

import (
	"context"
	"time"

	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/a0l6g0r8a9l2/investHelperBE/internal/rabbitmq/queue"
)

//go:generate mockgen -source=handler.go -destination=../../../mocks/rabbitmq/handlers/notification/mock.go -package=mocks
type channelSender interface {
	Send(to, message, channel string) error
}

// Handler delivers one status message over every configured channel.
// emailTo may be empty, in which case the email channel is skipped.
type Handler struct {
	sender   channelSender
	channels []string
	emailTo  string
}

func NewHandler(sender channelSender, channels []string, emailTo string) *Handler {
	return &Handler{
		sender:   sender,
		channels: channels,
		emailTo:  emailTo,
	}
}

// HandleMessage renders the message text and retries each channel up to
// strategy.Attempts times with exponential backoff. A message that still
// fails is left to the broker topology to dead-letter.
func (h *Handler) HandleMessage(ctx context.Context, msg queue.StatusMessage, strategy retry.Strategy) {
	text := Format(msg)

	for _, channel := range h.channels {
		to := h.recipient(msg, channel)
		if to == "" {
			continue
		}

		attempt := 0
		currentDelay := strategy.Delay

		for attempt < strategy.Attempts {
			if ctx.Err() != nil {
				return
			}

			err := h.sender.Send(to, text, channel)
			if err == nil {
				zlog.Logger.Info().
					Str("id", msg.ID.String()).
					Str("state", string(msg.State)).
					Str("channel", channel).
					Msg("status delivered")
				break
			}

			attempt++
			zlog.Logger.Warn().Err(err).
				Str("id", msg.ID.String()).
				Str("channel", channel).
				Int("attempt", attempt).
				Int("attempts", strategy.Attempts).
				Msg("delivery failed")

			if attempt < strategy.Attempts {
				time.Sleep(currentDelay)
				currentDelay = time.Duration(float64(currentDelay) * strategy.Backoff)
			}
		}

		if attempt == strategy.Attempts {
			zlog.Logger.Error().
				Str("id", msg.ID.String()).
				Str("channel", channel).
				Msg("delivery gave up, leaving message to dead-letter")
		}
	}
}

func (h *Handler) recipient(msg queue.StatusMessage, channel string) string {
	switch channel {
	case "telegram":
		return msg.ChatID
	case "email":
		return h.emailTo
	default:
		return ""
	}
}
