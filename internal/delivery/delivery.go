// Package delivery routes rendered notification texts to the channel
// clients that can carry them.
package delivery

import (
	"fmt"
)

// Notifier delivers a message to a recipient over one channel.
type Notifier interface {
	Send(to, message string) error
}

//go:generate mockgen -source=delivery.go -destination=../mocks/delivery/mock.go -package=mocks

// Sender holds the configured channel clients keyed by channel name,
// e.g. "telegram" or "email".
type Sender struct {
	notifiers map[string]Notifier
}

func NewSender(notifiers map[string]Notifier) *Sender {
	return &Sender{notifiers: notifiers}
}

// Send delivers message to the recipient over the named channel.
func (s *Sender) Send(to, message, channel string) error {
	notifier, ok := s.notifiers[channel]
	if !ok {
		return fmt.Errorf("unknown channel: %s", channel)
	}

	if err := notifier.Send(to, message); err != nil {
		return fmt.Errorf("send via %s: %w", channel, err)
	}

	return nil
}
