package dto

import (
	"time"

	"github.com/a0l6g0r8a9l2/investHelperBE/internal/model"
)

const (
	defaultDelaySeconds = 60
	defaultLifetime     = 14 * 24 * time.Hour
)

// CreateRequest is the body of POST /api/notifications. Delay and
// endNotification are optional and fall back to a minute and two weeks.
type CreateRequest struct {
	ChatID          string     `json:"chatId" validate:"required,min=5,max=12"`
	Ticker          string     `json:"ticker" validate:"required,min=1,max=5"`
	Action          string     `json:"action" validate:"required,oneof=Buy Sell"`
	TargetPrice     float64    `json:"targetPrice" validate:"required,gt=0"`
	Event           string     `json:"event" validate:"omitempty,max=100"`
	Delay           int        `json:"delay" validate:"omitempty,min=10,max=86400"`
	EndNotification *time.Time `json:"endNotification" validate:"omitempty"`
}

// ToModel applies the defaults and converts to the domain record.
func (r CreateRequest) ToModel() model.Notification {
	delay := r.Delay
	if delay == 0 {
		delay = defaultDelaySeconds
	}

	end := time.Now().Add(defaultLifetime)
	if r.EndNotification != nil {
		end = *r.EndNotification
	}

	return model.Notification{
		ChatID:          r.ChatID,
		Ticker:          r.Ticker,
		Action:          model.Action(r.Action),
		TargetPrice:     r.TargetPrice,
		Event:           r.Event,
		Delay:           delay,
		EndNotification: end,
	}
}
