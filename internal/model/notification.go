package model

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ErrValidation marks a notification that failed input validation.
// Handlers map it to a 4xx response.
var ErrValidation = errors.New("validation error")

// Action determines which side of the target price fires the notification.
type Action string

const (
	ActionBuy  Action = "Buy"  // fire when the price drops to the target or below
	ActionSell Action = "Sell" // fire when the price rises to the target or above
)

// State is the lifecycle state of a notification.
type State string

const (
	StateNew        State = "new"
	StateInProgress State = "in_progress"
	StateDone       State = "done"
	StateDisabled   State = "disabled"
)

// Terminal reports whether no further transitions are possible from s.
func (s State) Terminal() bool {
	return s == StateDone || s == StateDisabled
}

// Amount is a price observation: value plus currency information.
type Amount struct {
	Value          float64 `json:"value"`
	Currency       string  `json:"currency"`
	CurrencySymbol string  `json:"currencySymbol"`
}

func (a Amount) String() string {
	return fmt.Sprintf("%v %s", a.Value, a.CurrencySymbol)
}

// Validation bounds, mirrored by the API request validator.
const (
	MinDelaySeconds = 10
	MaxDelaySeconds = 86400

	MinTickerLen = 1
	MaxTickerLen = 5
	MinChatIDLen = 5
	MaxChatIDLen = 12
	MaxEventLen  = 100
)

// Notification represents one tracked price-watch request.
//
// The record is owned by exactly one lifecycle instance after creation;
// only that lifecycle mutates CurrentPrice and State. The cached copy is
// the source of truth for the record's existence: deleting it from the
// cache is how an external caller cancels the notification.
type Notification struct {
	ID              uuid.UUID `json:"id"`              // unique identifier, assigned at creation
	ChatID          string    `json:"chatId"`          // owning chat
	Ticker          string    `json:"ticker"`          // instrument symbol, 1-5 chars
	Action          Action    `json:"action"`          // Buy or Sell, comparison direction
	TargetPrice     float64   `json:"targetPrice"`     // positive target to watch for
	Event           string    `json:"event,omitempty"` // optional free-text label
	Delay           int       `json:"delay"`           // polling interval in seconds, [10, 86400]
	EndNotification time.Time `json:"endNotification"` // absolute expiry, immutable after creation
	CurrentPrice    Amount    `json:"currentPrice"`    // last observed price
	State           State     `json:"state"`
}

// Validate checks the creation invariants. All violations are reported
// as ErrValidation so the API layer can reject them before any state is
// created.
func (n Notification) Validate() error {
	if l := len(n.Ticker); l < MinTickerLen || l > MaxTickerLen {
		return fmt.Errorf("%w: ticker length must be between %d and %d", ErrValidation, MinTickerLen, MaxTickerLen)
	}
	if l := len(n.ChatID); l < MinChatIDLen || l > MaxChatIDLen {
		return fmt.Errorf("%w: chatId length must be between %d and %d", ErrValidation, MinChatIDLen, MaxChatIDLen)
	}
	if n.TargetPrice <= 0 {
		return fmt.Errorf("%w: targetPrice must be greater than zero", ErrValidation)
	}
	if n.Action != ActionBuy && n.Action != ActionSell {
		return fmt.Errorf("%w: action must be %q or %q", ErrValidation, ActionBuy, ActionSell)
	}
	if n.Delay < MinDelaySeconds || n.Delay > MaxDelaySeconds {
		return fmt.Errorf("%w: delay must be between %d and %d seconds", ErrValidation, MinDelaySeconds, MaxDelaySeconds)
	}
	if len(n.Event) > MaxEventLen {
		return fmt.Errorf("%w: event must not exceed %d characters", ErrValidation, MaxEventLen)
	}
	if !n.EndNotification.After(time.Now()) {
		return fmt.Errorf("%w: endNotification must be in the future", ErrValidation)
	}
	return nil
}

// DelayDuration returns the polling interval as a duration.
func (n Notification) DelayDuration() time.Duration {
	return time.Duration(n.Delay) * time.Second
}

// RemainingTTL returns the time left until EndNotification. A value of
// zero or less means the notification is already expired and callers
// must treat it as such.
func (n Notification) RemainingTTL(now time.Time) time.Duration {
	return n.EndNotification.Sub(now)
}

// IsExpired reports whether the expiry deadline has passed.
func (n Notification) IsExpired(now time.Time) bool {
	return !now.Before(n.EndNotification)
}

// TargetReached evaluates the done-condition against the last observed
// price: an exact match always satisfies it; Buy satisfies at or below
// the target, Sell at or above.
func (n Notification) TargetReached() bool {
	price := n.CurrentPrice.Value
	switch {
	case price == n.TargetPrice:
		return true
	case n.Action == ActionBuy && price <= n.TargetPrice:
		return true
	case n.Action == ActionSell && price >= n.TargetPrice:
		return true
	}
	return false
}
