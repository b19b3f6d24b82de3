package notification

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/a0l6g0r8a9l2/investHelperBE/internal/model"
	"github.com/a0l6g0r8a9l2/investHelperBE/internal/rabbitmq/queue"
)

// Format renders the user-facing text for one status message.
func Format(msg queue.StatusMessage) string {
	switch msg.State {
	case model.StateDone:
		text := fmt.Sprintf(
			"Target price %s for %s has been reached!\nIt is time to %s",
			formatPrice(msg.TargetPrice, msg.CurrentPrice), msg.Ticker,
			strings.ToLower(string(msg.Action)),
		)
		if msg.Event != "" {
			text += fmt.Sprintf("\nEvent: %s", msg.Event)
		}
		return text
	case model.StateDisabled:
		return fmt.Sprintf(
			"Notification time is over for id: %s!\nTicker: %s\nTarget price: %s",
			msg.ID, msg.Ticker, formatPrice(msg.TargetPrice, msg.CurrentPrice),
		)
	default:
		return fmt.Sprintf(
			"Watching %s: you will be notified when the price reaches %s.\nCurrent price: %s",
			msg.Ticker,
			formatPrice(msg.TargetPrice, msg.CurrentPrice),
			formatPrice(msg.CurrentPrice.Value, msg.CurrentPrice),
		)
	}
}

// formatPrice renders a value with the currency symbol of the quote the
// message carries, when one is known.
func formatPrice(value float64, quote model.Amount) string {
	text := strconv.FormatFloat(value, 'f', -1, 64)

	switch {
	case quote.CurrencySymbol != "":
		return text + " " + quote.CurrencySymbol
	case quote.Currency != "":
		return text + " " + quote.Currency
	default:
		return text
	}
}
