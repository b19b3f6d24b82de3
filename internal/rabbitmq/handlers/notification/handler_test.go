package notification

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/wb-go/wbf/retry"

	mocks "github.com/a0l6g0r8a9l2/investHelperBE/internal/mocks/rabbitmq/handlers/notification"
	"github.com/a0l6g0r8a9l2/investHelperBE/internal/model"
	"github.com/a0l6g0r8a9l2/investHelperBE/internal/rabbitmq/queue"
)

func doneMessage() queue.StatusMessage {
	return queue.StatusMessage{
		ID:          uuid.New(),
		ChatID:      "123456789",
		Ticker:      "MOEX",
		Action:      model.ActionBuy,
		TargetPrice: 100,
		CurrentPrice: model.Amount{
			Value:          98.5,
			Currency:       "RUB",
			CurrencySymbol: "₽",
		},
		State:  model.StateDone,
		Event:  "quarterly report",
		SentAt: time.Now(),
	}
}

func TestHandler_HandleMessage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	senderMock := mocks.NewMockchannelSender(ctrl)
	h := NewHandler(senderMock, []string{"telegram"}, "")

	msg := doneMessage()
	strategy := retry.Strategy{Attempts: 3, Delay: time.Millisecond, Backoff: 2}

	senderMock.EXPECT().
		Send("123456789", gomock.Any(), "telegram").
		DoAndReturn(func(_, text, _ string) error {
			assert.Contains(t, text, "MOEX")
			assert.Contains(t, text, "has been reached")
			return nil
		})

	h.HandleMessage(context.Background(), msg, strategy)
}

func TestHandler_HandleMessage_RetriesThenSucceeds(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	senderMock := mocks.NewMockchannelSender(ctrl)
	h := NewHandler(senderMock, []string{"telegram"}, "")

	msg := doneMessage()
	strategy := retry.Strategy{Attempts: 3, Delay: time.Millisecond, Backoff: 2}

	gomock.InOrder(
		senderMock.EXPECT().Send("123456789", gomock.Any(), "telegram").Return(errors.New("flaky")),
		senderMock.EXPECT().Send("123456789", gomock.Any(), "telegram").Return(nil),
	)

	h.HandleMessage(context.Background(), msg, strategy)
}

func TestHandler_HandleMessage_GivesUpAfterAttempts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	senderMock := mocks.NewMockchannelSender(ctrl)
	h := NewHandler(senderMock, []string{"telegram"}, "")

	msg := doneMessage()
	strategy := retry.Strategy{Attempts: 2, Delay: time.Millisecond, Backoff: 2}

	senderMock.EXPECT().
		Send("123456789", gomock.Any(), "telegram").
		Return(errors.New("down")).
		Times(2)

	h.HandleMessage(context.Background(), msg, strategy)
}

func TestHandler_HandleMessage_EmailWithoutRecipientSkipped(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	senderMock := mocks.NewMockchannelSender(ctrl)
	h := NewHandler(senderMock, []string{"email", "telegram"}, "")

	msg := doneMessage()
	strategy := retry.Strategy{Attempts: 1, Delay: time.Millisecond, Backoff: 2}

	// only telegram goes out, the email channel has no recipient configured
	senderMock.EXPECT().Send("123456789", gomock.Any(), "telegram").Return(nil)

	h.HandleMessage(context.Background(), msg, strategy)
}

func TestHandler_HandleMessage_CancelledContext(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	senderMock := mocks.NewMockchannelSender(ctrl)
	h := NewHandler(senderMock, []string{"telegram"}, "")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	h.HandleMessage(ctx, doneMessage(), retry.Strategy{Attempts: 3, Delay: time.Millisecond, Backoff: 2})
}

func TestFormat(t *testing.T) {
	msg := doneMessage()

	t.Run("done", func(t *testing.T) {
		text := Format(msg)
		assert.Contains(t, text, "Target price 100 ₽ for MOEX has been reached!")
		assert.Contains(t, text, "It is time to buy")
		assert.Contains(t, text, "Event: quarterly report")
	})

	t.Run("done without event", func(t *testing.T) {
		m := msg
		m.Event = ""
		assert.NotContains(t, Format(m), "Event:")
	})

	t.Run("disabled", func(t *testing.T) {
		m := msg
		m.State = model.StateDisabled
		text := Format(m)
		assert.Contains(t, text, "Notification time is over for id: "+m.ID.String())
		assert.Contains(t, text, "Ticker: MOEX")
		assert.Contains(t, text, "Target price: 100 ₽")
	})

	t.Run("in progress", func(t *testing.T) {
		m := msg
		m.State = model.StateInProgress
		text := Format(m)
		assert.True(t, strings.HasPrefix(text, "Watching MOEX"))
		assert.Contains(t, text, "Current price: 98.5 ₽")
	})

	t.Run("falls back to currency code", func(t *testing.T) {
		m := msg
		m.CurrentPrice.CurrencySymbol = ""
		assert.Contains(t, Format(m), "100 RUB")
	})
}
