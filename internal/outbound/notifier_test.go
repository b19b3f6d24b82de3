package outbound

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/retry"

	"github.com/a0l6g0r8a9l2/investHelperBE/internal/model"
	"github.com/a0l6g0r8a9l2/investHelperBE/internal/rabbitmq/queue"
)

type fakeQueue struct {
	published []queue.StatusMessage
	err       error
}

func (f *fakeQueue) Publish(msg queue.StatusMessage, _ retry.Strategy) error {
	if f.err != nil {
		return f.err
	}
	f.published = append(f.published, msg)
	return nil
}

func testRecord() model.Notification {
	return model.Notification{
		ID:           uuid.New(),
		ChatID:       "411442889",
		Ticker:       "MOEX",
		Action:       model.ActionBuy,
		TargetPrice:  100,
		Event:        "monthly low",
		CurrentPrice: model.Amount{Value: 98, Currency: "RUB", CurrencySymbol: "₽"},
	}
}

func TestSend_BuildsStatusMessage(t *testing.T) {
	q := &fakeQueue{}
	n := NewNotifier(q, retry.Strategy{})
	rec := testRecord()

	require.NoError(t, n.Send(context.Background(), rec, model.StateDone))

	require.Len(t, q.published, 1)
	msg := q.published[0]
	assert.Equal(t, rec.ID, msg.ID)
	assert.Equal(t, rec.ChatID, msg.ChatID)
	assert.Equal(t, rec.Ticker, msg.Ticker)
	assert.Equal(t, model.StateDone, msg.State)
	assert.Equal(t, rec.CurrentPrice, msg.CurrentPrice)
	assert.Equal(t, "monthly low", msg.Event)
	assert.WithinDuration(t, time.Now(), msg.SentAt, time.Second)
}

func TestSend_PublishError(t *testing.T) {
	q := &fakeQueue{err: errors.New("broker down")}
	n := NewNotifier(q, retry.Strategy{})

	err := n.Send(context.Background(), testRecord(), model.StateDone)
	assert.Error(t, err)
}

func TestSend_CancelledContext(t *testing.T) {
	q := &fakeQueue{}
	n := NewNotifier(q, retry.Strategy{})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := n.Send(ctx, testRecord(), model.StateDone)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, q.published)
}
