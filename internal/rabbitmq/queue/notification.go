// Package queue declares the RabbitMQ topology for notification status
// messages and wraps publishing and consuming over it.
package queue

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/rabbitmq"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/a0l6g0r8a9l2/investHelperBE/internal/model"
)

const (
	ExchangeName   = "stock-notify-exchange"
	MainQueueName  = "stock-notify-queue"
	RetryQueueName = "stock-notify-retry"
	DLQName        = "stock-notify-dlq"
	RoutingKey     = "stock-notify"
)

// StatusMessage is the wire format for one lifecycle transition. The
// consumer must be idempotent on (ID, State): delivery is at-least-once
// and duplicates are acceptable.
type StatusMessage struct {
	ID           uuid.UUID    `json:"id"`
	ChatID       string       `json:"chatId"`
	Ticker       string       `json:"ticker"`
	Action       model.Action `json:"action"`
	TargetPrice  float64      `json:"targetPrice"`
	CurrentPrice model.Amount `json:"currentPrice"`
	State        model.State  `json:"state"`
	Event        string       `json:"event,omitempty"`
	SentAt       time.Time    `json:"sentAt"`
}

// StatusQueue owns the publisher and consumer for status messages.
type StatusQueue struct {
	Publisher *rabbitmq.Publisher
	Consumer  *rabbitmq.Consumer
}

// NewStatusQueue declares the exchange, the main queue, a retry queue
// that dead-letters back into the main one, and the DLQ.
func NewStatusQueue(ch *rabbitmq.Channel) (*StatusQueue, error) {
	exchange := rabbitmq.NewExchange(ExchangeName, "direct")
	if err := exchange.BindToChannel(ch); err != nil {
		return nil, fmt.Errorf("failed to bind to exchange: %w", err)
	}

	qm := rabbitmq.NewQueueManager(ch)

	_, err := qm.DeclareQueue(DLQName, rabbitmq.QueueConfig{Durable: true})
	if err != nil {
		return nil, fmt.Errorf("failed to declare DLQ queue: %w", err)
	}

	retryArgs := map[string]interface{}{
		"x-dead-letter-exchange":    "",
		"x-dead-letter-routing-key": MainQueueName,
		"x-message-ttl":             int32(5000),
	}

	_, err = qm.DeclareQueue(RetryQueueName, rabbitmq.QueueConfig{
		Durable: true,
		Args:    retryArgs,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to declare retry queue: %w", err)
	}

	mainArgs := map[string]interface{}{
		"x-dead-letter-exchange":    "",
		"x-dead-letter-routing-key": DLQName,
	}

	mainQ, err := qm.DeclareQueue(MainQueueName, rabbitmq.QueueConfig{
		Durable: true,
		Args:    mainArgs,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to declare main queue: %w", err)
	}

	if err := ch.QueueBind(mainQ.Name, RoutingKey, exchange.Name(), false, nil); err != nil {
		return nil, fmt.Errorf("failed to bind the exchange to the main queue: %w", err)
	}

	pub := rabbitmq.NewPublisher(ch, exchange.Name())
	cons := rabbitmq.NewConsumer(ch, rabbitmq.NewConsumerConfig(mainQ.Name))

	return &StatusQueue{Publisher: pub, Consumer: cons}, nil
}

// Publish marshals the message and publishes it with the retry strategy.
func (q *StatusQueue) Publish(msg StatusMessage, strategy retry.Strategy) error {
	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	return q.Publisher.PublishWithRetry(body, RoutingKey, "application/json", strategy)
}

// Consume decodes incoming status messages onto out until the underlying
// consumer stops.
func (q *StatusQueue) Consume(out chan<- StatusMessage, strategy retry.Strategy) error {
	msgChan := make(chan []byte)

	go func() {
		for m := range msgChan {
			var msg StatusMessage
			if err := json.Unmarshal(m, &msg); err != nil {
				zlog.Logger.Error().Err(err).Msg("failed to unmarshal status message")
				continue
			}

			out <- msg
		}
	}()

	return q.Consumer.ConsumeWithRetry(msgChan, strategy)
}
