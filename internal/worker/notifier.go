// Package worker runs the pool that drains the status queue and hands
// each message to the delivery handler.
package worker

import (
	"context"

	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/a0l6g0r8a9l2/investHelperBE/internal/rabbitmq/queue"
)

//go:generate mockgen -source=notifier.go -destination=../mocks/worker/mock.go -package=mocks
type statusConsumer interface {
	Consume(out chan<- queue.StatusMessage, strategy retry.Strategy) error
}

type messageHandler interface {
	HandleMessage(ctx context.Context, msg queue.StatusMessage, strategy retry.Strategy)
}

type Notifier struct {
	queue   statusConsumer
	handler messageHandler
}

func NewNotifier(q statusConsumer, h messageHandler) *Notifier {
	return &Notifier{
		queue:   q,
		handler: h,
	}
}

// Run consumes status messages and fans them out to workerCount
// goroutines. It blocks until ctx is cancelled.
func (n *Notifier) Run(ctx context.Context, strategy retry.Strategy, workerCount int) {
	msgChan := make(chan queue.StatusMessage)

	go func() {
		if err := n.queue.Consume(msgChan, strategy); err != nil {
			zlog.Logger.Fatal().Err(err).Msg("failed to consume messages")
		}
	}()

	for i := 0; i < workerCount; i++ {
		go func(id int) {
			zlog.Logger.Info().Int("worker", id).Msg("worker started")

			for {
				select {
				case <-ctx.Done():
					zlog.Logger.Info().Int("worker", id).Msg("worker shutting down")
					return
				case msg := <-msgChan:
					n.handler.HandleMessage(ctx, msg, strategy)
				}
			}
		}(i)
	}

	<-ctx.Done()
	zlog.Logger.Info().Msg("notifier stopped")
}
