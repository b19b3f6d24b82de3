// Package lifecycle drives a single notification from creation to a
// terminal state: an explicit state machine coupled to a recurring
// polling scheduler, with the shared cache as the only coordination
// point between the lifecycle and the outside world.
package lifecycle

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/zlog"

	"github.com/a0l6g0r8a9l2/investHelperBE/internal/model"
	notifrepo "github.com/a0l6g0r8a9l2/investHelperBE/internal/repository/notification"
)

// opTimeout bounds every cache and upstream call made from a tick, and
// the fire-and-forget status publishes.
const opTimeout = 5 * time.Second

type priceProvider interface {
	Actual(ctx context.Context, ticker string, cadence time.Duration) (model.Amount, error)
}

type recordStore interface {
	Save(ctx context.Context, n model.Notification, ttl time.Duration) error
	Get(ctx context.Context, chatID string, id uuid.UUID) (model.Notification, error)
	Delete(ctx context.Context, chatID string, id uuid.UUID) error
}

type statusPublisher interface {
	Send(ctx context.Context, n model.Notification, state model.State) error
}

// Lifecycle owns one notification record. All mutation of the record and
// its state happens under mu, so the per-tick checks, an explicit Stop
// and a shutdown halt can race safely: the transition table lets only
// the first terminal transition win.
type Lifecycle struct {
	mu  sync.Mutex
	fsm *machine
	rec model.Notification

	prices  priceProvider
	records recordStore
	out     statusPublisher
	sched   jobScheduler

	ctx    context.Context  // process-scoped; bounds all job I/O
	now    func() time.Time // injected for tests
	halted bool
	done   chan struct{} // closed when the scheduler is halted
	onStop func()
}

// Start applies the start guard and, when it passes, transitions to
// in_progress and begins polling. A notification already past its
// deadline is disabled immediately; one whose target is already met is
// refused and stays new. The resulting state is returned.
func (l *Lifecycle) Start() model.State {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.rec.IsExpired(l.now()) {
		if l.fsm.fire(triggerStop) {
			l.finishLocked(model.StateDisabled)
		}
		return l.fsm.state()
	}

	if l.hasPrice() && l.rec.TargetReached() {
		zlog.Logger.Info().Str("id", l.rec.ID.String()).Msg("target already met at creation, not starting")
		return l.fsm.state()
	}

	if !l.fsm.fire(triggerStart) {
		return l.fsm.state()
	}

	l.rec.State = model.StateInProgress
	l.persistLocked()
	l.publishAsync(l.rec, model.StateInProgress)
	l.sched.Every(l.rec.DelayDuration(), l.tick)

	zlog.Logger.Info().
		Str("id", l.rec.ID.String()).
		Str("ticker", l.rec.Ticker).
		Int("delay", l.rec.Delay).
		Msg("notification polling started")

	return model.StateInProgress
}

// Stop is the explicit cancellation path.
func (l *Lifecycle) Stop() {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.fsm.fire(triggerStop) {
		l.finishLocked(model.StateDisabled)
	}
}

// State returns the current lifecycle state.
func (l *Lifecycle) State() model.State {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.fsm.state()
}

// tick runs one polling round: refresh the price, then the done-check,
// then the expiry-check. A record that is simultaneously done and
// expired must resolve to done, so the done-check runs first.
func (l *Lifecycle) tick() {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.halted || l.fsm.state().Terminal() {
		return
	}

	l.refreshPriceLocked()

	if l.checkDoneLocked() {
		return
	}

	l.checkExpiryLocked()
}

// refreshPriceLocked updates the record's current price and persists it.
// An upstream failure keeps the previous price in place; the next tick
// retries.
func (l *Lifecycle) refreshPriceLocked() {
	ctx, cancel := context.WithTimeout(l.ctx, opTimeout)
	defer cancel()

	amount, err := l.prices.Actual(ctx, l.rec.Ticker, l.rec.DelayDuration())
	if err != nil {
		zlog.Logger.Warn().Err(err).
			Str("id", l.rec.ID.String()).
			Str("ticker", l.rec.Ticker).
			Msg("price refresh failed, keeping previous price")
		return
	}

	l.rec.CurrentPrice = amount
	l.persistLocked()
}

// checkDoneLocked fires to_done when the target condition is satisfied.
// Its return value tells the tick to stop before the expiry-check.
func (l *Lifecycle) checkDoneLocked() bool {
	if !l.hasPrice() || !l.rec.TargetReached() {
		return false
	}

	if l.fsm.fire(triggerDone) {
		zlog.Logger.Info().
			Str("id", l.rec.ID.String()).
			Float64("target", l.rec.TargetPrice).
			Float64("current", l.rec.CurrentPrice.Value).
			Msg("target price reached")
		l.finishLocked(model.StateDone)
	}

	return true
}

// checkExpiryLocked fires to_expired when the deadline has passed or the
// cached record has vanished. A vanished record is how an external
// caller cancels a notification.
func (l *Lifecycle) checkExpiryLocked() {
	expired := l.rec.IsExpired(l.now())

	if !expired {
		ctx, cancel := context.WithTimeout(l.ctx, opTimeout)
		_, err := l.records.Get(ctx, l.rec.ChatID, l.rec.ID)
		cancel()

		switch {
		case err == nil:
		case errors.Is(err, notifrepo.ErrNotificationNotFound), errors.Is(err, notifrepo.ErrBadRecord):
			zlog.Logger.Info().Str("id", l.rec.ID.String()).Msg("cached record gone, treating as cancelled")
			expired = true
		default:
			// transient cache failure; the next tick re-checks
			zlog.Logger.Warn().Err(err).Str("id", l.rec.ID.String()).Msg("existence check failed")
			return
		}
	}

	if expired && l.fsm.fire(triggerExpired) {
		zlog.Logger.Info().Str("id", l.rec.ID.String()).Msg("notification expired")
		l.finishLocked(model.StateDisabled)
	}
}

// finishLocked handles entry into a terminal state: cancel the scheduled
// jobs, publish the outcome and drop the cached record.
func (l *Lifecycle) finishLocked(state model.State) {
	l.rec.State = state
	l.haltLocked()
	l.publishAsync(l.rec, state)

	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()
	if err := l.records.Delete(ctx, l.rec.ChatID, l.rec.ID); err != nil {
		zlog.Logger.Warn().Err(err).Str("id", l.rec.ID.String()).Msg("failed to delete terminal record")
	}
}

// haltLocked shuts the scheduler down exactly once. It is also the
// shutdown path, where no transition is fired: process shutdown is not
// cancellation.
func (l *Lifecycle) haltLocked() {
	if l.halted {
		return
	}
	l.halted = true

	l.sched.Stop()
	close(l.done)
	if l.onStop != nil {
		l.onStop()
	}
}

func (l *Lifecycle) halt() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.haltLocked()
}

func (l *Lifecycle) persistLocked() {
	ttl := l.rec.RemainingTTL(l.now())
	if ttl <= 0 {
		return
	}

	ctx, cancel := context.WithTimeout(l.ctx, opTimeout)
	defer cancel()
	if err := l.records.Save(ctx, l.rec, ttl); err != nil {
		zlog.Logger.Warn().Err(err).Str("id", l.rec.ID.String()).Msg("failed to persist record")
	}
}

// publishAsync publishes a status message without blocking the caller.
// A failure is logged only: delivery is at-least-once and must never
// roll back a state transition.
func (l *Lifecycle) publishAsync(rec model.Notification, state model.State) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
		defer cancel()

		if err := l.out.Send(ctx, rec, state); err != nil {
			zlog.Logger.Error().Err(err).
				Str("id", rec.ID.String()).
				Str("state", string(state)).
				Msg("failed to publish status message")
		}
	}()
}

// hasPrice reports whether the record carries a real observation; the
// done-condition is never evaluated against the zero value.
func (l *Lifecycle) hasPrice() bool {
	return l.rec.CurrentPrice.Currency != ""
}
