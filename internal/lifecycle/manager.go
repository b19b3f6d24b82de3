package lifecycle

import (
	"context"
	"sync"
	"time"

	"github.com/a0l6g0r8a9l2/investHelperBE/internal/model"
)

// Manager launches lifecycles and drains them on shutdown. It keeps no
// registry of live instances, since the cache is the sole source of
// truth for a notification's existence. A WaitGroup is enough for the
// process to let in-flight jobs finish before exiting.
type Manager struct {
	ctx     context.Context
	prices  priceProvider
	records recordStore
	out     statusPublisher

	newScheduler func() jobScheduler
	now          func() time.Time

	wg sync.WaitGroup
}

// NewManager creates a lifecycle manager bound to the process context;
// when ctx is cancelled every running lifecycle halts its scheduler
// without firing a transition.
func NewManager(ctx context.Context, prices priceProvider, records recordStore, out statusPublisher) *Manager {
	return &Manager{
		ctx:          ctx,
		prices:       prices,
		records:      records,
		out:          out,
		newScheduler: newCronScheduler,
		now:          time.Now,
	}
}

// Launch creates the lifecycle owning n and starts it, returning the
// state the start guard settled on. Exactly one lifecycle instance per
// notification id exists in-process: the registry is the only caller
// and calls Launch once per created record.
func (m *Manager) Launch(n model.Notification) model.State {
	lc := &Lifecycle{
		fsm:     newMachine(n.State),
		rec:     n,
		prices:  m.prices,
		records: m.records,
		out:     m.out,
		sched:   m.newScheduler(),
		ctx:     m.ctx,
		now:     m.now,
		done:    make(chan struct{}),
		onStop:  m.wg.Done,
	}

	m.wg.Add(1)
	state := lc.Start()

	if state != model.StateInProgress {
		// nothing scheduled; release immediately
		lc.halt()
		return state
	}

	go func() {
		select {
		case <-m.ctx.Done():
			lc.halt()
		case <-lc.done:
		}
	}()

	return state
}

// Wait blocks until every launched lifecycle has halted its scheduler.
func (m *Manager) Wait() {
	m.wg.Wait()
}
