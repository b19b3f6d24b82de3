package lifecycle

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/a0l6g0r8a9l2/investHelperBE/internal/model"
)

func TestManager_LaunchAndDrain(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	clock := &fakeClock{t: time.Now()}

	m := NewManager(ctx, &fakePrices{seq: []model.Amount{rub(110)}}, &fakeRecords{}, &fakePublisher{})
	m.now = clock.Now

	state := m.Launch(watchRecord(clock))
	require.Equal(t, model.StateInProgress, state)

	// shutdown: schedulers halt without firing a transition
	cancel()

	drained := make(chan struct{})
	go func() {
		m.Wait()
		close(drained)
	}()

	select {
	case <-drained:
	case <-time.After(2 * time.Second):
		t.Fatal("manager did not drain after context cancellation")
	}
}

func TestManager_LaunchRefused(t *testing.T) {
	clock := &fakeClock{t: time.Now()}

	m := NewManager(context.Background(), &fakePrices{seq: []model.Amount{rub(95)}}, &fakeRecords{}, &fakePublisher{})
	m.now = clock.Now

	rec := watchRecord(clock)
	rec.CurrentPrice = rub(95) // Buy @100 already satisfied

	state := m.Launch(rec)
	assert.Equal(t, model.StateNew, state)

	// nothing scheduled, so the manager drains immediately
	m.Wait()
}
