package price

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/a0l6g0r8a9l2/investHelperBE/internal/model"
	"github.com/a0l6g0r8a9l2/investHelperBE/internal/repository/price"
)

type fakeSnapshots struct {
	amounts map[string]model.Amount
	ttls    map[string]time.Duration
	saves   int
}

func newFakeSnapshots() *fakeSnapshots {
	return &fakeSnapshots{amounts: map[string]model.Amount{}, ttls: map[string]time.Duration{}}
}

func (f *fakeSnapshots) Get(_ context.Context, ticker string) (model.Amount, error) {
	amount, ok := f.amounts[ticker]
	if !ok {
		return model.Amount{}, price.ErrSnapshotNotFound
	}
	return amount, nil
}

func (f *fakeSnapshots) TTL(_ context.Context, ticker string) (time.Duration, error) {
	ttl, ok := f.ttls[ticker]
	if !ok {
		return 0, price.ErrSnapshotNotFound
	}
	return ttl, nil
}

func (f *fakeSnapshots) Save(_ context.Context, ticker string, amount model.Amount, ttl time.Duration) error {
	f.amounts[ticker] = amount
	f.ttls[ticker] = ttl
	f.saves++
	return nil
}

func (f *fakeSnapshots) expire(ticker string) {
	delete(f.amounts, ticker)
	delete(f.ttls, ticker)
}

type countingFetcher struct {
	amount model.Amount
	err    error
	calls  int
}

func (c *countingFetcher) Fetch(_ context.Context, _ string) (model.Amount, error) {
	c.calls++
	if c.err != nil {
		return model.Amount{}, c.err
	}
	return c.amount, nil
}

func TestActual_FetchesWhenNoSnapshot(t *testing.T) {
	snapshots := newFakeSnapshots()
	fetcher := &countingFetcher{amount: model.Amount{Value: 105, Currency: "RUB"}}
	svc := NewService(snapshots, fetcher)

	amount, err := svc.Actual(context.Background(), "MOEX", 10*time.Second)
	require.NoError(t, err)
	assert.Equal(t, 105.0, amount.Value)
	assert.Equal(t, 1, fetcher.calls)
	// snapshot rewritten with the caller's cadence as TTL
	assert.Equal(t, 10*time.Second, snapshots.ttls["MOEX"])
}

// Two notifications on the same ticker, delays 10s and 30s: a snapshot
// that still covers a caller's cadence is reused, one that would expire
// before the caller's next poll is re-fetched.
func TestActual_SharedSnapshotAcrossCadences(t *testing.T) {
	snapshots := newFakeSnapshots()
	fetcher := &countingFetcher{amount: model.Amount{Value: 105, Currency: "RUB"}}
	svc := NewService(snapshots, fetcher)
	ctx := context.Background()

	// the 30s notification ticks first and refreshes
	_, err := svc.Actual(ctx, "MOEX", 30*time.Second)
	require.NoError(t, err)
	require.Equal(t, 1, fetcher.calls)

	// the 10s notification ticks within the snapshot's window: reuse
	amount, err := svc.Actual(ctx, "MOEX", 10*time.Second)
	require.NoError(t, err)
	assert.Equal(t, 105.0, amount.Value)
	assert.Equal(t, 1, fetcher.calls, "live snapshot must be reused, not re-fetched")

	// the snapshot's remaining TTL drops below the 30s cadence: the
	// longer-cadence caller may not ride a snapshot that expires before
	// its next poll, so it refreshes and takes over the TTL
	snapshots.ttls["MOEX"] = 10 * time.Second
	_, err = svc.Actual(ctx, "MOEX", 30*time.Second)
	require.NoError(t, err)
	assert.Equal(t, 2, fetcher.calls)
	assert.Equal(t, 30*time.Second, snapshots.ttls["MOEX"])

	// snapshot expires entirely; the next tick goes upstream again
	snapshots.expire("MOEX")
	_, err = svc.Actual(ctx, "MOEX", 10*time.Second)
	require.NoError(t, err)
	assert.Equal(t, 3, fetcher.calls)
}

func TestActual_StaleSnapshotRefetched(t *testing.T) {
	snapshots := newFakeSnapshots()
	snapshots.amounts["MOEX"] = model.Amount{Value: 105, Currency: "RUB"}
	snapshots.ttls["MOEX"] = 3 * time.Second

	fetcher := &countingFetcher{amount: model.Amount{Value: 98, Currency: "RUB"}}
	svc := NewService(snapshots, fetcher)

	// remaining TTL 3s < cadence 10s: the cached value may be stale for
	// this caller and must not be returned
	amount, err := svc.Actual(context.Background(), "MOEX", 10*time.Second)
	require.NoError(t, err)
	assert.Equal(t, 1, fetcher.calls)
	assert.Equal(t, 98.0, amount.Value)
	assert.Equal(t, 10*time.Second, snapshots.ttls["MOEX"])
}

func TestActual_UpstreamError(t *testing.T) {
	snapshots := newFakeSnapshots()
	upstream := errors.New("connection refused")
	fetcher := &countingFetcher{err: upstream}
	svc := NewService(snapshots, fetcher)

	_, err := svc.Actual(context.Background(), "MOEX", 10*time.Second)
	require.Error(t, err)
	assert.ErrorIs(t, err, upstream)
	assert.Zero(t, snapshots.saves)
}
