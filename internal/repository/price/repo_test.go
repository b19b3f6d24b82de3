package price

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/a0l6g0r8a9l2/investHelperBE/internal/cache"
	"github.com/a0l6g0r8a9l2/investHelperBE/internal/model"
)

type fakeKV struct {
	values map[string]string
	ttls   map[string]time.Duration
}

func newFakeKV() *fakeKV {
	return &fakeKV{values: map[string]string{}, ttls: map[string]time.Duration{}}
}

func (f *fakeKV) Set(_ context.Context, key, value string, ttl time.Duration) error {
	f.values[key] = value
	f.ttls[key] = ttl
	return nil
}

func (f *fakeKV) Get(_ context.Context, key string) (string, error) {
	val, ok := f.values[key]
	if !ok {
		return "", cache.ErrMiss
	}
	return val, nil
}

func (f *fakeKV) TTL(_ context.Context, key string) (time.Duration, error) {
	ttl, ok := f.ttls[key]
	if !ok {
		return 0, cache.ErrMiss
	}
	return ttl, nil
}

func TestRepository_SaveGetTTL(t *testing.T) {
	kv := newFakeKV()
	repo := NewRepository(kv)
	ctx := context.Background()

	amount := model.Amount{Value: 127.5, Currency: "RUB", CurrencySymbol: "₽"}
	require.NoError(t, repo.Save(ctx, "MOEX", amount, 10*time.Second))

	got, err := repo.Get(ctx, "MOEX")
	require.NoError(t, err)
	assert.Equal(t, amount, got)

	ttl, err := repo.TTL(ctx, "MOEX")
	require.NoError(t, err)
	assert.Equal(t, 10*time.Second, ttl)
}

func TestRepository_Get_Missing(t *testing.T) {
	repo := NewRepository(newFakeKV())

	_, err := repo.Get(context.Background(), "GAZP")
	assert.ErrorIs(t, err, ErrSnapshotNotFound)

	_, err = repo.TTL(context.Background(), "GAZP")
	assert.ErrorIs(t, err, ErrSnapshotNotFound)
}
