// Package price stores the shared per-ticker price snapshots. A snapshot
// is independent of any single notification: every lifecycle watching the
// same ticker reads the same key, which amortizes upstream calls.
package price

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/a0l6g0r8a9l2/investHelperBE/internal/cache"
	"github.com/a0l6g0r8a9l2/investHelperBE/internal/model"
)

// ErrSnapshotNotFound is returned when no live snapshot exists for a ticker.
var ErrSnapshotNotFound = errors.New("price snapshot not found")

// keyFor builds the cache key for a snapshot: stock:price:{ticker}.
func keyFor(ticker string) string {
	return fmt.Sprintf("stock:price:%s", ticker)
}

type kv interface {
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	Get(ctx context.Context, key string) (string, error)
	TTL(ctx context.Context, key string) (time.Duration, error)
}

// Repository stores price snapshots in the shared cache.
type Repository struct {
	kv kv
}

func NewRepository(kv kv) *Repository {
	return &Repository{kv: kv}
}

// Save writes the snapshot for ticker with the given TTL.
func (r *Repository) Save(ctx context.Context, ticker string, amount model.Amount, ttl time.Duration) error {
	body, err := json.Marshal(amount)
	if err != nil {
		return fmt.Errorf("marshal snapshot for %s: %w", ticker, err)
	}

	if err := r.kv.Set(ctx, keyFor(ticker), string(body), ttl); err != nil {
		return fmt.Errorf("save snapshot for %s: %w", ticker, err)
	}

	return nil
}

// Get returns the cached snapshot for ticker.
func (r *Repository) Get(ctx context.Context, ticker string) (model.Amount, error) {
	val, err := r.kv.Get(ctx, keyFor(ticker))
	if errors.Is(err, cache.ErrMiss) {
		return model.Amount{}, ErrSnapshotNotFound
	}
	if err != nil {
		return model.Amount{}, fmt.Errorf("get snapshot for %s: %w", ticker, err)
	}

	var amount model.Amount
	if err := json.Unmarshal([]byte(val), &amount); err != nil {
		return model.Amount{}, fmt.Errorf("unmarshal snapshot for %s: %w", ticker, err)
	}

	return amount, nil
}

// TTL returns the remaining lifetime of the snapshot for ticker, or
// ErrSnapshotNotFound when none exists.
func (r *Repository) TTL(ctx context.Context, ticker string) (time.Duration, error) {
	d, err := r.kv.TTL(ctx, keyFor(ticker))
	if errors.Is(err, cache.ErrMiss) {
		return 0, ErrSnapshotNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("snapshot ttl for %s: %w", ticker, err)
	}

	return d, nil
}
