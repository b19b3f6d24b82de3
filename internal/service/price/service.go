// Package price implements the price refresh policy shared by all
// lifecycles: consult the cached per-ticker snapshot first and only go
// upstream when the snapshot is missing or too stale for the caller.
package price

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/wb-go/wbf/zlog"

	"github.com/a0l6g0r8a9l2/investHelperBE/internal/model"
	"github.com/a0l6g0r8a9l2/investHelperBE/internal/repository/price"
)

type snapshotStore interface {
	Get(ctx context.Context, ticker string) (model.Amount, error)
	TTL(ctx context.Context, ticker string) (time.Duration, error)
	Save(ctx context.Context, ticker string, amount model.Amount, ttl time.Duration) error
}

type quoteFetcher interface {
	Fetch(ctx context.Context, ticker string) (model.Amount, error)
}

// Service resolves the actual price for a ticker.
type Service struct {
	snapshots snapshotStore
	quotes    quoteFetcher
}

func NewService(snapshots snapshotStore, quotes quoteFetcher) *Service {
	return &Service{snapshots: snapshots, quotes: quotes}
}

// Actual returns the current price for ticker as seen by a notification
// polling at the given cadence.
//
// A snapshot is reused only while its remaining TTL covers the caller's
// cadence: a caller must never see a price older than one of its own
// polling intervals. When the snapshot is absent, or will expire before
// the caller polls again, this call goes upstream and rewrites the
// snapshot with its own cadence as the TTL. The notification with the
// shortest delay on a ticker therefore refreshes most often and keeps
// the snapshot TTL at the shortest active cadence.
func (s *Service) Actual(ctx context.Context, ticker string, cadence time.Duration) (model.Amount, error) {
	if ttl, err := s.snapshots.TTL(ctx, ticker); err == nil && ttl >= cadence {
		amount, err := s.snapshots.Get(ctx, ticker)
		if err == nil {
			return amount, nil
		}
		if !errors.Is(err, price.ErrSnapshotNotFound) {
			zlog.Logger.Warn().Err(err).Str("ticker", ticker).Msg("failed to read price snapshot")
		}
		// expired between the TTL check and the read; fall through
	}

	amount, err := s.quotes.Fetch(ctx, ticker)
	if err != nil {
		return model.Amount{}, fmt.Errorf("fetch price for %s: %w", ticker, err)
	}

	if err := s.snapshots.Save(ctx, ticker, amount, cadence); err != nil {
		// the fetched price is still good; only the shared snapshot is stale
		zlog.Logger.Warn().Err(err).Str("ticker", ticker).Msg("failed to save price snapshot")
	}

	return amount, nil
}
