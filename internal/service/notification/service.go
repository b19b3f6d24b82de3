// Package notification exposes the registry operations the API boundary
// calls: create a price-watch notification and read back the records a
// chat owns.
package notification

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/zlog"

	"github.com/a0l6g0r8a9l2/investHelperBE/internal/model"
	notifrepo "github.com/a0l6g0r8a9l2/investHelperBE/internal/repository/notification"
)

//go:generate mockgen -source=service.go -destination=../../mocks/service/notification/mock.go -package=mocks
type notificationRepo interface {
	Save(ctx context.Context, n model.Notification, ttl time.Duration) error
	Get(ctx context.Context, chatID string, id uuid.UUID) (model.Notification, error)
	GetByChat(ctx context.Context, chatID string) ([]model.Notification, error)
}

type priceResolver interface {
	Actual(ctx context.Context, ticker string, cadence time.Duration) (model.Amount, error)
}

type lifecycleLauncher interface {
	Launch(n model.Notification) model.State
}

// Service is the notification registry.
type Service struct {
	repo       notificationRepo
	prices     priceResolver
	lifecycles lifecycleLauncher
}

func NewService(repo notificationRepo, prices priceResolver, lifecycles lifecycleLauncher) *Service {
	return &Service{repo: repo, prices: prices, lifecycles: lifecycles}
}

// Create validates the request, assigns an id, resolves the initial
// price, persists the record with a TTL equal to its remaining life and
// hands it to a lifecycle. The returned record carries the state the
// start guard settled on.
func (s *Service) Create(ctx context.Context, n model.Notification) (model.Notification, error) {
	n.ID = uuid.New()
	n.State = model.StateNew

	if err := n.Validate(); err != nil {
		return model.Notification{}, err
	}

	amount, err := s.prices.Actual(ctx, n.Ticker, n.DelayDuration())
	if err != nil {
		return model.Notification{}, fmt.Errorf("resolve initial price: %w", err)
	}
	n.CurrentPrice = amount

	ttl := n.RemainingTTL(time.Now())
	if ttl <= 0 {
		// the deadline slipped past while we were fetching the price
		return model.Notification{}, fmt.Errorf("%w: endNotification must be in the future", model.ErrValidation)
	}

	if err := s.repo.Save(ctx, n, ttl); err != nil {
		return model.Notification{}, fmt.Errorf("persist notification: %w", err)
	}

	n.State = s.lifecycles.Launch(n)

	zlog.Logger.Info().
		Str("id", n.ID.String()).
		Str("ticker", n.Ticker).
		Str("state", string(n.State)).
		Msg("notification created")

	return n, nil
}

// GetOne returns the record with the given id owned by chatID. A record
// that exists but cannot be parsed is reported as absent.
func (s *Service) GetOne(ctx context.Context, chatID string, id uuid.UUID) (model.Notification, error) {
	n, err := s.repo.Get(ctx, chatID, id)
	if errors.Is(err, notifrepo.ErrBadRecord) {
		zlog.Logger.Warn().Err(err).Str("id", id.String()).Msg("malformed record treated as absent")
		return model.Notification{}, notifrepo.ErrNotificationNotFound
	}
	if err != nil {
		return model.Notification{}, err
	}

	return n, nil
}

// GetMany returns every record owned by chatID; malformed entries were
// already skipped by the repository.
func (s *Service) GetMany(ctx context.Context, chatID string) ([]model.Notification, error) {
	return s.repo.GetByChat(ctx, chatID)
}
