package notification

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/zlog"

	"github.com/a0l6g0r8a9l2/investHelperBE/internal/cache"
	"github.com/a0l6g0r8a9l2/investHelperBE/internal/model"
)

var (
	// ErrNotificationNotFound is returned when the record key is absent
	// from the cache: it was never created, has expired, or was deleted
	// by the user.
	ErrNotificationNotFound = errors.New("notification not found")
	// ErrBadRecord is returned when a cached record cannot be parsed.
	// Lifecycles treat it the same as an absent record.
	ErrBadRecord = errors.New("malformed notification record")
)

// keyFor builds the cache key for a record: notification:{chatId}:{id}.
func keyFor(chatID string, id uuid.UUID) string {
	return fmt.Sprintf("notification:%s:%s", chatID, id)
}

func chatPattern(chatID string) string {
	return fmt.Sprintf("notification:%s:*", chatID)
}

// kv is the slice of the cache the repository needs.
type kv interface {
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	Get(ctx context.Context, key string) (string, error)
	Keys(ctx context.Context, pattern string) ([]string, error)
	Delete(ctx context.Context, key string) error
}

// Repository stores notification records in the shared cache. The cache
// is the sole store: a record's key expiring or being deleted is how the
// rest of the system learns the notification is gone.
type Repository struct {
	kv kv
}

// NewRepository creates a new notification record repository.
func NewRepository(kv kv) *Repository {
	return &Repository{kv: kv}
}

// Save persists the record with the given TTL, overwriting any previous
// version under the same key.
func (r *Repository) Save(ctx context.Context, n model.Notification, ttl time.Duration) error {
	body, err := json.Marshal(n)
	if err != nil {
		return fmt.Errorf("marshal notification %s: %w", n.ID, err)
	}

	if err := r.kv.Set(ctx, keyFor(n.ChatID, n.ID), string(body), ttl); err != nil {
		return fmt.Errorf("save notification %s: %w", n.ID, err)
	}

	return nil
}

// Get returns the record owned by chatID with the given id.
func (r *Repository) Get(ctx context.Context, chatID string, id uuid.UUID) (model.Notification, error) {
	val, err := r.kv.Get(ctx, keyFor(chatID, id))
	if errors.Is(err, cache.ErrMiss) {
		return model.Notification{}, ErrNotificationNotFound
	}
	if err != nil {
		return model.Notification{}, fmt.Errorf("get notification %s: %w", id, err)
	}

	var n model.Notification
	if err := json.Unmarshal([]byte(val), &n); err != nil {
		return model.Notification{}, fmt.Errorf("%w: %s: %v", ErrBadRecord, id, err)
	}

	return n, nil
}

// GetByChat returns every record owned by chatID. Entries that fail to
// deserialize are skipped with a warning rather than failing the whole
// listing.
func (r *Repository) GetByChat(ctx context.Context, chatID string) ([]model.Notification, error) {
	keys, err := r.kv.Keys(ctx, chatPattern(chatID))
	if err != nil {
		return nil, fmt.Errorf("list notifications for chat %s: %w", chatID, err)
	}

	notifications := make([]model.Notification, 0, len(keys))
	for _, key := range keys {
		val, err := r.kv.Get(ctx, key)
		if errors.Is(err, cache.ErrMiss) {
			// expired between the scan and the read
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("get %s: %w", key, err)
		}

		var n model.Notification
		if err := json.Unmarshal([]byte(val), &n); err != nil {
			zlog.Logger.Warn().Err(err).Str("key", key).Msg("skipping malformed notification record")
			continue
		}

		notifications = append(notifications, n)
	}

	return notifications, nil
}

// Delete removes the record from the cache. Removing an already absent
// record is not an error, so terminal lifecycles can call it blindly.
func (r *Repository) Delete(ctx context.Context, chatID string, id uuid.UUID) error {
	if err := r.kv.Delete(ctx, keyFor(chatID, id)); err != nil {
		return fmt.Errorf("delete notification %s: %w", id, err)
	}

	return nil
}
