package idempotency

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/sirupsen/logrus"
)

// keyTTL bounds how long a client retry is recognized as a replay. Prolific
// sessions run well under a day.
const keyTTL = 24 * time.Hour

// pendingMarker is stored between claiming a key and recording the write's
// document id.
const pendingMarker = "pending"

// Guard deduplicates client retries of the append-only write endpoints. The
// first request to claim an Idempotency-Key performs the write and records
// the resulting document id; replays get the recorded id back instead of
// producing a duplicate document.
type Guard struct {
	client *redis.Client
}

// New connects to Redis and verifies the connection.
func New(ctx context.Context, addr, password string) (*Guard, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	logrus.WithField("addr", addr).Info("connected to Redis")
	return &Guard{client: client}, nil
}

// NewFromClient wraps an existing client. Used by tests with miniredis.
func NewFromClient(client *redis.Client) *Guard {
	return &Guard{client: client}
}

// Claim attempts to take ownership of key. It returns true when the caller
// is the first writer and should perform the write. Otherwise cachedID holds
// the document id the first writer recorded, or "" if that write is still in
// flight.
func (g *Guard) Claim(ctx context.Context, key string) (first bool, cachedID string, err error) {
	ok, err := g.client.SetNX(ctx, key, pendingMarker, keyTTL).Result()
	if err != nil {
		return false, "", fmt.Errorf("failed to claim idempotency key: %w", err)
	}
	if ok {
		return true, "", nil
	}

	val, err := g.client.Get(ctx, key).Result()
	if err == redis.Nil {
		// Key expired between SetNX and Get; treat the caller as first.
		return true, "", nil
	}
	if err != nil {
		return false, "", fmt.Errorf("failed to read idempotency key: %w", err)
	}
	if val == pendingMarker {
		return false, "", nil
	}
	return false, val, nil
}

// Record stores the document id produced by the first write.
func (g *Guard) Record(ctx context.Context, key, id string) error {
	if err := g.client.Set(ctx, key, id, keyTTL).Err(); err != nil {
		return fmt.Errorf("failed to record idempotency key: %w", err)
	}
	return nil
}

// Release drops a claimed key so a failed write can be retried.
func (g *Guard) Release(ctx context.Context, key string) {
	if err := g.client.Del(ctx, key).Err(); err != nil {
		logrus.WithError(err).Warn("failed to release idempotency key")
	}
}

// Close shuts down the underlying client.
func (g *Guard) Close() error {
	return g.client.Close()
}
