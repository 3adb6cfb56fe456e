package category_cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Modeva-Ecommerce/modeva-storefront/catalog"
	"github.com/redis/go-redis/v9"
)

// DefaultSnapshotKey is where the serialized catalog lives in Redis.
const DefaultSnapshotKey = "storefront:catalog:snapshot"

// RedisSnapshotStore shares the catalog snapshot between instances.
type RedisSnapshotStore struct {
	client redis.Cmdable
	key    string
	ttl    time.Duration
}

func NewRedisSnapshotStore(client redis.Cmdable, ttl time.Duration) *RedisSnapshotStore {
	if ttl <= 0 {
		ttl = TTL
	}
	return &RedisSnapshotStore{client: client, key: DefaultSnapshotKey, ttl: ttl}
}

// Load returns the stored snapshot with its hierarchy rebuilt. A missing key
// is a miss, not an error.
func (s *RedisSnapshotStore) Load(ctx context.Context) (*catalog.Snapshot, bool, error) {
	raw, err := s.client.Get(ctx, s.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("read snapshot: %w", err)
	}

	var stored catalog.Snapshot
	if err := json.Unmarshal(raw, &stored); err != nil {
		return nil, false, fmt.Errorf("decode snapshot: %w", err)
	}
	return catalog.NewSnapshot(stored.Categories, stored.Products, stored.FetchedAt), true, nil
}

func (s *RedisSnapshotStore) Save(ctx context.Context, snapshot *catalog.Snapshot) error {
	raw, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	if err := s.client.Set(ctx, s.key, raw, s.ttl).Err(); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}
	return nil
}

func (s *RedisSnapshotStore) Invalidate(ctx context.Context) error {
	return s.client.Del(ctx, s.key).Err()
}
