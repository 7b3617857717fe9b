package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"smartMenu/business/bandit"
	"smartMenu/domain"
	"smartMenu/pkg/logger"

	"github.com/redis/go-redis/v9"
)

// ArmCache is a read-through cache over the arm registry. The registry is
// read-mostly, so a short TTL plus invalidation on arm creation keeps the
// serving path off Postgres without stale-registry surprises.
type ArmCache struct {
	client *redis.Client
	inner  bandit.ArmRepository
	ttl    time.Duration
}

var _ bandit.ArmRepository = (*ArmCache)(nil)

func NewArmCache(client *redis.Client, inner bandit.ArmRepository, ttl time.Duration) *ArmCache {
	return &ArmCache{
		client: client,
		inner:  inner,
		ttl:    ttl,
	}
}

func armsKey(tenantID string) string {
	return fmt.Sprintf("arms:tenant:%s", tenantID)
}

func (c *ArmCache) FindByTenant(ctx context.Context, tenantID string) ([]domain.Arm, error) {
	key := armsKey(tenantID)

	val, err := c.client.Get(ctx, key).Result()
	if err == nil {
		var arms []domain.Arm
		if err := json.Unmarshal([]byte(val), &arms); err == nil {
			return arms, nil
		}
		// Corrupt entry: fall through to the source and rewrite it.
		logger.Warn("dropping corrupt arm cache entry", "tenant_id", tenantID)
	} else if !errors.Is(err, redis.Nil) {
		// Cache trouble must not take down serving; go to the source.
		logger.Warn("arm cache read failed", "tenant_id", tenantID, "error", err)
	}

	arms, err := c.inner.FindByTenant(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	if raw, err := json.Marshal(arms); err == nil {
		if err := c.client.Set(ctx, key, raw, c.ttl).Err(); err != nil {
			logger.Warn("arm cache write failed", "tenant_id", tenantID, "error", err)
		}
	}

	return arms, nil
}

func (c *ArmCache) Invalidate(ctx context.Context, tenantID string) error {
	if err := c.client.Del(ctx, armsKey(tenantID)).Err(); err != nil {
		return fmt.Errorf("invalidate arm cache: %w", err)
	}

	return nil
}
