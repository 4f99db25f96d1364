package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const (
	// StatsKeyPrefix namespaces every cached aggregate.
	StatsKeyPrefix = "stats:"
	statsIndexKey  = StatsKeyPrefix + "index"

	statsOpTimeout = 2 * time.Second
)

// invalidateStatsScript deletes every key recorded in the index set together with
// the index itself, atomically. Returns the number of cached entries dropped.
var invalidateStatsScript = redis.NewScript(`
	local keys = redis.call('SMEMBERS', KEYS[1])
	for _, k in ipairs(keys) do
		redis.call('DEL', k)
	end
	redis.call('DEL', KEYS[1])
	return #keys
`)

// StatsCache caches JSON-encoded aggregates for a short TTL.
type StatsCache interface {
	Get(ctx context.Context, key string, dest interface{}) (bool, error)
	Set(ctx context.Context, key string, value interface{}) error
	Invalidate(ctx context.Context) error
}

type RedisStatsCache struct {
	redisClient *redis.Client
	log         *logrus.Logger
	ttl         time.Duration
}

func NewRedisStatsCache(redisClient *redis.Client, log *logrus.Logger, ttl time.Duration) *RedisStatsCache {
	return &RedisStatsCache{
		redisClient: redisClient,
		log:         log,
		ttl:         ttl,
	}
}

// Get decodes the cached value into dest. A miss returns false with a nil error.
func (c *RedisStatsCache) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, statsOpTimeout)
	defer cancel()

	raw, err := c.redisClient.Get(ctx, StatsKeyPrefix+key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, err
	}

	if err := json.Unmarshal(raw, dest); err != nil {
		c.log.Warnf("Dropping undecodable stats entry %s: %+v", key, err)
		c.redisClient.Del(ctx, StatsKeyPrefix+key)
		return false, nil
	}
	return true, nil
}

func (c *RedisStatsCache) Set(ctx context.Context, key string, value interface{}) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, statsOpTimeout)
	defer cancel()

	fullKey := StatsKeyPrefix + key
	pipe := c.redisClient.TxPipeline()
	pipe.Set(ctx, fullKey, payload, c.ttl)
	pipe.SAdd(ctx, statsIndexKey, fullKey)
	pipe.Expire(ctx, statsIndexKey, 2*c.ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return err
	}

	c.log.Debugf("Cached stats %s for %v", key, c.ttl)
	return nil
}

func (c *RedisStatsCache) Invalidate(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, statsOpTimeout)
	defer cancel()

	dropped, err := invalidateStatsScript.Run(ctx, c.redisClient, []string{statsIndexKey}).Int()
	if err != nil {
		return err
	}

	c.log.Debugf("Invalidated %d stats entries", dropped)
	return nil
}
