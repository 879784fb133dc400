package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/govprop/backend/internal/domain/setting"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const defaultScanBatchSize = 100

// RedisConfig holds Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// Addr returns host:port
func (c RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// NewRedisClient connects and pings Redis
func NewRedisClient(ctx context.Context, cfg RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr(),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis at %s: %w", cfg.Addr(), err)
	}
	return client, nil
}

// RedisSettingCache is the shared L2 cache. Values are stored as JSON under {prefix}{name}.
type RedisSettingCache struct {
	client *redis.Client
	config setting.CacheConfig
	logger *zap.Logger
}

// RedisSettingCacheOption configures a RedisSettingCache
type RedisSettingCacheOption func(*RedisSettingCache)

// WithRedisCacheConfig sets the cache configuration
func WithRedisCacheConfig(config setting.CacheConfig) RedisSettingCacheOption {
	return func(c *RedisSettingCache) {
		c.config = config
	}
}

// WithRedisCacheLogger sets the logger
func WithRedisCacheLogger(logger *zap.Logger) RedisSettingCacheOption {
	return func(c *RedisSettingCache) {
		c.logger = logger
	}
}

// NewRedisSettingCache wraps a client. The caller keeps ownership of the client.
func NewRedisSettingCache(client *redis.Client, opts ...RedisSettingCacheOption) *RedisSettingCache {
	c := &RedisSettingCache{
		client: client,
		config: setting.DefaultCacheConfig(),
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *RedisSettingCache) key(name string) string {
	return c.config.KeyPrefix + name
}

// Get reads a setting, nil on a miss
func (c *RedisSettingCache) Get(ctx context.Context, name string) (*setting.Setting, error) {
	data, err := c.client.Get(ctx, c.key(name)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get setting %q from Redis: %w", name, err)
	}

	var s setting.Setting
	if err := json.Unmarshal(data, &s); err != nil {
		c.logger.Warn("Dropping undecodable cached setting", zap.String("name", name), zap.Error(err))
		_ = c.client.Del(ctx, c.key(name)).Err()
		return nil, nil
	}
	return &s, nil
}

// Set writes a setting with the given TTL, or the configured L2 TTL when ttl is zero
func (c *RedisSettingCache) Set(ctx context.Context, s *setting.Setting, ttl time.Duration) error {
	if s == nil {
		return nil
	}
	if ttl <= 0 {
		ttl = c.config.L2TTL
	}
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to marshal setting: %w", err)
	}
	if err := c.client.Set(ctx, c.key(s.Name), data, ttl).Err(); err != nil {
		return fmt.Errorf("failed to set setting %q in Redis: %w", s.Name, err)
	}
	return nil
}

// Delete removes a setting
func (c *RedisSettingCache) Delete(ctx context.Context, name string) error {
	if err := c.client.Del(ctx, c.key(name)).Err(); err != nil {
		return fmt.Errorf("failed to delete setting %q from Redis: %w", name, err)
	}
	return nil
}

// InvalidateAll deletes every key under the configured prefix using SCAN
func (c *RedisSettingCache) InvalidateAll(ctx context.Context) error {
	var cursor uint64
	deleted := 0
	for {
		keys, next, err := c.client.Scan(ctx, cursor, c.config.KeyPrefix+"*", defaultScanBatchSize).Result()
		if err != nil {
			return fmt.Errorf("failed to scan setting keys: %w", err)
		}
		if len(keys) > 0 {
			if err := c.client.Del(ctx, keys...).Err(); err != nil {
				return fmt.Errorf("failed to delete setting keys: %w", err)
			}
			deleted += len(keys)
		}
		cursor = next
		if cursor == 0 {
			break
		}
	}
	c.logger.Info("Invalidated Redis setting cache", zap.Int("keys", deleted))
	return nil
}

// Close is a no-op; the client belongs to the caller
func (c *RedisSettingCache) Close() error {
	return nil
}

var _ setting.Cache = (*RedisSettingCache)(nil)
