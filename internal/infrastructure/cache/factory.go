package cache

import (
	"context"

	"github.com/govprop/backend/internal/domain/setting"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// SettingCacheFactory picks the setting cache for the deployment: tiered over Redis when Redis is
// reachable, in-memory otherwise.
type SettingCacheFactory struct {
	redisConfig           RedisConfig
	cacheConfig           setting.CacheConfig
	logger                *zap.Logger
	redisEnabled          bool
	allowInMemoryFallback bool
}

// SettingCacheFactoryOption configures the factory
type SettingCacheFactoryOption func(*SettingCacheFactory)

// WithLogger sets the logger handed to every cache
func WithLogger(logger *zap.Logger) SettingCacheFactoryOption {
	return func(f *SettingCacheFactory) {
		f.logger = logger
	}
}

// WithRedis enables the Redis tier
func WithRedis(cfg RedisConfig) SettingCacheFactoryOption {
	return func(f *SettingCacheFactory) {
		f.redisConfig = cfg
		f.redisEnabled = true
	}
}

// WithInMemoryFallback controls whether an unreachable Redis degrades to in-memory. Default true.
func WithInMemoryFallback(allow bool) SettingCacheFactoryOption {
	return func(f *SettingCacheFactory) {
		f.allowInMemoryFallback = allow
	}
}

// NewSettingCacheFactory creates a factory
func NewSettingCacheFactory(cacheConfig setting.CacheConfig, opts ...SettingCacheFactoryOption) *SettingCacheFactory {
	f := &SettingCacheFactory{
		cacheConfig:           cacheConfig,
		logger:                zap.NewNop(),
		allowInMemoryFallback: true,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// SettingCacheHandle is the built cache plus the resources the caller must run and release
type SettingCacheHandle struct {
	Cache  setting.Cache
	tiered *TieredSettingCache
	client *redis.Client
}

// Run blocks on the invalidation subscription when the cache is tiered, otherwise returns nil
func (h *SettingCacheHandle) Run(ctx context.Context) error {
	if h.tiered == nil {
		return nil
	}
	return h.tiered.StartInvalidationSubscription(ctx)
}

// Close releases the cache and any Redis connection it owns
func (h *SettingCacheHandle) Close() error {
	err := h.Cache.Close()
	if h.client != nil {
		if cerr := h.client.Close(); cerr != nil {
			err = cerr
		}
	}
	return err
}

// Create builds the cache
func (f *SettingCacheFactory) Create(ctx context.Context) (*SettingCacheHandle, error) {
	l1 := NewInMemorySettingCache(
		WithInMemoryConfig(f.cacheConfig),
		WithInMemoryLogger(f.logger),
	)
	if !f.redisEnabled {
		return &SettingCacheHandle{Cache: l1}, nil
	}

	client, err := NewRedisClient(ctx, f.redisConfig)
	if err != nil {
		if !f.allowInMemoryFallback {
			_ = l1.Close()
			return nil, err
		}
		f.logger.Warn("Redis unavailable, settings cache is local to this instance",
			zap.String("addr", f.redisConfig.Addr()),
			zap.Error(err))
		return &SettingCacheHandle{Cache: l1}, nil
	}

	l2 := NewRedisSettingCache(client,
		WithRedisCacheConfig(f.cacheConfig),
		WithRedisCacheLogger(f.logger),
	)
	invalidator := NewRedisSettingInvalidator(client,
		WithInvalidatorChannel(f.cacheConfig.PubSubChannel),
		WithInvalidatorLogger(f.logger),
	)
	tiered := NewTieredSettingCache(l1, l2, invalidator,
		WithTieredConfig(f.cacheConfig),
		WithTieredLogger(f.logger),
	)
	f.logger.Info("Settings cache using Redis", zap.String("addr", f.redisConfig.Addr()))
	return &SettingCacheHandle{Cache: tiered, tiered: tiered, client: client}, nil
}
