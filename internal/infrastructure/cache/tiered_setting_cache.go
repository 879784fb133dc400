package cache

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/govprop/backend/internal/domain/setting"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// TieredSettingCache reads through a local L1 into a shared L2 and broadcasts writes so other
// instances drop their L1 copy.
type TieredSettingCache struct {
	l1          *InMemorySettingCache
	l2          setting.Cache
	invalidator setting.CacheInvalidator
	config      setting.CacheConfig
	logger      *zap.Logger
	origin      string

	l1Hits   int64
	l2Hits   int64
	l2Misses int64
}

// TieredSettingCacheOption configures a TieredSettingCache
type TieredSettingCacheOption func(*TieredSettingCache)

// WithTieredConfig sets the cache configuration
func WithTieredConfig(config setting.CacheConfig) TieredSettingCacheOption {
	return func(c *TieredSettingCache) {
		c.config = config
	}
}

// WithTieredLogger sets the logger
func WithTieredLogger(logger *zap.Logger) TieredSettingCacheOption {
	return func(c *TieredSettingCache) {
		c.logger = logger
	}
}

// NewTieredSettingCache combines the tiers. invalidator may be nil for a single instance.
func NewTieredSettingCache(l1 *InMemorySettingCache, l2 setting.Cache, invalidator setting.CacheInvalidator, opts ...TieredSettingCacheOption) *TieredSettingCache {
	c := &TieredSettingCache{
		l1:          l1,
		l2:          l2,
		invalidator: invalidator,
		config:      setting.DefaultCacheConfig(),
		logger:      zap.NewNop(),
		origin:      uuid.NewString(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// StartInvalidationSubscription blocks while listening for other instances' writes
func (c *TieredSettingCache) StartInvalidationSubscription(ctx context.Context) error {
	if c.invalidator == nil {
		return nil
	}
	return c.invalidator.Subscribe(ctx, c.handleInvalidation)
}

func (c *TieredSettingCache) handleInvalidation(msg setting.CacheUpdateMessage) {
	if msg.Origin == c.origin {
		return
	}
	ctx := context.Background()
	switch msg.Action {
	case setting.CacheUpdateActionUpdated, setting.CacheUpdateActionDeleted:
		_ = c.l1.Delete(ctx, msg.Name)
		c.logger.Debug("Dropped L1 setting on remote change",
			zap.String("action", string(msg.Action)),
			zap.String("name", msg.Name))
	case setting.CacheUpdateActionInvalidateAll:
		_ = c.l1.InvalidateAll(ctx)
	default:
		c.logger.Warn("Unknown setting invalidation action", zap.String("action", string(msg.Action)))
	}
}

// Get tries L1 then L2, warming L1 on an L2 hit
func (c *TieredSettingCache) Get(ctx context.Context, name string) (*setting.Setting, error) {
	if s, _ := c.l1.Get(ctx, name); s != nil {
		atomic.AddInt64(&c.l1Hits, 1)
		return s, nil
	}

	s, err := c.l2.Get(ctx, name)
	if err != nil {
		return nil, err
	}
	if s == nil {
		atomic.AddInt64(&c.l2Misses, 1)
		return nil, nil
	}
	atomic.AddInt64(&c.l2Hits, 1)
	_ = c.l1.Set(ctx, s, c.config.L1TTL)
	return s, nil
}

// Set writes both tiers and notifies other instances
func (c *TieredSettingCache) Set(ctx context.Context, s *setting.Setting, ttl time.Duration) error {
	if s == nil {
		return nil
	}
	if err := c.l2.Set(ctx, s, ttl); err != nil {
		return err
	}
	_ = c.l1.Set(ctx, s, c.config.L1TTL)
	c.publish(ctx, setting.CacheUpdateActionUpdated, s.Name)
	return nil
}

// Delete removes from both tiers and notifies other instances
func (c *TieredSettingCache) Delete(ctx context.Context, name string) error {
	if err := c.l2.Delete(ctx, name); err != nil {
		return err
	}
	_ = c.l1.Delete(ctx, name)
	c.publish(ctx, setting.CacheUpdateActionDeleted, name)
	return nil
}

// InvalidateAll clears both tiers everywhere
func (c *TieredSettingCache) InvalidateAll(ctx context.Context) error {
	if err := c.l2.InvalidateAll(ctx); err != nil {
		return err
	}
	_ = c.l1.InvalidateAll(ctx)
	c.publish(ctx, setting.CacheUpdateActionInvalidateAll, "")
	return nil
}

func (c *TieredSettingCache) publish(ctx context.Context, action setting.CacheUpdateAction, name string) {
	if c.invalidator == nil {
		return
	}
	msg := setting.CacheUpdateMessage{Action: action, Name: name, Origin: c.origin}
	if err := c.invalidator.Publish(ctx, msg); err != nil {
		c.logger.Warn("Failed to publish setting invalidation",
			zap.String("action", string(action)),
			zap.String("name", name),
			zap.Error(err))
	}
}

// Close releases every tier, returning the last error seen
func (c *TieredSettingCache) Close() error {
	var lastErr error
	if c.invalidator != nil {
		if err := c.invalidator.Close(); err != nil {
			lastErr = err
		}
	}
	if err := c.l2.Close(); err != nil {
		lastErr = err
	}
	if err := c.l1.Close(); err != nil {
		lastErr = err
	}
	return lastErr
}

// Stats returns L1 hits, L2 hits and final misses
func (c *TieredSettingCache) Stats() (l1Hits, l2Hits, misses int64) {
	return atomic.LoadInt64(&c.l1Hits), atomic.LoadInt64(&c.l2Hits), atomic.LoadInt64(&c.l2Misses)
}

var _ setting.Cache = (*TieredSettingCache)(nil)
