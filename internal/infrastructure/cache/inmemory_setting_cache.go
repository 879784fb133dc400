package cache

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/govprop/backend/internal/domain/setting"
	"go.uber.org/zap"
)

const defaultCleanupInterval = 30 * time.Second

// InMemorySettingCache is the process-local L1 cache. It is also the only cache when Redis is
// not configured.
type InMemorySettingCache struct {
	entries sync.Map // map[string]*cacheEntry
	config  setting.CacheConfig
	logger  *zap.Logger
	stopCh  chan struct{}
	stopped int32

	hits   int64
	misses int64
}

type cacheEntry struct {
	value     setting.Setting
	expiresAt time.Time
}

func (e *cacheEntry) isExpired(now time.Time) bool {
	return now.After(e.expiresAt)
}

// InMemorySettingCacheOption configures an InMemorySettingCache
type InMemorySettingCacheOption func(*InMemorySettingCache)

// WithInMemoryConfig sets the cache configuration
func WithInMemoryConfig(config setting.CacheConfig) InMemorySettingCacheOption {
	return func(c *InMemorySettingCache) {
		c.config = config
	}
}

// WithInMemoryLogger sets the logger
func WithInMemoryLogger(logger *zap.Logger) InMemorySettingCacheOption {
	return func(c *InMemorySettingCache) {
		c.logger = logger
	}
}

// NewInMemorySettingCache creates the cache and starts its cleanup goroutine. Call Close to stop it.
func NewInMemorySettingCache(opts ...InMemorySettingCacheOption) *InMemorySettingCache {
	c := &InMemorySettingCache{
		config: setting.DefaultCacheConfig(),
		logger: zap.NewNop(),
		stopCh: make(chan struct{}),
	}
	for _, opt := range opts {
		opt(c)
	}

	go c.cleanupExpired()

	return c
}

// Get returns a copy of the cached setting, or nil on a miss
func (c *InMemorySettingCache) Get(_ context.Context, name string) (*setting.Setting, error) {
	if value, ok := c.entries.Load(name); ok {
		entry := value.(*cacheEntry)
		if !entry.isExpired(time.Now()) {
			atomic.AddInt64(&c.hits, 1)
			s := entry.value
			return &s, nil
		}
		c.entries.Delete(name)
	}
	atomic.AddInt64(&c.misses, 1)
	return nil, nil
}

// Set stores a copy of s
func (c *InMemorySettingCache) Set(_ context.Context, s *setting.Setting, ttl time.Duration) error {
	if s == nil {
		return nil
	}
	if ttl <= 0 {
		ttl = c.config.L1TTL
	}
	c.entries.Store(s.Name, &cacheEntry{value: *s, expiresAt: time.Now().Add(ttl)})
	c.logger.Debug("Cached setting in L1", zap.String("name", s.Name), zap.Duration("ttl", ttl))
	return nil
}

// Delete drops one setting
func (c *InMemorySettingCache) Delete(_ context.Context, name string) error {
	c.entries.Delete(name)
	return nil
}

// InvalidateAll drops every entry
func (c *InMemorySettingCache) InvalidateAll(_ context.Context) error {
	c.entries.Range(func(key, _ any) bool {
		c.entries.Delete(key)
		return true
	})
	c.logger.Info("Invalidated L1 setting cache")
	return nil
}

// Close stops the cleanup goroutine. Safe to call more than once.
func (c *InMemorySettingCache) Close() error {
	if atomic.CompareAndSwapInt32(&c.stopped, 0, 1) {
		close(c.stopCh)
	}
	return nil
}

// Stats returns hit and miss counters
func (c *InMemorySettingCache) Stats() (hits, misses int64) {
	return atomic.LoadInt64(&c.hits), atomic.LoadInt64(&c.misses)
}

// Len counts live and not yet swept entries
func (c *InMemorySettingCache) Len() int {
	n := 0
	c.entries.Range(func(_, _ any) bool {
		n++
		return true
	})
	return n
}

func (c *InMemorySettingCache) cleanupExpired() {
	ticker := time.NewTicker(defaultCleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-c.stopCh:
			return
		case now := <-ticker.C:
			c.sweep(now)
		}
	}
}

func (c *InMemorySettingCache) sweep(now time.Time) int {
	removed := 0
	c.entries.Range(func(key, value any) bool {
		if value.(*cacheEntry).isExpired(now) {
			c.entries.Delete(key)
			removed++
		}
		return true
	})
	if removed > 0 {
		c.logger.Debug("Swept expired settings", zap.Int("removed", removed))
	}
	return removed
}

var _ setting.Cache = (*InMemorySettingCache)(nil)
