package cache

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/govprop/backend/internal/domain/setting"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSetting(name, value string) *setting.Setting {
	return &setting.Setting{Name: name, Value: value, UpdatedAt: time.Now()}
}

func TestInMemorySettingCache_GetSet(t *testing.T) {
	c := NewInMemorySettingCache()
	defer c.Close()
	ctx := context.Background()

	got, err := c.Get(ctx, setting.NameEntityName)
	require.NoError(t, err)
	assert.Nil(t, got)

	require.NoError(t, c.Set(ctx, newSetting(setting.NameEntityName, "Provincial Office"), time.Minute))

	got, err = c.Get(ctx, setting.NameEntityName)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Provincial Office", got.Value)

	// callers get a copy
	got.Value = "mutated"
	again, _ := c.Get(ctx, setting.NameEntityName)
	assert.Equal(t, "Provincial Office", again.Value)

	hits, misses := c.Stats()
	assert.Equal(t, int64(2), hits)
	assert.Equal(t, int64(1), misses)

	require.NoError(t, c.Set(ctx, nil, time.Minute))
	assert.Equal(t, 1, c.Len())
}

func TestInMemorySettingCache_Expiry(t *testing.T) {
	c := NewInMemorySettingCache()
	defer c.Close()
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, newSetting("a", "1"), time.Millisecond))
	require.NoError(t, c.Set(ctx, newSetting("b", "2"), time.Hour))
	time.Sleep(5 * time.Millisecond)

	got, err := c.Get(ctx, "a")
	require.NoError(t, err)
	assert.Nil(t, got)

	require.NoError(t, c.Set(ctx, newSetting("c", "3"), time.Millisecond))
	time.Sleep(5 * time.Millisecond)
	assert.Equal(t, 1, c.sweep(time.Now()))
	assert.Equal(t, 1, c.Len())
}

func TestInMemorySettingCache_DeleteAndInvalidate(t *testing.T) {
	c := NewInMemorySettingCache()
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, newSetting("a", "1"), 0))
	require.NoError(t, c.Set(ctx, newSetting("b", "2"), 0))

	require.NoError(t, c.Delete(ctx, "a"))
	got, _ := c.Get(ctx, "a")
	assert.Nil(t, got)

	require.NoError(t, c.InvalidateAll(ctx))
	assert.Equal(t, 0, c.Len())

	require.NoError(t, c.Close())
	require.NoError(t, c.Close())
}

type recordingInvalidator struct {
	mu   sync.Mutex
	sent []setting.CacheUpdateMessage
}

func (r *recordingInvalidator) Publish(_ context.Context, msg setting.CacheUpdateMessage) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sent = append(r.sent, msg)
	return nil
}

func (r *recordingInvalidator) Subscribe(ctx context.Context, _ func(setting.CacheUpdateMessage)) error {
	<-ctx.Done()
	return ctx.Err()
}

func (r *recordingInvalidator) Close() error { return nil }

func (r *recordingInvalidator) messages() []setting.CacheUpdateMessage {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]setting.CacheUpdateMessage(nil), r.sent...)
}

func TestTieredSettingCache_ReadThrough(t *testing.T) {
	ctx := context.Background()
	l1 := NewInMemorySettingCache()
	l2 := NewInMemorySettingCache()
	inv := &recordingInvalidator{}
	c := NewTieredSettingCache(l1, l2, inv)
	defer c.Close()

	require.NoError(t, l2.Set(ctx, newSetting(setting.NameFundCluster, "01"), time.Minute))

	got, err := c.Get(ctx, setting.NameFundCluster)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "01", got.Value)

	warmed, _ := l1.Get(ctx, setting.NameFundCluster)
	require.NotNil(t, warmed)

	_, err = c.Get(ctx, setting.NameFundCluster)
	require.NoError(t, err)

	missing, err := c.Get(ctx, "unknown")
	require.NoError(t, err)
	assert.Nil(t, missing)

	l1Hits, l2Hits, misses := c.Stats()
	assert.Equal(t, int64(1), l1Hits)
	assert.Equal(t, int64(1), l2Hits)
	assert.Equal(t, int64(1), misses)
}

func TestTieredSettingCache_WritesPublish(t *testing.T) {
	ctx := context.Background()
	l1 := NewInMemorySettingCache()
	l2 := NewInMemorySettingCache()
	inv := &recordingInvalidator{}
	c := NewTieredSettingCache(l1, l2, inv)
	defer c.Close()

	require.NoError(t, c.Set(ctx, newSetting("a", "1"), 0))
	require.NoError(t, c.Delete(ctx, "a"))
	require.NoError(t, c.InvalidateAll(ctx))

	msgs := inv.messages()
	require.Len(t, msgs, 3)
	assert.Equal(t, setting.CacheUpdateActionUpdated, msgs[0].Action)
	assert.Equal(t, "a", msgs[0].Name)
	assert.Equal(t, setting.CacheUpdateActionDeleted, msgs[1].Action)
	assert.Equal(t, setting.CacheUpdateActionInvalidateAll, msgs[2].Action)
	for _, m := range msgs {
		assert.Equal(t, c.origin, m.Origin)
	}

	got, _ := l2.Get(ctx, "a")
	assert.Nil(t, got)
}

func TestTieredSettingCache_HandleInvalidation(t *testing.T) {
	ctx := context.Background()
	l1 := NewInMemorySettingCache()
	c := NewTieredSettingCache(l1, NewInMemorySettingCache(), nil)
	defer c.Close()

	require.NoError(t, l1.Set(ctx, newSetting("a", "1"), time.Minute))
	require.NoError(t, l1.Set(ctx, newSetting("b", "2"), time.Minute))

	// own echo is ignored
	c.handleInvalidation(setting.CacheUpdateMessage{Action: setting.CacheUpdateActionUpdated, Name: "a", Origin: c.origin})
	got, _ := l1.Get(ctx, "a")
	assert.NotNil(t, got)

	c.handleInvalidation(setting.CacheUpdateMessage{Action: setting.CacheUpdateActionUpdated, Name: "a", Origin: "other"})
	got, _ = l1.Get(ctx, "a")
	assert.Nil(t, got)

	c.handleInvalidation(setting.CacheUpdateMessage{Action: setting.CacheUpdateActionInvalidateAll, Origin: "other"})
	assert.Equal(t, 0, l1.Len())

	assert.NoError(t, c.StartInvalidationSubscription(ctx))
}

func TestSettingCacheFactory(t *testing.T) {
	ctx := context.Background()

	t.Run("without redis is in-memory", func(t *testing.T) {
		h, err := NewSettingCacheFactory(setting.DefaultCacheConfig()).Create(ctx)
		require.NoError(t, err)
		defer h.Close()
		assert.IsType(t, &InMemorySettingCache{}, h.Cache)
		assert.NoError(t, h.Run(ctx))
	})

	unreachable := RedisConfig{Host: "127.0.0.1", Port: 1}

	t.Run("unreachable redis falls back", func(t *testing.T) {
		h, err := NewSettingCacheFactory(setting.DefaultCacheConfig(), WithRedis(unreachable)).Create(ctx)
		require.NoError(t, err)
		defer h.Close()
		assert.IsType(t, &InMemorySettingCache{}, h.Cache)
	})

	t.Run("unreachable redis without fallback fails", func(t *testing.T) {
		_, err := NewSettingCacheFactory(setting.DefaultCacheConfig(),
			WithRedis(unreachable),
			WithInMemoryFallback(false),
		).Create(ctx)
		assert.Error(t, err)
	})
}
