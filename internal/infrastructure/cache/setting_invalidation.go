package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/govprop/backend/internal/domain/setting"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const defaultCloseTimeout = 5 * time.Second

// RedisSettingInvalidator broadcasts setting changes over Redis Pub/Sub
type RedisSettingInvalidator struct {
	client  *redis.Client
	channel string
	logger  *zap.Logger

	mu        sync.Mutex
	isRunning bool
	cancelFn  context.CancelFunc
	doneCh    chan struct{}
	doneOnce  sync.Once
}

// RedisSettingInvalidatorOption configures a RedisSettingInvalidator
type RedisSettingInvalidatorOption func(*RedisSettingInvalidator)

// WithInvalidatorChannel sets the Pub/Sub channel
func WithInvalidatorChannel(channel string) RedisSettingInvalidatorOption {
	return func(i *RedisSettingInvalidator) {
		i.channel = channel
	}
}

// WithInvalidatorLogger sets the logger
func WithInvalidatorLogger(logger *zap.Logger) RedisSettingInvalidatorOption {
	return func(i *RedisSettingInvalidator) {
		i.logger = logger
	}
}

// NewRedisSettingInvalidator wraps a client. The caller keeps ownership of the client.
func NewRedisSettingInvalidator(client *redis.Client, opts ...RedisSettingInvalidatorOption) *RedisSettingInvalidator {
	i := &RedisSettingInvalidator{
		client:  client,
		channel: setting.DefaultCacheConfig().PubSubChannel,
		logger:  zap.NewNop(),
		doneCh:  make(chan struct{}),
	}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

// Publish sends msg to every subscriber, this instance included
func (i *RedisSettingInvalidator) Publish(ctx context.Context, msg setting.CacheUpdateMessage) error {
	if msg.Timestamp == 0 {
		msg.Timestamp = time.Now().UnixNano()
	}
	data, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal cache update message: %w", err)
	}
	if err := i.client.Publish(ctx, i.channel, data).Err(); err != nil {
		i.logger.Error("Failed to publish setting invalidation",
			zap.String("channel", i.channel),
			zap.Error(err))
		return fmt.Errorf("failed to publish cache update message: %w", err)
	}
	i.logger.Debug("Published setting invalidation",
		zap.String("action", string(msg.Action)),
		zap.String("name", msg.Name))
	return nil
}

// Subscribe listens on the channel until ctx is cancelled or Close is called.
// Run it in its own goroutine.
func (i *RedisSettingInvalidator) Subscribe(ctx context.Context, callback func(msg setting.CacheUpdateMessage)) error {
	i.mu.Lock()
	if i.isRunning {
		i.mu.Unlock()
		return errors.New("setting invalidation subscription already running")
	}
	subCtx, cancel := context.WithCancel(ctx)
	i.isRunning = true
	i.cancelFn = cancel
	i.mu.Unlock()

	defer func() {
		i.mu.Lock()
		i.isRunning = false
		i.mu.Unlock()
		i.doneOnce.Do(func() { close(i.doneCh) })
	}()

	pubsub := i.client.Subscribe(subCtx, i.channel)
	defer pubsub.Close()

	if _, err := pubsub.Receive(subCtx); err != nil {
		return fmt.Errorf("failed to subscribe to %s: %w", i.channel, err)
	}
	i.logger.Info("Subscribed to setting invalidation channel", zap.String("channel", i.channel))

	ch := pubsub.Channel()
	for {
		select {
		case <-subCtx.Done():
			return subCtx.Err()
		case raw, ok := <-ch:
			if !ok {
				return nil
			}
			var msg setting.CacheUpdateMessage
			if err := json.Unmarshal([]byte(raw.Payload), &msg); err != nil {
				i.logger.Warn("Ignoring malformed setting invalidation",
					zap.String("payload", raw.Payload),
					zap.Error(err))
				continue
			}
			i.dispatch(callback, msg)
		}
	}
}

func (i *RedisSettingInvalidator) dispatch(callback func(setting.CacheUpdateMessage), msg setting.CacheUpdateMessage) {
	defer func() {
		if r := recover(); r != nil {
			i.logger.Error("Panic in setting invalidation callback", zap.Any("panic", r))
		}
	}()
	callback(msg)
}

// Close stops a running subscription and waits briefly for it to exit
func (i *RedisSettingInvalidator) Close() error {
	i.mu.Lock()
	cancelFn := i.cancelFn
	i.mu.Unlock()

	if cancelFn == nil {
		return nil
	}
	cancelFn()
	select {
	case <-i.doneCh:
	case <-time.After(defaultCloseTimeout):
		i.logger.Warn("Timeout waiting for setting invalidation subscription to stop")
	}
	return nil
}

var _ setting.CacheInvalidator = (*RedisSettingInvalidator)(nil)
