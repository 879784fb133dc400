package setting

import (
	"context"
	"time"
)

// Cache holds recently read settings in front of the Repository.
//
// Keys follow the pattern setting:{name}. Implementations may be layered:
// a local in-memory L1 in front of a shared Redis L2, with the database as the source of truth.
type Cache interface {
	// Get returns nil, nil on a miss.
	Get(ctx context.Context, name string) (*Setting, error)

	// Set stores the setting. A zero ttl means the implementation default.
	Set(ctx context.Context, s *Setting, ttl time.Duration) error

	Delete(ctx context.Context, name string) error
	InvalidateAll(ctx context.Context) error
	Close() error
}

// CacheConfig tunes the setting caches
type CacheConfig struct {
	L1TTL         time.Duration
	L2TTL         time.Duration
	KeyPrefix     string
	PubSubChannel string
}

// DefaultCacheConfig returns the defaults used when nothing is configured
func DefaultCacheConfig() CacheConfig {
	return CacheConfig{
		L1TTL:         30 * time.Second,
		L2TTL:         10 * time.Minute,
		KeyPrefix:     "setting:",
		PubSubChannel: "setting:invalidate",
	}
}

// CacheUpdateAction tells other instances what happened to a cached setting
type CacheUpdateAction string

const (
	CacheUpdateActionUpdated       CacheUpdateAction = "updated"
	CacheUpdateActionDeleted       CacheUpdateAction = "deleted"
	CacheUpdateActionInvalidateAll CacheUpdateAction = "invalidate_all"
)

// CacheUpdateMessage is broadcast over Pub/Sub after a local write
type CacheUpdateMessage struct {
	Action    CacheUpdateAction `json:"action"`
	Name      string            `json:"name,omitempty"`
	Origin    string            `json:"origin,omitempty"`
	Timestamp int64             `json:"timestamp"`
}

// CacheInvalidator fans cache changes out to the other running instances
type CacheInvalidator interface {
	Publish(ctx context.Context, msg CacheUpdateMessage) error
	// Subscribe blocks until ctx is cancelled or Close is called.
	Subscribe(ctx context.Context, callback func(msg CacheUpdateMessage)) error
	Close() error
}
