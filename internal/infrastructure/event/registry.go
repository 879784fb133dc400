package event

import (
	"slices"
	"sync"

	"github.com/govprop/backend/internal/domain/shared"
)

// handlerRegistry maps event types to subscribers. Handlers registered without types receive every
// event.
type handlerRegistry struct {
	mu       sync.RWMutex
	byType   map[string][]shared.EventHandler
	wildcard []shared.EventHandler
}

func newHandlerRegistry() *handlerRegistry {
	return &handlerRegistry{byType: make(map[string][]shared.EventHandler)}
}

func (r *handlerRegistry) register(h shared.EventHandler, eventTypes ...string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(eventTypes) == 0 {
		if !slices.Contains(r.wildcard, h) {
			r.wildcard = append(r.wildcard, h)
		}
		return
	}
	for _, t := range eventTypes {
		if !slices.Contains(r.byType[t], h) {
			r.byType[t] = append(r.byType[t], h)
		}
	}
}

func (r *handlerRegistry) unregister(h shared.EventHandler) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.wildcard = slices.DeleteFunc(r.wildcard, func(x shared.EventHandler) bool { return x == h })
	for t, hs := range r.byType {
		hs = slices.DeleteFunc(hs, func(x shared.EventHandler) bool { return x == h })
		if len(hs) == 0 {
			delete(r.byType, t)
			continue
		}
		r.byType[t] = hs
	}
}

// handlersFor returns a snapshot: typed subscribers first, then wildcards
func (r *handlerRegistry) handlersFor(eventType string) []shared.EventHandler {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]shared.EventHandler, 0, len(r.byType[eventType])+len(r.wildcard))
	out = append(out, r.byType[eventType]...)
	return append(out, r.wildcard...)
}
