package event

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/govprop/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type testEvent struct {
	shared.BaseDomainEvent
}

func newTestEvent(eventType string) *testEvent {
	return &testEvent{BaseDomainEvent: shared.NewBaseDomainEvent(eventType, "Loss", uuid.New())}
}

type recordingHandler struct {
	mu      sync.Mutex
	types   []string
	handled []string
	err     error
	panics  bool
}

func (h *recordingHandler) Handle(_ context.Context, ev shared.DomainEvent) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.handled = append(h.handled, ev.EventType())
	if h.panics {
		panic("handler exploded")
	}
	return h.err
}

func (h *recordingHandler) EventTypes() []string { return h.types }

func TestPublish_RoutesByType(t *testing.T) {
	bus := NewInMemoryEventBus(zap.NewNop())
	reported := &recordingHandler{types: []string{"LossReported"}}
	all := &recordingHandler{}
	bus.Subscribe(reported)
	bus.Subscribe(all)

	require.NoError(t, bus.Publish(context.Background(),
		newTestEvent("LossReported"), newTestEvent("LossApproved")))

	assert.Equal(t, []string{"LossReported"}, reported.handled)
	assert.Equal(t, []string{"LossReported", "LossApproved"}, all.handled)
}

func TestSubscribe_ExplicitTypesAndDuplicates(t *testing.T) {
	bus := NewInMemoryEventBus(zap.NewNop())
	h := &recordingHandler{types: []string{"LossReported"}}
	bus.Subscribe(h, "WasteCompleted")
	bus.Subscribe(h, "WasteCompleted")

	require.NoError(t, bus.Publish(context.Background(), newTestEvent("LossReported"), newTestEvent("WasteCompleted")))
	assert.Equal(t, []string{"WasteCompleted"}, h.handled)
}

func TestPublish_FailingHandlersDoNotStopDelivery(t *testing.T) {
	core, recorded := observer.New(zapcore.WarnLevel)
	bus := NewInMemoryEventBus(zap.New(core))
	failing := &recordingHandler{err: errors.New("smtp down")}
	panicking := &recordingHandler{panics: true}
	healthy := &recordingHandler{}
	bus.Subscribe(failing)
	bus.Subscribe(panicking)
	bus.Subscribe(healthy)

	require.NoError(t, bus.Publish(context.Background(), newTestEvent("LossReported")))

	assert.Len(t, healthy.handled, 1)
	assert.Equal(t, 2, recorded.FilterMessage("event handler failed").Len())
}

func TestUnsubscribe(t *testing.T) {
	bus := NewInMemoryEventBus(zap.NewNop())
	h := &recordingHandler{types: []string{"LossReported"}}
	bus.Subscribe(h)
	bus.Unsubscribe(h)

	require.NoError(t, bus.Publish(context.Background(), newTestEvent("LossReported")))
	assert.Empty(t, h.handled)
	assert.Empty(t, bus.registry.handlersFor("LossReported"))
}

func TestStop_RejectsNewEvents(t *testing.T) {
	bus := NewInMemoryEventBus(zap.NewNop())
	require.NoError(t, bus.Start(context.Background()))

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, bus.Stop(ctx))

	err := bus.Publish(context.Background(), newTestEvent("LossReported"))
	assert.ErrorIs(t, err, ErrBusStopped)

	require.NoError(t, bus.Start(context.Background()))
	assert.NoError(t, bus.Publish(context.Background(), newTestEvent("LossReported")))
}
