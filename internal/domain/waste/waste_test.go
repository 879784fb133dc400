package waste

import (
	"testing"

	"github.com/govprop/backend/internal/domain/shared"
	"github.com/govprop/backend/internal/domain/stock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWasteLifecycle(t *testing.T) {
	entry := &stock.Entry{ID: uuid.New(), AssetID: uuid.New(), ItemNo: "4", Outs: 1, Condition: stock.ConditionForDisposal}
	item, err := NewItem(entry, 1)
	require.NoError(t, err)

	w, err := NewWaste("WASTE-2026-03-01-0001", uuid.New(), []WasteItem{item}, "", nil)
	require.NoError(t, err)
	require.NoError(t, w.Complete(nil))
	assert.ErrorIs(t, w.Complete(nil), shared.ErrInvalidState)
	assert.ErrorIs(t, w.Update(w.Items, ""), shared.ErrInvalidState)

	batch := w.BatchItems()
	require.Len(t, batch, 1)
	assert.Equal(t, stock.ConditionDestroyed, batch[0].Condition)
	assert.Equal(t, stock.ConditionForDisposal, *batch[0].InitialCondition)
}

func TestNewItem_OnlyUnserviceable(t *testing.T) {
	held := &stock.Entry{ID: uuid.New(), ItemNo: "1", Outs: 1, Condition: stock.ConditionReissued}
	_, err := NewItem(held, 1)
	assert.ErrorIs(t, err, shared.ErrInvalidState)

	damaged := &stock.Entry{ID: uuid.New(), ItemNo: "1", Outs: 1, Condition: stock.ConditionDamaged}
	_, err = NewItem(damaged, 1)
	assert.NoError(t, err)
}
