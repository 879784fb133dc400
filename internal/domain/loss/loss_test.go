package loss

import (
	"testing"

	"github.com/govprop/backend/internal/domain/shared"
	"github.com/govprop/backend/internal/domain/stock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLossLifecycle(t *testing.T) {
	office := uuid.New()
	entry := &stock.Entry{ID: uuid.New(), AssetID: uuid.New(), ItemNo: "3", Outs: 1, Condition: stock.ConditionReissued, OfficeID: &office}

	item, err := NewItem(entry, 1, stock.ConditionLost, "left in a taxi")
	require.NoError(t, err)

	l, err := NewLoss("LOSS-2026-02-01-0001", office, uuid.New(), []LossItem{item}, "", nil)
	require.NoError(t, err)

	events := l.GetDomainEvents()
	require.Len(t, events, 1)
	reported, ok := events[0].(*LossReportedEvent)
	require.True(t, ok)
	assert.Equal(t, "lost", reported.Items[0].Condition)

	assert.ErrorIs(t, l.Complete(nil), shared.ErrInvalidState)
	require.NoError(t, l.Approve(nil))
	require.NoError(t, l.Complete(nil))
	assert.Equal(t, StatusCompleted, l.Status)
	assert.False(t, l.Status.CanTransitionTo(StatusApproved))

	batch := l.BatchItems()
	require.Len(t, batch, 1)
	assert.Equal(t, stock.ConditionLost, batch[0].Condition)
	assert.Equal(t, 1, batch[0].Qty)
	assert.Equal(t, "3", batch[0].ItemNo)
}

func TestNewItem_RejectsNonLossCondition(t *testing.T) {
	entry := &stock.Entry{ID: uuid.New(), ItemNo: "1", Outs: 1, Condition: stock.ConditionReissued}
	_, err := NewItem(entry, 1, stock.ConditionReturned, "")
	assert.Error(t, err)
	_, err = NewItem(entry, 1, stock.ConditionForDisposal, "")
	assert.Error(t, err)
}
