package issueslip

import (
	"testing"

	"github.com/govprop/backend/internal/domain/setting"
	"github.com/govprop/backend/internal/domain/shared"
	"github.com/govprop/backend/internal/domain/stock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSlip(t *testing.T) *IssueSlip {
	t.Helper()
	slip, err := NewIssueSlip("IS-2026-01-05-0001", uuid.New(), uuid.New(), uuid.New(), uuid.New(), 3,
		setting.Stamp{EntityName: "Municipality of San Isidro", FundCluster: "01"}, "", nil)
	require.NoError(t, err)
	return slip
}

func TestStatus_CanTransitionTo(t *testing.T) {
	assert.True(t, StatusPending.CanTransitionTo(StatusIssued))
	assert.False(t, StatusIssued.CanTransitionTo(StatusIssued))
	assert.False(t, StatusIssued.CanTransitionTo(StatusPending))
}

func TestNewIssueSlip(t *testing.T) {
	slip := newSlip(t)
	assert.Equal(t, StatusPending, slip.Status)
	assert.Equal(t, "01", slip.FundCluster)
	assert.Len(t, slip.GetDomainEvents(), 1)

	_, err := NewIssueSlip("IS-1", uuid.New(), uuid.New(), uuid.New(), uuid.New(), 0, setting.Stamp{}, "", nil)
	assert.Error(t, err)

	_, err = NewIssueSlip("IS-1", uuid.New(), uuid.New(), uuid.Nil, uuid.New(), 1, setting.Stamp{}, "", nil)
	assert.Error(t, err)
}

func TestIssueSlip_MarkIssued(t *testing.T) {
	slip := newSlip(t)
	entries := []stock.Entry{{ID: uuid.New(), ItemNo: "1"}, {ID: uuid.New(), ItemNo: "2"}, {ID: uuid.New(), ItemNo: "3"}}

	require.NoError(t, slip.MarkIssued(entries, nil))
	assert.Equal(t, StatusIssued, slip.Status)
	assert.NotNil(t, slip.IssuedAt)
	assert.Len(t, slip.Stocks, 3)
	assert.Equal(t, slip.ID, slip.Stocks[0].IssueSlipID)

	err := slip.MarkIssued(entries, nil)
	assert.ErrorIs(t, err, shared.ErrInvalidState)

	err = slip.Update(slip.AssetID, slip.OfficeID, slip.ReceivedBy, 1, "")
	assert.ErrorIs(t, err, shared.ErrInvalidState)
}

func TestIssueSlip_IssueItem(t *testing.T) {
	slip := newSlip(t)
	item := slip.IssueItem()
	assert.Equal(t, slip.AssetID, item.AssetID)
	assert.Equal(t, 3, item.Qty)
	assert.Equal(t, slip.SlipNo, item.Reference)
}
