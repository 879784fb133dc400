package requisition

import (
	"testing"

	"github.com/govprop/backend/internal/domain/setting"
	"github.com/govprop/backend/internal/domain/shared"
	"github.com/govprop/backend/internal/domain/stock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRIS(t *testing.T, paper, ink uuid.UUID) *Requisition {
	t.Helper()
	r, err := NewRequisition("RIS-2026-05-01-0001", uuid.New(), uuid.New(), "office use",
		[]ItemRequest{{AssetID: paper, RequestedQty: 10}, {AssetID: ink, RequestedQty: 4}},
		setting.Stamp{EntityName: "Provincial Government", FundCluster: "01"}, nil)
	require.NoError(t, err)
	return r
}

func TestStatus_Transitions(t *testing.T) {
	assert.True(t, StatusForEvaluation.CanTransitionTo(StatusEvaluating))
	assert.True(t, StatusEvaluating.CanTransitionTo(StatusForReview))
	assert.True(t, StatusForReview.CanTransitionTo(StatusPending))
	assert.True(t, StatusPending.CanTransitionTo(StatusIssued))
	assert.False(t, StatusForEvaluation.CanTransitionTo(StatusIssued))
	assert.False(t, StatusIssued.CanTransitionTo(StatusCancelled))
	assert.False(t, StatusCancelled.CanTransitionTo(StatusPending))

	for _, s := range []Status{StatusForEvaluation, StatusEvaluating, StatusForReview, StatusPending} {
		assert.True(t, s.CanTransitionTo(StatusCancelled), s)
	}
}

func TestRequisition_FullFlow(t *testing.T) {
	paper, ink := uuid.New(), uuid.New()
	r := newRIS(t, paper, ink)

	require.NoError(t, r.StartEvaluation(nil))

	days := 30
	approvals := []Approval{
		{ItemID: r.Items[0].ID, ApprovedQty: 8, NumberOfDaysToConsume: &days},
		{ItemID: r.Items[1].ID, ApprovedQty: 0},
	}
	require.NoError(t, r.SubmitForReview(approvals, map[uuid.UUID]int{paper: 8, ink: 0}, nil))
	assert.Equal(t, StatusForReview, r.Status)
	assert.Equal(t, 8, r.TotalApproved())

	require.NoError(t, r.Approve(nil))

	items := r.IssueItems()
	require.Len(t, items, 1)
	assert.Equal(t, paper, items[0].AssetID)
	assert.Equal(t, 30, *items[0].NumberOfDaysToConsume)

	entry := stock.Entry{ID: uuid.New()}
	require.NoError(t, r.MarkIssued([]stock.Entry{entry}, uuid.New(), nil))
	assert.Equal(t, StatusIssued, r.Status)
	assert.Equal(t, entry.ID, *r.Items[0].StockID)
	assert.Nil(t, r.Items[1].StockID)
	assert.ErrorIs(t, r.Cancel("late"), shared.ErrInvalidState)
}

func TestRequisition_ReviewRejectsOverApproval(t *testing.T) {
	paper, ink := uuid.New(), uuid.New()

	t.Run("more than on hand", func(t *testing.T) {
		r := newRIS(t, paper, ink)
		require.NoError(t, r.StartEvaluation(nil))
		err := r.SubmitForReview([]Approval{
			{ItemID: r.Items[0].ID, ApprovedQty: 10},
			{ItemID: r.Items[1].ID, ApprovedQty: 1},
		}, map[uuid.UUID]int{paper: 9, ink: 5}, nil)
		assert.ErrorIs(t, err, shared.ErrInsufficientStock)
		assert.Equal(t, StatusEvaluating, r.Status)
	})

	t.Run("more than requested", func(t *testing.T) {
		r := newRIS(t, paper, ink)
		require.NoError(t, r.StartEvaluation(nil))
		err := r.SubmitForReview([]Approval{
			{ItemID: r.Items[0].ID, ApprovedQty: 11},
			{ItemID: r.Items[1].ID, ApprovedQty: 1},
		}, map[uuid.UUID]int{paper: 50, ink: 5}, nil)
		assert.Error(t, err)
	})

	t.Run("nothing approved", func(t *testing.T) {
		r := newRIS(t, paper, ink)
		require.NoError(t, r.StartEvaluation(nil))
		err := r.SubmitForReview([]Approval{
			{ItemID: r.Items[0].ID},
			{ItemID: r.Items[1].ID},
		}, map[uuid.UUID]int{paper: 50, ink: 5}, nil)
		assert.Error(t, err)
	})
}

func TestNewRequisition_Validation(t *testing.T) {
	asset := uuid.New()
	_, err := NewRequisition("RIS-1", uuid.New(), uuid.New(), "", nil, setting.Stamp{}, nil)
	assert.Error(t, err)

	_, err = NewRequisition("RIS-1", uuid.New(), uuid.New(), "",
		[]ItemRequest{{AssetID: asset, RequestedQty: 1}, {AssetID: asset, RequestedQty: 2}}, setting.Stamp{}, nil)
	assert.Error(t, err)

	_, err = NewRequisition("RIS-1", uuid.New(), uuid.New(), "",
		[]ItemRequest{{AssetID: asset, RequestedQty: 0}}, setting.Stamp{}, nil)
	assert.Error(t, err)
}
