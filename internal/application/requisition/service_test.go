package requisition

import (
	"context"
	"errors"
	"testing"

	stockapp "github.com/govprop/backend/internal/application/stock"
	"github.com/govprop/backend/internal/domain/setting"
	"github.com/govprop/backend/internal/domain/shared"
	"github.com/govprop/backend/internal/domain/stock"
	"github.com/govprop/backend/internal/infrastructure/persistence/testdb"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fixedStamp setting.Stamp

func (f fixedStamp) DocumentStamp(context.Context) (setting.Stamp, error) {
	return setting.Stamp(f), nil
}

type fixture struct {
	env       *testdb.Env
	svc       *Service
	officer   shared.Actor
	requester shared.Actor
}

func newFixture(t *testing.T) *fixture {
	env := testdb.NewEnv(t)
	stocks := stockapp.NewService(env.Scope, env.Repos.Entries, env.Units, zap.NewNop())
	supply := env.Office(t, "General Services Office")
	office := env.Office(t, "Social Welfare Office")
	user := env.User(t, "Carmen", "Dela Cruz", office.ID)
	return &fixture{
		env: env,
		svc: NewService(env.Scope, env.Repos.Requisitions, stocks, env.Directory,
			fixedStamp{EntityName: "Provincial Government", FundCluster: "101"}, zap.NewNop()),
		officer:   shared.Actor{UserID: uuid.New(), OfficeID: supply.ID, Role: shared.RoleSupplyOfficer},
		requester: shared.Actor{UserID: user.ID, OfficeID: office.ID, Role: shared.RoleEndUser},
	}
}

func (f *fixture) create(t *testing.T, items ...ItemRequest) *RequisitionResponse {
	t.Helper()
	r, err := f.svc.Create(context.Background(), f.requester, CreateRequisitionRequest{
		RequestedBy: f.requester.UserID,
		Purpose:     "quarterly office supplies",
		Items:       items,
	})
	require.NoError(t, err)
	return r
}

func (f *fixture) approveAll(t *testing.T, r *RequisitionResponse, qty map[uuid.UUID]int) *RequisitionResponse {
	t.Helper()
	ctx := context.Background()
	_, err := f.svc.UpdateStatusToEvaluating(ctx, f.officer, r.ID)
	require.NoError(t, err)

	approvals := make([]ApprovalRequest, len(r.Items))
	for i, it := range r.Items {
		approvals[i] = ApprovalRequest{ItemID: it.ID, ApprovedQty: qty[it.AssetID]}
	}
	_, err = f.svc.UpdateStatusToForReview(ctx, f.officer, r.ID, ReviewRequest{Items: approvals})
	require.NoError(t, err)
	pending, err := f.svc.UpdateStatusToPending(ctx, f.officer, r.ID)
	require.NoError(t, err)
	return pending
}

func TestRequisitionLifecycle_IssuesApprovedQuantities(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	paper := f.env.Consumable(t, "Bond paper", 100)
	ink := f.env.Consumable(t, "Printer ink", 10)

	r := f.create(t,
		ItemRequest{AssetID: paper.ID, RequestedQty: 30},
		ItemRequest{AssetID: ink.ID, RequestedQty: 5},
	)
	assert.Regexp(t, `^RIS-\d{4}-\d{2}-\d{2}-0001$`, r.RISNo)
	assert.Equal(t, "for-evaluation", r.Status)
	assert.Equal(t, "Provincial Government", r.EntityName)

	pending := f.approveAll(t, r, map[uuid.UUID]int{paper.ID: 20, ink.ID: 0})
	assert.Equal(t, "pending", pending.Status)

	issued, err := f.svc.UpdateStatusToIssued(ctx, f.officer, r.ID)
	require.NoError(t, err)
	assert.Equal(t, "issued", issued.Status)
	require.NotNil(t, issued.IssuingOfficeID)
	assert.Equal(t, f.officer.OfficeID, *issued.IssuingOfficeID)

	assert.Equal(t, 80, f.env.Quantity(t, paper.ID))
	assert.Equal(t, 10, f.env.Quantity(t, ink.ID))
	f.env.RequireLedgerConsistent(t, paper.ID)

	entries, err := f.env.Repos.Entries.FindByReference(ctx, r.RISNo)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, stock.ConditionReissued, entries[0].Condition)
	assert.Equal(t, 20, entries[0].Outs)
	assert.Empty(t, entries[0].ItemNo)

	for _, it := range issued.Items {
		if it.AssetID == paper.ID {
			require.NotNil(t, it.StockID)
			assert.Equal(t, entries[0].ID, *it.StockID)
		} else {
			assert.Nil(t, it.StockID)
		}
	}

	byNo, err := f.svc.GetByRISNo(ctx, r.RISNo)
	require.NoError(t, err)
	assert.Equal(t, r.ID, byNo.ID)

	_, err = f.svc.UpdateStatusToIssued(ctx, f.officer, r.ID)
	assert.True(t, errors.Is(err, shared.ErrInvalidState))
	assert.Equal(t, 80, f.env.Quantity(t, paper.ID))
}

func TestCreate_RejectsUnitTrackedAssets(t *testing.T) {
	f := newFixture(t)
	laptop := f.env.Property(t, "Laptop", 5)

	_, err := f.svc.Create(context.Background(), f.requester, CreateRequisitionRequest{
		RequestedBy: f.requester.UserID,
		Items:       []ItemRequest{{AssetID: laptop.ID, RequestedQty: 1}},
	})
	assert.True(t, errors.Is(err, shared.ErrInvalidInput))
}

func TestUpdateStatusToForReview_ChecksStockOnHand(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	paper := f.env.Consumable(t, "Bond paper", 10)
	r := f.create(t, ItemRequest{AssetID: paper.ID, RequestedQty: 30})

	_, err := f.svc.UpdateStatusToForReview(ctx, f.officer, r.ID, ReviewRequest{
		Items: []ApprovalRequest{{ItemID: r.Items[0].ID, ApprovedQty: 5}},
	})
	assert.True(t, errors.Is(err, shared.ErrInvalidState))

	_, err = f.svc.UpdateStatusToEvaluating(ctx, f.requester, r.ID)
	assert.True(t, errors.Is(err, shared.ErrForbidden))
	_, err = f.svc.UpdateStatusToEvaluating(ctx, f.officer, r.ID)
	require.NoError(t, err)

	_, err = f.svc.UpdateStatusToForReview(ctx, f.officer, r.ID, ReviewRequest{
		Items: []ApprovalRequest{{ItemID: r.Items[0].ID, ApprovedQty: 25}},
	})
	assert.True(t, errors.Is(err, shared.ErrInsufficientStock))

	_, err = f.svc.UpdateStatusToForReview(ctx, f.officer, r.ID, ReviewRequest{
		Items: []ApprovalRequest{{ItemID: r.Items[0].ID, ApprovedQty: 0}},
	})
	assert.True(t, errors.Is(err, shared.ErrInvalidInput))

	reviewed, err := f.svc.UpdateStatusToForReview(ctx, f.officer, r.ID, ReviewRequest{
		Items: []ApprovalRequest{{ItemID: r.Items[0].ID, ApprovedQty: 10}},
	})
	require.NoError(t, err)
	assert.Equal(t, "for-review", reviewed.Status)
	assert.Equal(t, 10, reviewed.Items[0].ApprovedQty)
}

func TestUpdateStatusToIssued_InsufficientStockRollsBack(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	paper := f.env.Consumable(t, "Bond paper", 10)

	first := f.create(t, ItemRequest{AssetID: paper.ID, RequestedQty: 8})
	second := f.create(t, ItemRequest{AssetID: paper.ID, RequestedQty: 8})
	f.approveAll(t, first, map[uuid.UUID]int{paper.ID: 8})
	f.approveAll(t, second, map[uuid.UUID]int{paper.ID: 8})

	_, err := f.svc.UpdateStatusToIssued(ctx, f.officer, first.ID)
	require.NoError(t, err)
	_, err = f.svc.UpdateStatusToIssued(ctx, f.officer, second.ID)
	assert.True(t, errors.Is(err, shared.ErrInsufficientStock))

	assert.Equal(t, 2, f.env.Quantity(t, paper.ID))
	reloaded, err := f.svc.GetByID(ctx, second.ID)
	require.NoError(t, err)
	assert.Equal(t, "pending", reloaded.Status)
	entries, err := f.env.Repos.Entries.FindByReference(ctx, second.RISNo)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestUpdateAndCancel(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	paper := f.env.Consumable(t, "Bond paper", 100)
	folders := f.env.Consumable(t, "Folders", 50)
	r := f.create(t, ItemRequest{AssetID: paper.ID, RequestedQty: 10})

	updated, err := f.svc.UpdateByID(ctx, f.requester, r.ID, UpdateRequisitionRequest{
		Purpose: "seminar kits",
		Items:   []ItemRequest{{AssetID: paper.ID, RequestedQty: 5}, {AssetID: folders.ID, RequestedQty: 20}},
	})
	require.NoError(t, err)
	assert.Equal(t, "seminar kits", updated.Purpose)
	assert.Len(t, updated.Items, 2)

	outsider := shared.Actor{UserID: uuid.New(), OfficeID: uuid.New(), Role: shared.RoleEndUser}
	_, err = f.svc.UpdateStatusToCancelled(ctx, outsider, r.ID, CancelRequest{Reason: "not mine"})
	assert.True(t, errors.Is(err, shared.ErrForbidden))

	cancelled, err := f.svc.UpdateStatusToCancelled(ctx, f.requester, r.ID, CancelRequest{Reason: "seminar postponed"})
	require.NoError(t, err)
	assert.Equal(t, "cancelled", cancelled.Status)
	assert.Equal(t, "seminar postponed", cancelled.CancelReason)

	_, err = f.svc.UpdateStatusToEvaluating(ctx, f.officer, r.ID)
	assert.True(t, errors.Is(err, shared.ErrInvalidState))

	list, total, err := f.svc.List(ctx, ListFilter{Status: "cancelled", OfficeID: f.requester.OfficeID.String()})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Len(t, list, 1)
}
