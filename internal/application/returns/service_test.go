package returns

import (
	"context"
	"errors"
	"testing"

	issueslipapp "github.com/govprop/backend/internal/application/issueslip"
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

type blankStamp struct{}

func (blankStamp) DocumentStamp(context.Context) (setting.Stamp, error) {
	return setting.Stamp{}, nil
}

type fixture struct {
	env      *testdb.Env
	svc      *Service
	slips    *issueslipapp.Service
	officer  shared.Actor
	holder   shared.Actor
	receiver uuid.UUID
}

func newFixture(t *testing.T) *fixture {
	env := testdb.NewEnv(t)
	stocks := stockapp.NewService(env.Scope, env.Repos.Entries, env.Units, zap.NewNop())

	supply := env.Office(t, "General Services Office")
	office := env.Office(t, "Treasury Office")
	receiver := env.User(t, "Jose", "Santos", office.ID)

	return &fixture{
		env:      env,
		svc:      NewService(env.Scope, env.Repos.Returns, stocks, env.Directory, zap.NewNop()),
		slips:    issueslipapp.NewService(env.Scope, env.Repos.IssueSlips, stocks, env.Directory, blankStamp{}, zap.NewNop()),
		officer:  shared.Actor{UserID: uuid.New(), OfficeID: supply.ID, Role: shared.RoleSupplyOfficer},
		holder:   shared.Actor{UserID: receiver.ID, OfficeID: office.ID, Role: shared.RoleEndUser},
		receiver: receiver.ID,
	}
}

// issue releases qty units of assetID to the holder's office and returns the new entries
func (f *fixture) issue(t *testing.T, assetID uuid.UUID, qty int) []stock.Entry {
	t.Helper()
	ctx := context.Background()
	slip, err := f.slips.Create(ctx, f.officer, issueslipapp.CreateIssueSlipRequest{
		AssetID: assetID, OfficeID: f.holder.OfficeID, ReceivedBy: f.receiver, Quantity: qty,
	})
	require.NoError(t, err)
	_, err = f.slips.UpdateStatusToIssued(ctx, f.officer, slip.ID)
	require.NoError(t, err)
	entries, err := f.env.Repos.Entries.FindByReference(ctx, slip.SlipNo)
	require.NoError(t, err)
	return entries
}

func (f *fixture) returnOne(entry stock.Entry, remark string) CreateReturnRequest {
	return CreateReturnRequest{
		ReturnedBy: f.receiver,
		Items:      []ReturnItemRequest{{StockID: entry.ID, Quantity: 1, StockRemarks: remark}},
	}
}

func TestReturnForReissue_RestoresPool(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	laptop := f.env.Property(t, "Laptop", 10)
	issued := f.issue(t, laptop.ID, 3)
	require.Len(t, issued, 3)
	assert.Equal(t, 7, f.env.Quantity(t, laptop.ID))

	r, err := f.svc.Create(ctx, f.holder, f.returnOne(issued[0], "for-reissue"))
	require.NoError(t, err)
	assert.Regexp(t, `^RET-\d{4}-\d{2}-\d{2}-0001$`, r.ReturnNo)
	assert.Equal(t, "pending", r.Status)
	assert.Equal(t, "reissued", r.Items[0].PriorCondition)

	_, err = f.svc.UpdateStatusToApproved(ctx, f.officer, r.ID)
	require.NoError(t, err)
	completed, err := f.svc.UpdateStatusToCompleted(ctx, f.officer, r.ID)
	require.NoError(t, err)
	assert.Equal(t, "completed", completed.Status)
	require.NotNil(t, completed.CompletedAt)

	assert.Equal(t, 8, f.env.Quantity(t, laptop.ID))
	f.env.RequireLedgerConsistent(t, laptop.ID)

	entries, err := f.env.Repos.Entries.FindByReference(ctx, r.ReturnNo)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, stock.ConditionReturned, entries[0].Condition)
	assert.Equal(t, issued[0].ItemNo, entries[0].ItemNo)
	require.NotNil(t, entries[0].InitialCondition)
	assert.Equal(t, stock.ConditionReissued, *entries[0].InitialCondition)
}

func TestReturnForDisposal_LeavesPoolUnchanged(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	laptop := f.env.Property(t, "Laptop", 10)
	issued := f.issue(t, laptop.ID, 2)

	r, err := f.svc.Create(ctx, f.holder, f.returnOne(issued[1], "for-disposal"))
	require.NoError(t, err)
	_, err = f.svc.UpdateStatusToApproved(ctx, f.officer, r.ID)
	require.NoError(t, err)
	_, err = f.svc.UpdateStatusToCompleted(ctx, f.officer, r.ID)
	require.NoError(t, err)

	assert.Equal(t, 8, f.env.Quantity(t, laptop.ID))
	f.env.RequireLedgerConsistent(t, laptop.ID)
	entries, err := f.env.Repos.Entries.FindByReference(ctx, r.ReturnNo)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, stock.ConditionForDisposal, entries[0].Condition)
}

func TestCreate_RejectsUnitsNotHeld(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	laptop := f.env.Property(t, "Laptop", 10)
	issued := f.issue(t, laptop.ID, 1)

	stranger := shared.Actor{UserID: uuid.New(), OfficeID: f.env.Office(t, "Assessor").ID, Role: shared.RoleEndUser}
	_, err := f.svc.Create(ctx, stranger, f.returnOne(issued[0], "for-reissue"))
	assert.True(t, errors.Is(err, shared.ErrForbidden))

	req := f.returnOne(issued[0], "for-reissue")
	req.Items[0].Quantity = 2
	_, err = f.svc.Create(ctx, f.holder, req)
	assert.True(t, errors.Is(err, shared.ErrInvalidInput))

	req = f.returnOne(issued[0], "for-reissue")
	req.ReturnedBy = uuid.New()
	_, err = f.svc.Create(ctx, f.holder, req)
	assert.Equal(t, shared.KindNotFound, shared.KindOf(err))
}

func TestUpdateStatusToCompleted_Guards(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	laptop := f.env.Property(t, "Laptop", 10)
	issued := f.issue(t, laptop.ID, 1)

	r, err := f.svc.Create(ctx, f.holder, f.returnOne(issued[0], "for-reissue"))
	require.NoError(t, err)

	_, err = f.svc.UpdateStatusToCompleted(ctx, f.officer, r.ID)
	assert.True(t, errors.Is(err, shared.ErrInvalidState))

	_, err = f.svc.UpdateStatusToApproved(ctx, f.holder, r.ID)
	assert.True(t, errors.Is(err, shared.ErrForbidden))
	_, err = f.svc.UpdateStatusToApproved(ctx, f.officer, r.ID)
	require.NoError(t, err)

	otherSupply := shared.Actor{UserID: uuid.New(), OfficeID: f.env.Office(t, "Motorpool").ID, Role: shared.RoleSupplyOfficer}
	_, err = f.svc.UpdateStatusToCompleted(ctx, otherSupply, r.ID)
	assert.True(t, errors.Is(err, shared.ErrForbidden))
	assert.Equal(t, 9, f.env.Quantity(t, laptop.ID))

	_, err = f.svc.UpdateStatusToCompleted(ctx, f.officer, r.ID)
	require.NoError(t, err)
	_, err = f.svc.UpdateStatusToCompleted(ctx, f.officer, r.ID)
	assert.True(t, errors.Is(err, shared.ErrInvalidState))
	assert.Equal(t, 10, f.env.Quantity(t, laptop.ID))
}

func TestCreate_RejectsSupersededEntry(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	laptop := f.env.Property(t, "Laptop", 10)
	issued := f.issue(t, laptop.ID, 1)

	first, err := f.svc.Create(ctx, f.holder, f.returnOne(issued[0], "for-reissue"))
	require.NoError(t, err)
	_, err = f.svc.UpdateStatusToApproved(ctx, f.officer, first.ID)
	require.NoError(t, err)
	_, err = f.svc.UpdateStatusToCompleted(ctx, f.officer, first.ID)
	require.NoError(t, err)

	_, err = f.svc.Create(ctx, f.holder, f.returnOne(issued[0], "for-reissue"))
	assert.True(t, errors.Is(err, shared.ErrInvalidState))
}

func TestUpdateByID_AndList(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	laptop := f.env.Property(t, "Laptop", 10)
	issued := f.issue(t, laptop.ID, 2)

	r, err := f.svc.Create(ctx, f.holder, f.returnOne(issued[0], "for-reissue"))
	require.NoError(t, err)

	updated, err := f.svc.UpdateByID(ctx, f.holder, r.ID, UpdateReturnRequest{
		Items:   []ReturnItemRequest{{StockID: issued[1].ID, Quantity: 1, StockRemarks: "for-disposal"}},
		Remarks: "wrong unit",
	})
	require.NoError(t, err)
	require.Len(t, updated.Items, 1)
	assert.Equal(t, issued[1].ID, updated.Items[0].StockID)
	assert.Equal(t, "wrong unit", updated.Remarks)

	list, total, err := f.svc.List(ctx, ListFilter{Status: "pending", OfficeID: f.holder.OfficeID.String()})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, list, 1)
	assert.Equal(t, r.ReturnNo, list[0].ReturnNo)

	_, err = f.svc.GetByID(ctx, uuid.New())
	assert.True(t, errors.Is(err, shared.ErrNotFound))
}

func TestUpdateStatusToCompleted_UnknownOriginNeedsAdmin(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	stocks := stockapp.NewService(f.env.Scope, f.env.Repos.Entries, f.env.Units, zap.NewNop())
	laptop := f.env.Property(t, "Laptop", 4)
	issued, err := stocks.IssueStockByBatch(ctx, f.holder.OfficeID, nil,
		[]stock.IssueItem{{AssetID: laptop.ID, Qty: 1, Reference: "LEGACY-0042"}})
	require.NoError(t, err)

	r, err := f.svc.Create(ctx, f.holder, f.returnOne(issued[0], "for-reissue"))
	require.NoError(t, err)
	_, err = f.svc.UpdateStatusToApproved(ctx, f.officer, r.ID)
	require.NoError(t, err)

	_, err = f.svc.UpdateStatusToCompleted(ctx, f.officer, r.ID)
	assert.True(t, errors.Is(err, shared.ErrForbidden))

	admin := shared.Actor{UserID: uuid.New(), OfficeID: f.officer.OfficeID, Role: shared.RoleAdmin}
	_, err = f.svc.UpdateStatusToCompleted(ctx, admin, r.ID)
	require.NoError(t, err)
	assert.Equal(t, 4, f.env.Quantity(t, laptop.ID))
}
