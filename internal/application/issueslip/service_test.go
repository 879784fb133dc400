package issueslip

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
	env      *testdb.Env
	svc      *Service
	officer  shared.Actor
	office   uuid.UUID
	receiver uuid.UUID
}

func newFixture(t *testing.T) *fixture {
	env := testdb.NewEnv(t)
	stocks := stockapp.NewService(env.Scope, env.Repos.Entries, env.Units, zap.NewNop())
	svc := NewService(env.Scope, env.Repos.IssueSlips, stocks, env.Directory,
		fixedStamp{EntityName: "City Government", FundCluster: "01"}, zap.NewNop())

	supply := env.Office(t, "General Services Office")
	office := env.Office(t, "Accounting Office")
	receiver := env.User(t, "Ana", "Reyes", office.ID)
	return &fixture{
		env:      env,
		svc:      svc,
		officer:  shared.Actor{UserID: uuid.New(), OfficeID: supply.ID, Role: shared.RoleSupplyOfficer},
		office:   office.ID,
		receiver: receiver.ID,
	}
}

func (f *fixture) request(assetID uuid.UUID, qty int) CreateIssueSlipRequest {
	return CreateIssueSlipRequest{AssetID: assetID, OfficeID: f.office, ReceivedBy: f.receiver, Quantity: qty}
}

func TestCreate_DraftsNumberedSlip(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	laptop := f.env.Property(t, "Laptop", 10)

	first, err := f.svc.Create(ctx, f.officer, f.request(laptop.ID, 3))
	require.NoError(t, err)
	second, err := f.svc.Create(ctx, f.officer, f.request(laptop.ID, 1))
	require.NoError(t, err)

	assert.Regexp(t, `^IS-\d{4}-\d{2}-\d{2}-0001$`, first.SlipNo)
	assert.Regexp(t, `^IS-\d{4}-\d{2}-\d{2}-0002$`, second.SlipNo)
	assert.Equal(t, "pending", first.Status)
	assert.Equal(t, "City Government", first.EntityName)
	assert.Equal(t, "01", first.FundCluster)
	assert.Equal(t, f.officer.OfficeID, first.IssuingOfficeID)
	assert.Empty(t, first.Stocks)
	assert.Equal(t, 10, f.env.Quantity(t, laptop.ID))
}

func TestCreate_Rejections(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	laptop := f.env.Property(t, "Laptop", 10)

	_, err := f.svc.Create(ctx, f.officer, f.request(uuid.New(), 1))
	assert.True(t, errors.Is(err, shared.ErrNotFound))

	endUser := shared.Actor{UserID: uuid.New(), OfficeID: f.office, Role: shared.RoleEndUser}
	_, err = f.svc.Create(ctx, endUser, f.request(laptop.ID, 1))
	assert.True(t, errors.Is(err, shared.ErrForbidden))
}

func TestUpdateStatusToIssued_ReleasesUnits(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	laptop := f.env.Property(t, "Laptop", 10)

	slip, err := f.svc.Create(ctx, f.officer, f.request(laptop.ID, 3))
	require.NoError(t, err)

	issued, err := f.svc.UpdateStatusToIssued(ctx, f.officer, slip.ID)
	require.NoError(t, err)

	assert.Equal(t, "issued", issued.Status)
	require.NotNil(t, issued.IssuedAt)
	require.Len(t, issued.Stocks, 3)
	assert.Equal(t, "1", issued.Stocks[0].ItemNo)
	assert.Equal(t, "3", issued.Stocks[2].ItemNo)

	entries, err := f.env.Repos.Entries.FindByReference(ctx, slip.SlipNo)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	for _, e := range entries {
		assert.Equal(t, stock.ConditionReissued, e.Condition)
		require.NotNil(t, e.OfficeID)
		assert.Equal(t, f.office, *e.OfficeID)
	}
	assert.Equal(t, 7, f.env.Quantity(t, laptop.ID))
	f.env.RequireLedgerConsistent(t, laptop.ID)

	reloaded, err := f.svc.GetByID(ctx, slip.ID)
	require.NoError(t, err)
	assert.Len(t, reloaded.Stocks, 3)

	_, err = f.svc.UpdateStatusToIssued(ctx, f.officer, slip.ID)
	assert.True(t, errors.Is(err, shared.ErrInvalidState))
	assert.Equal(t, 7, f.env.Quantity(t, laptop.ID))
}

func TestUpdateStatusToIssued_UnknownReceiverWritesNothing(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	laptop := f.env.Property(t, "Laptop", 10)

	req := f.request(laptop.ID, 2)
	req.ReceivedBy = uuid.New()
	slip, err := f.svc.Create(ctx, f.officer, req)
	require.NoError(t, err)

	_, err = f.svc.UpdateStatusToIssued(ctx, f.officer, slip.ID)
	require.Error(t, err)
	assert.Equal(t, shared.KindNotFound, shared.KindOf(err))

	assert.Equal(t, 10, f.env.Quantity(t, laptop.ID))
	reloaded, err := f.svc.GetByID(ctx, slip.ID)
	require.NoError(t, err)
	assert.Equal(t, "pending", reloaded.Status)
}

func TestUpdateStatusToIssued_InsufficientStockRollsBack(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	laptop := f.env.Property(t, "Laptop", 10)

	first, err := f.svc.Create(ctx, f.officer, f.request(laptop.ID, 3))
	require.NoError(t, err)
	_, err = f.svc.UpdateStatusToIssued(ctx, f.officer, first.ID)
	require.NoError(t, err)

	tooMany, err := f.svc.Create(ctx, f.officer, f.request(laptop.ID, 8))
	require.NoError(t, err)
	_, err = f.svc.UpdateStatusToIssued(ctx, f.officer, tooMany.ID)
	require.Error(t, err)
	assert.Equal(t, shared.KindBadRequest, shared.KindOf(err))

	assert.Equal(t, 7, f.env.Quantity(t, laptop.ID))
	entries, err := f.env.Repos.Entries.FindByReference(ctx, tooMany.SlipNo)
	require.NoError(t, err)
	assert.Empty(t, entries)
	f.env.RequireLedgerConsistent(t, laptop.ID)
}

func TestUpdateByID(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	laptop := f.env.Property(t, "Laptop", 10)
	printer := f.env.Property(t, "Printer", 2)

	slip, err := f.svc.Create(ctx, f.officer, f.request(laptop.ID, 3))
	require.NoError(t, err)

	update := UpdateIssueSlipRequest(f.request(printer.ID, 2))
	update.Remarks = "swapped for printer"
	updated, err := f.svc.UpdateByID(ctx, f.officer, slip.ID, update)
	require.NoError(t, err)
	assert.Equal(t, printer.ID, updated.AssetID)
	assert.Equal(t, 2, updated.Quantity)
	assert.Equal(t, slip.SlipNo, updated.SlipNo)
	assert.Greater(t, updated.Version, slip.Version)

	_, err = f.svc.UpdateStatusToIssued(ctx, f.officer, slip.ID)
	require.NoError(t, err)

	_, err = f.svc.UpdateByID(ctx, f.officer, slip.ID, update)
	assert.True(t, errors.Is(err, shared.ErrInvalidState))

	_, err = f.svc.UpdateByID(ctx, f.officer, uuid.New(), update)
	assert.True(t, errors.Is(err, shared.ErrNotFound))
}

func TestList(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	laptop := f.env.Property(t, "Laptop", 10)

	a, err := f.svc.Create(ctx, f.officer, f.request(laptop.ID, 1))
	require.NoError(t, err)
	_, err = f.svc.Create(ctx, f.officer, f.request(laptop.ID, 1))
	require.NoError(t, err)
	_, err = f.svc.UpdateStatusToIssued(ctx, f.officer, a.ID)
	require.NoError(t, err)

	all, total, err := f.svc.List(ctx, ListFilter{})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, all, 2)

	issued, total, err := f.svc.List(ctx, ListFilter{Status: "issued", OfficeID: f.office.String()})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, issued, 1)
	assert.Equal(t, a.SlipNo, issued[0].SlipNo)
	assert.Len(t, issued[0].Stocks, 1)
}
