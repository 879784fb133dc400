package waste

import (
	"context"
	"errors"
	"testing"

	stockapp "github.com/govprop/backend/internal/application/stock"
	"github.com/govprop/backend/internal/domain/shared"
	"github.com/govprop/backend/internal/domain/stock"
	"github.com/govprop/backend/internal/infrastructure/persistence/testdb"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fixture struct {
	env     *testdb.Env
	svc     *Service
	stocks  *stockapp.Service
	officer shared.Actor
	office  uuid.UUID
}

func newFixture(t *testing.T) *fixture {
	env := testdb.NewEnv(t)
	stocks := stockapp.NewService(env.Scope, env.Repos.Entries, env.Units, zap.NewNop())
	supply := env.Office(t, "General Services Office")
	return &fixture{
		env:     env,
		svc:     NewService(env.Scope, env.Repos.Wastes, stocks, zap.NewNop()),
		stocks:  stocks,
		officer: shared.Actor{UserID: uuid.New(), OfficeID: supply.ID, Role: shared.RoleSupplyOfficer},
		office:  env.Office(t, "Health Office").ID,
	}
}

// unserviceable issues one unit and then marks it with condition, returning both entries
func (f *fixture) unserviceable(t *testing.T, assetID uuid.UUID, condition stock.Condition) (stock.Entry, stock.Entry) {
	t.Helper()
	ctx := context.Background()
	issued, err := f.stocks.IssueStockByBatch(ctx, f.office, nil,
		[]stock.IssueItem{{AssetID: assetID, Qty: 1, Reference: "IS-2026-02-01-0001"}})
	require.NoError(t, err)
	require.Len(t, issued, 1)

	prior := issued[0].Condition
	marked, err := f.stocks.CreateStockByBatch(ctx, f.officer.OfficeID, nil, []stock.BatchItem{{
		AssetID:          assetID,
		Reference:        "RET-2026-02-03-0001",
		Qty:              1,
		ItemNo:           issued[0].ItemNo,
		InitialCondition: &prior,
		Condition:        condition,
	}})
	require.NoError(t, err)
	return issued[0], marked[0]
}

func TestWasteLifecycle_WritesDestroyed(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	laptop := f.env.Property(t, "Laptop", 5)
	_, disposal := f.unserviceable(t, laptop.ID, stock.ConditionForDisposal)
	require.Equal(t, 4, f.env.Quantity(t, laptop.ID))

	w, err := f.svc.Create(ctx, f.officer, CreateWasteRequest{
		Items: []WasteItemRequest{{StockID: disposal.ID, Quantity: 1}},
	})
	require.NoError(t, err)
	assert.Regexp(t, `^WASTE-\d{4}-\d{2}-\d{2}-0001$`, w.WasteNo)
	assert.Equal(t, "for-disposal", w.Items[0].PriorCondition)

	completed, err := f.svc.UpdateStatusToCompleted(ctx, f.officer, w.ID)
	require.NoError(t, err)
	assert.Equal(t, "completed", completed.Status)
	require.NotNil(t, completed.CompletedAt)

	entries, err := f.env.Repos.Entries.FindByReference(ctx, w.WasteNo)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, stock.ConditionDestroyed, entries[0].Condition)
	assert.Equal(t, 4, f.env.Quantity(t, laptop.ID))
	f.env.RequireLedgerConsistent(t, laptop.ID)

	_, err = f.svc.UpdateStatusToCompleted(ctx, f.officer, w.ID)
	assert.True(t, errors.Is(err, shared.ErrInvalidState))

	_, err = f.svc.Create(ctx, f.officer, CreateWasteRequest{
		Items: []WasteItemRequest{{StockID: disposal.ID, Quantity: 1}},
	})
	assert.True(t, errors.Is(err, shared.ErrInvalidState))
}

func TestCreate_Rejections(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	laptop := f.env.Property(t, "Laptop", 5)
	issued, damaged := f.unserviceable(t, laptop.ID, stock.ConditionDamaged)

	_, err := f.svc.Create(ctx, f.officer, CreateWasteRequest{
		Items: []WasteItemRequest{{StockID: issued.ID, Quantity: 1}},
	})
	assert.True(t, errors.Is(err, shared.ErrInvalidState))

	endUser := shared.Actor{UserID: uuid.New(), OfficeID: f.office, Role: shared.RoleEndUser}
	_, err = f.svc.Create(ctx, endUser, CreateWasteRequest{
		Items: []WasteItemRequest{{StockID: damaged.ID, Quantity: 1}},
	})
	assert.True(t, errors.Is(err, shared.ErrForbidden))

	_, err = f.svc.Create(ctx, f.officer, CreateWasteRequest{
		Items: []WasteItemRequest{{StockID: uuid.New(), Quantity: 1}},
	})
	assert.True(t, errors.Is(err, shared.ErrNotFound))

	w, err := f.svc.Create(ctx, f.officer, CreateWasteRequest{
		Items: []WasteItemRequest{{StockID: damaged.ID, Quantity: 1}},
	})
	require.NoError(t, err)
	assert.Equal(t, "damaged", w.Items[0].PriorCondition)
}

func TestUpdateByID_AndList(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	laptop := f.env.Property(t, "Laptop", 5)
	_, first := f.unserviceable(t, laptop.ID, stock.ConditionForDisposal)
	_, second := f.unserviceable(t, laptop.ID, stock.ConditionDamaged)

	w, err := f.svc.Create(ctx, f.officer, CreateWasteRequest{
		Items: []WasteItemRequest{{StockID: first.ID, Quantity: 1}},
	})
	require.NoError(t, err)

	updated, err := f.svc.UpdateByID(ctx, f.officer, w.ID, UpdateWasteRequest{
		Items:   []WasteItemRequest{{StockID: first.ID, Quantity: 1}, {StockID: second.ID, Quantity: 1}},
		Remarks: "condemned by inspection",
	})
	require.NoError(t, err)
	assert.Len(t, updated.Items, 2)

	list, total, err := f.svc.List(ctx, ListFilter{Status: "pending"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, list, 1)
	assert.Len(t, list[0].Items, 2)
}
