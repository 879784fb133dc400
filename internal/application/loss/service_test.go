package loss

import (
	"context"
	"errors"
	"testing"

	stockapp "github.com/govprop/backend/internal/application/stock"
	"github.com/govprop/backend/internal/domain/loss"
	"github.com/govprop/backend/internal/domain/shared"
	"github.com/govprop/backend/internal/domain/stock"
	"github.com/govprop/backend/internal/infrastructure/persistence/testdb"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type recordingPublisher struct {
	events []shared.DomainEvent
}

func (p *recordingPublisher) Publish(_ context.Context, events ...shared.DomainEvent) error {
	p.events = append(p.events, events...)
	return nil
}

func (p *recordingPublisher) types() []string {
	out := make([]string, len(p.events))
	for i, e := range p.events {
		out[i] = e.EventType()
	}
	return out
}

type fixture struct {
	env       *testdb.Env
	svc       *Service
	stocks    *stockapp.Service
	published *recordingPublisher
	officer   shared.Actor
	holder    shared.Actor
	reporter  uuid.UUID
}

func newFixture(t *testing.T) *fixture {
	env := testdb.NewEnv(t)
	stocks := stockapp.NewService(env.Scope, env.Repos.Entries, env.Units, zap.NewNop())
	svc := NewService(env.Scope, env.Repos.Losses, stocks, env.Directory, zap.NewNop())
	published := &recordingPublisher{}
	svc.SetEventPublisher(published)

	supply := env.Office(t, "General Services Office")
	office := env.Office(t, "Engineering Office")
	reporter := env.User(t, "Lito", "Cruz", office.ID)
	return &fixture{
		env:       env,
		svc:       svc,
		stocks:    stocks,
		published: published,
		officer:   shared.Actor{UserID: uuid.New(), OfficeID: supply.ID, Role: shared.RoleSupplyOfficer},
		holder:    shared.Actor{UserID: reporter.ID, OfficeID: office.ID, Role: shared.RoleEndUser},
		reporter:  reporter.ID,
	}
}

func (f *fixture) issue(t *testing.T, assetID uuid.UUID, qty int) []stock.Entry {
	t.Helper()
	entries, err := f.stocks.IssueStockByBatch(context.Background(), f.holder.OfficeID, f.officer.UserRef(),
		[]stock.IssueItem{{AssetID: assetID, Qty: qty, Reference: "IS-2026-01-05-0001"}})
	require.NoError(t, err)
	return entries
}

func (f *fixture) report(entry stock.Entry, condition string) CreateLossRequest {
	return CreateLossRequest{
		ReportedBy: f.reporter,
		Items: []LossItemRequest{{
			StockID: entry.ID, Quantity: 1, Condition: condition, Circumstances: "taken from the site office",
		}},
	}
}

func TestLossLifecycle_StatusOnly(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	laptop := f.env.Property(t, "Laptop", 10)
	issued := f.issue(t, laptop.ID, 2)
	require.Equal(t, 8, f.env.Quantity(t, laptop.ID))

	l, err := f.svc.Create(ctx, f.holder, f.report(issued[0], "stolen"))
	require.NoError(t, err)
	assert.Regexp(t, `^LOSS-\d{4}-\d{2}-\d{2}-0001$`, l.LossNo)
	assert.Equal(t, "pending", l.Status)
	assert.Equal(t, []string{loss.EventTypeLossReported}, f.published.types())

	_, err = f.svc.UpdateStatusToApproved(ctx, f.officer, l.ID)
	require.NoError(t, err)
	completed, err := f.svc.UpdateStatusToCompleted(ctx, f.officer, l.ID)
	require.NoError(t, err)
	assert.Equal(t, "completed", completed.Status)

	assert.Equal(t, 8, f.env.Quantity(t, laptop.ID))
	f.env.RequireLedgerConsistent(t, laptop.ID)

	entries, err := f.env.Repos.Entries.FindByReference(ctx, l.LossNo)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, stock.ConditionStolen, entries[0].Condition)
	assert.Equal(t, issued[0].ItemNo, entries[0].ItemNo)
	require.NotNil(t, entries[0].OfficeID)
	assert.Equal(t, f.holder.OfficeID, *entries[0].OfficeID)

	assert.Equal(t, []string{
		loss.EventTypeLossReported,
		loss.EventTypeLossApproved,
		loss.EventTypeLossCompleted,
	}, f.published.types())
}

func TestCreate_Rejections(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	laptop := f.env.Property(t, "Laptop", 10)
	issued := f.issue(t, laptop.ID, 1)

	_, err := f.svc.Create(ctx, f.holder, f.report(issued[0], "returned"))
	assert.True(t, errors.Is(err, shared.ErrInvalidInput))

	other := shared.Actor{UserID: uuid.New(), OfficeID: f.env.Office(t, "Library").ID, Role: shared.RoleEndUser}
	_, err = f.svc.Create(ctx, other, f.report(issued[0], "lost"))
	assert.True(t, errors.Is(err, shared.ErrForbidden))

	_, err = f.svc.Create(ctx, f.holder, CreateLossRequest{ReportedBy: f.reporter})
	assert.True(t, errors.Is(err, shared.ErrInvalidInput))

	assert.Empty(t, f.published.events)
}

func TestUpdateStatusToCompleted_RequiresApproval(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	laptop := f.env.Property(t, "Laptop", 10)
	issued := f.issue(t, laptop.ID, 1)

	l, err := f.svc.Create(ctx, f.holder, f.report(issued[0], "damaged"))
	require.NoError(t, err)

	_, err = f.svc.UpdateStatusToCompleted(ctx, f.officer, l.ID)
	assert.True(t, errors.Is(err, shared.ErrInvalidState))
	_, err = f.svc.UpdateStatusToApproved(ctx, f.holder, l.ID)
	assert.True(t, errors.Is(err, shared.ErrForbidden))

	entries, err := f.env.Repos.Entries.FindByReference(ctx, l.LossNo)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestUpdateByID(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	laptop := f.env.Property(t, "Laptop", 10)
	issued := f.issue(t, laptop.ID, 2)

	l, err := f.svc.Create(ctx, f.holder, f.report(issued[0], "lost"))
	require.NoError(t, err)

	updated, err := f.svc.UpdateByID(ctx, f.holder, l.ID, UpdateLossRequest{
		Items:   []LossItemRequest{{StockID: issued[1].ID, Quantity: 1, Condition: "destroyed"}},
		Remarks: "fire in storage room",
	})
	require.NoError(t, err)
	require.Len(t, updated.Items, 1)
	assert.Equal(t, "destroyed", updated.Items[0].Condition)

	reloaded, err := f.svc.GetByID(ctx, l.ID)
	require.NoError(t, err)
	require.Len(t, reloaded.Items, 1)
	assert.Equal(t, issued[1].ID, reloaded.Items[0].StockID)

	list, total, err := f.svc.List(ctx, ListFilter{Status: "pending"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Len(t, list, 1)
}
