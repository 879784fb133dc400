package persistence_test

import (
	"context"
	"database/sql"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	assetapp "github.com/govprop/backend/internal/application/asset"
	stockapp "github.com/govprop/backend/internal/application/stock"
	"github.com/govprop/backend/internal/domain/shared"
	"github.com/govprop/backend/internal/domain/stock"
	"github.com/govprop/backend/internal/infrastructure/migration"
	"github.com/govprop/backend/internal/infrastructure/persistence"
	_ "github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/zap"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// startPostgres runs a throwaway PostgreSQL container and applies the embedded migrations
func startPostgres(t *testing.T) *gorm.DB {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping PostgreSQL container test in short mode")
	}
	ctx := context.Background()

	container, err := tcpostgres.Run(ctx,
		"postgres:16-alpine",
		tcpostgres.WithDatabase("govprop_test"),
		tcpostgres.WithUsername("postgres"),
		tcpostgres.WithPassword("postgres"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	require.NoError(t, err, "Failed to start PostgreSQL container")
	t.Cleanup(func() { _ = container.Terminate(context.Background()) })

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	sqlDB, err := sql.Open("postgres", dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	migrator, err := migration.New(sqlDB, zap.NewNop())
	require.NoError(t, err)
	require.NoError(t, migrator.Up())

	db, err := gorm.Open(gormpostgres.New(gormpostgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return db
}

func TestPostgres_MigratedSchemaCarriesTheLedger(t *testing.T) {
	db := startPostgres(t)
	ctx := context.Background()

	repos := persistence.NewRepositories(db)
	scope := persistence.NewGormTransactionScope(db)
	stocks := stockapp.NewService(scope, repos.Entries, persistence.NewGoquUnitReader(db), zap.NewNop())
	assets := assetapp.NewService(scope, repos.Assets)
	officer := shared.Actor{UserID: uuid.New(), OfficeID: uuid.New(), Role: shared.RoleSupplyOfficer}
	office := uuid.New()

	laptop, err := assets.CreateProperty(ctx, officer, assetapp.CreatePropertyRequest{
		Type:         "sep",
		Name:         "Laptop",
		Unit:         "unit",
		Cost:         decimal.NewFromInt(45000),
		Quantity:     4,
		Year:         2026,
		PropertyCode: "ICT",
		SerialNumber: "SN-001",
		Location:     "GSO",
	})
	require.NoError(t, err)

	entries, err := stocks.IssueStockByBatch(ctx, office, officer.UserRef(), []stock.IssueItem{
		{AssetID: laptop.ID, Qty: 3, Reference: "IS-2026-10-16-0001"},
	})
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, 1, entries[2].Balance)

	current, err := stocks.CurrentUnits(ctx, laptop.ID)
	require.NoError(t, err)
	require.Len(t, current, 3)
	for i, e := range current {
		assert.Equal(t, string(stock.ConditionReissued), e.Condition)
		assert.Equal(t, []string{"1", "2", "3"}[i], e.ItemNo)
	}

	stored, err := repos.Assets.FindByID(ctx, laptop.ID)
	require.NoError(t, err)
	ins, outs, err := repos.Entries.SumMovements(ctx, laptop.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, stored.Quantity)
	assert.Equal(t, stored.InitialQty-outs+ins, stored.Quantity)

	_, err = stocks.IssueStockByBatch(ctx, office, nil, []stock.IssueItem{{AssetID: laptop.ID, Qty: 2}})
	require.Error(t, err)
	assert.Equal(t, shared.KindBadRequest, shared.KindOf(err))
}

func TestPostgres_CountersAreGapFreeUnderContention(t *testing.T) {
	db := startPostgres(t)
	counters := persistence.NewGormCounterRepository(db)
	ctx := context.Background()

	const workers = 8
	values := make(chan int64, workers)
	var wg sync.WaitGroup
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := db.Transaction(func(tx *gorm.DB) error {
				v, err := persistence.NewGormCounterRepository(tx).IncrementCounterByType(ctx, "issue-slip")
				values <- v
				return err
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()
	close(values)

	seen := map[int64]bool{}
	for v := range values {
		seen[v] = true
	}
	assert.Len(t, seen, workers)
	for i := int64(1); i <= workers; i++ {
		assert.True(t, seen[i], "missing counter value %d", i)
	}

	next, err := counters.IncrementCounterByType(ctx, "issue-slip")
	require.NoError(t, err)
	assert.Equal(t, int64(workers+1), next)
}
