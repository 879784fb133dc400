// Package testdb opens migrated in-memory sqlite databases for service tests.
package testdb

import (
	"context"
	"testing"

	"github.com/govprop/backend/internal/application/txn"
	"github.com/govprop/backend/internal/domain/asset"
	"github.com/govprop/backend/internal/domain/directory"
	"github.com/govprop/backend/internal/infrastructure/persistence"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Open returns a fresh database with every table migrated. The pool is pinned to one
// connection so all sessions see the same in-memory database.
func Open(t testing.TB) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(persistence.AllModels()...))
	return db
}

// Env bundles a database with the repositories and transaction scope built on it
type Env struct {
	DB        *gorm.DB
	Repos     txn.Repositories
	Scope     *persistence.GormTransactionScope
	Units     *persistence.GoquUnitReader
	Directory *persistence.GormDirectory
}

// NewEnv opens a database and wires the GORM repositories
func NewEnv(t testing.TB) *Env {
	db := Open(t)
	return &Env{
		DB:        db,
		Repos:     persistence.NewRepositories(db),
		Scope:     persistence.NewGormTransactionScope(db),
		Units:     persistence.NewGoquUnitReader(db),
		Directory: persistence.NewGormDirectory(db),
	}
}

// Consumable stores a consumable asset with qty units on hand
func (e *Env) Consumable(t testing.TB, name string, qty int) *asset.Asset {
	t.Helper()
	a, err := asset.NewConsumable(name, "", "piece", decimal.NewFromInt(25), "", qty)
	require.NoError(t, err)
	require.NoError(t, e.Repos.Assets.Save(context.Background(), a))
	return a
}

// Property stores a SEP asset with qty registered units
func (e *Env) Property(t testing.TB, name string, qty int) *asset.Asset {
	t.Helper()
	pn := asset.PropertyNumber{Year: 2026, PropertyCode: "ICT", SerialNumber: "SN", Location: "GSO", Counter: 1}
	a, err := asset.NewProperty(asset.TypeSEP, name, "", "unit", decimal.NewFromInt(45000), "", qty, pn)
	require.NoError(t, err)
	require.NoError(t, e.Repos.Assets.Save(context.Background(), a))
	return a
}

// Office stores an office
func (e *Env) Office(t testing.TB, name string) *directory.Office {
	t.Helper()
	o := &directory.Office{ID: uuid.New(), Name: name, Code: name}
	require.NoError(t, e.Directory.SaveOffice(context.Background(), o))
	return o
}

// User stores a user assigned to officeID
func (e *Env) User(t testing.TB, first, last string, officeID uuid.UUID) *directory.User {
	t.Helper()
	id := uuid.New()
	u := &directory.User{ID: id, FirstName: first, LastName: last, Email: id.String() + "@example.gov", OfficeID: &officeID}
	require.NoError(t, e.Directory.SaveUser(context.Background(), u))
	return u
}

// Quantity reloads an asset's cached quantity
func (e *Env) Quantity(t testing.TB, id uuid.UUID) int {
	t.Helper()
	a, err := e.Repos.Assets.FindByID(context.Background(), id)
	require.NoError(t, err)
	return a.Quantity
}

// RequireLedgerConsistent checks quantity == initialQty - outs + ins for an asset
func (e *Env) RequireLedgerConsistent(t testing.TB, id uuid.UUID) {
	t.Helper()
	ctx := context.Background()
	a, err := e.Repos.Assets.FindByID(ctx, id)
	require.NoError(t, err)
	ins, outs, err := e.Repos.Entries.SumMovements(ctx, id)
	require.NoError(t, err)
	require.Equal(t, a.InitialQty-outs+ins, a.Quantity, "cached quantity diverged from the ledger")
}
