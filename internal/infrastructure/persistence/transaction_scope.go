package persistence

import (
	"context"

	"github.com/govprop/backend/internal/application/txn"
	"github.com/govprop/backend/internal/domain/asset"
	"github.com/govprop/backend/internal/domain/counter"
	"github.com/govprop/backend/internal/domain/issueslip"
	"github.com/govprop/backend/internal/domain/loss"
	"github.com/govprop/backend/internal/domain/maintenance"
	"github.com/govprop/backend/internal/domain/requisition"
	"github.com/govprop/backend/internal/domain/returns"
	"github.com/govprop/backend/internal/domain/stock"
	"github.com/govprop/backend/internal/domain/waste"
	"gorm.io/gorm"
)

// GormTransactionScope implements txn.TransactionScope using GORM transactions.
type GormTransactionScope struct {
	db *gorm.DB
}

// NewGormTransactionScope creates a new GormTransactionScope.
func NewGormTransactionScope(db *gorm.DB) *GormTransactionScope {
	return &GormTransactionScope{db: db}
}

// Execute runs fn inside one database transaction. Any error rolls the whole unit back.
func (s *GormTransactionScope) Execute(ctx context.Context, fn func(repos txn.TransactionalRepositories) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormTransactionalRepositories{tx: tx})
	})
}

type gormTransactionalRepositories struct {
	tx *gorm.DB
}

func (r *gormTransactionalRepositories) AssetRepo() asset.Repository {
	return NewGormAssetRepository(r.tx)
}

func (r *gormTransactionalRepositories) EntryRepo() stock.EntryRepository {
	return NewGormStockEntryRepository(r.tx)
}

func (r *gormTransactionalRepositories) UnitReader() stock.UnitReader {
	return NewGoquUnitReader(r.tx)
}

func (r *gormTransactionalRepositories) CounterRepo() counter.Repository {
	return NewGormCounterRepository(r.tx)
}

func (r *gormTransactionalRepositories) IssueSlipRepo() issueslip.Repository {
	return NewGormIssueSlipRepository(r.tx)
}

func (r *gormTransactionalRepositories) ReturnRepo() returns.Repository {
	return NewGormReturnRepository(r.tx)
}

func (r *gormTransactionalRepositories) LossRepo() loss.Repository {
	return NewGormLossRepository(r.tx)
}

func (r *gormTransactionalRepositories) WasteRepo() waste.Repository {
	return NewGormWasteRepository(r.tx)
}

func (r *gormTransactionalRepositories) MaintenanceRepo() maintenance.Repository {
	return NewGormMaintenanceRepository(r.tx)
}

func (r *gormTransactionalRepositories) RequisitionRepo() requisition.Repository {
	return NewGormRequisitionRepository(r.tx)
}

// NewRepositories builds non-transactional repositories over db
func NewRepositories(db *gorm.DB) txn.Repositories {
	return txn.Repositories{
		Assets:       NewGormAssetRepository(db),
		Entries:      NewGormStockEntryRepository(db),
		Units:        NewGoquUnitReader(db),
		Counters:     NewGormCounterRepository(db),
		IssueSlips:   NewGormIssueSlipRepository(db),
		Returns:      NewGormReturnRepository(db),
		Losses:       NewGormLossRepository(db),
		Wastes:       NewGormWasteRepository(db),
		Maintenances: NewGormMaintenanceRepository(db),
		Requisitions: NewGormRequisitionRepository(db),
	}
}

var (
	_ txn.TransactionScope          = (*GormTransactionScope)(nil)
	_ txn.TransactionalRepositories = (*gormTransactionalRepositories)(nil)
)
