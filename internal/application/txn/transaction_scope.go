package txn

import (
	"context"

	"github.com/govprop/backend/internal/domain/asset"
	"github.com/govprop/backend/internal/domain/counter"
	"github.com/govprop/backend/internal/domain/issueslip"
	"github.com/govprop/backend/internal/domain/loss"
	"github.com/govprop/backend/internal/domain/maintenance"
	"github.com/govprop/backend/internal/domain/requisition"
	"github.com/govprop/backend/internal/domain/returns"
	"github.com/govprop/backend/internal/domain/stock"
	"github.com/govprop/backend/internal/domain/waste"
)

// TransactionScope runs a unit of work. Every repository handed to fn shares one database
// transaction, committed when fn returns nil and rolled back otherwise.
type TransactionScope interface {
	Execute(ctx context.Context, fn func(repos TransactionalRepositories) error) error
}

// TransactionalRepositories exposes the repositories of an open unit of work.
//
// The ledger write path only ever receives this interface, so an asset quantity can never be
// changed outside a transaction that also appends the matching ledger entry.
type TransactionalRepositories interface {
	AssetRepo() asset.Repository
	EntryRepo() stock.EntryRepository
	UnitReader() stock.UnitReader
	CounterRepo() counter.Repository
	IssueSlipRepo() issueslip.Repository
	ReturnRepo() returns.Repository
	LossRepo() loss.Repository
	WasteRepo() waste.Repository
	MaintenanceRepo() maintenance.Repository
	RequisitionRepo() requisition.Repository
}

// Repositories is a plain holder used by NoOpTransactionScope
type Repositories struct {
	Assets       asset.Repository
	Entries      stock.EntryRepository
	Units        stock.UnitReader
	Counters     counter.Repository
	IssueSlips   issueslip.Repository
	Returns      returns.Repository
	Losses       loss.Repository
	Wastes       waste.Repository
	Maintenances maintenance.Repository
	Requisitions requisition.Repository
}

// NoOpTransactionScope hands out fixed repositories without a real transaction.
// Useful with mocks in unit tests.
type NoOpTransactionScope struct {
	repos Repositories
}

// NewNoOpTransactionScope creates a NoOpTransactionScope
func NewNoOpTransactionScope(repos Repositories) *NoOpTransactionScope {
	return &NoOpTransactionScope{repos: repos}
}

// Execute runs fn directly
func (s *NoOpTransactionScope) Execute(_ context.Context, fn func(repos TransactionalRepositories) error) error {
	return fn(s)
}

func (s *NoOpTransactionScope) AssetRepo() asset.Repository             { return s.repos.Assets }
func (s *NoOpTransactionScope) EntryRepo() stock.EntryRepository        { return s.repos.Entries }
func (s *NoOpTransactionScope) UnitReader() stock.UnitReader            { return s.repos.Units }
func (s *NoOpTransactionScope) CounterRepo() counter.Repository         { return s.repos.Counters }
func (s *NoOpTransactionScope) IssueSlipRepo() issueslip.Repository     { return s.repos.IssueSlips }
func (s *NoOpTransactionScope) ReturnRepo() returns.Repository          { return s.repos.Returns }
func (s *NoOpTransactionScope) LossRepo() loss.Repository               { return s.repos.Losses }
func (s *NoOpTransactionScope) WasteRepo() waste.Repository             { return s.repos.Wastes }
func (s *NoOpTransactionScope) MaintenanceRepo() maintenance.Repository { return s.repos.Maintenances }
func (s *NoOpTransactionScope) RequisitionRepo() requisition.Repository { return s.repos.Requisitions }

var (
	_ TransactionScope          = (*NoOpTransactionScope)(nil)
	_ TransactionalRepositories = (*NoOpTransactionScope)(nil)
)
