package maintenance

import (
	"context"
	"time"

	stockapp "github.com/govprop/backend/internal/application/stock"
	"github.com/govprop/backend/internal/application/txn"
	"github.com/govprop/backend/internal/domain/counter"
	"github.com/govprop/backend/internal/domain/directory"
	"github.com/govprop/backend/internal/domain/maintenance"
	"github.com/govprop/backend/internal/domain/shared"
	"github.com/govprop/backend/internal/domain/stock"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// MovementWriter appends one ledger entry inside an open unit of work
type MovementWriter interface {
	WriteMovement(ctx context.Context, repos txn.TransactionalRepositories, m stock.Movement) (*stock.Entry, error)
}

// Service handles repair requests for held units
type Service struct {
	txScope        txn.TransactionScope
	repo           maintenance.Repository
	movements      MovementWriter
	directory      directory.Directory
	eventPublisher shared.EventPublisher
	logger         *zap.Logger
}

// NewService creates a new maintenance Service
func NewService(txScope txn.TransactionScope, repo maintenance.Repository, movements MovementWriter, dir directory.Directory, logger *zap.Logger) *Service {
	return &Service{
		txScope:   txScope,
		repo:      repo,
		movements: movements,
		directory: dir,
		logger:    logger,
	}
}

// SetEventPublisher sets the event publisher for publishing domain events
func (s *Service) SetEventPublisher(publisher shared.EventPublisher) {
	s.eventPublisher = publisher
}

func (s *Service) publish(ctx context.Context, m *maintenance.Maintenance) {
	if s.eventPublisher == nil {
		return
	}
	if events := m.PullDomainEvents(); len(events) > 0 {
		if err := s.eventPublisher.Publish(ctx, events...); err != nil {
			s.logger.Warn("failed to publish maintenance events", zap.String("maintenance_no", m.MaintenanceNo), zap.Error(err))
		}
	}
}

func requireManager(actor shared.Actor) error {
	if !actor.CanManageStock() {
		return shared.NewDomainError(shared.CodeForbidden, "Only supply officers can schedule or complete maintenance")
	}
	return nil
}

// Create files a repair request for a held unit. End users can only file for units their
// own office holds.
func (s *Service) Create(ctx context.Context, actor shared.Actor, req CreateMaintenanceRequest) (*MaintenanceResponse, error) {
	if _, err := s.directory.GetUserByID(ctx, req.RequestedBy); err != nil {
		return nil, err
	}

	var m *maintenance.Maintenance
	err := s.txScope.Execute(ctx, func(repos txn.TransactionalRepositories) error {
		entry, err := stockapp.LoadCurrent(ctx, repos, req.StockID)
		if err != nil {
			return err
		}
		if actor.CanManageStock() {
			if !entry.Condition.IsHeld() {
				return shared.NewDomainError(shared.CodeInvalidState, "Only units held by an office can be sent for maintenance")
			}
		} else if err := stock.EnsureHeldBy(entry, actor.OfficeID); err != nil {
			return err
		}
		maintenanceNo, err := counter.NextNumber(ctx, repos.CounterRepo(), counter.DocumentMaintenance, time.Now())
		if err != nil {
			return err
		}
		m, err = maintenance.NewMaintenance(maintenanceNo, entry, req.RequestedBy, req.Description, actor.UserRef())
		if err != nil {
			return err
		}
		return repos.MaintenanceRepo().Save(ctx, m)
	})
	if err != nil {
		return nil, err
	}

	s.publish(ctx, m)
	resp := ToMaintenanceResponse(m)
	return &resp, nil
}

// UpdateByID edits the defect description of a pending request
func (s *Service) UpdateByID(ctx context.Context, actor shared.Actor, id uuid.UUID, req UpdateMaintenanceRequest) (*MaintenanceResponse, error) {
	return s.mutate(ctx, id, func(m *maintenance.Maintenance) error {
		if m.OfficeID != actor.OfficeID && !actor.CanManageStock() {
			return shared.NewDomainError(shared.CodeForbidden, "Only the requesting office can edit this request")
		}
		return m.Update(req.Description)
	})
}

// UpdateStatusToScheduled sets the service date of a pending request
func (s *Service) UpdateStatusToScheduled(ctx context.Context, actor shared.Actor, id uuid.UUID, req ScheduleRequest) (*MaintenanceResponse, error) {
	if err := requireManager(actor); err != nil {
		return nil, err
	}
	return s.mutate(ctx, id, func(m *maintenance.Maintenance) error {
		return m.Schedule(req.ScheduledAt)
	})
}

// UpdateStatusToRescheduled moves the service date of a scheduled request
func (s *Service) UpdateStatusToRescheduled(ctx context.Context, actor shared.Actor, id uuid.UUID, req ScheduleRequest) (*MaintenanceResponse, error) {
	if err := requireManager(actor); err != nil {
		return nil, err
	}
	return s.mutate(ctx, id, func(m *maintenance.Maintenance) error {
		return m.Reschedule(req.ScheduledAt)
	})
}

// UpdateStatusToCancelled withdraws a pending request
func (s *Service) UpdateStatusToCancelled(ctx context.Context, actor shared.Actor, id uuid.UUID, req CancelRequest) (*MaintenanceResponse, error) {
	return s.mutate(ctx, id, func(m *maintenance.Maintenance) error {
		if m.OfficeID != actor.OfficeID && !actor.CanManageStock() {
			return shared.NewDomainError(shared.CodeForbidden, "Only the requesting office can cancel this request")
		}
		return m.Cancel(req.Reason)
	})
}

func (s *Service) mutate(ctx context.Context, id uuid.UUID, fn func(m *maintenance.Maintenance) error) (*MaintenanceResponse, error) {
	var m *maintenance.Maintenance
	err := s.txScope.Execute(ctx, func(repos txn.TransactionalRepositories) error {
		var err error
		m, err = repos.MaintenanceRepo().FindByID(ctx, id)
		if err != nil {
			return err
		}
		if err := fn(m); err != nil {
			return err
		}
		return repos.MaintenanceRepo().Save(ctx, m)
	})
	if err != nil {
		return nil, err
	}

	s.publish(ctx, m)
	resp := ToMaintenanceResponse(m)
	return &resp, nil
}

// UpdateStatusToCompleted records the outcome and writes one ledger entry. A repaired unit
// keeps its condition; an unserviceable one becomes damaged. The unit must not have moved
// since the request was filed.
func (s *Service) UpdateStatusToCompleted(ctx context.Context, actor shared.Actor, id uuid.UUID, req CompleteRequest) (*MaintenanceResponse, error) {
	if err := requireManager(actor); err != nil {
		return nil, err
	}

	var m *maintenance.Maintenance
	var entry *stock.Entry
	err := s.txScope.Execute(ctx, func(repos txn.TransactionalRepositories) error {
		var err error
		m, err = repos.MaintenanceRepo().FindByID(ctx, id)
		if err != nil {
			return err
		}
		if _, err := stockapp.LoadCurrent(ctx, repos, m.StockID); err != nil {
			return err
		}
		if err := m.Complete(maintenance.Outcome(req.Outcome), req.Findings, actor.UserRef()); err != nil {
			return err
		}
		a, err := repos.AssetRepo().FindByID(ctx, m.AssetID)
		if err != nil {
			return err
		}
		entry, err = s.movements.WriteMovement(ctx, repos, m.Movement(a.Quantity))
		if err != nil {
			return err
		}
		return repos.MaintenanceRepo().Save(ctx, m)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("maintenance completed",
		zap.String("maintenance_no", m.MaintenanceNo),
		zap.String("outcome", req.Outcome),
		zap.String("condition", entry.Condition.String()))
	s.publish(ctx, m)
	resp := ToMaintenanceResponse(m)
	return &resp, nil
}

// GetByID returns one request
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*MaintenanceResponse, error) {
	m, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := ToMaintenanceResponse(m)
	return &resp, nil
}

// List pages through requests
func (s *Service) List(ctx context.Context, filter ListFilter) ([]MaintenanceResponse, int64, error) {
	list, total, err := s.repo.FindAll(ctx, filter.ToShared())
	if err != nil {
		return nil, 0, err
	}
	out := make([]MaintenanceResponse, len(list))
	for i := range list {
		out[i] = ToMaintenanceResponse(&list[i])
	}
	return out, total, nil
}
