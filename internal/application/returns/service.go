package returns

import (
	"context"
	"errors"
	"time"

	stockapp "github.com/govprop/backend/internal/application/stock"
	"github.com/govprop/backend/internal/application/txn"
	"github.com/govprop/backend/internal/domain/counter"
	"github.com/govprop/backend/internal/domain/directory"
	"github.com/govprop/backend/internal/domain/returns"
	"github.com/govprop/backend/internal/domain/shared"
	"github.com/govprop/backend/internal/domain/stock"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// BatchWriter applies a batch of ledger movements inside an open unit of work
type BatchWriter interface {
	ApplyBatch(ctx context.Context, repos txn.TransactionalRepositories, officeID uuid.UUID, createdBy *uuid.UUID, items []stock.BatchItem) ([]stock.Entry, error)
}

// Service handles returns of issued units to the supply office
type Service struct {
	txScope        txn.TransactionScope
	repo           returns.Repository
	batches        BatchWriter
	directory      directory.Directory
	eventPublisher shared.EventPublisher
	logger         *zap.Logger
}

// NewService creates a new return Service
func NewService(txScope txn.TransactionScope, repo returns.Repository, batches BatchWriter, dir directory.Directory, logger *zap.Logger) *Service {
	return &Service{
		txScope:   txScope,
		repo:      repo,
		batches:   batches,
		directory: dir,
		logger:    logger,
	}
}

// SetEventPublisher sets the event publisher for publishing domain events
func (s *Service) SetEventPublisher(publisher shared.EventPublisher) {
	s.eventPublisher = publisher
}

func (s *Service) publish(ctx context.Context, r *returns.Return) {
	if s.eventPublisher == nil {
		return
	}
	if events := r.PullDomainEvents(); len(events) > 0 {
		if err := s.eventPublisher.Publish(ctx, events...); err != nil {
			s.logger.Warn("failed to publish return events", zap.String("return_no", r.ReturnNo), zap.Error(err))
		}
	}
}

// buildItems checks that every requested entry is the latest record of its unit and is held
// by officeID, then snapshots it into a return line
func buildItems(ctx context.Context, repos txn.TransactionalRepositories, officeID uuid.UUID, reqs []ReturnItemRequest) ([]returns.ReturnItem, error) {
	items := make([]returns.ReturnItem, 0, len(reqs))
	for _, req := range reqs {
		entry, err := stockapp.LoadCurrent(ctx, repos, req.StockID)
		if err != nil {
			return nil, err
		}
		if err := stock.EnsureHeldBy(entry, officeID); err != nil {
			return nil, err
		}
		item, err := returns.NewItem(entry, req.Quantity, returns.StockRemark(req.StockRemarks))
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

// Create files a pending return for units held by the actor's office
func (s *Service) Create(ctx context.Context, actor shared.Actor, req CreateReturnRequest) (*ReturnResponse, error) {
	if _, err := s.directory.GetUserByID(ctx, req.ReturnedBy); err != nil {
		return nil, err
	}

	var r *returns.Return
	err := s.txScope.Execute(ctx, func(repos txn.TransactionalRepositories) error {
		items, err := buildItems(ctx, repos, actor.OfficeID, req.Items)
		if err != nil {
			return err
		}
		returnNo, err := counter.NextNumber(ctx, repos.CounterRepo(), counter.DocumentReturn, time.Now())
		if err != nil {
			return err
		}
		r, err = returns.NewReturn(returnNo, actor.OfficeID, req.ReturnedBy, items, req.Remarks, actor.UserRef())
		if err != nil {
			return err
		}
		return repos.ReturnRepo().Save(ctx, r)
	})
	if err != nil {
		return nil, err
	}

	s.publish(ctx, r)
	resp := ToReturnResponse(r)
	return &resp, nil
}

// UpdateByID replaces the lines of a pending return. Only the returning office or a supply
// officer may edit it.
func (s *Service) UpdateByID(ctx context.Context, actor shared.Actor, id uuid.UUID, req UpdateReturnRequest) (*ReturnResponse, error) {
	var r *returns.Return
	err := s.txScope.Execute(ctx, func(repos txn.TransactionalRepositories) error {
		var err error
		r, err = repos.ReturnRepo().FindByID(ctx, id)
		if err != nil {
			return err
		}
		if r.OfficeID != actor.OfficeID && !actor.CanManageStock() {
			return shared.NewDomainError(shared.CodeForbidden, "Only the returning office can edit this return")
		}
		items, err := buildItems(ctx, repos, r.OfficeID, req.Items)
		if err != nil {
			return err
		}
		if err := r.Update(items, req.Remarks); err != nil {
			return err
		}
		return repos.ReturnRepo().Save(ctx, r)
	})
	if err != nil {
		return nil, err
	}
	resp := ToReturnResponse(r)
	return &resp, nil
}

// UpdateStatusToApproved approves a pending return
func (s *Service) UpdateStatusToApproved(ctx context.Context, actor shared.Actor, id uuid.UUID) (*ReturnResponse, error) {
	if !actor.CanManageStock() {
		return nil, shared.NewDomainError(shared.CodeForbidden, "Only supply officers can approve returns")
	}

	var r *returns.Return
	err := s.txScope.Execute(ctx, func(repos txn.TransactionalRepositories) error {
		var err error
		r, err = repos.ReturnRepo().FindByID(ctx, id)
		if err != nil {
			return err
		}
		if err := r.Approve(actor.UserRef()); err != nil {
			return err
		}
		return repos.ReturnRepo().Save(ctx, r)
	})
	if err != nil {
		return nil, err
	}

	s.publish(ctx, r)
	resp := ToReturnResponse(r)
	return &resp, nil
}

// UpdateStatusToCompleted takes the units back. The actor's office must be the office that
// issued every returned unit. for-reissue lines come back into the pool; for-disposal lines are
// recorded without changing the pool.
func (s *Service) UpdateStatusToCompleted(ctx context.Context, actor shared.Actor, id uuid.UUID) (*ReturnResponse, error) {
	if !actor.CanManageStock() {
		return nil, shared.NewDomainError(shared.CodeForbidden, "Only supply officers can complete returns")
	}

	var r *returns.Return
	var written []stock.Entry
	err := s.txScope.Execute(ctx, func(repos txn.TransactionalRepositories) error {
		var err error
		r, err = repos.ReturnRepo().FindByID(ctx, id)
		if err != nil {
			return err
		}
		if !r.Status.CanTransitionTo(returns.StatusCompleted) {
			return shared.NewDomainError(shared.CodeInvalidState, "Only approved returns can be completed")
		}
		for _, item := range r.Items {
			entry, err := stockapp.LoadCurrent(ctx, repos, item.StockID)
			if err != nil {
				return err
			}
			if err := ensureIssuedBy(ctx, repos, entry, actor); err != nil {
				return err
			}
		}
		written, err = s.batches.ApplyBatch(ctx, repos, actor.OfficeID, actor.UserRef(), r.BatchItems())
		if err != nil {
			return err
		}
		if err := r.Complete(actor.UserRef()); err != nil {
			return err
		}
		return repos.ReturnRepo().Save(ctx, r)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("return completed",
		zap.String("return_no", r.ReturnNo),
		zap.Int("entries", len(written)))
	s.publish(ctx, r)
	resp := ToReturnResponse(r)
	return &resp, nil
}

// ensureIssuedBy resolves the document that put the unit in the returning office's hands
// through the entry's reference and compares its issuing office with the actor's.
// Units whose origin is not an issue slip or RIS (transfers, manual entries) can only be
// taken back by an administrator.
func ensureIssuedBy(ctx context.Context, repos txn.TransactionalRepositories, entry *stock.Entry, actor shared.Actor) error {
	issuingOffice, err := originOffice(ctx, repos, entry.Reference)
	if err != nil {
		return err
	}
	if issuingOffice == nil {
		if actor.Role == shared.RoleAdmin {
			return nil
		}
		return shared.NewDomainError(shared.CodeForbidden, "The origin of this stock is unknown; an administrator must complete the return")
	}
	if *issuingOffice != actor.OfficeID {
		return shared.NewDomainError(shared.CodeForbidden, "Only the office that issued this stock can complete the return")
	}
	return nil
}

func originOffice(ctx context.Context, repos txn.TransactionalRepositories, reference string) (*uuid.UUID, error) {
	if reference == "" {
		return nil, nil
	}
	slip, err := repos.IssueSlipRepo().FindBySlipNo(ctx, reference)
	if err == nil {
		return &slip.IssuingOfficeID, nil
	}
	if !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}
	ris, err := repos.RequisitionRepo().FindByRISNo(ctx, reference)
	if err == nil {
		return ris.IssuingOfficeID, nil
	}
	if !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}
	return nil, nil
}

// GetByID returns one return
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*ReturnResponse, error) {
	r, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := ToReturnResponse(r)
	return &resp, nil
}

// List pages through returns
func (s *Service) List(ctx context.Context, filter ListFilter) ([]ReturnResponse, int64, error) {
	list, total, err := s.repo.FindAll(ctx, filter.ToShared())
	if err != nil {
		return nil, 0, err
	}
	out := make([]ReturnResponse, len(list))
	for i := range list {
		out[i] = ToReturnResponse(&list[i])
	}
	return out, total, nil
}
