package loss

import (
	"context"
	"time"

	stockapp "github.com/govprop/backend/internal/application/stock"
	"github.com/govprop/backend/internal/application/txn"
	"github.com/govprop/backend/internal/domain/counter"
	"github.com/govprop/backend/internal/domain/directory"
	"github.com/govprop/backend/internal/domain/loss"
	"github.com/govprop/backend/internal/domain/shared"
	"github.com/govprop/backend/internal/domain/stock"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// BatchWriter applies a batch of ledger movements inside an open unit of work
type BatchWriter interface {
	ApplyBatch(ctx context.Context, repos txn.TransactionalRepositories, officeID uuid.UUID, createdBy *uuid.UUID, items []stock.BatchItem) ([]stock.Entry, error)
}

// Service handles loss reports for held units
type Service struct {
	txScope        txn.TransactionScope
	repo           loss.Repository
	batches        BatchWriter
	directory      directory.Directory
	eventPublisher shared.EventPublisher
	logger         *zap.Logger
}

// NewService creates a new loss Service
func NewService(txScope txn.TransactionScope, repo loss.Repository, batches BatchWriter, dir directory.Directory, logger *zap.Logger) *Service {
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

func (s *Service) publish(ctx context.Context, l *loss.Loss) {
	if s.eventPublisher == nil {
		return
	}
	if events := l.PullDomainEvents(); len(events) > 0 {
		if err := s.eventPublisher.Publish(ctx, events...); err != nil {
			s.logger.Warn("failed to publish loss events", zap.String("loss_no", l.LossNo), zap.Error(err))
		}
	}
}

func buildItems(ctx context.Context, repos txn.TransactionalRepositories, officeID uuid.UUID, reqs []LossItemRequest) ([]loss.LossItem, error) {
	items := make([]loss.LossItem, 0, len(reqs))
	for _, req := range reqs {
		entry, err := stockapp.LoadCurrent(ctx, repos, req.StockID)
		if err != nil {
			return nil, err
		}
		if err := stock.EnsureHeldBy(entry, officeID); err != nil {
			return nil, err
		}
		item, err := loss.NewItem(entry, req.Quantity, stock.Condition(req.Condition), req.Circumstances)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

// Create files a loss report for units held by the actor's office and requests approval
func (s *Service) Create(ctx context.Context, actor shared.Actor, req CreateLossRequest) (*LossResponse, error) {
	if _, err := s.directory.GetUserByID(ctx, req.ReportedBy); err != nil {
		return nil, err
	}

	var l *loss.Loss
	err := s.txScope.Execute(ctx, func(repos txn.TransactionalRepositories) error {
		items, err := buildItems(ctx, repos, actor.OfficeID, req.Items)
		if err != nil {
			return err
		}
		lossNo, err := counter.NextNumber(ctx, repos.CounterRepo(), counter.DocumentLoss, time.Now())
		if err != nil {
			return err
		}
		l, err = loss.NewLoss(lossNo, actor.OfficeID, req.ReportedBy, items, req.Remarks, actor.UserRef())
		if err != nil {
			return err
		}
		return repos.LossRepo().Save(ctx, l)
	})
	if err != nil {
		return nil, err
	}

	s.publish(ctx, l)
	resp := ToLossResponse(l)
	return &resp, nil
}

// UpdateByID replaces the lines of a pending report
func (s *Service) UpdateByID(ctx context.Context, actor shared.Actor, id uuid.UUID, req UpdateLossRequest) (*LossResponse, error) {
	var l *loss.Loss
	err := s.txScope.Execute(ctx, func(repos txn.TransactionalRepositories) error {
		var err error
		l, err = repos.LossRepo().FindByID(ctx, id)
		if err != nil {
			return err
		}
		if l.OfficeID != actor.OfficeID && !actor.CanManageStock() {
			return shared.NewDomainError(shared.CodeForbidden, "Only the reporting office can edit this loss report")
		}
		items, err := buildItems(ctx, repos, l.OfficeID, req.Items)
		if err != nil {
			return err
		}
		if err := l.Update(items, req.Remarks); err != nil {
			return err
		}
		return repos.LossRepo().Save(ctx, l)
	})
	if err != nil {
		return nil, err
	}
	resp := ToLossResponse(l)
	return &resp, nil
}

// UpdateStatusToApproved approves a pending report
func (s *Service) UpdateStatusToApproved(ctx context.Context, actor shared.Actor, id uuid.UUID) (*LossResponse, error) {
	if !actor.CanManageStock() {
		return nil, shared.NewDomainError(shared.CodeForbidden, "Only supply officers can approve loss reports")
	}

	var l *loss.Loss
	err := s.txScope.Execute(ctx, func(repos txn.TransactionalRepositories) error {
		var err error
		l, err = repos.LossRepo().FindByID(ctx, id)
		if err != nil {
			return err
		}
		if err := l.Approve(actor.UserRef()); err != nil {
			return err
		}
		return repos.LossRepo().Save(ctx, l)
	})
	if err != nil {
		return nil, err
	}

	s.publish(ctx, l)
	resp := ToLossResponse(l)
	return &resp, nil
}

// UpdateStatusToCompleted writes a status-only ledger entry for each reported unit. The asset
// quantities do not change: the units left the pool when they were issued.
func (s *Service) UpdateStatusToCompleted(ctx context.Context, actor shared.Actor, id uuid.UUID) (*LossResponse, error) {
	if !actor.CanManageStock() {
		return nil, shared.NewDomainError(shared.CodeForbidden, "Only supply officers can complete loss reports")
	}

	var l *loss.Loss
	err := s.txScope.Execute(ctx, func(repos txn.TransactionalRepositories) error {
		var err error
		l, err = repos.LossRepo().FindByID(ctx, id)
		if err != nil {
			return err
		}
		if !l.Status.CanTransitionTo(loss.StatusCompleted) {
			return shared.NewDomainError(shared.CodeInvalidState, "Only approved loss reports can be completed")
		}
		for _, item := range l.Items {
			entry, err := stockapp.LoadCurrent(ctx, repos, item.StockID)
			if err != nil {
				return err
			}
			if err := stock.EnsureHeldBy(entry, l.OfficeID); err != nil {
				return err
			}
		}
		if _, err := s.batches.ApplyBatch(ctx, repos, l.OfficeID, actor.UserRef(), l.BatchItems()); err != nil {
			return err
		}
		if err := l.Complete(actor.UserRef()); err != nil {
			return err
		}
		return repos.LossRepo().Save(ctx, l)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("loss report completed", zap.String("loss_no", l.LossNo), zap.Int("items", len(l.Items)))
	s.publish(ctx, l)
	resp := ToLossResponse(l)
	return &resp, nil
}

// GetByID returns one loss report
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*LossResponse, error) {
	l, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := ToLossResponse(l)
	return &resp, nil
}

// List pages through loss reports
func (s *Service) List(ctx context.Context, filter ListFilter) ([]LossResponse, int64, error) {
	list, total, err := s.repo.FindAll(ctx, filter.ToShared())
	if err != nil {
		return nil, 0, err
	}
	out := make([]LossResponse, len(list))
	for i := range list {
		out[i] = ToLossResponse(&list[i])
	}
	return out, total, nil
}
