package requisition

import (
	"context"
	"fmt"
	"time"

	"github.com/govprop/backend/internal/application/txn"
	"github.com/govprop/backend/internal/domain/counter"
	"github.com/govprop/backend/internal/domain/directory"
	"github.com/govprop/backend/internal/domain/requisition"
	"github.com/govprop/backend/internal/domain/setting"
	"github.com/govprop/backend/internal/domain/shared"
	"github.com/govprop/backend/internal/domain/stock"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// StockIssuer releases units from the pool inside an open unit of work
type StockIssuer interface {
	IssueInTx(ctx context.Context, repos txn.TransactionalRepositories, officeID uuid.UUID, createdBy *uuid.UUID, items []stock.IssueItem) ([]stock.Entry, error)
}

// StampSource supplies the labels printed on new documents
type StampSource interface {
	DocumentStamp(ctx context.Context) (setting.Stamp, error)
}

// Service drives requisition and issue slips (RIS) for consumables
type Service struct {
	txScope        txn.TransactionScope
	repo           requisition.Repository
	stocks         StockIssuer
	directory      directory.Directory
	stamps         StampSource
	eventPublisher shared.EventPublisher
	logger         *zap.Logger
}

// NewService creates a new requisition Service
func NewService(
	txScope txn.TransactionScope,
	repo requisition.Repository,
	stocks StockIssuer,
	dir directory.Directory,
	stamps StampSource,
	logger *zap.Logger,
) *Service {
	return &Service{
		txScope:   txScope,
		repo:      repo,
		stocks:    stocks,
		directory: dir,
		stamps:    stamps,
		logger:    logger,
	}
}

// SetEventPublisher sets the event publisher for publishing domain events
func (s *Service) SetEventPublisher(publisher shared.EventPublisher) {
	s.eventPublisher = publisher
}

func (s *Service) publish(ctx context.Context, r *requisition.Requisition) {
	if s.eventPublisher == nil {
		return
	}
	if events := r.PullDomainEvents(); len(events) > 0 {
		if err := s.eventPublisher.Publish(ctx, events...); err != nil {
			s.logger.Warn("failed to publish requisition events", zap.String("ris_no", r.RISNo), zap.Error(err))
		}
	}
}

func requireManager(actor shared.Actor) error {
	if !actor.CanManageStock() {
		return shared.NewDomainError(shared.CodeForbidden, "Only supply officers can process requisitions")
	}
	return nil
}

func requireOwner(actor shared.Actor, r *requisition.Requisition) error {
	if r.OfficeID != actor.OfficeID && !actor.CanManageStock() {
		return shared.NewDomainError(shared.CodeForbidden, "Only the requesting office can change this requisition")
	}
	return nil
}

// itemRequests checks every requested asset exists and is a consumable
func itemRequests(ctx context.Context, repos txn.TransactionalRepositories, reqs []ItemRequest) ([]requisition.ItemRequest, error) {
	items := make([]requisition.ItemRequest, 0, len(reqs))
	for _, req := range reqs {
		a, err := repos.AssetRepo().FindByID(ctx, req.AssetID)
		if err != nil {
			return nil, err
		}
		if a.Type.IsUnitTracked() {
			return nil, shared.NewDomainError(shared.CodeInvalidInput,
				fmt.Sprintf("%s is tracked per unit; request it on an issue slip", a.Name))
		}
		items = append(items, requisition.ItemRequest{
			AssetID:      req.AssetID,
			RequestedQty: req.RequestedQty,
			Remarks:      req.Remarks,
		})
	}
	return items, nil
}

// Create files a requisition from the actor's office
func (s *Service) Create(ctx context.Context, actor shared.Actor, req CreateRequisitionRequest) (*RequisitionResponse, error) {
	if _, err := s.directory.GetUserByID(ctx, req.RequestedBy); err != nil {
		return nil, err
	}
	stamp, err := s.stamps.DocumentStamp(ctx)
	if err != nil {
		return nil, err
	}

	var r *requisition.Requisition
	err = s.txScope.Execute(ctx, func(repos txn.TransactionalRepositories) error {
		items, err := itemRequests(ctx, repos, req.Items)
		if err != nil {
			return err
		}
		risNo, err := counter.NextNumber(ctx, repos.CounterRepo(), counter.DocumentRequisition, time.Now())
		if err != nil {
			return err
		}
		r, err = requisition.NewRequisition(risNo, actor.OfficeID, req.RequestedBy, req.Purpose, items, stamp, actor.UserRef())
		if err != nil {
			return err
		}
		return repos.RequisitionRepo().Save(ctx, r)
	})
	if err != nil {
		return nil, err
	}

	s.publish(ctx, r)
	resp := ToRequisitionResponse(r)
	return &resp, nil
}

// UpdateByID replaces the purpose and items while the requisition awaits evaluation
func (s *Service) UpdateByID(ctx context.Context, actor shared.Actor, id uuid.UUID, req UpdateRequisitionRequest) (*RequisitionResponse, error) {
	return s.mutate(ctx, id, func(repos txn.TransactionalRepositories, r *requisition.Requisition) error {
		if err := requireOwner(actor, r); err != nil {
			return err
		}
		items, err := itemRequests(ctx, repos, req.Items)
		if err != nil {
			return err
		}
		return r.Update(req.Purpose, items)
	})
}

// UpdateStatusToEvaluating starts evaluation
func (s *Service) UpdateStatusToEvaluating(ctx context.Context, actor shared.Actor, id uuid.UUID) (*RequisitionResponse, error) {
	if err := requireManager(actor); err != nil {
		return nil, err
	}
	return s.mutate(ctx, id, func(_ txn.TransactionalRepositories, r *requisition.Requisition) error {
		return r.StartEvaluation(actor.UserRef())
	})
}

// UpdateStatusToForReview records approved quantities against the stock on hand
func (s *Service) UpdateStatusToForReview(ctx context.Context, actor shared.Actor, id uuid.UUID, req ReviewRequest) (*RequisitionResponse, error) {
	if err := requireManager(actor); err != nil {
		return nil, err
	}
	return s.mutate(ctx, id, func(repos txn.TransactionalRepositories, r *requisition.Requisition) error {
		onHand := make(map[uuid.UUID]int, len(r.Items))
		for _, item := range r.Items {
			a, err := repos.AssetRepo().FindByID(ctx, item.AssetID)
			if err != nil {
				return err
			}
			onHand[a.ID] = a.Quantity
		}
		approvals := make([]requisition.Approval, len(req.Items))
		for i, it := range req.Items {
			approvals[i] = requisition.Approval{
				ItemID:                it.ItemID,
				ApprovedQty:           it.ApprovedQty,
				NumberOfDaysToConsume: it.NumberOfDaysToConsume,
			}
		}
		return r.SubmitForReview(approvals, onHand, actor.UserRef())
	})
}

// UpdateStatusToPending approves a reviewed requisition for issuance
func (s *Service) UpdateStatusToPending(ctx context.Context, actor shared.Actor, id uuid.UUID) (*RequisitionResponse, error) {
	if err := requireManager(actor); err != nil {
		return nil, err
	}
	return s.mutate(ctx, id, func(_ txn.TransactionalRepositories, r *requisition.Requisition) error {
		return r.Approve(actor.UserRef())
	})
}

// UpdateStatusToCancelled withdraws a requisition that has not been issued
func (s *Service) UpdateStatusToCancelled(ctx context.Context, actor shared.Actor, id uuid.UUID, req CancelRequest) (*RequisitionResponse, error) {
	return s.mutate(ctx, id, func(_ txn.TransactionalRepositories, r *requisition.Requisition) error {
		if err := requireOwner(actor, r); err != nil {
			return err
		}
		return r.Cancel(req.Reason)
	})
}

func (s *Service) mutate(ctx context.Context, id uuid.UUID, fn func(repos txn.TransactionalRepositories, r *requisition.Requisition) error) (*RequisitionResponse, error) {
	var r *requisition.Requisition
	err := s.txScope.Execute(ctx, func(repos txn.TransactionalRepositories) error {
		var err error
		r, err = repos.RequisitionRepo().FindByID(ctx, id)
		if err != nil {
			return err
		}
		if err := fn(repos, r); err != nil {
			return err
		}
		return repos.RequisitionRepo().Save(ctx, r)
	})
	if err != nil {
		return nil, err
	}

	s.publish(ctx, r)
	resp := ToRequisitionResponse(r)
	return &resp, nil
}

// UpdateStatusToIssued releases the approved quantities to the requesting office. The ledger
// entries, the quantity changes and the status flip commit together.
func (s *Service) UpdateStatusToIssued(ctx context.Context, actor shared.Actor, id uuid.UUID) (*RequisitionResponse, error) {
	if err := requireManager(actor); err != nil {
		return nil, err
	}

	r, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !r.Status.CanTransitionTo(requisition.StatusIssued) {
		return nil, shared.NewDomainError(shared.CodeInvalidState,
			fmt.Sprintf("Cannot issue requisition in %s status", r.Status))
	}
	if _, err := s.directory.GetOfficeByID(ctx, r.OfficeID); err != nil {
		return nil, err
	}

	err = s.txScope.Execute(ctx, func(repos txn.TransactionalRepositories) error {
		var err error
		r, err = repos.RequisitionRepo().FindByID(ctx, id)
		if err != nil {
			return err
		}
		entries, err := s.stocks.IssueInTx(ctx, repos, r.OfficeID, actor.UserRef(), r.IssueItems())
		if err != nil {
			return err
		}
		if err := r.MarkIssued(entries, actor.OfficeID, actor.UserRef()); err != nil {
			return err
		}
		return repos.RequisitionRepo().Save(ctx, r)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("requisition issued",
		zap.String("ris_no", r.RISNo),
		zap.Int("total_approved", r.TotalApproved()))
	s.publish(ctx, r)
	resp := ToRequisitionResponse(r)
	return &resp, nil
}

// GetByID returns one requisition
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*RequisitionResponse, error) {
	r, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := ToRequisitionResponse(r)
	return &resp, nil
}

// GetByRISNo returns the requisition with the given number
func (s *Service) GetByRISNo(ctx context.Context, risNo string) (*RequisitionResponse, error) {
	r, err := s.repo.FindByRISNo(ctx, risNo)
	if err != nil {
		return nil, err
	}
	resp := ToRequisitionResponse(r)
	return &resp, nil
}

// List pages through requisitions
func (s *Service) List(ctx context.Context, filter ListFilter) ([]RequisitionResponse, int64, error) {
	list, total, err := s.repo.FindAll(ctx, filter.ToShared())
	if err != nil {
		return nil, 0, err
	}
	out := make([]RequisitionResponse, len(list))
	for i := range list {
		out[i] = ToRequisitionResponse(&list[i])
	}
	return out, total, nil
}
