package waste

import (
	"context"
	"time"

	stockapp "github.com/govprop/backend/internal/application/stock"
	"github.com/govprop/backend/internal/application/txn"
	"github.com/govprop/backend/internal/domain/counter"
	"github.com/govprop/backend/internal/domain/shared"
	"github.com/govprop/backend/internal/domain/stock"
	"github.com/govprop/backend/internal/domain/waste"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// BatchWriter applies a batch of ledger movements inside an open unit of work
type BatchWriter interface {
	ApplyBatch(ctx context.Context, repos txn.TransactionalRepositories, officeID uuid.UUID, createdBy *uuid.UUID, items []stock.BatchItem) ([]stock.Entry, error)
}

// Service handles waste documents for unserviceable units
type Service struct {
	txScope        txn.TransactionScope
	repo           waste.Repository
	batches        BatchWriter
	eventPublisher shared.EventPublisher
	logger         *zap.Logger
}

// NewService creates a new waste Service
func NewService(txScope txn.TransactionScope, repo waste.Repository, batches BatchWriter, logger *zap.Logger) *Service {
	return &Service{
		txScope: txScope,
		repo:    repo,
		batches: batches,
		logger:  logger,
	}
}

// SetEventPublisher sets the event publisher for publishing domain events
func (s *Service) SetEventPublisher(publisher shared.EventPublisher) {
	s.eventPublisher = publisher
}

func (s *Service) publish(ctx context.Context, w *waste.Waste) {
	if s.eventPublisher == nil {
		return
	}
	if events := w.PullDomainEvents(); len(events) > 0 {
		if err := s.eventPublisher.Publish(ctx, events...); err != nil {
			s.logger.Warn("failed to publish waste events", zap.String("waste_no", w.WasteNo), zap.Error(err))
		}
	}
}

func requireManager(actor shared.Actor) error {
	if !actor.CanManageStock() {
		return shared.NewDomainError(shared.CodeForbidden, "Only supply officers can handle waste documents")
	}
	return nil
}

func buildItems(ctx context.Context, repos txn.TransactionalRepositories, reqs []WasteItemRequest) ([]waste.WasteItem, error) {
	items := make([]waste.WasteItem, 0, len(reqs))
	for _, req := range reqs {
		entry, err := stockapp.LoadCurrent(ctx, repos, req.StockID)
		if err != nil {
			return nil, err
		}
		item, err := waste.NewItem(entry, req.Quantity)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

// Create queues for-disposal and damaged units for disposal
func (s *Service) Create(ctx context.Context, actor shared.Actor, req CreateWasteRequest) (*WasteResponse, error) {
	if err := requireManager(actor); err != nil {
		return nil, err
	}

	var w *waste.Waste
	err := s.txScope.Execute(ctx, func(repos txn.TransactionalRepositories) error {
		items, err := buildItems(ctx, repos, req.Items)
		if err != nil {
			return err
		}
		wasteNo, err := counter.NextNumber(ctx, repos.CounterRepo(), counter.DocumentWaste, time.Now())
		if err != nil {
			return err
		}
		w, err = waste.NewWaste(wasteNo, actor.OfficeID, items, req.Remarks, actor.UserRef())
		if err != nil {
			return err
		}
		return repos.WasteRepo().Save(ctx, w)
	})
	if err != nil {
		return nil, err
	}

	s.publish(ctx, w)
	resp := ToWasteResponse(w)
	return &resp, nil
}

// UpdateByID replaces the lines of a pending waste document
func (s *Service) UpdateByID(ctx context.Context, actor shared.Actor, id uuid.UUID, req UpdateWasteRequest) (*WasteResponse, error) {
	if err := requireManager(actor); err != nil {
		return nil, err
	}

	var w *waste.Waste
	err := s.txScope.Execute(ctx, func(repos txn.TransactionalRepositories) error {
		var err error
		w, err = repos.WasteRepo().FindByID(ctx, id)
		if err != nil {
			return err
		}
		items, err := buildItems(ctx, repos, req.Items)
		if err != nil {
			return err
		}
		if err := w.Update(items, req.Remarks); err != nil {
			return err
		}
		return repos.WasteRepo().Save(ctx, w)
	})
	if err != nil {
		return nil, err
	}
	resp := ToWasteResponse(w)
	return &resp, nil
}

// UpdateStatusToCompleted records disposal and writes a destroyed entry for every unit
func (s *Service) UpdateStatusToCompleted(ctx context.Context, actor shared.Actor, id uuid.UUID) (*WasteResponse, error) {
	if err := requireManager(actor); err != nil {
		return nil, err
	}

	var w *waste.Waste
	err := s.txScope.Execute(ctx, func(repos txn.TransactionalRepositories) error {
		var err error
		w, err = repos.WasteRepo().FindByID(ctx, id)
		if err != nil {
			return err
		}
		if !w.Status.CanTransitionTo(waste.StatusCompleted) {
			return shared.NewDomainError(shared.CodeInvalidState, "Waste document has already been completed")
		}
		for _, item := range w.Items {
			if _, err := stockapp.LoadCurrent(ctx, repos, item.StockID); err != nil {
				return err
			}
		}
		if _, err := s.batches.ApplyBatch(ctx, repos, w.OfficeID, actor.UserRef(), w.BatchItems()); err != nil {
			return err
		}
		if err := w.Complete(actor.UserRef()); err != nil {
			return err
		}
		return repos.WasteRepo().Save(ctx, w)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("waste completed", zap.String("waste_no", w.WasteNo), zap.Int("items", len(w.Items)))
	s.publish(ctx, w)
	resp := ToWasteResponse(w)
	return &resp, nil
}

// GetByID returns one waste document
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*WasteResponse, error) {
	w, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := ToWasteResponse(w)
	return &resp, nil
}

// List pages through waste documents
func (s *Service) List(ctx context.Context, filter ListFilter) ([]WasteResponse, int64, error) {
	list, total, err := s.repo.FindAll(ctx, filter.ToShared())
	if err != nil {
		return nil, 0, err
	}
	out := make([]WasteResponse, len(list))
	for i := range list {
		out[i] = ToWasteResponse(&list[i])
	}
	return out, total, nil
}
