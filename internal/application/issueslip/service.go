package issueslip

import (
	"context"
	"time"

	"github.com/govprop/backend/internal/application/txn"
	"github.com/govprop/backend/internal/domain/counter"
	"github.com/govprop/backend/internal/domain/directory"
	"github.com/govprop/backend/internal/domain/issueslip"
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

// Service drives issue slips from draft to issuance
type Service struct {
	txScope        txn.TransactionScope
	repo           issueslip.Repository
	stocks         StockIssuer
	directory      directory.Directory
	stamps         StampSource
	eventPublisher shared.EventPublisher
	logger         *zap.Logger
}

// NewService creates a new issue slip Service
func NewService(
	txScope txn.TransactionScope,
	repo issueslip.Repository,
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

func (s *Service) publish(ctx context.Context, slip *issueslip.IssueSlip) {
	if s.eventPublisher == nil {
		return
	}
	if events := slip.PullDomainEvents(); len(events) > 0 {
		if err := s.eventPublisher.Publish(ctx, events...); err != nil {
			s.logger.Warn("failed to publish issue slip events", zap.String("slip_no", slip.SlipNo), zap.Error(err))
		}
	}
}

func requireManager(actor shared.Actor) error {
	if !actor.CanManageStock() {
		return shared.NewDomainError(shared.CodeForbidden, "Only supply officers can handle issue slips")
	}
	return nil
}

// Create drafts a pending slip. The slip number is drawn in the insert's transaction.
func (s *Service) Create(ctx context.Context, actor shared.Actor, req CreateIssueSlipRequest) (*IssueSlipResponse, error) {
	if err := requireManager(actor); err != nil {
		return nil, err
	}
	stamp, err := s.stamps.DocumentStamp(ctx)
	if err != nil {
		return nil, err
	}

	var slip *issueslip.IssueSlip
	err = s.txScope.Execute(ctx, func(repos txn.TransactionalRepositories) error {
		if _, err := repos.AssetRepo().FindByID(ctx, req.AssetID); err != nil {
			return err
		}
		slipNo, err := counter.NextNumber(ctx, repos.CounterRepo(), counter.DocumentIssueSlip, time.Now())
		if err != nil {
			return err
		}
		slip, err = issueslip.NewIssueSlip(slipNo, req.AssetID, req.OfficeID, req.ReceivedBy, actor.OfficeID,
			req.Quantity, stamp, req.Remarks, actor.UserRef())
		if err != nil {
			return err
		}
		return repos.IssueSlipRepo().Save(ctx, slip)
	})
	if err != nil {
		return nil, err
	}

	s.publish(ctx, slip)
	resp := ToIssueSlipResponse(slip)
	return &resp, nil
}

// UpdateByID edits a pending slip
func (s *Service) UpdateByID(ctx context.Context, actor shared.Actor, id uuid.UUID, req UpdateIssueSlipRequest) (*IssueSlipResponse, error) {
	if err := requireManager(actor); err != nil {
		return nil, err
	}

	var slip *issueslip.IssueSlip
	err := s.txScope.Execute(ctx, func(repos txn.TransactionalRepositories) error {
		var err error
		slip, err = repos.IssueSlipRepo().FindByID(ctx, id)
		if err != nil {
			return err
		}
		if _, err := repos.AssetRepo().FindByID(ctx, req.AssetID); err != nil {
			return err
		}
		if err := slip.Update(req.AssetID, req.OfficeID, req.ReceivedBy, req.Quantity, req.Remarks); err != nil {
			return err
		}
		return repos.IssueSlipRepo().Save(ctx, slip)
	})
	if err != nil {
		return nil, err
	}
	resp := ToIssueSlipResponse(slip)
	return &resp, nil
}

// UpdateStatusToIssued releases the slip's units to the receiving office. Office and receiver
// are checked against the directory before any write; the ledger entries, the quantity change
// and the status flip commit together.
func (s *Service) UpdateStatusToIssued(ctx context.Context, actor shared.Actor, id uuid.UUID) (*IssueSlipResponse, error) {
	if err := requireManager(actor); err != nil {
		return nil, err
	}

	slip, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !slip.Status.CanTransitionTo(issueslip.StatusIssued) {
		return nil, shared.NewDomainError(shared.CodeInvalidState, "Issue slip has already been issued")
	}
	if _, err := s.directory.GetOfficeByID(ctx, slip.OfficeID); err != nil {
		return nil, err
	}
	if _, err := s.directory.GetUserByID(ctx, slip.ReceivedBy); err != nil {
		return nil, err
	}

	err = s.txScope.Execute(ctx, func(repos txn.TransactionalRepositories) error {
		var err error
		slip, err = repos.IssueSlipRepo().FindByID(ctx, id)
		if err != nil {
			return err
		}
		entries, err := s.stocks.IssueInTx(ctx, repos, slip.OfficeID, actor.UserRef(), []stock.IssueItem{slip.IssueItem()})
		if err != nil {
			return err
		}
		if err := slip.MarkIssued(entries, actor.UserRef()); err != nil {
			return err
		}
		return repos.IssueSlipRepo().Save(ctx, slip)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("issue slip issued",
		zap.String("slip_no", slip.SlipNo),
		zap.Int("units", len(slip.Stocks)))
	s.publish(ctx, slip)
	resp := ToIssueSlipResponse(slip)
	return &resp, nil
}

// GetByID returns one slip
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*IssueSlipResponse, error) {
	slip, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := ToIssueSlipResponse(slip)
	return &resp, nil
}

// List pages through slips
func (s *Service) List(ctx context.Context, filter ListFilter) ([]IssueSlipResponse, int64, error) {
	slips, total, err := s.repo.FindAll(ctx, filter.ToShared())
	if err != nil {
		return nil, 0, err
	}
	return ToIssueSlipResponses(slips), total, nil
}
