package asset

import (
	"context"
	"strings"

	"github.com/govprop/backend/internal/application/txn"
	"github.com/govprop/backend/internal/domain/asset"
	"github.com/govprop/backend/internal/domain/counter"
	"github.com/govprop/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Service handles the asset registry
type Service struct {
	txScope        txn.TransactionScope
	repo           asset.Repository
	eventPublisher shared.EventPublisher
}

// NewService creates a new asset Service
func NewService(txScope txn.TransactionScope, repo asset.Repository) *Service {
	return &Service{txScope: txScope, repo: repo}
}

// SetEventPublisher sets the event publisher for publishing domain events
func (s *Service) SetEventPublisher(publisher shared.EventPublisher) {
	s.eventPublisher = publisher
}

func (s *Service) publish(ctx context.Context, a *asset.Asset) {
	if s.eventPublisher == nil {
		return
	}
	events := a.PullDomainEvents()
	if len(events) == 0 {
		return
	}
	_ = s.eventPublisher.Publish(ctx, events...)
}

func requireManager(actor shared.Actor) error {
	if !actor.CanManageStock() {
		return shared.NewDomainError(shared.CodeForbidden, "Only supply officers can manage assets")
	}
	return nil
}

func ensureUniqueName(ctx context.Context, repo asset.Repository, name string, excludeID *uuid.UUID) error {
	exists, err := repo.ExistsByName(ctx, strings.TrimSpace(name), excludeID)
	if err != nil {
		return err
	}
	if exists {
		return shared.NewDomainError(shared.CodeAlreadyExists, "An asset with this name already exists")
	}
	return nil
}

// CreateConsumable registers a consumable with its opening quantity
func (s *Service) CreateConsumable(ctx context.Context, actor shared.Actor, req CreateConsumableRequest) (*AssetResponse, error) {
	if err := requireManager(actor); err != nil {
		return nil, err
	}
	a, err := asset.NewConsumable(req.Name, req.Description, req.Unit, req.Cost, req.ArticleCode, req.Quantity)
	if err != nil {
		return nil, err
	}

	err = s.txScope.Execute(ctx, func(repos txn.TransactionalRepositories) error {
		if err := ensureUniqueName(ctx, repos.AssetRepo(), a.Name, nil); err != nil {
			return err
		}
		return repos.AssetRepo().Save(ctx, a)
	})
	if err != nil {
		return nil, err
	}

	s.publish(ctx, a)
	resp := ToAssetResponse(a, actor)
	return &resp, nil
}

// CreateProperty registers a SEP or PPE asset. The property counter is drawn in the same
// transaction as the insert.
func (s *Service) CreateProperty(ctx context.Context, actor shared.Actor, req CreatePropertyRequest) (*AssetResponse, error) {
	if err := requireManager(actor); err != nil {
		return nil, err
	}

	var a *asset.Asset
	err := s.txScope.Execute(ctx, func(repos txn.TransactionalRepositories) error {
		if err := ensureUniqueName(ctx, repos.AssetRepo(), req.Name, nil); err != nil {
			return err
		}
		value, err := repos.CounterRepo().IncrementCounterByType(ctx, counter.SequenceProperty)
		if err != nil {
			return err
		}
		pn := asset.PropertyNumber{
			Year:         req.Year,
			PropertyCode: req.PropertyCode,
			SerialNumber: req.SerialNumber,
			Location:     req.Location,
			Counter:      int(value),
		}
		a, err = asset.NewProperty(asset.Type(req.Type), req.Name, req.Description, req.Unit, req.Cost, req.ArticleCode, req.Quantity, pn)
		if err != nil {
			return err
		}
		return repos.AssetRepo().Save(ctx, a)
	})
	if err != nil {
		return nil, err
	}

	s.publish(ctx, a)
	resp := ToAssetResponse(a, actor)
	return &resp, nil
}

// GetAssetByID returns one live asset
func (s *Service) GetAssetByID(ctx context.Context, actor shared.Actor, id uuid.UUID) (*AssetResponse, error) {
	a, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := ToAssetResponse(a, actor)
	return &resp, nil
}

// List returns a page of live assets
func (s *Service) List(ctx context.Context, actor shared.Actor, filter ListFilter) ([]AssetResponse, int64, error) {
	assets, total, err := s.repo.FindAll(ctx, filter.ToShared())
	if err != nil {
		return nil, 0, err
	}
	out := make([]AssetResponse, len(assets))
	for i := range assets {
		out[i] = ToAssetResponse(&assets[i], actor)
	}
	return out, total, nil
}

// Update changes an asset's static attributes
func (s *Service) Update(ctx context.Context, actor shared.Actor, id uuid.UUID, req UpdateRequest) (*AssetResponse, error) {
	if err := requireManager(actor); err != nil {
		return nil, err
	}

	var a *asset.Asset
	err := s.txScope.Execute(ctx, func(repos txn.TransactionalRepositories) error {
		var err error
		a, err = repos.AssetRepo().FindByIDForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if err := ensureUniqueName(ctx, repos.AssetRepo(), req.Name, &a.ID); err != nil {
			return err
		}
		if err := a.Update(req.Name, req.Description, req.Unit, req.Cost, req.ArticleCode); err != nil {
			return err
		}
		if req.Location != nil {
			if err := a.UpdateLocation(*req.Location); err != nil {
				return err
			}
		}
		return repos.AssetRepo().Save(ctx, a)
	})
	if err != nil {
		return nil, err
	}

	resp := ToAssetResponse(a, actor)
	return &resp, nil
}

// UpdateAssetQtyByID rebuilds the cached quantity from the ledger inside the caller's unit of
// work and returns it. Quantity is initialQty - outs + ins; nothing else may write it.
func (s *Service) UpdateAssetQtyByID(ctx context.Context, repos txn.TransactionalRepositories, id uuid.UUID) (int, error) {
	a, err := repos.AssetRepo().FindByIDForUpdate(ctx, id)
	if err != nil {
		return 0, err
	}
	ins, outs, err := repos.EntryRepo().SumMovements(ctx, a.ID)
	if err != nil {
		return 0, err
	}
	if err := a.SetQuantity(a.InitialQty - outs + ins); err != nil {
		return 0, err
	}
	if err := repos.AssetRepo().UpdateQuantity(ctx, a.ID, a.Quantity); err != nil {
		return 0, err
	}
	return a.Quantity, nil
}

// Delete soft-deletes an asset that never moved
func (s *Service) Delete(ctx context.Context, actor shared.Actor, id uuid.UUID) error {
	if err := requireManager(actor); err != nil {
		return err
	}

	var a *asset.Asset
	err := s.txScope.Execute(ctx, func(repos txn.TransactionalRepositories) error {
		var err error
		a, err = repos.AssetRepo().FindByIDForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if err := a.Delete(); err != nil {
			return err
		}
		return repos.AssetRepo().Save(ctx, a)
	})
	if err != nil {
		return err
	}

	s.publish(ctx, a)
	return nil
}
