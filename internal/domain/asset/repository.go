package asset

import (
	"context"

	"github.com/govprop/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Repository persists assets. Soft-deleted assets are invisible to every finder.
type Repository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Asset, error)

	// FindByIDForUpdate loads the asset and locks its row until the transaction ends
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*Asset, error)

	FindAll(ctx context.Context, filter shared.Filter) ([]Asset, int64, error)

	ExistsByName(ctx context.Context, name string, excludeID *uuid.UUID) (bool, error)

	Save(ctx context.Context, a *Asset) error

	// UpdateQuantity writes only the cached quantity
	UpdateQuantity(ctx context.Context, id uuid.UUID, quantity int) error
}
