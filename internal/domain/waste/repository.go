package waste

import (
	"context"

	"github.com/govprop/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Repository persists waste documents
type Repository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Waste, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Waste, int64, error)
	Save(ctx context.Context, w *Waste) error
}
