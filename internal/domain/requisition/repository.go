package requisition

import (
	"context"

	"github.com/govprop/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Repository persists requisitions
type Repository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Requisition, error)
	FindByRISNo(ctx context.Context, risNo string) (*Requisition, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Requisition, int64, error)
	Save(ctx context.Context, r *Requisition) error
}
