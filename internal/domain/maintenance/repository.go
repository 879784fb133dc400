package maintenance

import (
	"context"

	"github.com/govprop/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Repository persists maintenance requests
type Repository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Maintenance, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Maintenance, int64, error)
	Save(ctx context.Context, m *Maintenance) error
}
