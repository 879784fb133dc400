package loss

import (
	"context"

	"github.com/govprop/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Repository persists loss reports
type Repository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Loss, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Loss, int64, error)
	Save(ctx context.Context, l *Loss) error
}
