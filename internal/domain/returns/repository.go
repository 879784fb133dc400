package returns

import (
	"context"

	"github.com/govprop/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Repository persists returns
type Repository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Return, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Return, int64, error)
	Save(ctx context.Context, r *Return) error
}
