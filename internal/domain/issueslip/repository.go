package issueslip

import (
	"context"

	"github.com/govprop/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Repository persists issue slips
type Repository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*IssueSlip, error)
	FindBySlipNo(ctx context.Context, slipNo string) (*IssueSlip, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]IssueSlip, int64, error)
	Save(ctx context.Context, slip *IssueSlip) error
}
