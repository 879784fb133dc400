package setting

import (
	"context"
	"strings"
	"time"

	"github.com/govprop/backend/internal/domain/shared"
)

// Well-known configuration names
const (
	NameEntityName        = "entityName"
	NameFundCluster       = "fundCluster"
	NameLossApproverEmail = "lossApproverEmail"
)

// Setting is a named configuration value
type Setting struct {
	Name      string
	Value     string
	UpdatedAt time.Time
}

// NewSetting validates and creates a setting
func NewSetting(name, value string) (*Setting, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewDomainError(shared.CodeInvalidInput, "Setting name is required")
	}
	if len(name) > 100 {
		return nil, shared.NewDomainError(shared.CodeInvalidInput, "Setting name cannot exceed 100 characters")
	}
	return &Setting{Name: name, Value: value, UpdatedAt: time.Now()}, nil
}

// Repository stores configuration values
type Repository interface {
	FindByName(ctx context.Context, name string) (*Setting, error)
	Save(ctx context.Context, s *Setting) error
}

// Stamp carries the labels printed on every numbered document
type Stamp struct {
	EntityName  string
	FundCluster string
}
