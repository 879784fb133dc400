package persistence

import (
	"context"

	"github.com/govprop/backend/internal/domain/counter"
	"github.com/govprop/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormCounterRepository implements counter.Repository on the counters table
type GormCounterRepository struct {
	db *gorm.DB
}

// NewGormCounterRepository creates a new GormCounterRepository
func NewGormCounterRepository(db *gorm.DB) *GormCounterRepository {
	return &GormCounterRepository{db: db}
}

// IncrementCounterByType bumps a sequence and returns its new value. The UPDATE holds the row
// lock until the surrounding transaction ends, so concurrent documents never share a number
// and a rolled-back document releases its value.
func (r *GormCounterRepository) IncrementCounterByType(ctx context.Context, sequence string) (int64, error) {
	db := r.db.WithContext(ctx)

	if err := db.Clauses(clause.OnConflict{DoNothing: true}).
		Create(&models.CounterModel{Type: sequence, Value: 0}).Error; err != nil {
		return 0, err
	}

	if err := db.Model(&models.CounterModel{}).
		Where("type = ?", sequence).
		UpdateColumn("value", gorm.Expr("value + 1")).Error; err != nil {
		return 0, err
	}

	var m models.CounterModel
	if err := db.Take(&m, "type = ?", sequence).Error; err != nil {
		return 0, err
	}
	return m.Value, nil
}

var _ counter.Repository = (*GormCounterRepository)(nil)
