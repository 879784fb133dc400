package persistence

import (
	"context"
	"errors"

	"github.com/govprop/backend/internal/domain/directory"
	"github.com/govprop/backend/internal/domain/shared"
	"github.com/govprop/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormDirectory implements directory.Directory over the offices and users tables
type GormDirectory struct {
	db *gorm.DB
}

// NewGormDirectory creates a new GormDirectory
func NewGormDirectory(db *gorm.DB) *GormDirectory {
	return &GormDirectory{db: db}
}

// GetOfficeByID finds an office
func (d *GormDirectory) GetOfficeByID(ctx context.Context, id uuid.UUID) (*directory.Office, error) {
	var m models.OfficeModel
	if err := d.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		return nil, directoryError("Office", err)
	}
	return m.ToDomain(), nil
}

// GetUserByID finds a user
func (d *GormDirectory) GetUserByID(ctx context.Context, id uuid.UUID) (*directory.User, error) {
	var m models.UserModel
	if err := d.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		return nil, directoryError("User", err)
	}
	return m.ToDomain(), nil
}

// SaveOffice upserts an office. Used by seeding and tests.
func (d *GormDirectory) SaveOffice(ctx context.Context, o *directory.Office) error {
	m := &models.OfficeModel{Name: o.Name, Code: o.Code, Division: o.Division}
	m.ID = o.ID
	return d.db.WithContext(ctx).Save(m).Error
}

// SaveUser upserts a user. Used by seeding and tests.
func (d *GormDirectory) SaveUser(ctx context.Context, u *directory.User) error {
	m := &models.UserModel{
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		Position:  u.Position,
		OfficeID:  u.OfficeID,
	}
	m.ID = u.ID
	return d.db.WithContext(ctx).Save(m).Error
}

func directoryError(resource string, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return shared.NewNotFoundError(resource)
	}
	return shared.NewInternalError(shared.CodeDirectoryUnavailable, "Directory lookup failed", err)
}

var _ directory.Directory = (*GormDirectory)(nil)
