package models

import (
	"github.com/govprop/backend/internal/domain/directory"
	"github.com/google/uuid"
)

// OfficeModel maps the offices table maintained by the directory service
type OfficeModel struct {
	BaseModel
	Name     string `gorm:"type:varchar(200);not null"`
	Code     string `gorm:"type:varchar(50);uniqueIndex"`
	Division string `gorm:"type:varchar(200)"`
}

// TableName returns the table name for GORM
func (OfficeModel) TableName() string {
	return "offices"
}

// ToDomain converts the persistence model to a directory Office
func (m *OfficeModel) ToDomain() *directory.Office {
	return &directory.Office{ID: m.ID, Name: m.Name, Code: m.Code, Division: m.Division}
}

// UserModel maps the users table maintained by the directory service
type UserModel struct {
	BaseModel
	FirstName string     `gorm:"type:varchar(100);not null"`
	LastName  string     `gorm:"type:varchar(100);not null"`
	Email     string     `gorm:"type:varchar(200);uniqueIndex"`
	Position  string     `gorm:"type:varchar(100)"`
	OfficeID  *uuid.UUID `gorm:"type:uuid;index"`
}

// TableName returns the table name for GORM
func (UserModel) TableName() string {
	return "users"
}

// ToDomain converts the persistence model to a directory User
func (m *UserModel) ToDomain() *directory.User {
	return &directory.User{
		ID:        m.ID,
		FirstName: m.FirstName,
		LastName:  m.LastName,
		Email:     m.Email,
		Position:  m.Position,
		OfficeID:  m.OfficeID,
	}
}
