package models

import (
	"time"

	"github.com/govprop/backend/internal/domain/setting"
)

// SettingModel is a row of the key/value configuration store
type SettingModel struct {
	Name      string    `gorm:"type:varchar(100);primaryKey"`
	Value     string    `gorm:"type:text;not null;default:''"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for GORM
func (SettingModel) TableName() string {
	return "settings"
}

// ToDomain converts the persistence model to a domain Setting
func (m *SettingModel) ToDomain() *setting.Setting {
	return &setting.Setting{Name: m.Name, Value: m.Value, UpdatedAt: m.UpdatedAt}
}

// SettingModelFromDomain creates a persistence model from a domain Setting
func SettingModelFromDomain(s *setting.Setting) *SettingModel {
	return &SettingModel{Name: s.Name, Value: s.Value, UpdatedAt: s.UpdatedAt}
}
