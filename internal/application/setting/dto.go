package setting

import (
	"time"

	"github.com/govprop/backend/internal/domain/setting"
)

// SettingResponse is a configuration value
type SettingResponse struct {
	Name      string    `json:"name"`
	Value     string    `json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UpdateSettingRequest replaces a value
type UpdateSettingRequest struct {
	Value string `json:"value" binding:"max=2000"`
}

// ToSettingResponse maps a domain setting
func ToSettingResponse(s *setting.Setting) SettingResponse {
	return SettingResponse{Name: s.Name, Value: s.Value, UpdatedAt: s.UpdatedAt}
}
