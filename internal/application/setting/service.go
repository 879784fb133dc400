package setting

import (
	"context"
	"errors"
	"time"

	"github.com/govprop/backend/internal/domain/setting"
	"github.com/govprop/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// Service reads and updates named configuration values through a cache
type Service struct {
	repo   setting.Repository
	cache  setting.Cache
	ttl    time.Duration
	logger *zap.Logger
}

// NewService creates a settings Service. cache may be nil.
func NewService(repo setting.Repository, cache setting.Cache, ttl time.Duration, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{repo: repo, cache: cache, ttl: ttl, logger: logger}
}

// GetConfigByName returns a setting, reading through the cache
func (s *Service) GetConfigByName(ctx context.Context, name string) (*SettingResponse, error) {
	st, err := s.load(ctx, name)
	if err != nil {
		return nil, err
	}
	resp := ToSettingResponse(st)
	return &resp, nil
}

func (s *Service) load(ctx context.Context, name string) (*setting.Setting, error) {
	if s.cache != nil {
		cached, err := s.cache.Get(ctx, name)
		if err != nil {
			s.logger.Warn("Setting cache read failed", zap.String("name", name), zap.Error(err))
		} else if cached != nil {
			return cached, nil
		}
	}

	st, err := s.repo.FindByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		if err := s.cache.Set(ctx, st, s.ttl); err != nil {
			s.logger.Warn("Setting cache write failed", zap.String("name", name), zap.Error(err))
		}
	}
	return st, nil
}

// UpdateConfigByName stores a value and drops the cached copy everywhere. Admins only.
func (s *Service) UpdateConfigByName(ctx context.Context, actor shared.Actor, name string, req UpdateSettingRequest) (*SettingResponse, error) {
	if actor.Role != shared.RoleAdmin {
		return nil, shared.NewDomainError(shared.CodeForbidden, "Only administrators can change settings")
	}
	st, err := setting.NewSetting(name, req.Value)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Save(ctx, st); err != nil {
		return nil, shared.NewInternalError(shared.CodeConfigUnavailable, "Failed to save setting", err)
	}
	if s.cache != nil {
		if err := s.cache.Delete(ctx, st.Name); err != nil {
			s.logger.Warn("Setting cache invalidation failed", zap.String("name", st.Name), zap.Error(err))
		}
	}
	s.logger.Info("Setting updated", zap.String("name", st.Name), zap.String("by", actor.UserID.String()))

	resp := ToSettingResponse(st)
	return &resp, nil
}

// DocumentStamp returns the entity name and fund cluster printed on numbered documents.
// An unset value stamps as blank; any other store failure is returned.
func (s *Service) DocumentStamp(ctx context.Context) (setting.Stamp, error) {
	entity, err := s.valueOrBlank(ctx, setting.NameEntityName)
	if err != nil {
		return setting.Stamp{}, err
	}
	fund, err := s.valueOrBlank(ctx, setting.NameFundCluster)
	if err != nil {
		return setting.Stamp{}, err
	}
	return setting.Stamp{EntityName: entity, FundCluster: fund}, nil
}

// Value returns a raw value, blank when unset
func (s *Service) Value(ctx context.Context, name string) (string, error) {
	return s.valueOrBlank(ctx, name)
}

func (s *Service) valueOrBlank(ctx context.Context, name string) (string, error) {
	st, err := s.load(ctx, name)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return "", nil
		}
		return "", err
	}
	return st.Value, nil
}
