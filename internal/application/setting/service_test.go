package setting

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/govprop/backend/internal/domain/setting"
	"github.com/govprop/backend/internal/domain/shared"
	"github.com/govprop/backend/internal/infrastructure/cache"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockSettingRepository struct {
	mock.Mock
}

func (m *MockSettingRepository) FindByName(ctx context.Context, name string) (*setting.Setting, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*setting.Setting), args.Error(1)
}

func (m *MockSettingRepository) Save(ctx context.Context, s *setting.Setting) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

var admin = shared.Actor{UserID: uuid.New(), OfficeID: uuid.New(), Role: shared.RoleAdmin}

func newTestService(t *testing.T) (*Service, *MockSettingRepository) {
	repo := new(MockSettingRepository)
	c := cache.NewInMemorySettingCache()
	t.Cleanup(func() { _ = c.Close() })
	return NewService(repo, c, time.Minute, nil), repo
}

func TestGetConfigByName_ReadsThroughCache(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()

	repo.On("FindByName", ctx, setting.NameEntityName).
		Return(&setting.Setting{Name: setting.NameEntityName, Value: "Provincial Office"}, nil).Once()

	first, err := svc.GetConfigByName(ctx, setting.NameEntityName)
	require.NoError(t, err)
	assert.Equal(t, "Provincial Office", first.Value)

	second, err := svc.GetConfigByName(ctx, setting.NameEntityName)
	require.NoError(t, err)
	assert.Equal(t, "Provincial Office", second.Value)

	repo.AssertNumberOfCalls(t, "FindByName", 1)
}

func TestGetConfigByName_NotFound(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()
	repo.On("FindByName", ctx, "missing").Return(nil, shared.NewNotFoundError("Setting"))

	_, err := svc.GetConfigByName(ctx, "missing")
	require.Error(t, err)
	assert.True(t, errors.Is(err, shared.ErrNotFound))
	assert.Equal(t, shared.KindNotFound, shared.KindOf(err))
}

func TestUpdateConfigByName_InvalidatesCache(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()

	repo.On("FindByName", ctx, setting.NameFundCluster).
		Return(&setting.Setting{Name: setting.NameFundCluster, Value: "01"}, nil).Once()
	_, err := svc.GetConfigByName(ctx, setting.NameFundCluster)
	require.NoError(t, err)

	repo.On("Save", ctx, mock.MatchedBy(func(s *setting.Setting) bool {
		return s.Name == setting.NameFundCluster && s.Value == "02"
	})).Return(nil).Once()
	updated, err := svc.UpdateConfigByName(ctx, admin, setting.NameFundCluster, UpdateSettingRequest{Value: "02"})
	require.NoError(t, err)
	assert.Equal(t, "02", updated.Value)

	repo.On("FindByName", ctx, setting.NameFundCluster).
		Return(&setting.Setting{Name: setting.NameFundCluster, Value: "02"}, nil).Once()
	got, err := svc.GetConfigByName(ctx, setting.NameFundCluster)
	require.NoError(t, err)
	assert.Equal(t, "02", got.Value)

	repo.AssertExpectations(t)
}

func TestUpdateConfigByName_Rejections(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()

	officer := shared.Actor{UserID: uuid.New(), Role: shared.RoleSupplyOfficer}
	_, err := svc.UpdateConfigByName(ctx, officer, setting.NameEntityName, UpdateSettingRequest{Value: "x"})
	assert.True(t, errors.Is(err, shared.ErrForbidden))

	_, err = svc.UpdateConfigByName(ctx, admin, "   ", UpdateSettingRequest{Value: "x"})
	assert.True(t, errors.Is(err, shared.ErrInvalidInput))

	repo.On("Save", ctx, mock.Anything).Return(errors.New("connection reset")).Once()
	_, err = svc.UpdateConfigByName(ctx, admin, setting.NameEntityName, UpdateSettingRequest{Value: "x"})
	require.Error(t, err)
	assert.Equal(t, shared.KindInternal, shared.KindOf(err))
}

func TestDocumentStamp(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()

	repo.On("FindByName", ctx, setting.NameEntityName).
		Return(&setting.Setting{Name: setting.NameEntityName, Value: "City Government"}, nil)
	repo.On("FindByName", ctx, setting.NameFundCluster).
		Return(nil, shared.NewNotFoundError("Setting"))

	stamp, err := svc.DocumentStamp(ctx)
	require.NoError(t, err)
	assert.Equal(t, "City Government", stamp.EntityName)
	assert.Equal(t, "", stamp.FundCluster)
}

func TestDocumentStamp_StoreDown(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()

	down := shared.NewInternalError(shared.CodeConfigUnavailable, "Configuration store unavailable", errors.New("dial tcp"))
	repo.On("FindByName", ctx, setting.NameEntityName).Return(nil, down)

	_, err := svc.DocumentStamp(ctx)
	require.Error(t, err)
	assert.Equal(t, shared.KindInternal, shared.KindOf(err))
}
