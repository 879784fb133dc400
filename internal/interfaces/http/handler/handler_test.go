package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	assetapp "github.com/govprop/backend/internal/application/asset"
	issueslipapp "github.com/govprop/backend/internal/application/issueslip"
	settingapp "github.com/govprop/backend/internal/application/setting"
	stockapp "github.com/govprop/backend/internal/application/stock"
	"github.com/govprop/backend/internal/domain/setting"
	"github.com/govprop/backend/internal/domain/shared"
	"github.com/govprop/backend/internal/infrastructure/cache"
	"github.com/govprop/backend/internal/infrastructure/persistence"
	"github.com/govprop/backend/internal/infrastructure/persistence/testdb"
	"github.com/govprop/backend/internal/interfaces/http/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	if err := middleware.SetupValidator(); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		Details []struct {
			Field   string `json:"field"`
			Message string `json:"message"`
		} `json:"details"`
	} `json:"error"`
	Meta *struct {
		Total int64 `json:"total"`
	} `json:"meta"`
}

type apiFixture struct {
	env     *testdb.Env
	engine  *gin.Engine
	officer shared.Actor
	viewer  shared.Actor
	admin   shared.Actor
	office  uuid.UUID
	user    uuid.UUID
}

func newAPIFixture(t *testing.T) *apiFixture {
	env := testdb.NewEnv(t)
	supply := env.Office(t, "General Services Office")
	office := env.Office(t, "Accounting Office")
	user := env.User(t, "Ana", "Reyes", office.ID)

	settingCache := cache.NewInMemorySettingCache()
	t.Cleanup(func() { _ = settingCache.Close() })
	settings := settingapp.NewService(persistence.NewGormSettingRepository(env.DB), settingCache, 0, zap.NewNop())
	stocks := stockapp.NewService(env.Scope, env.Repos.Entries, env.Units, zap.NewNop())
	slips := issueslipapp.NewService(env.Scope, env.Repos.IssueSlips, stocks, env.Directory, settings, zap.NewNop())

	assets := NewAssetHandler(assetapp.NewService(env.Scope, env.Repos.Assets))
	stockHandler := NewStockHandler(stocks)
	slipHandler := NewIssueSlipHandler(slips)
	settingHandler := NewSettingHandler(settings)

	engine := gin.New()
	engine.Use(middleware.RequestID(), func(c *gin.Context) {
		if role := c.GetHeader("X-Test-Role"); role != "" {
			c.Set(middleware.ActorKey, shared.Actor{
				UserID:   uuid.MustParse(c.GetHeader("X-Test-User")),
				OfficeID: uuid.MustParse(c.GetHeader("X-Test-Office")),
				Role:     shared.Role(role),
			})
		}
		c.Next()
	})
	api := engine.Group("/api/v1")
	api.POST("/assets/consumables", assets.CreateConsumable)
	api.POST("/assets/properties", assets.CreateProperty)
	api.GET("/assets", assets.List)
	api.GET("/assets/:id", assets.Get)
	api.DELETE("/assets/:id", assets.Delete)
	api.GET("/assets/:id/units", stockHandler.CurrentUnits)
	api.POST("/stocks/issue", stockHandler.Issue)
	api.GET("/stocks/reference/:reference", stockHandler.ListByReference)
	api.POST("/issue-slips", slipHandler.Create)
	api.GET("/issue-slips", slipHandler.List)
	api.POST("/issue-slips/:id/issue", slipHandler.Issue)
	api.GET("/settings/:name", settingHandler.Get)
	api.PUT("/settings/:name", settingHandler.Update)

	return &apiFixture{
		env:     env,
		engine:  engine,
		officer: shared.Actor{UserID: uuid.New(), OfficeID: supply.ID, Role: shared.RoleSupplyOfficer},
		viewer:  shared.Actor{UserID: user.ID, OfficeID: office.ID, Role: shared.RoleEndUser},
		admin:   shared.Actor{UserID: uuid.New(), OfficeID: supply.ID, Role: shared.RoleAdmin},
		office:  office.ID,
		user:    user.ID,
	}
}

func (f *apiFixture) do(t *testing.T, actor *shared.Actor, method, path string, body any) (int, envelope) {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if actor != nil {
		req.Header.Set("X-Test-Role", string(actor.Role))
		req.Header.Set("X-Test-User", actor.UserID.String())
		req.Header.Set("X-Test-Office", actor.OfficeID.String())
	}
	w := httptest.NewRecorder()
	f.engine.ServeHTTP(w, req)

	var env envelope
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	}
	return w.Code, env
}

func decode[T any](t *testing.T, raw json.RawMessage) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(raw, &out))
	return out
}

func TestAssetHandler_CreateAndGet(t *testing.T) {
	f := newAPIFixture(t)

	status, body := f.do(t, &f.officer, http.MethodPost, "/api/v1/assets/consumables", map[string]any{
		"name":     "Bond paper A4",
		"unit":     "ream",
		"cost":     "215.50",
		"quantity": 40,
	})
	require.Equal(t, http.StatusCreated, status)
	created := decode[assetapp.AssetResponse](t, body.Data)
	assert.Equal(t, "consumable", created.Type)
	assert.Equal(t, 40, created.Quantity)
	require.NotNil(t, created.Cost)
	assert.Equal(t, "215.5", created.Cost.String())

	t.Run("end users do not see cost", func(t *testing.T) {
		status, body := f.do(t, &f.viewer, http.MethodGet, "/api/v1/assets/"+created.ID.String(), nil)
		require.Equal(t, http.StatusOK, status)
		got := decode[assetapp.AssetResponse](t, body.Data)
		assert.Nil(t, got.Cost)
		assert.Nil(t, got.TotalValue)
		assert.Equal(t, "Bond paper A4", got.Name)
	})

	t.Run("end users cannot register assets", func(t *testing.T) {
		status, body := f.do(t, &f.viewer, http.MethodPost, "/api/v1/assets/consumables", map[string]any{
			"name": "Stapler", "unit": "piece", "quantity": 1,
		})
		assert.Equal(t, http.StatusForbidden, status)
		require.NotNil(t, body.Error)
		assert.Equal(t, shared.CodeForbidden, body.Error.Code)
	})

	t.Run("duplicate names are rejected", func(t *testing.T) {
		status, body := f.do(t, &f.officer, http.MethodPost, "/api/v1/assets/consumables", map[string]any{
			"name": "Bond paper A4", "unit": "ream", "quantity": 1,
		})
		assert.Equal(t, http.StatusBadRequest, status)
		assert.Equal(t, shared.CodeAlreadyExists, body.Error.Code)
	})

	t.Run("list pages live assets", func(t *testing.T) {
		status, body := f.do(t, &f.viewer, http.MethodGet, "/api/v1/assets?page=1&page_size=10", nil)
		require.Equal(t, http.StatusOK, status)
		require.NotNil(t, body.Meta)
		assert.Equal(t, int64(1), body.Meta.Total)
	})
}

func TestAssetHandler_Errors(t *testing.T) {
	f := newAPIFixture(t)

	t.Run("unknown id is 404", func(t *testing.T) {
		status, body := f.do(t, &f.officer, http.MethodGet, "/api/v1/assets/"+uuid.NewString(), nil)
		assert.Equal(t, http.StatusNotFound, status)
		assert.False(t, body.Success)
		assert.Equal(t, shared.CodeNotFound, body.Error.Code)
	})

	t.Run("malformed id is 400", func(t *testing.T) {
		status, body := f.do(t, &f.officer, http.MethodGet, "/api/v1/assets/not-a-uuid", nil)
		assert.Equal(t, http.StatusBadRequest, status)
		assert.Equal(t, shared.CodeInvalidInput, body.Error.Code)
	})

	t.Run("binding failures list the offending fields", func(t *testing.T) {
		status, body := f.do(t, &f.officer, http.MethodPost, "/api/v1/assets/properties", map[string]any{
			"type": "vehicle",
			"name": "Pickup",
		})
		assert.Equal(t, http.StatusBadRequest, status)
		require.NotNil(t, body.Error)
		assert.Equal(t, "VALIDATION_ERROR", body.Error.Code)
		fields := make([]string, 0, len(body.Error.Details))
		for _, d := range body.Error.Details {
			fields = append(fields, d.Field)
		}
		assert.Contains(t, fields, "type")
		assert.Contains(t, fields, "unit")
		assert.Contains(t, fields, "property_code")
	})

	t.Run("missing actor is 401", func(t *testing.T) {
		status, _ := f.do(t, nil, http.MethodGet, "/api/v1/assets", nil)
		assert.Equal(t, http.StatusUnauthorized, status)
	})
}

func TestStockHandler_IssueProperty(t *testing.T) {
	f := newAPIFixture(t)
	laptop := f.env.Property(t, "Laptop", 5)

	status, body := f.do(t, &f.officer, http.MethodPost, "/api/v1/stocks/issue", map[string]any{
		"office_id": f.office,
		"items":     []map[string]any{{"asset_id": laptop.ID, "qty": 2, "reference": "MANUAL-1"}},
	})
	require.Equal(t, http.StatusCreated, status, "%+v", body.Error)
	entries := decode[[]stockapp.EntryResponse](t, body.Data)
	require.Len(t, entries, 2)
	assert.Equal(t, "1", entries[0].ItemNo)
	assert.Equal(t, "reissued", entries[0].Condition)
	assert.Equal(t, 3, f.env.Quantity(t, laptop.ID))

	status, body = f.do(t, &f.viewer, http.MethodGet, "/api/v1/stocks/reference/MANUAL-1", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Len(t, decode[[]stockapp.EntryResponse](t, body.Data), 2)

	t.Run("over-issue is rejected and writes nothing", func(t *testing.T) {
		status, body := f.do(t, &f.officer, http.MethodPost, "/api/v1/stocks/issue", map[string]any{
			"office_id": f.office,
			"items":     []map[string]any{{"asset_id": laptop.ID, "qty": 4}},
		})
		assert.Equal(t, http.StatusBadRequest, status)
		require.NotNil(t, body.Error)
		assert.Equal(t, 3, f.env.Quantity(t, laptop.ID))
		f.env.RequireLedgerConsistent(t, laptop.ID)
	})

	t.Run("empty item list fails validation", func(t *testing.T) {
		status, body := f.do(t, &f.officer, http.MethodPost, "/api/v1/stocks/issue", map[string]any{
			"office_id": f.office,
			"items":     []map[string]any{},
		})
		assert.Equal(t, http.StatusBadRequest, status)
		assert.Equal(t, "VALIDATION_ERROR", body.Error.Code)
	})
}

func TestIssueSlipHandler_CreateThenIssue(t *testing.T) {
	f := newAPIFixture(t)
	laptop := f.env.Property(t, "Laptop", 10)

	status, body := f.do(t, &f.officer, http.MethodPost, "/api/v1/issue-slips", map[string]any{
		"asset_id":    laptop.ID,
		"office_id":   f.office,
		"received_by": f.user,
		"quantity":    2,
	})
	require.Equal(t, http.StatusCreated, status, "%+v", body.Error)
	slip := decode[issueslipapp.IssueSlipResponse](t, body.Data)
	assert.Equal(t, "pending", slip.Status)

	status, body = f.do(t, &f.officer, http.MethodPost, "/api/v1/issue-slips/"+slip.ID.String()+"/issue", nil)
	require.Equal(t, http.StatusOK, status, "%+v", body.Error)
	issued := decode[issueslipapp.IssueSlipResponse](t, body.Data)
	assert.Equal(t, "issued", issued.Status)
	assert.Len(t, issued.Stocks, 2)
	assert.Equal(t, 8, f.env.Quantity(t, laptop.ID))

	status, body = f.do(t, &f.officer, http.MethodPost, "/api/v1/issue-slips/"+slip.ID.String()+"/issue", nil)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, shared.CodeInvalidState, body.Error.Code)

	status, body = f.do(t, &f.viewer, http.MethodGet, "/api/v1/issue-slips", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, int64(1), body.Meta.Total)
}

func TestSettingHandler(t *testing.T) {
	f := newAPIFixture(t)
	path := "/api/v1/settings/" + setting.NameEntityName

	status, body := f.do(t, &f.admin, http.MethodGet, path, nil)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, shared.CodeNotFound, body.Error.Code)

	status, _ = f.do(t, &f.officer, http.MethodPut, path, map[string]any{"value": "Province of Laguna"})
	assert.Equal(t, http.StatusForbidden, status)

	status, body = f.do(t, &f.admin, http.MethodPut, path, map[string]any{"value": "Province of Laguna"})
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Province of Laguna", decode[settingapp.SettingResponse](t, body.Data).Value)

	status, body = f.do(t, &f.viewer, http.MethodGet, path, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Province of Laguna", decode[settingapp.SettingResponse](t, body.Data).Value)
}

type fakePinger struct{ err error }

func (p fakePinger) PingContext(context.Context) error { return p.err }

func TestHealthHandler(t *testing.T) {
	for _, tc := range []struct {
		name     string
		err      error
		status   int
		database string
	}{
		{name: "up", status: http.StatusOK, database: "up"},
		{name: "down", err: errors.New("connection refused"), status: http.StatusServiceUnavailable, database: "down"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			r := gin.New()
			r.GET("/health", NewHealthHandler(fakePinger{err: tc.err}, "1.2.3").Health)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

			assert.Equal(t, tc.status, w.Code)
			var body struct {
				Success bool           `json:"success"`
				Data    HealthResponse `json:"data"`
			}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, tc.err == nil, body.Success)
			assert.Equal(t, tc.database, body.Data.Database)
			assert.Equal(t, "1.2.3", body.Data.Version)
		})
	}
}
