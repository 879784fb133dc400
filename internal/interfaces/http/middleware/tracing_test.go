package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/govprop/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestTracing_TagsSpanWithCaller(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	previous := otel.GetTracerProvider()
	otel.SetTracerProvider(provider)
	t.Cleanup(func() { otel.SetTracerProvider(previous) })

	actor := shared.Actor{UserID: uuid.New(), OfficeID: uuid.New(), Role: shared.RoleAdmin}
	r := gin.New()
	r.Use(RequestID(), Tracing("govprop-test"), func(c *gin.Context) {
		c.Set(ActorKey, actor)
		c.Next()
	}, TagSpan())
	r.GET("/api/v1/assets/:id", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/swagger/*any", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/api/v1/assets/42", nil)
	req.Header.Set(RequestIDHeader, "trace-me")
	r.ServeHTTP(httptest.NewRecorder(), req)
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/swagger/index.html", nil))

	spans := recorder.Ended()
	require.Len(t, spans, 1)
	attrs := map[attribute.Key]string{}
	for _, kv := range spans[0].Attributes() {
		attrs[kv.Key] = kv.Value.Emit()
	}
	assert.Equal(t, "trace-me", attrs["request_id"])
	assert.Equal(t, actor.UserID.String(), attrs["user_id"])
	assert.Equal(t, actor.OfficeID.String(), attrs["office_id"])
	assert.Equal(t, "admin", attrs["role"])
}
