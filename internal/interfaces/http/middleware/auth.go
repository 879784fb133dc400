package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/govprop/backend/internal/domain/shared"
	"github.com/govprop/backend/internal/infrastructure/auth"
	"github.com/govprop/backend/internal/infrastructure/logger"
	"github.com/govprop/backend/internal/interfaces/http/dto"
	"go.uber.org/zap"
)

// ActorKey is the gin context key holding the authenticated shared.Actor
const ActorKey = "actor"

const bearerPrefix = "Bearer "

// TokenVerifier turns a bearer token into the caller's identity
type TokenVerifier interface {
	Verify(token string) (shared.Actor, error)
}

// Authenticate requires a valid bearer token and stores the caller as the request actor
func Authenticate(verifier TokenVerifier, base *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, bearerPrefix)
		if !ok || strings.TrimSpace(token) == "" {
			unauthorized(c, dto.ErrCodeUnauthorized, "Missing bearer token")
			return
		}

		actor, err := verifier.Verify(strings.TrimSpace(token))
		if err != nil {
			logger.For(c.Request.Context(), base).Debug("token rejected", zap.Error(err))
			if errors.Is(err, auth.ErrExpiredToken) {
				unauthorized(c, dto.ErrCodeTokenExpired, "Token has expired")
				return
			}
			unauthorized(c, dto.ErrCodeUnauthorized, "Invalid token")
			return
		}

		c.Set(ActorKey, actor)
		c.Request = c.Request.WithContext(logger.WithContext(c.Request.Context(),
			logger.FromContext(c.Request.Context()).With(
				zap.String("user_id", actor.UserID.String()),
				zap.String("office_id", actor.OfficeID.String()),
			)))
		c.Next()
	}
}

// RequireStockManager lets only admins and supply officers through
func RequireStockManager() gin.HandlerFunc {
	return func(c *gin.Context) {
		actor, ok := GetActor(c)
		if !ok || !actor.CanManageStock() {
			c.AbortWithStatusJSON(http.StatusForbidden, dto.NewErrorResponse(
				shared.CodeForbidden,
				shared.ErrForbidden.Message,
				GetRequestID(c),
			))
			return
		}
		c.Next()
	}
}

// GetActor returns the caller stored by Authenticate
func GetActor(c *gin.Context) (shared.Actor, bool) {
	v, ok := c.Get(ActorKey)
	if !ok {
		return shared.Actor{}, false
	}
	actor, ok := v.(shared.Actor)
	return actor, ok
}

func unauthorized(c *gin.Context, code, message string) {
	c.Header("WWW-Authenticate", `Bearer realm="govprop"`)
	c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(code, message, GetRequestID(c)))
}
