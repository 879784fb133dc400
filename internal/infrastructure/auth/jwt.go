package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/govprop/backend/internal/domain/shared"
	"github.com/govprop/backend/internal/infrastructure/config"
)

var (
	ErrInvalidToken     = errors.New("invalid token")
	ErrExpiredToken     = errors.New("token has expired")
	ErrTokenNotYetValid = errors.New("token is not yet valid")
	ErrInvalidClaims    = errors.New("invalid token claims")
)

// Claims carries the caller identity issued by the directory service
type Claims struct {
	jwt.RegisteredClaims
	UserID   string `json:"user_id"`
	OfficeID string `json:"office_id"`
	Role     string `json:"role"`
}

// Actor converts verified claims into the identity the application layer works with
func (c *Claims) Actor() (shared.Actor, error) {
	userID, err := uuid.Parse(c.UserID)
	if err != nil {
		return shared.Actor{}, ErrInvalidClaims
	}
	officeID, err := uuid.Parse(c.OfficeID)
	if err != nil {
		return shared.Actor{}, ErrInvalidClaims
	}
	role := shared.Role(c.Role)
	if !role.IsValid() {
		return shared.Actor{}, ErrInvalidClaims
	}
	return shared.Actor{UserID: userID, OfficeID: officeID, Role: role}, nil
}

// JWTService signs and verifies HS256 access tokens
type JWTService struct {
	secret     []byte
	issuer     string
	expiration time.Duration
	now        func() time.Time
}

// NewJWTService creates a JWT service
func NewJWTService(cfg config.JWTConfig) *JWTService {
	return &JWTService{
		secret:     []byte(cfg.Secret),
		issuer:     cfg.Issuer,
		expiration: cfg.AccessTokenExpiration,
		now:        time.Now,
	}
}

// Issue signs an access token for actor. The directory service normally issues tokens; this is used
// by cmd tooling and tests.
func (s *JWTService) Issue(actor shared.Actor) (string, time.Time, error) {
	now := s.now()
	exp := now.Add(s.expiration)
	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Issuer:    s.issuer,
			Subject:   actor.UserID.String(),
			ExpiresAt: jwt.NewNumericDate(exp),
			NotBefore: jwt.NewNumericDate(now),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		UserID:   actor.UserID.String(),
		OfficeID: actor.OfficeID.String(),
		Role:     string(actor.Role),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, exp, nil
}

// Verify checks the signature, issuer and validity window, and returns the caller identity
func (s *JWTService) Verify(tokenString string) (shared.Actor, error) {
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(tokenString, claims,
		func(*jwt.Token) (any, error) { return s.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(s.issuer),
		jwt.WithTimeFunc(s.now),
		jwt.WithExpirationRequired(),
	)
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return shared.Actor{}, ErrExpiredToken
	case errors.Is(err, jwt.ErrTokenNotValidYet):
		return shared.Actor{}, ErrTokenNotYetValid
	case err != nil:
		return shared.Actor{}, ErrInvalidToken
	}
	return claims.Actor()
}
