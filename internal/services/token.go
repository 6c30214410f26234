package services

import (
	"time"

	"chat-platform/config"
	"chat-platform/internal/domain/user"
	apperrors "chat-platform/pkg/errors"

	"github.com/golang-jwt/jwt/v5"
)

type AccessClaims struct {
	UserID string   `json:"sub"`
	Email  string   `json:"email"`
	Name   string   `json:"name"`
	Roles  []string `json:"roles"`
	jwt.RegisteredClaims
}

// TokenManager signs and verifies access tokens. Every service that gates
// requests on identity holds one; only the auth service issues tokens.
type TokenManager struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenManager(cfg *config.Config) *TokenManager {
	return &TokenManager{
		secret: []byte(cfg.JWTSecret),
		ttl:    time.Duration(cfg.JWTExpiryHours) * time.Hour,
	}
}

func (t *TokenManager) NewAccessToken(u user.User) (string, error) {
	now := time.Now()
	claims := AccessClaims{
		UserID: u.ID.String(),
		Email:  u.Email,
		Name:   u.Name,
		Roles:  u.RoleNames(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   u.ID.String(),
			ExpiresAt: jwt.NewNumericDate(now.Add(t.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(t.secret)
}

func (t *TokenManager) ParseAccessToken(tokenString string) (AccessClaims, error) {
	if tokenString == "" {
		return AccessClaims{}, apperrors.ErrUnauthorized
	}

	parsed, err := jwt.ParseWithClaims(tokenString, &AccessClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, apperrors.ErrUnauthorized
		}
		return t.secret, nil
	})
	if err != nil {
		return AccessClaims{}, apperrors.ErrUnauthorized
	}

	claims, ok := parsed.Claims.(*AccessClaims)
	if !ok || !parsed.Valid {
		return AccessClaims{}, apperrors.ErrUnauthorized
	}

	return *claims, nil
}
