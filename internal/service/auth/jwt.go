package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/seu-repo/vocalis/internal/domain"
	"github.com/seu-repo/vocalis/internal/ports"
)

// Claims represents the custom JWT claims used by the application.
type Claims struct {
	jwt.RegisteredClaims
	Type string `json:"type"` // "access" or "refresh"
}

// tokenIssuer handles generation, validation, and revocation of JWT tokens.
// Revocation is backed by the cache: a revoked jti stays blacklisted until
// the token would have expired anyway.
type tokenIssuer struct {
	secret          []byte
	accessDuration  time.Duration
	refreshDuration time.Duration
	cache           ports.Cache
	log             *zap.Logger
}

func (t *tokenIssuer) generate(user *domain.User, tokenType string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			ID:        uuid.New().String(),
		},
		Type: tokenType,
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
	if err != nil {
		return "", fmt.Errorf("sign %s token: %w", tokenType, err)
	}
	return signed, nil
}

func (t *tokenIssuer) AccessToken(user *domain.User) (string, error) {
	return t.generate(user, "access", t.accessDuration)
}

func (t *tokenIssuer) RefreshToken(user *domain.User) (string, error) {
	return t.generate(user, "refresh", t.refreshDuration)
}

func (t *tokenIssuer) Parse(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(tok *jwt.Token) (interface{}, error) {
		if _, ok := tok.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", tok.Header["alg"])
		}
		return t.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token claims")
	}
	return claims, nil
}

func revocationKey(jti string) string {
	return "revoked_token:" + jti
}

func (t *tokenIssuer) Revoke(ctx context.Context, jti string) error {
	// TTL covers the longer-lived token type so the blacklist entry
	// outlasts anything carrying this jti.
	ttl := t.refreshDuration
	if t.accessDuration > ttl {
		ttl = t.accessDuration
	}

	if err := t.cache.Set(ctx, revocationKey(jti), "revoked", ttl); err != nil {
		return fmt.Errorf("revoke token: %w", err)
	}

	t.log.Info("token revoked", zap.String("jti", jti))
	return nil
}

func (t *tokenIssuer) IsRevoked(ctx context.Context, jti string) bool {
	val, err := t.cache.Get(ctx, revocationKey(jti))
	if err != nil {
		// Cache miss or cache failure both read as "not revoked".
		return false
	}
	return val == "revoked"
}
