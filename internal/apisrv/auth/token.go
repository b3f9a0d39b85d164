// Package auth holds the two authorization tiers that sit above tenant
// scoping: elevated admin tokens for audit administration, and the internal
// shared secret gating the AI trigger endpoints. Tenant scoping alone never
// grants either.
package auth

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog/log"

	"github.com/bizgrid/bizgrid/internal/apisrv/apicommon"
	"github.com/bizgrid/bizgrid/internal/apisrv/config"
	"github.com/bizgrid/bizgrid/internal/common/apperrors"
)

const AuthHeaderPrefix = "Bearer "

// GenericAuthError is the only detail unauthorized callers ever see.
const GenericAuthError = "unable to authenticate request"

// NewAdminToken issues a signed token carrying the admin claim. Used by
// operator tooling; ordinary API clients never hold one.
func NewAdminToken(actorID string, validity time.Duration) (string, apperrors.Error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":   actorID,
		"admin": true,
		"iat":   now.Unix(),
		"exp":   now.Add(validity).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(config.Config().AdminSigningKey))
	if err != nil {
		return "", ErrTokenGeneration.Err(err)
	}
	return signed, nil
}

// ValidateAdminToken parses a bearer token and returns the actor context when
// the token is valid and carries the admin claim.
func ValidateAdminToken(ctx context.Context, tokenString string) (*apicommon.ActorContext, apperrors.Error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(config.Config().AdminSigningKey), nil
	})
	if err != nil || !token.Valid {
		log.Ctx(ctx).Debug().Err(err).Msg("admin token validation failed")
		return nil, ErrUnauthorized
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrUnauthorized
	}
	admin, _ := claims["admin"].(bool)
	if !admin {
		return nil, ErrForbidden
	}
	actorID, _ := claims["sub"].(string)
	return &apicommon.ActorContext{ActorID: actorID, Admin: true}, nil
}

// RequireToken accepts any validly signed bearer token, admin or not. Used by
// the realtime endpoints where presence of a credential is the requirement.
func RequireToken(r *http.Request) (*apicommon.ActorContext, apperrors.Error) {
	authHeader := r.Header.Get("Authorization")
	if !strings.HasPrefix(authHeader, AuthHeaderPrefix) {
		return nil, ErrUnauthorized
	}
	tokenString := strings.TrimSpace(strings.TrimPrefix(authHeader, AuthHeaderPrefix))
	if tokenString == "" {
		return nil, ErrUnauthorized
	}
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(config.Config().AdminSigningKey), nil
	})
	if err != nil || !token.Valid {
		log.Ctx(r.Context()).Debug().Err(err).Msg("bearer token validation failed")
		return nil, ErrUnauthorized
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrUnauthorized
	}
	actorID, _ := claims["sub"].(string)
	admin, _ := claims["admin"].(bool)
	return &apicommon.ActorContext{ActorID: actorID, Admin: admin}, nil
}

// RequireAdmin guards the privileged audit operations. Requests without a
// valid admin bearer token fail with 401/403 regardless of tenant validity.
func RequireAdmin(r *http.Request) (*apicommon.ActorContext, apperrors.Error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return nil, ErrUnauthorized
	}
	if !strings.HasPrefix(authHeader, AuthHeaderPrefix) {
		return nil, ErrUnauthorized
	}
	tokenString := strings.TrimSpace(strings.TrimPrefix(authHeader, AuthHeaderPrefix))
	if tokenString == "" {
		return nil, ErrUnauthorized
	}
	return ValidateAdminToken(r.Context(), tokenString)
}

// VerifyInternalKey checks the X-Internal-Key header against the configured
// argon2id hash. Endpoints behind this are server-to-server only.
func VerifyInternalKey(r *http.Request) apperrors.Error {
	key := r.Header.Get("X-Internal-Key")
	if key == "" {
		return ErrMissingSecret
	}
	hash := config.Config().InternalKeyHash
	if hash == "" || !apicommon.VerifySecret(key, hash) {
		return ErrInvalidSecret
	}
	return nil
}
