// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"storefront/config"
	"storefront/internal/domain/service"
	"storefront/internal/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	defaultAccessTTL = 15 * time.Minute
	defaultIssuer    = "storefront"
)

// jwtService is a concrete implementation of the TokenService interface using HS256 signed JWTs.
type jwtService struct {
	accessSecret []byte
	accessTTL    time.Duration
	issuer       string
	now          func() time.Time
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" {
		return nil, errors.New("jwt access secret must be provided")
	}

	s := &jwtService{
		accessSecret: []byte(cfg.SecretKey.Access),
		accessTTL:    defaultAccessTTL,
		issuer:       defaultIssuer,
		now:          time.Now,
	}
	if cfg.Auth != nil {
		if cfg.Auth.AccessTokenTTL > 0 {
			s.accessTTL = cfg.Auth.AccessTokenTTL
		}
		if cfg.Auth.Issuer != "" {
			s.issuer = cfg.Auth.Issuer
		}
	}

	return s, nil
}

// GenerateAccessToken creates a new access token for a given user and roles.
func (s *jwtService) GenerateAccessToken(userID uuid.UUID, roles []string) (string, error) {
	now := s.now()
	claims := &service.Claims{
		UserID: userID,
		Roles:  roles,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			Issuer:    s.issuer,
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.accessTTL)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.accessSecret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign access token")
	}

	return signed, nil
}

// ValidateToken parses the token, checks signature, issuer and expiry, and returns its claims.
func (s *jwtService) ValidateToken(tokenString string) (*service.Claims, error) {
	claims := &service.Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return s.accessSecret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(s.issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, errors.Wrap(err, "invalid token")
	}
	if !token.Valid || claims.UserID == uuid.Nil {
		return nil, errors.New("invalid token claims")
	}

	return claims, nil
}
