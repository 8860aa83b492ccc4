// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"errors"

	"profiled/config"
	"profiled/internal/domain/entity"
	"profiled/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// jwtSessionService verifies HS256 session tokens issued by the identity
// provider. The provider and this service share the access secret; account
// management and token issuance live entirely on the provider's side.
type jwtSessionService struct {
	accessSecret string
}

// NewJWTSessionService is the constructor for jwtSessionService.
func NewJWTSessionService(cfg *config.Config) (service.SessionService, error) {
	if cfg.SecretKey.Access == "" {
		return nil, errors.New("jwt access secret must be provided")
	}

	return &jwtSessionService{
		accessSecret: cfg.SecretKey.Access,
	}, nil
}

// VerifySession validates a session token and extracts the caller identity.
func (s *jwtSessionService) VerifySession(tokenString string) (*entity.Identity, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(s.accessSecret), nil
	})
	if err != nil || !token.Valid {
		return nil, errors.New("invalid or expired session token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("failed to parse session claims")
	}

	subject, ok := claims["sub"].(string)
	if !ok {
		return nil, errors.New("subject missing from session token")
	}
	ownerID, err := uuid.Parse(subject)
	if err != nil {
		return nil, errors.New("invalid subject format in session token")
	}

	identity := &entity.Identity{ID: ownerID}
	if name, ok := claims["name"].(string); ok {
		identity.Name = name
	}
	if email, ok := claims["email"].(string); ok {
		identity.Email = email
	}

	return identity, nil
}
