package middleware

import (
	"strings"

	"profiled/internal/domain/entity"
	domainerrors "profiled/internal/domain/errors"
	"profiled/internal/domain/service"

	"github.com/labstack/echo/v4"
)

const (
	// SessionCookieName carries the session token for browser page loads.
	SessionCookieName = "profiled_session"

	identityContextKey = "identity"
)

// AuthMiddleware verifies the session token on protected API routes and
// stashes the resolved identity on the echo context.
type AuthMiddleware struct {
	sessionSvc service.SessionService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(sessionSvc service.SessionService) *AuthMiddleware {
	return &AuthMiddleware{sessionSvc: sessionSvc}
}

// RequireSession rejects requests without a valid session token.
func (m *AuthMiddleware) RequireSession(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token := sessionToken(c)
		if token == "" {
			return domainerrors.ErrUnauthorized
		}

		identity, err := m.sessionSvc.VerifySession(token)
		if err != nil {
			return domainerrors.ErrSessionInvalid
		}

		SetIdentity(c, identity)

		return next(c)
	}
}

// SetIdentity stashes the verified identity on the echo context.
func SetIdentity(c echo.Context, identity *entity.Identity) {
	c.Set(identityContextKey, identity)
}

// IdentityFromContext returns the identity set by RequireSession.
func IdentityFromContext(c echo.Context) (*entity.Identity, error) {
	identity, ok := c.Get(identityContextKey).(*entity.Identity)
	if !ok || identity == nil {
		return nil, domainerrors.ErrUnauthorized
	}

	return identity, nil
}

// sessionToken extracts the session token from the Authorization header,
// falling back to the session cookie for browser navigation requests.
func sessionToken(c echo.Context) string {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}

	cookie, err := c.Cookie(SessionCookieName)
	if err == nil && cookie.Value != "" {
		return cookie.Value
	}

	return ""
}
