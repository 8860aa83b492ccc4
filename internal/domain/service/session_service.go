// Package service declares the domain-facing interfaces for infrastructure
// services the use cases depend on.
package service

import (
	"profiled/internal/domain/entity"
)

// SessionService verifies session tokens issued by the identity provider
// and extracts the caller's identity from them. Token issuance and account
// management live outside this core.
type SessionService interface {
	// VerifySession validates a session token string and returns the
	// identity it carries. An invalid, malformed, or expired token
	// returns an error; callers treat that as "no session".
	VerifySession(token string) (*entity.Identity, error)
}
