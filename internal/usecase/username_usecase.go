package usecase

import (
	"context"

	"github.com/google/uuid"
)

// UsernameUsecase exposes the username availability check consumed by the
// dashboard while the owner is typing a new handle.
type UsernameUsecase interface {
	// CheckUsername normalizes and validates the candidate, then consults
	// the profile store. Format violations are returned as errors; a
	// reserved or taken candidate is reported as unavailable.
	CheckUsername(ctx context.Context, input *CheckUsernameInput) (*CheckUsernameOutput, error)
}

// CheckUsernameInput carries the candidate and, when renaming, the owner
// whose own row must not count as a conflict.
type CheckUsernameInput struct {
	Username       string     `json:"username" validate:"required"`
	ExcludeOwnerID *uuid.UUID `json:"exclude_owner_id,omitempty"`
}

// CheckUsernameOutput reports availability of the normalized candidate.
type CheckUsernameOutput struct {
	Username  string `json:"username"`
	Available bool   `json:"available"`
}
