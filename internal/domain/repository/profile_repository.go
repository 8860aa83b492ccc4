// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"profiled/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrProfileNotFound is a domain-specific error returned when no profile row matches.
var ErrProfileNotFound = errors.New("profile not found")

// ErrOwnerConflict is returned when a create violates the one-profile-per-owner rule.
var ErrOwnerConflict = errors.New("owner already has a profile")

// ErrUsernameConflict is returned when a write loses the uniqueness race on
// username at commit time. Callers translate it to the same user-facing
// error the availability pre-check produces.
var ErrUsernameConflict = errors.New("username already taken")

// ProfileRepository defines the standard operations for profile persistence.
// The application layer depends on this interface, not the concrete implementation.
type ProfileRepository interface {
	// FindByOwner retrieves the profile owned by the given identity.
	FindByOwner(ctx context.Context, ownerID uuid.UUID) (*entity.Profile, error)

	// FindByUsername retrieves a profile by its normalized username.
	FindByUsername(ctx context.Context, username string) (*entity.Profile, error)

	// UsernameExists reports whether any profile other than excludeOwner's
	// holds the given username. A nil excludeOwner excludes nothing.
	UsernameExists(ctx context.Context, username string, excludeOwner *uuid.UUID) (bool, error)

	// Create persists a new profile. The storage layer's unique keys on
	// owner_id and username are the authoritative arbiters; violations
	// surface as ErrOwnerConflict / ErrUsernameConflict.
	Create(ctx context.Context, profile *entity.Profile) error

	// Update modifies an existing profile row.
	Update(ctx context.Context, profile *entity.Profile) error

	// Delete removes the profile owned by the given identity.
	Delete(ctx context.Context, ownerID uuid.UUID) error
}
