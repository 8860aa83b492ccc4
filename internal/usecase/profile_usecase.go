// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"profiled/internal/domain/entity"

	"github.com/google/uuid"
)

// ProfileUsecase defines the interface for profile-related business operations.
type ProfileUsecase interface {
	// GetProfile returns the profile owned by the caller.
	GetProfile(ctx context.Context, ownerID uuid.UUID) (*entity.Profile, error)

	// CreateProfile lazily creates the caller's profile with an
	// auto-generated username derived from their contact address.
	CreateProfile(ctx context.Context, owner *entity.Identity) (*entity.Profile, error)

	// UpdateProfile applies a partial update. A supplied username is
	// re-validated against the full username policy.
	UpdateProfile(ctx context.Context, ownerID uuid.UUID, input *UpdateProfileInput) (*entity.Profile, error)

	// DeleteProfile removes the caller's profile.
	DeleteProfile(ctx context.Context, ownerID uuid.UUID) error

	// SetPublished flips the public flag. Publishing requires the
	// minimum-required fields and reports every violated rule at once.
	SetPublished(ctx context.Context, ownerID uuid.UUID, publish bool) (*PublishOutput, error)

	// GetPublicProfile returns the published-only projection for a username.
	GetPublicProfile(ctx context.Context, name string) (*entity.PublicProfile, error)

	// ShareQR renders the caller's public portfolio URL as a PNG QR code.
	// Only available once the profile is published.
	ShareQR(ctx context.Context, ownerID uuid.UUID) ([]byte, error)
}

// --- Input/Output DTOs ---

// UpdateProfileInput defines the partial update accepted from the dashboard.
// Server-managed fields (id, owner, email, timestamps, published) are not
// part of this type, which is how they are stripped from caller input.
type UpdateProfileInput struct {
	Username    *string              `json:"username,omitempty"`
	FullName    *string              `json:"full_name,omitempty" validate:"omitempty,max=100"`
	Headline    *string              `json:"headline,omitempty" validate:"omitempty,max=150"`
	Bio         *string              `json:"bio,omitempty" validate:"omitempty,max=5000"`
	Skills      *[]string            `json:"skills,omitempty" validate:"omitempty,max=50,dive,max=50"`
	Projects    *[]entity.Project    `json:"projects,omitempty" validate:"omitempty,max=50"`
	Experience  *[]entity.Experience `json:"experience,omitempty" validate:"omitempty,max=50"`
	Education   *[]entity.Education  `json:"education,omitempty" validate:"omitempty,max=20"`
	SocialLinks *map[string]string   `json:"social_links,omitempty" validate:"omitempty,max=20"`
	Theme       *string              `json:"theme,omitempty" validate:"omitempty,max=50"`
}

// PublishInput defines the desired publication state.
type PublishInput struct {
	Publish bool `json:"publish"`
}

// PublishOutput reports the publication state after a successful transition,
// including the public URL when published.
type PublishOutput struct {
	Published bool   `json:"published"`
	URL       string `json:"url,omitempty"`
}
