// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Profile is the sole domain entity: one portfolio per owner, published to
// a per-user subdomain once the owner flips the published flag.
type Profile struct {
	ID          uuid.UUID // Server-generated identifier, immutable after creation.
	OwnerID     uuid.UUID // The identity that owns this profile. Exactly one profile per owner.
	Username    string    // Unique, normalized handle; becomes the public subdomain label.
	Email       string    // Contact address snapshot taken from the identity at creation. Server-managed.
	FullName    string    // Display name shown on the public page. Required to publish.
	Headline    string
	Bio         string
	Skills      []string
	Projects    []Project
	Experience  []Experience
	Education   []Education
	SocialLinks map[string]string // Keyed by platform name, e.g. "github" -> URL.
	Theme       string            // Visual template identifier.
	Published   bool
	CreatedAt   time.Time
	UpdatedAt   time.Time // Refreshed on every mutation.
}

// Project is a single portfolio project entry.
type Project struct {
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	Link        string   `json:"link,omitempty"`
	Tags        []string `json:"tags,omitempty"`
}

// Experience is a single work-experience entry.
type Experience struct {
	Company string `json:"company"`
	Role    string `json:"role"`
	Start   string `json:"start,omitempty"`
	End     string `json:"end,omitempty"`
	Summary string `json:"summary,omitempty"`
}

// Education is a single education entry.
type Education struct {
	School string `json:"school"`
	Degree string `json:"degree,omitempty"`
	Field  string `json:"field,omitempty"`
	Start  string `json:"start,omitempty"`
	End    string `json:"end,omitempty"`
}

// PublicView returns the published subset of the profile, the only fields
// the presentation layer may render on the public page.
func (p *Profile) PublicView() *PublicProfile {
	return &PublicProfile{
		Username:    p.Username,
		FullName:    p.FullName,
		Headline:    p.Headline,
		Bio:         p.Bio,
		Skills:      p.Skills,
		Projects:    p.Projects,
		Experience:  p.Experience,
		Education:   p.Education,
		SocialLinks: p.SocialLinks,
		Theme:       p.Theme,
		UpdatedAt:   p.UpdatedAt,
	}
}

// PublicProfile is the read-only projection served for published profiles.
// It never carries the owner ID, contact address, or publication state.
type PublicProfile struct {
	Username    string            `json:"username"`
	FullName    string            `json:"full_name"`
	Headline    string            `json:"headline,omitempty"`
	Bio         string            `json:"bio,omitempty"`
	Skills      []string          `json:"skills,omitempty"`
	Projects    []Project         `json:"projects,omitempty"`
	Experience  []Experience      `json:"experience,omitempty"`
	Education   []Education       `json:"education,omitempty"`
	SocialLinks map[string]string `json:"social_links,omitempty"`
	Theme       string            `json:"theme"`
	UpdatedAt   time.Time         `json:"updated_at"`
}
