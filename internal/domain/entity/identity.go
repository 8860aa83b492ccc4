package entity

import "github.com/google/uuid"

// Identity is the verified caller extracted from a session token. Accounts
// and sessions themselves live in the external identity store; this is the
// minimal slice of it the profile core needs.
type Identity struct {
	ID    uuid.UUID // Stable account identifier, used as Profile.OwnerID.
	Name  string    // Display name as registered with the identity provider.
	Email string    // Contact address; its local part seeds the default username.
}
