package users_models

import "github.com/google/uuid"

// Principal is the authenticated caller as derived from a verified bearer
// token. Guests never appear here: they have no authentication identity and
// cannot act as a principal.
type Principal struct {
	ID        uuid.UUID
	Email     string
	FullName  string
	AvatarURL string
	Provider  string
}
