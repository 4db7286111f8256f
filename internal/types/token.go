package types

import "github.com/google/uuid"

// TokenClaims are the claims extracted from a validated bearer token. The
// identity provider itself is external; this backend only verifies tokens.
type TokenClaims struct {
	UserID uuid.UUID `json:"user_id"`
}
