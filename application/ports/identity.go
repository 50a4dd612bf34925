package ports

import "context"

// IdentityProvider abstracts the external identity service backing signup and
// login. No credentials or tokens are stored locally; the provider owns the
// whole token lifecycle.
type IdentityProvider interface {
	// CreateUser registers an account with the email pre-verified and the
	// provider's own welcome notification suppressed, then sets the
	// password as permanent.
	CreateUser(ctx context.Context, email, password string) error

	// Authenticate performs an admin-initiated username/password login and
	// returns the issued identity token.
	Authenticate(ctx context.Context, email, password string) (string, error)
}
