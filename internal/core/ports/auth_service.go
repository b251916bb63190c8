package ports

import "context"

// AuthResult is returned after a successful registration or login.
type AuthResult struct {
	Token string
	Role  string
}

type AuthService interface {
	// Register creates an account. A signUpCode matching the configured
	// secret grants the operator role; anything else yields a standard user.
	Register(ctx context.Context, email, password, signUpCode string) (*AuthResult, error)
	Login(ctx context.Context, email, password string) (*AuthResult, error)
}
