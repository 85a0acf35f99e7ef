package auth

import "context"

type AuthService interface {
	Login(ctx context.Context, req LoginRequest) (TokenResponse, error)
	// LoginWithGoogle resolves a verified Google identity to a local account.
	// Accounts are provisioned by an administrator; an unknown identity is
	// rejected with ErrGoogleNotLinked.
	LoginWithGoogle(ctx context.Context, googleEmail string, googleID string) (TokenResponse, error)
	Me(ctx context.Context, userID string) (SessionResponse, error)
	Logout(ctx context.Context, token string) error
}
