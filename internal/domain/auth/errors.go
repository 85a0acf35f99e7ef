package auth

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidToken       = errors.New("invalid or expired session token")
	ErrGoogleLoginFailed  = errors.New("google login failed")
	ErrGoogleNotLinked    = errors.New("no account is linked to this google identity")
)
