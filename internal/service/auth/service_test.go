package auth

import (
	"context"
	"testing"

	"github.com/campus-hr/payroll-backend-go/internal/domain/auth"
	"github.com/campus-hr/payroll-backend-go/internal/domain/user"
	"github.com/campus-hr/payroll-backend-go/internal/pkg/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type fakeUserRepo struct {
	users []user.User
}

func (f *fakeUserRepo) GetByID(_ context.Context, id string) (user.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return user.User{}, user.ErrUserNotFound
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (user.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return user.User{}, user.ErrUserNotFound
}

func (f *fakeUserRepo) GetByGoogleID(_ context.Context, googleID string) (user.User, error) {
	for _, u := range f.users {
		if u.GoogleID != nil && *u.GoogleID == googleID {
			return u, nil
		}
	}
	return user.User{}, user.ErrUserNotFound
}

func newTestAuthService(t *testing.T) (auth.AuthService, jwt.Service) {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("hunter22"), bcrypt.MinCost)
	require.NoError(t, err)

	googleID := "google-oauth2|1138"
	repo := &fakeUserRepo{users: []user.User{
		{ID: "u1", Email: "admin@cs.example.edu", PasswordHash: string(hash), Role: user.RoleAdmin},
		{ID: "u2", Email: "staff@cs.example.edu", Role: user.RoleStaff, GoogleID: &googleID},
	}}

	jwtService := jwt.NewJWTService("test-secret", "1h")
	return NewAuthService(repo, jwtService), jwtService
}

func TestLogin(t *testing.T) {
	service, _ := newTestAuthService(t)

	resp, err := service.Login(context.Background(), auth.LoginRequest{Email: "admin@cs.example.edu", Password: "hunter22"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "admin", resp.User.Role)
}

func TestLoginWrongPassword(t *testing.T) {
	service, _ := newTestAuthService(t)

	_, err := service.Login(context.Background(), auth.LoginRequest{Email: "admin@cs.example.edu", Password: "wrong"})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestLoginUnknownEmail(t *testing.T) {
	service, _ := newTestAuthService(t)

	_, err := service.Login(context.Background(), auth.LoginRequest{Email: "nobody@cs.example.edu", Password: "hunter22"})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestLoginWithoutPasswordAccount(t *testing.T) {
	// Google-only accounts carry no hash; a password login must not succeed.
	service, _ := newTestAuthService(t)

	_, err := service.Login(context.Background(), auth.LoginRequest{Email: "staff@cs.example.edu", Password: ""})
	assert.Error(t, err)
}

func TestLoginWithGoogle(t *testing.T) {
	service, _ := newTestAuthService(t)

	resp, err := service.LoginWithGoogle(context.Background(), "staff@cs.example.edu", "google-oauth2|1138")
	require.NoError(t, err)
	assert.Equal(t, "u2", resp.User.UserID)
}

func TestLoginWithGoogleFallsBackToEmail(t *testing.T) {
	service, _ := newTestAuthService(t)

	resp, err := service.LoginWithGoogle(context.Background(), "admin@cs.example.edu", "google-oauth2|unseen")
	require.NoError(t, err)
	assert.Equal(t, "u1", resp.User.UserID)
}

func TestLoginWithGoogleUnlinked(t *testing.T) {
	service, _ := newTestAuthService(t)

	_, err := service.LoginWithGoogle(context.Background(), "ghost@cs.example.edu", "google-oauth2|ghost")
	assert.ErrorIs(t, err, auth.ErrGoogleNotLinked)
}

func TestLogoutRevokesToken(t *testing.T) {
	service, jwtService := newTestAuthService(t)

	resp, err := service.Login(context.Background(), auth.LoginRequest{Email: "admin@cs.example.edu", Password: "hunter22"})
	require.NoError(t, err)

	require.NoError(t, service.Logout(context.Background(), resp.Token))
	assert.True(t, jwtService.IsTokenRevoked(resp.Token))
}
