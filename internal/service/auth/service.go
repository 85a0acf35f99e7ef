package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/campus-hr/payroll-backend-go/internal/domain/auth"
	"github.com/campus-hr/payroll-backend-go/internal/domain/user"
	"github.com/campus-hr/payroll-backend-go/internal/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

type AuthServiceImpl struct {
	userRepo   user.UserRepository
	jwtService jwt.Service
}

func NewAuthService(userRepo user.UserRepository, jwtService jwt.Service) auth.AuthService {
	return &AuthServiceImpl{
		userRepo:   userRepo,
		jwtService: jwtService,
	}
}

// Login implements auth.AuthService.
func (a *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.TokenResponse{}, err
	}

	userData, err := a.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.TokenResponse{}, auth.ErrInvalidCredentials
		}
		return auth.TokenResponse{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	if userData.PasswordHash == "" {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(userData.PasswordHash), []byte(req.Password)); err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}

	return a.issueSession(userData)
}

// LoginWithGoogle implements auth.AuthService.
func (a *AuthServiceImpl) LoginWithGoogle(ctx context.Context, googleEmail string, googleID string) (auth.TokenResponse, error) {
	userData, err := a.userRepo.GetByGoogleID(ctx, googleID)
	if err != nil {
		if !errors.Is(err, user.ErrUserNotFound) {
			return auth.TokenResponse{}, fmt.Errorf("failed to get user by google id: %w", err)
		}
		// Fall back to the email; the admin may have created the account
		// before the first Google sign-in.
		userData, err = a.userRepo.GetByEmail(ctx, googleEmail)
		if err != nil {
			if errors.Is(err, user.ErrUserNotFound) {
				return auth.TokenResponse{}, auth.ErrGoogleNotLinked
			}
			return auth.TokenResponse{}, fmt.Errorf("failed to get user by email: %w", err)
		}
	}

	return a.issueSession(userData)
}

// Me implements auth.AuthService.
func (a *AuthServiceImpl) Me(ctx context.Context, userID string) (auth.SessionResponse, error) {
	userData, err := a.userRepo.GetByID(ctx, userID)
	if err != nil {
		return auth.SessionResponse{}, err
	}
	return mapToSessionResponse(userData), nil
}

// Logout implements auth.AuthService.
func (a *AuthServiceImpl) Logout(ctx context.Context, token string) error {
	if !a.jwtService.IsTokenRevoked(token) {
		a.jwtService.RevokeToken(token)
	}
	return nil
}

func (a *AuthServiceImpl) issueSession(userData user.User) (auth.TokenResponse, error) {
	token, expiresAt, err := a.jwtService.GenerateSessionToken(userData.ID, userData.Email, userData.EmployeeID, userData.Role)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to create session token: %w", err)
	}

	return auth.TokenResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      mapToSessionResponse(userData),
	}, nil
}

func mapToSessionResponse(u user.User) auth.SessionResponse {
	return auth.SessionResponse{
		UserID:     u.ID,
		Email:      u.Email,
		Role:       string(u.Role),
		EmployeeID: u.EmployeeID,
	}
}
