package http

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/campus-hr/payroll-backend-go/internal/domain/auth"
	"github.com/campus-hr/payroll-backend-go/internal/handler/http/middleware"
	"github.com/campus-hr/payroll-backend-go/internal/handler/http/response"
	"github.com/campus-hr/payroll-backend-go/internal/pkg/jwt"
	"github.com/campus-hr/payroll-backend-go/internal/pkg/oauth"
	"github.com/go-chi/jwtauth/v5"
)

type AuthHandler interface {
	Login(w http.ResponseWriter, r *http.Request)
	LoginWithGoogle(w http.ResponseWriter, r *http.Request)
	OAuthCallbackGoogle(w http.ResponseWriter, r *http.Request)
	Me(w http.ResponseWriter, r *http.Request)
	Logout(w http.ResponseWriter, r *http.Request)
}

type AuthHandlerImpl struct {
	authService        auth.AuthService
	jwtService         jwt.Service
	googleService      oauth.GoogleService
	frontendURL        string
	googleLoginEnabled bool
}

func NewAuthHandler(authService auth.AuthService, jwtService jwt.Service, googleService oauth.GoogleService, frontendURL string, googleLoginEnabled bool) AuthHandler {
	return &AuthHandlerImpl{
		authService:        authService,
		jwtService:         jwtService,
		googleService:      googleService,
		frontendURL:        frontendURL,
		googleLoginEnabled: googleLoginEnabled,
	}
}

// Login implements AuthHandler.
func (a *AuthHandlerImpl) Login(w http.ResponseWriter, r *http.Request) {
	var loginReq auth.LoginRequest

	if err := json.NewDecoder(r.Body).Decode(&loginReq); err != nil {
		slog.Error("Login decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := loginReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	tokenResponse, err := a.authService.Login(r.Context(), loginReq)
	if err != nil {
		slog.Error("Login service error", "error", err)
		response.HandleError(w, err)
		return
	}

	http.SetCookie(w, a.jwtService.SessionCookie(tokenResponse.Token, tokenResponse.ExpiresAt))
	slog.Info("User logged in", "user_id", tokenResponse.User.UserID)
	response.SuccessWithMessage(w, "Logged in successfully", tokenResponse)
}

// LoginWithGoogle implements AuthHandler.
func (a *AuthHandlerImpl) LoginWithGoogle(w http.ResponseWriter, r *http.Request) {
	if !a.googleLoginEnabled {
		response.NotFound(w, "Google login is not configured")
		return
	}

	state := a.googleService.GenerateState(r.UserAgent())
	cookie := &http.Cookie{
		Name:     "state",
		Value:    state,
		Path:     "/api/v1/auth/oauth/callback/google",
		Expires:  time.Now().Add(5 * time.Minute),
		HttpOnly: true,
		Secure:   false,
		SameSite: http.SameSiteLaxMode,
	}
	http.SetCookie(w, cookie)
	http.Redirect(w, r, a.googleService.RedirectURL(state), http.StatusTemporaryRedirect)
}

// OAuthCallbackGoogle implements AuthHandler.
func (a *AuthHandlerImpl) OAuthCallbackGoogle(w http.ResponseWriter, r *http.Request) {
	redirectWithError := func(errorMsg string) {
		redirectURL := fmt.Sprintf("%s/auth/callback/google?error=%s", a.frontendURL, url.QueryEscape(errorMsg))
		http.Redirect(w, r, redirectURL, http.StatusTemporaryRedirect)
	}

	if !a.googleLoginEnabled {
		response.NotFound(w, "Google login is not configured")
		return
	}

	stateReq, err := r.Cookie("state")
	if err != nil {
		slog.Error("State cookie not found", "error", err)
		redirectWithError("state_cookie_not_found")
		return
	}
	if errorValue := r.URL.Query().Get("error"); errorValue != "" {
		slog.Error("Error in OAuth callback", "error", errorValue)
		redirectWithError(errorValue)
		return
	}

	stateParam := r.URL.Query().Get("state")
	if stateParam == "" || stateParam != stateReq.Value {
		slog.Error("OAuth state mismatch")
		redirectWithError("state_mismatch")
		return
	}

	code := r.URL.Query().Get("code")
	if code == "" {
		slog.Error("OAuth code value is empty")
		redirectWithError("code_empty")
		return
	}

	token, err := a.googleService.ExchangeCode(r.Context(), code)
	if err != nil {
		slog.Error("Failed to exchange OAuth code", "error", err)
		redirectWithError("code_exchange_failed")
		return
	}

	googleUser, err := a.googleService.FetchUser(r.Context(), token)
	if err != nil {
		slog.Error("Failed to fetch Google user", "error", err)
		redirectWithError("user_fetch_failed")
		return
	}
	if !googleUser.VerifiedEmail {
		slog.Error("Google email not verified", "email", googleUser.Email)
		redirectWithError("email_not_verified")
		return
	}

	tokenResponse, err := a.authService.LoginWithGoogle(r.Context(), googleUser.Email, googleUser.GoogleID)
	if err != nil {
		slog.Error("Google login rejected", "error", err)
		redirectWithError("login_failed")
		return
	}

	http.SetCookie(w, a.jwtService.SessionCookie(tokenResponse.Token, tokenResponse.ExpiresAt))
	slog.Info("User logged in via Google OAuth", "user_id", tokenResponse.User.UserID)
	http.Redirect(w, r, a.frontendURL+"/auth/callback/google", http.StatusTemporaryRedirect)
}

// Me implements AuthHandler.
func (a *AuthHandlerImpl) Me(w http.ResponseWriter, r *http.Request) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		response.Unauthorized(w, "Authentication required")
		return
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		response.Unauthorized(w, "Invalid session claims")
		return
	}

	session, err := a.authService.Me(r.Context(), userID)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, session)
}

// Logout implements AuthHandler.
func (a *AuthHandlerImpl) Logout(w http.ResponseWriter, r *http.Request) {
	token := middleware.RawToken(r)
	if token == "" {
		response.Unauthorized(w, "No session token provided")
		return
	}

	if err := a.authService.Logout(r.Context(), token); err != nil {
		response.HandleError(w, err)
		return
	}

	http.SetCookie(w, a.jwtService.ClearedSessionCookie())
	response.SuccessWithMessage(w, "Logged out successfully", nil)
}
