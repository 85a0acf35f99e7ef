package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/campus-hr/payroll-backend-go/internal/domain/auth"
	"github.com/campus-hr/payroll-backend-go/internal/pkg/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAuthService struct {
	token     auth.TokenResponse
	loginErr  error
	logoutErr error
	loggedOut []string
}

func (f *fakeAuthService) Login(ctx context.Context, req auth.LoginRequest) (auth.TokenResponse, error) {
	if f.loginErr != nil {
		return auth.TokenResponse{}, f.loginErr
	}
	return f.token, nil
}

func (f *fakeAuthService) LoginWithGoogle(ctx context.Context, googleEmail string, googleID string) (auth.TokenResponse, error) {
	return auth.TokenResponse{}, auth.ErrGoogleNotLinked
}

func (f *fakeAuthService) Me(ctx context.Context, userID string) (auth.SessionResponse, error) {
	return f.token.User, nil
}

func (f *fakeAuthService) Logout(ctx context.Context, token string) error {
	if f.logoutErr != nil {
		return f.logoutErr
	}
	f.loggedOut = append(f.loggedOut, token)
	return nil
}

func newAuthTestHandler(svc auth.AuthService) AuthHandler {
	jwtSvc := jwt.NewJWTService("test-secret-key", "1h")
	return NewAuthHandler(svc, jwtSvc, nil, "http://localhost:3000", false)
}

func TestLoginSetsSessionCookie(t *testing.T) {
	svc := &fakeAuthService{
		token: auth.TokenResponse{
			Token:     "token-abc",
			ExpiresAt: 1900000000,
			User:      auth.SessionResponse{UserID: "u1", Email: "admin@campus.edu", Role: "admin"},
		},
	}
	handler := newAuthTestHandler(svc)

	body, _ := json.Marshal(auth.LoginRequest{Email: "admin@campus.edu", Password: "hunter22"})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	handler.Login(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var found *http.Cookie
	for _, c := range rec.Result().Cookies() {
		if c.Name == jwt.SessionCookieName {
			found = c
		}
	}
	require.NotNil(t, found, "session cookie should be set")
	assert.Equal(t, "token-abc", found.Value)
	assert.True(t, found.HttpOnly)

	var envelope struct {
		Success bool `json:"success"`
		Data    struct {
			User auth.SessionResponse `json:"user"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.True(t, envelope.Success)
	assert.Equal(t, "u1", envelope.Data.User.UserID)
	// The raw token travels only in the cookie.
	assert.NotContains(t, rec.Body.String(), "token-abc")
}

func TestLoginInvalidCredentials(t *testing.T) {
	handler := newAuthTestHandler(&fakeAuthService{loginErr: auth.ErrInvalidCredentials})

	body, _ := json.Marshal(auth.LoginRequest{Email: "admin@campus.edu", Password: "wrong"})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	handler.Login(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Empty(t, rec.Result().Cookies())
}

func TestLoginRejectsMalformedBody(t *testing.T) {
	handler := newAuthTestHandler(&fakeAuthService{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", bytes.NewReader([]byte("{not json")))
	rec := httptest.NewRecorder()

	handler.Login(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLoginValidatesEmail(t *testing.T) {
	handler := newAuthTestHandler(&fakeAuthService{})

	body, _ := json.Marshal(auth.LoginRequest{Email: "not-an-email", Password: "x"})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	handler.Login(rec, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestLogoutClearsCookieAndRevokes(t *testing.T) {
	svc := &fakeAuthService{}
	handler := newAuthTestHandler(svc)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/logout", nil)
	req.AddCookie(&http.Cookie{Name: jwt.SessionCookieName, Value: "token-abc"})
	rec := httptest.NewRecorder()

	handler.Logout(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, []string{"token-abc"}, svc.loggedOut)

	var cleared *http.Cookie
	for _, c := range rec.Result().Cookies() {
		if c.Name == jwt.SessionCookieName {
			cleared = c
		}
	}
	require.NotNil(t, cleared)
	assert.Empty(t, cleared.Value)
	assert.Negative(t, cleared.MaxAge)
}

func TestLogoutWithoutToken(t *testing.T) {
	handler := newAuthTestHandler(&fakeAuthService{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/logout", nil)
	rec := httptest.NewRecorder()

	handler.Logout(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
