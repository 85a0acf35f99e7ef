package middleware

import (
	"net/http"
	"strings"

	"github.com/campus-hr/payroll-backend-go/internal/handler/http/response"
	"github.com/campus-hr/payroll-backend-go/internal/pkg/jwt"
	"github.com/go-chi/jwtauth/v5"
)

// TokenFromSessionCookie extracts the session token from the session cookie.
// Used as a fallback find function after the Authorization header.
func TokenFromSessionCookie(r *http.Request) string {
	cookie, err := r.Cookie(jwt.SessionCookieName)
	if err != nil {
		return ""
	}
	return cookie.Value
}

// RawToken returns the bearer token exactly as the client sent it, header
// first then cookie. Revocation tracks the raw string.
func RawToken(r *http.Request) string {
	if header := r.Header.Get("Authorization"); len(header) > 7 && strings.EqualFold(header[0:7], "bearer ") {
		return header[7:]
	}
	return TokenFromSessionCookie(r)
}

// AuthRequired ensures the request carries a valid, unrevoked access token.
func AuthRequired(jwtService jwt.Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, claims, err := jwtauth.FromContext(r.Context())
			if err != nil || token == nil {
				response.Unauthorized(w, "Authentication required")
				return
			}

			tokenType, ok := claims["type"].(string)
			if !ok || tokenType != "access" {
				response.Unauthorized(w, "Invalid token type")
				return
			}

			if jwtService.IsTokenRevoked(RawToken(r)) {
				response.Unauthorized(w, "Session has been revoked")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
