package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/auditra/auditra/application/port/outbound"
	"github.com/auditra/auditra/infrastructure/http/response"
)

const (
	AuthUserKey = "auth_user"
)

type AuthMiddleware struct {
	tokenService outbound.TokenService
}

func NewAuthMiddleware(tokenService outbound.TokenService) *AuthMiddleware {
	return &AuthMiddleware{
		tokenService: tokenService,
	}
}

func (m *AuthMiddleware) RequireAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			response.Unauthorized(w, "Authorization header required")
			return
		}

		// Extract Bearer token
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Unauthorized(w, "Invalid authorization header format")
			return
		}

		token := parts[1]
		if token == "" {
			response.Unauthorized(w, "Token cannot be empty")
			return
		}

		claims, err := m.tokenService.ValidateAccessToken(token)
		if err != nil {
			response.Unauthorized(w, "Invalid or expired token")
			return
		}

		ctx := context.WithValue(r.Context(), AuthUserKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	}
}

// RequireAdmin ensures the caller is authenticated with an admin role.
// The activity log is an admin-only surface.
func (m *AuthMiddleware) RequireAdmin(next http.HandlerFunc) http.HandlerFunc {
	return m.RequireAuth(func(w http.ResponseWriter, r *http.Request) {
		claims := GetUserClaims(r.Context())
		if claims == nil {
			response.Unauthorized(w, "User not authenticated")
			return
		}

		if !isAdminRole(claims.Role) {
			response.Forbidden(w, "Admin access required")
			return
		}

		next.ServeHTTP(w, r)
	})
}

func isAdminRole(role string) bool {
	adminRoles := []string{"admin", "superadmin"}
	for _, adminRole := range adminRoles {
		if role == adminRole {
			return true
		}
	}
	return false
}

// GetUserClaims retrieves user claims from context
func GetUserClaims(ctx context.Context) *outbound.TokenClaims {
	if claims, ok := ctx.Value(AuthUserKey).(*outbound.TokenClaims); ok {
		return claims
	}
	return nil
}
