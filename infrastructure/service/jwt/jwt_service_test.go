package jwt

import (
	"testing"
	"time"

	"github.com/auditra/auditra/application/port/outbound"
)

func TestJWTService(t *testing.T) {
	service, err := NewJWTService("test-secret", time.Hour)
	if err != nil {
		t.Fatalf("Failed to create JWT service: %v", err)
	}

	t.Run("GenerateAccessToken", func(t *testing.T) {
		token, err := service.GenerateAccessToken(outbound.TokenClaims{UserID: "admin-1", Role: "admin"})
		if err != nil {
			t.Errorf("Failed to generate access token: %v", err)
		}
		if token == "" {
			t.Error("Access token should not be empty")
		}
	})

	t.Run("ValidateAccessToken", func(t *testing.T) {
		tokenString, err := service.GenerateAccessToken(outbound.TokenClaims{UserID: "admin-1", Role: "admin"})
		if err != nil {
			t.Fatalf("Failed to generate token: %v", err)
		}

		claims, err := service.ValidateAccessToken(tokenString)
		if err != nil {
			t.Errorf("Failed to validate token: %v", err)
		}
		if claims != nil && claims.UserID != "admin-1" {
			t.Errorf("Expected user ID 'admin-1', got '%s'", claims.UserID)
		}
		if claims != nil && claims.Role != "admin" {
			t.Errorf("Expected role 'admin', got '%s'", claims.Role)
		}
	})

	t.Run("ValidateInvalidToken", func(t *testing.T) {
		if _, err := service.ValidateAccessToken("invalid-token"); err == nil {
			t.Error("Expected error for invalid token")
		}
	})

	t.Run("ValidateTokenSignedWithOtherSecret", func(t *testing.T) {
		other, err := NewJWTService("other-secret", time.Hour)
		if err != nil {
			t.Fatalf("Failed to create JWT service: %v", err)
		}
		tokenString, err := other.GenerateAccessToken(outbound.TokenClaims{UserID: "admin-1", Role: "admin"})
		if err != nil {
			t.Fatalf("Failed to generate token: %v", err)
		}

		if _, err := service.ValidateAccessToken(tokenString); err == nil {
			t.Error("Expected error for token signed with a different secret")
		}
	})

	t.Run("ExpiredToken", func(t *testing.T) {
		expired, err := NewJWTService("test-secret", -time.Minute)
		if err != nil {
			t.Fatalf("Failed to create JWT service: %v", err)
		}
		tokenString, err := expired.GenerateAccessToken(outbound.TokenClaims{UserID: "admin-1", Role: "admin"})
		if err != nil {
			t.Fatalf("Failed to generate token: %v", err)
		}

		if _, err := service.ValidateAccessToken(tokenString); err != ErrTokenExpired {
			t.Errorf("Expected ErrTokenExpired, got %v", err)
		}
	})

	t.Run("EmptySecretRejected", func(t *testing.T) {
		if _, err := NewJWTService("", time.Hour); err == nil {
			t.Error("Expected error for empty secret")
		}
	})
}
