package handlers

import (
	"testing"
	"time"

	"magazine/middleware"

	"github.com/golang-jwt/jwt/v5"
)

func TestGetStringClaim(t *testing.T) {
	claims := jwt.MapClaims{
		"sub":   "google-uid-1",
		"email": "user@example.com",
		"exp":   1700000000,
	}

	tests := []struct {
		name string
		key  string
		want string
	}{
		{name: "Present string claim", key: "email", want: "user@example.com"},
		{name: "Missing claim", key: "picture", want: ""},
		{name: "Non-string claim", key: "exp", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := getStringClaim(claims, tt.key); got != tt.want {
				t.Errorf("getStringClaim(%q) = %q, want %q", tt.key, got, tt.want)
			}
		})
	}
}

func TestIssueSessionToken(t *testing.T) {
	const secret = "test-secret"
	t.Setenv("JWT_SECRET", secret)

	tokenString, expiry, err := issueSessionToken("abc123")
	if err != nil {
		t.Fatalf("issueSessionToken() error = %v", err)
	}

	if remaining := time.Until(expiry); remaining < 23*time.Hour {
		t.Errorf("token expiry too soon: %v remaining", remaining)
	}

	claims := &middleware.Claims{}
	parsed, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	})
	if err != nil {
		t.Fatalf("failed to parse issued token: %v", err)
	}
	if !parsed.Valid {
		t.Fatal("issued token is not valid")
	}
	if claims.UserID != "abc123" {
		t.Errorf("UserID = %q, want %q", claims.UserID, "abc123")
	}
}
