package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

func newAuthTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/protected", JWTAuthMiddleware(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"userId": c.GetString("userId")})
	})
	return router
}

func signTestToken(t *testing.T, secret, userID string, expiry time.Duration) string {
	t.Helper()
	claims := &Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(expiry)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("failed to sign test token: %v", err)
	}
	return token
}

func TestJWTAuthMiddleware(t *testing.T) {
	const secret = "test-secret"
	t.Setenv("JWT_SECRET", secret)

	router := newAuthTestRouter()

	tests := []struct {
		name       string
		authHeader string
		wantStatus int
	}{
		{
			name:       "Missing header",
			authHeader: "",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "Malformed header",
			authHeader: "NotBearer token",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "Garbage token",
			authHeader: "Bearer not.a.jwt",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "Expired token",
			authHeader: "Bearer " + signTestToken(t, secret, "abc123", -time.Hour),
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "Wrong secret",
			authHeader: "Bearer " + signTestToken(t, "other-secret", "abc123", time.Hour),
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "Valid token",
			authHeader: "Bearer " + signTestToken(t, secret, "abc123", time.Hour),
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
		})
	}
}

func TestJWTAuthMiddlewareQueryToken(t *testing.T) {
	const secret = "test-secret"
	t.Setenv("JWT_SECRET", secret)

	router := newAuthTestRouter()
	token := signTestToken(t, secret, "abc123", time.Hour)

	req := httptest.NewRequest(http.MethodGet, "/protected?token="+token, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusOK)
	}
}
