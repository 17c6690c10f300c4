package handlers

import (
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"os"
	"time"

	"magazine/database"
	"magazine/middleware"
	"magazine/models"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

// Google OAuth Config
var (
	googleOAuthConfig *oauth2.Config
)

// Initialize Google OAuth
func init() {
	clientID := os.Getenv("GOOGLE_CLIENT_ID")
	clientSecret := os.Getenv("GOOGLE_CLIENT_SECRET")

	if clientID != "" && clientSecret != "" {
		googleOAuthConfig = &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			RedirectURL:  "http://localhost:8080/api/google/callback",
			Scopes: []string{
				"https://www.googleapis.com/auth/userinfo.email",
				"https://www.googleapis.com/auth/userinfo.profile",
			},
			Endpoint: google.Endpoint,
		}
		log.Println("✅ Google OAuth configured successfully")
	} else {
		log.Println("⚠️  Google OAuth not configured - set GOOGLE_CLIENT_ID and GOOGLE_CLIENT_SECRET")
	}
}

// Google user info structure
type GoogleUserInfo struct {
	ID            string `json:"id"`
	Email         string `json:"email"`
	VerifiedEmail bool   `json:"verified_email"`
	Name          string `json:"name"`
	GivenName     string `json:"given_name"`
	FamilyName    string `json:"family_name"`
	Picture       string `json:"picture"`
	Locale        string `json:"locale"`
}

// Google Auth Request
type GoogleAuthRequest struct {
	Credential string `json:"credential" binding:"required"`
}

// Get Google OAuth URL (for traditional OAuth flow)
func GetGoogleAuthURL(c *gin.Context) {
	if googleOAuthConfig == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Google OAuth not configured"})
		return
	}

	// Generate state token for security
	state := primitive.NewObjectID().Hex()

	url := googleOAuthConfig.AuthCodeURL(state, oauth2.AccessTypeOffline)
	c.JSON(http.StatusOK, gin.H{"url": url})
}

// Handle Google OAuth callback (for traditional OAuth flow)
func GoogleOAuthCallback(c *gin.Context) {
	code := c.Query("code")
	if code == "" {
		log.Printf("❌ Authorization code missing")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Authorization code missing"})
		return
	}

	if googleOAuthConfig == nil {
		log.Printf("❌ Google OAuth not configured")
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Google OAuth not configured"})
		return
	}

	ctx := context.Background()
	token, err := googleOAuthConfig.Exchange(ctx, code)
	if err != nil {
		log.Printf("❌ Google OAuth token exchange failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to exchange authorization code"})
		return
	}

	// Get user info from Google
	client := googleOAuthConfig.Client(ctx, token)
	resp, err := client.Get("https://www.googleapis.com/oauth2/v2/userinfo")
	if err != nil {
		log.Printf("❌ Failed to get user info from Google: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get user information"})
		return
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Printf("❌ Failed to read Google user info: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read user information"})
		return
	}

	var googleUser GoogleUserInfo
	if err := json.Unmarshal(data, &googleUser); err != nil {
		log.Printf("❌ Failed to parse Google user info: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to parse user information"})
		return
	}

	log.Printf("✅ Google user info retrieved: %s (%s)", googleUser.Email, googleUser.Name)
	handleGoogleUser(c, googleUser)
}

// Handle Google Sign-In with Credential (Google Identity Services)
func GoogleAuthWithCredential(c *gin.Context) {
	var req GoogleAuthRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("❌ Invalid Google auth request: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	// Parse the Google ID token to get user info (in production, verify the
	// signature against Google's JWKS as well)
	token, _, err := new(jwt.Parser).ParseUnverified(req.Credential, jwt.MapClaims{})
	if err != nil {
		log.Printf("❌ Failed to parse Google credential: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid Google credential"})
		return
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		log.Printf("❌ Invalid Google credential claims")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid Google credential"})
		return
	}

	// Extract user info from claims
	googleUser := GoogleUserInfo{
		ID:      getStringClaim(claims, "sub"),
		Email:   getStringClaim(claims, "email"),
		Name:    getStringClaim(claims, "name"),
		Picture: getStringClaim(claims, "picture"),
	}

	if googleUser.Email == "" {
		log.Printf("❌ Google credential missing email")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email not provided by Google"})
		return
	}

	log.Printf("✅ Google credential parsed: %s (%s)", googleUser.Email, googleUser.Name)
	handleGoogleUser(c, googleUser)
}

// Helper function to get string claim from JWT
func getStringClaim(claims jwt.MapClaims, key string) string {
	if val, ok := claims[key]; ok {
		if str, ok := val.(string); ok {
			return str
		}
	}
	return ""
}

// handleGoogleUser ensures a profile exists for the Google identity and
// issues a session token. The profile is created with a single upsert so two
// near-simultaneous first logins cannot both race through a check-then-create
// window; the second login simply matches the document the first one wrote.
func handleGoogleUser(c *gin.Context, googleUser GoogleUserInfo) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	now := time.Now().Unix()

	setFields := bson.M{
		"lastLogin":    now,
		"authProvider": "google",
	}
	if googleUser.ID != "" {
		setFields["googleId"] = googleUser.ID
	}

	setOnInsert := bson.M{
		"email":       googleUser.Email,
		"displayName": googleUser.Name,
		"photoUrl":    googleUser.Picture,
		"isAdmin":     false,
		"createdAt":   now,
	}

	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var user models.User
	err := database.Users.FindOneAndUpdate(
		ctx,
		bson.M{"email": googleUser.Email},
		bson.M{"$set": setFields, "$setOnInsert": setOnInsert},
		opts,
	).Decode(&user)
	if err != nil {
		log.Printf("❌ Failed to upsert Google user: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user account"})
		return
	}

	// CreatedAt is only written by $setOnInsert, so it equals this login's
	// timestamp exactly when the upsert inserted.
	isNewUser := user.CreatedAt == now

	// Refresh the photo if the profile has none and Google has one
	if user.PhotoURL == "" && googleUser.Picture != "" {
		_, err = database.Users.UpdateOne(ctx,
			bson.M{"_id": user.ID},
			bson.M{"$set": bson.M{"photoUrl": googleUser.Picture}},
		)
		if err != nil {
			log.Printf("⚠️ Failed to update user photo: %v", err)
		} else {
			user.PhotoURL = googleUser.Picture
		}
	}

	if isNewUser {
		log.Printf("✅ New Google user created: %s (ID: %s)", user.Email, user.ID.Hex())
	} else {
		log.Printf("📝 Existing Google user logging in: %s", user.Email)
	}

	tokenString, expirationTime, err := issueSessionToken(user.ID.Hex())
	if err != nil {
		log.Printf("❌ Failed to generate JWT token: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate authentication token"})
		return
	}

	log.Printf("✅ Google authentication successful for: %s", user.Email)

	c.JSON(http.StatusOK, gin.H{
		"token":       tokenString,
		"userId":      user.ID.Hex(),
		"email":       user.Email,
		"displayName": user.DisplayName,
		"photoUrl":    user.PhotoURL,
		"isAdmin":     user.IsAdmin,
		"isNewUser":   isNewUser,
		"message":     "Authentication successful",
		"expires":     expirationTime.Unix(),
	})
}

// issueSessionToken signs a 24h HS256 session token for the given user.
func issueSessionToken(userID string) (string, time.Time, error) {
	expirationTime := time.Now().Add(24 * time.Hour)
	claims := &middleware.Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expirationTime),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	jwtToken := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		jwtSecret = "your-secret-key-change-this-in-production"
	}

	tokenString, err := jwtToken.SignedString([]byte(jwtSecret))
	if err != nil {
		return "", time.Time{}, err
	}
	return tokenString, expirationTime, nil
}
