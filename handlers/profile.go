package handlers

import (
	"context"
	"log"
	"net/http"
	"time"

	"magazine/database"
	"magazine/models"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// GetMyProfile returns the signed-in user's profile. The isAdmin flag tells
// the client whether to show the admin-panel affordance.
func GetMyProfile(c *gin.Context) {
	userIDStr := c.GetString("userId")
	if userIDStr == "" {
		log.Println("[GetMyProfile] ERROR: No userId in context")
		c.JSON(http.StatusUnauthorized, gin.H{
			"error":   "Not authenticated",
			"code":    "UNAUTHORIZED",
			"message": "Please log in first",
		})
		return
	}

	userID, err := primitive.ObjectIDFromHex(userIDStr)
	if err != nil {
		log.Printf("[GetMyProfile] ERROR: Invalid user ID format: %s, error: %v", userIDStr, err)
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid user ID",
			"code":    "INVALID_ID",
			"message": "User ID is not valid",
		})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var user models.User
	err = database.Users.FindOne(ctx, bson.M{"_id": userID}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		log.Printf("[GetMyProfile] ERROR: User not found: %s", userID.Hex())
		c.JSON(http.StatusNotFound, gin.H{
			"error":   "Profile not found",
			"code":    "NOT_FOUND",
			"message": "User profile does not exist",
		})
		return
	}
	if err != nil {
		log.Printf("[GetMyProfile] ERROR: Database error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Database error",
			"code":    "DB_ERROR",
			"message": "Failed to fetch profile from database",
		})
		return
	}

	if user.PhotoURL == "" {
		user.PhotoURL = fallbackPhotoURL
	}

	c.JSON(http.StatusOK, gin.H{
		"id":          user.ID.Hex(),
		"email":       user.Email,
		"displayName": user.DisplayName,
		"photoUrl":    user.PhotoURL,
		"isAdmin":     user.IsAdmin,
		"createdAt":   user.CreatedAt,
		"lastLogin":   user.LastLogin,
	})
}
