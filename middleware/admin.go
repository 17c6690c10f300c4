package middleware

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

// AdminRequired gates post-authoring routes. Must run after
// JWTAuthMiddleware so userId is present in the context.
func AdminRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDStr := c.GetString("userId")
		userID, err := primitive.ObjectIDFromHex(userIDStr)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid user ID"})
			c.Abort()
			return
		}

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		var user models.User
		err = database.Users.FindOne(ctx, bson.M{"_id": userID}).Decode(&user)
		if err == mongo.ErrNoDocuments {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found"})
			c.Abort()
			return
		}
		if err != nil {
			log.Printf("[AdminRequired] Database error: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
			c.Abort()
			return
		}

		if !user.IsAdmin {
			c.JSON(http.StatusForbidden, gin.H{
				"error":   "Admin access required",
				"message": "This action is restricted to administrators",
			})
			c.Abort()
			return
		}

		c.Next()
	}
}
