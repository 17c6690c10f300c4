package handlers

import (
	"context"
	"log"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"magazine/database"
	"magazine/models"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Search telemetry threshold: queries must be longer than this many runes
// before a "search" activity entry is attempted. Rune count, not bytes, so
// multi-byte scripts are measured the way a user perceives length.
const searchLogMinRunes = 2

// MatchesSearch reports whether the post's title or any of its hashtags
// contains the query as a case-insensitive substring. An empty (or
// whitespace-only) query matches everything.
func MatchesSearch(post models.Post, query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}
	if strings.Contains(strings.ToLower(post.Title), q) {
		return true
	}
	for _, tag := range post.Hashtags {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	return false
}

// MatchesTag reports whether the post carries the tag as an exact hashtag
// element. An empty tag matches everything.
func MatchesTag(post models.Post, tag string) bool {
	if tag == "" {
		return true
	}
	for _, t := range post.Hashtags {
		if t == tag {
			return true
		}
	}
	return false
}

// FilterPosts applies the tag filter and the text search over the already
// loaded post list. The two predicates compose with logical AND. The input
// slice is never mutated.
func FilterPosts(posts []models.Post, query, tag string) []models.Post {
	filtered := make([]models.Post, 0, len(posts))
	for _, p := range posts {
		if MatchesTag(p, tag) && MatchesSearch(p, query) {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

// ShouldLogSearch reports whether the query is long enough to record.
func ShouldLogSearch(query string) bool {
	return utf8.RuneCountInString(strings.TrimSpace(query)) > searchLogMinRunes
}

// GetFeed lists every post, newest first, then filters in memory by the
// optional q (text search) and tag (exact hashtag) parameters. Filtering
// happens on the fetched list, not in the database query, matching the
// gallery's single-fetch model.
func GetFeed(c *gin.Context) {
	userIDStr := c.GetString("userId")
	userID, err := primitive.ObjectIDFromHex(userIDStr)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid user ID"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	findOpts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := database.Posts.Find(ctx, bson.M{}, findOpts)
	if err != nil {
		log.Printf("[GetFeed] Failed to fetch posts: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch posts"})
		return
	}
	defer cursor.Close(ctx)

	var posts []models.Post
	if err = cursor.All(ctx, &posts); err != nil {
		log.Printf("[GetFeed] Failed to decode posts: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to decode posts"})
		return
	}

	query := c.Query("q")
	tag := c.Query("tag")

	if ShouldLogSearch(query) {
		recordActivityAsync(userID, models.ActionSearch, models.ActivityLog{
			Query: strings.TrimSpace(query),
		})
	}

	filtered := FilterPosts(posts, query, tag)

	c.JSON(http.StatusOK, gin.H{
		"posts": filtered,
		"total": len(filtered),
	})
}

// GetCategories returns the fixed category set the authoring form selects
// from.
func GetCategories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"categories": models.Categories})
}
