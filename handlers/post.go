package handlers

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"magazine/database"
	"magazine/models"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// ValidateNewPost checks the authoring form before anything is uploaded or
// written. Returns a user-facing message when the submission must be blocked.
func ValidateNewPost(title, category string, imageCount int) error {
	if strings.TrimSpace(title) == "" {
		return fmt.Errorf("title is required")
	}
	if !models.IsValidCategory(category) {
		return fmt.Errorf("invalid category: %q", category)
	}
	if imageCount < models.MinPostImages || imageCount > models.MaxPostImages {
		return fmt.Errorf("a post needs between %d and %d images, got %d",
			models.MinPostImages, models.MaxPostImages, imageCount)
	}
	return nil
}

// NormalizeHashtags trims each tag, drops empties, and removes duplicates
// while preserving first-occurrence order — the same list the authoring
// form builds one Enter press at a time.
func NormalizeHashtags(tags []string) []string {
	normalized := make([]string, 0, len(tags))
	seen := make(map[string]bool, len(tags))
	for _, tag := range tags {
		t := strings.TrimSpace(tag)
		if t == "" || seen[t] {
			continue
		}
		seen[t] = true
		normalized = append(normalized, t)
	}
	return normalized
}

// CreatePost handles the admin authoring submission: multipart form with
// title, category, description, repeated hashtags fields, 1-5 image files
// and a positional links field per image. Admin access is enforced by
// middleware on the route.
func CreatePost(c *gin.Context) {
	userIDStr := c.GetString("userId")
	userID, err := primitive.ObjectIDFromHex(userIDStr)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid user ID"})
		return
	}

	if err := c.Request.ParseMultipartForm(32 << 20); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to parse form data"})
		return
	}

	title := c.PostForm("title")
	category := c.PostForm("category")
	description := c.PostForm("description")
	hashtags := NormalizeHashtags(c.PostFormArray("hashtags"))
	links := c.PostFormArray("links")

	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read form files"})
		return
	}
	files := form.File["images"]

	if err := ValidateNewPost(title, category, len(files)); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	// Already-uploaded blobs are not rolled back on failure; orphans are
	// accepted at this tool's scale.
	images, err := uploadPostImages(ctx, files, links)
	if err != nil {
		log.Printf("[CreatePost] Image upload failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upload images"})
		return
	}

	now := time.Now().Unix()
	post := models.Post{
		ID:          primitive.NewObjectID(),
		Title:       strings.TrimSpace(title),
		Description: description,
		Category:    category,
		Hashtags:    hashtags,
		Images:      images,
		CreatedBy:   userID,
		Views:       0,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	_, err = database.Posts.InsertOne(ctx, post)
	if err != nil {
		log.Printf("[CreatePost] Insert failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create post"})
		return
	}

	log.Printf("[CreatePost] Post created: %s (%d images)", post.ID.Hex(), len(images))

	c.JSON(http.StatusCreated, gin.H{
		"message": "Post created successfully",
		"postId":  post.ID.Hex(),
	})
}

// GetPost returns one post and records a best-effort "view_post" entry.
func GetPost(c *gin.Context) {
	userIDStr := c.GetString("userId")
	userID, err := primitive.ObjectIDFromHex(userIDStr)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid user ID"})
		return
	}

	postID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid post ID"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var post models.Post
	err = database.Posts.FindOne(ctx, bson.M{"_id": postID}).Decode(&post)
	if err == mongo.ErrNoDocuments {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}
	if err != nil {
		log.Printf("[GetPost] Database error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch post"})
		return
	}

	recordActivityAsync(userID, models.ActionViewPost, models.ActivityLog{
		PostID:    post.ID.Hex(),
		PostTitle: post.Title,
	})

	c.JSON(http.StatusOK, post)
}

type ClickRequest struct {
	Link string `json:"link"`
}

// ClickImageLink records an outbound image-link click. Only links that are
// actually attached to one of the post's images are logged; an empty or
// unknown link is a silent no-op.
func ClickImageLink(c *gin.Context) {
	userIDStr := c.GetString("userId")
	userID, err := primitive.ObjectIDFromHex(userIDStr)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid user ID"})
		return
	}

	postID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid post ID"})
		return
	}

	var req ClickRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var post models.Post
	err = database.Posts.FindOne(ctx, bson.M{"_id": postID}).Decode(&post)
	if err == mongo.ErrNoDocuments {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}
	if err != nil {
		log.Printf("[ClickImageLink] Database error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch post"})
		return
	}

	if req.Link == "" || !PostHasImageLink(post, req.Link) {
		c.Status(http.StatusNoContent)
		return
	}

	recordActivityAsync(userID, models.ActionClickImageLink, models.ActivityLog{
		PostID:    post.ID.Hex(),
		PostTitle: post.Title,
		Link:      req.Link,
	})

	c.JSON(http.StatusOK, gin.H{"link": req.Link})
}

// PostHasImageLink reports whether any image of the post carries the given
// non-empty outbound link.
func PostHasImageLink(post models.Post, link string) bool {
	if link == "" {
		return false
	}
	for _, img := range post.Images {
		if img.Link == link {
			return true
		}
	}
	return false
}
