package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Image is an ordered image reference embedded in a Post. Link is an
// optional outbound URL opened when the image is clicked.
type Image struct {
	URL   string `bson:"url" json:"url"`
	Link  string `bson:"link" json:"link"`
	Order int    `bson:"order" json:"order"`
}

type Post struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description" json:"description"`
	Category    string             `bson:"category" json:"category"`
	Hashtags    []string           `bson:"hashtags" json:"hashtags"`
	Images      []Image            `bson:"images" json:"images"`
	CreatedBy   primitive.ObjectID `bson:"createdBy" json:"createdBy"`
	Views       int64              `bson:"views" json:"views"`
	CreatedAt   int64              `bson:"createdAt" json:"createdAt"`
	UpdatedAt   int64              `bson:"updatedAt" json:"updatedAt"`
}

// A post carries between 1 and 5 images.
const (
	MinPostImages = 1
	MaxPostImages = 5
)

// Categories is the closed set a post's category must belong to.
var Categories = []string{
	"lifestyle",
	"food",
	"culture",
	"travel",
	"fashion",
	"event",
}

func IsValidCategory(category string) bool {
	for _, c := range Categories {
		if c == category {
			return true
		}
	}
	return false
}
