package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Activity log actions. Entries are append-only telemetry; writes are
// best-effort and never block the request that triggered them.
const (
	ActionSearch         = "search"
	ActionViewPost       = "view_post"
	ActionClickImageLink = "click_image_link"
)

type ActivityLog struct {
	ID     primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID primitive.ObjectID `bson:"userId" json:"userId"`
	Action string             `bson:"action" json:"action"`

	// Context fields, empty when not applicable to the action.
	Query     string `bson:"query,omitempty" json:"query,omitempty"`
	PostID    string `bson:"postId,omitempty" json:"postId,omitempty"`
	PostTitle string `bson:"postTitle,omitempty" json:"postTitle,omitempty"`
	Link      string `bson:"link,omitempty" json:"link,omitempty"`

	Timestamp int64 `bson:"timestamp" json:"timestamp"`
}
