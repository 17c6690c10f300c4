package handlers

import (
	"context"
	"log"
	"time"

	"magazine/database"
	"magazine/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// recordActivity appends one activity log entry for the user. The error is
// returned so callers decide what to do with it; for request handlers that is
// always recordActivityAsync, which logs and drops it.
func recordActivity(ctx context.Context, entry models.ActivityLog) error {
	if entry.Timestamp == 0 {
		entry.Timestamp = time.Now().Unix()
	}
	_, err := database.ActivityLogs.InsertOne(ctx, entry)
	return err
}

// recordActivityAsync fires the write off the request path. Telemetry is
// best-effort: a failed write is logged to the server console and never
// surfaced to the user.
func recordActivityAsync(userID primitive.ObjectID, action string, entry models.ActivityLog) {
	entry.UserID = userID
	entry.Action = action
	entry.Timestamp = time.Now().Unix()

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := recordActivity(ctx, entry); err != nil {
			log.Printf("[ActivityLog] Failed to record %q: %v", action, err)
		}
	}()
}
