package models

import "go.mongodb.org/mongo-driver/bson/primitive"

type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email        string             `bson:"email" json:"email"`
	AuthProvider string             `bson:"authProvider" json:"authProvider"`
	GoogleID     *string            `bson:"googleId,omitempty" json:"-"`

	DisplayName string `bson:"displayName" json:"displayName"`
	PhotoURL    string `bson:"photoUrl" json:"photoUrl"`

	// Granted out-of-band only (tools/grantadmin), never through the API.
	IsAdmin bool `bson:"isAdmin" json:"isAdmin"`

	CreatedAt int64 `bson:"createdAt" json:"createdAt"`
	LastLogin int64 `bson:"lastLogin" json:"lastLogin"`
}
