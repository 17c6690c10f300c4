// grantadmin flips the isAdmin flag on a user profile. The flag is never
// settable through the API, so operators run this directly against MongoDB:
//
//	go run ./tools/grantadmin -email someone@example.com
//	go run ./tools/grantadmin -email someone@example.com -revoke
package main

import (
	"context"
	"flag"
	"log"
	"time"

	"magazine/database"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/bson"
)

func main() {
	email := flag.String("email", "", "email of the profile to update")
	revoke := flag.Bool("revoke", false, "revoke instead of grant")
	flag.Parse()

	if *email == "" {
		log.Fatal("❌ -email is required")
	}

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading environment directly")
	}

	if err := database.ConnectMongo(); err != nil {
		log.Fatal("❌ Failed to connect to MongoDB:", err)
	}
	defer database.DisconnectMongo()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, err := database.Users.UpdateOne(ctx,
		bson.M{"email": *email},
		bson.M{"$set": bson.M{"isAdmin": !*revoke}},
	)
	if err != nil {
		log.Fatal("❌ Update failed:", err)
	}
	if result.MatchedCount == 0 {
		log.Fatalf("❌ No profile found for %s", *email)
	}

	if *revoke {
		log.Printf("✅ Admin revoked for %s", *email)
	} else {
		log.Printf("✅ Admin granted for %s", *email)
	}
}
