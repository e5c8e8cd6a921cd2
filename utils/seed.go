package utils

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/princinho/resalebackend/models"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// SeedAdminUser makes sure email exists with the admin role. Nothing is
// written when email is empty.
func SeedAdminUser(ctx context.Context, usersCol *mongo.Collection, email string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return nil
	}

	filter := bson.M{"email": email}
	update := bson.M{
		"$set": bson.M{"role": models.RoleAdmin},
		"$setOnInsert": bson.M{
			"email":     email,
			"createdAt": time.Now().UTC(),
		},
	}
	res, err := usersCol.UpdateOne(ctx, filter, update, options.UpdateOne().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("seed admin upsert failed: %w", err)
	}

	if res.UpsertedCount == 1 {
		log.Println("Admin user seeded:", email)
	} else {
		log.Println("Admin user already exists:", email)
	}
	return nil
}

// SeedBrands inserts any brand of names that is not in the collection yet,
// keyed by slug.
func SeedBrands(ctx context.Context, brandsCol *mongo.Collection, names []string) error {
	seeded := 0
	for _, name := range names {
		slug := GenerateSlug(name)
		if slug == "" {
			continue
		}
		res, err := brandsCol.UpdateOne(ctx,
			bson.M{"slug": slug},
			bson.M{"$setOnInsert": bson.M{"name": strings.TrimSpace(name), "slug": slug}},
			options.UpdateOne().SetUpsert(true),
		)
		if err != nil {
			return fmt.Errorf("seed brand %q: %w", name, err)
		}
		seeded += int(res.UpsertedCount)
	}
	if seeded > 0 {
		log.Printf("Seeded %d brands", seeded)
	}
	return nil
}
