package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"assetbook/internal/migrations/mongo/validators"
)

var (
	AssetsIndexes = []mongo.IndexModel{
		{Keys: bson.D{{Key: "sort_order", Value: 1}}},
		{Keys: bson.D{{Key: "category", Value: 1}}},
	}

	BookingsIndexes = []mongo.IndexModel{
		{Keys: bson.D{
			{Key: "asset_id", Value: 1},
			{Key: "start_time", Value: 1},
			{Key: "end_time", Value: 1},
		}},
		{Keys: bson.D{
			{Key: "start_time", Value: 1},
			{Key: "_id", Value: 1},
		}},
	}

	// Mongo's TTL monitor reaps expired locks so a crashed process can
	// never wedge an asset permanently.
	BookingLocksIndexes = []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "expires_at", Value: 1}},
			Options: options.Index().SetExpireAfterSeconds(0),
		},
	}
)

func RunMigration(ctx context.Context, client *mongo.Client, dbName string) error {
	db := client.Database(dbName)
	fmt.Printf("🚀 Running assetbook Mongo migrations on database: %s\n", dbName)

	collections := map[string]struct {
		Indexes   []mongo.IndexModel
		Validator bson.M
	}{
		"assets": {
			Indexes:   AssetsIndexes,
			Validator: validators.AssetValidator,
		},
		"bookings": {
			Indexes:   BookingsIndexes,
			Validator: validators.BookingValidator,
		},
		"display_config": {
			Validator: validators.DisplayConfigValidator,
		},
		"booking_locks": {
			Indexes: BookingLocksIndexes,
		},
	}

	for name, def := range collections {
		if err := ensureCollection(ctx, db, name, def.Validator); err != nil {
			return fmt.Errorf("failed to ensure collection %s: %w", name, err)
		}
		if len(def.Indexes) == 0 {
			continue
		}
		if err := ensureIndexes(ctx, db, name, def.Indexes); err != nil {
			return fmt.Errorf("failed to ensure indexes for %s: %w", name, err)
		}
	}

	if err := seedDefaults(ctx, db); err != nil {
		return fmt.Errorf("failed to seed defaults: %w", err)
	}

	fmt.Println("✅ All migrations applied successfully.")
	return nil
}

func ensureCollection(ctx context.Context, db *mongo.Database, name string, validator bson.M) error {
	existing, err := db.ListCollectionNames(ctx, bson.D{{Key: "name", Value: name}})
	if err != nil {
		return err
	}

	if len(existing) == 0 {
		fmt.Printf("🆕 Creating collection: %s\n", name)
		opts := options.CreateCollection()
		if validator != nil {
			opts = opts.SetValidator(validator)
		}
		if err := db.CreateCollection(ctx, name, opts); err != nil {
			return fmt.Errorf("failed creating %s: %w", name, err)
		}
	} else if validator != nil {
		fmt.Printf("ℹ️ Collection %s already exists — updating validator if needed\n", name)
		command := bson.D{
			{Key: "collMod", Value: name},
			{Key: "validator", Value: validator},
		}
		if err := db.RunCommand(ctx, command).Err(); err != nil {
			fmt.Printf("⚠️ Warning: failed updating validator for %s: %v\n", name, err)
		}
	}

	return nil
}

func ensureIndexes(ctx context.Context, db *mongo.Database, name string, models []mongo.IndexModel) error {
	coll := db.Collection(name)
	_, err := coll.Indexes().CreateMany(ctx, models)
	if err != nil {
		return err
	}
	fmt.Printf("📚 Ensured indexes for %s\n", name)
	return nil
}

// seedDefaults is additive only: it fills empty collections with the demo
// catalog and the default display settings, and never touches existing data.
func seedDefaults(ctx context.Context, db *mongo.Database) error {
	now := time.Now().UTC().Truncate(time.Millisecond)

	assets := db.Collection("assets")
	count, err := assets.CountDocuments(ctx, bson.M{})
	if err != nil {
		return fmt.Errorf("failed counting assets: %w", err)
	}
	if count == 0 {
		fmt.Println("🌱 Seeding demo assets")
		demo := []interface{}{
			bson.M{
				"name":              "Konferenzraum A (Galaxy)",
				"category":          "Room",
				"description":       "Großer Meetingraum, 12 Plätze.",
				"color":             "#3b82f6",
				"icon":              "",
				"is_out_of_service": false,
				"sort_order":        0,
				"created_at":        now,
			},
			bson.M{
				"name":              "Konferenzraum B (Nebula)",
				"category":          "Room",
				"description":       "Kleiner Raum, 4 Plätze.",
				"color":             "#8b5cf6",
				"icon":              "",
				"is_out_of_service": false,
				"sort_order":        1,
				"created_at":        now,
			},
			bson.M{
				"name":              "Firmenwagen",
				"category":          "Vehicle",
				"description":       "Tesla Model 3",
				"color":             "#ef4444",
				"icon":              "",
				"is_out_of_service": true,
				"sort_order":        2,
				"created_at":        now,
			},
		}
		if _, err := assets.InsertMany(ctx, demo); err != nil {
			return fmt.Errorf("failed seeding assets: %w", err)
		}
	}

	settings := db.Collection("display_config")
	count, err = settings.CountDocuments(ctx, bson.M{})
	if err != nil {
		return fmt.Errorf("failed counting display config: %w", err)
	}
	if count == 0 {
		fmt.Println("🌱 Seeding default display config")
		doc := bson.M{
			"_id":               "display_config",
			"header_text":       "Buchungssystem",
			"category_icons":    bson.M{},
			"placeholder_title": "",
			"placeholder_name":  "",
			"placeholder_email": "",
		}
		if _, err := settings.InsertOne(ctx, doc); err != nil {
			return fmt.Errorf("failed seeding display config: %w", err)
		}
	}

	return nil
}
