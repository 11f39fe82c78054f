package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"assetbook/pkg/config"
	"assetbook/pkg/model"
)

const (
	CollectionName = "display_config"

	// SingletonID keys the one logical settings document.
	SingletonID = "display_config"
)

var ErrNotFound = errors.New("display config not found")

type ConfigRepository interface {
	Find(ctx context.Context) (*model.DisplayConfig, error)
	Upsert(ctx context.Context, settings *model.DisplayConfig) error
}

type mongoConfigRepository struct {
	cfg        *config.Config
	collection *mongo.Collection
}

func NewMongoConfigRepository(cfg *config.Config) ConfigRepository {
	db := cfg.Client.Mongo.Database(cfg.MongoDatabaseName)
	return &mongoConfigRepository{
		cfg:        cfg,
		collection: db.Collection(CollectionName),
	}
}

func (r *mongoConfigRepository) Find(ctx context.Context) (*model.DisplayConfig, error) {
	ctx, cancel := context.WithTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	var settings model.DisplayConfig
	err := r.collection.FindOne(ctx, bson.M{"_id": SingletonID}).Decode(&settings)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to find display config: %w", err)
	}

	return &settings, nil
}

// Upsert writes the whole settings document. Racing writers both target
// the singleton _id, so the last committed write wins and no second
// document can appear.
func (r *mongoConfigRepository) Upsert(ctx context.Context, settings *model.DisplayConfig) error {
	ctx, cancel := context.WithTimeout(ctx, r.cfg.WriteTimeout)
	defer cancel()

	settings.ID = SingletonID

	opts := options.Replace().SetUpsert(true)
	_, err := r.collection.ReplaceOne(ctx, bson.M{"_id": SingletonID}, settings, opts)
	if err != nil {
		return fmt.Errorf("failed to upsert display config: %w", err)
	}

	return nil
}
