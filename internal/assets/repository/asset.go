package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	assetserrors "assetbook/internal/assets/errors"
	"assetbook/pkg/config"
	"assetbook/pkg/model"
)

const (
	CollectionName = "assets"
)

type AssetRepository interface {
	Create(ctx context.Context, asset *model.Asset) error
	FindByID(ctx context.Context, id string) (*model.Asset, error)
	FindAll(ctx context.Context) ([]*model.Asset, error)
	Exists(ctx context.Context, id string) (bool, error)
	Update(ctx context.Context, id string, asset *model.Asset) error
	SetSortOrder(ctx context.Context, id string, sortOrder int) (bool, error)
	MaxSortOrder(ctx context.Context) (int, bool, error)
	Delete(ctx context.Context, id string) error
}

type mongoAssetRepository struct {
	cfg        *config.Config
	collection *mongo.Collection
}

func NewMongoAssetRepository(cfg *config.Config) AssetRepository {
	db := cfg.Client.Mongo.Database(cfg.MongoDatabaseName)
	return &mongoAssetRepository{
		cfg:        cfg,
		collection: db.Collection(CollectionName),
	}
}

func (r *mongoAssetRepository) Create(ctx context.Context, asset *model.Asset) error {
	ctx, cancel := context.WithTimeout(ctx, r.cfg.WriteTimeout)
	defer cancel()

	asset.CreatedAt = time.Now().UTC().Truncate(time.Millisecond)
	result, err := r.collection.InsertOne(ctx, asset)
	if err != nil {
		return fmt.Errorf("failed to create asset: %w", err)
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		asset.ID = oid.Hex()
	}
	return nil
}

func (r *mongoAssetRepository) FindByID(ctx context.Context, id string) (*model.Asset, error) {
	ctx, cancel := context.WithTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", assetserrors.ErrInvalidID, id)
	}

	var asset model.Asset
	err = r.collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&asset)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, assetserrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find asset: %w", err)
	}

	return &asset, nil
}

// FindAll returns every asset ordered by sort_order ascending with ties
// broken by _id, which is the catalog's display order.
func (r *mongoAssetRepository) FindAll(ctx context.Context) ([]*model.Asset, error) {
	ctx, cancel := context.WithTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	opts := options.Find().
		SetSort(bson.D{{Key: "sort_order", Value: 1}, {Key: "_id", Value: 1}})

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to find assets: %w", err)
	}
	defer cursor.Close(ctx)

	var assets []*model.Asset
	if err = cursor.All(ctx, &assets); err != nil {
		return nil, fmt.Errorf("failed to decode assets: %w", err)
	}

	return assets, nil
}

func (r *mongoAssetRepository) Exists(ctx context.Context, id string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return false, fmt.Errorf("%w: %s", assetserrors.ErrInvalidID, id)
	}

	count, err := r.collection.CountDocuments(ctx, bson.M{"_id": objectID}, options.Count().SetLimit(1))
	if err != nil {
		return false, fmt.Errorf("failed to check asset existence: %w", err)
	}

	return count > 0, nil
}

func (r *mongoAssetRepository) Update(ctx context.Context, id string, asset *model.Asset) error {
	ctx, cancel := context.WithTimeout(ctx, r.cfg.WriteTimeout)
	defer cancel()

	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("%w: %s", assetserrors.ErrInvalidID, id)
	}

	update := bson.M{
		"$set": bson.M{
			"name":              asset.Name,
			"category":          asset.Category,
			"description":       asset.Description,
			"color":             asset.Color,
			"icon":              asset.Icon,
			"is_out_of_service": asset.IsOutOfService,
			"sort_order":        asset.SortOrder,
		},
	}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": objectID}, update)
	if err != nil {
		return fmt.Errorf("failed to update asset: %w", err)
	}

	if result.MatchedCount == 0 {
		return assetserrors.ErrNotFound
	}

	return nil
}

// SetSortOrder applies one reorder entry. A false return means the id
// matched no asset; the caller decides whether that matters.
func (r *mongoAssetRepository) SetSortOrder(ctx context.Context, id string, sortOrder int) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, r.cfg.WriteTimeout)
	defer cancel()

	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return false, fmt.Errorf("%w: %s", assetserrors.ErrInvalidID, id)
	}

	result, err := r.collection.UpdateOne(ctx,
		bson.M{"_id": objectID},
		bson.M{"$set": bson.M{"sort_order": sortOrder}},
	)
	if err != nil {
		return false, fmt.Errorf("failed to set sort order: %w", err)
	}

	return result.MatchedCount > 0, nil
}

// MaxSortOrder returns the highest sort_order in the catalog. The bool is
// false when the catalog is empty.
func (r *mongoAssetRepository) MaxSortOrder(ctx context.Context) (int, bool, error) {
	ctx, cancel := context.WithTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	opts := options.FindOne().SetSort(bson.D{{Key: "sort_order", Value: -1}})

	var asset model.Asset
	err := r.collection.FindOne(ctx, bson.M{}, opts).Decode(&asset)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("failed to find max sort order: %w", err)
	}

	return asset.SortOrder, true, nil
}

func (r *mongoAssetRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, r.cfg.WriteTimeout)
	defer cancel()

	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("%w: %s", assetserrors.ErrInvalidID, id)
	}

	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return fmt.Errorf("failed to delete asset: %w", err)
	}

	if result.DeletedCount == 0 {
		return assetserrors.ErrNotFound
	}

	return nil
}
