package service

import (
	"context"
	"errors"

	assetserrors "assetbook/internal/assets/errors"
	"assetbook/internal/assets/repository"
	"assetbook/internal/assets/validator"
	"assetbook/pkg/config"
	apperrors "assetbook/pkg/errors"
	"assetbook/pkg/model"
	"assetbook/pkg/sanitizer"
)

type AssetService interface {
	Create(ctx context.Context, asset *model.Asset) error
	GetByID(ctx context.Context, id string) (*model.Asset, error)
	GetAll(ctx context.Context) ([]*model.Asset, error)
	Update(ctx context.Context, id string, updates *model.AssetUpdate) (*model.Asset, error)
	Reorder(ctx context.Context, entries []model.ReorderEntry) error
	Delete(ctx context.Context, id string) error
}

type assetService struct {
	repo      repository.AssetRepository
	validator *validator.AssetValidator
	cfg       *config.Config
}

func NewAssetService(
	repo repository.AssetRepository,
	validator *validator.AssetValidator,
	cfg *config.Config,
) AssetService {
	return &assetService{
		repo:      repo,
		validator: validator,
		cfg:       cfg,
	}
}

func (s *assetService) Create(ctx context.Context, asset *model.Asset) error {
	s.sanitize(asset)
	if err := s.validator.Validate(asset); err != nil {
		s.cfg.Log.Warn("Asset validation failed", "error", err)
		return apperrors.Validation("Asset validation failed", map[string]any{"error": err.Error()})
	}

	// New assets append at the end of display order.
	maxOrder, found, err := s.repo.MaxSortOrder(ctx)
	if err != nil {
		return apperrors.Internal("Failed to determine sort order", err)
	}
	if found {
		asset.SortOrder = maxOrder + 1
	} else {
		asset.SortOrder = 0
	}

	if err := s.repo.Create(ctx, asset); err != nil {
		s.cfg.Log.Error("Failed to create asset", "error", err)
		return apperrors.Internal("Failed to create asset", err)
	}

	s.cfg.Log.Info("Asset created successfully",
		"id", asset.ID,
		"name", asset.Name,
		"category", asset.Category,
		"sort_order", asset.SortOrder,
	)
	return nil
}

func (s *assetService) GetByID(ctx context.Context, id string) (*model.Asset, error) {
	if id == "" {
		return nil, apperrors.InvalidInput("Asset ID cannot be empty")
	}

	asset, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, assetserrors.ErrNotFound) {
			return nil, apperrors.NotFoundWithID("Asset", id)
		}
		if errors.Is(err, assetserrors.ErrInvalidID) {
			return nil, apperrors.InvalidInput("Invalid asset ID format")
		}
		return nil, apperrors.Internal("Failed to retrieve asset", err)
	}

	return asset, nil
}

func (s *assetService) GetAll(ctx context.Context) ([]*model.Asset, error) {
	assets, err := s.repo.FindAll(ctx)
	if err != nil {
		s.cfg.Log.Error("Failed to list assets", "error", err)
		return nil, apperrors.Internal("Failed to retrieve assets", err)
	}
	return assets, nil
}

func (s *assetService) Update(ctx context.Context, id string, updates *model.AssetUpdate) (*model.Asset, error) {
	if id == "" {
		return nil, apperrors.InvalidInput("Asset ID cannot be empty")
	}

	if err := s.validator.ValidateUpdate(updates); err != nil {
		s.cfg.Log.Warn("Asset update validation failed", "id", id, "error", err)
		return nil, apperrors.Validation("Invalid update input", map[string]any{"error": err.Error()})
	}

	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, assetserrors.ErrNotFound) {
			return nil, apperrors.NotFoundWithID("Asset", id)
		}
		if errors.Is(err, assetserrors.ErrInvalidID) {
			return nil, apperrors.InvalidInput("Invalid asset ID format")
		}
		return nil, apperrors.Internal("Failed to check asset existence", err)
	}

	merged := s.mergeAssetUpdates(existing, updates)
	s.sanitize(merged)
	if err := s.validator.Validate(merged); err != nil {
		s.cfg.Log.Warn("Asset validation failed", "id", id, "error", err)
		return nil, apperrors.Validation("Asset validation failed", map[string]any{"error": err.Error()})
	}

	if err := s.repo.Update(ctx, id, merged); err != nil {
		if errors.Is(err, assetserrors.ErrNotFound) {
			return nil, apperrors.NotFoundWithID("Asset", id)
		}
		s.cfg.Log.Error("Failed to update asset", "id", id, "error", err)
		return nil, apperrors.Internal("Failed to update asset", err)
	}

	s.cfg.Log.Info("Asset updated successfully", "id", id)
	return merged, nil
}

// Reorder bulk-applies sort orders. Entries referencing unknown asset ids
// are skipped rather than failing the batch: ordering is cosmetic, and a
// stale id in the caller's list must not abort the rest.
func (s *assetService) Reorder(ctx context.Context, entries []model.ReorderEntry) error {
	if err := s.validator.ValidateReorder(entries); err != nil {
		s.cfg.Log.Warn("Reorder validation failed", "error", err)
		return apperrors.Validation("Invalid reorder input", map[string]any{"error": err.Error()})
	}

	skipped := 0
	for _, entry := range entries {
		matched, err := s.repo.SetSortOrder(ctx, entry.ID, entry.SortOrder)
		if err != nil {
			if errors.Is(err, assetserrors.ErrInvalidID) {
				skipped++
				continue
			}
			s.cfg.Log.Error("Failed to apply reorder entry", "id", entry.ID, "error", err)
			return apperrors.Internal("Failed to reorder assets", err)
		}
		if !matched {
			skipped++
		}
	}

	s.cfg.Log.Info("Assets reordered",
		"applied", len(entries)-skipped,
		"skipped", skipped,
	)
	return nil
}

func (s *assetService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return apperrors.InvalidInput("Asset ID cannot be empty")
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, assetserrors.ErrNotFound) {
			return apperrors.NotFoundWithID("Asset", id)
		}
		if errors.Is(err, assetserrors.ErrInvalidID) {
			return apperrors.InvalidInput("Invalid asset ID format")
		}
		s.cfg.Log.Error("Failed to delete asset", "id", id, "error", err)
		return apperrors.Internal("Failed to delete asset", err)
	}

	s.cfg.Log.Info("Asset deleted successfully", "id", id)
	return nil
}

// --- Helpers ---

func (s *assetService) sanitize(a *model.Asset) {
	a.Name = sanitizer.NormalizeName(a.Name)
	a.Category = sanitizer.TrimAndNormalize(a.Category)
	a.Description = sanitizer.TrimAndNormalize(a.Description)
	a.Color = sanitizer.NormalizeHexColor(a.Color)
}

func (s *assetService) mergeAssetUpdates(existing *model.Asset, updates *model.AssetUpdate) *model.Asset {
	merged := *existing

	if updates.Name != nil {
		merged.Name = *updates.Name
	}
	if updates.Category != nil {
		merged.Category = *updates.Category
	}
	if updates.Description != nil {
		merged.Description = *updates.Description
	}
	if updates.Color != nil {
		merged.Color = *updates.Color
	}
	if updates.Icon != nil {
		merged.Icon = *updates.Icon
	}
	if updates.IsOutOfService != nil {
		merged.IsOutOfService = *updates.IsOutOfService
	}
	if updates.SortOrder != nil {
		merged.SortOrder = *updates.SortOrder
	}

	return &merged
}
