package service

import (
	"context"
	"testing"
	"time"

	assetserrors "assetbook/internal/assets/errors"
	"assetbook/internal/assets/validator"
	"assetbook/pkg/config"
	apperrors "assetbook/pkg/errors"
	"assetbook/pkg/logger"
	"assetbook/pkg/model"
)

// Mock repository for testing
type mockAssetRepository struct {
	createFunc       func(ctx context.Context, asset *model.Asset) error
	findByIDFunc     func(ctx context.Context, id string) (*model.Asset, error)
	findAllFunc      func(ctx context.Context) ([]*model.Asset, error)
	existsFunc       func(ctx context.Context, id string) (bool, error)
	updateFunc       func(ctx context.Context, id string, asset *model.Asset) error
	setSortOrderFunc func(ctx context.Context, id string, sortOrder int) (bool, error)
	maxSortOrderFunc func(ctx context.Context) (int, bool, error)
	deleteFunc       func(ctx context.Context, id string) error
}

func (m *mockAssetRepository) Create(ctx context.Context, asset *model.Asset) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, asset)
	}
	return nil
}

func (m *mockAssetRepository) FindByID(ctx context.Context, id string) (*model.Asset, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(ctx, id)
	}
	return nil, assetserrors.ErrNotFound
}

func (m *mockAssetRepository) FindAll(ctx context.Context) ([]*model.Asset, error) {
	if m.findAllFunc != nil {
		return m.findAllFunc(ctx)
	}
	return []*model.Asset{}, nil
}

func (m *mockAssetRepository) Exists(ctx context.Context, id string) (bool, error) {
	if m.existsFunc != nil {
		return m.existsFunc(ctx, id)
	}
	return true, nil
}

func (m *mockAssetRepository) Update(ctx context.Context, id string, asset *model.Asset) error {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, id, asset)
	}
	return nil
}

func (m *mockAssetRepository) SetSortOrder(ctx context.Context, id string, sortOrder int) (bool, error) {
	if m.setSortOrderFunc != nil {
		return m.setSortOrderFunc(ctx, id, sortOrder)
	}
	return true, nil
}

func (m *mockAssetRepository) MaxSortOrder(ctx context.Context) (int, bool, error) {
	if m.maxSortOrderFunc != nil {
		return m.maxSortOrderFunc(ctx)
	}
	return 0, false, nil
}

func (m *mockAssetRepository) Delete(ctx context.Context, id string) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	return nil
}

func newTestService(repo *mockAssetRepository) *assetService {
	log := logger.New(logger.Config{
		Level:     "error",
		Format:    logger.JSON,
		AddSource: false,
		Service:   "test",
	})
	cfg := &config.Config{
		Log:          log,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 5 * time.Second,
	}
	return &assetService{
		repo:      repo,
		validator: validator.NewAssetValidator(log),
		cfg:       cfg,
	}
}

func validAsset() *model.Asset {
	return &model.Asset{
		Name:        "Konferenzraum A",
		Category:    "Room",
		Description: "12 Plätze",
		Color:       "#3b82f6",
	}
}

func TestCreate_AppendsToSortOrder(t *testing.T) {
	tests := []struct {
		name          string
		maxOrder      int
		found         bool
		wantSortOrder int
	}{
		{"empty catalog starts at zero", 0, false, 0},
		{"appends after current maximum", 7, true, 8},
		{"single existing asset", 0, true, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var created *model.Asset
			repo := &mockAssetRepository{
				maxSortOrderFunc: func(ctx context.Context) (int, bool, error) {
					return tt.maxOrder, tt.found, nil
				},
				createFunc: func(ctx context.Context, asset *model.Asset) error {
					asset.ID = "64f1b2c3d4e5f6a7b8c9d0e1"
					created = asset
					return nil
				},
			}
			svc := newTestService(repo)

			if err := svc.Create(context.Background(), validAsset()); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if created == nil {
				t.Fatal("expected asset to be persisted")
			}
			if created.SortOrder != tt.wantSortOrder {
				t.Errorf("expected sort order %d, got %d", tt.wantSortOrder, created.SortOrder)
			}
		})
	}
}

func TestCreate_ValidationFailure(t *testing.T) {
	repo := &mockAssetRepository{
		createFunc: func(ctx context.Context, asset *model.Asset) error {
			t.Error("invalid asset must not reach the repository")
			return nil
		},
	}
	svc := newTestService(repo)

	tests := []struct {
		name   string
		modify func(a *model.Asset)
	}{
		{"missing name", func(a *model.Asset) { a.Name = "" }},
		{"missing category", func(a *model.Asset) { a.Category = "" }},
		{"bad color", func(a *model.Asset) { a.Color = "blue" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			asset := validAsset()
			tt.modify(asset)

			err := svc.Create(context.Background(), asset)
			if err == nil {
				t.Fatal("expected validation error, got nil")
			}
			appErr := apperrors.AsAppError(err)
			if appErr == nil || appErr.Code != apperrors.CodeValidation {
				t.Fatalf("expected %s, got %v", apperrors.CodeValidation, err)
			}
		})
	}
}

func TestUpdate_MergesOnlyProvidedFields(t *testing.T) {
	existing := validAsset()
	existing.ID = "64f1b2c3d4e5f6a7b8c9d0e1"
	existing.Icon = "projector"
	existing.SortOrder = 3

	var updated *model.Asset
	repo := &mockAssetRepository{
		findByIDFunc: func(ctx context.Context, id string) (*model.Asset, error) {
			copied := *existing
			return &copied, nil
		},
		updateFunc: func(ctx context.Context, id string, asset *model.Asset) error {
			updated = asset
			return nil
		},
	}
	svc := newTestService(repo)

	newName := "Konferenzraum B"
	outOfService := true
	result, err := svc.Update(context.Background(), existing.ID, &model.AssetUpdate{
		Name:           &newName,
		IsOutOfService: &outOfService,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated == nil {
		t.Fatal("expected update to be persisted")
	}

	if result.Name != newName {
		t.Errorf("expected name %q, got %q", newName, result.Name)
	}
	if !result.IsOutOfService {
		t.Error("expected asset to be out of service")
	}
	// Untouched fields survive the merge.
	if result.Category != existing.Category {
		t.Errorf("expected category %q, got %q", existing.Category, result.Category)
	}
	if result.Icon != existing.Icon {
		t.Errorf("expected icon %q, got %q", existing.Icon, result.Icon)
	}
	if result.SortOrder != existing.SortOrder {
		t.Errorf("expected sort order %d, got %d", existing.SortOrder, result.SortOrder)
	}
}

func TestUpdate_ExplicitClearVersusOmitted(t *testing.T) {
	existing := validAsset()
	existing.ID = "64f1b2c3d4e5f6a7b8c9d0e1"

	repo := &mockAssetRepository{
		findByIDFunc: func(ctx context.Context, id string) (*model.Asset, error) {
			copied := *existing
			return &copied, nil
		},
	}
	svc := newTestService(repo)

	empty := ""
	result, err := svc.Update(context.Background(), existing.ID, &model.AssetUpdate{
		Description: &empty,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Description != "" {
		t.Errorf("expected description cleared, got %q", result.Description)
	}
	if result.Name != existing.Name {
		t.Errorf("omitted name must survive, got %q", result.Name)
	}
}

func TestUpdate_UnknownAsset(t *testing.T) {
	repo := &mockAssetRepository{
		findByIDFunc: func(ctx context.Context, id string) (*model.Asset, error) {
			return nil, assetserrors.ErrNotFound
		},
	}
	svc := newTestService(repo)

	name := "Neuer Name"
	_, err := svc.Update(context.Background(), "64f1b2c3d4e5f6a7b8c9d0e1", &model.AssetUpdate{Name: &name})
	if err == nil {
		t.Fatal("expected not found error, got nil")
	}
	appErr := apperrors.AsAppError(err)
	if appErr == nil || appErr.Code != apperrors.CodeNotFound {
		t.Fatalf("expected %s, got %v", apperrors.CodeNotFound, err)
	}
}

func TestReorder_SkipsUnknownIDs(t *testing.T) {
	applied := map[string]int{}
	repo := &mockAssetRepository{
		setSortOrderFunc: func(ctx context.Context, id string, sortOrder int) (bool, error) {
			if id == "64f1b2c3d4e5f6a7b8c9d0ee" {
				return false, nil
			}
			applied[id] = sortOrder
			return true, nil
		},
	}
	svc := newTestService(repo)

	entries := []model.ReorderEntry{
		{ID: "64f1b2c3d4e5f6a7b8c9d0e1", SortOrder: 2},
		{ID: "64f1b2c3d4e5f6a7b8c9d0ee", SortOrder: 0}, // unknown
		{ID: "64f1b2c3d4e5f6a7b8c9d0e2", SortOrder: 1},
	}

	if err := svc.Reorder(context.Background(), entries); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(applied) != 2 {
		t.Fatalf("expected 2 applied entries, got %d", len(applied))
	}
	if applied["64f1b2c3d4e5f6a7b8c9d0e1"] != 2 || applied["64f1b2c3d4e5f6a7b8c9d0e2"] != 1 {
		t.Errorf("unexpected applied orders: %v", applied)
	}
}

func TestReorder_RejectsMalformedEntries(t *testing.T) {
	repo := &mockAssetRepository{
		setSortOrderFunc: func(ctx context.Context, id string, sortOrder int) (bool, error) {
			t.Error("invalid batch must not reach the repository")
			return false, nil
		},
	}
	svc := newTestService(repo)

	err := svc.Reorder(context.Background(), []model.ReorderEntry{
		{ID: "", SortOrder: 0},
	})
	if err == nil {
		t.Fatal("expected validation error, got nil")
	}
	appErr := apperrors.AsAppError(err)
	if appErr == nil || appErr.Code != apperrors.CodeValidation {
		t.Fatalf("expected %s, got %v", apperrors.CodeValidation, err)
	}
}

func TestDelete_StatusMapping(t *testing.T) {
	tests := []struct {
		name     string
		repoErr  error
		wantCode string
	}{
		{"deleted", nil, ""},
		{"not found", assetserrors.ErrNotFound, apperrors.CodeNotFound},
		{"invalid id", assetserrors.ErrInvalidID, apperrors.CodeInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockAssetRepository{
				deleteFunc: func(ctx context.Context, id string) error {
					return tt.repoErr
				},
			}
			svc := newTestService(repo)

			err := svc.Delete(context.Background(), "64f1b2c3d4e5f6a7b8c9d0e1")
			if tt.wantCode == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			appErr := apperrors.AsAppError(err)
			if appErr == nil || appErr.Code != tt.wantCode {
				t.Fatalf("expected %s, got %v", tt.wantCode, err)
			}
		})
	}
}
