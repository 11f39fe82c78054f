package validator

import (
	"strings"
	"testing"

	"assetbook/pkg/logger"
	"assetbook/pkg/model"
)

func testLogger() *logger.Logger {
	return logger.New(logger.Config{
		Level:     "error",
		Format:    logger.JSON,
		AddSource: false,
		Service:   "test",
	})
}

func TestValidate_Asset(t *testing.T) {
	v := NewAssetValidator(testLogger())

	tests := []struct {
		name    string
		asset   model.Asset
		wantMsg string
	}{
		{
			name:  "valid asset",
			asset: model.Asset{Name: "Konferenzraum A", Category: "Room", Color: "#3b82f6"},
		},
		{
			name:  "color optional",
			asset: model.Asset{Name: "Firmenwagen", Category: "Vehicle"},
		},
		{
			name:    "missing name",
			asset:   model.Asset{Category: "Room"},
			wantMsg: "Name is required",
		},
		{
			name:    "missing category",
			asset:   model.Asset{Name: "Konferenzraum A"},
			wantMsg: "Category is required",
		},
		{
			name:    "bad color",
			asset:   model.Asset{Name: "Konferenzraum A", Category: "Room", Color: "blue"},
			wantMsg: "Color must be a hex color",
		},
		{
			name:    "name too long",
			asset:   model.Asset{Name: strings.Repeat("x", 101), Category: "Room"},
			wantMsg: "Name must be at most 100",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(&tt.asset)
			if tt.wantMsg == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatal("expected validation error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("expected error containing %q, got %q", tt.wantMsg, err.Error())
			}
		})
	}
}

func TestValidateUpdate_PointerFieldsOptional(t *testing.T) {
	v := NewAssetValidator(testLogger())

	// An all-nil update is valid; partial updates only validate what is set.
	if err := v.ValidateUpdate(&model.AssetUpdate{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	bad := "blue"
	err := v.ValidateUpdate(&model.AssetUpdate{Color: &bad})
	if err == nil {
		t.Fatal("expected validation error, got nil")
	}
	if !strings.Contains(err.Error(), "hex color") {
		t.Errorf("expected hex color message, got %q", err.Error())
	}
}

func TestValidateReorder(t *testing.T) {
	v := NewAssetValidator(testLogger())

	tests := []struct {
		name    string
		entries []model.ReorderEntry
		wantMsg string
	}{
		{
			name: "valid batch",
			entries: []model.ReorderEntry{
				{ID: "64f1b2c3d4e5f6a7b8c9d0e1", SortOrder: 1},
				{ID: "64f1b2c3d4e5f6a7b8c9d0e2", SortOrder: 0},
			},
		},
		{
			name:    "empty batch",
			entries: nil,
			wantMsg: "reorder requires at least one entry",
		},
		{
			name: "entry error carries its index",
			entries: []model.ReorderEntry{
				{ID: "64f1b2c3d4e5f6a7b8c9d0e1", SortOrder: 1},
				{ID: "nope", SortOrder: 2},
			},
			wantMsg: "entries[1].ID",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateReorder(tt.entries)
			if tt.wantMsg == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatal("expected validation error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("expected error containing %q, got %q", tt.wantMsg, err.Error())
			}
		})
	}
}
