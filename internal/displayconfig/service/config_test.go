package service

import (
	"context"
	"testing"

	"assetbook/internal/displayconfig/repository"
	"assetbook/pkg/config"
	"assetbook/pkg/logger"
	"assetbook/pkg/model"
)

// Mock repository for testing
type mockConfigRepository struct {
	findFunc   func(ctx context.Context) (*model.DisplayConfig, error)
	upsertFunc func(ctx context.Context, settings *model.DisplayConfig) error
}

func (m *mockConfigRepository) Find(ctx context.Context) (*model.DisplayConfig, error) {
	if m.findFunc != nil {
		return m.findFunc(ctx)
	}
	return nil, repository.ErrNotFound
}

func (m *mockConfigRepository) Upsert(ctx context.Context, settings *model.DisplayConfig) error {
	if m.upsertFunc != nil {
		return m.upsertFunc(ctx, settings)
	}
	return nil
}

func newTestService(repo repository.ConfigRepository) ConfigService {
	log := logger.New(logger.Config{
		Level:     "error",
		Format:    logger.JSON,
		AddSource: false,
		Service:   "test",
	})
	return NewConfigService(repo, &config.Config{
		Log:               log,
		DefaultHeaderText: "Buchungssystem",
	})
}

func TestGet_MaterializesDefaultsOnce(t *testing.T) {
	// Start with an empty store; the first Get creates the defaults and
	// later Gets read what was stored.
	var stored *model.DisplayConfig
	repo := &mockConfigRepository{
		findFunc: func(ctx context.Context) (*model.DisplayConfig, error) {
			if stored == nil {
				return nil, repository.ErrNotFound
			}
			copied := *stored
			return &copied, nil
		},
		upsertFunc: func(ctx context.Context, settings *model.DisplayConfig) error {
			copied := *settings
			stored = &copied
			return nil
		},
	}
	svc := newTestService(repo)

	settings, err := svc.Get(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if settings.HeaderText != "Buchungssystem" {
		t.Errorf("expected default header text, got %q", settings.HeaderText)
	}
	if settings.CategoryIcons == nil {
		t.Error("expected an empty icon map, got nil")
	}
	if stored == nil {
		t.Fatal("expected defaults to be persisted")
	}

	// Second access reads the stored row, no re-materialization.
	stored.HeaderText = "Geändert"
	again, err := svc.Get(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if again.HeaderText != "Geändert" {
		t.Errorf("expected stored header text, got %q", again.HeaderText)
	}
}

func TestUpdate_MergesOnlyProvidedFields(t *testing.T) {
	existing := &model.DisplayConfig{
		HeaderText:       "Buchungssystem",
		CategoryIcons:    map[string]string{"Room": "door"},
		PlaceholderTitle: "Titel",
	}

	var stored *model.DisplayConfig
	repo := &mockConfigRepository{
		findFunc: func(ctx context.Context) (*model.DisplayConfig, error) {
			copied := *existing
			return &copied, nil
		},
		upsertFunc: func(ctx context.Context, settings *model.DisplayConfig) error {
			stored = settings
			return nil
		},
	}
	svc := newTestService(repo)

	header := "Raumplaner"
	result, err := svc.Update(context.Background(), &model.DisplayConfigUpdate{
		HeaderText: &header,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.HeaderText != header {
		t.Errorf("expected header %q, got %q", header, result.HeaderText)
	}
	if result.PlaceholderTitle != existing.PlaceholderTitle {
		t.Errorf("omitted placeholder must survive, got %q", result.PlaceholderTitle)
	}
	if len(result.CategoryIcons) != 1 || result.CategoryIcons["Room"] != "door" {
		t.Errorf("omitted icon map must survive, got %v", result.CategoryIcons)
	}
	if stored == nil {
		t.Fatal("expected update to be persisted")
	}
}

func TestUpdate_IconMapReplacedWholesale(t *testing.T) {
	existing := &model.DisplayConfig{
		HeaderText:    "Buchungssystem",
		CategoryIcons: map[string]string{"Room": "door", "Vehicle": "car"},
	}
	repo := &mockConfigRepository{
		findFunc: func(ctx context.Context) (*model.DisplayConfig, error) {
			copied := *existing
			return &copied, nil
		},
	}
	svc := newTestService(repo)

	icons := map[string]string{"Equipment": "tool"}
	result, err := svc.Update(context.Background(), &model.DisplayConfigUpdate{
		CategoryIcons: &icons,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// The old keys are gone; the mapping is replaced, not merged per key.
	if len(result.CategoryIcons) != 1 {
		t.Fatalf("expected 1 icon entry, got %d", len(result.CategoryIcons))
	}
	if result.CategoryIcons["Equipment"] != "tool" {
		t.Errorf("expected new mapping, got %v", result.CategoryIcons)
	}
}

func TestUpdate_ClearIconMap(t *testing.T) {
	existing := &model.DisplayConfig{
		HeaderText:    "Buchungssystem",
		CategoryIcons: map[string]string{"Room": "door"},
	}
	repo := &mockConfigRepository{
		findFunc: func(ctx context.Context) (*model.DisplayConfig, error) {
			copied := *existing
			return &copied, nil
		},
	}
	svc := newTestService(repo)

	empty := map[string]string{}
	result, err := svc.Update(context.Background(), &model.DisplayConfigUpdate{
		CategoryIcons: &empty,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.CategoryIcons) != 0 {
		t.Errorf("expected cleared icon map, got %v", result.CategoryIcons)
	}
}
