package service

import (
	"context"
	"errors"

	"assetbook/internal/displayconfig/repository"
	"assetbook/pkg/config"
	apperrors "assetbook/pkg/errors"
	"assetbook/pkg/model"
)

type ConfigService interface {
	Get(ctx context.Context) (*model.DisplayConfig, error)
	Update(ctx context.Context, updates *model.DisplayConfigUpdate) (*model.DisplayConfig, error)
}

type configService struct {
	repo repository.ConfigRepository
	cfg  *config.Config
}

func NewConfigService(repo repository.ConfigRepository, cfg *config.Config) ConfigService {
	return &configService{
		repo: repo,
		cfg:  cfg,
	}
}

// Get returns the settings, materializing the defaults on first access.
func (s *configService) Get(ctx context.Context) (*model.DisplayConfig, error) {
	settings, err := s.repo.Find(ctx)
	if err == nil {
		return settings, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		s.cfg.Log.Error("Failed to load display config", "error", err)
		return nil, apperrors.Internal("Failed to load display config", err)
	}

	defaults := s.defaults()
	if err := s.repo.Upsert(ctx, defaults); err != nil {
		s.cfg.Log.Error("Failed to materialize default display config", "error", err)
		return nil, apperrors.Internal("Failed to initialize display config", err)
	}

	s.cfg.Log.Info("Display config defaults materialized")
	return defaults, nil
}

// Update merges the supplied fields over the stored settings. A supplied
// category-icon mapping replaces the entire mapping.
func (s *configService) Update(ctx context.Context, updates *model.DisplayConfigUpdate) (*model.DisplayConfig, error) {
	settings, err := s.Get(ctx)
	if err != nil {
		return nil, err
	}

	if updates.HeaderText != nil {
		settings.HeaderText = *updates.HeaderText
	}
	if updates.CategoryIcons != nil {
		settings.CategoryIcons = *updates.CategoryIcons
	}
	if updates.PlaceholderTitle != nil {
		settings.PlaceholderTitle = *updates.PlaceholderTitle
	}
	if updates.PlaceholderName != nil {
		settings.PlaceholderName = *updates.PlaceholderName
	}
	if updates.PlaceholderEmail != nil {
		settings.PlaceholderEmail = *updates.PlaceholderEmail
	}

	if err := s.repo.Upsert(ctx, settings); err != nil {
		s.cfg.Log.Error("Failed to update display config", "error", err)
		return nil, apperrors.Internal("Failed to update display config", err)
	}

	s.cfg.Log.Info("Display config updated")
	return settings, nil
}

func (s *configService) defaults() *model.DisplayConfig {
	return &model.DisplayConfig{
		HeaderText:    s.cfg.DefaultHeaderText,
		CategoryIcons: map[string]string{},
	}
}
