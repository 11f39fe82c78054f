package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	assetserrors "assetbook/internal/assets/errors"
	bookingserrors "assetbook/internal/bookings/errors"
	"assetbook/internal/bookings/repository"
	"assetbook/internal/bookings/validator"
	"assetbook/pkg/config"
	apperrors "assetbook/pkg/errors"
	"assetbook/pkg/model"
	"assetbook/pkg/sanitizer"
)

// AssetResolver confirms that the asset a booking references exists. The
// scheduler resolves the reference on every write and never caches the
// answer.
type AssetResolver interface {
	Exists(ctx context.Context, assetID string) (bool, error)
}

type BookingService interface {
	Create(ctx context.Context, booking *model.Booking) error
	GetByID(ctx context.Context, id string) (*model.Booking, error)
	GetAll(ctx context.Context, assetID string, limit int, offset int64) ([]*model.Booking, int64, error)
	Delete(ctx context.Context, id string) error
}

type bookingService struct {
	repo      repository.BookingRepository
	lockRepo  repository.BookingLockRepository
	assets    AssetResolver
	validator *validator.BookingValidator
	events    EventPublisher
	cfg       *config.Config
}

func NewBookingService(
	repo repository.BookingRepository,
	lockRepo repository.BookingLockRepository,
	assets AssetResolver,
	validator *validator.BookingValidator,
	events EventPublisher,
	cfg *config.Config,
) BookingService {
	if events == nil {
		events = NopPublisher{}
	}
	return &bookingService{
		repo:      repo,
		lockRepo:  lockRepo,
		assets:    assets,
		validator: validator,
		events:    events,
		cfg:       cfg,
	}
}

func (s *bookingService) Create(ctx context.Context, booking *model.Booking) error {
	s.sanitize(booking)
	if err := s.validate(booking); err != nil {
		return err
	}

	if err := s.resolveAsset(ctx, booking.AssetID); err != nil {
		return err
	}

	// Serialize creations per asset so no two concurrent requests can both
	// observe "no conflict" and both commit. Different assets use different
	// lock ids and never block each other.
	lockID, err := s.acquireAssetLock(ctx, booking.AssetID)
	if err != nil {
		return err
	}
	defer func() {
		if releaseErr := s.releaseAssetLock(context.WithoutCancel(ctx), lockID); releaseErr != nil {
			s.cfg.Log.Warn("Failed to release booking lock", "lock_id", lockID, "error", releaseErr)
		}
	}()

	err = s.repo.ExecuteTransaction(ctx, func(sessCtx mongo.SessionContext) error {
		if err := s.verifyNoOverlap(sessCtx, booking); err != nil {
			return err
		}
		if err := s.repo.Create(sessCtx, booking); err != nil {
			return apperrors.Internal("Failed to create booking", err)
		}
		return nil
	})
	if err != nil {
		if apperrors.IsAppError(err) && apperrors.AsAppError(err).Code == apperrors.CodeConflict {
			s.cfg.Log.Info("Booking rejected due to time conflict",
				"asset_id", booking.AssetID,
				"start_time", booking.StartTime,
				"end_time", booking.EndTime,
			)
		} else {
			s.cfg.Log.Error("Failed to create booking", "error", err)
		}
		return err
	}

	s.cfg.Log.Info("Booking created successfully",
		"id", booking.ID,
		"asset_id", booking.AssetID,
		"start_time", booking.StartTime,
		"end_time", booking.EndTime,
	)
	s.publishEvent(ctx, EventBookingCreated, booking)
	return nil
}

func (s *bookingService) GetByID(ctx context.Context, id string) (*model.Booking, error) {
	if id == "" {
		return nil, apperrors.InvalidInput("Booking ID cannot be empty")
	}

	booking, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingserrors.ErrNotFound) {
			return nil, apperrors.NotFoundWithID("Booking", id)
		}
		if errors.Is(err, bookingserrors.ErrInvalidID) {
			return nil, apperrors.InvalidInput("Invalid booking ID format")
		}
		return nil, apperrors.Internal("Failed to retrieve booking", err)
	}

	return booking, nil
}

func (s *bookingService) GetAll(ctx context.Context, assetID string, limit int, offset int64) ([]*model.Booking, int64, error) {
	var count int64
	var bookings []*model.Booking
	var errCount, errFind error
	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		count, errCount = s.repo.Count(ctx, assetID)
		if errCount != nil {
			s.cfg.Log.Error("Failed to count bookings", "error", errCount)
			errCount = apperrors.Internal("Failed to count bookings", errCount)
		}
	}()

	go func() {
		defer wg.Done()
		bookings, errFind = s.repo.FindAll(ctx, assetID, limit, offset)
		if errFind != nil {
			s.cfg.Log.Error("Failed to list bookings", "error", errFind)
			errFind = apperrors.Internal("Failed to retrieve bookings", errFind)
		}
	}()

	wg.Wait()
	if errCount != nil {
		return nil, 0, errCount
	}
	if errFind != nil {
		return nil, 0, errFind
	}

	return bookings, count, nil
}

// Delete cancels a booking. Cancellation is deletion: repeating it for an
// already-removed booking reports not found, never success.
func (s *bookingService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return apperrors.InvalidInput("Booking ID cannot be empty")
	}

	booking, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, bookingserrors.ErrNotFound) {
			return apperrors.NotFoundWithID("Booking", id)
		}
		if errors.Is(err, bookingserrors.ErrInvalidID) {
			return apperrors.InvalidInput("Invalid booking ID format")
		}
		return apperrors.Internal("Failed to delete booking", err)
	}

	s.cfg.Log.Info("Booking cancelled successfully", "id", id, "asset_id", booking.AssetID)
	s.publishEvent(ctx, EventBookingCancelled, booking)
	return nil
}

// --- Helpers ---

func (s *bookingService) sanitize(b *model.Booking) {
	b.Title = sanitizer.NormalizeTitle(b.Title)
	b.UserName = sanitizer.NormalizeName(b.UserName)
	b.UserEmail = sanitizer.NormalizeEmail(b.UserEmail)
}

func (s *bookingService) validate(booking *model.Booking) error {
	if err := s.validator.Validate(booking); err != nil {
		s.cfg.Log.Warn("Booking validation failed", "error", err)
		return apperrors.Validation("Booking validation failed", map[string]any{"error": err.Error()})
	}
	return nil
}

func (s *bookingService) resolveAsset(ctx context.Context, assetID string) error {
	exists, err := s.assets.Exists(ctx, assetID)
	if err != nil {
		if errors.Is(err, assetserrors.ErrInvalidID) {
			return apperrors.InvalidInput("Invalid asset ID format")
		}
		return apperrors.Internal("Failed to resolve asset", err)
	}
	if !exists {
		return apperrors.NotFoundWithID("Asset", assetID)
	}
	return nil
}

// verifyNoOverlap enforces the core invariant: for one asset, no two live
// bookings may share an instant. Intervals are half-open, so a booking
// ending exactly when another starts is allowed.
func (s *bookingService) verifyNoOverlap(ctx context.Context, booking *model.Booking) error {
	existing, err := s.repo.FindOverlapping(ctx, booking.AssetID, booking.StartTime, booking.EndTime)
	if err != nil {
		return apperrors.Internal("Failed to check existing bookings", err)
	}

	for _, b := range existing {
		if b.ID == booking.ID {
			continue
		}
		if b.Overlaps(booking.StartTime, booking.EndTime) {
			return apperrors.BookingConflict(
				booking.AssetID,
				booking.StartTime, booking.EndTime,
				b.StartTime, b.EndTime,
			)
		}
	}
	return nil
}

// acquireAssetLock takes the per-asset advisory lock, polling for a
// bounded wait so concurrent non-overlapping requests serialize instead of
// failing spuriously. Past the wait bound the caller gets a conflict.
func (s *bookingService) acquireAssetLock(ctx context.Context, assetID string) (string, error) {
	lockID := fmt.Sprintf("asset_lock_%s", assetID)
	deadline := time.Now().Add(s.cfg.BookingLockWait)

	for {
		lock := &model.BookingLock{
			ID:        lockID,
			ExpiresAt: time.Now().Add(s.cfg.BookingLockTTL),
		}

		_, err := s.lockRepo.Create(ctx, lock)
		if err == nil {
			return lockID, nil
		}
		if !mongo.IsDuplicateKeyError(err) {
			return "", apperrors.Internal("Failed to acquire booking lock", err)
		}
		if time.Now().After(deadline) {
			return "", apperrors.Conflict("This asset is currently being booked by another request. Please try again.")
		}

		select {
		case <-ctx.Done():
			return "", apperrors.Timeout("Timed out waiting for booking lock")
		case <-time.After(s.cfg.BookingLockRetryInterval):
		}
	}
}

func (s *bookingService) releaseAssetLock(ctx context.Context, lockID string) error {
	return s.lockRepo.Delete(ctx, lockID)
}
