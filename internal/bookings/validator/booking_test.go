package validator

import (
	"strings"
	"testing"
	"time"

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

func baseBooking() *model.Booking {
	start := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	return &model.Booking{
		AssetID:   "64f1b2c3d4e5f6a7b8c9d0e1",
		Title:     "Team sync",
		StartTime: start,
		EndTime:   start.Add(time.Hour),
		UserName:  "Max Mustermann",
		UserEmail: "max@example.com",
	}
}

func TestValidate_ValidBooking(t *testing.T) {
	v := NewBookingValidator(testLogger())
	if err := v.Validate(baseBooking()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidate_FieldErrors(t *testing.T) {
	v := NewBookingValidator(testLogger())

	tests := []struct {
		name    string
		modify  func(b *model.Booking)
		wantMsg string
	}{
		{
			name:    "missing asset id",
			modify:  func(b *model.Booking) { b.AssetID = "" },
			wantMsg: "AssetID is required",
		},
		{
			name:    "malformed asset id",
			modify:  func(b *model.Booking) { b.AssetID = "not-an-object-id" },
			wantMsg: "AssetID must be a valid MongoDB ObjectID",
		},
		{
			name:    "missing user name",
			modify:  func(b *model.Booking) { b.UserName = "" },
			wantMsg: "UserName is required",
		},
		{
			name:    "missing user email",
			modify:  func(b *model.Booking) { b.UserEmail = "" },
			wantMsg: "UserEmail is required",
		},
		{
			name:    "malformed email",
			modify:  func(b *model.Booking) { b.UserEmail = "not-an-email" },
			wantMsg: "UserEmail must be a valid email address",
		},
		{
			name:    "title too long",
			modify:  func(b *model.Booking) { b.Title = strings.Repeat("x", 201) },
			wantMsg: "Title must be at most 200",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := baseBooking()
			tt.modify(b)

			err := v.Validate(b)
			if err == nil {
				t.Fatal("expected validation error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("expected error containing %q, got %q", tt.wantMsg, err.Error())
			}
		})
	}
}

func TestValidate_TimeWindow(t *testing.T) {
	v := NewBookingValidator(testLogger())
	start := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		end     time.Time
		wantErr bool
	}{
		{"end after start", start.Add(time.Minute), false},
		{"zero duration", start, true},
		{"end before start", start.Add(-time.Minute), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := baseBooking()
			b.StartTime = start
			b.EndTime = tt.end

			err := v.Validate(b)
			if tt.wantErr && err == nil {
				t.Fatal("expected validation error, got nil")
			}
			if !tt.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.wantErr && !strings.Contains(err.Error(), "endTime must be after startTime") {
				t.Errorf("expected time window message, got %q", err.Error())
			}
		})
	}
}

func TestValidate_OptionalTitle(t *testing.T) {
	v := NewBookingValidator(testLogger())
	b := baseBooking()
	b.Title = ""
	if err := v.Validate(b); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
