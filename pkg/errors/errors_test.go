package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"
)

func TestConstructors_StatusMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        *AppError
		wantCode   string
		wantStatus int
	}{
		{"not found", NotFound("Asset"), CodeNotFound, http.StatusNotFound},
		{"not found with id", NotFoundWithID("Booking", "abc"), CodeNotFound, http.StatusNotFound},
		{"validation", Validation("bad input", nil), CodeValidation, http.StatusUnprocessableEntity},
		{"invalid input", InvalidInput("bad id"), CodeInvalidInput, http.StatusBadRequest},
		{"conflict", Conflict("busy"), CodeConflict, http.StatusConflict},
		{"internal", Internal("boom", nil), CodeInternal, http.StatusInternalServerError},
		{"timeout", Timeout("too slow"), CodeTimeout, http.StatusGatewayTimeout},
		{"unavailable", Unavailable("mongo"), CodeUnavailable, http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Code != tt.wantCode {
				t.Errorf("expected code %s, got %s", tt.wantCode, tt.err.Code)
			}
			if tt.err.StatusCode() != tt.wantStatus {
				t.Errorf("expected status %d, got %d", tt.wantStatus, tt.err.StatusCode())
			}
		})
	}
}

func TestBookingConflict_Details(t *testing.T) {
	start := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	err := BookingConflict(
		"64f1b2c3d4e5f6a7b8c9d0e1",
		start, start.Add(time.Hour),
		start.Add(30*time.Minute), start.Add(90*time.Minute),
	)

	if err.Code != CodeConflict {
		t.Errorf("expected %s, got %s", CodeConflict, err.Code)
	}
	if err.StatusCode() != http.StatusConflict {
		t.Errorf("expected status 409, got %d", err.StatusCode())
	}
	if err.Details["assetId"] != "64f1b2c3d4e5f6a7b8c9d0e1" {
		t.Errorf("expected asset id in details, got %v", err.Details["assetId"])
	}
	if err.Details["startTime"] != "2026-03-01T10:00:00Z" {
		t.Errorf("expected RFC3339 start time, got %v", err.Details["startTime"])
	}
	if err.Details["conflictingEnd"] != "2026-03-01T11:30:00Z" {
		t.Errorf("expected RFC3339 conflicting end, got %v", err.Details["conflictingEnd"])
	}
}

func TestError_WrapsCause(t *testing.T) {
	cause := fmt.Errorf("connection reset")
	err := Internal("Failed to create booking", cause)

	if !errors.Is(err, cause) {
		t.Error("expected wrapped cause to be reachable via errors.Is")
	}
	if got := err.Error(); got != "INTERNAL_ERROR: Failed to create booking (caused by: connection reset)" {
		t.Errorf("unexpected error string: %q", got)
	}
}

func TestIsAppError(t *testing.T) {
	if !IsAppError(NotFound("Asset")) {
		t.Error("expected AppError to be recognized")
	}
	if IsAppError(fmt.Errorf("plain")) {
		t.Error("plain error must not be recognized as AppError")
	}
}

func TestAsAppError_WrapsUnknownErrors(t *testing.T) {
	appErr := AsAppError(fmt.Errorf("plain"))
	if appErr.Code != CodeInternal {
		t.Errorf("expected unknown errors to map to %s, got %s", CodeInternal, appErr.Code)
	}

	original := Conflict("busy")
	if AsAppError(original) != original {
		t.Error("expected AppError to pass through unchanged")
	}
}
