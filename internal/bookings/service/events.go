package service

import (
	"context"
	"time"

	"assetbook/pkg/kafka"
	"assetbook/pkg/model"
)

const (
	EventBookingCreated   = "booking.created"
	EventBookingCancelled = "booking.cancelled"
)

// EventPublisher publishes booking lifecycle events for downstream
// consumers (e.g. a notifier). Publishing is best-effort: a bus failure
// never fails the booking operation itself.
type EventPublisher interface {
	Publish(ctx context.Context, msg kafka.Message) error
}

// NopPublisher drops events; used when the event bus is disabled.
type NopPublisher struct{}

func (NopPublisher) Publish(ctx context.Context, msg kafka.Message) error {
	return nil
}

type bookingEvent struct {
	Type      string    `json:"type"`
	BookingID string    `json:"bookingId"`
	AssetID   string    `json:"assetId"`
	Title     string    `json:"title,omitempty"`
	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`
	UserName  string    `json:"userName"`
	UserEmail string    `json:"userEmail"`
}

func (s *bookingService) publishEvent(ctx context.Context, eventType string, booking *model.Booking) {
	event := bookingEvent{
		Type:      eventType,
		BookingID: booking.ID,
		AssetID:   booking.AssetID,
		Title:     booking.Title,
		StartTime: booking.StartTime,
		EndTime:   booking.EndTime,
		UserName:  booking.UserName,
		UserEmail: booking.UserEmail,
	}

	// Keyed by asset id so per-asset event order survives partitioning.
	msg, err := kafka.NewEventMessage(eventType, booking.AssetID, event)
	if err != nil {
		s.cfg.Log.Error("Failed to build booking event", "type", eventType, "booking_id", booking.ID, "error", err)
		return
	}

	if err := s.events.Publish(ctx, msg); err != nil {
		s.cfg.Log.Warn("Failed to publish booking event", "type", eventType, "booking_id", booking.ID, "error", err)
	}
}
