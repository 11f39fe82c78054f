package model

import "time"

// Booking is a time-bounded claim on one asset. The interval is half-open
// [StartTime, EndTime): bookings touching at an endpoint do not overlap.
// Bookings are immutable once created; editing is cancel-then-recreate.
type Booking struct {
	ID        string    `json:"id,omitempty" bson:"_id,omitempty" validate:"omitempty,mongodb"`
	AssetID   string    `json:"assetId" bson:"asset_id" validate:"required,mongodb"`
	Title     string    `json:"title,omitempty" bson:"title" validate:"omitempty,max=200"`
	StartTime time.Time `json:"startTime" bson:"start_time" validate:"required"`
	EndTime   time.Time `json:"endTime" bson:"end_time" validate:"required"`
	UserName  string    `json:"userName" bson:"user_name" validate:"required,min=1,max=100"`
	UserEmail string    `json:"userEmail" bson:"user_email" validate:"required,email,max=100"`
	CreatedAt time.Time `json:"createdAt,omitempty" bson:"created_at" validate:"omitempty"`
}

// Overlaps reports whether the booking's window shares at least one
// instant with [start, end).
func (b *Booking) Overlaps(start, end time.Time) bool {
	return b.StartTime.Before(end) && start.Before(b.EndTime)
}
