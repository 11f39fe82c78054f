package model

import "time"

// BookingLock is an advisory lock serializing booking creation per asset.
// The _id is deterministic per asset, so a unique-key insert either wins
// the lock or collides with the current holder. ExpiresAt is TTL-indexed
// so a crashed holder cannot wedge the asset.
type BookingLock struct {
	ID        string    `bson:"_id" json:"id"`
	ExpiresAt time.Time `bson:"expires_at" json:"expires_at"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}
