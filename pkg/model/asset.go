package model

import "time"

// Asset is a bookable physical resource (room, vehicle, equipment).
// SortOrder defines display order among assets; values need not be
// contiguous, ties are broken by ID.
type Asset struct {
	ID             string    `json:"id,omitempty" bson:"_id,omitempty" validate:"omitempty,mongodb"`
	Name           string    `json:"name" bson:"name" validate:"required,min=1,max=100"`
	Category       string    `json:"type" bson:"category" validate:"required,min=1,max=50"`
	Description    string    `json:"description,omitempty" bson:"description" validate:"omitempty,max=255"`
	Color          string    `json:"color,omitempty" bson:"color" validate:"omitempty,hexcolor"`
	Icon           string    `json:"icon,omitempty" bson:"icon" validate:"omitempty,max=50"`
	IsOutOfService bool      `json:"isOutOfService" bson:"is_out_of_service"`
	SortOrder      int       `json:"sortOrder" bson:"sort_order"`
	CreatedAt      time.Time `json:"createdAt,omitempty" bson:"created_at" validate:"omitempty"`
}

// AssetUpdate carries a partial update. Pointer fields distinguish
// "caller omitted this field" from "caller explicitly cleared it".
type AssetUpdate struct {
	Name           *string `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Category       *string `json:"type,omitempty" validate:"omitempty,min=1,max=50"`
	Description    *string `json:"description,omitempty" validate:"omitempty,max=255"`
	Color          *string `json:"color,omitempty" validate:"omitempty,hexcolor"`
	Icon           *string `json:"icon,omitempty" validate:"omitempty,max=50"`
	IsOutOfService *bool   `json:"isOutOfService,omitempty"`
	SortOrder      *int    `json:"sortOrder,omitempty"`
}

// ReorderEntry assigns a new sort order to one asset. Entries referencing
// unknown asset ids are skipped, not errors.
type ReorderEntry struct {
	ID        string `json:"id" validate:"required,mongodb"`
	SortOrder int    `json:"sortOrder"`
}
