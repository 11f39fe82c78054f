package model

// DisplayConfig holds cosmetic settings for the booking UI. Exactly one
// logical document exists; first access materializes the defaults.
type DisplayConfig struct {
	ID               string            `json:"-" bson:"_id"`
	HeaderText       string            `json:"headerText" bson:"header_text" validate:"omitempty,max=100"`
	CategoryIcons    map[string]string `json:"categoryIcons" bson:"category_icons"`
	PlaceholderTitle string            `json:"placeholderTitle" bson:"placeholder_title" validate:"omitempty,max=100"`
	PlaceholderName  string            `json:"placeholderName" bson:"placeholder_name" validate:"omitempty,max=100"`
	PlaceholderEmail string            `json:"placeholderEmail" bson:"placeholder_email" validate:"omitempty,max=100"`
}

// DisplayConfigUpdate merges over the stored settings. A supplied
// CategoryIcons map replaces the whole mapping, never a per-key merge.
type DisplayConfigUpdate struct {
	HeaderText       *string            `json:"headerText,omitempty" validate:"omitempty,max=100"`
	CategoryIcons    *map[string]string `json:"categoryIcons,omitempty"`
	PlaceholderTitle *string            `json:"placeholderTitle,omitempty" validate:"omitempty,max=100"`
	PlaceholderName  *string            `json:"placeholderName,omitempty" validate:"omitempty,max=100"`
	PlaceholderEmail *string            `json:"placeholderEmail,omitempty" validate:"omitempty,max=100"`
}
