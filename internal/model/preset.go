package model

import "time"

// Preset represents a saved generation configuration in the database.
// Presets hold options only; generated passwords are never stored.
type Preset struct {
	ID                int64
	UserID            int64
	Name              string
	Length            int
	Uppercase         bool
	Lowercase         bool
	Digits            bool
	Symbols           bool
	ExcludeAmbiguous  bool
	GuaranteeEachType bool
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// PresetRequest represents a preset create-or-update request.
type PresetRequest struct {
	Name              string `json:"name"`
	Length            int    `json:"length"`
	Uppercase         bool   `json:"uppercase"`
	Lowercase         bool   `json:"lowercase"`
	Digits            bool   `json:"digits"`
	Symbols           bool   `json:"symbols"`
	ExcludeAmbiguous  bool   `json:"exclude_ambiguous"`
	GuaranteeEachType bool   `json:"guarantee_each_type"`
}

// PresetResponse represents a preset in API responses.
type PresetResponse struct {
	Name              string    `json:"name"`
	Length            int       `json:"length"`
	Uppercase         bool      `json:"uppercase"`
	Lowercase         bool      `json:"lowercase"`
	Digits            bool      `json:"digits"`
	Symbols           bool      `json:"symbols"`
	ExcludeAmbiguous  bool      `json:"exclude_ambiguous"`
	GuaranteeEachType bool      `json:"guarantee_each_type"`
	UpdatedAt         time.Time `json:"updated_at"`
}
