package theme

import (
	"time"

	"github.com/google/uuid"
)

// DefaultColor fills every field of a freshly provisioned theme.
const DefaultColor = "#FFFFFF"

// ThemeColors is the storefront color palette. A store has at most one.
type ThemeColors struct {
	ID              uuid.UUID `json:"id" db:"id"`
	StoreID         uuid.UUID `json:"storeId" db:"store_id"`
	PrimaryColor    string    `json:"primaryColor" db:"primary_color"`
	YoloColor       string    `json:"yoloColor" db:"yolo_color"`
	BorderColor     string    `json:"borderColor" db:"border_color"`
	InputColor      string    `json:"inputColor" db:"input_color"`
	RingColor       string    `json:"ringColor" db:"ring_color"`
	BackgroundColor string    `json:"backgroundColor" db:"background_color"`
	ForegroundColor string    `json:"foregroundColor" db:"foreground_color"`
	CreatedAt       time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt       time.Time `json:"updatedAt" db:"updated_at"`
}

// Default returns the all-white theme for storeID.
func Default(storeID uuid.UUID) *ThemeColors {
	t := &ThemeColors{ID: uuid.New(), StoreID: storeID}
	t.apply(DefaultColors())
	return t
}

func (t *ThemeColors) apply(c ColorsRequest) {
	t.PrimaryColor = c.PrimaryColor
	t.YoloColor = c.YoloColor
	t.BorderColor = c.BorderColor
	t.InputColor = c.InputColor
	t.RingColor = c.RingColor
	t.BackgroundColor = c.BackgroundColor
	t.ForegroundColor = c.ForegroundColor
}

// Colors returns the palette of t as a request body.
func (t *ThemeColors) Colors() ColorsRequest {
	return ColorsRequest{
		PrimaryColor:    t.PrimaryColor,
		YoloColor:       t.YoloColor,
		BorderColor:     t.BorderColor,
		InputColor:      t.InputColor,
		RingColor:       t.RingColor,
		BackgroundColor: t.BackgroundColor,
		ForegroundColor: t.ForegroundColor,
	}
}
