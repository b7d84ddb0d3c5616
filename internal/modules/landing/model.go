package landing

import (
	"time"

	"github.com/google/uuid"
)

// PlaceholderTitle fills every title of a freshly provisioned landing.
const PlaceholderTitle = "Example"

// Landing is the copy shown on a store's landing page. A store has at most one.
type Landing struct {
	ID          uuid.UUID `json:"id" db:"id"`
	StoreID     uuid.UUID `json:"storeId" db:"store_id"`
	DecodeTitle string    `json:"decodeTitle" db:"decode_title"`
	MainTitle   string    `json:"mainTitle" db:"main_title"`
	SecondTitle string    `json:"secondTitle" db:"second_title"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at"`
}

// Default returns the placeholder landing for storeID.
func Default(storeID uuid.UUID) *Landing {
	return &Landing{
		ID:          uuid.New(),
		StoreID:     storeID,
		DecodeTitle: PlaceholderTitle,
		MainTitle:   PlaceholderTitle,
		SecondTitle: PlaceholderTitle,
	}
}
