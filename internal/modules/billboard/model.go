package billboard

import (
	"strings"
	"time"

	"github.com/georgemunganga/storefront-admin/internal/platform/apperr"
	"github.com/google/uuid"
)

// Billboard is a hero image with a label, shown on category pages.
type Billboard struct {
	ID        uuid.UUID `json:"id" db:"id"`
	StoreID   uuid.UUID `json:"storeId" db:"store_id"`
	Label     string    `json:"label" db:"label"`
	ImageURL  string    `json:"imageUrl" db:"image_url"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}

// BillboardRequest is the body of billboard POST and PATCH requests.
type BillboardRequest struct {
	Label    string `json:"label"`
	ImageURL string `json:"imageUrl"`
}

func (r *BillboardRequest) Validate() error {
	r.Label = strings.TrimSpace(r.Label)
	r.ImageURL = strings.TrimSpace(r.ImageURL)
	if r.Label == "" {
		return apperr.Required("label")
	}
	if r.ImageURL == "" {
		return apperr.Required("imageUrl")
	}
	return nil
}
