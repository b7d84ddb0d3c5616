package category

import (
	"strings"
	"time"

	"github.com/georgemunganga/storefront-admin/internal/platform/apperr"
	"github.com/google/uuid"
)

// DefaultPageType is used when a category request leaves pageType empty.
const DefaultPageType = "default"

// Category groups products and points at the billboard shown on its page.
type Category struct {
	ID             uuid.UUID `json:"id" db:"id"`
	StoreID        uuid.UUID `json:"storeId" db:"store_id"`
	BillboardID    uuid.UUID `json:"billboardId" db:"billboard_id"`
	BillboardLabel string    `json:"billboardLabel,omitempty" db:"billboard_label"`
	Name           string    `json:"name" db:"name"`
	PageType       string    `json:"pageType" db:"page_type"`
	CreatedAt      time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt      time.Time `json:"updatedAt" db:"updated_at"`
}

// CategoryRequest is the body of category POST and PATCH requests.
type CategoryRequest struct {
	Name        string `json:"name"`
	BillboardID string `json:"billboardId"`
	PageType    string `json:"pageType,omitempty"`
}

func (r *CategoryRequest) Validate() error {
	r.Name = strings.TrimSpace(r.Name)
	r.BillboardID = strings.TrimSpace(r.BillboardID)
	r.PageType = strings.TrimSpace(r.PageType)
	if r.Name == "" {
		return apperr.Required("name")
	}
	if r.BillboardID == "" {
		return apperr.Required("billboardId")
	}
	if r.PageType == "" {
		r.PageType = DefaultPageType
	}
	return nil
}
