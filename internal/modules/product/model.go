package product

import (
	"strings"
	"time"

	"github.com/georgemunganga/storefront-admin/internal/platform/apperr"
	"github.com/google/uuid"
)

// Product is an item for sale in a store.
type Product struct {
	ID         uuid.UUID `json:"id" db:"id"`
	StoreID    uuid.UUID `json:"storeId" db:"store_id"`
	CategoryID uuid.UUID `json:"categoryId" db:"category_id"`
	Name       string    `json:"name" db:"name"`
	Price      float64   `json:"price" db:"price"`
	IsFeatured bool      `json:"isFeatured" db:"is_featured"`
	IsArchived bool      `json:"isArchived" db:"is_archived"`
	CreatedAt  time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt  time.Time `json:"updatedAt" db:"updated_at"`
}

// ProductRequest is the body of product POST and PATCH requests.
type ProductRequest struct {
	Name       string  `json:"name"`
	Price      float64 `json:"price"`
	CategoryID string  `json:"categoryId"`
	IsFeatured bool    `json:"isFeatured"`
	IsArchived bool    `json:"isArchived"`
}

func (r *ProductRequest) Validate() error {
	r.Name = strings.TrimSpace(r.Name)
	r.CategoryID = strings.TrimSpace(r.CategoryID)
	if r.Name == "" {
		return apperr.Required("name")
	}
	if r.Price <= 0 {
		return apperr.Validationf("price must be greater than 0")
	}
	if r.CategoryID == "" {
		return apperr.Required("categoryId")
	}
	return nil
}

// ListFilter narrows a product listing. Nil fields are not applied.
// Archived products are never listed.
type ListFilter struct {
	CategoryID *uuid.UUID
	IsFeatured *bool
}
