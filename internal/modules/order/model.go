package order

import (
	"time"

	"github.com/google/uuid"
)

// Order is a checkout placed on a store's storefront. Orders are created by
// the storefront; the admin API only lists and clears them.
type Order struct {
	ID         uuid.UUID    `json:"id" db:"id"`
	StoreID    uuid.UUID    `json:"storeId" db:"store_id"`
	IsPaid     bool         `json:"isPaid" db:"is_paid"`
	Phone      string       `json:"phone" db:"phone"`
	Address    string       `json:"address" db:"address"`
	Items      []*OrderItem `json:"items"`
	TotalPrice float64      `json:"totalPrice" db:"-"`
	CreatedAt  time.Time    `json:"createdAt" db:"created_at"`
	UpdatedAt  time.Time    `json:"updatedAt" db:"updated_at"`
}

// OrderItem is one product line of an order, with the product's current name and price.
type OrderItem struct {
	ID          uuid.UUID `json:"id" db:"id"`
	OrderID     uuid.UUID `json:"orderId" db:"order_id"`
	ProductID   uuid.UUID `json:"productId" db:"product_id"`
	ProductName string    `json:"productName" db:"product_name"`
	Price       float64   `json:"price" db:"price"`
}

// DeleteResult is the body returned after clearing a store's orders.
type DeleteResult struct {
	Count int64 `json:"count"`
}

func (o *Order) total() {
	var sum float64
	for _, it := range o.Items {
		sum += it.Price
	}
	o.TotalPrice = round2(sum)
}

func round2(v float64) float64 {
	return float64(int64(v*100+0.5)) / 100
}
