package domain

import "time"

const (
	PaymentModeCOD    = "Cash on Delivery"
	OrderStatusPlaced = "Placed"
)

// Order is immutable once created. Items are snapshots taken at order
// time; later product edits or deletions do not affect them.
type Order struct {
	ID          string      `json:"id"`
	UserID      string      `json:"userId"`
	Items       []OrderItem `json:"items"`
	TotalAmount float64     `json:"totalAmount"`
	PaymentMode string      `json:"paymentMode"`
	OrderStatus string      `json:"orderStatus"`
	Shipping    Shipping    `json:"shipping"`
	CreatedAt   time.Time   `json:"createdAt"`
}

type OrderItem struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Qty       int     `json:"qty"`
}

type Shipping struct {
	Name    string `json:"name" validate:"required"`
	Mobile  string `json:"mobile" validate:"required"`
	Address string `json:"address" validate:"required"`
	City    string `json:"city" validate:"required"`
	Pincode string `json:"pincode" validate:"required"`
}
