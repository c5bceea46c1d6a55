package model

import (
	"time"

	"gorm.io/datatypes"
)

type ShippingAddress struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zipCode"`
	Country string `json:"country"`
}

// OrderItem is a snapshot of the product at purchase time, not a live
// reference, so later catalog edits never alter historical orders.
type OrderItem struct {
	ProductID   uint    `json:"product_id"`
	ProductName string  `json:"product_name"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
	Size        string  `json:"size"`
	Color       string  `json:"color"`
}

type Order struct {
	ID              uint                                `gorm:"primaryKey" json:"id"`
	UserID          uint                                `gorm:"index" json:"user_id"`
	Items           datatypes.JSONSlice[OrderItem]      `json:"items"`
	TotalAmount     float64                             `json:"total_amount"`
	PaymentStatus   string                              `json:"payment_status"`
	ShippingAddress datatypes.JSONType[ShippingAddress] `json:"shipping_address"`
	// Payment-session id doubles as the idempotency key; the unique index
	// is what makes duplicate webhook deliveries a benign conflict.
	StripeSessionID string    `gorm:"uniqueIndex" json:"stripe_session_id"`
	CreatedAt       time.Time `json:"created_at"`
}
