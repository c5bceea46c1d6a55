package model

import "time"

// CartItem holds one (user, product, size, color) line. The composite
// unique index backs the merge-on-add semantics: concurrent adds for the
// same variant collapse into a quantity bump instead of a second row.
type CartItem struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"index;uniqueIndex:idx_cart_user_variant" json:"user_id"`
	ProductID uint      `gorm:"uniqueIndex:idx_cart_user_variant" json:"product_id"`
	Size      string    `gorm:"uniqueIndex:idx_cart_user_variant" json:"size"`
	Color     string    `gorm:"uniqueIndex:idx_cart_user_variant" json:"color"`
	Quantity  int       `json:"quantity"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Product Product `json:"product"`
}
