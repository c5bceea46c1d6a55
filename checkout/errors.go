package checkout

import (
	"errors"
	"fmt"

	"github.com/221FA04614/AuraShop-main/model"
)

var (
	ErrCartEmpty       = errors.New("cart is empty")
	ErrProductNotFound = errors.New("product not found")
	ErrInvalidQuantity = errors.New("invalid quantity (must be between 1 and 99)")
	// ErrCartChanged means the cart was empty when the completion
	// notification arrived. The payment already went through, so this is a
	// server-side failure for operator investigation, never a silent skip.
	ErrCartChanged = errors.New("cart is empty at completion time")
)

// AddressError reports the first missing shipping-address field.
type AddressError struct {
	Field string
}

func (e *AddressError) Error() string {
	return fmt.Sprintf("invalid or missing shipping address: %s is required", e.Field)
}

// StockError names the product that cannot be fulfilled.
type StockError struct {
	ProductName string
}

func (e *StockError) Error() string {
	return fmt.Sprintf("%s is out of stock or has insufficient quantity", e.ProductName)
}

func validateAddress(a model.ShippingAddress) error {
	fields := []struct {
		name  string
		value string
	}{
		{"name", a.Name},
		{"phone", a.Phone},
		{"street", a.Street},
		{"city", a.City},
		{"state", a.State},
		{"zipCode", a.ZipCode},
		{"country", a.Country},
	}
	for _, f := range fields {
		if f.value == "" {
			return &AddressError{Field: f.name}
		}
	}
	return nil
}
