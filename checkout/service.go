package checkout

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/221FA04614/AuraShop-main/events"
	"github.com/221FA04614/AuraShop-main/model"
	"github.com/221FA04614/AuraShop-main/payment"
	"github.com/221FA04614/AuraShop-main/store"
)

// Service builds hosted checkout sessions and materializes orders from
// their completion notifications. It holds no state of its own; everything
// goes through the injected stores and the payment client.
type Service struct {
	products store.ProductStore
	carts    store.CartStore
	orders   store.OrderStore
	sessions payment.Client
	events   events.Publisher

	successURL string
	cancelURL  string
}

func NewService(
	products store.ProductStore,
	carts store.CartStore,
	orders store.OrderStore,
	sessions payment.Client,
	publisher events.Publisher,
	frontendURL string,
) *Service {
	return &Service{
		products:   products,
		carts:      carts,
		orders:     orders,
		sessions:   sessions,
		events:     publisher,
		successURL: frontendURL + "/payment-success?session_id={CHECKOUT_SESSION_ID}",
		cancelURL:  frontendURL + "/payment-cancel",
	}
}

// CreateCartSession validates the user's cart snapshot and requests a
// hosted payment session for it. Local stores stay untouched; the cart is
// only cleared once payment completes.
func (s *Service) CreateCartSession(ctx context.Context, userID uint, email string, addr model.ShippingAddress) (*payment.Session, error) {
	if err := validateAddress(addr); err != nil {
		return nil, err
	}

	items, err := s.carts.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load cart: %w", err)
	}
	if len(items) == 0 {
		return nil, ErrCartEmpty
	}

	lineItems := make([]payment.LineItem, 0, len(items))
	for _, it := range items {
		if it.Product.ID == 0 {
			return nil, ErrProductNotFound
		}
		if !it.Product.InStock || it.Product.Stock < it.Quantity {
			return nil, &StockError{ProductName: it.Product.Name}
		}
		lineItems = append(lineItems, payment.LineItem{
			Name:        it.Product.Name,
			Description: fmt.Sprintf("Size: %s, Color: %s", it.Size, it.Color),
			ImageURL:    it.Product.ImageURL,
			UnitAmount:  toMinorUnits(it.Product.Price),
			Quantity:    int64(it.Quantity),
		})
	}

	md, err := Intent{UserID: userID, Mode: ModeCart, Address: addr}.Metadata()
	if err != nil {
		return nil, err
	}
	return s.sessions.CreateCheckoutSession(ctx, payment.SessionParams{
		CustomerEmail: email,
		SuccessURL:    s.successURL,
		CancelURL:     s.cancelURL,
		LineItems:     lineItems,
		Metadata:      md,
	})
}

type QuickCheckoutInput struct {
	ProductID uint
	Quantity  int
	Size      string
	Color     string
	Address   model.ShippingAddress
}

// CreateQuickSession is the single-product ("Buy Now") variant of
// CreateCartSession; the cart is not involved at all.
func (s *Service) CreateQuickSession(ctx context.Context, userID uint, email string, in QuickCheckoutInput) (*payment.Session, error) {
	if in.Quantity < 1 || in.Quantity > 99 {
		return nil, ErrInvalidQuantity
	}
	if err := validateAddress(in.Address); err != nil {
		return nil, err
	}

	product, err := s.products.Get(ctx, in.ProductID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("load product: %w", err)
	}
	if !product.InStock || product.Stock < in.Quantity {
		return nil, &StockError{ProductName: product.Name}
	}

	description := product.Description
	if in.Size != "" && in.Color != "" {
		description = fmt.Sprintf("Size: %s, Color: %s", in.Size, in.Color)
	}

	md, err := Intent{
		UserID:      userID,
		Mode:        ModeQuick,
		Address:     in.Address,
		ProductID:   product.ID,
		ProductName: product.Name,
		Quantity:    in.Quantity,
		Size:        in.Size,
		Color:       in.Color,
	}.Metadata()
	if err != nil {
		return nil, err
	}
	return s.sessions.CreateCheckoutSession(ctx, payment.SessionParams{
		CustomerEmail: email,
		SuccessURL:    s.successURL,
		CancelURL:     s.cancelURL,
		LineItems: []payment.LineItem{{
			Name:        product.Name,
			Description: description,
			ImageURL:    product.ImageURL,
			UnitAmount:  toMinorUnits(product.Price),
			Quantity:    int64(in.Quantity),
		}},
		Metadata: md,
	})
}

func toMinorUnits(price float64) int64 {
	return int64(math.Round(price * 100))
}
