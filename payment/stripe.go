package payment

import (
	"context"
	"errors"
	"fmt"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
)

// ErrUnavailable marks failures of the hosted payment provider itself so
// callers can report "the payment rail is down" distinctly from bad input.
var ErrUnavailable = errors.New("payment provider unavailable")

type LineItem struct {
	Name        string
	Description string
	ImageURL    string
	UnitAmount  int64 // minor currency units
	Quantity    int64
}

type SessionParams struct {
	CustomerEmail string
	SuccessURL    string
	CancelURL     string
	LineItems     []LineItem
	Metadata      map[string]string
}

type Session struct {
	ID  string `json:"sessionId"`
	URL string `json:"url"`
}

// Client creates hosted checkout sessions. The Stripe-backed implementation
// is the only one in production; tests substitute their own.
type Client interface {
	CreateCheckoutSession(ctx context.Context, params SessionParams) (*Session, error)
}

type StripeClient struct {
	api *client.API
}

func NewStripeClient(secretKey string) *StripeClient {
	api := &client.API{}
	api.Init(secretKey, nil)
	return &StripeClient{api: api}
}

func (c *StripeClient) CreateCheckoutSession(ctx context.Context, params SessionParams) (*Session, error) {
	items := make([]*stripe.CheckoutSessionLineItemParams, 0, len(params.LineItems))
	for _, li := range params.LineItems {
		product := &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
			Name: stripe.String(li.Name),
		}
		if li.Description != "" {
			product.Description = stripe.String(li.Description)
		}
		if li.ImageURL != "" {
			product.Images = stripe.StringSlice([]string{li.ImageURL})
		}
		items = append(items, &stripe.CheckoutSessionLineItemParams{
			Quantity: stripe.Int64(li.Quantity),
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency:    stripe.String(string(stripe.CurrencyUSD)),
				UnitAmount:  stripe.Int64(li.UnitAmount),
				ProductData: product,
			},
		})
	}

	sp := &stripe.CheckoutSessionParams{
		Params:             stripe.Params{Context: ctx},
		Mode:               stripe.String(string(stripe.CheckoutSessionModePayment)),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		LineItems:          items,
		SuccessURL:         stripe.String(params.SuccessURL),
		CancelURL:          stripe.String(params.CancelURL),
	}
	if params.CustomerEmail != "" {
		sp.CustomerEmail = stripe.String(params.CustomerEmail)
	}
	for k, v := range params.Metadata {
		sp.AddMetadata(k, v)
	}

	s, err := c.api.CheckoutSessions.New(sp)
	if err != nil {
		var stripeErr *stripe.Error
		if errors.As(err, &stripeErr) {
			return nil, fmt.Errorf("%w: %s", ErrUnavailable, stripeErr.Msg)
		}
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return &Session{ID: s.ID, URL: s.URL}, nil
}
