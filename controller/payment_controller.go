package controller

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/221FA04614/AuraShop-main/checkout"
	"github.com/221FA04614/AuraShop-main/model"
	"github.com/221FA04614/AuraShop-main/payment"
	"github.com/221FA04614/AuraShop-main/store"
)

type PaymentController struct {
	Checkout      *checkout.Service
	Orders        store.OrderStore
	WebhookSecret string
}

type checkoutSessionRequest struct {
	ShippingAddress model.ShippingAddress `json:"shippingAddress"`
}

func (pc *PaymentController) CreateCheckoutSession(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(uint)
	email, _ := c.Locals("user_email").(string)

	var req checkoutSessionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid payload"})
	}

	session, err := pc.Checkout.CreateCartSession(c.Context(), userID, email, req.ShippingAddress)
	if err != nil {
		return checkoutError(c, err)
	}
	return c.JSON(session)
}

type quickCheckoutRequest struct {
	ProductID       uint                  `json:"productId"`
	Quantity        int                   `json:"quantity"`
	Size            string                `json:"size"`
	Color           string                `json:"color"`
	ShippingAddress model.ShippingAddress `json:"shippingAddress"`
}

func (pc *PaymentController) CreateQuickCheckoutSession(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(uint)
	email, _ := c.Locals("user_email").(string)

	var req quickCheckoutRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid payload"})
	}
	if req.ProductID == 0 {
		return c.Status(400).JSON(fiber.Map{"error": "productId is required"})
	}

	session, err := pc.Checkout.CreateQuickSession(c.Context(), userID, email, checkout.QuickCheckoutInput{
		ProductID: req.ProductID,
		Quantity:  req.Quantity,
		Size:      req.Size,
		Color:     req.Color,
		Address:   req.ShippingAddress,
	})
	if err != nil {
		return checkoutError(c, err)
	}
	return c.JSON(session)
}

// Webhook consumes asynchronous payment notifications. Signature failures
// are rejected outright; processing failures return 500 so the provider
// retries delivery.
func (pc *PaymentController) Webhook(c *fiber.Ctx) error {
	event, err := payment.ParseEvent(c.Body(), c.Get("Stripe-Signature"), pc.WebhookSecret)
	if err != nil {
		if errors.Is(err, payment.ErrInvalidSignature) {
			log.Printf("webhook signature verification failed: %v", err)
			return c.Status(400).JSON(fiber.Map{"error": "invalid signature"})
		}
		return c.Status(400).JSON(fiber.Map{"error": "invalid payload"})
	}

	if event.Type != payment.EventSessionCompleted {
		return c.JSON(fiber.Map{"received": true})
	}

	if err := pc.Checkout.HandleSessionCompleted(c.Context(), event.Session); err != nil {
		log.Printf("process session %s: %v", event.Session.ID, err)
		return c.Status(500).JSON(fiber.Map{"error": "failed to process payment"})
	}
	return c.JSON(fiber.Map{"received": true})
}

func (pc *PaymentController) OrderBySession(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(uint)

	sessionID := c.Query("session_id")
	if sessionID == "" {
		return c.Status(400).JSON(fiber.Map{"error": "session_id is required"})
	}

	order, err := pc.Orders.GetBySessionID(c.Context(), sessionID)
	if err != nil || order.UserID != userID {
		return c.Status(404).JSON(fiber.Map{"error": "order not found"})
	}
	return c.JSON(order)
}

// checkoutError maps session-builder failures onto the error taxonomy:
// validation and not-found problems are the caller's, provider outages are
// reported distinctly as 503.
func checkoutError(c *fiber.Ctx, err error) error {
	var addrErr *checkout.AddressError
	var stockErr *checkout.StockError
	switch {
	case errors.As(err, &addrErr), errors.As(err, &stockErr),
		errors.Is(err, checkout.ErrCartEmpty), errors.Is(err, checkout.ErrInvalidQuantity):
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, checkout.ErrProductNotFound):
		return c.Status(404).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, payment.ErrUnavailable):
		return c.Status(503).JSON(fiber.Map{"error": "Payment service unavailable, please try again"})
	default:
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create checkout session"})
	}
}
