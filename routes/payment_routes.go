package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/221FA04614/AuraShop-main/controller"
)

func RegisterPaymentRoutes(app *fiber.App, pc *controller.PaymentController, authMiddleware fiber.Handler) {
	api := app.Group("/api")
	p := api.Group("/payment")

	p.Post("/create-checkout-session", authMiddleware, pc.CreateCheckoutSession)
	p.Post("/create-quick-checkout-session", authMiddleware, pc.CreateQuickCheckoutSession)
	// Webhook has no auth of its own; the signature check is the gate.
	p.Post("/webhook", pc.Webhook)
	p.Get("/order-by-session", authMiddleware, pc.OrderBySession)
}
