package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/221FA04614/AuraShop-main/controller"
)

func RegisterOrderRoutes(app *fiber.App, oc *controller.OrderController, authMiddleware fiber.Handler) {
	api := app.Group("/api")
	o := api.Group("/orders")

	o.Get("/", authMiddleware, oc.List)
	o.Get("/:id", authMiddleware, oc.Get)
}
