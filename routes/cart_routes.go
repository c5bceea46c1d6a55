package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/221FA04614/AuraShop-main/controller"
)

func RegisterCartRoutes(app *fiber.App, cc *controller.CartController, authMiddleware fiber.Handler) {
	api := app.Group("/api")
	c := api.Group("/cart")

	c.Get("/", authMiddleware, cc.List)
	c.Post("/", authMiddleware, cc.Add)
	c.Put("/:id", authMiddleware, cc.UpdateQuantity)
	c.Delete("/:id", authMiddleware, cc.Remove)
	c.Delete("/", authMiddleware, cc.Clear)
}
