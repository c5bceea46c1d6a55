package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/221FA04614/AuraShop-main/controller"
	"github.com/221FA04614/AuraShop-main/middleware"
)

func RegisterProductRoutes(app *fiber.App, pc *controller.ProductController, authMiddleware fiber.Handler) {
	api := app.Group("/api")
	p := api.Group("/products")

	p.Get("/", pc.List)
	p.Get("/categories", pc.Categories)
	p.Get("/search", pc.Search)
	p.Get("/:id", pc.Get)
	p.Post("/", authMiddleware, middleware.RoleRequired("admin"), pc.Create)
}
