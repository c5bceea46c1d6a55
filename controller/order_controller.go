package controller

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/221FA04614/AuraShop-main/model"
	"github.com/221FA04614/AuraShop-main/store"
)

type OrderController struct {
	Orders store.OrderStore
}

func (oc *OrderController) List(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(uint)

	orders, err := oc.Orders.ListByUser(c.Context(), userID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "failed to fetch orders"})
	}
	if orders == nil {
		orders = []model.Order{}
	}
	return c.JSON(orders)
}

func (oc *OrderController) Get(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(uint)

	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid id"})
	}

	order, err := oc.Orders.Get(c.Context(), uint(id), userID)
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "order not found"})
	}
	return c.JSON(order)
}
