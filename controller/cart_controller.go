package controller

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/221FA04614/AuraShop-main/model"
	"github.com/221FA04614/AuraShop-main/store"
)

type CartController struct {
	Carts    store.CartStore
	Products store.ProductStore
}

func (cc *CartController) List(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(uint)

	items, err := cc.Carts.ListByUser(c.Context(), userID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "failed to fetch cart items"})
	}
	if items == nil {
		items = []model.CartItem{}
	}
	return c.JSON(items)
}

type addCartItemRequest struct {
	ProductID uint   `json:"product_id"`
	Quantity  int    `json:"quantity"`
	Size      string `json:"size"`
	Color     string `json:"color"`
}

// Add merges quantities when the same (product, size, color) is already in
// the cart, so concurrent adds for one variant never produce two rows.
func (cc *CartController) Add(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(uint)

	var req addCartItemRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid payload"})
	}
	if req.ProductID == 0 {
		return c.Status(400).JSON(fiber.Map{"error": "product_id is required"})
	}
	if req.Quantity < 1 {
		return c.Status(400).JSON(fiber.Map{"error": "quantity must be at least 1"})
	}

	if _, err := cc.Products.Get(c.Context(), req.ProductID); err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "product not found"})
	}

	existing, err := cc.Carts.Find(c.Context(), userID, req.ProductID, req.Size, req.Color)
	if err == nil {
		existing.Quantity += req.Quantity
		if err := cc.Carts.Update(c.Context(), existing); err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "failed to update cart item"})
		}
		return c.JSON(existing)
	}
	if !errors.Is(err, store.ErrNotFound) {
		return c.Status(500).JSON(fiber.Map{"error": "failed to add item to cart"})
	}

	item := model.CartItem{
		UserID:    userID,
		ProductID: req.ProductID,
		Quantity:  req.Quantity,
		Size:      req.Size,
		Color:     req.Color,
	}
	if err := cc.Carts.Create(c.Context(), &item); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			// Lost a race with a concurrent add for the same variant;
			// fold the quantity into the row that won.
			existing, ferr := cc.Carts.Find(c.Context(), userID, req.ProductID, req.Size, req.Color)
			if ferr != nil {
				return c.Status(500).JSON(fiber.Map{"error": "failed to add item to cart"})
			}
			existing.Quantity += req.Quantity
			if err := cc.Carts.Update(c.Context(), existing); err != nil {
				return c.Status(500).JSON(fiber.Map{"error": "failed to update cart item"})
			}
			return c.JSON(existing)
		}
		return c.Status(500).JSON(fiber.Map{"error": "failed to add item to cart"})
	}
	return c.Status(201).JSON(item)
}

func (cc *CartController) UpdateQuantity(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(uint)

	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid id"})
	}

	var req struct {
		Quantity int `json:"quantity"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid payload"})
	}

	item, err := cc.Carts.Get(c.Context(), uint(id), userID)
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "cart item not found"})
	}

	if req.Quantity <= 0 {
		if err := cc.Carts.Delete(c.Context(), item.ID, userID); err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "failed to remove cart item"})
		}
		return c.JSON(fiber.Map{"message": "Item removed from cart"})
	}

	item.Quantity = req.Quantity
	if err := cc.Carts.Update(c.Context(), item); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "failed to update cart item"})
	}
	return c.JSON(item)
}

func (cc *CartController) Remove(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(uint)

	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid id"})
	}

	if err := cc.Carts.Delete(c.Context(), uint(id), userID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "cart item not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "failed to remove cart item"})
	}
	return c.JSON(fiber.Map{"message": "Item removed from cart"})
}

func (cc *CartController) Clear(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(uint)

	if err := cc.Carts.Clear(c.Context(), userID); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "failed to clear cart"})
	}
	return c.JSON(fiber.Map{"message": "Cart cleared successfully"})
}
