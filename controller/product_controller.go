package controller

import (
	"log"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/221FA04614/AuraShop-main/cache"
	"github.com/221FA04614/AuraShop-main/events"
	"github.com/221FA04614/AuraShop-main/model"
	"github.com/221FA04614/AuraShop-main/search"
	"github.com/221FA04614/AuraShop-main/store"
)

type ProductController struct {
	Products store.ProductStore
	Cache    *cache.ProductCache // optional
	Index    *search.Index       // optional
	Events   events.Publisher
}

func (pc *ProductController) List(c *fiber.Ctx) error {
	category := c.Query("category")
	featured := c.Query("featured") == "true"

	key := cache.ListKey(category, featured)
	if pc.Cache != nil {
		if products, ok := pc.Cache.GetList(c.Context(), key); ok {
			return c.JSON(products)
		}
	}

	products, err := pc.Products.List(c.Context(), category, featured)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "failed to fetch products"})
	}
	if products == nil {
		products = []model.Product{}
	}
	if pc.Cache != nil {
		pc.Cache.SetList(c.Context(), key, products)
	}
	return c.JSON(products)
}

func (pc *ProductController) Get(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid id"})
	}

	if pc.Cache != nil {
		if p, ok := pc.Cache.GetProduct(c.Context(), uint(id)); ok {
			return c.JSON(p)
		}
	}

	p, err := pc.Products.Get(c.Context(), uint(id))
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "product not found"})
	}
	if pc.Cache != nil {
		pc.Cache.SetProduct(c.Context(), p)
	}
	return c.JSON(p)
}

func (pc *ProductController) Categories(c *fiber.Ctx) error {
	categories, err := pc.Products.Categories(c.Context())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "failed to fetch categories"})
	}
	if categories == nil {
		categories = []string{}
	}
	return c.JSON(categories)
}

func (pc *ProductController) Create(c *fiber.Ctx) error {
	var in model.Product
	if err := c.BodyParser(&in); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid payload"})
	}
	if in.Name == "" || in.Price <= 0 {
		return c.Status(400).JSON(fiber.Map{"error": "name and a positive price are required"})
	}
	in.ID = 0
	in.CreatedAt = time.Now()

	if err := pc.Products.Create(c.Context(), &in); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "create failed"})
	}

	if pc.Cache != nil {
		pc.Cache.Invalidate(c.Context())
	}
	if pc.Index != nil {
		if err := pc.Index.IndexProduct(c.Context(), in); err != nil {
			log.Printf("index product %d: %v", in.ID, err)
		}
	}
	pc.Events.ProductCreated(&in)

	return c.Status(201).JSON(in)
}

func (pc *ProductController) Search(c *fiber.Ctx) error {
	query := c.Query("q")
	if query == "" {
		return c.Status(400).JSON(fiber.Map{"error": "query parameter 'q' is required"})
	}

	if pc.Index != nil {
		products, err := pc.Index.Search(c.Context(), query)
		if err == nil {
			return c.JSON(products)
		}
		log.Printf("elasticsearch search %q: %v, falling back to store", query, err)
	}

	products, err := pc.Products.Search(c.Context(), query)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "search failed"})
	}
	if products == nil {
		products = []model.Product{}
	}
	return c.JSON(products)
}
