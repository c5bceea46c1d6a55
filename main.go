package main

import (
	"context"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/221FA04614/AuraShop-main/cache"
	"github.com/221FA04614/AuraShop-main/checkout"
	"github.com/221FA04614/AuraShop-main/config"
	"github.com/221FA04614/AuraShop-main/controller"
	"github.com/221FA04614/AuraShop-main/events"
	"github.com/221FA04614/AuraShop-main/mailer"
	"github.com/221FA04614/AuraShop-main/middleware"
	"github.com/221FA04614/AuraShop-main/model"
	"github.com/221FA04614/AuraShop-main/payment"
	"github.com/221FA04614/AuraShop-main/routes"
	"github.com/221FA04614/AuraShop-main/search"
	"github.com/221FA04614/AuraShop-main/seed"
	"github.com/221FA04614/AuraShop-main/store"
)

func initDB(cfg config.Config) *gorm.DB {
	// TranslateError turns unique violations into gorm.ErrDuplicatedKey,
	// which the stores surface as store.ErrDuplicate. The unique index on
	// orders.stripe_session_id relies on this.
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatal("failed to connect db:", err)
	}
	if err := db.AutoMigrate(
		&model.User{},
		&model.Product{},
		&model.CartItem{},
		&model.Order{},
	); err != nil {
		log.Fatal(err)
	}
	return db
}

func main() {
	cfg := config.Load()
	db := initDB(cfg)

	users := store.NewGormUserStore(db)
	products := store.NewGormProductStore(db)
	carts := store.NewGormCartStore(db)
	orders := store.NewGormOrderStore(db)

	var publisher events.Publisher = events.Nop{}
	if cfg.KafkaBroker != "" {
		kafka, err := events.NewKafkaPublisher(cfg.KafkaBroker)
		if err != nil {
			log.Fatal("failed to connect kafka:", err)
		}
		defer kafka.Close()
		publisher = kafka
	}

	var productCache *cache.ProductCache
	if cfg.RedisAddr != "" {
		pc, err := cache.NewProductCache(cfg.RedisAddr)
		if err != nil {
			log.Fatal("failed to connect redis:", err)
		}
		productCache = pc
	}

	var index *search.Index
	if cfg.ElasticURL != "" {
		idx, err := search.New(cfg.ElasticURL)
		if err != nil {
			log.Fatal("failed to create elasticsearch client:", err)
		}
		index = idx
	}

	if err := seed.Products(context.Background(), products, index); err != nil {
		log.Printf("seed catalog: %v", err)
	}

	stripeClient := payment.NewStripeClient(cfg.StripeSecretKey)
	checkoutSvc := checkout.NewService(products, carts, orders, stripeClient, publisher, cfg.FrontendURL)
	smtpMailer := mailer.NewSMTPMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPFrom, cfg.SMTPUser, cfg.SMTPPass)

	authMW := middleware.AuthRequired(cfg.JWTSecret)

	app := fiber.New()
	app.Use(logger.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"ok": true})
	})

	routes.RegisterAuthRoutes(app, &controller.AuthController{
		Users:     users,
		Mailer:    smtpMailer,
		JWTSecret: cfg.JWTSecret,
	})
	routes.RegisterProductRoutes(app, &controller.ProductController{
		Products: products,
		Cache:    productCache,
		Index:    index,
		Events:   publisher,
	}, authMW)
	routes.RegisterCartRoutes(app, &controller.CartController{
		Carts:    carts,
		Products: products,
	}, authMW)
	routes.RegisterOrderRoutes(app, &controller.OrderController{
		Orders: orders,
	}, authMW)
	routes.RegisterPaymentRoutes(app, &controller.PaymentController{
		Checkout:      checkoutSvc,
		Orders:        orders,
		WebhookSecret: cfg.StripeWebhookSecret,
	}, authMW)

	log.Printf("HTTP server running on port %s", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatal("fiber error:", err)
	}
}
