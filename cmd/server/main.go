package main

import (
	"log"

	"storefront/internal/api"
	"storefront/internal/cart"
	"storefront/internal/checkout"
	"storefront/internal/config"
	"storefront/internal/db"
	"storefront/internal/logger"
	"storefront/internal/order"
	"storefront/internal/wishlist"
)

func main() {
	cfg := config.LoadConfig()

	logger.Init(cfg.AppEnv)
	defer logger.Sync()

	database := db.InitDB(cfg)
	defer database.Close()

	if err := db.EnsureSchema(database); err != nil {
		log.Fatalf("schema bootstrap failed: %v", err)
	}

	cartRepo := cart.NewRepository(database)
	cartSvc := cart.NewService(cartRepo, cfg.CartMergeOnAdd)

	wishlistRepo := wishlist.NewRepository(database)
	wishlistSvc := wishlist.NewService(wishlistRepo)

	checkoutSvc := checkout.NewService(
		cartSvc,
		wishlistSvc,
		checkout.NewSessionStore(),
		checkout.DefaultQuoteOptions(),
	)

	orderClient := order.NewClient(cfg.CommerceAPIURL, cfg.CommerceAPIToken)

	router := api.NewRouter(api.Config{
		Cart:     cartSvc,
		Checkout: checkoutSvc,
		Wishlist: wishlistSvc,
		Orders:   orderClient,
		Secret:   []byte(cfg.SecretKey),

		PollInterval: cfg.OrderPollInterval,
	})

	log.Printf("🚀 storefront API running at http://localhost:%s/", cfg.AppPort)
	log.Fatal(router.Run(":" + cfg.AppPort))
}
