package api

import (
	"time"

	"storefront/internal/api/middleware"
	"storefront/internal/cart"
	"storefront/internal/checkout"
	"storefront/internal/order"
	"storefront/internal/wishlist"

	"github.com/gin-gonic/gin"
	validatorv10 "github.com/go-playground/validator/v10"
)

// Config groups the dependencies of the REST surface.
type Config struct {
	Cart     cart.Service
	Checkout checkout.Service
	Wishlist wishlist.Service
	Orders   *order.Client
	Secret   []byte

	// Interval between order re-fetches on the updates stream.
	PollInterval time.Duration
}

type handlers struct {
	cart         cart.Service
	checkout     checkout.Service
	wishlist     wishlist.Service
	orders       *order.Client
	validate     *validatorv10.Validate
	pollInterval time.Duration
}

// NewRouter wires middleware and routes. Every route is user-scoped and
// sits behind the bearer-token check.
func NewRouter(cfg Config) *gin.Engine {
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = 30 * time.Second
	}

	h := &handlers{
		cart:         cfg.Cart,
		checkout:     cfg.Checkout,
		wishlist:     cfg.Wishlist,
		orders:       cfg.Orders,
		validate:     validatorv10.New(),
		pollInterval: cfg.PollInterval,
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logging())
	r.Use(middleware.Auth(cfg.Secret))
	r.Use(middleware.NewRateLimiter().Middleware())

	cartGroup := r.Group("/cart")
	{
		cartGroup.GET("", h.getCart)
		cartGroup.POST("", h.addToCart)
		cartGroup.PATCH("/items/:cartId", h.updateQuantity)
		cartGroup.DELETE("/items/:cartId", h.removeFromCart)

		cartGroup.GET("/summary", h.getSummary)
		cartGroup.POST("/selection/toggle-all", h.toggleAll)
		cartGroup.POST("/selection/:cartId/toggle", h.toggleOne)
		cartGroup.POST("/discount", h.applyDiscount)

		cartGroup.POST("/bulk-delete", h.bulkDelete)
		cartGroup.POST("/bulk-wishlist", h.bulkMoveToWishlist)
	}

	r.GET("/wishlist", h.getWishlist)
	r.DELETE("/wishlist/:id", h.removeFromWishlist)

	orders := r.Group("/orders")
	{
		// format=csv turns the list into a CSV download.
		orders.GET("", h.listOrders)
		orders.GET("/updates", h.streamOrders)
		orders.GET("/:id", h.getOrder)
	}

	return r
}
