package api

import (
	"net/http"

	"storefront/internal/api/middleware"
	"storefront/internal/cart"
	"storefront/internal/logger"
	"storefront/internal/money"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func (h *handlers) getCart(c *gin.Context) {
	ctx := c.Request.Context()
	userID, _ := middleware.UserID(c)

	lines, err := h.cart.Lines(ctx, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	count, err := h.cart.Count(ctx, userID)
	if err != nil {
		respondError(c, err)
		return
	}

	if lines == nil {
		lines = []cart.Line{}
	}
	c.JSON(http.StatusOK, gin.H{"lines": lines, "count": count})
}

func (h *handlers) addToCart(c *gin.Context) {
	ctx := c.Request.Context()
	userID, _ := middleware.UserID(c)

	var req AddToCartRequest
	if err := bindAndValidate(c, &req, h.validate); err != nil {
		return
	}

	log := logger.FromCtx(ctx).With(
		zap.String("product_id", req.ProductID),
	)

	// Prices enter the core through the money adapter, nowhere else.
	price, err := money.Parse(req.Price)
	if err != nil {
		log.Warn("rejecting non-numeric price", zap.Any("price", req.Price))
		c.JSON(http.StatusBadRequest, gin.H{"error": "price is not numeric"})
		return
	}

	var originalPrice *float64
	if req.OriginalPrice != nil {
		op, err := money.Parse(req.OriginalPrice)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "original price is not numeric"})
			return
		}
		originalPrice = &op
	}

	line, err := h.cart.Add(ctx, userID, cart.AddParams{
		ProductID:     req.ProductID,
		Name:          req.Name,
		Image:         req.Image,
		Price:         price,
		OriginalPrice: originalPrice,
		Quantity:      req.Quantity,
		SelectedColor: req.SelectedColor,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"line":    line,
		"display": money.Format(line.Price),
	})
}

func (h *handlers) updateQuantity(c *gin.Context) {
	ctx := c.Request.Context()
	userID, _ := middleware.UserID(c)
	cartID := c.Param("cartId")

	var req UpdateQuantityRequest
	if err := bindAndValidate(c, &req, h.validate); err != nil {
		return
	}

	if err := h.cart.SetQuantity(ctx, userID, cartID, req.Quantity); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *handlers) removeFromCart(c *gin.Context) {
	ctx := c.Request.Context()
	userID, _ := middleware.UserID(c)

	if err := h.cart.Remove(ctx, userID, c.Param("cartId")); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *handlers) getSummary(c *gin.Context) {
	ctx := c.Request.Context()
	userID, _ := middleware.UserID(c)

	summary, err := h.checkout.Summary(ctx, userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"summary": summary,
		"display": gin.H{
			"subtotal":   money.Format(summary.Summary.Subtotal),
			"grandTotal": money.Format(summary.Summary.GrandTotal),
		},
	})
}

func (h *handlers) toggleAll(c *gin.Context) {
	ctx := c.Request.Context()
	userID, _ := middleware.UserID(c)

	sel, err := h.checkout.ToggleAll(ctx, userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"selection": sel})
}

func (h *handlers) toggleOne(c *gin.Context) {
	ctx := c.Request.Context()
	userID, _ := middleware.UserID(c)

	sel, err := h.checkout.Toggle(ctx, userID, c.Param("cartId"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"selection": sel})
}

func (h *handlers) applyDiscount(c *gin.Context) {
	ctx := c.Request.Context()
	userID, _ := middleware.UserID(c)

	var req DiscountRequest
	if err := bindAndValidate(c, &req, h.validate); err != nil {
		return
	}

	pct, err := h.checkout.ApplyCode(ctx, userID, req.Code)
	if err != nil {
		// The previously applied discount survives a rejected code; the
		// client just shows the message.
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"appliedPercent": pct})
}

func (h *handlers) bulkDelete(c *gin.Context) {
	ctx := c.Request.Context()
	userID, _ := middleware.UserID(c)

	if err := h.checkout.BulkDelete(ctx, userID); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *handlers) bulkMoveToWishlist(c *gin.Context) {
	ctx := c.Request.Context()
	userID, _ := middleware.UserID(c)

	result, err := h.checkout.BulkMoveToWishlist(ctx, userID)
	if err != nil {
		respondError(c, err)
		return
	}

	// Partial failure is a 200 with per-line detail, not an error: the
	// lines that moved are gone from the cart either way.
	c.JSON(http.StatusOK, result)
}
