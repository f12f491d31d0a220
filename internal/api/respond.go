package api

import (
	"errors"
	"net/http"

	"storefront/internal/cart"
	"storefront/internal/checkout"
	"storefront/internal/order"
	"storefront/internal/wishlist"

	"github.com/gin-gonic/gin"
)

// respondError maps domain errors onto HTTP statuses with an inline JSON
// message. Nothing here is fatal to the process: the client renders the
// message and offers a retry.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, cart.ErrInvalidQuantity),
		errors.Is(err, cart.ErrInvalidPrice),
		errors.Is(err, cart.ErrMissingProduct),
		errors.Is(err, checkout.ErrUnknownCode),
		errors.Is(err, checkout.ErrNothingSelected),
		errors.Is(err, wishlist.ErrMissingProduct):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})

	case errors.Is(err, cart.ErrLineNotFound),
		errors.Is(err, wishlist.ErrEntryNotFound),
		errors.Is(err, order.ErrOrderNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})

	case errors.Is(err, order.ErrBackendUnavailable),
		errors.Is(err, order.ErrBadResponse):
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
