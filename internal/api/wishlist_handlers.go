package api

import (
	"net/http"

	"storefront/internal/api/middleware"
	"storefront/internal/wishlist"

	"github.com/gin-gonic/gin"
)

func (h *handlers) getWishlist(c *gin.Context) {
	ctx := c.Request.Context()
	userID, _ := middleware.UserID(c)

	entries, err := h.wishlist.List(ctx, userID)
	if err != nil {
		respondError(c, err)
		return
	}

	if entries == nil {
		entries = []wishlist.Entry{}
	}
	c.JSON(http.StatusOK, gin.H{"wishlist": entries})
}

func (h *handlers) removeFromWishlist(c *gin.Context) {
	ctx := c.Request.Context()
	userID, _ := middleware.UserID(c)

	if err := h.wishlist.Remove(ctx, userID, c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
