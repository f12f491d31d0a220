package api

import (
	"net/http"
	"strconv"

	"storefront/internal/api/middleware"
	"storefront/internal/export"
	"storefront/internal/order"

	"github.com/gin-gonic/gin"
)

const defaultPageSize = 20

func (h *handlers) listOrders(c *gin.Context) {
	ctx := c.Request.Context()
	userID, _ := middleware.UserID(c)

	skip := intQuery(c, "skip", 0)
	limit := intQuery(c, "limit", defaultPageSize)

	records, err := h.orders.ListOrders(ctx, userID, skip, limit)
	if err != nil {
		respondError(c, err)
		return
	}

	if c.Query("format") == "csv" {
		h.exportOrders(c, records)
		return
	}

	if records == nil {
		records = []order.Record{}
	}
	c.JSON(http.StatusOK, gin.H{"orders": records})
}

func (h *handlers) getOrder(c *gin.Context) {
	ctx := c.Request.Context()

	record, err := h.orders.GetOrder(ctx, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	// The stepper is a pure projection of the status, re-derived on every
	// fetch.
	c.JSON(http.StatusOK, order.Detail{
		Record: *record,
		Steps:  order.Steps(record.Status),
	})
}

// streamOrders keeps the connection open and pushes the order list as a
// server-sent event on every poll, so the orders view stays current
// without the client polling itself. The watcher dies with the request
// context.
func (h *handlers) streamOrders(c *gin.Context) {
	ctx := c.Request.Context()
	userID, _ := middleware.UserID(c)

	updates := make(chan []order.Record, 1)
	watcher := order.NewWatcher(h.orders, userID, h.pollInterval, func(records []order.Record) {
		select {
		case updates <- records:
		default:
		}
	})
	watcher.Start(ctx)

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")

	for {
		select {
		case <-ctx.Done():
			return
		case records := <-updates:
			c.SSEvent("orders", gin.H{"orders": records})
			c.Writer.Flush()
		}
	}
}

// exportOrders offers the already-fetched page as a file download.
func (h *handlers) exportOrders(c *gin.Context, records []order.Record) {
	csv := export.Orders(records)

	c.Header("Content-Disposition", `attachment; filename="orders.csv"`)
	c.Data(http.StatusOK, "text/csv", []byte(csv))
}

func intQuery(c *gin.Context, key string, fallback int) int {
	raw := c.Query(key)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return fallback
	}
	return v
}
