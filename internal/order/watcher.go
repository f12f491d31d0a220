package order

import (
	"context"
	"time"

	"storefront/internal/logger"

	"go.uber.org/zap"
)

// Fetcher is the slice of Client the watcher needs.
type Fetcher interface {
	ListOrders(ctx context.Context, userID uint, skip, limit int) ([]Record, error)
}

// Watcher re-fetches a user's order list on a fixed interval while the
// orders view is active and hands each snapshot to the consumer. It has no
// de-duplication of overlapping fetches: whichever response lands last
// wins, same as a double-clicked refresh button.
type Watcher struct {
	fetcher  Fetcher
	userID   uint
	pageSize int
	interval time.Duration
	onUpdate func([]Record)
}

func NewWatcher(fetcher Fetcher, userID uint, interval time.Duration, onUpdate func([]Record)) *Watcher {
	return &Watcher{
		fetcher:  fetcher,
		userID:   userID,
		pageSize: 50,
		interval: interval,
		onUpdate: onUpdate,
	}
}

// Start launches the polling loop. The loop owns its ticker and stops it
// when ctx is cancelled, so no timer outlives the view that created the
// watcher.
func (w *Watcher) Start(ctx context.Context) {
	go func() {
		ticker := time.NewTicker(w.interval)
		defer ticker.Stop()

		w.Refresh(ctx)

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				w.Refresh(ctx)
			}
		}
	}()
}

// Refresh fetches once and pushes the snapshot to the consumer. A failed
// fetch is logged and swallowed; the consumer keeps its previous snapshot
// and the next tick retries.
func (w *Watcher) Refresh(ctx context.Context) {
	records, err := w.fetcher.ListOrders(ctx, w.userID, 0, w.pageSize)
	if err != nil {
		if ctx.Err() == nil {
			logger.FromCtx(ctx).Warn("order refresh failed", zap.Error(err))
		}
		return
	}
	w.onUpdate(records)
}
