package checkout

import (
	"context"

	"storefront/internal/cart"
	"storefront/internal/logger"
	"storefront/internal/wishlist"

	"go.uber.org/zap"
)

// CheckoutSummary is what the cart screen renders: the synced selection,
// the selected-lines subtotal pushed through the total pipeline, and the
// discount currently applied.
type CheckoutSummary struct {
	Selection   Selection `json:"selection"`
	AppliedCode string    `json:"appliedCode,omitempty"`
	Percent     int       `json:"appliedPercent"`
	Summary     Summary   `json:"summary"`
}

// BulkMoveResult reports a bulk move-to-wishlist outcome. The flow is
// continue-on-error: a failing line is recorded and the rest still move.
type BulkMoveResult struct {
	Moved  []string          `json:"moved"`
	Failed map[string]string `json:"failed,omitempty"`
}

// Service is the selection and pricing layer over the cart.
type Service interface {
	Selection(ctx context.Context, userID uint) (Selection, error)
	ToggleAll(ctx context.Context, userID uint) (Selection, error)
	Toggle(ctx context.Context, userID uint, cartID string) (Selection, error)
	ApplyCode(ctx context.Context, userID uint, code string) (int, error)
	Summary(ctx context.Context, userID uint) (*CheckoutSummary, error)
	BulkDelete(ctx context.Context, userID uint) error
	BulkMoveToWishlist(ctx context.Context, userID uint) (*BulkMoveResult, error)
}

type service struct {
	cartSvc  cart.Service
	sink     wishlist.Sink
	sessions *SessionStore
	opts     QuoteOptions
}

// NewService creates a new checkout service.
func NewService(cartSvc cart.Service, sink wishlist.Sink, sessions *SessionStore, opts QuoteOptions) Service {
	return &service{
		cartSvc:  cartSvc,
		sink:     sink,
		sessions: sessions,
		opts:     opts,
	}
}

// Selection returns the user's selection synced against the current cart,
// so removed lines are pruned and new lines default to selected.
func (s *service) Selection(ctx context.Context, userID uint) (Selection, error) {
	lines, err := s.cartSvc.Lines(ctx, userID)
	if err != nil {
		return Selection{}, err
	}
	return s.sessions.Sync(userID, lines), nil
}

func (s *service) ToggleAll(ctx context.Context, userID uint) (Selection, error) {
	if _, err := s.Selection(ctx, userID); err != nil {
		return Selection{}, err
	}
	return s.sessions.ToggleAll(userID), nil
}

func (s *service) Toggle(ctx context.Context, userID uint, cartID string) (Selection, error) {
	if _, err := s.Selection(ctx, userID); err != nil {
		return Selection{}, err
	}
	return s.sessions.Toggle(userID, cartID), nil
}

// ApplyCode resolves a discount code. An unknown code is an error and
// leaves the previously applied percent untouched; it is never silently
// reset.
func (s *service) ApplyCode(ctx context.Context, userID uint, code string) (int, error) {
	pct, ok := LookupCode(code)
	if !ok {
		logger.FromCtx(ctx).Warn("discount code rejected",
			zap.String("code", code),
		)
		return 0, ErrUnknownCode
	}

	s.sessions.SetDiscount(userID, code, pct)
	return pct, nil
}

func (s *service) Summary(ctx context.Context, userID uint) (*CheckoutSummary, error) {
	lines, err := s.cartSvc.Lines(ctx, userID)
	if err != nil {
		return nil, err
	}

	sel := s.sessions.Sync(userID, lines)
	code, pct := s.sessions.Discount(userID)

	subtotal := SelectedSubtotal(lines, sel)

	return &CheckoutSummary{
		Selection:   sel,
		AppliedCode: code,
		Percent:     pct,
		Summary:     Quote(subtotal, pct, s.opts),
	}, nil
}

// BulkDelete removes every selected line, then resets the selection.
func (s *service) BulkDelete(ctx context.Context, userID uint) error {
	lines, err := s.cartSvc.Lines(ctx, userID)
	if err != nil {
		return err
	}

	sel := s.sessions.Sync(userID, lines)
	ids := sel.SelectedIDs(lines)
	if len(ids) == 0 {
		return ErrNothingSelected
	}

	for _, id := range ids {
		if err := s.cartSvc.Remove(ctx, userID, id); err != nil {
			return err
		}
	}

	s.sessions.ResetSelection(userID)

	logger.FromCtx(ctx).Info("bulk delete completed",
		zap.Int("removed", len(ids)),
	)
	return nil
}

// BulkMoveToWishlist moves every selected line to the wishlist, one line at
// a time in cart order. A failed wishlist add is recorded and the remaining
// lines are still attempted; only lines that made it into the wishlist
// leave the cart.
func (s *service) BulkMoveToWishlist(ctx context.Context, userID uint) (*BulkMoveResult, error) {
	lines, err := s.cartSvc.Lines(ctx, userID)
	if err != nil {
		return nil, err
	}

	sel := s.sessions.Sync(userID, lines)
	ids := sel.SelectedIDs(lines)
	if len(ids) == 0 {
		return nil, ErrNothingSelected
	}

	byID := make(map[string]cart.Line, len(lines))
	for _, l := range lines {
		byID[l.CartID] = l
	}

	result := &BulkMoveResult{Failed: make(map[string]string)}
	for _, id := range ids {
		line := byID[id]

		_, err := s.sink.Add(ctx, userID, wishlist.AddParams{
			ProductID:     line.ProductID,
			Name:          line.Name,
			Image:         line.Image,
			Price:         line.Price,
			SelectedColor: line.SelectedColor,
		})
		if err != nil {
			result.Failed[id] = err.Error()
			continue
		}

		if err := s.cartSvc.Remove(ctx, userID, id); err != nil {
			result.Failed[id] = err.Error()
			continue
		}
		result.Moved = append(result.Moved, id)
	}

	s.sessions.ResetSelection(userID)

	if len(result.Failed) == 0 {
		result.Failed = nil
	}

	logger.FromCtx(ctx).Info("bulk move to wishlist completed",
		zap.Int("moved", len(result.Moved)),
		zap.Int("failed", len(result.Failed)),
	)
	return result, nil
}
