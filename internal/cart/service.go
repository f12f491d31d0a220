package cart

import (
	"context"

	"storefront/internal/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Service defines the business logic for carts. Every mutation is durable:
// the repository write is the persistence that lets the cart survive the
// customer coming back later.
type Service interface {
	Add(ctx context.Context, userID uint, params AddParams) (*Line, error)
	Remove(ctx context.Context, userID uint, cartID string) error
	SetQuantity(ctx context.Context, userID uint, cartID string, quantity int) error
	Lines(ctx context.Context, userID uint) ([]Line, error)
	Count(ctx context.Context, userID uint) (int, error)
	Subtotal(ctx context.Context, userID uint) (float64, error)
	Clear(ctx context.Context, userID uint) error
}

type service struct {
	repo Repository

	// mergeOnAdd controls whether adding a product+color already in the
	// cart merges quantities into the existing line. Config-driven; both
	// behaviors are legitimate, so the choice is explicit.
	mergeOnAdd bool
}

// NewService creates a new cart service.
func NewService(repo Repository, mergeOnAdd bool) Service {
	return &service{repo: repo, mergeOnAdd: mergeOnAdd}
}

func (s *service) Add(ctx context.Context, userID uint, params AddParams) (*Line, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("product_id", params.ProductID),
		zap.Int("quantity", params.Quantity),
	)

	// 1. Validate input
	if params.ProductID == "" {
		return nil, ErrMissingProduct
	}
	if params.Quantity < 1 {
		return nil, ErrInvalidQuantity
	}
	if params.Price < 0 {
		return nil, ErrInvalidPrice
	}

	// 2. Merge into an existing line when configured to
	if s.mergeOnAdd {
		existing, err := s.repo.GetLineByProductAndColor(
			ctx,
			userID,
			params.ProductID,
			params.SelectedColor,
		)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			finalQty := existing.Quantity + params.Quantity
			if _, err := s.repo.UpdateQuantity(ctx, userID, existing.CartID, finalQty); err != nil {
				return nil, err
			}
			existing.Quantity = finalQty

			log.Info("merged into existing cart line",
				zap.String("cart_id", existing.CartID),
				zap.Int("final_qty", finalQty),
			)
			return existing, nil
		}
	}

	// 3. Create a fresh line
	line := &Line{
		CartID:        uuid.NewString(),
		UserID:        userID,
		ProductID:     params.ProductID,
		Name:          params.Name,
		Image:         params.Image,
		Price:         params.Price,
		OriginalPrice: params.OriginalPrice,
		Quantity:      params.Quantity,
		SelectedColor: params.SelectedColor,
	}

	created, err := s.repo.CreateLine(ctx, line)
	if err != nil {
		return nil, err
	}

	log.Info("cart line created", zap.String("cart_id", created.CartID))
	return created, nil
}

// Remove deletes the line. Removing an absent cartID is a no-op, not an
// error.
func (s *service) Remove(ctx context.Context, userID uint, cartID string) error {
	if cartID == "" {
		return ErrLineNotFound
	}
	_, err := s.repo.DeleteLine(ctx, userID, cartID)
	return err
}

// SetQuantity updates a line's quantity. A quantity below 1 removes the
// line: a cart line is never retained at zero.
func (s *service) SetQuantity(ctx context.Context, userID uint, cartID string, quantity int) error {
	if quantity < 1 {
		return s.Remove(ctx, userID, cartID)
	}

	affected, err := s.repo.UpdateQuantity(ctx, userID, cartID, quantity)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrLineNotFound
	}
	return nil
}

func (s *service) Lines(ctx context.Context, userID uint) ([]Line, error) {
	return s.repo.ListLines(ctx, userID)
}

// Count is the badge number: the sum of all line quantities, not the
// number of distinct lines.
func (s *service) Count(ctx context.Context, userID uint) (int, error) {
	return s.repo.SumQuantities(ctx, userID)
}

// Subtotal sums price * quantity over every line in the cart.
func (s *service) Subtotal(ctx context.Context, userID uint) (float64, error) {
	lines, err := s.repo.ListLines(ctx, userID)
	if err != nil {
		return 0, err
	}

	var total float64
	for _, l := range lines {
		total += l.Price * float64(l.Quantity)
	}
	return total, nil
}

// Clear empties the cart, e.g. after checkout completion.
func (s *service) Clear(ctx context.Context, userID uint) error {
	return s.repo.Clear(ctx, userID)
}
