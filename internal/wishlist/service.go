package wishlist

import (
	"context"

	"github.com/google/uuid"
)

// Sink is the narrow interface the checkout bulk-move flow pushes entries
// into; the full Service embeds it.
type Sink interface {
	Add(ctx context.Context, userID uint, params AddParams) (*Entry, error)
}

type Service interface {
	Sink
	List(ctx context.Context, userID uint) ([]Entry, error)
	Remove(ctx context.Context, userID uint, id string) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Add(ctx context.Context, userID uint, params AddParams) (*Entry, error) {
	if params.ProductID == "" {
		return nil, ErrMissingProduct
	}

	entry := &Entry{
		ID:            uuid.NewString(),
		UserID:        userID,
		ProductID:     params.ProductID,
		Name:          params.Name,
		Image:         params.Image,
		Price:         params.Price,
		SelectedColor: params.SelectedColor,
	}

	return s.repo.CreateEntry(ctx, entry)
}

func (s *service) List(ctx context.Context, userID uint) ([]Entry, error) {
	return s.repo.ListEntries(ctx, userID)
}

func (s *service) Remove(ctx context.Context, userID uint, id string) error {
	affected, err := s.repo.DeleteEntry(ctx, userID, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrEntryNotFound
	}
	return nil
}
