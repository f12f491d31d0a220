package cart

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockRepository is a mock implementation of the Repository interface
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) CreateLine(ctx context.Context, line *Line) (*Line, error) {
	args := m.Called(ctx, line)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Line), args.Error(1)
}

func (m *MockRepository) GetLineByProductAndColor(ctx context.Context, userID uint, productID string, color *string) (*Line, error) {
	args := m.Called(ctx, userID, productID, color)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Line), args.Error(1)
}

func (m *MockRepository) ListLines(ctx context.Context, userID uint) ([]Line, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Line), args.Error(1)
}

func (m *MockRepository) UpdateQuantity(ctx context.Context, userID uint, cartID string, quantity int) (int64, error) {
	args := m.Called(ctx, userID, cartID, quantity)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRepository) DeleteLine(ctx context.Context, userID uint, cartID string) (int64, error) {
	args := m.Called(ctx, userID, cartID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRepository) SumQuantities(ctx context.Context, userID uint) (int, error) {
	args := m.Called(ctx, userID)
	return args.Int(0), args.Error(1)
}

func (m *MockRepository) Clear(ctx context.Context, userID uint) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func TestService_Add(t *testing.T) {
	ctx := context.Background()
	params := AddParams{
		ProductID: "prod-1",
		Name:      "Gold Ring",
		Price:     1299,
		Quantity:  2,
	}

	t.Run("CreatesFreshLine", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo, true)

		repo.On("GetLineByProductAndColor", ctx, uint(1), "prod-1", (*string)(nil)).
			Return(nil, nil)
		repo.On("CreateLine", ctx, mock.AnythingOfType("*cart.Line")).
			Return(&Line{CartID: "cart-1", UserID: 1, ProductID: "prod-1", Quantity: 2, Price: 1299}, nil)

		line, err := svc.Add(ctx, 1, params)
		require.NoError(t, err)
		assert.Equal(t, "cart-1", line.CartID)
		repo.AssertExpectations(t)
	})

	t.Run("MergesQuantityIntoExistingLine", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo, true)

		existing := &Line{CartID: "cart-1", UserID: 1, ProductID: "prod-1", Quantity: 3, Price: 1299}
		repo.On("GetLineByProductAndColor", ctx, uint(1), "prod-1", (*string)(nil)).
			Return(existing, nil)
		repo.On("UpdateQuantity", ctx, uint(1), "cart-1", 5).
			Return(int64(1), nil)

		line, err := svc.Add(ctx, 1, params)
		require.NoError(t, err)
		assert.Equal(t, 5, line.Quantity)
		repo.AssertNotCalled(t, "CreateLine", mock.Anything, mock.Anything)
	})

	t.Run("MergeDisabledAlwaysCreates", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo, false)

		repo.On("CreateLine", ctx, mock.AnythingOfType("*cart.Line")).
			Return(&Line{CartID: "cart-2", UserID: 1, ProductID: "prod-1", Quantity: 2}, nil)

		_, err := svc.Add(ctx, 1, params)
		require.NoError(t, err)
		repo.AssertNotCalled(t, "GetLineByProductAndColor", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("DifferentColorIsSeparateLine", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo, true)

		rose := "rose-gold"
		withColor := params
		withColor.SelectedColor = &rose

		repo.On("GetLineByProductAndColor", ctx, uint(1), "prod-1", &rose).
			Return(nil, nil)
		repo.On("CreateLine", ctx, mock.AnythingOfType("*cart.Line")).
			Return(&Line{CartID: "cart-3", SelectedColor: &rose, Quantity: 2}, nil)

		line, err := svc.Add(ctx, 1, withColor)
		require.NoError(t, err)
		require.NotNil(t, line.SelectedColor)
		assert.Equal(t, "rose-gold", *line.SelectedColor)
	})

	t.Run("RejectsZeroQuantity", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo, true)

		bad := params
		bad.Quantity = 0

		_, err := svc.Add(ctx, 1, bad)
		assert.ErrorIs(t, err, ErrInvalidQuantity)
	})

	t.Run("RejectsMissingProduct", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo, true)

		bad := params
		bad.ProductID = ""

		_, err := svc.Add(ctx, 1, bad)
		assert.ErrorIs(t, err, ErrMissingProduct)
	})

	t.Run("RejectsNegativePrice", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo, true)

		bad := params
		bad.Price = -1

		_, err := svc.Add(ctx, 1, bad)
		assert.ErrorIs(t, err, ErrInvalidPrice)
	})
}

func TestService_Remove(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo, true)

		repo.On("DeleteLine", ctx, uint(1), "cart-1").Return(int64(1), nil)

		assert.NoError(t, svc.Remove(ctx, 1, "cart-1"))
	})

	t.Run("AbsentLineIsNoOp", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo, true)

		repo.On("DeleteLine", ctx, uint(1), "gone").Return(int64(0), nil)

		assert.NoError(t, svc.Remove(ctx, 1, "gone"))
	})
}

func TestService_SetQuantity(t *testing.T) {
	ctx := context.Background()

	t.Run("UpdatesQuantity", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo, true)

		repo.On("UpdateQuantity", ctx, uint(1), "cart-1", 4).Return(int64(1), nil)

		assert.NoError(t, svc.SetQuantity(ctx, 1, "cart-1", 4))
	})

	t.Run("ZeroQuantityRemovesLine", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo, true)

		repo.On("DeleteLine", ctx, uint(1), "cart-1").Return(int64(1), nil)

		assert.NoError(t, svc.SetQuantity(ctx, 1, "cart-1", 0))
		repo.AssertNotCalled(t, "UpdateQuantity", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("MissingLine", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo, true)

		repo.On("UpdateQuantity", ctx, uint(1), "gone", 2).Return(int64(0), nil)

		err := svc.SetQuantity(ctx, 1, "gone", 2)
		assert.ErrorIs(t, err, ErrLineNotFound)
	})
}

func TestService_Count(t *testing.T) {
	ctx := context.Background()
	repo := new(MockRepository)
	svc := NewService(repo, true)

	// Two lines of quantity 2 and 3 count as 5, not 2.
	repo.On("SumQuantities", ctx, uint(1)).Return(5, nil)

	count, err := svc.Count(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 5, count)
}

func TestService_Subtotal(t *testing.T) {
	ctx := context.Background()

	t.Run("SumsPriceTimesQuantity", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo, true)

		repo.On("ListLines", ctx, uint(1)).Return([]Line{
			{CartID: "a", Price: 100, Quantity: 2},
			{CartID: "b", Price: 50, Quantity: 1},
		}, nil)

		total, err := svc.Subtotal(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, 250.0, total)
	})

	t.Run("EmptyCart", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo, true)

		repo.On("ListLines", ctx, uint(1)).Return([]Line{}, nil)

		total, err := svc.Subtotal(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, 0.0, total)
	})

	t.Run("RepositoryError", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo, true)

		repo.On("ListLines", ctx, uint(1)).Return(nil, errors.New("db error"))

		_, err := svc.Subtotal(ctx, 1)
		assert.Error(t, err)
	})
}
