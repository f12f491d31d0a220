package cart

import "errors"

var (
	// -- Validation & Input --
	ErrInvalidQuantity = errors.New("invalid cart quantity")
	ErrInvalidPrice    = errors.New("invalid price")
	ErrMissingProduct  = errors.New("product id is required")

	// -- Resource State --
	ErrLineNotFound = errors.New("cart line not found")

	// -- Database & Operation Failures --
	ErrFailedCreateLine = errors.New("failed to create cart line")
	ErrFailedListLines  = errors.New("failed to list cart lines")
	ErrFailedUpdateLine = errors.New("failed to update cart line")
	ErrFailedRemoveLine = errors.New("failed to remove cart line")
	ErrFailedClearCart  = errors.New("failed to clear cart")
)
