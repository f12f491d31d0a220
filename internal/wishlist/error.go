package wishlist

import "errors"

var (
	// -- Validation & Input --
	ErrMissingProduct = errors.New("product id is required")

	// -- Resource State --
	ErrEntryNotFound = errors.New("wishlist entry not found")

	// -- Database & Operation Failures --
	ErrFailedCreateEntry = errors.New("failed to create wishlist entry")
	ErrFailedListEntries = errors.New("failed to list wishlist entries")
	ErrFailedRemoveEntry = errors.New("failed to remove wishlist entry")
)
