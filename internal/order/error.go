package order

import "errors"

var (
	// -- Resource State --
	ErrOrderNotFound = errors.New("order not found")

	// -- Upstream Failures --
	ErrBackendUnavailable = errors.New("commerce backend unavailable")
	ErrBadResponse        = errors.New("unexpected commerce backend response")
)
