package checkout

import "errors"

var (
	// -- Validation & Input --
	ErrUnknownCode = errors.New("unknown discount code")

	// -- Resource State --
	ErrNothingSelected = errors.New("no cart lines selected")
)
