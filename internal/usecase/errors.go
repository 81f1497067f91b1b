package usecase

import (
	"errors"
	"fmt"
)

// Two failure kinds surface from the engine: ErrInvalidInput for
// malformed caller arguments, ErrInvalidOperation for violated domain
// preconditions. The remaining sentinels are specific operation
// failures that also match ErrInvalidOperation via errors.Is.
var (
	ErrInvalidInput     = errors.New("invalid input")
	ErrInvalidOperation = errors.New("invalid operation")

	ErrNotFound             = fmt.Errorf("%w: resource not found", ErrInvalidOperation)
	ErrInsufficientResource = fmt.Errorf("%w: insufficient resources", ErrInvalidOperation)
	ErrNoActiveSeason       = fmt.Errorf("%w: no active season", ErrInvalidOperation)
	ErrNoTeamSelected       = fmt.Errorf("%w: no team selected", ErrInvalidOperation)
)
